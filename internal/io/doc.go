// Package ioutils provides file system helpers used to persist the course
// catalog.
//
// # File Operations
//
//	// Copy a file
//	err := ioutils.CopyFile(ctx, "courses.json", "courses.json.bak")
//
//	// Replace a file with new content
//	err := ioutils.WriteFile(ctx, "notes.txt", []byte("content"))
//
//	// Ensure directory exists
//	err := ioutils.EnsureDir("/path/to/new/directory")
//
// # JSON Documents
//
// WriteJSON produces the human readable form used for snapshots: two-space
// indentation and unescaped non-ASCII text.
//
//	err := ioutils.WriteJSON(ctx, "courses.json", records)
//
//	var records []model.Record
//	err = ioutils.ReadJSON(ctx, "courses.json", &records)
package ioutils
