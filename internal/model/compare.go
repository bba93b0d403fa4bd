package model

import "cmp"

// Compare orders two courses by their number of students only. It returns
// -1 if a has fewer students than b, +1 if it has more, and 0 otherwise.
// Titles, dates and variants are ignored, so two unrelated courses with
// the same number of students compare as 0.
func Compare(a, b *Course) int {
	return cmp.Compare(len(a.students), len(b.students))
}

// Equal reports whether a and b have the same number of students.
func Equal(a, b *Course) bool { return Compare(a, b) == 0 }

// Less reports whether a has fewer students than b.
func Less(a, b *Course) bool { return Compare(a, b) < 0 }

// Greater reports whether a has more students than b.
func Greater(a, b *Course) bool { return Compare(a, b) > 0 }
