package model

import "strings"

// Variant is the type-specific part of a course. The set of variants is
// closed: Programming, Design and Science.
type Variant interface {
	Kind() Kind

	teach() string
	assess() string
	completionRate(c *Course) int
	details() string
}

// Programming is the variant data of a programming course.
type Programming struct {
	Languages []string
}

// Kind returns KindProgramming.
func (Programming) Kind() Kind { return KindProgramming }

func (Programming) teach() string  { return "Провожу лекции по алгоритмам." }
func (Programming) assess() string { return "Оцениваю практические задания по коду." }

func (Programming) completionRate(c *Course) int { return len(c.topics) * 10 }

func (p Programming) details() string { return strings.Join(p.Languages, ", ") }

// Design is the variant data of a design course.
type Design struct {
	Tools []string
}

// Kind returns KindDesign.
func (Design) Kind() Kind { return KindDesign }

func (Design) teach() string  { return "Объясняю принципы композиции." }
func (Design) assess() string { return "Оцениваю дизайн-проекты студентов." }

func (Design) completionRate(c *Course) int { return len(c.students) * 5 }

func (d Design) details() string { return strings.Join(d.Tools, ", ") }

// Science is the variant data of a science course.
type Science struct {
	Field string
}

// Kind returns KindScience.
func (Science) Kind() Kind { return KindScience }

func (Science) teach() string  { return "Провожу лабораторные работы." }
func (Science) assess() string { return "Оцениваю лабораторные отчёты." }

func (Science) completionRate(c *Course) int { return (len(c.topics) + len(c.students)) * 3 }

func (s Science) details() string { return s.Field }
