package reportcard

import (
	"github.com/adnsv/gradexl/xl"
)

const (
	ReportSheetName      = "Report Card"
	AssignmentsSheetName = "Assignments"
)

// Periods lists grading period names in first-seen order across courses.
func Periods(c *Content) []string {
	var names []string
	seen := map[string]bool{}
	for _, course := range c.Courses {
		for _, p := range course.Grades {
			if !seen[p.Name] {
				seen[p.Name] = true
				names = append(names, p.Name)
			}
		}
	}
	return names
}

// Sheet builds the report card overview: a header row of Teacher, Course
// Code and one column per period, then one row per course with the period
// averages. A course stops at its first missing period, which leaves the
// row shorter than the header. Empty periods default to Periods(c).
func Sheet(c *Content, periods []string) *xl.Sheet {
	if len(periods) == 0 {
		periods = Periods(c)
	}

	sh := xl.NewSheet(ReportSheetName)
	header := sh.AddRow(xl.String("Teacher"), xl.String("Course Code"))
	for _, p := range periods {
		header.Add(xl.String(p))
	}

	for _, course := range c.Courses {
		row := sh.AddRow(xl.String(course.Teacher), xl.String(course.CourseCode))
		for _, name := range periods {
			p, ok := course.Grades.Period(name)
			if !ok {
				break
			}
			row.Add(xl.Float(p.Average))
		}
	}
	return sh
}

// AssignmentsSheet lists every graded assignment, one per row.
func AssignmentsSheet(c *Content) *xl.Sheet {
	sh := xl.NewSheet(AssignmentsSheetName)
	sh.AddRow(
		xl.String("Class"),
		xl.String("Period"),
		xl.String("Section"),
		xl.String("Weight"),
		xl.String("Assignment"),
		xl.String("Grade"),
	)
	for _, course := range c.Courses {
		for _, p := range course.Grades {
			for _, s := range p.Sections {
				for _, a := range s.Assignments {
					sh.AddRow(
						xl.String(course.Class),
						xl.String(p.Name),
						xl.String(s.Name),
						xl.Float(s.Weight),
						xl.String(a.Name),
						xl.Float(a.Grade),
					)
				}
			}
		}
	}
	return sh
}

// Workbook assembles the report card and assignment sheets under title.
func Workbook(title string, c *Content, periods []string) (*xl.Workbook, error) {
	return xl.NewWorkbook(title, Sheet(c, periods), AssignmentsSheet(c))
}
