// Package types holds the request and response shapes exchanged over HTTP.
// Domain values from the school package are converted here so handlers,
// storage and the roster codec can share them without import cycles.
package types

import (
	"fmt"
	"time"

	"github.com/aanand-mishra/school-api/internal/school"
)

// DateLayout is the calendar-date form used for dateOfBirth on the wire.
const DateLayout = "2006-01-02"

// StudentRequest is the body of POST /api/students.
//
// validate:"..." tags are checked by go-playground/validator before the
// domain constructors run; the constructors repeat the checks that matter.
type StudentRequest struct {
	Name        string `json:"name"        validate:"required"`
	Gender      string `json:"gender"      validate:"required"`
	DateOfBirth string `json:"dateOfBirth" validate:"required"`
	ClassName   string `json:"className"   validate:"required"`
}

// StudentUpdate is the body of PUT /api/students/{id}.
type StudentUpdate struct {
	Name      string `json:"name"      validate:"required"`
	ClassName string `json:"className" validate:"required"`
}

// ClassroomRequest is the body of POST and PUT on classrooms.
type ClassroomRequest struct {
	RoomName       string  `json:"roomName"       validate:"required"`
	Size           float64 `json:"size"           validate:"gt=0"`
	Capacity       int     `json:"capacity"       validate:"gt=0"`
	HasFeatureFlag bool    `json:"hasFeatureFlag"`
}

// Student is the JSON shape of a school.Student.
type Student struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Gender      string `json:"gender"`
	DateOfBirth string `json:"dateOfBirth"`
	ClassName   string `json:"className"`
}

// Classroom is the JSON shape of a school.Classroom.
type Classroom struct {
	ID             int     `json:"id"`
	RoomName       string  `json:"roomName"`
	Size           float64 `json:"size"`
	Capacity       int     `json:"capacity"`
	HasFeatureFlag bool    `json:"hasFeatureFlag"`
}

// FitResponse answers GET /api/classroom/fit.
type FitResponse struct {
	ClassName string `json:"className"`
	RoomName  string `json:"roomName"`
	CanFit    bool   `json:"canFit"`
}

// FemalePercentage answers GET /api/school/classes/{className}/female-percentage.
type FemalePercentage struct {
	ClassName  string  `json:"className"`
	Percentage float64 `json:"percentage"`
}

// Report is the JSON shape of school.Summary.
type Report struct {
	SchoolID                  int            `json:"schoolId"`
	SchoolName                string         `json:"schoolName"`
	TotalStudents             int            `json:"totalStudents"`
	TotalClassrooms           int            `json:"totalClassrooms"`
	StudentsByGender          map[string]int `json:"studentsByGender"`
	AverageAge                float64        `json:"averageAge"`
	TotalDistinctClasses      int            `json:"totalDistinctClasses"`
	ClassesWithStudentCount   map[string]int `json:"classesWithStudentCount"`
	ClassroomsWithFeatureFlag []Classroom    `json:"classroomsWithFeatureFlag"`
}

// ImportResult answers POST /api/students/import.
type ImportResult struct {
	Imported int        `json:"imported"`
	Skipped  []RowError `json:"skipped"`
	Students []Student  `json:"students"`
}

// RowError explains why one spreadsheet row was not imported.
// Row is 1-based, matching what a spreadsheet application displays.
type RowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// ParseDate accepts a calendar date ("2010-05-01") or an RFC 3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, &school.ValidationError{
		Field:   "dateOfBirth",
		Message: fmt.Sprintf("%q is not a date, expected YYYY-MM-DD", s),
	}
}

func FromStudent(s school.Student) Student {
	return Student{
		ID:          s.ID(),
		Name:        s.Name(),
		Gender:      s.Gender().String(),
		DateOfBirth: s.DateOfBirth().Format(DateLayout),
		ClassName:   s.ClassName(),
	}
}

// FromStudents converts a roster; the result is never nil so it encodes as [].
func FromStudents(list []school.Student) []Student {
	out := make([]Student, 0, len(list))
	for _, s := range list {
		out = append(out, FromStudent(s))
	}
	return out
}

func FromClassroom(c school.Classroom) Classroom {
	return Classroom{
		ID:             c.ID(),
		RoomName:       c.RoomName(),
		Size:           c.Size(),
		Capacity:       c.Capacity(),
		HasFeatureFlag: c.HasFeatureFlag(),
	}
}

func FromClassrooms(list []school.Classroom) []Classroom {
	out := make([]Classroom, 0, len(list))
	for _, c := range list {
		out = append(out, FromClassroom(c))
	}
	return out
}

func FromSummary(s school.Summary) Report {
	byGender := make(map[string]int, len(s.StudentsByGender))
	for g, n := range s.StudentsByGender {
		byGender[g.String()] = n
	}
	return Report{
		SchoolID:                  s.SchoolID,
		SchoolName:                s.SchoolName,
		TotalStudents:             s.TotalStudents,
		TotalClassrooms:           s.TotalClassrooms,
		StudentsByGender:          byGender,
		AverageAge:                s.AverageAge,
		TotalDistinctClasses:      s.DistinctClasses,
		ClassesWithStudentCount:   s.ClassSizes,
		ClassroomsWithFeatureFlag: FromClassrooms(s.FeatureRooms),
	}
}
