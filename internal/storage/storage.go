// Package storage defines the Storage interface, the contract the HTTP
// handlers use to reach the school they serve.
//
// Handlers depend only on this interface, so tests can hand them any
// implementation and the backing school can change without touching them.
package storage

import (
	"time"

	"github.com/aanand-mishra/school-api/internal/school"
)

// NewStudent carries the fields of a student before an id is assigned.
type NewStudent struct {
	Name        string
	Gender      school.Gender
	DateOfBirth time.Time
	ClassName   string
}

// NewClassroom carries the fields of a classroom before an id is assigned.
type NewClassroom struct {
	RoomName       string
	Size           float64
	Capacity       int
	HasFeatureFlag bool
}

// Storage is the school contract. Not-found is reported through a bool,
// never an error; errors are *school.ValidationError or
// *school.DuplicateIDError.
type Storage interface {
	// CreateStudent assigns an unused id, builds the student and adds it.
	CreateStudent(in NewStudent) (school.Student, error)

	// GetStudents returns every student in insertion order.
	GetStudents() []school.Student

	// GetStudentByName returns the first student whose name matches,
	// ignoring case.
	GetStudentByName(name string) (school.Student, bool)

	// GetStudentsByClass returns the students whose class name matches,
	// ignoring case. The result may be empty.
	GetStudentsByClass(className string) []school.Student

	// UpdateStudentByID replaces the mutable fields of a student.
	UpdateStudentByID(id int, name, className string) (school.Student, bool, error)

	// DeleteStudentByID removes a student and reports whether it existed.
	DeleteStudentByID(id int) bool

	// ImportStudents adds each entry in order. It returns the students
	// created and, index-aligned with in, the error for every entry that
	// was rejected (nil for the accepted ones).
	ImportStudents(in []NewStudent) ([]school.Student, []error)

	CreateClassroom(in NewClassroom) (school.Classroom, error)
	GetClassrooms() []school.Classroom
	GetClassroomByName(roomName string) (school.Classroom, bool)
	UpdateClassroomByID(id int, in NewClassroom) (school.Classroom, bool, error)
	DeleteClassroomByID(id int) bool

	// CanClassFitInRoom compares class size and room capacity using exact
	// name matches.
	CanClassFitInRoom(className, roomName string) (bool, error)

	FemalePercentageInClass(className string) (float64, error)

	// Summary reports the school's figures with ages as of today.
	Summary(today time.Time) school.Summary
}
