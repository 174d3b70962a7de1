// Package memory provides the in-memory implementation of storage.Storage.
//
// One *school.School lives behind a sync.RWMutex: mutations take the write
// lock, queries the read lock. Id generation runs under the write lock, so
// the "is this id free" probe and the insert that follows are atomic.
package memory

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/text/cases"

	"github.com/aanand-mishra/school-api/internal/config"
	"github.com/aanand-mishra/school-api/internal/school"
	"github.com/aanand-mishra/school-api/internal/storage"
)

// Memory is the concrete implementation of storage.Storage.
type Memory struct {
	mu           sync.RWMutex
	school       *school.School
	studentIDs   idSource
	classroomIDs idSource
}

var _ storage.Storage = (*Memory)(nil)

// New builds the school described by cfg.School with an empty roster.
func New(cfg *config.Config) (*Memory, error) {
	s, err := school.NewSchool(cfg.School.ID, cfg.School.Name)
	if err != nil {
		return nil, fmt.Errorf("memory.New: %w", err)
	}
	studentIDs, err := newIDSource(cfg.IDStrategy)
	if err != nil {
		return nil, fmt.Errorf("memory.New: %w", err)
	}
	classroomIDs, err := newIDSource(cfg.IDStrategy)
	if err != nil {
		return nil, fmt.Errorf("memory.New: %w", err)
	}
	return &Memory{school: s, studentIDs: studentIDs, classroomIDs: classroomIDs}, nil
}

func (m *Memory) CreateStudent(in storage.NewStudent) (school.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.createStudent(in)
}

// createStudent expects m.mu to be held for writing.
func (m *Memory) createStudent(in storage.NewStudent) (school.Student, error) {
	id := m.studentIDs.next(m.school.HasStudent)
	info, err := school.NewPersonInfo(id, in.Gender, in.DateOfBirth)
	if err != nil {
		return school.Student{}, err
	}
	st, err := school.NewStudent(info, in.Name, in.ClassName)
	if err != nil {
		return school.Student{}, err
	}
	if err := m.school.AddStudent(st); err != nil {
		return school.Student{}, fmt.Errorf("CreateStudent: %w", err)
	}
	return st, nil
}

func (m *Memory) ImportStudents(in []storage.NewStudent) ([]school.Student, []error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	created := make([]school.Student, 0, len(in))
	errs := make([]error, len(in))
	for i, entry := range in {
		st, err := m.createStudent(entry)
		if err != nil {
			errs[i] = err
			continue
		}
		created = append(created, st)
	}
	return created, errs
}

func (m *Memory) GetStudents() []school.Student {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.school.Students()
}

func (m *Memory) GetStudentByName(name string) (school.Student, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	fold := cases.Fold()
	key := fold.String(name)
	for _, st := range m.school.Students() {
		if fold.String(st.Name()) == key {
			return st, true
		}
	}
	return school.Student{}, false
}

func (m *Memory) GetStudentsByClass(className string) []school.Student {
	m.mu.RLock()
	defer m.mu.RUnlock()

	fold := cases.Fold()
	key := fold.String(className)
	out := make([]school.Student, 0)
	for _, st := range m.school.Students() {
		if fold.String(st.ClassName()) == key {
			out = append(out, st)
		}
	}
	return out
}

func (m *Memory) UpdateStudentByID(id int, name, className string) (school.Student, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.school.UpdateStudent(id, name, className)
}

func (m *Memory) DeleteStudentByID(id int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.school.RemoveStudent(id)
}

func (m *Memory) CreateClassroom(in storage.NewClassroom) (school.Classroom, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.classroomIDs.next(m.school.HasClassroom)
	c, err := school.NewClassroom(id, in.RoomName, in.Size, in.Capacity, in.HasFeatureFlag)
	if err != nil {
		return school.Classroom{}, err
	}
	if err := m.school.AddClassroom(c); err != nil {
		return school.Classroom{}, fmt.Errorf("CreateClassroom: %w", err)
	}
	return c, nil
}

func (m *Memory) GetClassrooms() []school.Classroom {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.school.Classrooms()
}

func (m *Memory) GetClassroomByName(roomName string) (school.Classroom, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	fold := cases.Fold()
	key := fold.String(roomName)
	for _, c := range m.school.Classrooms() {
		if fold.String(c.RoomName()) == key {
			return c, true
		}
	}
	return school.Classroom{}, false
}

func (m *Memory) UpdateClassroomByID(id int, in storage.NewClassroom) (school.Classroom, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.school.UpdateClassroom(id, in.RoomName, in.Size, in.Capacity, in.HasFeatureFlag)
}

func (m *Memory) DeleteClassroomByID(id int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.school.RemoveClassroom(id)
}

func (m *Memory) CanClassFitInRoom(className, roomName string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.school.CanClassFitInRoom(className, roomName)
}

func (m *Memory) FemalePercentageInClass(className string) (float64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.school.FemalePercentageInClass(className)
}

func (m *Memory) Summary(today time.Time) school.Summary {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.school.Summary(today)
}
