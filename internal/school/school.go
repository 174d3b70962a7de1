// Package school holds the domain core: students, classrooms and the
// School aggregate that owns them and enforces id uniqueness.
//
// A School is not safe for concurrent use. Callers that share one across
// goroutines must serialize access themselves.
package school

import "time"

// School is the aggregate root. Students and classrooms keep their
// insertion order; ids are unique within each collection.
type School struct {
	id         int
	name       string
	students   []Student
	classrooms []Classroom
}

func NewSchool(id int, name string) (*School, error) {
	if id <= 0 {
		return nil, invalid("id", "must be positive")
	}
	if err := required("name", name); err != nil {
		return nil, err
	}
	return &School{id: id, name: name}, nil
}

func (s *School) ID() int      { return s.id }
func (s *School) Name() string { return s.name }

func (s *School) SetName(name string) error {
	if err := required("name", name); err != nil {
		return err
	}
	s.name = name
	return nil
}

// Students returns a copy of the roster in insertion order.
func (s *School) Students() []Student {
	return append([]Student(nil), s.students...)
}

// Classrooms returns a copy of the classrooms in insertion order.
func (s *School) Classrooms() []Classroom {
	return append([]Classroom(nil), s.classrooms...)
}

func (s *School) Student(id int) (Student, bool) {
	if i := s.studentIndex(id); i >= 0 {
		return s.students[i], true
	}
	return Student{}, false
}

func (s *School) Classroom(id int) (Classroom, bool) {
	if i := s.classroomIndex(id); i >= 0 {
		return s.classrooms[i], true
	}
	return Classroom{}, false
}

func (s *School) HasStudent(id int) bool   { return s.studentIndex(id) >= 0 }
func (s *School) HasClassroom(id int) bool { return s.classroomIndex(id) >= 0 }

// AddStudent appends student to the roster. A student that was never
// built through NewStudent is rejected as invalid.
func (s *School) AddStudent(student Student) error {
	if student.id <= 0 {
		return invalid("student", "must be constructed with NewStudent")
	}
	if s.HasStudent(student.id) {
		return &DuplicateIDError{Kind: "student", ID: student.id}
	}
	s.students = append(s.students, student)
	return nil
}

func (s *School) AddClassroom(classroom Classroom) error {
	if classroom.id <= 0 {
		return invalid("classroom", "must be constructed with NewClassroom")
	}
	if s.HasClassroom(classroom.id) {
		return &DuplicateIDError{Kind: "classroom", ID: classroom.id}
	}
	s.classrooms = append(s.classrooms, classroom)
	return nil
}

// RemoveStudent deletes the student with the given id and reports whether
// one was found.
func (s *School) RemoveStudent(id int) bool {
	i := s.studentIndex(id)
	if i < 0 {
		return false
	}
	s.students = append(s.students[:i], s.students[i+1:]...)
	return true
}

func (s *School) RemoveClassroom(id int) bool {
	i := s.classroomIndex(id)
	if i < 0 {
		return false
	}
	s.classrooms = append(s.classrooms[:i], s.classrooms[i+1:]...)
	return true
}

// UpdateStudent replaces the mutable fields of a student. Nothing changes
// unless both values are valid. The bool is false when id is unknown.
func (s *School) UpdateStudent(id int, name, className string) (Student, bool, error) {
	i := s.studentIndex(id)
	if i < 0 {
		return Student{}, false, nil
	}
	updated := s.students[i]
	if err := updated.SetName(name); err != nil {
		return Student{}, true, err
	}
	if err := updated.SetClassName(className); err != nil {
		return Student{}, true, err
	}
	s.students[i] = updated
	return updated, true, nil
}

// UpdateClassroom replaces the mutable fields of a classroom, all or nothing.
func (s *School) UpdateClassroom(id int, roomName string, size float64, capacity int, hasFeatureFlag bool) (Classroom, bool, error) {
	i := s.classroomIndex(id)
	if i < 0 {
		return Classroom{}, false, nil
	}
	updated := s.classrooms[i]
	if err := updated.SetRoomName(roomName); err != nil {
		return Classroom{}, true, err
	}
	if err := updated.SetSize(size); err != nil {
		return Classroom{}, true, err
	}
	if err := updated.SetCapacity(capacity); err != nil {
		return Classroom{}, true, err
	}
	updated.SetHasFeatureFlag(hasFeatureFlag)
	s.classrooms[i] = updated
	return updated, true, nil
}

func (s *School) TotalStudents() int   { return len(s.students) }
func (s *School) TotalClassrooms() int { return len(s.classrooms) }

func (s *School) StudentsByGender(gender Gender) int {
	n := 0
	for _, st := range s.students {
		if st.gender == gender {
			n++
		}
	}
	return n
}

// AverageAge is the mean student age in years as of today, or 0 for an
// empty roster.
func (s *School) AverageAge() float64 {
	return s.AverageAgeAt(time.Now())
}

func (s *School) AverageAgeAt(today time.Time) float64 {
	if len(s.students) == 0 {
		return 0
	}
	var sum float64
	for _, st := range s.students {
		sum += st.AgeAt(today)
	}
	return sum / float64(len(s.students))
}

func (s *School) ClassroomsWithFeatureFlag() []Classroom {
	var out []Classroom
	for _, c := range s.classrooms {
		if c.hasFeatureFlag {
			out = append(out, c)
		}
	}
	return out
}

func (s *School) TotalDistinctClasses() int {
	return len(s.ClassesWithStudentCount())
}

// ClassesWithStudentCount maps every class name to its number of students.
func (s *School) ClassesWithStudentCount() map[string]int {
	counts := make(map[string]int)
	for _, st := range s.students {
		counts[st.className]++
	}
	return counts
}

// FemalePercentageInClass returns the share of female students in the
// class as a percentage, or 0 when nobody is enrolled in it.
func (s *School) FemalePercentageInClass(className string) (float64, error) {
	if err := required("className", className); err != nil {
		return 0, err
	}
	var total, female int
	for _, st := range s.students {
		if st.className != className {
			continue
		}
		total++
		if st.gender == GenderFemale {
			female++
		}
	}
	if total == 0 {
		return 0, nil
	}
	return float64(female) / float64(total) * 100, nil
}

// CanClassFitInRoom reports whether the room named roomName seats every
// student of className. Both names match exactly. An unknown room never fits.
func (s *School) CanClassFitInRoom(className, roomName string) (bool, error) {
	if err := required("className", className); err != nil {
		return false, err
	}
	if err := required("roomName", roomName); err != nil {
		return false, err
	}
	for _, c := range s.classrooms {
		if c.roomName == roomName {
			return c.capacity >= s.classSize(className), nil
		}
	}
	return false, nil
}

func (s *School) classSize(className string) int {
	n := 0
	for _, st := range s.students {
		if st.className == className {
			n++
		}
	}
	return n
}

func (s *School) studentIndex(id int) int {
	for i, st := range s.students {
		if st.id == id {
			return i
		}
	}
	return -1
}

func (s *School) classroomIndex(id int) int {
	for i, c := range s.classrooms {
		if c.id == id {
			return i
		}
	}
	return -1
}
