package school

import "strings"

// Student is a person enrolled in a class of the school.
type Student struct {
	PersonInfo
	name      string
	className string
}

// NewStudent builds a student from already validated person info.
func NewStudent(info PersonInfo, name, className string) (Student, error) {
	if info.id <= 0 {
		return Student{}, invalid("id", "must be positive")
	}
	s := Student{PersonInfo: info}
	if err := s.SetName(name); err != nil {
		return Student{}, err
	}
	if err := s.SetClassName(className); err != nil {
		return Student{}, err
	}
	return s, nil
}

func (s Student) Name() string      { return s.name }
func (s Student) ClassName() string { return s.className }

func (s *Student) SetName(name string) error {
	if err := required("name", name); err != nil {
		return err
	}
	s.name = name
	return nil
}

func (s *Student) SetClassName(className string) error {
	if err := required("className", className); err != nil {
		return err
	}
	s.className = className
	return nil
}

// required rejects empty and whitespace-only values.
func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return invalid(field, "cannot be empty")
	}
	return nil
}
