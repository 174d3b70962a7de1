package school

import "time"

// Summary bundles the aggregate's reporting queries taken at one instant.
type Summary struct {
	SchoolID         int
	SchoolName       string
	TotalStudents    int
	TotalClassrooms  int
	StudentsByGender map[Gender]int
	AverageAge       float64
	DistinctClasses  int
	ClassSizes       map[string]int
	FeatureRooms     []Classroom
}

// Summary reports the school's figures with ages computed as of today.
func (s *School) Summary(today time.Time) Summary {
	byGender := make(map[Gender]int, len(genderNames))
	for g := range genderNames {
		byGender[Gender(g)] = s.StudentsByGender(Gender(g))
	}
	classes := s.ClassesWithStudentCount()
	return Summary{
		SchoolID:         s.id,
		SchoolName:       s.name,
		TotalStudents:    s.TotalStudents(),
		TotalClassrooms:  s.TotalClassrooms(),
		StudentsByGender: byGender,
		AverageAge:       s.AverageAgeAt(today),
		DistinctClasses:  len(classes),
		ClassSizes:       classes,
		FeatureRooms:     s.ClassroomsWithFeatureFlag(),
	}
}
