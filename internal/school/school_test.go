package school

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func newTestSchool(t *testing.T) *School {
	t.Helper()
	s, err := NewSchool(1, "MySchool")
	if err != nil {
		t.Fatalf("NewSchool: %v", err)
	}
	return s
}

func mustClassroom(t *testing.T, id int, roomName string, capacity int, flag bool) Classroom {
	t.Helper()
	c, err := NewClassroom(id, roomName, 30, capacity, flag)
	if err != nil {
		t.Fatalf("NewClassroom: %v", err)
	}
	return c
}

func TestNewSchool_InvalidArguments_ReturnsValidationError(t *testing.T) {
	if _, err := NewSchool(0, "MySchool"); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for zero id, got %v", err)
	}
	if _, err := NewSchool(1, " "); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for blank name, got %v", err)
	}
}

func TestSchool_SetName_Invalid_KeepsPriorValue(t *testing.T) {
	s := newTestSchool(t)

	if err := s.SetName(""); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if s.Name() != "MySchool" {
		t.Errorf("expected MySchool, got %s", s.Name())
	}
}

func TestSchool_AddStudent_DuplicateID_ReturnsError(t *testing.T) {
	s := newTestSchool(t)
	if err := s.AddStudent(mustStudent(t, 5, GenderMale, "A")); err != nil {
		t.Fatalf("first add: %v", err)
	}

	err := s.AddStudent(mustStudent(t, 5, GenderFemale, "B"))

	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
	var derr *DuplicateIDError
	if !errors.As(err, &derr) || derr.ID != 5 || derr.Kind != "student" {
		t.Errorf("unexpected duplicate error %v", err)
	}
	if s.TotalStudents() != 1 {
		t.Errorf("expected 1 student, got %d", s.TotalStudents())
	}
}

func TestSchool_AddClassroom_DuplicateID_ReturnsError(t *testing.T) {
	s := newTestSchool(t)
	if err := s.AddClassroom(mustClassroom(t, 2, "101", 10, false)); err != nil {
		t.Fatalf("first add: %v", err)
	}

	if err := s.AddClassroom(mustClassroom(t, 2, "102", 10, false)); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
	if s.TotalClassrooms() != 1 {
		t.Errorf("expected 1 classroom, got %d", s.TotalClassrooms())
	}
}

func TestSchool_AddZeroValues_ReturnsValidationError(t *testing.T) {
	s := newTestSchool(t)

	if err := s.AddStudent(Student{}); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for zero student, got %v", err)
	}
	if err := s.AddClassroom(Classroom{}); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for zero classroom, got %v", err)
	}
}

func TestSchool_RemoveStudent(t *testing.T) {
	s := newTestSchool(t)
	for _, id := range []int{1, 2, 3} {
		if err := s.AddStudent(mustStudent(t, id, GenderMale, "A")); err != nil {
			t.Fatal(err)
		}
	}

	if s.RemoveStudent(42) {
		t.Error("removing an unknown id must return false")
	}
	if s.TotalStudents() != 3 {
		t.Fatalf("unknown id must not change the roster, got %d", s.TotalStudents())
	}

	if !s.RemoveStudent(2) {
		t.Fatal("removing a known id must return true")
	}
	if s.HasStudent(2) {
		t.Error("student 2 must be gone")
	}
	var ids []int
	for _, st := range s.Students() {
		ids = append(ids, st.ID())
	}
	if !reflect.DeepEqual(ids, []int{1, 3}) {
		t.Errorf("expected order [1 3], got %v", ids)
	}
}

func TestSchool_RemoveClassroom(t *testing.T) {
	s := newTestSchool(t)
	if err := s.AddClassroom(mustClassroom(t, 9, "101", 10, false)); err != nil {
		t.Fatal(err)
	}

	if s.RemoveClassroom(1) {
		t.Error("removing an unknown id must return false")
	}
	if !s.RemoveClassroom(9) {
		t.Error("removing a known id must return true")
	}
	if s.TotalClassrooms() != 0 {
		t.Errorf("expected no classrooms, got %d", s.TotalClassrooms())
	}
}

func TestSchool_Students_ReturnsCopy(t *testing.T) {
	s := newTestSchool(t)
	if err := s.AddStudent(mustStudent(t, 1, GenderMale, "A")); err != nil {
		t.Fatal(err)
	}

	list := s.Students()
	if err := list[0].SetName("Changed"); err != nil {
		t.Fatal(err)
	}

	if got, _ := s.Student(1); got.Name() != "Student" {
		t.Errorf("school roster must not be reachable through Students(), got %s", got.Name())
	}
}

func TestSchool_StudentsByGender(t *testing.T) {
	s := newTestSchool(t)
	genders := []Gender{GenderFemale, GenderMale, GenderFemale, GenderOther}
	for i, g := range genders {
		if err := s.AddStudent(mustStudent(t, i+1, g, "A")); err != nil {
			t.Fatal(err)
		}
	}

	if n := s.StudentsByGender(GenderFemale); n != 2 {
		t.Errorf("expected 2 female, got %d", n)
	}
	if n := s.StudentsByGender(GenderMale); n != 1 {
		t.Errorf("expected 1 male, got %d", n)
	}
}

func TestSchool_AverageAge_Empty_ReturnsZero(t *testing.T) {
	if got := newTestSchool(t).AverageAge(); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
}

func TestSchool_AverageAgeAt(t *testing.T) {
	s := newTestSchool(t)
	today := time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i, days := range []int{365, 3 * 365} {
		info, err := NewPersonInfo(i+1, GenderMale, today.AddDate(0, 0, -days))
		if err != nil {
			t.Fatal(err)
		}
		st, err := NewStudent(info, "S", "A")
		if err != nil {
			t.Fatal(err)
		}
		if err := s.AddStudent(st); err != nil {
			t.Fatal(err)
		}
	}

	if got := s.AverageAgeAt(today); got != 2 {
		t.Errorf("expected average age 2, got %v", got)
	}
}

func TestSchool_ClassroomsWithFeatureFlag_KeepsOrder(t *testing.T) {
	s := newTestSchool(t)
	rooms := []Classroom{
		mustClassroom(t, 1, "A1", 10, true),
		mustClassroom(t, 2, "A2", 10, false),
		mustClassroom(t, 3, "A3", 10, true),
	}
	for _, c := range rooms {
		if err := s.AddClassroom(c); err != nil {
			t.Fatal(err)
		}
	}

	got := s.ClassroomsWithFeatureFlag()

	if len(got) != 2 || got[0].RoomName() != "A1" || got[1].RoomName() != "A3" {
		t.Errorf("expected [A1 A3], got %+v", got)
	}
}

func TestSchool_ClassesWithStudentCount(t *testing.T) {
	s := newTestSchool(t)
	for i, class := range []string{"A", "A", "B"} {
		if err := s.AddStudent(mustStudent(t, i+1, GenderMale, class)); err != nil {
			t.Fatal(err)
		}
	}

	got := s.ClassesWithStudentCount()

	if want := map[string]int{"A": 2, "B": 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if n := s.TotalDistinctClasses(); n != 2 {
		t.Errorf("expected 2 distinct classes, got %d", n)
	}
}

func TestSchool_FemalePercentageInClass(t *testing.T) {
	s := newTestSchool(t)
	if err := s.AddStudent(mustStudent(t, 1, GenderFemale, "A")); err != nil {
		t.Fatal(err)
	}
	if err := s.AddStudent(mustStudent(t, 2, GenderMale, "A")); err != nil {
		t.Fatal(err)
	}
	if err := s.AddStudent(mustStudent(t, 3, GenderMale, "B")); err != nil {
		t.Fatal(err)
	}

	got, err := s.FemalePercentageInClass("A")
	if err != nil {
		t.Fatal(err)
	}
	if got != 50.0 {
		t.Errorf("expected 50, got %v", got)
	}

	got, err = s.FemalePercentageInClass("C")
	if err != nil || got != 0 {
		t.Errorf("expected 0 for an empty class, got %v (%v)", got, err)
	}

	if _, err := s.FemalePercentageInClass(""); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestSchool_CanClassFitInRoom(t *testing.T) {
	tests := []struct {
		name     string
		students int
		room     string
		want     bool
	}{
		{"exactly at capacity", 2, "Room1", true},
		{"over capacity", 3, "Room1", false},
		{"unknown room", 1, "Room9", false},
		{"room name is case-sensitive", 1, "room1", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSchool(t)
			if err := s.AddClassroom(mustClassroom(t, 1, "Room1", 2, false)); err != nil {
				t.Fatal(err)
			}
			for i := 0; i < tt.students; i++ {
				if err := s.AddStudent(mustStudent(t, i+1, GenderMale, "A")); err != nil {
					t.Fatal(err)
				}
			}

			got, err := s.CanClassFitInRoom("A", tt.room)

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestSchool_CanClassFitInRoom_EmptyArguments_ReturnsValidationError(t *testing.T) {
	s := newTestSchool(t)

	if _, err := s.CanClassFitInRoom("", "101"); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for empty class, got %v", err)
	}
	if _, err := s.CanClassFitInRoom("Math", ""); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for empty room, got %v", err)
	}
}

func TestSchool_MathClassDoesNotFitSingleSeatRoom(t *testing.T) {
	s := newTestSchool(t)
	if err := s.AddClassroom(mustClassroom(t, 1, "101", 1, false)); err != nil {
		t.Fatal(err)
	}
	for _, id := range []int{1, 2} {
		if err := s.AddStudent(mustStudent(t, id, GenderFemale, "Math")); err != nil {
			t.Fatal(err)
		}
	}

	fits, err := s.CanClassFitInRoom("Math", "101")

	if err != nil {
		t.Fatal(err)
	}
	if fits {
		t.Error("two students must not fit a room with capacity 1")
	}
}

func TestSchool_UpdateStudent_IsAllOrNothing(t *testing.T) {
	s := newTestSchool(t)
	if err := s.AddStudent(mustStudent(t, 1, GenderMale, "A")); err != nil {
		t.Fatal(err)
	}

	if _, found, err := s.UpdateStudent(1, "Renamed", ""); !found || !errors.Is(err, ErrValidation) {
		t.Fatalf("expected found + ErrValidation, got found=%v err=%v", found, err)
	}
	if st, _ := s.Student(1); st.Name() != "Student" || st.ClassName() != "A" {
		t.Errorf("failed update must not change the student, got %s/%s", st.Name(), st.ClassName())
	}

	updated, found, err := s.UpdateStudent(1, "Renamed", "B")
	if err != nil || !found {
		t.Fatalf("unexpected result found=%v err=%v", found, err)
	}
	if updated.Name() != "Renamed" || updated.ClassName() != "B" {
		t.Errorf("unexpected update result %s/%s", updated.Name(), updated.ClassName())
	}

	if _, found, _ := s.UpdateStudent(99, "X", "Y"); found {
		t.Error("unknown id must report not found")
	}
}

func TestSchool_UpdateClassroom_IsAllOrNothing(t *testing.T) {
	s := newTestSchool(t)
	if err := s.AddClassroom(mustClassroom(t, 1, "101", 10, false)); err != nil {
		t.Fatal(err)
	}

	if _, _, err := s.UpdateClassroom(1, "102", 50, 0, true); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if c, _ := s.Classroom(1); c.RoomName() != "101" || c.HasFeatureFlag() {
		t.Errorf("failed update must not change the classroom, got %+v", c)
	}

	c, found, err := s.UpdateClassroom(1, "102", 50, 40, true)
	if err != nil || !found {
		t.Fatalf("unexpected result found=%v err=%v", found, err)
	}
	if c.RoomName() != "102" || c.Capacity() != 40 || !c.HasFeatureFlag() {
		t.Errorf("unexpected update result %+v", c)
	}
}

func TestSchool_Summary(t *testing.T) {
	s := newTestSchool(t)
	if err := s.AddStudent(mustStudent(t, 1, GenderFemale, "A")); err != nil {
		t.Fatal(err)
	}
	if err := s.AddClassroom(mustClassroom(t, 1, "101", 10, true)); err != nil {
		t.Fatal(err)
	}

	sum := s.Summary(time.Now())

	if sum.TotalStudents != 1 || sum.TotalClassrooms != 1 || sum.DistinctClasses != 1 {
		t.Errorf("unexpected totals %+v", sum)
	}
	if sum.StudentsByGender[GenderFemale] != 1 || sum.StudentsByGender[GenderMale] != 0 {
		t.Errorf("unexpected gender counts %v", sum.StudentsByGender)
	}
	if len(sum.FeatureRooms) != 1 {
		t.Errorf("expected 1 feature room, got %d", len(sum.FeatureRooms))
	}
}
