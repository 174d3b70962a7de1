package school

import (
	"strconv"
	"strings"
	"time"
)

// Gender of a person.
type Gender int

const (
	GenderMale Gender = iota
	GenderFemale
	GenderOther
)

var genderNames = [...]string{
	GenderMale:   "Male",
	GenderFemale: "Female",
	GenderOther:  "Other",
}

// Valid reports whether g is one of the defined genders.
func (g Gender) Valid() bool {
	return g >= GenderMale && g <= GenderOther
}

func (g Gender) String() string {
	if !g.Valid() {
		return "Gender(" + strconv.Itoa(int(g)) + ")"
	}
	return genderNames[g]
}

// MarshalText encodes g by name so it reads as "Female" in JSON.
func (g Gender) MarshalText() ([]byte, error) {
	if !g.Valid() {
		return nil, invalid("gender", "undefined value "+strconv.Itoa(int(g)))
	}
	return []byte(genderNames[g]), nil
}

func (g *Gender) UnmarshalText(text []byte) error {
	parsed, err := ParseGender(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// ParseGender matches s against the gender names ignoring case and
// surrounding whitespace.
func ParseGender(s string) (Gender, error) {
	s = strings.TrimSpace(s)
	for g, name := range genderNames {
		if strings.EqualFold(s, name) {
			return Gender(g), nil
		}
	}
	return 0, invalid("gender", "must be one of Male, Female, Other")
}

// PersonInfo holds the identity and biographic fields shared by every
// person in a school. It is immutable once built.
type PersonInfo struct {
	id          int
	gender      Gender
	dateOfBirth time.Time
}

// NewPersonInfo validates id, gender and dateOfBirth against today's date.
// The date of birth is reduced to its calendar date.
func NewPersonInfo(id int, gender Gender, dateOfBirth time.Time) (PersonInfo, error) {
	if id <= 0 {
		return PersonInfo{}, invalid("id", "must be positive")
	}
	if !gender.Valid() {
		return PersonInfo{}, invalid("gender", "undefined value "+strconv.Itoa(int(gender)))
	}
	dob := Date(dateOfBirth)
	if dob.After(Date(time.Now())) {
		return PersonInfo{}, invalid("dateOfBirth", "cannot be in the future")
	}
	return PersonInfo{id: id, gender: gender, dateOfBirth: dob}, nil
}

func (p PersonInfo) ID() int                { return p.id }
func (p PersonInfo) Gender() Gender         { return p.gender }
func (p PersonInfo) DateOfBirth() time.Time { return p.dateOfBirth }

// AgeAt returns the age in years on the given day, counting 365 days per year.
func (p PersonInfo) AgeAt(today time.Time) float64 {
	days := Date(today).Sub(p.dateOfBirth).Hours() / 24
	return days / 365
}

// Date truncates t to midnight UTC of its calendar date.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
