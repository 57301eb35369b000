package domain

import (
	"encoding/json"
	"regexp"
)

// AdultAge is the inclusive lower bound for IsAdult.
const AdultAge = 18

// emailPart excludes @ and every whitespace rune, including vertical tab,
// Unicode space and line/paragraph separators, and the BOM.
const emailPart = `[^\s\v\p{Z}\x{FEFF}@]+`

var emailPattern = regexp.MustCompile(`^` + emailPart + `@` + emailPart + `\.` + emailPart + `$`)

// User is a mutable person record. Age and activity only change through
// UpdateAge and Activate/Deactivate; nothing is validated at construction.
type User struct {
	name     string
	email    string
	age      float64
	isActive bool
}

// UserSnapshot is the plain data view of a User at a point in time.
type UserSnapshot struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Age      float64 `json:"age"`
	IsActive bool    `json:"isActive"`
}

// NewUser builds an active user from the given fields as-is.
func NewUser(name, email string, age float64) *User {
	return &User{
		name:     name,
		email:    email,
		age:      age,
		isActive: true,
	}
}

func (u *User) Name() string   { return u.name }
func (u *User) Email() string  { return u.email }
func (u *User) Age() float64   { return u.age }
func (u *User) IsActive() bool { return u.isActive }

func (u *User) SetName(name string)   { u.name = name }
func (u *User) SetEmail(email string) { u.email = email }

// IsValidEmail reports whether the current email has the local@domain.tld shape.
func (u *User) IsValidEmail() bool {
	return emailPattern.MatchString(u.email)
}

func (u *User) IsAdult() bool {
	return u.age >= AdultAge
}

// UpdateAge replaces the age. Values below zero, and NaN, fail with
// ErrInvalidAge and leave the user untouched.
func (u *User) UpdateAge(age float64) error {
	if !(age >= 0) {
		return ErrInvalidAge
	}
	u.age = age
	return nil
}

// UpdateAgeValue is UpdateAge for dynamically typed input. Non-numbers fail
// with ErrInvalidAge.
func (u *User) UpdateAgeValue(v any) error {
	n, err := RequireNumber(v, ErrInvalidAge)
	if err != nil {
		return err
	}
	return u.UpdateAge(n)
}

func (u *User) Activate() {
	u.isActive = true
}

func (u *User) Deactivate() {
	u.isActive = false
}

// ToJSON returns the current field values. The snapshot is detached from the
// user, so later mutations do not show up in it.
func (u *User) ToJSON() UserSnapshot {
	return UserSnapshot{
		Name:     u.name,
		Email:    u.email,
		Age:      u.age,
		IsActive: u.isActive,
	}
}

func (u *User) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.ToJSON())
}
