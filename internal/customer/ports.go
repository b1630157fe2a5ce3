package customer

import (
	"context"
	"time"
)

type Gender string

const (
	GenderMale    Gender = "MALE"
	GenderFemale  Gender = "FEMALE"
	GenderDiverse Gender = "DIVERSE"
)

type Title string

const (
	TitleNone      Title = ""
	TitleDoctor    Title = "DR"
	TitleProfessor Title = "PROF"
)

// Registration is one fully collected customer profile, ready to be
// persisted as the normalized country/city/address/customer/contact rows.
type Registration struct {
	Gender              Gender
	Title               Title
	FirstName           string
	LastName            string
	BirthDate           time.Time
	Email               string
	Telephone           string
	StreetName          string
	HouseNumber         int
	HouseNumberAddition string
	PostalCode          string
	City                string
	CountryName         string
}

// Repository persists completed registrations.
type Repository interface {
	// EmailExists is a point lookup used before a new email is accepted.
	EmailExists(ctx context.Context, email string) (bool, error)

	// Persist writes all records of one registration atomically. Partial
	// writes are never visible.
	Persist(ctx context.Context, reg *Registration) error
}
