package dialog

import (
	"fmt"
	"strconv"
	"time"

	"github.com/kundenwerk/regbot/internal/customer"
)

// Profile field keys.
const (
	KeyGender              = "gender"
	KeyGenderDisplay       = "gender_display"
	KeyTitle               = "title"
	KeyTitleDisplay        = "title_display"
	KeyFirstName           = "first_name"
	KeyLastName            = "last_name"
	KeyBirthDate           = "birth_date"
	KeyBirthDateDisplay    = "birth_date_display"
	KeyEmail               = "email"
	KeyTelephone           = "telephone"
	KeyTelephoneDisplay    = "telephone_display"
	KeyStreetName          = "street_name"
	KeyHouseNumber         = "house_number"
	KeyHouseNumberAddition = "house_number_addition"
	KeyPostalCode          = "postal_code"
	KeyCity                = "city"
	KeyCountryName         = "country_name"
)

// Transient flag keys.
const (
	KeyFirstInteraction      = "first_interaction"
	KeyConsentGiven          = "consent_given"
	KeyConsentTimestamp      = "consent_timestamp"
	KeyRegistrationCancelled = "registration_cancelled"
	KeyCorrectionMode        = "correction_mode"
	KeyCorrectionReturnTo    = "correction_return_to"
)

// Profile is the accumulated field values of one in-progress registration.
// It lives inside the conversation session and is never shared across
// conversations.
type Profile map[string]string

func NewProfile() Profile {
	return Profile{}
}

func (p Profile) Get(key string) string { return p[key] }

func (p Profile) Has(key string) bool {
	_, ok := p[key]
	return ok
}

func (p Profile) Set(key, value string) { p[key] = value }

func (p Profile) Delete(key string) { delete(p, key) }

func (p Profile) Flag(key string) bool { return p[key] == "true" }

func (p Profile) SetFlag(key string, v bool) { p[key] = strconv.FormatBool(v) }

// Reset removes every key, keeping only the flags passed in keep.
func (p Profile) Reset(keep ...string) {
	kept := map[string]string{}
	for _, k := range keep {
		if v, ok := p[k]; ok {
			kept[k] = v
		}
	}
	for k := range p {
		delete(p, k)
	}
	for k, v := range kept {
		p[k] = v
	}
}

const isoDate = "2006-01-02"

// Registration assembles the persisted record from a completed profile.
func (p Profile) Registration() (*customer.Registration, error) {
	for _, key := range []string{
		KeyGender, KeyFirstName, KeyLastName, KeyBirthDate, KeyEmail,
		KeyTelephone, KeyStreetName, KeyHouseNumber, KeyPostalCode,
		KeyCity, KeyCountryName,
	} {
		if p.Get(key) == "" {
			return nil, fmt.Errorf("dialog: profile missing %s", key)
		}
	}

	birthDate, err := time.Parse(isoDate, p.Get(KeyBirthDate))
	if err != nil {
		return nil, fmt.Errorf("dialog: profile birth_date: %w", err)
	}
	houseNumber, err := strconv.Atoi(p.Get(KeyHouseNumber))
	if err != nil || houseNumber <= 0 {
		return nil, fmt.Errorf("dialog: profile house_number %q", p.Get(KeyHouseNumber))
	}

	return &customer.Registration{
		Gender:              customer.Gender(p.Get(KeyGender)),
		Title:               customer.Title(p.Get(KeyTitle)),
		FirstName:           p.Get(KeyFirstName),
		LastName:            p.Get(KeyLastName),
		BirthDate:           birthDate,
		Email:               p.Get(KeyEmail),
		Telephone:           p.Get(KeyTelephone),
		StreetName:          p.Get(KeyStreetName),
		HouseNumber:         houseNumber,
		HouseNumberAddition: p.Get(KeyHouseNumberAddition),
		PostalCode:          p.Get(KeyPostalCode),
		City:                p.Get(KeyCity),
		CountryName:         p.Get(KeyCountryName),
	}, nil
}
