// Package validate contains the pure per-field validators of the
// registration dialog. Every validator takes raw user text and returns a
// normalized value plus an ok flag; there are no partial results and no
// side effects.
package validate

import (
	"net/mail"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/nyaruka/phonenumbers"
)

const (
	// MaxAgeYears is a loose sanity bound on the birthdate, not an
	// age-of-majority rule.
	MaxAgeYears = 150

	phoneRegion = "DE"
)

var (
	nameRE       = regexp.MustCompile(`^[A-Za-zÄÖÜäöüß'-]+$`)
	streetRE     = regexp.MustCompile(`^[A-Za-zÄÖÜäöüß. -]+$`)
	postalCodeRE = regexp.MustCompile(`^[0-9]{5}$`)
	domainRE     = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9-]*[A-Za-z0-9])?(\.[A-Za-z0-9]([A-Za-z0-9-]*[A-Za-z0-9])?)+$`)
)

// NamePart validates a single name component (first or last name).
func NamePart(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if len([]rune(s)) < 2 || !nameRE.MatchString(s) {
		return "", false
	}
	return s, true
}

// BirthDate parses DD.MM.YYYY. The date must be strictly before now and
// imply an age below MaxAgeYears.
func BirthDate(raw string, now time.Time) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	d, err := time.Parse("02.01.2006", s)
	if err != nil {
		return time.Time{}, false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !d.Before(today) {
		return time.Time{}, false
	}
	if !d.After(today.AddDate(-MaxAgeYears, 0, 0)) {
		return time.Time{}, false
	}
	return d, true
}

// FormatBirthDate renders a parsed birthdate back into the German display
// form used in confirmations and the summary.
func FormatBirthDate(d time.Time) string {
	return d.Format("02.01.2006")
}

// Email validates the local@domain shape and requires a dotted domain.
func Email(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return "", false
	}
	at := strings.LastIndex(s, "@")
	if at < 1 || !domainRE.MatchString(s[at+1:]) {
		return "", false
	}
	return strings.ToLower(s), true
}

// Phone parses raw as a German number and returns it in E.164. The
// original raw text is kept by the caller for display.
func Phone(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	num, err := phonenumbers.Parse(s, phoneRegion)
	if err != nil {
		return "", false
	}
	if !phonenumbers.IsValidNumberForRegion(num, phoneRegion) {
		return "", false
	}
	return phonenumbers.Format(num, phonenumbers.E164), true
}

// PostalCode accepts exactly five ASCII digits.
func PostalCode(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if !postalCodeRE.MatchString(s) {
		return "", false
	}
	return s, true
}

// Street validates a street name: letters, spaces, hyphens and dots, at
// least three runes.
func Street(raw string) (string, bool) {
	return freeText(raw, 3)
}

// City validates a city name.
func City(raw string) (string, bool) {
	return freeText(raw, 2)
}

// Country validates a country name.
func Country(raw string) (string, bool) {
	return freeText(raw, 2)
}

func freeText(raw string, minLen int) (string, bool) {
	s := strings.TrimSpace(raw)
	if len([]rune(s)) < minLen || !streetRE.MatchString(s) {
		return "", false
	}
	return s, true
}

// HouseNumber parses a strictly positive integer.
func HouseNumber(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// SplitStreetAndNumber splits a combined "street 12" span into the street
// part and a trailing house-number candidate. The number part is empty
// when the span has no trailing digits.
func SplitStreetAndNumber(raw string) (street, number string) {
	s := strings.TrimSpace(raw)
	i := len(s)
	for i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
		i--
	}
	if i == len(s) {
		return s, ""
	}
	return strings.TrimSpace(strings.TrimRight(s[:i], " ,")), s[i:]
}
