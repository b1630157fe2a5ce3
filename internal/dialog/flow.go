package dialog

import (
	"context"
	"strconv"
	"strings"

	"github.com/kundenwerk/regbot/internal/nlu"
	"github.com/kundenwerk/regbot/internal/texts"
	"github.com/kundenwerk/regbot/internal/validate"
)

// validateFunc checks raw input for one field. On success it returns the
// profile mutations to apply and the display form used in the
// confirmation question.
type validateFunc func(m *Machine, ctx context.Context, p Profile, raw string) (mutations map[string]string, display string, ok bool)

// step is one entry of the dialog backbone. The table below is the single
// source of truth for field ordering: advancing from confirm_<field> means
// moving to the next entry's ask state, re-asking means returning to the
// same entry's ask state.
type step struct {
	key      string // canonical profile key
	label    string // German label in confirmations and the summary
	ask      State
	confirm  State
	prompt   string
	reject   string
	entity   string // nlu entity type tried before raw validation, "" = none
	validate validateFunc

	// entityPrep reshapes an extracted span before validation and may add
	// mutations of its own (street: split off a trailing house number).
	entityPrep func(p Profile, span string) (candidate string, extra map[string]string)
}

var flow = []step{
	{
		key: KeyGender, label: "Geschlecht",
		ask: StateAskGender, confirm: StateConfirmGender,
		prompt: texts.AskGender, reject: texts.RejectGender,
		validate: validateGender,
	},
	{
		key: KeyTitle, label: "Titel",
		ask: StateAskTitle, confirm: StateConfirmTitle,
		prompt: texts.AskTitle, reject: texts.RejectTitle,
		validate: validateTitle,
	},
	{
		key: KeyFirstName, label: "Vorname",
		ask: StateAskFirstName, confirm: StateConfirmFirstName,
		prompt: texts.AskFirstName, reject: texts.RejectName,
		entity:   nlu.EntityName,
		validate: namePartInto(KeyFirstName),
	},
	{
		key: KeyLastName, label: "Nachname",
		ask: StateAskLastName, confirm: StateConfirmLastName,
		prompt: texts.AskLastName, reject: texts.RejectName,
		entity:   nlu.EntityName,
		validate: namePartInto(KeyLastName),
	},
	{
		key: KeyBirthDate, label: "Geburtsdatum",
		ask: StateAskBirthDate, confirm: StateConfirmBirthDate,
		prompt: texts.AskBirthDate, reject: texts.RejectBirthDate,
		validate: validateBirthDate,
	},
	{
		key: KeyEmail, label: "E-Mail",
		ask: StateAskEmail, confirm: StateConfirmEmail,
		prompt: texts.AskEmail, reject: texts.RejectEmail,
		entity:   nlu.EntityEmail,
		validate: validateEmail,
	},
	{
		key: KeyTelephone, label: "Telefonnummer",
		ask: StateAskPhone, confirm: StateConfirmPhone,
		prompt: texts.AskPhone, reject: texts.RejectPhone,
		validate: validatePhone,
	},
	{
		key: KeyStreetName, label: "Straße",
		ask: StateAskStreet, confirm: StateConfirmStreet,
		prompt: texts.AskStreet, reject: texts.RejectStreet,
		entity:     nlu.EntityStreet,
		entityPrep: splitStreetEntity,
		validate:   validateStreet,
	},
	{
		key: KeyHouseNumber, label: "Hausnummer",
		ask: StateAskHouseNumber, confirm: StateConfirmHouseNumber,
		prompt: texts.AskHouseNumber, reject: texts.RejectHouseNumber,
		validate: validateHouseNumber,
	},
	{
		key: KeyHouseNumberAddition, label: "Adresszusatz",
		ask: StateAskHouseAddition, confirm: StateConfirmHouseAddition,
		prompt: texts.AskHouseAddition, reject: texts.AskHouseAddition,
		validate: validateHouseAddition,
	},
	{
		key: KeyPostalCode, label: "Postleitzahl",
		ask: StateAskPostalCode, confirm: StateConfirmPostalCode,
		prompt: texts.AskPostalCode, reject: texts.RejectPostalCode,
		entity:   nlu.EntityZipCode,
		validate: validatePostalCode,
	},
	{
		key: KeyCity, label: "Stadt",
		ask: StateAskCity, confirm: StateConfirmCity,
		prompt: texts.AskCity, reject: texts.RejectCity,
		entity:   nlu.EntityCity,
		validate: validateCity,
	},
	{
		key: KeyCountryName, label: "Land",
		ask: StateAskCountry, confirm: StateConfirmCountry,
		prompt: texts.AskCountry, reject: texts.RejectCountry,
		validate: validateCountry,
	},
}

func stepByAsk(s State) (*step, bool) {
	for i := range flow {
		if flow[i].ask == s {
			return &flow[i], true
		}
	}
	return nil, false
}

func stepByConfirm(s State) (*step, int, bool) {
	for i := range flow {
		if flow[i].confirm == s {
			return &flow[i], i, true
		}
	}
	return nil, 0, false
}

// nextAsk returns the ask state following the given backbone position. The
// last confirmation has no successor in the table; that miss advances to
// the final summary instead.
func nextAsk(index int) (State, bool) {
	if index+1 < len(flow) {
		return flow[index+1].ask, true
	}
	return "", false
}

// ---------- per-field validation ----------

func validateGender(_ *Machine, _ context.Context, _ Profile, raw string) (map[string]string, string, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "männlich", "mann", "m", "male":
		return map[string]string{KeyGender: "MALE", KeyGenderDisplay: "männlich"}, "männlich", true
	case "weiblich", "frau", "w", "female":
		return map[string]string{KeyGender: "FEMALE", KeyGenderDisplay: "weiblich"}, "weiblich", true
	case "divers", "d", "diverse":
		return map[string]string{KeyGender: "DIVERSE", KeyGenderDisplay: "divers"}, "divers", true
	}
	return nil, "", false
}

func validateTitle(_ *Machine, _ context.Context, _ Profile, raw string) (map[string]string, string, bool) {
	switch strings.ToLower(strings.Trim(strings.TrimSpace(raw), ".")) {
	case "kein", "keinen", "keiner", "nein", "nichts":
		return map[string]string{KeyTitle: "", KeyTitleDisplay: "kein"}, "kein", true
	case "dr", "doktor":
		return map[string]string{KeyTitle: "DR", KeyTitleDisplay: "Dr."}, "Dr.", true
	case "prof", "professor":
		return map[string]string{KeyTitle: "PROF", KeyTitleDisplay: "Prof."}, "Prof.", true
	}
	return nil, "", false
}

func namePartInto(key string) validateFunc {
	return func(_ *Machine, _ context.Context, _ Profile, raw string) (map[string]string, string, bool) {
		name, ok := validate.NamePart(raw)
		if !ok {
			return nil, "", false
		}
		return map[string]string{key: name}, name, true
	}
}

func validateBirthDate(m *Machine, _ context.Context, _ Profile, raw string) (map[string]string, string, bool) {
	d, ok := validate.BirthDate(raw, m.now())
	if !ok {
		return nil, "", false
	}
	display := validate.FormatBirthDate(d)
	return map[string]string{
		KeyBirthDate:        d.Format(isoDate),
		KeyBirthDateDisplay: display,
	}, display, true
}

func validateEmail(_ *Machine, _ context.Context, _ Profile, raw string) (map[string]string, string, bool) {
	email, ok := validate.Email(raw)
	if !ok {
		return nil, "", false
	}
	return map[string]string{KeyEmail: email}, email, true
}

func validatePhone(_ *Machine, _ context.Context, _ Profile, raw string) (map[string]string, string, bool) {
	e164, ok := validate.Phone(raw)
	if !ok {
		return nil, "", false
	}
	return map[string]string{
		KeyTelephone:        e164,
		KeyTelephoneDisplay: strings.TrimSpace(raw),
	}, strings.TrimSpace(raw), true
}

func validateStreet(_ *Machine, _ context.Context, _ Profile, raw string) (map[string]string, string, bool) {
	street, ok := validate.Street(raw)
	if !ok {
		return nil, "", false
	}
	return map[string]string{KeyStreetName: street}, street, true
}

// splitStreetEntity handles the combined "street + number" span the
// extractor may return: trailing digits become a house-number candidate
// that is written only if the profile has none yet. One-way auto-fill,
// never an overwrite.
func splitStreetEntity(p Profile, span string) (string, map[string]string) {
	streetPart, numberPart := validate.SplitStreetAndNumber(span)
	if numberPart == "" || p.Has(KeyHouseNumber) {
		return streetPart, nil
	}
	n, ok := validate.HouseNumber(numberPart)
	if !ok {
		return streetPart, nil
	}
	return streetPart, map[string]string{KeyHouseNumber: strconv.Itoa(n)}
}

func validateHouseNumber(_ *Machine, _ context.Context, _ Profile, raw string) (map[string]string, string, bool) {
	n, ok := validate.HouseNumber(raw)
	if !ok {
		return nil, "", false
	}
	return map[string]string{KeyHouseNumber: strconv.Itoa(n)}, strconv.Itoa(n), true
}

func validateHouseAddition(_ *Machine, _ context.Context, _ Profile, raw string) (map[string]string, string, bool) {
	s := strings.TrimSpace(raw)
	switch strings.ToLower(s) {
	case "", "kein", "keine", "keiner", "nein", "-":
		return map[string]string{KeyHouseNumberAddition: ""}, "kein", true
	}
	return map[string]string{KeyHouseNumberAddition: s}, s, true
}

func validatePostalCode(_ *Machine, _ context.Context, _ Profile, raw string) (map[string]string, string, bool) {
	code, ok := validate.PostalCode(raw)
	if !ok {
		return nil, "", false
	}
	return map[string]string{KeyPostalCode: code}, code, true
}

func validateCity(_ *Machine, _ context.Context, _ Profile, raw string) (map[string]string, string, bool) {
	city, ok := validate.City(raw)
	if !ok {
		return nil, "", false
	}
	return map[string]string{KeyCity: city}, city, true
}

func validateCountry(_ *Machine, _ context.Context, _ Profile, raw string) (map[string]string, string, bool) {
	country, ok := validate.Country(raw)
	if !ok {
		return nil, "", false
	}
	return map[string]string{KeyCountryName: country}, country, true
}

// summaryValue renders a field for the final summary.
func summaryValue(p Profile, key string) string {
	switch key {
	case KeyGender:
		return p.Get(KeyGenderDisplay)
	case KeyTitle:
		if v := p.Get(KeyTitleDisplay); v != "" {
			return v
		}
		return "kein"
	case KeyBirthDate:
		return p.Get(KeyBirthDateDisplay)
	case KeyTelephone:
		if v := p.Get(KeyTelephoneDisplay); v != "" {
			return v
		}
		return p.Get(KeyTelephone)
	case KeyHouseNumberAddition:
		if v := p.Get(KeyHouseNumberAddition); v != "" {
			return v
		}
		return "kein"
	default:
		return p.Get(key)
	}
}
