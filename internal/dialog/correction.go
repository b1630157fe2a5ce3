package dialog

import "strconv"

// correctionAliases maps user answers in the correction menu to backbone
// positions. Numeric answers 1–13 are handled separately. Matching is
// case-insensitive via normalizeAnswer.
var correctionAliases = map[string]int{
	"geschlecht": 0, "gender": 0,
	"titel": 1, "title": 1, "anrede": 1,
	"vorname": 2, "rufname": 2,
	"nachname": 3, "familienname": 3, "name": 3,
	"geburtsdatum": 4, "geburtstag": 4,
	"e-mail": 5, "email": 5, "mail": 5, "e-mail-adresse": 5, "emailadresse": 5,
	"telefon": 6, "telefonnummer": 6, "handynummer": 6, "handy": 6, "nummer": 6,
	"straße": 7, "strasse": 7,
	"hausnummer":   8,
	"adresszusatz": 9, "zusatz": 9, "hauszusatz": 9,
	"postleitzahl": 10, "plz": 10,
	"stadt": 11, "ort": 11,
	"land": 12,
}

// matchCorrection resolves a correction-menu answer to a backbone index.
func matchCorrection(input string) (int, bool) {
	s := normalizeAnswer(input)
	if n, err := strconv.Atoi(s); err == nil {
		if n >= 1 && n <= len(flow) {
			return n - 1, true
		}
		return 0, false
	}
	idx, ok := correctionAliases[s]
	return idx, ok
}
