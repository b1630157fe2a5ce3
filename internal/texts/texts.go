// Package texts holds every user-visible German string of the registration
// dialog in one place. Handlers never inline message literals.
package texts

const (
	Greeting = "Hallo! Ich bin der Registrierungsassistent. " +
		"Ich helfe Ihnen dabei, sich als Kunde zu registrieren."

	AskConsent = "Dürfen wir Ihre Daten für die Registrierung speichern und verarbeiten? (ja/nein)"

	ConsentDeclined = "Verstanden, die Registrierung wurde abgebrochen. " +
		"Es wurden keine Daten gespeichert. Schreiben Sie \"neu\", um später neu zu beginnen."

	AskGender        = "Bitte nennen Sie Ihr Geschlecht: männlich, weiblich oder divers."
	AskTitle         = "Haben Sie einen Titel? (Dr., Prof. oder \"kein\")"
	AskFirstName     = "Wie lautet Ihr Vorname?"
	AskLastName      = "Wie lautet Ihr Nachname?"
	AskBirthDate     = "Bitte nennen Sie Ihr Geburtsdatum im Format TT.MM.JJJJ, z. B. 15.03.1990."
	AskEmail         = "Wie lautet Ihre E-Mail-Adresse?"
	AskPhone         = "Wie lautet Ihre Telefonnummer? (deutsche Nummer, z. B. 030 1234567 oder +49 30 1234567)"
	AskStreet        = "In welcher Straße wohnen Sie?"
	AskHouseNumber   = "Welche Hausnummer haben Sie?"
	AskHouseAddition = "Gibt es einen Adresszusatz (z. B. \"Hinterhaus\")? Falls nicht, antworten Sie \"kein\"."
	AskPostalCode    = "Wie lautet Ihre Postleitzahl? (5 Ziffern)"
	AskCity          = "In welcher Stadt wohnen Sie?"
	AskCountry       = "In welchem Land wohnen Sie?"

	// ConfirmValue is rendered with the field label and the entered value.
	ConfirmValue = "Ich habe %s \"%s\" verstanden. Ist das korrekt? (ja/nein)"

	ConfirmRepeat = "Bitte antworten Sie mit \"ja\" oder \"nein\"."

	CorrectionSaved = "Alles klar, %s wurde aktualisiert."

	RejectName = "Das sieht nicht wie ein gültiger Name aus. " +
		"Bitte verwenden Sie mindestens zwei Buchstaben (Umlaute, Bindestrich und Apostroph sind erlaubt)."
	RejectBirthDate = "Das Datum konnte ich nicht verarbeiten. " +
		"Bitte verwenden Sie das Format TT.MM.JJJJ und ein Datum in der Vergangenheit."
	RejectEmail = "Das sieht nicht wie eine gültige E-Mail-Adresse aus. " +
		"Bitte verwenden Sie das Format name@domain.de."
	RejectPhone = "Das sieht nicht wie eine gültige deutsche Telefonnummer aus. " +
		"Bitte geben Sie z. B. 030 1234567 oder +49 30 1234567 ein."
	RejectStreet = "Das sieht nicht wie ein gültiger Straßenname aus. " +
		"Bitte verwenden Sie mindestens drei Buchstaben."
	RejectHouseNumber = "Bitte geben Sie eine Hausnummer als positive Zahl ein, z. B. 5."
	RejectPostalCode  = "Eine Postleitzahl besteht aus genau fünf Ziffern, z. B. 10115."
	RejectCity        = "Das sieht nicht wie ein gültiger Stadtname aus. Bitte versuchen Sie es erneut."
	RejectCountry     = "Das sieht nicht wie ein gültiger Ländername aus. Bitte versuchen Sie es erneut."
	RejectGender      = "Bitte antworten Sie mit männlich, weiblich oder divers."
	RejectTitle       = "Bitte antworten Sie mit Dr., Prof. oder \"kein\"."

	DuplicateEmail = "Diese E-Mail-Adresse ist bereits registriert. " +
		"Bitte geben Sie eine andere E-Mail-Adresse an."

	TryAgainLater = "Das hat leider gerade nicht geklappt. Bitte versuchen Sie es gleich noch einmal."

	SummaryHeader = "Fast geschafft! Bitte prüfen Sie Ihre Angaben:"
	SummaryFooter = "Ist alles korrekt? (ja/nein)"

	CorrectionMenu = "Welche Angabe möchten Sie ändern? " +
		"Antworten Sie mit der Nummer oder dem Namen des Feldes " +
		"(z. B. \"6\" oder \"E-Mail\"), mit \"zurück\" für die Übersicht oder \"neu\" für einen Neustart."
	CorrectionUnknown = "Das habe ich leider nicht zuordnen können."

	RegistrationDone = "Vielen Dank! Ihre Registrierung ist abgeschlossen."

	PersistFailed = "Beim Speichern Ihrer Registrierung ist leider ein Fehler aufgetreten. " +
		"Antworten Sie \"nochmal\", um es erneut zu versuchen, oder \"neu\", um von vorne zu beginnen."
	ErrorRetryUnknown = "Bitte antworten Sie \"nochmal\" für einen neuen Versuch oder \"neu\" für einen Neustart."

	AlreadyRegistered = "Sie sind bereits registriert. Eine erneute Registrierung ist nicht nötig."
	CompletedHelp     = "Ihre Registrierung ist bereits abgeschlossen. " +
		"Bei Fragen wenden Sie sich gerne an unseren Support."
	CancelledHelp = "Ihre letzte Registrierung wurde abgebrochen. " +
		"Schreiben Sie \"neu\", um eine neue Registrierung zu starten."

	Confused = "Entschuldigung, da ist etwas durcheinandergeraten. " +
		"Schreiben Sie \"neu\", um eine neue Registrierung zu starten."

	VoiceOnly = "Ich bin ein Sprachassistent. Bitte senden Sie mir eine Sprachnachricht."
	TextOnly  = "Ich kann leider nur Textnachrichten verarbeiten. Bitte schreiben Sie mir."

	SpeechUnavailable = "Der Sprachdienst ist gerade nicht erreichbar. Bitte versuchen Sie es später erneut."
	TranscriptEmpty   = "Ich konnte Ihre Sprachnachricht leider nicht verstehen. Bitte versuchen Sie es erneut."
)
