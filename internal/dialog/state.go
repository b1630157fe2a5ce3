// Package dialog implements the registration dialog state machine: the
// ordered field-collection backbone, the per-field confirmation wrapper,
// the consent gate, and the correction sub-flow. The machine is channel
// agnostic; presenters normalize input before it gets here.
package dialog

// State is the single current step label of a conversation. Exactly one
// state is active per conversation; transitions happen only inside the
// machine.
type State string

const (
	StateGreeting   State = "greeting"
	StateAskConsent State = "ask_consent"

	StateAskGender        State = "ask_gender"
	StateAskTitle         State = "ask_title"
	StateAskFirstName     State = "ask_first_name"
	StateAskLastName      State = "ask_last_name"
	StateAskBirthDate     State = "ask_birthdate"
	StateAskEmail         State = "ask_email"
	StateAskPhone         State = "ask_phone"
	StateAskStreet        State = "ask_street"
	StateAskHouseNumber   State = "ask_house_number"
	StateAskHouseAddition State = "ask_house_addition"
	StateAskPostalCode    State = "ask_postal"
	StateAskCity          State = "ask_city"
	StateAskCountry       State = "ask_country"

	StateConfirmGender        State = "confirm_gender"
	StateConfirmTitle         State = "confirm_title"
	StateConfirmFirstName     State = "confirm_first_name"
	StateConfirmLastName      State = "confirm_last_name"
	StateConfirmBirthDate     State = "confirm_birthdate"
	StateConfirmEmail         State = "confirm_email"
	StateConfirmPhone         State = "confirm_phone"
	StateConfirmStreet        State = "confirm_street"
	StateConfirmHouseNumber   State = "confirm_house_number"
	StateConfirmHouseAddition State = "confirm_house_addition"
	StateConfirmPostalCode    State = "confirm_postal"
	StateConfirmCity          State = "confirm_city"
	StateConfirmCountry       State = "confirm_country"

	StateCorrectionSelection State = "correction_selection"
	StateFinalConfirmation   State = "final_confirmation"
	StateCompleted           State = "completed"
	StateError               State = "error"
)
