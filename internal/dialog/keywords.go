package dialog

import "strings"

func normalizeAnswer(s string) string {
	return strings.ToLower(strings.Trim(strings.TrimSpace(s), ".!?, "))
}

var yesAnswers = map[string]bool{
	"ja": true, "j": true, "jo": true, "jawohl": true, "yes": true,
	"genau": true, "korrekt": true, "richtig": true, "stimmt": true,
	"passt": true, "ok": true, "okay": true,
}

var noAnswers = map[string]bool{
	"nein": true, "n": true, "no": true, "nö": true, "ne": true,
	"falsch": true, "nicht korrekt": true,
}

var restartKeywords = map[string]bool{
	"neu": true, "neustart": true, "restart": true, "von vorne": true,
	"neu starten": true, "neu anfangen": true,
}

var retryKeywords = map[string]bool{
	"nochmal": true, "noch mal": true, "noch einmal": true,
	"erneut": true, "retry": true, "wiederholen": true,
}

var backKeywords = map[string]bool{
	"zurück": true, "übersicht": true, "zusammenfassung": true,
	"summary": true, "back": true,
}

func isYes(s string) bool     { return yesAnswers[normalizeAnswer(s)] }
func isNo(s string) bool      { return noAnswers[normalizeAnswer(s)] }
func isRestart(s string) bool { return restartKeywords[normalizeAnswer(s)] }
func isRetry(s string) bool   { return retryKeywords[normalizeAnswer(s)] }
func isBack(s string) bool    { return backKeywords[normalizeAnswer(s)] }
