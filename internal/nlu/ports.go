package nlu

import "context"

// Entity is one span recognized in free text.
type Entity struct {
	Name       string  `json:"name"`
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

// Extractor pulls structured entities out of free text. Implementations
// may fail at any time; callers treat extraction as advisory.
type Extractor interface {
	Extract(ctx context.Context, text string) ([]Entity, error)
}

// FirstEntity returns the text of the first entity named name, or "" when
// the extractor is nil, fails, or finds nothing. Extraction is a
// best-effort pre-pass and never surfaces errors to the dialog.
func FirstEntity(ctx context.Context, ex Extractor, text, name string) string {
	if ex == nil {
		return ""
	}
	entities, err := ex.Extract(ctx, text)
	if err != nil {
		return ""
	}
	for _, e := range entities {
		if e.Name == name && e.Text != "" {
			return e.Text
		}
	}
	return ""
}
