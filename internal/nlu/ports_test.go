package nlu

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubExtractor struct {
	entities []Entity
	err      error
}

func (s *stubExtractor) Extract(context.Context, string) ([]Entity, error) {
	return s.entities, s.err
}

func TestFirstEntity(t *testing.T) {
	ctx := context.Background()

	ex := &stubExtractor{entities: []Entity{
		{Name: "City", Text: "Berlin", Confidence: 0.9},
		{Name: "Name", Text: "Max", Confidence: 0.8},
		{Name: "Name", Text: "Moritz", Confidence: 0.7},
	}}
	assert.Equal(t, "Max", FirstEntity(ctx, ex, "ich bin Max", "Name"))
	assert.Equal(t, "Berlin", FirstEntity(ctx, ex, "aus Berlin", "City"))
	assert.Empty(t, FirstEntity(ctx, ex, "x", "email"))
}

func TestFirstEntityDegradesSilently(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, FirstEntity(ctx, nil, "text", "Name"))
	assert.Empty(t, FirstEntity(ctx, &stubExtractor{err: errors.New("service down")}, "text", "Name"))
	assert.Empty(t, FirstEntity(ctx, &stubExtractor{entities: []Entity{{Name: "Name"}}}, "text", "Name"),
		"empty entity text is treated as no match")
}
