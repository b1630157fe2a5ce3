package dialog

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackboneOrdering(t *testing.T) {
	wantOrder := []string{
		KeyGender, KeyTitle, KeyFirstName, KeyLastName, KeyBirthDate,
		KeyEmail, KeyTelephone, KeyStreetName, KeyHouseNumber,
		KeyHouseNumberAddition, KeyPostalCode, KeyCity, KeyCountryName,
	}
	require.Len(t, flow, len(wantOrder))
	for i, key := range wantOrder {
		assert.Equal(t, key, flow[i].key, "position %d", i)
	}
}

func TestFlowStatesAreUniqueAndResolvable(t *testing.T) {
	seen := map[State]bool{}
	for i := range flow {
		st := &flow[i]
		assert.False(t, seen[st.ask], "duplicate ask state %s", st.ask)
		assert.False(t, seen[st.confirm], "duplicate confirm state %s", st.confirm)
		seen[st.ask] = true
		seen[st.confirm] = true

		byAsk, ok := stepByAsk(st.ask)
		require.True(t, ok)
		assert.Equal(t, st.key, byAsk.key)

		byConfirm, idx, ok := stepByConfirm(st.confirm)
		require.True(t, ok)
		assert.Equal(t, st.key, byConfirm.key)
		assert.Equal(t, i, idx)
	}
}

func TestNextAskTableMiss(t *testing.T) {
	next, ok := nextAsk(0)
	require.True(t, ok)
	assert.Equal(t, StateAskTitle, next)

	// The last confirmation has no table successor; the machine maps that
	// miss to the final summary.
	_, ok = nextAsk(len(flow) - 1)
	assert.False(t, ok)
}

func TestMatchCorrection(t *testing.T) {
	cases := map[string]int{
		"1":             0,
		"13":            12,
		"Geschlecht":    0,
		"E-Mail":        5,
		"email":         5,
		"PLZ":           10,
		"straße":        7,
		"strasse":       7,
		"Ort":           11,
		"telefonnummer": 6,
	}
	for in, want := range cases {
		got, ok := matchCorrection(in)
		require.True(t, ok, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}

	for _, in := range []string{"0", "14", "-1", "schuhgröße", ""} {
		_, ok := matchCorrection(in)
		assert.False(t, ok, "input %q", in)
	}
}

func TestCorrectionLabelsMatchMenuIndices(t *testing.T) {
	// Every backbone entry must be reachable by its 1-based menu index.
	for i := range flow {
		idx, ok := matchCorrection(strconv.Itoa(i + 1))
		require.True(t, ok)
		assert.Equal(t, i, idx)
	}
}
