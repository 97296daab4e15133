package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Code
	}{
		{"modifier", "ctrl", VK_CONTROL},
		{"alias", "Control", VK_CONTROL},
		{"alt", "ALT", VK_MENU},
		{"enter", "return", VK_RETURN},
		{"lowercase letter", "v", 'V'},
		{"uppercase letter", "V", 'V'},
		{"digit", "7", '7'},
		{"function key", "f5", VK_F1 + 4},
		{"last function key", "F24", VK_F1 + 23},
		{"hex literal", "0x41", 'A'},
		{"padded", "  shift ", VK_SHIFT},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Lookup(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	for _, in := range []string{"", "hyper", "f0", "f25", "0x00", "0xzz", "ab"} {
		t.Run(in, func(t *testing.T) {
			_, err := Lookup(in)
			assert.ErrorIs(t, err, ErrUnknownKey)
		})
	}
}

func TestParse(t *testing.T) {
	combo, err := Parse("ctrl+shift+s,enter")
	require.NoError(t, err)

	assert.Equal(t, Combination{
		{VK_CONTROL, VK_SHIFT, 'S'},
		{VK_RETURN},
	}, combo)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		err  error
	}{
		{"empty input", "", ErrEmptyChord},
		{"empty chord", "ctrl+v,,enter", ErrEmptyChord},
		{"dangling plus", "ctrl+", ErrUnknownKey},
		{"unknown name", "ctrl+banana", ErrUnknownKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.in)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestEvents_CtrlV(t *testing.T) {
	events := Events(Combination{{VK_CONTROL, 'V'}})

	assert.Equal(t, []Event{
		{Code: VK_CONTROL},
		{Code: 'V'},
		{Code: 'V', Up: true},
		{Code: VK_CONTROL, Up: true},
	}, events)
}

func TestEvents_MultipleChords(t *testing.T) {
	events := Events(Combination{{VK_MENU, VK_TAB}, {VK_RETURN}})

	assert.Equal(t, []Event{
		{Code: VK_MENU},
		{Code: VK_TAB},
		{Code: VK_TAB, Up: true},
		{Code: VK_MENU, Up: true},
		{Code: VK_RETURN},
		{Code: VK_RETURN, Up: true},
	}, events)
}

func TestEvents_Empty(t *testing.T) {
	assert.Empty(t, Events(nil))
	assert.Empty(t, Events(Combination{{}}))
}

func TestCombination_String(t *testing.T) {
	tests := []struct {
		combo Combination
		want  string
	}{
		{Combination{{VK_CONTROL, 'V'}}, "ctrl+v"},
		{Combination{{VK_MENU, VK_F1 + 3}, {VK_RETURN}}, "alt+f4,enter"},
		{Combination{{'1'}, {0xA0}}, "1,0xa0"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.combo.String())

			parsed, err := Parse(tt.want)
			require.NoError(t, err)
			assert.Equal(t, tt.combo, parsed)
		})
	}
}
