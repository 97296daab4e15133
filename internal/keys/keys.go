// Package keys models virtual key codes and key combinations.
//
// A Combination is a list of chords pressed one after another. Keys in a
// chord are pressed in the order given and released in reverse, so
// {{VK_CONTROL, VK_V}} produces Ctrl down, V down, V up, Ctrl up.
package keys

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Code is a Windows virtual key code
type Code uint8

// Chord is a set of keys held down together
type Chord []Code

// Combination is a sequence of chords
type Combination []Chord

// Event is a single key press or release
type Event struct {
	Code Code
	Up   bool
}

var (
	// ErrUnknownKey means a key name could not be resolved
	ErrUnknownKey = errors.New("unknown key")

	// ErrEmptyChord means a chord contained no keys
	ErrEmptyChord = errors.New("empty chord")
)

const (
	VK_BACK    Code = 0x08
	VK_TAB     Code = 0x09
	VK_RETURN  Code = 0x0D
	VK_SHIFT   Code = 0x10
	VK_CONTROL Code = 0x11
	VK_MENU    Code = 0x12
	VK_PAUSE   Code = 0x13
	VK_CAPITAL Code = 0x14
	VK_ESCAPE  Code = 0x1B
	VK_SPACE   Code = 0x20
	VK_PRIOR   Code = 0x21
	VK_NEXT    Code = 0x22
	VK_END     Code = 0x23
	VK_HOME    Code = 0x24
	VK_LEFT    Code = 0x25
	VK_UP      Code = 0x26
	VK_RIGHT   Code = 0x27
	VK_DOWN    Code = 0x28
	VK_INSERT  Code = 0x2D
	VK_DELETE  Code = 0x2E
	VK_LWIN    Code = 0x5B
	VK_APPS    Code = 0x5D
	VK_F1      Code = 0x70
	VK_F12     Code = 0x7B
)

var names = map[string]Code{
	"backspace": VK_BACK,
	"back":      VK_BACK,
	"tab":       VK_TAB,
	"enter":     VK_RETURN,
	"return":    VK_RETURN,
	"shift":     VK_SHIFT,
	"ctrl":      VK_CONTROL,
	"control":   VK_CONTROL,
	"alt":       VK_MENU,
	"menu":      VK_MENU,
	"pause":     VK_PAUSE,
	"capslock":  VK_CAPITAL,
	"esc":       VK_ESCAPE,
	"escape":    VK_ESCAPE,
	"space":     VK_SPACE,
	"pageup":    VK_PRIOR,
	"pgup":      VK_PRIOR,
	"pagedown":  VK_NEXT,
	"pgdn":      VK_NEXT,
	"end":       VK_END,
	"home":      VK_HOME,
	"left":      VK_LEFT,
	"up":        VK_UP,
	"right":     VK_RIGHT,
	"down":      VK_DOWN,
	"insert":    VK_INSERT,
	"ins":       VK_INSERT,
	"delete":    VK_DELETE,
	"del":       VK_DELETE,
	"win":       VK_LWIN,
	"apps":      VK_APPS,
}

// canonical names used by String, first alias wins
var display = map[Code]string{
	VK_BACK:    "backspace",
	VK_TAB:     "tab",
	VK_RETURN:  "enter",
	VK_SHIFT:   "shift",
	VK_CONTROL: "ctrl",
	VK_MENU:    "alt",
	VK_PAUSE:   "pause",
	VK_CAPITAL: "capslock",
	VK_ESCAPE:  "esc",
	VK_SPACE:   "space",
	VK_PRIOR:   "pageup",
	VK_NEXT:    "pagedown",
	VK_END:     "end",
	VK_HOME:    "home",
	VK_LEFT:    "left",
	VK_UP:      "up",
	VK_RIGHT:   "right",
	VK_DOWN:    "down",
	VK_INSERT:  "insert",
	VK_DELETE:  "delete",
	VK_LWIN:    "win",
	VK_APPS:    "apps",
}

// Lookup resolves a single key name such as "ctrl", "a", "f5" or "0x41"
func Lookup(name string) (Code, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return 0, fmt.Errorf("%w: empty name", ErrUnknownKey)
	}

	if code, ok := names[n]; ok {
		return code, nil
	}

	// Letters and digits share their ASCII code with the virtual key
	if len(n) == 1 {
		c := n[0]
		switch {
		case c >= 'a' && c <= 'z':
			return Code(c - 'a' + 'A'), nil
		case c >= '0' && c <= '9':
			return Code(c), nil
		}
	}

	if len(n) >= 2 && n[0] == 'f' {
		if num, err := strconv.Atoi(n[1:]); err == nil && num >= 1 && num <= 24 {
			return VK_F1 + Code(num-1), nil
		}
	}

	if strings.HasPrefix(n, "0x") {
		v, err := strconv.ParseUint(n[2:], 16, 8)
		if err == nil && v != 0 {
			return Code(v), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKey, name)
}

// Parse reads a combination such as "ctrl+shift+s,enter"
func Parse(s string) (Combination, error) {
	if strings.TrimSpace(s) == "" {
		return nil, ErrEmptyChord
	}

	var combo Combination
	for i, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			return nil, fmt.Errorf("chord %d: %w", i+1, ErrEmptyChord)
		}

		var chord Chord
		for _, name := range strings.Split(part, "+") {
			code, err := Lookup(name)
			if err != nil {
				return nil, fmt.Errorf("chord %d: %w", i+1, err)
			}

			chord = append(chord, code)
		}

		combo = append(combo, chord)
	}

	return combo, nil
}

// Events expands a combination into its press and release sequence
func Events(c Combination) []Event {
	var events []Event

	for _, chord := range c {
		for _, code := range chord {
			events = append(events, Event{Code: code})
		}

		for i := len(chord) - 1; i >= 0; i-- {
			events = append(events, Event{Code: chord[i], Up: true})
		}
	}

	return events
}

func (c Code) String() string {
	if name, ok := display[c]; ok {
		return name
	}

	switch {
	case c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return strings.ToLower(string(rune(c)))
	case c >= VK_F1 && c <= VK_F1+23:
		return "f" + strconv.Itoa(int(c-VK_F1)+1)
	}

	return fmt.Sprintf("0x%02x", uint8(c))
}

func (ch Chord) String() string {
	parts := make([]string, len(ch))
	for i, code := range ch {
		parts[i] = code.String()
	}

	return strings.Join(parts, "+")
}

func (c Combination) String() string {
	parts := make([]string, len(c))
	for i, chord := range c {
		parts[i] = chord.String()
	}

	return strings.Join(parts, ",")
}
