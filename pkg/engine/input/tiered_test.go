package input

import (
	"io"
	"strings"
	"testing"
)

func TestMapToIntent_Keys(t *testing.T) {
	tests := []struct {
		code string
		want Action
	}{
		{"arrow_up", ActionMoveNorth},
		{"w", ActionMoveNorth},
		{"arrow_down", ActionMoveSouth},
		{"s", ActionMoveSouth},
		{"arrow_left", ActionMoveWest},
		{"a", ActionMoveWest},
		{"arrow_right", ActionMoveEast},
		{"d", ActionMoveEast},
		{"space", ActionMoveRandom},
		{"escape", ActionCloseModal},
		{"x", ActionNone},
		{"", ActionNone},
	}
	for _, tt := range tests {
		got := MapToIntent(NewDebouncedInput(RawInput{Device: DeviceKeyboard, Code: tt.code}))
		if got.Action != tt.want {
			t.Errorf("MapToIntent(%q) = %v, want %v", tt.code, ActionName(got.Action), ActionName(tt.want))
		}
	}
}

func TestMapToIntent_ClickCarriesPosition(t *testing.T) {
	got := MapToIntent(NewDebouncedInput(RawInput{Device: DeviceMouse, Code: "mouse_left", X: 12, Y: 34}))
	if got.Action != ActionMoveTo || got.X != 12 || got.Y != 34 {
		t.Errorf("MapToIntent(click) = %+v", got)
	}
}

func TestMapToIntent_WheelDirection(t *testing.T) {
	tests := []struct {
		delta float64
		want  Intent
	}{
		{3.5, Intent{Action: ActionZoom, Delta: 1}},
		{-0.2, Intent{Action: ActionZoom, Delta: -1}},
		{0, Intent{Action: ActionNone}},
	}
	for _, tt := range tests {
		got := MapToIntent(NewDebouncedInput(RawInput{Device: DeviceMouse, Code: "wheel", Delta: tt.delta}))
		if got != tt.want {
			t.Errorf("MapToIntent(wheel %v) = %+v, want %+v", tt.delta, got, tt.want)
		}
	}
}

func TestGetBindingsByAction_Sorted(t *testing.T) {
	codes := GetBindingsByAction()[ActionMoveNorth]
	if len(codes) != 2 || codes[0] != "arrow_up" || codes[1] != "w" {
		t.Errorf("bindings for Move North = %v", codes)
	}
}

func TestLineReader(t *testing.T) {
	r := NewLineReader(strings.NewReader("Faker\r\nKR1\nlast"))
	for _, want := range []string{"Faker", "KR1", "last"} {
		got, err := r.ReadLine()
		if err != nil || got != want {
			t.Fatalf("ReadLine() = (%q, %v), want (%q, nil)", got, err, want)
		}
	}
	if _, err := r.ReadLine(); err != io.EOF {
		t.Errorf("ReadLine() at end err = %v, want io.EOF", err)
	}
}
