package core

import "testing"

func TestInputFrameIntent(t *testing.T) {
	tests := []struct {
		name     string
		actions  []Action
		expected Intent
	}{
		{"empty", nil, Intent{}},
		{"left", []Action{ActionLeft}, Intent{Left: true}},
		{"right and jump", []Action{ActionRight, ActionJump}, Intent{Right: true, Up: true}},
		{"glide", []Action{ActionGlide}, Intent{Shift: true}},
		{"pause is not movement", []Action{ActionPause}, Intent{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tc.actions {
				f.Set(a)
			}
			var src IntentSource = f
			if got := src.Intent(); got != tc.expected {
				t.Errorf("Intent() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionPause)
	f.Clear()

	if f.Has(ActionLeft) || f.Has(ActionPause) {
		t.Error("Clear should remove all actions")
	}

	// Zero value frames are usable
	var zero InputFrame
	if zero.Has(ActionJump) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionJump)
	if !zero.Has(ActionJump) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionGlide.String() != "Glide" {
		t.Errorf("ActionGlide.String() = %q", ActionGlide.String())
	}
	if Action(99).String() != "Unknown" {
		t.Error("unknown actions should stringify as Unknown")
	}
}
