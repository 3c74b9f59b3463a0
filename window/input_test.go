package window

import "testing"

func TestKeyState_IsDown(t *testing.T) {
	tests := []struct {
		state KeyState
		want  bool
	}{
		{KeyStateUp, false},
		{KeyStatePressed, true},
		{KeyStateDown, true},
		{KeyStateReleased, false},
	}
	for _, tt := range tests {
		if got := tt.state.IsDown(); got != tt.want {
			t.Errorf("IsDown(%v) = %v, want %v", tt.state, got, tt.want)
		}
	}
}

func TestActiveKey_Precedence(t *testing.T) {
	w, err := NewOffscreen(8, 8)
	if err != nil {
		t.Fatalf("NewOffscreen: %v", err)
	}
	defer w.Close()

	if k := ActiveKey(w); k != KeyUnknown {
		t.Errorf("idle ActiveKey = %v, want unknown", k)
	}

	w.SetKeyState(KeyD, KeyStateDown)
	if k := ActiveKey(w); k != KeyD {
		t.Errorf("ActiveKey = %v, want D", k)
	}

	// W outranks D.
	w.SetKeyState(KeyW, KeyStateDown)
	if k := ActiveKey(w); k != KeyW {
		t.Errorf("ActiveKey = %v, want W", k)
	}

	// Escape outranks all movement keys.
	w.SetKeyState(KeyEscape, KeyStateDown)
	if k := ActiveKey(w); k != KeyEscape {
		t.Errorf("ActiveKey = %v, want Escape", k)
	}
}

func TestActiveKey_ArrowAliases(t *testing.T) {
	tests := []struct {
		arrow Key
		want  Key
	}{
		{KeyUp, KeyW},
		{KeyDown, KeyS},
		{KeyLeft, KeyA},
		{KeyRight, KeyD},
	}

	for _, tt := range tests {
		w, err := NewOffscreen(8, 8)
		if err != nil {
			t.Fatalf("NewOffscreen: %v", err)
		}
		w.SetKeyState(tt.arrow, KeyStateDown)
		if k := ActiveKey(w); k != tt.want {
			t.Errorf("ActiveKey with %v down = %v, want %v", tt.arrow, k, tt.want)
		}
		w.Close()
	}
}
