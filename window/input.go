package window

// Key represents a keyboard key.
type Key int

const (
	KeyUnknown Key = iota

	// Letters
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	// Special keys
	KeySpace
	KeyEnter
	KeyEscape

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	keyCount
)

// KeyState represents the state of a keyboard key.
type KeyState int

const (
	// KeyStateUp indicates the key is currently up
	KeyStateUp KeyState = iota
	// KeyStatePressed indicates the key was pressed this frame
	KeyStatePressed
	// KeyStateDown indicates the key is currently down
	KeyStateDown
	// KeyStateReleased indicates the key was released this frame
	KeyStateReleased
)

// IsDown returns true if the key state indicates the key is currently down.
func (ks KeyState) IsDown() bool {
	return ks == KeyStatePressed || ks == KeyStateDown
}

// activeKeys is the probe order for ActiveKey. Escape wins over
// everything; the movement keys follow in WASD order.
var activeKeys = []Key{KeyEscape, KeyX, KeyW, KeyS, KeyA, KeyD}

// ActiveKey returns the highest-precedence key currently held down:
// Escape first, then X, W, S, A, D. Arrow keys alias to WASD, so a
// held ArrowUp reports KeyW. Returns KeyUnknown when none of those
// keys are down.
func ActiveKey(w Window) Key {
	for _, k := range activeKeys {
		if w.KeyState(k).IsDown() {
			return k
		}
		if alias, ok := arrowAlias(k); ok && w.KeyState(alias).IsDown() {
			return k
		}
	}
	return KeyUnknown
}

// arrowAlias maps a WASD key to the arrow key carrying the same
// movement meaning.
func arrowAlias(k Key) (Key, bool) {
	switch k {
	case KeyW:
		return KeyUp, true
	case KeyS:
		return KeyDown, true
	case KeyA:
		return KeyLeft, true
	case KeyD:
		return KeyRight, true
	}
	return KeyUnknown, false
}
