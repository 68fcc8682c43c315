package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyReader reports keyboard state. The default reads ebiten; tests and
// replays supply their own.
type KeyReader interface {
	Pressed(key ebiten.Key) bool
	JustPressed(key ebiten.Key) bool
	JustReleased(key ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) Pressed(key ebiten.Key) bool      { return ebiten.IsKeyPressed(key) }
func (ebitenKeys) JustPressed(key ebiten.Key) bool  { return inpututil.IsKeyJustPressed(key) }
func (ebitenKeys) JustReleased(key ebiten.Key) bool { return inpututil.IsKeyJustReleased(key) }

// InputSystem polls the keyboard once per frame
type InputSystem struct {
	keys KeyReader
}

// NewInputSystem creates an input system reading ebiten's keyboard
func NewInputSystem() *InputSystem {
	return &InputSystem{keys: ebitenKeys{}}
}

// NewInputSystemWith creates an input system over a custom key source
func NewInputSystemWith(keys KeyReader) *InputSystem {
	return &InputSystem{keys: keys}
}

// InputState holds the current input state.
// Held keys drive movement; the one-shot fields drive mode changes.
type InputState struct {
	Left  bool
	Right bool
	Jump  bool

	// HorizontalReleased is set on the frame a left/right key goes up
	HorizontalReleased bool

	Confirm      bool // space
	Pause        bool // escape
	Instructions bool // I
}

var (
	leftKeys  = []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}
	rightKeys = []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}
	jumpKeys  = []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}
)

func (s *InputSystem) anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if s.keys.Pressed(k) {
			return true
		}
	}
	return false
}

func (s *InputSystem) anyReleased(keys []ebiten.Key) bool {
	for _, k := range keys {
		if s.keys.JustReleased(k) {
			return true
		}
	}
	return false
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:               s.anyPressed(leftKeys),
		Right:              s.anyPressed(rightKeys),
		Jump:               s.anyPressed(jumpKeys),
		HorizontalReleased: s.anyReleased(leftKeys) || s.anyReleased(rightKeys),
		Confirm:            s.keys.JustPressed(ebiten.KeySpace),
		Pause:              s.keys.JustPressed(ebiten.KeyEscape),
		Instructions:       s.keys.JustPressed(ebiten.KeyI),
	}
}
