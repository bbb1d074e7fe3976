package system

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/orbitcam/controls"
	"github.com/milk9111/orbitcam/ecs"
	"github.com/milk9111/orbitcam/ecs/component"
)

// InputSystem samples ebiten's cursor, wheel, and button state into every
// entity's InputState each frame. Only the buttons the controls config binds
// are sampled; everything downstream works on the opaque tokens.
type InputSystem struct {
	cfg *controls.Config

	lastX, lastY int
	hasCursor    bool
}

func NewInputSystem(cfg *controls.Config) *InputSystem {
	return &InputSystem{cfg: cfg}
}

func (s *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	cx, cy := ebiten.CursorPosition()
	var dx, dy float64
	if s.hasCursor {
		dx = float64(cx - s.lastX)
		dy = float64(cy - s.lastY)
	}
	s.lastX, s.lastY = cx, cy
	s.hasCursor = true

	_, wheelY := ebiten.Wheel()
	bound := s.cfg.Buttons()

	ecs.ForEach(w, component.InputComponent, func(_ ecs.Entity, in *component.InputState) {
		in.Reset()
		in.CursorDX = dx
		in.CursorDY = dy
		in.Wheel = wheelY
		for _, b := range bound {
			in.SetHeld(b, pressed(b))
		}
	})
}

// pressed maps a binding token to live ebiten state. Unknown tokens are
// never held.
func pressed(b component.Button) bool {
	if mb, ok := mouseButtons[b]; ok {
		return ebiten.IsMouseButtonPressed(mb)
	}
	if name, ok := component.KeyName(b); ok {
		if k, ok := keys[name]; ok {
			return ebiten.IsKeyPressed(k)
		}
	}
	return false
}

var mouseButtons = map[component.Button]ebiten.MouseButton{
	component.MouseLeft:   ebiten.MouseButtonLeft,
	component.MouseRight:  ebiten.MouseButtonRight,
	component.MouseMiddle: ebiten.MouseButtonMiddle,
}

var keys = map[string]ebiten.Key{
	"a": ebiten.KeyA, "b": ebiten.KeyB, "c": ebiten.KeyC, "d": ebiten.KeyD,
	"e": ebiten.KeyE, "f": ebiten.KeyF, "g": ebiten.KeyG, "h": ebiten.KeyH,
	"i": ebiten.KeyI, "j": ebiten.KeyJ, "k": ebiten.KeyK, "l": ebiten.KeyL,
	"m": ebiten.KeyM, "n": ebiten.KeyN, "o": ebiten.KeyO, "p": ebiten.KeyP,
	"q": ebiten.KeyQ, "r": ebiten.KeyR, "s": ebiten.KeyS, "t": ebiten.KeyT,
	"u": ebiten.KeyU, "v": ebiten.KeyV, "w": ebiten.KeyW, "x": ebiten.KeyX,
	"y": ebiten.KeyY, "z": ebiten.KeyZ,
	"0": ebiten.KeyDigit0, "1": ebiten.KeyDigit1, "2": ebiten.KeyDigit2,
	"3": ebiten.KeyDigit3, "4": ebiten.KeyDigit4, "5": ebiten.KeyDigit5,
	"6": ebiten.KeyDigit6, "7": ebiten.KeyDigit7, "8": ebiten.KeyDigit8,
	"9": ebiten.KeyDigit9,
	"space":       ebiten.KeySpace,
	"shift_left":  ebiten.KeyShiftLeft,
	"shift_right": ebiten.KeyShiftRight,
	"ctrl_left":   ebiten.KeyControlLeft,
	"ctrl_right":  ebiten.KeyControlRight,
	"alt_left":    ebiten.KeyAltLeft,
	"alt_right":   ebiten.KeyAltRight,
	"tab":         ebiten.KeyTab,
}
