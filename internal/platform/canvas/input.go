package canvas

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/flagrun/internal/core"
)

// keyboard is the slice of Ebitengine's input state the window reads.
type keyboard interface {
	Pressed(k ebiten.Key) bool
	JustPressed(keys []ebiten.Key) []ebiten.Key
	JustReleased(k ebiten.Key) bool
}

type ebitenKeyboard struct{}

func (ebitenKeyboard) Pressed(k ebiten.Key) bool { return ebiten.IsKeyPressed(k) }

func (ebitenKeyboard) JustPressed(keys []ebiten.Key) []ebiten.Key {
	return inpututil.AppendJustPressedKeys(keys)
}

func (ebitenKeyboard) JustReleased(k ebiten.Key) bool { return inpututil.IsKeyJustReleased(k) }

var directionKeys = []struct {
	action core.Action
	keys   []ebiten.Key
}{
	{core.ActionUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
	{core.ActionDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
	{core.ActionLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{core.ActionRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
}

// windowCommands are key presses the window handles itself.
type windowCommands struct {
	quit      bool
	copyDebug bool
}

// readInput builds this frame's game input from the keyboard.
// buf is scratch space reused across frames.
func readInput(kb keyboard, buf []ebiten.Key) (core.InputFrame, windowCommands, []ebiten.Key) {
	frame := core.NewInputFrame()
	var cmds windowCommands

	for _, d := range directionKeys {
		for _, k := range d.keys {
			if kb.Pressed(k) {
				frame.Set(d.action)
				break
			}
		}
	}

	buf = kb.JustPressed(buf[:0])
	for _, k := range buf {
		switch k {
		case ebiten.KeyEscape:
			cmds.quit = true
		case ebiten.KeyF2:
			cmds.copyDebug = true
		}
	}
	if len(buf) > 0 {
		frame.Set(core.ActionAnyKey)
	}

	if kb.JustReleased(ebiten.KeyZ) {
		frame.Set(core.ActionAutoMode)
	}
	if kb.JustReleased(ebiten.KeyU) {
		frame.Set(core.ActionHideAutoHint)
	}

	return frame, cmds, buf
}
