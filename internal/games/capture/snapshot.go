package capture

import (
	"encoding/json"

	"github.com/vovakirdan/flagrun/internal/core"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Phase    Phase
	Viewport core.Viewport
	Player   Player
	Flag     Flag
	Input    InputFlags
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Phase:    g.phase,
		Viewport: g.viewport,
		Player:   g.player,
		Flag:     g.flag,
		Input:    g.input,
	}
}

// frameView is the state Render draws, taken in the middle of Step.
type frameView struct {
	viewport core.Viewport
	player   Player
	flag     Flag
	input    InputFlags
}

func (g *Game) makeView() frameView {
	return frameView{
		viewport: g.viewport,
		player:   g.player,
		flag:     g.flag,
		input:    g.input,
	}
}

// debugState is the debug overlay payload: the player without its color
// and marker radius, plus the held directions.
type debugState struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Em    bool    `json:"em"`
	Moved bool    `json:"moved"`
	Speed int     `json:"speed"`
	Auto  bool    `json:"auto"`
	Up    bool    `json:"up"`
	Down  bool    `json:"down"`
	Left  bool    `json:"left"`
	Right bool    `json:"right"`
}

func (v frameView) debugJSON() string {
	data, err := json.Marshal(debugState{
		X:     v.player.X,
		Y:     v.player.Y,
		Em:    v.player.Emphasized,
		Moved: v.player.Moved,
		Speed: v.player.Speed,
		Auto:  v.player.Auto,
		Up:    v.input.Up,
		Down:  v.input.Down,
		Left:  v.input.Left,
		Right: v.input.Right,
	})
	if err != nil {
		return "{}"
	}
	return string(data)
}

// DebugJSON returns the debug overlay text for the last drawn frame.
func (g *Game) DebugJSON() string {
	return g.view.debugJSON()
}
