// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/flagrun/internal/core"
)

// ErrUnknownGame is returned by Create for IDs nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is the core interface that all games must implement.
// Games contain pure logic with no platform dependencies.
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "capture").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// The RuntimeConfig provides viewport size, tick rate and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Resize updates the viewport in pixels without resetting state.
	// Platforms call it before every Step.
	Resize(w, h int)

	// Step advances the simulation by one frame.
	Step(in core.InputFrame) core.StepResult

	// Render draws the most recent frame onto the canvas.
	Render(dst core.Canvas)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// Debugger is implemented by games that can dump their state as text.
type Debugger interface {
	DebugJSON() string
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
