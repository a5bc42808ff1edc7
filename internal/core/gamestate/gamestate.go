// Package gamestate tracks the progress of one play session as named flags
// and counters. The simulation records events into it and the HUD and
// game-over screen read it back.
package gamestate

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Counter names recorded by the simulation.
const (
	ZombiesKilled     = "zombies_killed"
	NPCsKilled        = "npcs_killed"
	NPCsRevealed      = "npcs_revealed"
	FollowersGained   = "followers_gained"
	ShockwavesEmitted = "shockwaves_emitted"
	MeleeSwings       = "melee_swings"
	DamageTaken       = "damage_taken"
	DamageDealt       = "damage_dealt"
	Ticks             = "ticks"
)

// Flag names recorded by the simulation.
const (
	PlayerDied = "player_died"
)

// GameState holds the counters and flags of a session
type GameState struct {
	mu sync.RWMutex

	// Flags are boolean values (e.g., "player_died")
	Flags map[string]bool

	// Counters are integer values (e.g., "zombies_killed")
	Counters map[string]int

	// Elapsed is the simulated time of the session in seconds
	Elapsed float64
}

// New creates a new empty GameState
func New() *GameState {
	return &GameState{
		Flags:    make(map[string]bool),
		Counters: make(map[string]int),
	}
}

// --- Flag operations ---

// GetFlag returns the value of a flag (false if not set)
func (gs *GameState) GetFlag(name string) bool {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.Flags[name]
}

// SetFlag sets a flag to a specific value
func (gs *GameState) SetFlag(name string, value bool) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.Flags[name] = value
}

// --- Counter operations ---

// GetCounter returns the value of a counter (0 if not set)
func (gs *GameState) GetCounter(name string) int {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.Counters[name]
}

// IncrementCounter adds delta to a counter and returns the new value
func (gs *GameState) IncrementCounter(name string, delta int) int {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.Counters[name] += delta
	return gs.Counters[name]
}

// AddElapsed advances the session clock
func (gs *GameState) AddElapsed(dt float64) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.Elapsed += dt
}

// GetElapsed returns the simulated session time in seconds
func (gs *GameState) GetElapsed() float64 {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.Elapsed
}

// Reset clears all state (for a new session)
func (gs *GameState) Reset() {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.Flags = make(map[string]bool)
	gs.Counters = make(map[string]int)
	gs.Elapsed = 0
}

// Clone creates a deep copy of the state
func (gs *GameState) Clone() *GameState {
	gs.mu.RLock()
	defer gs.mu.RUnlock()

	clone := New()
	for k, v := range gs.Flags {
		clone.Flags[k] = v
	}
	for k, v := range gs.Counters {
		clone.Counters[k] = v
	}
	clone.Elapsed = gs.Elapsed
	return clone
}

// Summary returns the non-zero counters as "name: value" lines sorted by name,
// for the game-over screen.
func (gs *GameState) Summary() []string {
	gs.mu.RLock()
	defer gs.mu.RUnlock()

	names := make([]string, 0, len(gs.Counters))
	for k, v := range gs.Counters {
		if v != 0 && k != Ticks {
			names = append(names, k)
		}
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names)+1)
	lines = append(lines, fmt.Sprintf("Survived: %.1fs", gs.Elapsed))
	for _, k := range names {
		lines = append(lines, fmt.Sprintf("%s: %d", label(k), gs.Counters[k]))
	}
	return lines
}

// Debug returns a string representation of the state for debugging
func (gs *GameState) Debug() string {
	gs.mu.RLock()
	defer gs.mu.RUnlock()

	return fmt.Sprintf("GameState{Flags: %d, Counters: %d, Elapsed: %.2f}",
		len(gs.Flags), len(gs.Counters), gs.Elapsed)
}

// label turns "zombies_killed" into "Zombies killed".
func label(name string) string {
	s := strings.ReplaceAll(name, "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
