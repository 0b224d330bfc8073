package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic terrain
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// DT returns the fixed simulation step in seconds.
func (c RuntimeConfig) DT() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int  // Committed score
	HighScore int  // Best score including this ride
	Distance  int  // World units travelled
	GameOver  bool // Whether the game has ended
	Paused    bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// JumpRecord is one resolved jump as stored in the jump log.
type JumpRecord struct {
	RideID    string
	Mode      string
	Outcome   string // "committed" or "discarded"
	Reason    string // discard reason, empty when committed
	Quality   string
	Flips     int
	AirtimeMS int64
	Points    int // points that reached the score
}

// Persistence is the storage a game may use. The platform hands it to games
// that implement PersistenceAware.
type Persistence interface {
	GetInt(key string) (int, bool, error)
	SetInt(key string, value int) error
	RecordJump(r JumpRecord) error
}

// PersistenceAware is implemented by games that read or write persistent state.
type PersistenceAware interface {
	SetPersistence(p Persistence)
}

// DifficultyAware is implemented by games that accept a per-instance
// difficulty preset ("easy", "normal", "hard", "fixed", or "" for the
// configured default).
type DifficultyAware interface {
	SetDifficulty(preset string) error
}
