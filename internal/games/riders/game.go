// Package riders implements a side-scrolling motocross game. The rider
// throttles, brakes, and leans a physics-driven bike over generated terrain;
// jumps are scored by the stunt engine.
package riders

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/pixel-riders/internal/config"
	"github.com/vovakirdan/pixel-riders/internal/core"
	"github.com/vovakirdan/pixel-riders/internal/registry"
	"github.com/vovakirdan/pixel-riders/internal/stunt"
)

// Registered game modes.
const (
	ModeRide = "riders"
	ModeZen  = "riders_zen"
)

// Game implements the Pixel Riders game logic.
type Game struct {
	mode       string
	runtime    core.RuntimeConfig
	cfg        config.RidersConfig
	difficulty *config.DifficultyManager
	world      *World
	engine     *stunt.Engine
	popups     popupQueue
	store      core.Persistence
	rideID     string
	preset     *config.DifficultyPreset // overrides the package preset when set
	pending    *config.RidersConfig     // reload waiting for a quiet moment
	shown      int                      // displayed score, counts up to the ledger
	highScore  int
	tickCount  int
	gameOver   bool
	paused     bool
}

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           = log.NewWithOptions(io.Discard, log.Options{})
	reloads          <-chan config.RidersConfig
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall back to
// the config default.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// SetLogger routes game and stunt engine logs.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// SetReloadSource makes running games pick up configs sent on ch.
func SetReloadSource(ch <-chan config.RidersConfig) {
	reloads = ch
}

// New creates a game in the given mode.
func New(mode string) *Game {
	if mode != ModeZen {
		mode = ModeRide
	}
	return &Game{mode: mode}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.mode
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeZen {
		return "Pixel Riders (Zen)"
	}
	return "Pixel Riders"
}

// SetPersistence implements core.PersistenceAware.
func (g *Game) SetPersistence(p core.Persistence) {
	g.store = p
	g.loadHighScore()
}

func (g *Game) loadConfig() config.RidersConfig {
	cfg, err := config.LoadRiders(configPath)
	if err != nil {
		logger.Warn("config rejected, using defaults", "err", err)
		cfg = config.DefaultRidersConfig()
	}
	g.applyPreset(&cfg)
	return cfg
}

// SetDifficulty implements core.DifficultyAware. It takes effect on the
// next Reset.
func (g *Game) SetDifficulty(preset string) error {
	p, err := config.ParsePreset(preset)
	if err != nil {
		return err
	}
	g.preset = &p
	return nil
}

func (g *Game) applyPreset(cfg *config.RidersConfig) {
	if g.mode == ModeZen {
		config.ApplyRidersPreset(cfg, config.DifficultyFixed)
		return
	}
	preset := difficultyPreset
	if g.preset != nil {
		preset = *g.preset
	}
	config.ApplyRidersPreset(cfg, preset)
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.world = NewWorld(runtime.Seed, g.cfg, g.difficulty)

	engine, err := stunt.New(g.cfg.Stunt, nil,
		stunt.WithLogger(logger.WithPrefix("stunt")),
		stunt.WithListener(g.listener()),
	)
	if err != nil {
		// LoadRiders validated the config; only defaults can reach here.
		logger.Error("stunt engine rejected config", "err", err)
		g.cfg.Stunt = config.DefaultStuntConfig()
		engine, _ = stunt.New(g.cfg.Stunt, nil, stunt.WithLogger(logger.WithPrefix("stunt")), stunt.WithListener(g.listener()))
	}
	g.engine = engine

	g.popups.clear()
	g.rideID = uuid.NewString()
	g.pending = nil
	g.shown = 0
	g.tickCount = 0
	g.gameOver = false
	g.paused = false
	g.loadHighScore()

	logger.Debug("ride started", "mode", g.mode, "ride", g.rideID, "seed", runtime.Seed)
}

func (g *Game) listener() stunt.Listener {
	return stunt.ListenerFuncs{
		StuntEvent: func(ev stunt.Event) {
			g.popups.push(ev)
		},
		ScoreChanged: func(total int) {
			if total > g.highScore {
				g.highScore = total
				g.saveHighScore()
			}
		},
		JumpResolved: g.recordJump,
	}
}

func (g *Game) highScoreKey() string {
	return "HighScore:" + g.mode
}

func (g *Game) loadHighScore() {
	g.highScore = 0
	if g.store == nil {
		return
	}
	v, ok, err := g.store.GetInt(g.highScoreKey())
	if err != nil {
		logger.Warn("failed to load high score", "err", err)
		return
	}
	if ok {
		g.highScore = v
	}
}

func (g *Game) saveHighScore() {
	if g.store == nil {
		return
	}
	if err := g.store.SetInt(g.highScoreKey(), g.highScore); err != nil {
		logger.Warn("failed to save high score", "err", err)
	}
}

func (g *Game) recordJump(r stunt.JumpReport) {
	if g.store == nil {
		return
	}
	rec := core.JumpRecord{
		RideID:    g.rideID,
		Mode:      g.mode,
		Outcome:   r.Outcome.String(),
		Reason:    r.Reason,
		Quality:   r.Quality.String(),
		Flips:     r.Flips,
		AirtimeMS: r.Airtime.Milliseconds(),
		Points:    r.Awarded,
	}
	if err := g.store.RecordJump(rec); err != nil {
		logger.Warn("failed to record jump", "err", err)
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.pollReload()

	dt := g.runtime.DT()
	g.tickCount++

	g.world.Controls(in, dt)
	g.world.Step(dt)
	g.engine.Tick(g.world.Frame(dt))

	if g.world.Crashed() {
		g.engine.Crash()
		g.gameOver = true
		logger.Info("ride over", "mode", g.mode, "score", g.engine.Ledger().Committed(), "distance", int(g.world.Distance()))
	}

	g.world.Advance(g.progress())
	g.popups.tick()
	g.countUp()

	return core.StepResult{State: g.State()}
}

func (g *Game) progress() config.Progress {
	return config.Progress{
		Distance: int(g.world.Distance()),
		Score:    g.engine.Ledger().Committed(),
		Ticks:    g.tickCount,
	}
}

// countUp moves the displayed score toward the committed total.
func (g *Game) countUp() {
	target := g.engine.Ledger().Committed()
	if g.shown >= target {
		g.shown = target
		return
	}
	g.shown += max(1, (target-g.shown)/8)
	if g.shown > target {
		g.shown = target
	}
}

// pollReload takes the newest config from the reload source and applies it
// once the bike is on the ground with no jump awaiting commit.
func (g *Game) pollReload() {
	if reloads != nil {
		select {
		case cfg, ok := <-reloads:
			if ok {
				g.applyPreset(&cfg)
				g.pending = &cfg
			}
		default:
		}
	}
	if g.pending == nil {
		return
	}
	if g.engine.State() != stunt.Grounded || g.engine.CommitState() != stunt.CommitIdle {
		return
	}

	cfg := *g.pending
	g.pending = nil
	if err := g.engine.Reconfigure(cfg.Stunt); err != nil {
		logger.Warn("reload rejected", "err", err)
		return
	}
	g.world.SetBike(cfg.Bike)
	g.world.Terrain().SetConfig(cfg.Terrain)
	g.cfg.Stunt, g.cfg.Bike, g.cfg.Terrain = cfg.Stunt, cfg.Bike, cfg.Terrain
	logger.Info("config reloaded", "mode", g.mode)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	dist := 0
	if g.engine != nil {
		score = g.engine.Ledger().Committed()
	}
	if g.world != nil {
		dist = max(0, int(g.world.Distance()))
	}
	return core.GameState{
		Score:     score,
		HighScore: max(g.highScore, score),
		Distance:  dist,
		GameOver:  g.gameOver,
		Paused:    g.paused,
	}
}

// Engine exposes the stunt engine for inspection.
func (g *Game) Engine() *stunt.Engine {
	return g.engine
}

// Register the game modes with the registry
func init() {
	registry.Register(ModeRide, func() registry.Game {
		return New(ModeRide)
	})
	registry.Register(ModeZen, func() registry.Game {
		return New(ModeZen)
	})
}
