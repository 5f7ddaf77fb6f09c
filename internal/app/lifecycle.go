// Package app assembles the arena from configuration and runs one game
// session with signal handling and ordered shutdown.
package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/arena/internal/config"
	"github.com/cory-johannsen/arena/internal/frontend/console"
	"github.com/cory-johannsen/arena/internal/game/character"
	"github.com/cory-johannsen/arena/internal/game/dice"
	"github.com/cory-johannsen/arena/internal/game/encounter"
	"github.com/cory-johannsen/arena/internal/scripting"
)

type namedCloser struct {
	name string
	fn   func()
}

// App is one game session: character creation followed by the campaign.
type App struct {
	cfg      config.Config
	logger   *zap.Logger
	console  *console.Console
	engine   *encounter.Engine
	campaign *encounter.Campaign
	src      dice.Source

	mu      sync.Mutex
	closers []namedCloser
}

// New creates an App. A non-nil scripts manager is closed on shutdown.
//
// Precondition: every argument except scripts must be non-nil.
func New(cfg config.Config, logger *zap.Logger, con *console.Console, engine *encounter.Engine, campaign *encounter.Campaign, src dice.Source, scripts *scripting.Manager) *App {
	a := &App{
		cfg:      cfg,
		logger:   logger,
		console:  con,
		engine:   engine,
		campaign: campaign,
		src:      src,
	}
	if scripts != nil {
		a.OnShutdown("scripts", scripts.Close)
	}
	return a
}

// OnShutdown registers fn to run when Run returns. Functions run in reverse
// registration order.
func (a *App) OnShutdown(name string, fn func()) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.closers = append(a.closers, namedCloser{name: name, fn: fn})
}

// Run creates the player and plays the campaign. SIGINT and SIGTERM cancel
// the session between actions.
//
// Postcondition: every OnShutdown function has run when Run returns.
func (a *App) Run(ctx context.Context) (encounter.State, error) {
	start := time.Now()
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer a.shutdown()

	player, err := console.CreateCharacter(ctx, a.console, a.src, Loadout(a.cfg.Player))
	if err != nil {
		return encounter.Active, fmt.Errorf("creating character: %w", err)
	}
	a.logger.Info("character created",
		zap.String("name", player.Name),
		zap.Stringer("element", player.Element),
	)

	state, err := a.engine.Run(ctx, player, a.campaign)
	if err != nil {
		a.logger.Error("game aborted", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return state, err
	}
	a.logger.Info("game over",
		zap.Stringer("outcome", state),
		zap.Int("level", player.Level),
		zap.Duration("elapsed", time.Since(start)),
	)
	return state, nil
}

func (a *App) shutdown() {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := len(a.closers) - 1; i >= 0; i-- {
		c := a.closers[i]
		c.fn()
		a.logger.Debug("closed", zap.String("component", c.name))
	}
	a.closers = nil
}

// Loadout converts the configured starting block.
func Loadout(p config.PlayerConfig) character.Loadout {
	return character.Loadout{
		MaxHP:          p.MaxHP,
		MaxMP:          p.MaxMP,
		Defense:        p.Defense,
		Strength:       p.Strength,
		Speed:          p.Speed,
		HealingPotions: p.HealingPotions,
		ManaPotions:    p.ManaPotions,
	}
}
