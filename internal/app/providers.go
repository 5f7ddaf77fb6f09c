package app

import (
	"io"
	"path/filepath"

	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/cory-johannsen/arena/internal/config"
	"github.com/cory-johannsen/arena/internal/frontend/console"
	"github.com/cory-johannsen/arena/internal/game/ai"
	"github.com/cory-johannsen/arena/internal/game/combat"
	"github.com/cory-johannsen/arena/internal/game/dice"
	"github.com/cory-johannsen/arena/internal/game/encounter"
	"github.com/cory-johannsen/arena/internal/game/npc"
	"github.com/cory-johannsen/arena/internal/observability"
	"github.com/cory-johannsen/arena/internal/scripting"
)

// ScriptSetAI is the script set holding enemy decision hooks, loaded from
// the "ai" subdirectory of game.scripts_dir.
const ScriptSetAI = "ai"

// Stdio is the terminal the console reads from and writes to.
type Stdio struct {
	In  io.Reader
	Out io.Writer
}

// ProviderSet builds an *App from a config.Config and Stdio.
var ProviderSet = wire.NewSet(
	ProvideLogger,
	ProvideSource,
	ProvideRoller,
	ProvideScripts,
	ProvidePolicies,
	ProvideNPCs,
	ProvideCampaign,
	ProvideConsole,
	ProvideNotifier,
	ProvideEngine,
	New,
)

// ProvideLogger builds the zap logger and its flush function.
func ProvideLogger(cfg config.Config) (*zap.Logger, func(), error) {
	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { _ = logger.Sync() }, nil
}

// ProvideSource returns a seeded source when game.seed is set and the crypto
// source otherwise, logging every draw at debug level.
func ProvideSource(cfg config.Config, logger *zap.Logger) dice.Source {
	var src dice.Source
	if cfg.Game.Seed != 0 {
		src = dice.NewSeededSource(cfg.Game.Seed)
		logger.Info("using seeded random source", zap.Uint64("seed", cfg.Game.Seed))
	} else {
		src = dice.NewCryptoSource()
	}
	return dice.NewLoggedSource(src, logger)
}

// ProvideRoller wraps src in a logging dice roller.
func ProvideRoller(src dice.Source, logger *zap.Logger) *dice.Roller {
	return dice.NewLoggedRoller(src, logger)
}

// ProvideScripts loads the Lua script sets. It returns a nil manager when
// game.scripts_dir is empty. New closes the manager when the session ends.
func ProvideScripts(cfg config.Config, roller *dice.Roller, logger *zap.Logger) (*scripting.Manager, error) {
	if cfg.Game.ScriptsDir == "" {
		return nil, nil
	}
	mgr := scripting.NewManager(roller, logger)
	dir := filepath.Join(cfg.Game.ScriptsDir, ScriptSetAI)
	if err := mgr.LoadSet(ScriptSetAI, dir, cfg.Game.ScriptInstructionLimit); err != nil {
		mgr.Close()
		return nil, err
	}
	return mgr, nil
}

// ProvidePolicies builds the policy registry; "script:" policies are
// available only when scripts were loaded.
func ProvidePolicies(mgr *scripting.Manager) *ai.Registry {
	if mgr == nil {
		return ai.NewRegistry(nil, "")
	}
	return ai.NewRegistry(mgr, ScriptSetAI)
}

// ProvideNPCs builds the template registry, adding any templates from
// game.npcs_dir over the built-ins.
func ProvideNPCs(cfg config.Config, policies *ai.Registry, roller *dice.Roller, logger *zap.Logger) (*npc.Registry, error) {
	reg := npc.NewRegistry(policies, roller)
	if cfg.Game.NPCsDir == "" {
		return reg, nil
	}
	tmpls, err := npc.LoadTemplates(cfg.Game.NPCsDir)
	if err != nil {
		return nil, err
	}
	for _, t := range tmpls {
		if err := reg.Add(t); err != nil {
			return nil, err
		}
	}
	logger.Info("loaded npc templates", zap.Int("count", len(tmpls)), zap.Strings("ids", reg.IDs()))
	return reg, nil
}

// ProvideCampaign loads game.campaign_file, or the built-in campaign when unset.
func ProvideCampaign(cfg config.Config) (*encounter.Campaign, error) {
	if cfg.Game.CampaignFile == "" {
		return encounter.DefaultCampaign(), nil
	}
	return encounter.LoadCampaign(cfg.Game.CampaignFile)
}

// ProvideConsole creates the console over stdio.
func ProvideConsole(cfg config.Config, stdio Stdio) *console.Console {
	return console.New(stdio.In, stdio.Out, cfg.Game.Color)
}

// ProvideNotifier fans events out to the console and the debug log.
func ProvideNotifier(con *console.Console, logger *zap.Logger) combat.Notifier {
	return combat.Notifiers{console.NewRenderer(con), combat.LogNotifier(logger)}
}

// ProvideEngine creates the encounter engine with the console as prompter.
func ProvideEngine(reg *npc.Registry, con *console.Console, src dice.Source, n combat.Notifier, logger *zap.Logger) *encounter.Engine {
	return encounter.NewEngine(reg, con, src, n, logger)
}
