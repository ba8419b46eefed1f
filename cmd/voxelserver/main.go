// Command voxelserver is the runnable entry point tying the world,
// chunk generator, tick loop and command console together, grounded on
// the teacher's flag-driven main (cmd/inspect_palette/main.go) and the
// pack's signal-handling server loop (ChickenIQ-VibeShitCraft's
// cmd/server/main.go).
package main

import (
	"context"
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/sablecore/voxelserver/server"
	"github.com/sablecore/voxelserver/server/block"
	"github.com/sablecore/voxelserver/server/cmd"
	"github.com/sablecore/voxelserver/server/cmd/builtin"
	"github.com/sablecore/voxelserver/server/console"
	"github.com/sablecore/voxelserver/server/world"
	"github.com/sablecore/voxelserver/server/world/generator"
)

func main() {
	configPath := flag.String("config", "server.toml", "path to the server configuration file")
	whitelistPath := flag.String("whitelist", "whitelist.toml", "path to the whitelist file")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	conf, err := server.LoadConfig(*configPath)
	if err != nil {
		log.Error("load config", "err", err)
		os.Exit(1)
	}

	levelType := server.LevelType(conf.LevelType)
	gen := generator.New(conf.Seed())
	gen.Amplified = levelType == server.LevelTypeAmplified
	if levelType == server.LevelTypeFlat || levelType == server.LevelTypeLargeBiomes {
		log.Warn("level-type not implemented, falling back to default generation", "level-type", levelType)
	}

	registerWorldBehaviors(log)

	w := world.New(conf.WorldConfig(log, gen))
	conf.ApplyMetadata(w)
	go w.Run()

	wl, err := server.LoadWhitelist(*whitelistPath)
	if err != nil {
		log.Error("load whitelist", "err", err)
		os.Exit(1)
	}
	wl.SetEnabled(false)

	builtin.Register()

	ctx, cancel := context.WithCancel(context.Background())
	dispatchCtx := &cmd.Context{
		World:      w,
		Players:    noPlayers{},
		MaxPlayers: conf.MaxPlayers,
		Shutdown:   cancel,
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case s := <-sig:
			log.Info("received signal, shutting down", "signal", s.String())
			cancel()
		case <-ctx.Done():
		}
	}()

	log.Info("voxelserver starting", "level-name", conf.LevelName, "seed", conf.Seed(), "max-players", conf.MaxPlayers)
	console.New(dispatchCtx, log).Run(ctx)

	log.Info("voxelserver stopping")
	if err := w.Close(); err != nil {
		log.Error("close world", "err", err)
	}
}

// registerWorldBehaviors installs the block-id-indexed behavior table
// entries that depend on the data-driven registry having resolved its
// ids, namely water and lava flow. Piston/note-block/torch behavior is
// dispatched directly by server/world's own code (piston.go,
// blockevent.go) rather than through this table, so nothing further is
// registered here yet.
func registerWorldBehaviors(log *slog.Logger) {
	stone, ok := block.ByName("minecraft:stone")
	if !ok {
		log.Warn("minecraft:stone not registered, skipping fluid wiring")
		return
	}
	cobblestone, ok := block.ByName("minecraft:cobblestone")
	if !ok {
		log.Warn("minecraft:cobblestone not registered, skipping fluid wiring")
		return
	}
	waterSource, ok := block.ByName("minecraft:water")
	if !ok {
		log.Warn("minecraft:water not registered, skipping fluid wiring")
		return
	}
	waterFlowing, ok := block.ByName("minecraft:flowing_water")
	if !ok {
		log.Warn("minecraft:flowing_water not registered, skipping fluid wiring")
		return
	}
	lavaSource, ok := block.ByName("minecraft:lava")
	if !ok {
		log.Warn("minecraft:lava not registered, skipping fluid wiring")
		return
	}
	lavaFlowing, ok := block.ByName("minecraft:flowing_lava")
	if !ok {
		log.Warn("minecraft:flowing_lava not registered, skipping fluid wiring")
		return
	}

	world.RegisterFluidIDs(stone.ID, cobblestone.ID, waterSource.ID, waterFlowing.ID)
	world.RegisterFluidBehavior(waterSource.ID, waterFlowing.ID, false, false, rand.Intn)
	world.RegisterFluidBehavior(lavaSource.ID, lavaFlowing.ID, true, false, rand.Intn)
}

// noPlayers satisfies cmd.PlayerDirectory until a session/player
// package is wired into this entry point; no connections are accepted
// yet so there is never anyone to list or target.
type noPlayers struct{}

func (noPlayers) Online() []cmd.Player            { return nil }
func (noPlayers) ByName(string) (cmd.Player, bool) { return nil, false }
