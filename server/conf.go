// Package server ties together the world, command dispatcher and
// console into a runnable voxelserver instance. Config loading follows
// the teacher's UserConfig/toml pattern (server/conf.go,
// server/whitelist.go) adapted from dragonfly's Bedrock listener/
// resource-pack model to this project's server.properties-equivalent
// surface (spec.md §6 "Environment / configuration").
package server

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml"

	"github.com/sablecore/voxelserver/server/world"
)

// LevelType enumerates spec.md §6's `level-type` values.
type LevelType string

const (
	LevelTypeDefault     LevelType = "default"
	LevelTypeFlat        LevelType = "flat"
	LevelTypeLargeBiomes LevelType = "largeBiomes"
	LevelTypeAmplified   LevelType = "amplified"
	LevelTypeDefault11   LevelType = "default_1_1"
)

// UserConfig is the on-disk configuration, serialised as TOML, covering
// every option spec.md §6 enumerates under "Environment /
// configuration".
type UserConfig struct {
	LevelName        string `toml:"level-name"`
	LevelSeed        string `toml:"level-seed"`
	LevelType        string `toml:"level-type"`
	GeneratorOptions string `toml:"generator-settings"`

	Difficulty int32 `toml:"difficulty"`
	Gamemode   int32 `toml:"gamemode"`
	Hardcore   bool  `toml:"hardcore"`
	PVP        bool  `toml:"pvp"`

	ViewDistance int  `toml:"view-distance"`
	MaxPlayers   int  `toml:"max-players"`
	OnlineMode   bool `toml:"online-mode"`

	SpawnProtection int `toml:"spawn-protection"`

	AllowNether        bool `toml:"allow-nether"`
	AllowEnd           bool `toml:"allow-end"`
	EnableCommandBlock bool `toml:"enable-command-block"`

	OpPermissionLevel       int `toml:"op-permission-level"`
	FunctionPermissionLevel int `toml:"function-permission-level"`

	GameRules map[string]string `toml:"gamerules"`
}

// DefaultConfig returns a UserConfig with spec.md §6's defaults filled
// out, mirroring vanilla server.properties defaults.
func DefaultConfig() UserConfig {
	return UserConfig{
		LevelName:               "world",
		LevelSeed:               "",
		LevelType:               string(LevelTypeDefault),
		Difficulty:              1,
		Gamemode:                0,
		Hardcore:                false,
		PVP:                     true,
		ViewDistance:            10,
		MaxPlayers:              20,
		OnlineMode:              true,
		SpawnProtection:         16,
		AllowNether:             true,
		AllowEnd:                true,
		EnableCommandBlock:      false,
		OpPermissionLevel:       4,
		FunctionPermissionLevel: 2,
		GameRules: map[string]string{
			"doFireTick":          "true",
			"mobGriefing":         "true",
			"keepInventory":       "false",
			"doMobSpawning":       "true",
			"doMobLoot":           "true",
			"doTileDrops":         "true",
			"commandBlockOutput":  "true",
			"naturalRegeneration": "true",
			"doDaylightCycle":     "true",
		},
	}
}

// LoadConfig reads a TOML config file at path, writing out
// DefaultConfig's values if the file does not yet exist.
func LoadConfig(path string) (UserConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		conf := DefaultConfig()
		if err := SaveConfig(path, conf); err != nil {
			return conf, fmt.Errorf("write default config: %w", err)
		}
		return conf, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return UserConfig{}, fmt.Errorf("read config: %w", err)
	}
	conf := DefaultConfig()
	if err := toml.Unmarshal(data, &conf); err != nil {
		return UserConfig{}, fmt.Errorf("decode config: %w", err)
	}
	if conf.GameRules == nil {
		conf.GameRules = DefaultConfig().GameRules
	}
	return conf, nil
}

// SaveConfig writes conf to path as TOML.
func SaveConfig(path string, conf UserConfig) error {
	data, err := toml.Marshal(conf)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Seed parses LevelSeed per spec.md §6 ("string -> numeric parse"):
// digits parse directly, anything else is hashed via the string's own
// content so a word seed is still reproducible.
func (c UserConfig) Seed() int64 {
	s := strings.TrimSpace(c.LevelSeed)
	if s == "" {
		return 0
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	var h int64
	for _, r := range s {
		h = h*31 + int64(r)
	}
	return h
}

// WorldConfig builds the world.Config this server's World should start
// from, applying the configured seed, directory and game rules.
func (c UserConfig) WorldConfig(log *slog.Logger, generator world.Generator) world.Config {
	return world.Config{
		Dir:       c.LevelName,
		Seed:      c.Seed(),
		HasSky:    true,
		Generator: generator,
		Log:       log,
	}
}

// ApplyMetadata sets w's difficulty/game-type/game-rules from c, called
// once after a World is constructed (spec.md §6's persisted world
// metadata defaults come from the environment on first run).
func (c UserConfig) ApplyMetadata(w *world.World) {
	w.SetDifficulty(c.Difficulty)
	w.SetGameType(c.Gamemode)
	w.SetHardcore(c.Hardcore)
	for name, value := range c.GameRules {
		w.SetGameRule(name, value)
	}
}
