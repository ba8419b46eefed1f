package builtin

import (
	"fmt"
	"strings"

	"github.com/sablecore/voxelserver/server/cmd"
	"github.com/sablecore/voxelserver/server/protocol"
)

func parseGameMode(value string) (int32, string, bool) {
	switch strings.ToLower(value) {
	case "0", "s", "survival":
		return 0, "survival", true
	case "1", "c", "creative":
		return 1, "creative", true
	case "2", "a", "adventure":
		return 2, "adventure", true
	case "3", "sp", "spectator":
		return 3, "spectator", true
	}
	return 0, "", false
}

func gamemodeCommand() *cmd.Command {
	return &cmd.Command{
		Name:       "gamemode",
		Aliases:    []string{"gm"},
		Permission: 2,
		Usage:      "/gamemode <mode> [player]",
		Run: func(sender cmd.Sender, ctx *cmd.Context, argv []string) (int, *cmd.CommandError) {
			if len(argv) < 1 {
				return 0, cmd.SyntaxErrorf("/gamemode <mode> [player]")
			}
			mode, alias, ok := parseGameMode(argv[0])
			if !ok {
				return 0, cmd.SyntaxErrorf("/gamemode <mode> [player]")
			}

			targets, err := resolveTargets(sender, ctx, argv[1:])
			if err != nil {
				return 0, err
			}
			for _, p := range targets {
				p.SetGameMode(mode)
			}
			sender.AddChatMessage(protocol.Plain(fmt.Sprintf("Set %s to %s mode.", joinNames(targets), alias)))
			return len(targets), nil
		},
	}
}

// resolveTargets resolves a trailing player-name argument, defaulting to
// the sender itself when it is a player and no name was given.
func resolveTargets(sender cmd.Sender, ctx *cmd.Context, argv []string) ([]cmd.Player, *cmd.CommandError) {
	if len(argv) == 0 {
		if p, ok := sender.(cmd.Player); ok {
			return []cmd.Player{p}, nil
		}
		return nil, cmd.SyntaxErrorf("player name required")
	}
	if ctx.Players == nil {
		return nil, cmd.PlayerNotFound(argv[0])
	}
	p, ok := ctx.Players.ByName(argv[0])
	if !ok {
		return nil, cmd.PlayerNotFound(argv[0])
	}
	return []cmd.Player{p}, nil
}

func joinNames(players []cmd.Player) string {
	names := make([]string, 0, len(players))
	for _, p := range players {
		names = append(names, p.DisplayName())
	}
	return strings.Join(names, ", ")
}
