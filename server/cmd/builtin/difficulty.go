package builtin

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sablecore/voxelserver/server/cmd"
	"github.com/sablecore/voxelserver/server/protocol"
)

func parseDifficulty(value string) (int32, bool) {
	switch strings.ToLower(value) {
	case "0", "peaceful", "p":
		return 0, true
	case "1", "easy", "e":
		return 1, true
	case "2", "normal", "n":
		return 2, true
	case "3", "hard", "h":
		return 3, true
	}
	return 0, false
}

func difficultyCommand() *cmd.Command {
	return &cmd.Command{
		Name:       "difficulty",
		Permission: 2,
		Usage:      "/difficulty <0-3|peaceful|easy|normal|hard>",
		Run: func(sender cmd.Sender, ctx *cmd.Context, argv []string) (int, *cmd.CommandError) {
			if len(argv) < 1 {
				sender.AddChatMessage(protocol.Plain(fmt.Sprintf("Difficulty: %d", ctx.World.Difficulty())))
				return 1, nil
			}
			d, ok := parseDifficulty(argv[0])
			if !ok {
				v, err := strconv.Atoi(argv[0])
				if err != nil {
					return 0, cmd.SyntaxErrorf("/difficulty <0-3|peaceful|easy|normal|hard>")
				}
				if v < 0 {
					return 0, cmd.NumberTooSmall(v, 0)
				}
				if v > 3 {
					return 0, cmd.NumberTooBig(v, 3)
				}
				d = int32(v)
			}
			ctx.World.SetDifficulty(d)
			sender.AddChatMessage(protocol.Plain(fmt.Sprintf("Set difficulty to %d.", d)))
			return 1, nil
		},
	}
}
