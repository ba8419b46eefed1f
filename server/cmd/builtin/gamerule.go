package builtin

import (
	"fmt"

	"github.com/sablecore/voxelserver/server/cmd"
	"github.com/sablecore/voxelserver/server/protocol"
)

func gameruleCommand() *cmd.Command {
	return &cmd.Command{
		Name:       "gamerule",
		Permission: 2,
		Usage:      "/gamerule <rule> [true|false]",
		Run: func(sender cmd.Sender, ctx *cmd.Context, argv []string) (int, *cmd.CommandError) {
			if len(argv) < 1 {
				return 0, cmd.SyntaxErrorf("/gamerule <rule> [true|false]")
			}
			rule := argv[0]
			if len(argv) == 1 {
				v, ok := ctx.World.GameRule(rule)
				if !ok {
					return 0, cmd.SyntaxErrorf("unknown game rule " + rule)
				}
				sender.AddChatMessage(protocol.Plain(fmt.Sprintf("%s = %s", rule, v)))
				return 1, nil
			}
			if _, ok := ctx.World.GameRule(rule); !ok {
				return 0, cmd.SyntaxErrorf("unknown game rule " + rule)
			}
			value := argv[1]
			if value != "true" && value != "false" {
				return 0, cmd.SyntaxErrorf("/gamerule <rule> <true|false>")
			}
			ctx.World.SetGameRule(rule, value)
			sender.AddChatMessage(protocol.Plain(fmt.Sprintf("%s = %s", rule, value)))
			return 1, nil
		},
	}
}
