package builtin

import (
	"fmt"

	"github.com/sablecore/voxelserver/server/cmd"
	"github.com/sablecore/voxelserver/server/protocol"
)

func seedCommand() *cmd.Command {
	return &cmd.Command{
		Name:       "seed",
		Permission: 2,
		Usage:      "/seed",
		Run: func(sender cmd.Sender, ctx *cmd.Context, argv []string) (int, *cmd.CommandError) {
			sender.AddChatMessage(protocol.Plain(fmt.Sprintf("Seed: %d", ctx.World.Seed())))
			return 1, nil
		},
	}
}
