package builtin

import (
	"fmt"

	"github.com/sablecore/voxelserver/server/cmd"
	"github.com/sablecore/voxelserver/server/protocol"
)

func killCommand() *cmd.Command {
	return &cmd.Command{
		Name:       "kill",
		Permission: 2,
		Usage:      "/kill [player]",
		Run: func(sender cmd.Sender, ctx *cmd.Context, argv []string) (int, *cmd.CommandError) {
			targets, err := resolveTargets(sender, ctx, argv)
			if err != nil {
				return 0, err
			}
			for _, p := range targets {
				p.Kill()
			}
			sender.AddChatMessage(protocol.Plain(fmt.Sprintf("Killed %s.", joinNames(targets))))
			return len(targets), nil
		},
	}
}
