package builtin

import "github.com/sablecore/voxelserver/server/cmd"

func stopCommand() *cmd.Command {
	return &cmd.Command{
		Name:       "stop",
		Permission: 4,
		Usage:      "/stop",
		Run: func(sender cmd.Sender, ctx *cmd.Context, argv []string) (int, *cmd.CommandError) {
			if ctx.Shutdown != nil {
				ctx.Shutdown()
			}
			return 1, nil
		},
	}
}
