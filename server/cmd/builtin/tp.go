package builtin

import (
	"fmt"
	"strconv"

	"github.com/sablecore/voxelserver/server/cmd"
	"github.com/sablecore/voxelserver/server/protocol"
)

func tpCommand() *cmd.Command {
	return &cmd.Command{
		Name:       "tp",
		Permission: 2,
		Usage:      "/tp <player> <x> <y> <z> | /tp <player> <target>",
		Run: func(sender cmd.Sender, ctx *cmd.Context, argv []string) (int, *cmd.CommandError) {
			if len(argv) < 2 || ctx.Players == nil {
				return 0, cmd.SyntaxErrorf("/tp <player> <x> <y> <z> | /tp <player> <target>")
			}
			target, ok := ctx.Players.ByName(argv[0])
			if !ok {
				return 0, cmd.PlayerNotFound(argv[0])
			}

			if len(argv) == 2 {
				dest, ok := ctx.Players.ByName(argv[1])
				if !ok {
					return 0, cmd.PlayerNotFound(argv[1])
				}
				x, y, z := 0.0, 0.0, 0.0
				if locator, ok := dest.(positioned); ok {
					x, y, z = locator.Position()
				}
				target.Teleport(x, y, z)
				sender.AddChatMessage(protocol.Plain(fmt.Sprintf("Teleported %s to %s.", target.DisplayName(), dest.DisplayName())))
				return 1, nil
			}

			if len(argv) < 4 {
				return 0, cmd.SyntaxErrorf("/tp <player> <x> <y> <z>")
			}
			x, errX := strconv.ParseFloat(argv[1], 64)
			y, errY := strconv.ParseFloat(argv[2], 64)
			z, errZ := strconv.ParseFloat(argv[3], 64)
			if errX != nil || errY != nil || errZ != nil {
				return 0, cmd.SyntaxErrorf("/tp <player> <x> <y> <z>")
			}
			target.Teleport(x, y, z)
			sender.AddChatMessage(protocol.Plain(fmt.Sprintf("Teleported %s to %.2f, %.2f, %.2f.", target.DisplayName(), x, y, z)))
			return 1, nil
		},
	}
}

// positioned is implemented by player handles that can report their own
// position, used to resolve "teleport to another player".
type positioned interface {
	Position() (x, y, z float64)
}
