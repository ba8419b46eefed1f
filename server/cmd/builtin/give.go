package builtin

import (
	"fmt"
	"strconv"

	"github.com/sablecore/voxelserver/server/cmd"
	"github.com/sablecore/voxelserver/server/item"
	"github.com/sablecore/voxelserver/server/protocol"
)

func giveCommand() *cmd.Command {
	return &cmd.Command{
		Name:       "give",
		Permission: 2,
		Usage:      "/give <player> <item> [count]",
		Run: func(sender cmd.Sender, ctx *cmd.Context, argv []string) (int, *cmd.CommandError) {
			if len(argv) < 2 {
				return 0, cmd.SyntaxErrorf("/give <player> <item> [count]")
			}
			if ctx.Players == nil {
				return 0, cmd.PlayerNotFound(argv[0])
			}
			target, ok := ctx.Players.ByName(argv[0])
			if !ok {
				return 0, cmd.PlayerNotFound(argv[0])
			}
			props, ok := item.ByName(argv[1])
			if !ok {
				return 0, cmd.SyntaxErrorf("unknown item " + argv[1])
			}
			count := 1
			if len(argv) >= 3 {
				v, err := strconv.Atoi(argv[2])
				if err != nil {
					return 0, cmd.SyntaxErrorf("/give <player> <item> [count]")
				}
				if v < 1 {
					return 0, cmd.NumberTooSmall(v, 1)
				}
				count = v
			}
			if !target.GiveItem(item.Stack{ID: props.ID, Count: count}) {
				sender.AddChatMessage(protocol.Plain("Inventory full."))
				return 0, nil
			}
			sender.AddChatMessage(protocol.Plain(fmt.Sprintf("Gave %d %s to %s.", count, props.Name, target.DisplayName())))
			return 1, nil
		},
	}
}
