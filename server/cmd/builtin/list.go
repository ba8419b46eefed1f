package builtin

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sablecore/voxelserver/server/cmd"
	"github.com/sablecore/voxelserver/server/protocol"
)

func listCommand() *cmd.Command {
	return &cmd.Command{
		Name:       "list",
		Permission: 0,
		Usage:      "/list",
		Run: func(sender cmd.Sender, ctx *cmd.Context, argv []string) (int, *cmd.CommandError) {
			var names []string
			if ctx.Players != nil {
				for _, p := range ctx.Players.Online() {
					names = append(names, p.DisplayName())
				}
			}
			sort.Strings(names)
			msg := fmt.Sprintf("There are %d/%d players online.", len(names), ctx.MaxPlayers)
			if len(names) > 0 {
				msg += "\n" + strings.Join(names, ", ")
			}
			sender.AddChatMessage(protocol.Plain(msg))
			return 1, nil
		},
	}
}
