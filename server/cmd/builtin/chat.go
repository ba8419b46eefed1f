package builtin

import (
	"strings"

	"github.com/sablecore/voxelserver/server/cmd"
	"github.com/sablecore/voxelserver/server/protocol"
)

func sayCommand() *cmd.Command {
	return &cmd.Command{
		Name:       "say",
		Permission: 1,
		Usage:      "/say <message>",
		Run: func(sender cmd.Sender, ctx *cmd.Context, argv []string) (int, *cmd.CommandError) {
			msg := strings.TrimSpace(strings.Join(argv, " "))
			if msg == "" {
				return 0, cmd.SyntaxErrorf("/say <message>")
			}
			line := "[" + sender.DisplayName() + "] " + msg
			c := protocol.Plain(line)
			broadcast(ctx, c)
			if _, isPlayer := sender.(cmd.Player); !isPlayer {
				sender.AddChatMessage(c)
			}
			return 1, nil
		},
	}
}

// broadcast sends chat to every online player. It does not echo to the
// issuer; sayCommand does that when the issuer is not itself a player
// (the console).
func broadcast(ctx *cmd.Context, c protocol.Chat) {
	if ctx.Players == nil {
		return
	}
	for _, p := range ctx.Players.Online() {
		p.AddChatMessage(c)
	}
}
