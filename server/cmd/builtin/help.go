package builtin

import (
	"strings"

	"github.com/sablecore/voxelserver/server/cmd"
	"github.com/sablecore/voxelserver/server/protocol"
)

func helpCommand() *cmd.Command {
	return &cmd.Command{
		Name:       "help",
		Aliases:    []string{"?"},
		Permission: 0,
		Usage:      "/help [command]",
		Run: func(sender cmd.Sender, ctx *cmd.Context, argv []string) (int, *cmd.CommandError) {
			if len(argv) > 0 {
				name := strings.ToLower(strings.TrimPrefix(argv[0], "/"))
				command, ok := cmd.ByAlias(name)
				if !ok || !sender.CanUseCommand(command.Permission, command.Name) {
					return 0, cmd.UnknownCommand(name)
				}
				sender.AddChatMessage(protocol.Plain(command.Usage))
				return 1, nil
			}

			var names []string
			for _, c := range cmd.Commands() {
				if sender.CanUseCommand(c.Permission, c.Name) {
					names = append(names, "/"+c.Name+" - "+c.Usage)
				}
			}
			if len(names) == 0 {
				sender.AddChatMessage(protocol.Plain("No commands available."))
				return 1, nil
			}
			sender.AddChatMessage(protocol.Plain(strings.Join(names, "\n")))
			return 1, nil
		},
	}
}
