package builtin

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sablecore/voxelserver/server/cmd"
	"github.com/sablecore/voxelserver/server/protocol"
)

func parseTimeValue(value string) (int64, bool) {
	switch strings.ToLower(value) {
	case "day":
		return 1000, true
	case "night":
		return 13000, true
	case "noon":
		return 6000, true
	case "midnight":
		return 18000, true
	}
	v, err := strconv.ParseInt(value, 10, 64)
	return v, err == nil
}

func timeCommand() *cmd.Command {
	return &cmd.Command{
		Name:       "time",
		Permission: 2,
		Usage:      "/time <set|add|query> <value>",
		Run: func(sender cmd.Sender, ctx *cmd.Context, argv []string) (int, *cmd.CommandError) {
			if len(argv) < 1 {
				return 0, cmd.SyntaxErrorf("/time <set|add|query> <value>")
			}
			switch strings.ToLower(argv[0]) {
			case "set":
				if len(argv) < 2 {
					return 0, cmd.SyntaxErrorf("/time set <value>")
				}
				v, ok := parseTimeValue(argv[1])
				if !ok {
					return 0, cmd.SyntaxErrorf("/time set <value>")
				}
				v = v % 24000
				ctx.World.SetTime(v)
				sender.AddChatMessage(protocol.Plain(fmt.Sprintf("Set time to %d.", v)))
				return 1, nil
			case "add":
				if len(argv) < 2 {
					return 0, cmd.SyntaxErrorf("/time add <value>")
				}
				v, err := strconv.ParseInt(argv[1], 10, 64)
				if err != nil {
					return 0, cmd.SyntaxErrorf("/time add <value>")
				}
				next := (ctx.World.Time() + v) % 24000
				if next < 0 {
					next += 24000
				}
				ctx.World.SetTime(next)
				sender.AddChatMessage(protocol.Plain(fmt.Sprintf("Set time to %d.", next)))
				return 1, nil
			case "query":
				if len(argv) < 2 {
					return 0, cmd.SyntaxErrorf("/time query <daytime|gametime|day>")
				}
				t := ctx.World.Time()
				switch strings.ToLower(argv[1]) {
				case "daytime", "gametime":
					sender.AddChatMessage(protocol.Plain(fmt.Sprintf("%d", t%24000)))
				case "day":
					sender.AddChatMessage(protocol.Plain(fmt.Sprintf("%d", t/24000)))
				default:
					return 0, cmd.SyntaxErrorf("/time query <daytime|gametime|day>")
				}
				return 1, nil
			}
			return 0, cmd.SyntaxErrorf("/time <set|add|query> <value>")
		},
	}
}
