package cmd_test

import (
	"testing"

	"github.com/sablecore/voxelserver/server/cmd"
	"github.com/sablecore/voxelserver/server/protocol"
)

type fakeSender struct {
	name     string
	perm     int
	messages []protocol.Chat
}

func (f *fakeSender) DisplayName() string { return f.name }
func (f *fakeSender) CanUseCommand(permLevel int, _ string) bool { return f.perm >= permLevel }
func (f *fakeSender) AddChatMessage(c protocol.Chat) { f.messages = append(f.messages, c) }

func TestExecuteUnknownCommand(t *testing.T) {
	sender := &fakeSender{name: "console", perm: 4}
	_, err := cmd.Execute(sender, &cmd.Context{}, []string{"doesnotexist"})
	if err == nil || err.Kind != cmd.ErrUnknownCommand {
		t.Fatalf("expected UnknownCommand, got %+v", err)
	}
}

func TestExecuteNotAuthorized(t *testing.T) {
	cmd.Register(&cmd.Command{
		Name:       "restricted-test",
		Permission: 4,
		Run: func(cmd.Sender, *cmd.Context, []string) (int, *cmd.CommandError) { return 1, nil },
	})
	sender := &fakeSender{name: "player", perm: 0}
	_, err := cmd.Execute(sender, &cmd.Context{}, []string{"restricted-test"})
	if err == nil || err.Kind != cmd.ErrNotAuthorized {
		t.Fatalf("expected NotAuthorized, got %+v", err)
	}
}

func TestExecuteSuccess(t *testing.T) {
	cmd.Register(&cmd.Command{
		Name:       "echo-test",
		Permission: 0,
		Run: func(s cmd.Sender, _ *cmd.Context, argv []string) (int, *cmd.CommandError) {
			s.AddChatMessage(protocol.Plain(argv[0]))
			return 1, nil
		},
	})
	sender := &fakeSender{name: "console", perm: 4}
	n, err := cmd.Execute(sender, &cmd.Context{}, []string{"echo-test", "hi"})
	if err != nil || n != 1 {
		t.Fatalf("unexpected result n=%d err=%+v", n, err)
	}
	if len(sender.messages) != 1 || sender.messages[0].Text != "hi" {
		t.Fatalf("expected echoed message, got %+v", sender.messages)
	}
}

func TestExecuteLineRequiresSlash(t *testing.T) {
	sender := &fakeSender{name: "console", perm: 4}
	_, _, ok := cmd.ExecuteLine(sender, &cmd.Context{}, "echo-test hi")
	if ok {
		t.Fatalf("expected ExecuteLine to ignore input without a leading slash")
	}
}
