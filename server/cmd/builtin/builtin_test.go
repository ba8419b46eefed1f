package builtin

import (
	"testing"

	"github.com/sablecore/voxelserver/server/cmd"
	"github.com/sablecore/voxelserver/server/item"
	"github.com/sablecore/voxelserver/server/protocol"
	"github.com/sablecore/voxelserver/server/world"
)

type fakeSender struct {
	name     string
	messages []protocol.Chat
}

func (f *fakeSender) DisplayName() string                        { return f.name }
func (f *fakeSender) CanUseCommand(permLevel int, _ string) bool { return true }
func (f *fakeSender) AddChatMessage(c protocol.Chat)              { f.messages = append(f.messages, c) }

type fakePlayer struct {
	fakeSender
	mode       int32
	x, y, z    float64
	gaveItem   item.Stack
	killed     bool
}

func (p *fakePlayer) SetGameMode(mode int32) { p.mode = mode }
func (p *fakePlayer) GameMode() int32        { return p.mode }
func (p *fakePlayer) Teleport(x, y, z float64) { p.x, p.y, p.z = x, y, z }
func (p *fakePlayer) GiveItem(stack item.Stack) bool { p.gaveItem = stack; return true }
func (p *fakePlayer) Kill()                          { p.killed = true }

type fakeDirectory struct {
	players map[string]*fakePlayer
}

func (d *fakeDirectory) Online() []cmd.Player {
	out := make([]cmd.Player, 0, len(d.players))
	for _, p := range d.players {
		out = append(out, p)
	}
	return out
}
func (d *fakeDirectory) ByName(name string) (cmd.Player, bool) {
	p, ok := d.players[name]
	return p, ok
}

func newTestContext() (*cmd.Context, *fakeDirectory) {
	w := world.New(world.Config{Seed: 7})
	dir := &fakeDirectory{players: map[string]*fakePlayer{
		"alice": {fakeSender: fakeSender{name: "alice"}},
	}}
	return &cmd.Context{World: w, Players: dir, MaxPlayers: 20}, dir
}

func TestGamemodeCommandSetsTarget(t *testing.T) {
	Register()
	ctx, dir := newTestContext()
	sender := &fakeSender{name: "console"}
	n, err := cmd.Execute(sender, ctx, []string{"gamemode", "creative", "alice"})
	if err != nil || n != 1 {
		t.Fatalf("unexpected result n=%d err=%+v", n, err)
	}
	if dir.players["alice"].mode != 1 {
		t.Fatalf("expected alice's game mode to be set to creative (1), got %d", dir.players["alice"].mode)
	}
}

func TestGamemodeUnknownPlayer(t *testing.T) {
	Register()
	ctx, _ := newTestContext()
	sender := &fakeSender{name: "console"}
	_, err := cmd.Execute(sender, ctx, []string{"gamemode", "creative", "bob"})
	if err == nil || err.Kind != cmd.ErrPlayerNotFound {
		t.Fatalf("expected PlayerNotFound, got %+v", err)
	}
}

func TestGiveCommandGrantsItem(t *testing.T) {
	Register()
	ctx, dir := newTestContext()
	sender := &fakeSender{name: "console"}
	n, err := cmd.Execute(sender, ctx, []string{"give", "alice", "minecraft:apple", "5"})
	if err != nil || n != 1 {
		t.Fatalf("unexpected result n=%d err=%+v", n, err)
	}
	if dir.players["alice"].gaveItem.Count != 5 {
		t.Fatalf("expected 5 apples given, got %+v", dir.players["alice"].gaveItem)
	}
}

func TestGameruleRoundtrip(t *testing.T) {
	Register()
	ctx, _ := newTestContext()
	sender := &fakeSender{name: "console"}
	if _, err := cmd.Execute(sender, ctx, []string{"gamerule", "doFireTick", "false"}); err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	if ctx.World.GameRuleBool("doFireTick") {
		t.Fatalf("expected doFireTick to be false after setting it")
	}
}

func TestDifficultyClampsRange(t *testing.T) {
	Register()
	ctx, _ := newTestContext()
	sender := &fakeSender{name: "console"}
	_, err := cmd.Execute(sender, ctx, []string{"difficulty", "9"})
	if err == nil || err.Kind != cmd.ErrNumberTooBig {
		t.Fatalf("expected NumberTooBig, got %+v", err)
	}
}

func TestKillCommand(t *testing.T) {
	Register()
	ctx, dir := newTestContext()
	sender := &fakeSender{name: "console"}
	if _, err := cmd.Execute(sender, ctx, []string{"kill", "alice"}); err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	if !dir.players["alice"].killed {
		t.Fatalf("expected alice to be killed")
	}
}
