package cmd

import "github.com/sablecore/voxelserver/server/item"

// Player is the subset of player state commands may target, satisfied
// by whatever session/player type the hosting server wires in.
type Player interface {
	Sender
	SetGameMode(mode int32)
	GameMode() int32
	Teleport(x, y, z float64)
	GiveItem(stack item.Stack) bool
	Kill()
}

// PlayerDirectory resolves the players currently online, so builtin
// commands never depend on a concrete session package.
type PlayerDirectory interface {
	Online() []Player
	ByName(name string) (Player, bool)
}
