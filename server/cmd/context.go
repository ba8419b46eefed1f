package cmd

import "github.com/sablecore/voxelserver/server/world"

// Context carries the dispatcher-independent state builtin commands
// need: the world they operate on and the online-player directory.
type Context struct {
	World   *world.World
	Players PlayerDirectory
	MaxPlayers int
	// Shutdown is invoked by the stop command. Left nil in tests that
	// don't exercise it.
	Shutdown func()
}
