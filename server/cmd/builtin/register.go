// Package builtin registers spec.md §6's built-in command set on the
// cmd package's global registry, grounded on the teacher's
// register.go (server/cmd/builtin/register.go) wiring pattern.
package builtin

import "github.com/sablecore/voxelserver/server/cmd"

// Register installs every built-in command.
func Register() {
	cmd.Register(stopCommand())
	cmd.Register(sayCommand())
	cmd.Register(helpCommand())
	cmd.Register(listCommand())
	cmd.Register(gamemodeCommand())
	cmd.Register(timeCommand())
	cmd.Register(giveCommand())
	cmd.Register(tpCommand())
	cmd.Register(gameruleCommand())
	cmd.Register(difficultyCommand())
	cmd.Register(seedCommand())
	cmd.Register(killCommand())
}
