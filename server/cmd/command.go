// Package cmd implements the command dispatcher of spec.md §6 ("CLI
// surface"): a single execute(sender, argv) entry point fed by a
// registry of name/permission/usage commands, grounded on the teacher's
// ByAlias/ExecuteLine dispatch shape (server/cmd/execute.go) but
// generalised to this server's argv/permission-level command model
// instead of dragonfly's reflection-bound struct commands.
package cmd

import (
	"fmt"

	"github.com/sablecore/voxelserver/server/protocol"
)

// Sender is the dispatcher's view of whoever issued a command, per
// spec.md §6 ("A sender exposes (displayName, canUseCommand(permLevel,
// name) -> bool, addChatMessage(Chat))").
type Sender interface {
	DisplayName() string
	CanUseCommand(permLevel int, name string) bool
	AddChatMessage(c protocol.Chat)
}

// ErrorKind enumerates the command-error taxonomy of spec.md §7.
type ErrorKind int

const (
	ErrNotAuthorized ErrorKind = iota
	ErrSyntax
	ErrPlayerNotFound
	ErrNumberTooSmall
	ErrNumberTooBig
	ErrUnknownCommand
)

func (k ErrorKind) String() string {
	switch k {
	case ErrNotAuthorized:
		return "NotAuthorized"
	case ErrSyntax:
		return "SyntaxError"
	case ErrPlayerNotFound:
		return "PlayerNotFound"
	case ErrNumberTooSmall:
		return "NumberTooSmall"
	case ErrNumberTooBig:
		return "NumberTooBig"
	case ErrUnknownCommand:
		return "UnknownCommand"
	default:
		return "CommandError"
	}
}

// CommandError is a translated dispatcher failure, per spec.md §7's
// policy: "no exception propagation past the dispatcher; the sender
// receives a translated failure message".
type CommandError struct {
	Kind    ErrorKind
	Message string
}

func (e *CommandError) Error() string { return e.Message }

func newError(kind ErrorKind, format string, args ...any) *CommandError {
	return &CommandError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NotAuthorized, SyntaxErrorf, PlayerNotFound, NumberTooSmall and
// NumberTooBig build the corresponding CommandError variants.
func NotAuthorized(name string) *CommandError {
	return newError(ErrNotAuthorized, "You do not have permission to use /%s.", name)
}
func SyntaxErrorf(usage string) *CommandError {
	return newError(ErrSyntax, "Usage: %s", usage)
}
func PlayerNotFound(name string) *CommandError {
	return newError(ErrPlayerNotFound, "Player not found: %s", name)
}
func NumberTooSmall(got, min any) *CommandError {
	return newError(ErrNumberTooSmall, "Number too small (%v), minimum is %v.", got, min)
}
func NumberTooBig(got, max any) *CommandError {
	return newError(ErrNumberTooBig, "Number too big (%v), maximum is %v.", got, max)
}
func UnknownCommand(name string) *CommandError {
	return newError(ErrUnknownCommand, "Unknown command: %s", name)
}

// RunFunc implements a Command's behaviour: argv excludes the command
// name itself. It returns the number of entities/targets successfully
// affected (success count) or a CommandError.
type RunFunc func(sender Sender, ctx *Context, argv []string) (successCount int, cmdErr *CommandError)

// Command is one entry of spec.md §6's built-in set: name -> required
// permission level.
type Command struct {
	Name       string
	Aliases    []string
	Permission int
	Usage      string
	Run        RunFunc
}
