// Package console provides a CLI command source reading from stdin (or
// any io.Reader for tests), grounded on the teacher's Console type
// (server/console/console.go) but bound to this server's own cmd.Sender/
// cmd.Execute dispatcher instead of dragonfly's world.Tx-bound
// ExecuteLine.
package console

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	prompt "github.com/c-bata/go-prompt"

	"github.com/sablecore/voxelserver/server/cmd"
	"github.com/sablecore/voxelserver/server/protocol"
)

const (
	defaultPromptPrefix = "> "
	maxHistoryEntries   = 128
)

// Console reads command lines from a reader (stdin by default) and
// dispatches them through cmd.Execute against a fixed *cmd.Context.
type Console struct {
	ctx     *cmd.Context
	log     *slog.Logger
	reader  io.Reader
	history []string
}

// New returns a Console bound to ctx, reading from os.Stdin and logging
// to log (slog.Default() if nil).
func New(ctx *cmd.Context, log *slog.Logger) *Console {
	if log == nil {
		log = slog.Default()
	}
	return &Console{ctx: ctx, log: log, reader: os.Stdin}
}

// WithReader swaps the input reader, for driving the console in tests.
func (c *Console) WithReader(r io.Reader) *Console {
	if r != nil {
		c.reader = r
	}
	return c
}

// Run consumes commands until ctx is cancelled or the reader reaches
// EOF. Non-interactive readers (anything but os.Stdin) use a plain line
// scanner; os.Stdin drives the interactive prompt with tab completion.
func (c *Console) Run(ctx context.Context) {
	if c.reader != os.Stdin {
		c.runScanner(ctx)
		return
	}
	c.runInteractive(ctx)
}

func (c *Console) runScanner(ctx context.Context) {
	scanner := bufio.NewScanner(c.reader)
	src := &Source{log: c.log}
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				c.log.Error("console input error", "err", err)
			}
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		c.execute(line, src)
	}
}

func (c *Console) runInteractive(ctx context.Context) {
	src := &Source{log: c.log}
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		line := prompt.Input(defaultPromptPrefix, c.complete,
			prompt.OptionTitle("voxelserver console"),
			prompt.OptionHistory(c.history),
			prompt.OptionPrefix(defaultPromptPrefix),
			prompt.OptionCompletionOnDown(),
			prompt.OptionMaxSuggestion(12),
		)
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		c.execute(line, src)
	}
}

func (c *Console) execute(line string, src *Source) {
	if !strings.HasPrefix(line, "/") {
		line = "/" + line
	}
	c.history = append(c.history, line)
	if len(c.history) > maxHistoryEntries {
		c.history = c.history[len(c.history)-maxHistoryEntries:]
	}
	_, cmdErr, ok := cmd.ExecuteLine(src, c.ctx, line)
	if !ok {
		return
	}
	for _, msg := range src.drain() {
		c.log.Info(msg)
	}
	if cmdErr != nil {
		c.log.Error(cmdErr.Error())
	}
}

func (c *Console) complete(doc prompt.Document) []prompt.Suggest {
	word := strings.TrimPrefix(doc.GetWordBeforeCursor(), "/")
	names := cmd.CompletionNames(word)
	suggestions := make([]prompt.Suggest, 0, len(names))
	for _, name := range names {
		usage := "/" + name
		if command, ok := cmd.ByAlias(name); ok && command.Usage != "" {
			usage = command.Usage
		}
		suggestions = append(suggestions, prompt.Suggest{Text: name, Description: usage})
	}
	sort.Slice(suggestions, func(i, j int) bool { return suggestions[i].Text < suggestions[j].Text })
	return suggestions
}

// Source is the cmd.Sender implementation for console input: permission
// level 4 (operator), output routed to the console's logger.
type Source struct {
	log      *slog.Logger
	messages []string
}

func (s *Source) DisplayName() string { return "Console" }

func (s *Source) CanUseCommand(permLevel int, _ string) bool { return permLevel <= 4 }

func (s *Source) AddChatMessage(c protocol.Chat) {
	s.messages = append(s.messages, c.Text)
}

func (s *Source) drain() []string {
	msgs := s.messages
	s.messages = nil
	return msgs
}
