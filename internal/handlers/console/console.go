package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultPrompt is printed before every command
const DefaultPrompt = "> "

// ErrQuit is returned by a handler to end the session
var ErrQuit = errors.New("quit")

// Config holds the configuration for the console
type Config struct {
	In     io.Reader
	Out    io.Writer
	Logger *logrus.Entry

	// Prompt defaults to DefaultPrompt, set to a single space to hide it
	Prompt string
}

// Console reads commands line by line and dispatches them to handlers
type Console struct {
	in       io.Reader
	out      io.Writer
	logger   *logrus.Entry
	prompt   string
	commands map[string]CommandHandler
}

// New creates a new console
func New(cfg *Config) (*Console, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.In == nil {
		return nil, errors.New("input cannot be nil")
	}
	if cfg.Out == nil {
		return nil, errors.New("output cannot be nil")
	}
	if cfg.Logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	prompt := cfg.Prompt
	if prompt == "" {
		prompt = DefaultPrompt
	}

	return &Console{
		in:       cfg.In,
		out:      cfg.Out,
		logger:   cfg.Logger,
		prompt:   strings.TrimRight(prompt, " ") + " ",
		commands: make(map[string]CommandHandler),
	}, nil
}

// RegisterCommand makes a command available by name
func (c *Console) RegisterCommand(cmd CommandHandler) error {
	name := cmd.GetName()
	if name == "help" || name == "quit" || name == "exit" {
		return fmt.Errorf("command name %s is reserved", name)
	}
	if _, ok := c.commands[name]; ok {
		return fmt.Errorf("command %s already registered", name)
	}

	c.commands[name] = cmd
	c.logger.WithField("command", name).Debug("registered command")
	return nil
}

// Run processes commands until the input ends, quit is entered or ctx is done
func (c *Console) Run(ctx context.Context) error {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for {
		c.writePrompt()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				// input closed
				select {
				case err := <-readErr:
					return err
				default:
					return nil
				}
			}

			if err := c.Execute(ctx, line); err != nil {
				if errors.Is(err, ErrQuit) {
					return nil
				}
				return err
			}
		}
	}
}

// Execute runs a single command line. Handler failures are reported to the
// output; only write failures and ErrQuit are returned.
func (c *Console) Execute(ctx context.Context, line string) error {
	args := strings.Fields(line)
	if len(args) == 0 {
		return nil
	}

	name := strings.ToLower(args[0])
	switch name {
	case "quit", "exit":
		return ErrQuit
	case "help":
		return c.writeHelp()
	}

	cmd, ok := c.commands[name]
	if !ok {
		return RespondWithError(c.out, fmt.Sprintf("Unknown command %q. Type help for a list.", name))
	}

	if err := cmd.Handle(ctx, c.out, args[1:]); err != nil {
		c.logger.WithFields(logrus.Fields{
			"command": name,
			"args":    args[1:],
		}).WithError(err).Error("command failed")
		return RespondWithError(c.out, err.Error())
	}

	return nil
}

func (c *Console) writePrompt() {
	if strings.TrimSpace(c.prompt) == "" {
		return
	}
	io.WriteString(c.out, c.prompt)
}

func (c *Console) writeHelp() error {
	names := make([]string, 0, len(c.commands))
	for name := range c.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		b.WriteString(c.commands[name].GetUsage())
	}
	b.WriteString("help                                   show this help\n")
	b.WriteString("quit                                   leave\n")

	_, err := io.WriteString(c.out, b.String())
	return err
}
