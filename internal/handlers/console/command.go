package console

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// CommandHandler defines the interface for console command handlers
type CommandHandler interface {
	// GetName returns the command name
	GetName() string

	// GetUsage returns the help text listing the subcommands
	GetUsage() string

	// Handle processes the arguments that followed the command name
	Handle(ctx context.Context, w io.Writer, args []string) error
}

// Subcommand describes one action of a command for the help text
type Subcommand struct {
	Name        string
	Args        string
	Description string
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Name        string
	Description string
	Subcommands []Subcommand
}

// GetName returns the command name
func (c *BaseCommand) GetName() string {
	return c.Name
}

// GetUsage returns the help text listing the subcommands
func (c *BaseCommand) GetUsage() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s - %s\n", c.Name, c.Description)
	for _, sub := range c.Subcommands {
		usage := strings.TrimSpace(fmt.Sprintf("%s %s %s", c.Name, sub.Name, sub.Args))
		fmt.Fprintf(&b, "  %-36s %s\n", usage, sub.Description)
	}
	return b.String()
}

// Field is a labelled value inside an embed
type Field struct {
	Name  string
	Value string
}

// RespondWithMessage writes a plain line
func RespondWithMessage(w io.Writer, message string) error {
	_, err := fmt.Fprintln(w, message)
	return err
}

// RespondWithEmbed writes a titled block with an optional description and fields
func RespondWithEmbed(w io.Writer, title, description string, fields []Field) error {
	var b strings.Builder
	fmt.Fprintf(&b, "== %s ==\n", title)
	if description != "" {
		fmt.Fprintln(&b, description)
	}
	for _, f := range fields {
		fmt.Fprintf(&b, "  %s: %s\n", f.Name, f.Value)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// RespondWithError writes an error line
func RespondWithError(w io.Writer, errorMessage string) error {
	_, err := fmt.Fprintf(w, "! %s\n", errorMessage)
	return err
}
