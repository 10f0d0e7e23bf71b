package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/suite"
)

// echoCommand records what it was called with
type echoCommand struct {
	BaseCommand
	calls [][]string
	err   error
}

func newEchoCommand() *echoCommand {
	return &echoCommand{
		BaseCommand: BaseCommand{
			Name:        "echo",
			Description: "Echo arguments",
			Subcommands: []Subcommand{{Name: "say", Args: "<words>", Description: "Say words"}},
		},
	}
}

func (c *echoCommand) Handle(ctx context.Context, w io.Writer, args []string) error {
	c.calls = append(c.calls, args)
	if c.err != nil {
		return c.err
	}
	return RespondWithMessage(w, strings.Join(args, " "))
}

type ConsoleTestSuite struct {
	suite.Suite
	out     *bytes.Buffer
	logHook *logtest.Hook
	logger  *logrus.Entry
	echo    *echoCommand
}

func (s *ConsoleTestSuite) SetupTest() {
	s.out = &bytes.Buffer{}
	logger, hook := logtest.NewNullLogger()
	s.logHook = hook
	s.logger = logrus.NewEntry(logger)
	s.echo = newEchoCommand()
}

func TestConsoleSuite(t *testing.T) {
	suite.Run(t, new(ConsoleTestSuite))
}

func (s *ConsoleTestSuite) newConsole(input string) *Console {
	c, err := New(&Config{
		In:     strings.NewReader(input),
		Out:    s.out,
		Logger: s.logger,
	})
	s.Require().NoError(err)
	s.Require().NoError(c.RegisterCommand(s.echo))
	return c
}

func (s *ConsoleTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{Out: s.out, Logger: s.logger})
	s.Error(err)

	_, err = New(&Config{In: strings.NewReader(""), Logger: s.logger})
	s.Error(err)

	_, err = New(&Config{In: strings.NewReader(""), Out: s.out})
	s.Error(err)
}

func (s *ConsoleTestSuite) TestRegisterCommand_RejectsDuplicatesAndReserved() {
	c := s.newConsole("")

	s.Error(c.RegisterCommand(newEchoCommand()))

	reserved := newEchoCommand()
	reserved.Name = "help"
	s.Error(c.RegisterCommand(reserved))
}

func (s *ConsoleTestSuite) TestRun_DispatchesUntilInputEnds() {
	c := s.newConsole("echo say hello\n\n   \nECHO again\n")

	err := c.Run(context.Background())

	s.Require().NoError(err)
	s.Equal([][]string{{"say", "hello"}, {"again"}}, s.echo.calls)
	s.Contains(s.out.String(), "say hello\n")
	s.Contains(s.out.String(), DefaultPrompt)
}

func (s *ConsoleTestSuite) TestRun_QuitStops() {
	c := s.newConsole("echo one\nquit\necho two\n")

	err := c.Run(context.Background())

	s.Require().NoError(err)
	s.Equal([][]string{{"one"}}, s.echo.calls)
}

func (s *ConsoleTestSuite) TestRun_CancelledContext() {
	c := s.newConsole("echo one\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Run(ctx)

	s.ErrorIs(err, context.Canceled)
}

func (s *ConsoleTestSuite) TestExecute_Help() {
	c := s.newConsole("")

	s.Require().NoError(c.Execute(context.Background(), "help"))

	s.Contains(s.out.String(), "echo - Echo arguments")
	s.Contains(s.out.String(), "echo say <words>")
	s.Contains(s.out.String(), "quit")
}

func (s *ConsoleTestSuite) TestExecute_UnknownCommand() {
	c := s.newConsole("")

	s.Require().NoError(c.Execute(context.Background(), "dance"))

	s.Contains(s.out.String(), `! Unknown command "dance"`)
}

func (s *ConsoleTestSuite) TestExecute_HandlerErrorIsReportedAndLogged() {
	c := s.newConsole("")
	s.echo.err = errors.New("boom")

	s.Require().NoError(c.Execute(context.Background(), "echo x"))

	s.Contains(s.out.String(), "! boom")
	entry := s.logHook.LastEntry()
	s.Require().NotNil(entry)
	s.Equal(logrus.ErrorLevel, entry.Level)
	s.Equal("echo", entry.Data["command"])
}

func (s *ConsoleTestSuite) TestRespondWithEmbed() {
	err := RespondWithEmbed(s.out, "Title", "Body", []Field{{Name: "1", Value: "Ana"}})

	s.Require().NoError(err)
	s.Equal("== Title ==\nBody\n  1: Ana\n", s.out.String())
}
