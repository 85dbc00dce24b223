package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/gophauth/internal/client/config"
)

var ErrUsage = errors.New("usage: client [-a addr] [-token token] [-timeout d] register|login|greet [args]")

// API is the part of client.GRPCClient used by the commands.
type API interface {
	Register(ctx context.Context, firstName, lastName, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	Greet(ctx context.Context, message string) (string, error)
	SetAccessToken(token string)
}

type App struct {
	config *config.Config
	api    API
	reader *bufio.Reader
	out    io.Writer
	prompt io.Writer
}

// NewApp builds the CLI. Results go to out, prompts to prompt.
func NewApp(c *config.Config, api API, in io.Reader, out, prompt io.Writer) *App {
	if c.Token != "" {
		api.SetAccessToken(c.Token)
	}
	return &App{config: c, api: api, reader: bufio.NewReader(in), out: out, prompt: prompt}
}

// Run executes a single command.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}

	ctx, cancel := context.WithTimeout(ctx, a.config.Timeout)
	defer cancel()

	switch args[0] {
	case "register":
		return a.Register(ctx, args[1:])
	case "login":
		return a.Login(ctx, args[1:])
	case "greet":
		return a.Greet(ctx, args[1:])
	default:
		return fmt.Errorf("unknown command %q: %w", args[0], ErrUsage)
	}
}

// emailArg returns the email operand or prompts for it.
func (a *App) emailArg(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return GetSimpleText(a.reader, "Enter email", a.prompt)
}

func (a *App) Greet(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("greet needs a message: %w", ErrUsage)
	}

	reply, err := a.api.Greet(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, reply)
	return err
}
