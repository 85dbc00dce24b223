package repomanager

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/pressly/goose/v3"
)

// gooseLogger routes goose output through a logging.Logger.
type gooseLogger struct {
	ctx context.Context
	l   logging.Logger
}

func newGooseLogger(ctx context.Context, l logging.Logger) goose.Logger {
	if l == nil {
		return goose.NopLogger()
	}
	return &gooseLogger{ctx: ctx, l: l.With("component", "migrations")}
}

func (g *gooseLogger) Printf(format string, v ...any) {
	g.l.Info(g.ctx, strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (g *gooseLogger) Fatalf(format string, v ...any) {
	g.l.Error(g.ctx, strings.TrimSpace(fmt.Sprintf(format, v...)))
	os.Exit(1)
}
