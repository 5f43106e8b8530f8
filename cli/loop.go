package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"go.uber.org/zap"

	"github.com/linesmerrill/invite-inspector/discord"
	"github.com/linesmerrill/invite-inspector/models"
)

// Inspector resolves an invite code into a report
type Inspector interface {
	Inspect(ctx context.Context, code string) (*models.Report, error)
}

// Loop reads invite codes and prints a report for each
type Loop struct {
	Reader    LineReader
	Inspector Inspector
	Out       io.Writer
	Err       io.Writer
	// ExitOnError ends Run at the first failed lookup instead of prompting again
	ExitOnError bool
}

// Run prompts until the input ends or is interrupted, which is not an error
func (l *Loop) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}
		line, err := l.Reader.Readline()
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		if ctx.Err() != nil {
			return nil
		}

		code := discord.StripInviteCode(line)
		if strings.TrimSpace(code) == "" {
			continue
		}
		fmt.Fprintln(l.Out)

		err = l.lookup(ctx, code)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		if err != nil && l.ExitOnError {
			return err
		}
	}
}

// RunCodes prints a report for each argument in turn. It returns the last
// lookup error, or the first one when ExitOnError is set. Cancelling ctx stops
// before the next argument and returns the cancellation.
func (l *Loop) RunCodes(ctx context.Context, args []string) error {
	var lastErr error
	for _, arg := range args {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := l.lookup(ctx, discord.StripInviteCode(arg)); err != nil {
			if l.ExitOnError || errors.Is(err, context.Canceled) {
				return err
			}
			lastErr = err
		}
	}
	return lastErr
}

func (l *Loop) lookup(ctx context.Context, code string) error {
	report, err := l.Inspector.Inspect(ctx, code)
	if errors.Is(err, context.Canceled) {
		return err
	}
	if err != nil {
		fmt.Fprintf(l.Err, "error: %v\n\n", err)
		return err
	}
	if err := Render(l.Out, report); err != nil {
		zap.S().With(err).Error("failed to write report")
		return err
	}
	fmt.Fprintln(l.Out)
	return nil
}
