// Package loop drives a session turn by turn: render, check for victory,
// read a command, apply it.
package loop

import (
	"context"
	"errors"
	"io"

	"go.uber.org/zap"

	"github.com/cory-johannsen/aventura/internal/game/session"
	"github.com/cory-johannsen/aventura/internal/i18n"
)

// Renderer displays the game. It never changes game state.
type Renderer interface {
	// Clear wipes the screen.
	Clear()
	// Message prints free lines of text.
	Message(lines ...string)
	// Turn prints the pending feedback, the current room and the inventory.
	Turn(snap session.Snapshot)
}

// LineReader reads one line of player input.
type LineReader interface {
	// ReadLine shows prompt and blocks until a line arrives, the input ends
	// (io.EOF) or ctx is done.
	ReadLine(ctx context.Context, prompt string) (string, error)
}

// Handler applies one line of input to the session.
type Handler interface {
	Handle(line string) string
	// Modal reports whether the last feedback should be shown on its own
	// screen, waiting for ENTER, instead of above the next turn.
	Modal() bool
}

// Options tune the driver.
type Options struct {
	// ClearScreen wipes the screen before every render except the first.
	ClearScreen bool
}

// Driver runs one session to completion.
type Driver struct {
	sess     *session.Session
	handler  Handler
	renderer Renderer
	input    LineReader
	opts     Options
	logger   *zap.Logger
}

// NewDriver wires a driver.
//
// Precondition: all arguments must be non-nil.
func NewDriver(sess *session.Session, handler Handler, renderer Renderer, input LineReader, opts Options, logger *zap.Logger) *Driver {
	return &Driver{
		sess:     sess,
		handler:  handler,
		renderer: renderer,
		input:    input,
		opts:     opts,
		logger:   logger,
	}
}

// Run plays the session until it is won, lost or quit. End of input counts
// as quitting.
//
// Postcondition: Returns the final outcome. A non-nil error means the input
// failed or ctx was cancelled; the outcome is then session.Quit.
func (d *Driver) Run(ctx context.Context) (session.Outcome, error) {
	d.logger.Info("session started",
		zap.String("room", d.sess.Player.RoomID),
		zap.Int("max_items", d.sess.Player.Inventory.MaxItems()),
	)

	d.renderer.Clear()
	d.renderer.Message(
		i18n.T(i18n.IntroTitle),
		i18n.T(i18n.IntroCapacity, d.sess.Player.Inventory.MaxItems()),
	)
	if _, err := d.input.ReadLine(ctx, i18n.T(i18n.PressEnterStart)); err != nil {
		return d.stop(err)
	}

	first := true
	for {
		if !first && d.opts.ClearScreen {
			d.renderer.Clear()
		}
		first = false

		d.renderer.Turn(d.sess.Snapshot())

		if d.sess.CheckVictory() {
			d.logger.Info("player won", zap.String("room", d.sess.Player.RoomID))
			d.renderer.Message(i18n.T(i18n.Victory))
			if _, err := d.input.ReadLine(ctx, i18n.T(i18n.PressEnterEnd)); err != nil && !errors.Is(err, io.EOF) {
				return session.Won, err
			}
			return session.Won, nil
		}

		line, err := d.input.ReadLine(ctx, i18n.T(i18n.Prompt))
		if err != nil {
			return d.stop(err)
		}
		d.handler.Handle(line)

		if !d.sess.Running() {
			return d.finish(), nil
		}
		if d.handler.Modal() {
			if err := d.pause(ctx); err != nil {
				return d.stop(err)
			}
		}
	}
}

// pause shows the pending feedback alone and waits for ENTER. The feedback is
// consumed, so the next turn renders without it.
func (d *Driver) pause(ctx context.Context) error {
	if d.opts.ClearScreen {
		d.renderer.Clear()
	}
	d.renderer.Message(d.sess.Feedback.Take())
	_, err := d.input.ReadLine(ctx, i18n.T(i18n.PressEnterBack))
	return err
}

// finish shows the last feedback of an ended session.
func (d *Driver) finish() session.Outcome {
	out := d.sess.Outcome()
	d.renderer.Message(d.sess.Feedback.Take())
	if out == session.Lost {
		d.renderer.Message(i18n.T(i18n.GameOver))
	}
	d.logger.Info("session ended", zap.Stringer("outcome", out), zap.String("room", d.sess.Player.RoomID))
	return out
}

// stop ends the session because the input went away.
func (d *Driver) stop(err error) (session.Outcome, error) {
	d.sess.End(session.Quit)
	if errors.Is(err, io.EOF) {
		d.logger.Info("input closed", zap.String("room", d.sess.Player.RoomID))
		return session.Quit, nil
	}
	d.logger.Warn("reading input", zap.Error(err))
	return session.Quit, err
}
