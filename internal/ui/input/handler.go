// Package input reads a human player's choices from a line-oriented
// terminal.
package input

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/ayo/internal/game"
	"github.com/mitchelldurbincs/ayo/internal/game/core"
)

var (
	// ErrInputClosed is returned when the input stream ends before an answer
	ErrInputClosed = errors.New("input closed")
	// ErrTooManyInvalid is returned once the configured retry budget is spent
	ErrTooManyInvalid = errors.New("too many invalid inputs")
)

const (
	ModePrompt    = "Single-player mode? (yes/no): "
	PitPrompt     = "Choose a pit (1-6): "
	InvalidMove   = "Invalid move! Choose a pit on your side that has seeds."
	InvalidNumber = "Please enter a number from 1 to 6."
)

// Handler prompts on out and reads answers from in, one per line.
type Handler struct {
	scanner    *bufio.Scanner
	out        io.Writer
	logger     zerolog.Logger
	maxInvalid int

	lastValidationMessage string
}

// Option configures a Handler.
type Option func(h *Handler)

// WithMaxInvalidInputs bounds consecutive rejected answers per prompt. Zero
// means unlimited.
func WithMaxInvalidInputs(n int) Option {
	return func(h *Handler) {
		h.maxInvalid = n
	}
}

func NewHandler(in io.Reader, out io.Writer, logger zerolog.Logger, opts ...Option) *Handler {
	h := &Handler{
		scanner: bufio.NewScanner(in),
		out:     out,
		logger:  logger.With().Str("component", "InputHandler").Logger(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// AskSinglePlayer asks whether to play against the computer. The first word
// of the answer decides: only "yes", in any case, selects single-player.
func (h *Handler) AskSinglePlayer() (bool, error) {
	fmt.Fprint(h.out, ModePrompt)
	line, err := h.readLine()
	if err != nil {
		return false, err
	}
	fields := strings.Fields(line)
	single := len(fields) > 0 && strings.EqualFold(fields[0], "yes")
	h.logger.Debug().Str("answer", line).Bool("single_player", single).Msg("Mode selected")
	return single, nil
}

// SelectPit prompts until the player enters the 1-based number of one of
// view.Legal and returns it as a 0-based side-relative pit. Non-numeric and
// illegal entries print a message and prompt again.
func (h *Handler) SelectPit(ctx context.Context, view game.TurnView) (int, error) {
	invalid := 0
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		fmt.Fprint(h.out, PitPrompt)
		line, err := h.readLine()
		if err != nil {
			return 0, err
		}

		pit, ok := h.parsePit(line, view.Legal)
		if ok {
			h.lastValidationMessage = ""
			return pit, nil
		}

		fmt.Fprintln(h.out, h.lastValidationMessage)
		h.logger.Debug().
			Int("player_id", view.Player.ID).
			Str("input", line).
			Str("reason", h.lastValidationMessage).
			Msg("Rejected pit choice")

		invalid++
		if h.maxInvalid > 0 && invalid >= h.maxInvalid {
			return 0, fmt.Errorf("%w: %d attempts", ErrTooManyInvalid, invalid)
		}
	}
}

func (h *Handler) parsePit(line string, legal []int) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		h.lastValidationMessage = InvalidNumber
		return 0, false
	}
	pit := n - 1
	if pit < 0 || pit >= core.PitsPerSide || !slices.Contains(legal, pit) {
		h.lastValidationMessage = InvalidMove
		return 0, false
	}
	return pit, true
}

// LastValidationMessage returns the message shown for the latest rejected entry
func (h *Handler) LastValidationMessage() string {
	return h.lastValidationMessage
}

func (h *Handler) readLine() (string, error) {
	if h.scanner.Scan() {
		return h.scanner.Text(), nil
	}
	if err := h.scanner.Err(); err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	fmt.Fprintln(h.out)
	return "", ErrInputClosed
}
