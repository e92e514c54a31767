package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/notation"
	"github.com/rocketscienceinc/gomoku-backend/internal/usecase"
)

const helpText = `Commands:
  <move>            play a move, e.g. H8 or "8 7" (row column)
  undo              take back the last move
  ai off|black|white choose the side played by the computer
  new [size]        start a new game
  save <name>       save the game
  load <name>       load a saved game
  help              show this text
  quit | exit       leave the game`

type session interface {
	Snapshot() usecase.View
	Play(text string) (usecase.View, error)
	Undo() (usecase.View, error)
	Reset(size int, mode entity.AIMode) (usecase.View, error)
	Configure(mode entity.AIMode) (usecase.View, error)
	Save(ctx context.Context, name string) error
	Load(ctx context.Context, name string) (usecase.View, error)
}

type Server struct {
	logger  *slog.Logger
	session session

	in  io.Reader
	out io.Writer

	handlers map[string]func(ctx context.Context, args []string) (bool, error)
}

func New(logger *slog.Logger, session session, in io.Reader, out io.Writer) *Server {
	server := &Server{
		logger:  logger.With("component", "console"),
		session: session,
		in:      in,
		out:     out,
	}

	server.handlers = map[string]func(context.Context, []string) (bool, error){
		"undo": server.handleUndo,
		"ai":   server.handleAI,
		"new":  server.handleNew,
		"save": server.handleSave,
		"load": server.handleLoad,
		"help": server.handleHelp,
		"quit": server.handleQuit,
		"exit": server.handleQuit,
	}

	return server
}

// Start reads commands until EOF, quit or ctx is cancelled.
// A blocked read on in is not interrupted by ctx: after a cancel the reading
// goroutine ends only once in returns, so callers that outlive Start must close in.
func (that *Server) Start(ctx context.Context) error {
	log := that.logger.With("method", "Start")

	view := that.session.Snapshot()
	that.printf("Gomoku\nBoard size: %dx%d\n\n", view.Size, view.Size)
	that.render(view)

	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				readErr <- nil
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for {
		that.prompt()

		select {
		case <-ctx.Done():
			that.printf("\nInterrupted. Exiting the game.\n")
			return nil
		case line, ok := <-lines:
			if !ok {
				that.printf("\nInput ended. Exiting the game.\n")
				if err := <-readErr; err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}
				return nil
			}

			stop, err := that.handleLine(ctx, line)
			if err != nil {
				log.Debug("command rejected", "input", line, "error", err)
				that.printf("Invalid command: %v\n", err)
			}
			if stop {
				return nil
			}
		}
	}
}

func (that *Server) handleLine(ctx context.Context, line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	if handler, ok := that.handlers[strings.ToLower(fields[0])]; ok {
		return handler(ctx, fields[1:])
	}

	view, err := that.session.Play(line)
	if err != nil {
		return false, err
	}

	that.render(view)

	return false, nil
}

func (that *Server) handleUndo(_ context.Context, _ []string) (bool, error) {
	view, err := that.session.Undo()
	if err != nil {
		return false, err
	}

	that.render(view)

	return false, nil
}

func (that *Server) handleAI(_ context.Context, args []string) (bool, error) {
	if len(args) != 1 {
		return false, errors.New("usage: ai off|black|white")
	}

	mode, err := entity.ParseAIMode(args[0])
	if err != nil {
		return false, err
	}

	view, err := that.session.Configure(mode)
	if err != nil {
		return false, err
	}

	that.render(view)

	return false, nil
}

func (that *Server) handleNew(_ context.Context, args []string) (bool, error) {
	view := that.session.Snapshot()
	size := view.Size

	if len(args) > 0 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil {
			return false, fmt.Errorf("size must be a number: %q", args[0])
		}
		size = parsed
	}

	view, err := that.session.Reset(size, view.AISide)
	if err != nil {
		return false, err
	}

	that.printf("New game on a %dx%d board.\n", view.Size, view.Size)
	that.render(view)

	return false, nil
}

func (that *Server) handleSave(ctx context.Context, args []string) (bool, error) {
	if len(args) != 1 {
		return false, errors.New("usage: save <name>")
	}

	if err := that.session.Save(ctx, args[0]); err != nil {
		return false, err
	}

	that.printf("Game saved as %q.\n", args[0])

	return false, nil
}

func (that *Server) handleLoad(ctx context.Context, args []string) (bool, error) {
	if len(args) != 1 {
		return false, errors.New("usage: load <name>")
	}

	view, err := that.session.Load(ctx, args[0])
	if err != nil {
		return false, err
	}

	that.render(view)

	return false, nil
}

func (that *Server) handleHelp(_ context.Context, _ []string) (bool, error) {
	that.printf("%s\n", helpText)
	return false, nil
}

func (that *Server) handleQuit(_ context.Context, _ []string) (bool, error) {
	that.printf("Game aborted.\n")
	return true, nil
}

func (that *Server) render(view usecase.View) {
	that.printf("\n%s\n", notation.FormatGrid(view.Board))

	if view.LastMove != nil {
		that.printf("Last move: %s\n", notation.FormatCoordinate(*view.LastMove))
	}

	switch view.Winner {
	case "":
	case usecase.ResultDraw:
		that.printf("The board is full. It's a draw!\n")
	default:
		that.printf("Player %s wins!\n", view.Winner)
	}
}

func (that *Server) prompt() {
	view := that.session.Snapshot()
	if view.Winner != "" {
		that.printf("Game over. Type new, undo, load or quit: ")
		return
	}

	that.printf("Player %s, enter your move: ", view.CurrentPlayer)
}

func (that *Server) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
