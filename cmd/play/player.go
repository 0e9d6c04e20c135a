package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/iamasit07/connect4-obstacles/internal/domain"
	"github.com/iamasit07/connect4-obstacles/internal/repository/scorefile"
	"github.com/iamasit07/connect4-obstacles/internal/service/bot"
	"github.com/iamasit07/connect4-obstacles/internal/service/game"
)

var errQuit = errors.New("player quit")

type player struct {
	svc   *game.Service
	out   io.Writer
	lines <-chan string
}

func (p *player) run(ctx context.Context, preset, resumeID string) error {
	for {
		var gs *game.GameSession
		var err error
		if resumeID != "" {
			gs, err = p.svc.Restore(ctx, resumeID)
			resumeID = ""
			if err != nil {
				fmt.Fprintf(p.out, "Could not resume: %v\n", err)
				continue
			}
			fmt.Fprintf(p.out, "Resumed game %s\n", gs.GameID)
		} else {
			gs, err = p.svc.NewSession(ctx, preset)
			if err != nil {
				return err
			}
			fmt.Fprintf(p.out, "Game %s on a %dx%d board, connect %d. You are X.\n",
				gs.GameID, gs.Game.Board.Rows, gs.Game.Board.Cols, gs.Game.Board.WinLength)
		}

		if err := p.play(ctx, gs); err != nil {
			if errors.Is(err, errQuit) {
				fmt.Fprintf(p.out, "Left game %s\n", gs.GameID)
				return nil
			}
			return err
		}
		p.summary(gs)

		again, err := p.ask(ctx, "Play again? [y/N] ")
		if err != nil || !strings.EqualFold(strings.TrimSpace(again), "y") {
			return err
		}
	}
}

func (p *player) play(ctx context.Context, gs *game.GameSession) error {
	for !gs.Game.IsFinished() {
		render(p.out, gs.Game.Board)

		if gs.IsBotTurn() {
			col, err := p.svc.PlayBot(ctx, gs)
			switch {
			case errors.Is(err, domain.ErrMoveTimeout):
				fmt.Fprintln(p.out, "AI ran out of time, your turn.")
			case err != nil:
				return err
			default:
				fmt.Fprintf(p.out, "AI plays column %d\n", col+1)
			}
			continue
		}

		if err := p.humanTurn(ctx, gs); err != nil {
			return err
		}
	}
	render(p.out, gs.Game.Board)
	return nil
}

func (p *player) humanTurn(ctx context.Context, gs *game.GameSession) error {
	if hint := p.svc.Hint(gs); hint != bot.NoMove {
		fmt.Fprintf(p.out, "Hint: column %d\n", hint+1)
	}

	var timeout <-chan time.Time
	if remaining := p.svc.TimeRemaining(gs); remaining > 0 {
		fmt.Fprintf(p.out, "Your move (%ds left, q to quit): ", int(remaining.Round(time.Second).Seconds()))
		timer := time.NewTimer(remaining)
		defer timer.Stop()
		timeout = timer.C
	} else {
		fmt.Fprint(p.out, "Your move (q to quit): ")
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timeout:
			fmt.Fprintln(p.out, "\nTime is up, turn passes to the AI.")
			p.svc.ExpireTurn(ctx, gs)
			return nil
		case line, ok := <-p.lines:
			if !ok {
				return errQuit
			}
			line = strings.TrimSpace(line)
			if strings.EqualFold(line, "q") {
				return errQuit
			}
			col, err := strconv.Atoi(line)
			if err != nil {
				fmt.Fprint(p.out, "Enter a column number: ")
				continue
			}
			_, err = p.svc.PlayHuman(ctx, gs, col-1)
			switch {
			case errors.Is(err, domain.ErrMoveTimeout):
				fmt.Fprintln(p.out, "Too late, turn passes to the AI.")
				return nil
			case errors.Is(err, domain.ErrInvalidMove):
				fmt.Fprint(p.out, "That column is not playable, try another: ")
				continue
			case err != nil:
				return err
			}
			return nil
		}
	}
}

func (p *player) summary(gs *game.GameSession) {
	fmt.Fprintln(p.out, "Game Over!")
	for _, line := range scorefile.StatLines(gs.Result()) {
		fmt.Fprintln(p.out, line)
	}
}

func (p *player) ask(ctx context.Context, prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-p.lines:
		if !ok {
			return "", nil
		}
		return line, nil
	}
}
