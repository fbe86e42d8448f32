package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/ayo/internal/game"
)

func main() {
	seed := flag.Uint64("seed", 0, "Seed for the AI fallback and the random opponent (0 uses the clock)")
	maxTurns := flag.Int("max-turns", 1000, "Stop after this many turns if nobody runs out of seeds")
	opponent := flag.String("opponent", "greedy", "Player B strategy: greedy or random")
	quiet := flag.Bool("quiet", false, "Only print the final board and scores")
	color := flag.Bool("color", false, "Draw the board with ANSI colors")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	fmt.Printf("Game seed: %d\n", *seed)

	if err := aiDemo(context.Background(), *seed, *maxTurns, *opponent, *quiet, *color); err != nil {
		log.Error().Err(err).Msg("Demo failed")
		os.Exit(1)
	}
}

func aiDemo(ctx context.Context, seed uint64, maxTurns int, opponent string, quiet, color bool) error {
	cfg := game.GameConfig{
		Logger:  log.Logger,
		PlayerA: game.PlayerConfig{Name: "Greedy A", IsAI: true},
		AISeed:  seed,
	}
	switch opponent {
	case "greedy":
		cfg.PlayerB = game.PlayerConfig{Name: "Greedy B", IsAI: true}
	case "random":
		cfg.PlayerB = game.PlayerConfig{
			Name:     "Random B",
			IsAI:     true,
			Selector: game.NewRandomSelector(seed, log.Logger),
		}
	default:
		return fmt.Errorf("unknown opponent %q", opponent)
	}

	g, err := game.NewEngine(ctx, cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Initial board:\n%s\n", game.RenderBoard(g.GameState(), color))

	for turn := 0; turn < maxTurns && !g.IsGameOver(); turn++ {
		mover := g.CurrentPlayer()
		result, err := g.Step(ctx)
		if err != nil {
			return fmt.Errorf("turn %d: %w", turn+1, err)
		}
		if result == nil || quiet {
			continue
		}

		fmt.Printf("Turn %d: %s sows pit %d (%d seeds)", turn+1, mover.Name, result.Pit+1, result.Sown)
		if result.Captured > 0 {
			fmt.Printf(", captures %d", result.Captured)
		}
		fmt.Printf("\n%s\n", game.RenderBoard(g.GameState(), color))
	}

	state := g.GameState()
	if quiet {
		fmt.Printf("%s\n", game.RenderBoard(state, color))
	}

	result, ok := g.Result()
	if !ok {
		fmt.Printf("Stopped after %d turns with %d seeds on the board.\n", state.Turn, state.Board.SeedsOnBoard())
		for _, p := range state.Players {
			fmt.Printf("%s: %d\n", p.Name, p.Score)
		}
		return nil
	}

	fmt.Printf("Game Over after %d turns (%s), %d seeds left on the board.\n",
		result.Turns, result.Duration.Round(time.Microsecond), result.SeedsLeft)
	for _, p := range state.Players {
		s := result.Stats[p.ID]
		fmt.Printf("%s: %d (moves %d, sown %d, captures %d, biggest %d)\n",
			p.Name, result.Scores[p.ID], s.Moves, s.SeedsSown, s.Captures, s.BiggestCapture)
	}
	if result.IsDraw() {
		fmt.Println("It's a Draw!")
	} else {
		fmt.Printf("🎉 %s wins!\n", state.Players[result.Winner].Name)
	}
	return nil
}
