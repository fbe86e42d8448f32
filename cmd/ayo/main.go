package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/ayo/internal/config"
	"github.com/mitchelldurbincs/ayo/internal/game"
	"github.com/mitchelldurbincs/ayo/internal/game/events"
	"github.com/mitchelldurbincs/ayo/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/ayo/internal/ui/input"
)

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to config file")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	color := flag.Bool("color", false, "Draw the board with ANSI colors")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize config: %v\n", err)
		os.Exit(1)
	}
	if err := config.LoadEnvironmentConfig(os.Getenv("APP_ENV")); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load environment config: %v\n", err)
		os.Exit(1)
	}
	if *logLevel != "" {
		if _, err := zerolog.ParseLevel(*logLevel); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid log level %q: %v\n", *logLevel, err)
			os.Exit(1)
		}
		if err := config.Set("log.level", *logLevel); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to apply log level: %v\n", err)
			os.Exit(1)
		}
	}
	if *color {
		_ = config.Set("ui.color", true)
	}

	cfg := config.Get()
	setupLogging(cfg.LogLevel(), cfg.Log.Format)

	if config.ConfigFilePath() != "" {
		config.WatchConfig(func(c *config.Config) {
			zerolog.SetGlobalLevel(c.LogLevel())
			log.Info().Str("level", c.Log.Level).Msg("Config reloaded")
		})
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// A blocked stdin read cannot observe ctx, so a signal ends the process
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
		fmt.Println("\nGoodbye.")
		os.Exit(130)
	}()

	if err := run(ctx, cfg); err != nil {
		if errors.Is(err, input.ErrInputClosed) || errors.Is(err, context.Canceled) {
			fmt.Println("Goodbye.")
			return
		}
		log.Error().Err(err).Msg("Game aborted")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	handler := input.NewHandler(
		os.Stdin,
		os.Stdout,
		log.Logger,
		input.WithMaxInvalidInputs(cfg.UI.MaxInvalidInputs),
	)

	singlePlayer, err := handler.AskSinglePlayer()
	if err != nil {
		return err
	}

	bus := events.NewEventBus(log.Logger)
	if cfg.Log.Events {
		bus.Subscribe(subscribers.NewLoggerSubscriber("cli-events", log.Logger, cfg.LogLevel()))
	}

	engine, err := game.NewEngine(ctx, game.GameConfig{
		Logger:   log.Logger,
		PlayerA:  game.PlayerConfig{Name: cfg.Game.PlayerA.Name},
		PlayerB:  game.PlayerConfig{Name: cfg.Game.PlayerB.Name, IsAI: singlePlayer},
		Human:    handler,
		AISeed:   cfg.Game.AI.Seed,
		EventBus: bus,
	})
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	fmt.Println("Welcome to Ayo (Oware)!")
	fmt.Print(game.RenderBoard(engine.GameState(), cfg.UI.Color))

	for !engine.IsGameOver() {
		// Reloads may change announce and color between turns
		cfg = config.Get()

		mover := engine.CurrentPlayer()
		fmt.Printf("\n%s's turn.\n", mover.Name)
		if mover.IsAI && cfg.Game.AI.Announce {
			fmt.Println("AI is thinking...")
		}

		result, err := engine.Step(ctx)
		if err != nil {
			return err
		}
		if result == nil {
			break
		}
		if mover.IsAI && cfg.Game.AI.Announce {
			fmt.Printf("AI chooses pit %d\n", result.Pit+1)
		}
		if result.Captured > 0 {
			fmt.Printf("%s captures %d seeds!\n", mover.Name, result.Captured)
		}
		fmt.Print(game.RenderBoard(engine.GameState(), cfg.UI.Color))
	}

	printResult(engine)
	return nil
}

func printResult(engine *game.Engine) {
	result, ok := engine.Result()
	if !ok {
		return
	}
	state := engine.GameState()

	fmt.Println("\nGame Over!")
	fmt.Println("Final Scores:")
	for _, p := range state.Players {
		fmt.Printf("%s: %d\n", p.Name, result.Scores[p.ID])
	}
	if result.IsDraw() {
		fmt.Println("It's a Draw!")
		return
	}
	fmt.Printf("🎉 %s Wins! 🎉\n", state.Players[result.Winner].Name)
}

func setupLogging(level zerolog.Level, format string) {
	zerolog.SetGlobalLevel(level)

	// Logs go to stderr so they never interleave with the board
	if os.Getenv("APP_ENV") == "production" || format == "json" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}
}
