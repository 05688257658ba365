// Command holdem-sim is a thin demonstration harness over the engine: it
// loads a table from an HCL file, wires a trivial built-in DecisionSource,
// and plays the requested number of hands, rotating the dealer between
// each. It is not the interactive prompt loop or any other front-end —
// those are out of scope; this command exists only to exercise the engine
// end-to-end.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/holdem-engine/internal/config"
	"github.com/lox/holdem-engine/internal/game"
	"github.com/lox/holdem-engine/internal/randutil"
)

type CLI struct {
	Config  string `short:"c" help:"Path to the table's HCL configuration." required:""`
	Hands   int    `short:"n" help:"Number of hands to play." default:"1"`
	Seed    int64  `short:"s" help:"Seed for the deterministic shuffler." default:"1"`
	Verbose bool   `short:"v" help:"Enable debug logging."`
}

func main() {
	var cli CLI
	kong.Parse(&cli)

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	if cli.Verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.InfoLevel)
	}

	if err := run(cli, logger); err != nil {
		logger.Fatal("simulation failed", "error", err)
	}
}

func run(cli CLI, logger *log.Logger) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return fmt.Errorf("holdem-sim: %w", err)
	}

	g, err := game.NewGameState(cfg.Names(), cfg.Stacks(), cfg.SmallBlind, cfg.BigBlind, cfg.Dealer)
	if err != nil {
		return fmt.Errorf("holdem-sim: %w", err)
	}

	controller, err := game.NewController(
		callEverythingSource{},
		randutil.NewShuffler(cli.Seed),
		loggingSink{logger: logger},
		logger,
		quartz.NewReal(),
	)
	if err != nil {
		return fmt.Errorf("holdem-sim: %w", err)
	}

	for hand := 0; hand < cli.Hands; hand++ {
		if err := controller.PlayHand(g); err != nil {
			return fmt.Errorf("holdem-sim: hand %d: %w", hand, err)
		}
		logger.Info("hand complete", "hand", hand, "dealer", g.Dealer)
		rotateDealer(g)
	}

	return nil
}

func rotateDealer(g *game.GameState) {
	g.Dealer = (g.Dealer + 1) % len(g.Seats)
}

// callEverythingSource is the trivial built-in DecisionSource: it calls
// any bet and checks otherwise, folding only when forced to by a legal set
// that offers nothing cheaper. It exists purely to exercise the wiring
// end-to-end, not as a strategy implementation.
type callEverythingSource struct{}

func (callEverythingSource) Decide(seatID int, _ game.Snapshot, legal []game.Action) game.Action {
	for _, a := range legal {
		if a.Kind == game.Check || a.Kind == game.Call {
			return a
		}
	}
	return legal[0]
}

// loggingSink forwards every emitted event to the logger at debug level.
type loggingSink struct {
	logger *log.Logger
}

func (s loggingSink) Emit(tag game.EventTag, snapshot game.Snapshot) {
	s.logger.Debug("event", "tag", tag, "street", snapshot.Street, "pot", snapshot.PotTotal)
}
