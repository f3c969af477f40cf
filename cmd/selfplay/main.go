package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"watchyourback/agent"
	"watchyourback/engine"
	"watchyourback/game"
	"watchyourback/meta"
	"watchyourback/metrics"
	"watchyourback/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type config struct {
	kind      string
	seed      uint64
	maxDepth  int
	moveTime  time.Duration
	timeLimit time.Duration
}

func main() {
	white := flag.String("white", "search", "White player: search or random")
	black := flag.String("black", "random", "Black player: search or random")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for tie-breaking and random players")
	maxDepth := flag.Int("depth", meta.MAX_DEPTH, "Maximum moving-phase search depth")
	moveTime := flag.Duration("move-time", 250*time.Millisecond, "Target search time per move")
	timeLimit := flag.Duration("time-limit", meta.GAME_TIME_LIMIT, "Search time allowance per player for the whole game")
	level := flag.String("log-level", "info", "Log level")
	out := flag.String("out", "", "Directory to write game and move records to")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		log.Fatal().Err(err).Msg("bad log level")
	}
	zerolog.SetGlobalLevel(lvl)

	players := [2]agent.Player{}
	for side, kind := range []string{*white, *black} {
		cfg := config{kind: kind, seed: *seed + uint64(side), maxDepth: *maxDepth, moveTime: *moveTime, timeLimit: *timeLimit}
		p, err := newPlayer(game.Side(side), cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot create player")
		}
		players[side] = p
	}

	e := engine.NewLocal(players[game.White], players[game.Black])
	result, err := e.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
	fmt.Print(e.Board())
	fmt.Printf("Winner: %s after %d moving turns\n", result.Winner, result.Game.MovingTurns)

	if *out != "" {
		if err := writeRecords(*out, *white, *black, result); err != nil {
			log.Fatal().Err(err).Msg("cannot write records")
		}
	}
}

func newPlayer(side game.Side, cfg config) (agent.Player, error) {
	switch cfg.kind {
	case "random":
		return agent.NewRandom(side, cfg.seed), nil
	case "search":
		options := []searcher.Option{
			searcher.WithSeed(cfg.seed),
			searcher.WithMoveTime(cfg.moveTime),
			searcher.WithMetrics(),
		}
		if cfg.maxDepth < meta.MIN_DEPTH {
			options = append(options, searcher.WithFixedDepth(cfg.maxDepth))
		} else {
			options = append(options, searcher.WithMaxDepth(cfg.maxDepth))
		}
		if cfg.timeLimit > 0 {
			options = append(options, searcher.WithTimeLimit(cfg.timeLimit))
		}
		return agent.New(side, options...)
	default:
		return nil, fmt.Errorf("unknown player kind %q", cfg.kind)
	}
}

func writeRecords(dir, white, black string, result engine.Result) error {
	writer, err := metrics.NewWriter(dir)
	if err != nil {
		return err
	}
	record := metrics.GameRecord{White: white, Black: black, GameMetric: result.Game}
	if err := writer.WriteGameRecords([]metrics.GameRecord{record}); err != nil {
		return err
	}
	moves := make([]metrics.MoveRecord, len(result.Moves))
	for i, m := range result.Moves {
		moves[i] = metrics.MoveRecord{Game: result.Game.ID.String(), MoveMetric: m}
	}
	if err := writer.WriteMoveRecords(moves); err != nil {
		return err
	}
	log.Info().Str("dir", writer.Dir()).Msg("records written")
	return nil
}
