package main

import (
	"context"
	"math/rand/v2"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/memory/internal/console"
	"github.com/robalobadob/memory/internal/game"
	"github.com/robalobadob/memory/internal/symbols"
)

// config is read from the environment (and an optional .env file).
type config struct {
	LogLevel    string `env:"LOG_LEVEL" envDefault:"warn"`
	SymbolsFile string `env:"MEMORY_SYMBOLS_FILE"`
	Seed        uint64 `env:"MEMORY_SEED"`     // 0 picks a random seed
	AuditDB     string `env:"MEMORY_AUDIT_DB"` // empty keeps records in memory
}

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to parse environment")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	syms, err := symbols.Load(cfg.SymbolsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load symbols")
	}

	st, err := openStore(cfg.AuditDB)
	if err != nil {
		log.Fatal().Err(err).Str("dsn", cfg.AuditDB).Msg("failed to open audit store")
	}

	g := console.New(os.Stdin, os.Stdout, console.Config{
		Rows:     game.DefaultRows,
		Cols:     game.DefaultCols,
		Symbols:  syms,
		Shuffler: newShuffler(cfg.Seed),
		Store:    st,
	})
	runErr := g.Run(context.Background())
	if err := st.Close(); err != nil {
		log.Warn().Err(err).Msg("closing audit store")
	}
	if runErr != nil {
		log.Fatal().Err(runErr).Msg("game exited")
	}
}

// newShuffler returns a PCG-backed generator; the same non-zero seed always
// deals the same boards.
func newShuffler(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	log.Debug().Uint64("seed", seed).Msg("using fixed shuffle seed")
	return rand.New(rand.NewPCG(seed, seed))
}
