// Package tournament enumerates the bounded-memory strategy space and
// plays every ordered pairing through the match engine.
package tournament

import (
	"context"
	"fmt"
	"io"
	"math/bits"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/dilemma/internal/game"
	"github.com/lox/dilemma/internal/randutil"
	"github.com/lox/dilemma/internal/strategy"
)

// Config holds configuration for running a tournament.
type Config struct {
	// Competitors is the number of strategies to enumerate, indexed
	// [0, Competitors).
	Competitors int
	// Rounds is the length of each match before jitter.
	Rounds int
	// Jitter randomises each match length when positive. Unlike earlier
	// revisions of this tool, the value is threaded through to every
	// match rather than silently discarded; callers pick fixed or
	// randomised horizons explicitly.
	Jitter int
	// Seed drives the jitter draws. Each pairing derives its own stream
	// from it, so results are reproducible and independent of worker
	// scheduling.
	Seed int64
	// Payoff scores each round. Defaults to the conventional table.
	Payoff game.Payoff
	// Workers bounds concurrent matches. Defaults to the CPU count.
	Workers int

	Logger   *log.Logger
	Clock    quartz.Clock
	Reporter ProgressReporter
}

// Row is one entry of the result table: one ordered pairing and the
// totals each side accumulated.
type Row struct {
	IndexA int     `json:"index_a"`
	IndexB int     `json:"index_b"`
	CodeA  string  `json:"code_a"`
	CodeB  string  `json:"code_b"`
	ScoreA float64 `json:"score_a"`
	ScoreB float64 `json:"score_b"`
	Rounds int     `json:"rounds"`
}

// Result is the full pairwise table. Rows are in row-major (IndexA,
// IndexB) order and there are exactly Competitors^2 of them, self-pairings
// included.
type Result struct {
	Competitors int           `json:"competitors"`
	CodeLength  int           `json:"code_length"`
	Rounds      int           `json:"rounds"`
	Jitter      int           `json:"jitter"`
	Seed        int64         `json:"seed"`
	Rows        []Row         `json:"rows"`
	Elapsed     time.Duration `json:"elapsed_ns"`
}

// ProgressReporter receives callbacks as a tournament advances. Callbacks
// may arrive from worker goroutines and must be safe for concurrent use.
type ProgressReporter interface {
	OnTournamentStart(competitors, totalMatches int)
	OnMatchComplete(completed, total int)
	OnTournamentEnd(completed int, elapsed time.Duration)
}

// Tournament runs a full round-robin over the enumerated strategy space.
type Tournament struct {
	config Config
	logger *log.Logger
	clock  quartz.Clock
}

// New validates the configuration and fills in defaults.
func New(config Config) (*Tournament, error) {
	if config.Competitors <= 0 {
		return nil, fmt.Errorf("competitors must be positive, got %d", config.Competitors)
	}
	if config.Rounds <= 0 {
		return nil, fmt.Errorf("rounds must be positive, got %d", config.Rounds)
	}
	if config.Jitter < 0 {
		return nil, fmt.Errorf("jitter must not be negative, got %d", config.Jitter)
	}
	if config.Payoff == nil {
		config.Payoff = game.Conventional().Score
	}
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	return &Tournament{
		config: config,
		logger: config.Logger,
		clock:  config.Clock,
	}, nil
}

// CodeLength returns the encoding length for a population of the given
// size and whether it had to be widened. The natural length is
// ceil(log2(competitors)); an even result is bumped to the next odd value
// since encodings must be odd, which leaves part of the widened space
// unexplored.
func CodeLength(competitors int) (length int, corrected bool) {
	length = ceilLog2(competitors)
	if length%2 == 0 {
		return length + 1, true
	}
	return length, false
}

func ceilLog2(n int) int {
	return bits.Len(uint(n - 1))
}

// EncodeIndex converts a population index into its zero-padded binary
// strategy code of the given length.
func EncodeIndex(n, length int) (strategy.Bits, string) {
	code := fmt.Sprintf("%0*b", length, n)
	encoded := make(strategy.Bits, len(code))
	for i := 0; i < len(code); i++ {
		if code[i] == '1' {
			encoded[i] = 1
		}
	}
	return encoded, code
}

// Run enumerates the population and plays every ordered pairing. The row
// table comes back in row-major order regardless of how matches were
// scheduled across workers. Cancellation is checked between matches;
// a cancelled run returns ctx.Err and discards partial rows.
func (t *Tournament) Run(ctx context.Context) (*Result, error) {
	length, corrected := CodeLength(t.config.Competitors)
	if corrected {
		t.logger.Warn("widened code length to keep encodings odd, strategy space will not be fully explored",
			"competitors", t.config.Competitors,
			"code_length", length)
	}

	// Agents are stateless so one instance per index serves every match
	// it appears in, concurrently.
	agents := make([]*strategy.Agent, t.config.Competitors)
	codes := make([]string, t.config.Competitors)
	for n := range agents {
		encoded, code := EncodeIndex(n, length)
		agent, err := strategy.NewAgent(encoded)
		if err != nil {
			return nil, fmt.Errorf("constructing agent %d (%s): %w", n, code, err)
		}
		agents[n] = agent
		codes[n] = code
	}

	total := t.config.Competitors * t.config.Competitors
	rows := make([]Row, total)

	t.logger.Info("starting tournament",
		"competitors", t.config.Competitors,
		"code_length", length,
		"matches", total,
		"rounds", t.config.Rounds,
		"jitter", t.config.Jitter,
		"workers", t.config.Workers)

	if t.config.Reporter != nil {
		t.config.Reporter.OnTournamentStart(t.config.Competitors, total)
	}
	start := t.clock.Now()

	var completed atomic.Int64
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(t.config.Workers)

	for pair := 0; pair < total; pair++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		g.Go(func() error {
			indexA := pair / t.config.Competitors
			indexB := pair % t.config.Competitors

			match := game.New(game.Config{
				Rounds: t.config.Rounds,
				Jitter: t.config.Jitter,
				Rng:    randutil.ForPair(t.config.Seed, pair),
				Payoff: t.config.Payoff,
			})
			result := match.Play(agents[indexA], agents[indexB])

			// Each worker owns exactly one slot, no coordination needed.
			rows[pair] = Row{
				IndexA: indexA,
				IndexB: indexB,
				CodeA:  codes[indexA],
				CodeB:  codes[indexB],
				ScoreA: result.TotalA,
				ScoreB: result.TotalB,
				Rounds: result.Rounds,
			}

			if t.config.Reporter != nil {
				t.config.Reporter.OnMatchComplete(int(completed.Add(1)), total)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	elapsed := t.clock.Since(start)
	if t.config.Reporter != nil {
		t.config.Reporter.OnTournamentEnd(total, elapsed)
	}
	t.logger.Info("tournament complete",
		"matches", total,
		"elapsed", elapsed)

	return &Result{
		Competitors: t.config.Competitors,
		CodeLength:  length,
		Rounds:      t.config.Rounds,
		Jitter:      t.config.Jitter,
		Seed:        t.config.Seed,
		Rows:        rows,
		Elapsed:     elapsed,
	}, nil
}
