package main

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/lox/dilemma/internal/tournament"
)

// DotProgress prints a dot per chunk of completed matches. It is the
// fallback for non-interactive output.
type DotProgress struct {
	mu          sync.Mutex
	out         io.Writer
	total       int
	interval    int
	dotsPrinted int
	dotsPerLine int
	start       time.Time
}

// NewDotProgress creates a dot reporter writing to out.
func NewDotProgress(out io.Writer) *DotProgress {
	return &DotProgress{
		out:         out,
		dotsPerLine: 50,
	}
}

// OnTournamentStart is called once before the first match.
func (p *DotProgress) OnTournamentStart(competitors, totalMatches int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.total = totalMatches
	p.start = time.Now()

	// One dot per 100 matches, scaled down for small tournaments.
	p.interval = 100
	if totalMatches < 1000 {
		p.interval = totalMatches / 10
		if p.interval < 1 {
			p.interval = 1
		}
	}

	fmt.Fprintf(p.out, "Playing %d matches between %d strategies\n", totalMatches, competitors)
}

// OnMatchComplete is called from worker goroutines after each match.
func (p *DotProgress) OnMatchComplete(completed, total int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	target := completed / p.interval
	for i := p.dotsPrinted; i < target; i++ {
		fmt.Fprint(p.out, ".")
		if (i+1)%p.dotsPerLine == 0 {
			done := (i + 1) * p.interval
			pct := float64(done) * 100 / float64(total)
			fmt.Fprintf(p.out, " %d/%d (%.0f%%)\n", done, total, pct)
		}
	}
	if target > p.dotsPrinted {
		p.dotsPrinted = target
	}
}

// OnTournamentEnd prints the closing summary.
func (p *DotProgress) OnTournamentEnd(completed int, elapsed time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.dotsPrinted%p.dotsPerLine != 0 {
		fmt.Fprintln(p.out)
	}

	matchesPerSec := float64(completed) / elapsed.Seconds()
	fmt.Fprintf(p.out, "✅ %d matches in %.1fs (%.0f matches/sec)\n\n",
		completed, elapsed.Seconds(), matchesPerSec)
}

var _ tournament.ProgressReporter = (*DotProgress)(nil)
