package tournament

import (
	"math"
	"sort"
)

// Standing aggregates one competitor's results across every match it
// played on either side of the table.
type Standing struct {
	Rank         int     `json:"rank"`
	Index        int     `json:"index"`
	Code         string  `json:"code"`
	Total        float64 `json:"total"`
	Matches      int     `json:"matches"`
	Rounds       int     `json:"rounds"`
	MeanPerRound float64 `json:"mean_per_round"`
}

// Standings folds the pairwise table into one entry per competitor,
// ranked by total score. Every competitor appears once on each side of
// every pairing it is part of, so a self-pairing contributes both of its
// columns to the same entry.
func Standings(result *Result) []Standing {
	standings := make([]Standing, result.Competitors)
	for _, row := range result.Rows {
		a := &standings[row.IndexA]
		a.Index = row.IndexA
		a.Code = row.CodeA
		a.Total += row.ScoreA
		a.Matches++
		a.Rounds += row.Rounds

		b := &standings[row.IndexB]
		b.Index = row.IndexB
		b.Code = row.CodeB
		b.Total += row.ScoreB
		b.Matches++
		b.Rounds += row.Rounds
	}

	for i := range standings {
		if standings[i].Rounds > 0 {
			standings[i].MeanPerRound = standings[i].Total / float64(standings[i].Rounds)
		}
	}

	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].Total != standings[j].Total {
			return standings[i].Total > standings[j].Total
		}
		return standings[i].Index < standings[j].Index
	})
	for i := range standings {
		standings[i].Rank = i + 1
	}
	return standings
}

// Summary holds distribution statistics over competitor totals.
type Summary struct {
	Competitors int     `json:"competitors"`
	Mean        float64 `json:"mean"`
	StdDev      float64 `json:"std_dev"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
}

// Summarize computes the mean, sample standard deviation and range of the
// per-competitor totals.
func Summarize(standings []Standing) Summary {
	if len(standings) == 0 {
		return Summary{}
	}

	var sum, sumSq float64
	min, max := standings[0].Total, standings[0].Total
	for _, s := range standings {
		sum += s.Total
		sumSq += s.Total * s.Total
		if s.Total < min {
			min = s.Total
		}
		if s.Total > max {
			max = s.Total
		}
	}

	n := float64(len(standings))
	mean := sum / n
	var stdDev float64
	if len(standings) > 1 {
		stdDev = math.Sqrt((sumSq - n*mean*mean) / (n - 1))
	}

	return Summary{
		Competitors: len(standings),
		Mean:        mean,
		StdDev:      stdDev,
		Min:         min,
		Max:         max,
	}
}
