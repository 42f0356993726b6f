package analysis

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// yenCode identifies cross-yen instruments by prefix or suffix match.
const yenCode = "JPY"

const (
	minRank = 1
	maxRank = 20
)

// CandidateExtractor normalizes candidate-report rows into ranked
// candidates for a fixed strategy set. Pure transformation, no side
// effects.
type CandidateExtractor struct {
	strategies []Strategy
}

func NewCandidateExtractor(strategies []Strategy) *CandidateExtractor {
	return &CandidateExtractor{strategies: strategies}
}

// Extract filters rows to cross-yen instruments and emits one
// RankedCandidate per (row, strategy) pair carrying a valid rank.
// Rows missing a strategy's rank column, or carrying an unparseable or
// out-of-range rank, are skipped for that strategy only. The output is
// ordered by rank ascending, stable on source row order.
func (e *CandidateExtractor) Extract(rows []CandidateRow) []RankedCandidate {
	candidates := make([]RankedCandidate, 0, len(rows))

	for _, row := range rows {
		if !IsCrossYen(row.Pair) {
			continue
		}

		dayDirection := row.DayDirection
		if dayDirection == "" {
			dayDirection = row.Direction
		}

		for _, strategy := range e.strategies {
			raw, ok := row.Ranks[strategy]
			if !ok || strings.TrimSpace(raw) == "" {
				continue
			}
			ranking, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
			if err != nil {
				continue
			}
			rank := int(ranking)
			if ranking < minRank || ranking > maxRank {
				continue
			}

			candidates = append(candidates, RankedCandidate{
				Strategy:   strategy,
				Rank:       rank,
				Pair:       row.Pair,
				Direction:  row.Direction,
				EntryTime:  row.EntryTime,
				CloseTime:  row.CloseTime,
				Details:    fmt.Sprintf("%s_%s_%s_%s", dayDirection, row.Pair, row.EntryTime, row.CloseTime),
				WinRate30:  ParsePercent(row.WinRate30),
				WinRate90:  ParsePercent(row.WinRate90),
				WinRate365: ParsePercent(row.WinRate365),
				WinRateAvg: ParsePercent(row.WinRateAvg),
			})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Rank < candidates[j].Rank
	})
	return candidates
}

// IsCrossYen reports whether the instrument has a yen leg. The match is
// case-sensitive against the upstream's currency codes.
func IsCrossYen(pair string) bool {
	return strings.HasPrefix(pair, yenCode) || strings.HasSuffix(pair, yenCode)
}

// ParsePercent normalizes a win-rate field to a fraction in [0,1].
// The report mixes bare fractions ("0.553") and percent strings
// ("55.3%"); anything missing or unparseable normalizes to 0.0.
func ParsePercent(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0.0
	}
	if strings.Contains(raw, "%") {
		v, err := strconv.ParseFloat(strings.TrimSuffix(raw, "%"), 64)
		if err != nil {
			return 0.0
		}
		return v / 100.0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0.0
	}
	return v
}
