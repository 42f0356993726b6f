package analysis

import (
	"sort"
	"strconv"
	"strings"
)

// OptimalPointSelector joins ranked candidates to profit-factor buckets
// and produces the per-weekday shortlist.
type OptimalPointSelector struct {
	settings    Settings
	strategies  []Strategy
	correlation map[Strategy]string
}

func NewOptimalPointSelector(settings Settings, strategies []Strategy, correlation map[Strategy]string) *OptimalPointSelector {
	return &OptimalPointSelector{
		settings:    settings,
		strategies:  strategies,
		correlation: correlation,
	}
}

// Select walks the trading week in fixed order. For each weekday and
// candidate it resolves the outcome-report point name, joins on
// (point name, weekday, rank) and keeps the point when the bucket clears
// the profit-factor threshold. A candidate with no bucket is silently
// skipped. Per (weekday, strategy) the survivors are sorted by profit
// factor descending (stable, so source order breaks ties), truncated to
// MaxResults, then re-sorted by wrapped entry time ascending.
func (s *OptimalPointSelector) Select(candidates []RankedCandidate, buckets map[BucketKey]*ProfitFactorBucket) Shortlist {
	results := make(Shortlist, len(Weekdays()))

	for _, day := range Weekdays() {
		byStrategy := make(map[Strategy][]OptimalPoint, len(s.strategies))
		for _, strategy := range s.strategies {
			byStrategy[strategy] = []OptimalPoint{}
		}

		for _, c := range candidates {
			pointName, ok := s.correlation[c.Strategy]
			if !ok {
				continue
			}
			bucket, ok := buckets[BucketKey{PointName: pointName, Weekday: day, Rank: c.Rank}]
			if !ok {
				continue
			}
			if bucket.ProfitFactor < s.settings.PFThreshold {
				continue
			}

			byStrategy[c.Strategy] = append(byStrategy[c.Strategy], OptimalPoint{
				Pair:         c.Pair,
				EntryTime:    c.EntryTime,
				CloseTime:    c.CloseTime,
				Direction:    c.Direction,
				Rank:         c.Rank,
				ProfitFactor: bucket.ProfitFactor,
				Trades:       bucket.Trades,
				ProfitPips:   bucket.LastProfitPips,
				TotalProfit:  bucket.TotalProfit,
				TotalLoss:    bucket.TotalLoss,
				Candidate:    c,
			})
		}

		for _, strategy := range s.strategies {
			points := byStrategy[strategy]
			sort.SliceStable(points, func(i, j int) bool {
				return points[i].ProfitFactor > points[j].ProfitFactor
			})
			if len(points) > s.settings.MaxResults {
				points = points[:s.settings.MaxResults]
			}
			sort.SliceStable(points, func(i, j int) bool {
				return wrappedEntryMinutes(points[i].EntryTime) < wrappedEntryMinutes(points[j].EntryTime)
			})
			byStrategy[strategy] = points
		}

		results[day] = byStrategy
	}

	return results
}

// wrappedEntryMinutes converts an HH:MM[:SS] entry time to minutes for
// ordering. The midnight hour counts as hour 24 so that entries just
// past midnight sort after the 23:xx block of the same session.
func wrappedEntryMinutes(entryTime string) int {
	parts := strings.Split(entryTime, ":")
	if len(parts) < 2 {
		return 0
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}
	if hours == 0 {
		hours = 24
	}
	return hours*60 + minutes
}
