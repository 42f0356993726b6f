package analysis

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// tradeDateLayouts are the date formats the outcome report has been seen
// to use.
var tradeDateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006-01-02 15:04:05",
}

// OutcomeAggregator folds outcome rows into profit-factor buckets over a
// trailing window. The reference instant is injected so runs are
// reproducible under test.
type OutcomeAggregator struct {
	lookbackWeeks int
	now           time.Time
}

func NewOutcomeAggregator(lookbackWeeks int, now time.Time) *OutcomeAggregator {
	return &OutcomeAggregator{lookbackWeeks: lookbackWeeks, now: now}
}

// Aggregate builds one bucket per (point name, weekday, rank) from the
// rows inside the trailing window. Rows fold in trade-date order, stable
// on source order, so the last-write-wins pips value is deterministic.
func (a *OutcomeAggregator) Aggregate(rows []OutcomeRow) map[BucketKey]*ProfitFactorBucket {
	records := a.normalize(rows)

	cutoff := a.now.AddDate(0, 0, -7*a.lookbackWeeks)
	buckets := make(map[BucketKey]*ProfitFactorBucket)

	for _, rec := range records {
		if rec.TradeDate.Before(cutoff) {
			continue
		}

		key := BucketKey{PointName: rec.PointName, Weekday: rec.Weekday, Rank: rec.Rank}
		bucket := buckets[key]
		if bucket == nil {
			bucket = &ProfitFactorBucket{}
			buckets[key] = bucket
		}

		bucket.Trades++
		bucket.LastProfitPips = rec.ProfitPips
		if rec.ProfitPips > 0 {
			bucket.TotalProfit += rec.ProfitPips
		} else {
			bucket.TotalLoss += -rec.ProfitPips
		}
		recomputeProfitFactor(bucket)
	}

	return buckets
}

// normalize parses raw rows into records and fixes the fold order: trade
// date ascending, source order on ties. Rows without a usable trade date
// or rank are dropped; a missing or unparseable pips value folds as 0.0.
func (a *OutcomeAggregator) normalize(rows []OutcomeRow) []OutcomeRecord {
	records := make([]OutcomeRecord, 0, len(rows))

	for _, row := range rows {
		date, ok := parseTradeDate(row.TradeDate)
		if !ok {
			continue
		}

		weekday, ok := ParseWeekday(strings.TrimSpace(row.Weekday))
		if !ok {
			weekday, ok = WeekdayOf(date)
			if !ok {
				continue
			}
		}

		rank, err := strconv.Atoi(strings.TrimSpace(row.Rank))
		if err != nil {
			continue
		}

		pips, err := strconv.ParseFloat(strings.TrimSpace(row.ProfitPips), 64)
		if err != nil {
			pips = 0.0
		}

		records = append(records, OutcomeRecord{
			PointName:  strings.TrimSpace(row.PointName),
			TradeDate:  date,
			Weekday:    weekday,
			Rank:       rank,
			ProfitPips: pips,
		})
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].TradeDate.Before(records[j].TradeDate)
	})
	return records
}

// recomputeProfitFactor applies the bucket's derivation rule after every
// fold. A bucket with profits and no losses reports the MaxProfitFactor
// sentinel rather than an unbounded ratio; an empty bucket reports 0.
func recomputeProfitFactor(b *ProfitFactorBucket) {
	switch {
	case b.TotalLoss == 0 && b.TotalProfit > 0:
		b.ProfitFactor = MaxProfitFactor
	case b.TotalLoss == 0:
		b.ProfitFactor = 0
	default:
		b.ProfitFactor = b.TotalProfit / b.TotalLoss
	}
}

func parseTradeDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range tradeDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
