package analysis

import "time"

// Weekday is a trading weekday. Saturday and Sunday never occur in the
// outcome report and are not representable.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
)

// Weekdays returns the trading week in fixed order.
func Weekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}
}

var weekdayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

func (d Weekday) String() string {
	if d < Monday || d > Friday {
		return "Unknown"
	}
	return weekdayNames[d]
}

// weekdayLabels accepts the labels seen in outcome reports: English short
// and long forms plus the single-character Japanese forms the upstream
// exporter emits.
var weekdayLabels = map[string]Weekday{
	"Mon": Monday, "Monday": Monday, "月": Monday, "月曜日": Monday,
	"Tue": Tuesday, "Tuesday": Tuesday, "火": Tuesday, "火曜日": Tuesday,
	"Wed": Wednesday, "Wednesday": Wednesday, "水": Wednesday, "水曜日": Wednesday,
	"Thu": Thursday, "Thursday": Thursday, "木": Thursday, "木曜日": Thursday,
	"Fri": Friday, "Friday": Friday, "金": Friday, "金曜日": Friday,
}

// ParseWeekday parses a weekday label from the outcome report.
func ParseWeekday(label string) (Weekday, bool) {
	d, ok := weekdayLabels[label]
	return d, ok
}

// WeekdayOf converts a calendar date to a trading weekday. Weekend dates
// report false.
func WeekdayOf(t time.Time) (Weekday, bool) {
	switch t.Weekday() {
	case time.Monday:
		return Monday, true
	case time.Tuesday:
		return Tuesday, true
	case time.Wednesday:
		return Wednesday, true
	case time.Thursday:
		return Thursday, true
	case time.Friday:
		return Friday, true
	}
	return 0, false
}

// Settings is the fixed configuration surface of one analysis run.
type Settings struct {
	// AnalysisWeeks is the trailing window of outcome history to aggregate.
	AnalysisWeeks int
	// PFThreshold is the minimum profit factor a bucket must reach for its
	// candidate to enter the shortlist.
	PFThreshold float64
	// MaxResults caps the shortlist length per weekday and strategy.
	MaxResults int
}

// DefaultSettings mirrors the production run configuration.
func DefaultSettings() Settings {
	return Settings{
		AnalysisWeeks: 26,
		PFThreshold:   1.3,
		MaxResults:    20,
	}
}

// CandidateRow is one raw row of the candidate report. Field values are
// kept as strings; parsing and defaulting rules live in the extractor.
type CandidateRow struct {
	Pair         string
	Direction    string
	DayDirection string
	EntryTime    string
	CloseTime    string
	// Ranks holds the per-strategy rank columns, keyed by strategy.
	// A strategy absent from the map had no rank column for this row.
	Ranks map[Strategy]string

	WinRate30  string
	WinRate90  string
	WinRate365 string
	WinRateAvg string
}

// OutcomeRow is one raw row of the outcome report. The csv tags match the
// exported column headers.
type OutcomeRow struct {
	PointName  string `csv:"point_name"`
	TradeDate  string `csv:"trade_date"`
	Weekday    string `csv:"weekday"`
	Rank       string `csv:"rank"`
	ProfitPips string `csv:"profit_pips_sum"`
}

// RankedCandidate is a candidate-report row that survived the instrument
// filter, normalized for one strategy. Immutable once extracted.
type RankedCandidate struct {
	Strategy  Strategy
	Rank      int
	Pair      string
	Direction string
	EntryTime string
	CloseTime string
	// Details is the upstream's compound identifier for the point, built
	// from the day direction (falling back to direction), pair and times.
	Details string

	WinRate30  float64
	WinRate90  float64
	WinRate365 float64
	WinRateAvg float64
}

// OutcomeRecord is one historical executed point, consumed immediately
// into aggregation.
type OutcomeRecord struct {
	PointName  string
	TradeDate  time.Time
	Weekday    Weekday
	Rank       int
	ProfitPips float64
}

// BucketKey identifies one aggregation bucket.
type BucketKey struct {
	PointName string
	Weekday   Weekday
	Rank      int
}

// MaxProfitFactor is the sentinel reported for a bucket with profits and
// no recorded losses, standing in for an unbounded ratio.
const MaxProfitFactor = 999.9

// ProfitFactorBucket accumulates outcome statistics for one bucket key.
type ProfitFactorBucket struct {
	TotalProfit float64
	TotalLoss   float64
	Trades      int
	// ProfitFactor is recomputed after every fold; see recompute rules in
	// the aggregator.
	ProfitFactor float64
	// LastProfitPips is the pips value of the most recently folded record,
	// reported downstream as the bucket's expected pips.
	LastProfitPips float64
}

// OptimalPoint is one shortlist entry: a ranked candidate joined with its
// profit-factor bucket.
type OptimalPoint struct {
	Pair      string
	EntryTime string
	CloseTime string
	Direction string
	Rank      int

	ProfitFactor float64
	Trades       int
	ProfitPips   float64
	TotalProfit  float64
	TotalLoss    float64

	Candidate RankedCandidate
}

// Shortlist is the selector output: per weekday, per strategy, a capped,
// time-ordered list of points.
type Shortlist map[Weekday]map[Strategy][]OptimalPoint

// DisplayRow is one formatted output row, ready for serialization.
type DisplayRow struct {
	Strategy     Strategy
	Pair         string
	EntryTime    string
	CloseTime    string
	Direction    string
	Rank         int
	ProfitFactor string
	// Result is a placeholder column filled in manually after the week.
	Result string
}

// Stats carries run counters for reporting.
type Stats struct {
	CandidateRows   int
	OutcomeRows     int
	ExtractedPoints int
	AnalysisWeeks   int
}

// Result is the complete output of one analysis run.
type Result struct {
	AnalysisDate  time.Time
	Settings      Settings
	Shortlist     Shortlist
	WeeklySummary map[Strategy]float64
	Formatted     map[Weekday][]DisplayRow
	Stats         Stats
}
