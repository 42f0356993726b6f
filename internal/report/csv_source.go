package report

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"

	"fx-anomaly-analyzer/internal/analysis"
)

// Candidate report column headers. The per-strategy rank columns are
// named by the strategy keys themselves.
const (
	colPair         = "pair"
	colDirection    = "direction"
	colDayDirection = "day_direction"
	colEntryTime    = "entry_time"
	colCloseTime    = "close_time"
	colWinRate30    = "win_rate_30d"
	colWinRate90    = "win_rate_90d"
	colWinRate365   = "win_rate_365d"
	colWinRateAvg   = "win_rate_avg"
)

// CSVSource reads the two report tables from CSV files. The exporter
// writes them with a UTF-8 BOM, which is stripped on read.
type CSVSource struct {
	candidatePath string
	outcomePath   string
	strategies    []analysis.Strategy
}

var _ analysis.Source = (*CSVSource)(nil)

func NewCSVSource(candidatePath, outcomePath string, strategies []analysis.Strategy) *CSVSource {
	return &CSVSource{
		candidatePath: candidatePath,
		outcomePath:   outcomePath,
		strategies:    strategies,
	}
}

// Candidates reads the ranked-candidate table. The header row drives
// column lookup: the identifying columns are required, the per-strategy
// rank and win-rate columns are optional and simply absent from rows
// when the report omits them.
func (s *CSVSource) Candidates(ctx context.Context) ([]analysis.CandidateRow, error) {
	f, err := os.Open(s.candidatePath)
	if err != nil {
		return nil, fmt.Errorf("candidate report unavailable: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(skipBOM(f))
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("candidate report has no header row: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	for _, required := range []string{colPair, colDirection, colEntryTime, colCloseTime} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("candidate report is missing required column %q", required)
		}
	}

	var rows []analysis.CandidateRow
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read candidate report: %w", err)
		}

		row := analysis.CandidateRow{
			Pair:         field(record, index, colPair),
			Direction:    field(record, index, colDirection),
			DayDirection: field(record, index, colDayDirection),
			EntryTime:    field(record, index, colEntryTime),
			CloseTime:    field(record, index, colCloseTime),
			Ranks:        make(map[analysis.Strategy]string, len(s.strategies)),
			WinRate30:    field(record, index, colWinRate30),
			WinRate90:    field(record, index, colWinRate90),
			WinRate365:   field(record, index, colWinRate365),
			WinRateAvg:   field(record, index, colWinRateAvg),
		}
		for _, strategy := range s.strategies {
			if i, ok := index[string(strategy)]; ok && i < len(record) {
				row.Ranks[strategy] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Outcomes reads the fixed-schema outcome table.
func (s *CSVSource) Outcomes(ctx context.Context) ([]analysis.OutcomeRow, error) {
	f, err := os.Open(s.outcomePath)
	if err != nil {
		return nil, fmt.Errorf("outcome report unavailable: %w", err)
	}
	defer f.Close()

	var rows []analysis.OutcomeRow
	if err := gocsv.Unmarshal(skipBOM(f), &rows); err != nil {
		return nil, fmt.Errorf("failed to decode outcome report: %w", err)
	}
	return rows, nil
}

// field returns the named column from a record, empty when the column is
// absent or the record is short.
func field(record []string, index map[string]int, name string) string {
	i, ok := index[name]
	if !ok || i >= len(record) {
		return ""
	}
	return record[i]
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		br.Discard(len(utf8BOM))
	}
	return br
}
