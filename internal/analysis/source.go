package analysis

import "context"

// Source supplies the two input tables. Locating and decoding the tables
// is the implementation's concern; the pipeline only sees raw rows.
// This allows for multiple implementations (CSV files, database, mock).
type Source interface {
	// Candidates returns the ranked-candidate report rows.
	Candidates(ctx context.Context) ([]CandidateRow, error)

	// Outcomes returns the historical outcome report rows.
	Outcomes(ctx context.Context) ([]OutcomeRow, error)
}

// MockSource serves fixed in-memory rows for testing and development.
type MockSource struct {
	CandidateRows []CandidateRow
	OutcomeRows   []OutcomeRow
	CandidatesErr error
	OutcomesErr   error
}

var _ Source = (*MockSource)(nil)

func (m *MockSource) Candidates(ctx context.Context) ([]CandidateRow, error) {
	if m.CandidatesErr != nil {
		return nil, m.CandidatesErr
	}
	return m.CandidateRows, nil
}

func (m *MockSource) Outcomes(ctx context.Context) ([]OutcomeRow, error) {
	if m.OutcomesErr != nil {
		return nil, m.OutcomesErr
	}
	return m.OutcomeRows, nil
}
