package accounting

import (
	"slices"

	"github.com/golder/bank_statements_api/internal/core/domain"
)

// ReorderLinesByDate returns the sequence assignment for lines sorted by ascending date.
// The sort is stable: lines sharing a date keep the relative order they were given in,
// so callers should pass lines in their current display order (sequence, id).
// Sequence numbers are dense and start at 1. The input slice is not modified.
func ReorderLinesByDate(lines []domain.StatementLine) []domain.LineSequence {
	if len(lines) == 0 {
		return nil
	}

	sorted := slices.Clone(lines)
	slices.SortStableFunc(sorted, func(a, b domain.StatementLine) int {
		return a.Date.Compare(b.Date)
	})

	assignments := make([]domain.LineSequence, len(sorted))
	for i, line := range sorted {
		assignments[i] = domain.LineSequence{LineID: line.LineID, Sequence: i + 1}
	}
	return assignments
}

// ChangedSequences filters assignments down to lines whose sequence actually changes.
func ChangedSequences(lines []domain.StatementLine, assignments []domain.LineSequence) []domain.LineSequence {
	current := make(map[int64]int, len(lines))
	for _, line := range lines {
		current[line.LineID] = line.Sequence
	}

	changed := make([]domain.LineSequence, 0, len(assignments))
	for _, a := range assignments {
		if seq, ok := current[a.LineID]; !ok || seq != a.Sequence {
			changed = append(changed, a)
		}
	}
	return changed
}

// ApplySequences returns lines in display order with the assigned sequence numbers set.
func ApplySequences(lines []domain.StatementLine, assignments []domain.LineSequence) []domain.StatementLine {
	byID := make(map[int64]domain.StatementLine, len(lines))
	for _, line := range lines {
		byID[line.LineID] = line
	}

	ordered := make([]domain.StatementLine, 0, len(assignments))
	for _, a := range assignments {
		line := byID[a.LineID]
		line.Sequence = a.Sequence
		ordered = append(ordered, line)
	}
	return ordered
}
