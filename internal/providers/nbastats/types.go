package nbastats

import (
	"fmt"
	"strings"

	"nba-recap-service/internal/providers"
)

// statsResponse is the envelope every stats.nba.com endpoint returns:
// named result sets, each a header row plus untyped cell rows.
type statsResponse struct {
	Resource   string      `json:"resource"`
	ResultSets []resultSet `json:"resultSets"`
}

type resultSet struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}

// table wraps a result set with name-based column access so mappers never
// rely on positional indexing.
type table struct {
	set  resultSet
	cols map[string]int
}

func (r statsResponse) table(name string) (table, error) {
	for _, set := range r.ResultSets {
		if !strings.EqualFold(set.Name, name) {
			continue
		}
		cols := make(map[string]int, len(set.Headers))
		for i, h := range set.Headers {
			cols[h] = i
		}
		return table{set: set, cols: cols}, nil
	}
	return table{}, &providers.DataShapeError{Reason: fmt.Sprintf("result set %q missing from %s response", name, r.Resource)}
}

func (t table) rows() [][]any {
	return t.set.RowSet
}

func (t table) col(name string) (int, error) {
	idx, ok := t.cols[name]
	if !ok {
		return 0, &providers.DataShapeError{Reason: fmt.Sprintf("column %q missing from result set %q", name, t.set.Name)}
	}
	return idx, nil
}

// cellString reads a string cell; nil cells read as "".
func cellString(row []any, idx int) string {
	if idx < 0 || idx >= len(row) || row[idx] == nil {
		return ""
	}
	if s, ok := row[idx].(string); ok {
		return s
	}
	return fmt.Sprint(row[idx])
}

// cellFloat reads a numeric cell as a pointer; nil or non-numeric cells
// read as nil so the normalizer can apply its missing-value defaults.
func cellFloat(row []any, idx int) *float64 {
	if idx < 0 || idx >= len(row) || row[idx] == nil {
		return nil
	}
	if f, ok := row[idx].(float64); ok {
		return &f
	}
	return nil
}

// cellInt reads a numeric cell, defaulting to 0 when absent.
func cellInt(row []any, idx int) int {
	if f := cellFloat(row, idx); f != nil {
		return int(*f)
	}
	return 0
}
