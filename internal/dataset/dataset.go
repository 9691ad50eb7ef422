package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"strings"
)

// Row is one base-corpus entry. Category is uppercased on load so it
// lines up with department codes.
type Row struct {
	Question string
	Answer   string
	Category string
	Intent   string
}

// Dataset holds the full base corpus. Immutable after Load.
type Dataset struct {
	rows []Row
}

// Column aliases, probed in order. Different exports of the corpus name
// the question/answer columns differently.
var (
	questionCols = []string{"instruction", "question", "user", "utterance", "query", "input"}
	answerCols   = []string{"response", "answer", "assistant", "output"}
	categoryCols = []string{"category", "dept", "department"}
	intentCols   = []string{"intent"}
)

// Load reads a CSV export from the source and materializes the corpus.
func Load(ctx context.Context, src Source) (*Dataset, error) {
	rc, err := src.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer func() { _ = rc.Close() }()

	reader := csv.NewReader(rc)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse dataset csv: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("dataset has no data rows")
	}

	header := map[string]int{}
	for i, name := range records[0] {
		header[strings.ToLower(strings.TrimSpace(name))] = i
	}
	pick := func(names []string) int {
		for _, name := range names {
			if idx, ok := header[name]; ok {
				return idx
			}
		}
		return -1
	}
	qcol := pick(questionCols)
	acol := pick(answerCols)
	catcol := pick(categoryCols)
	intentcol := pick(intentCols)
	if qcol < 0 || acol < 0 {
		return nil, fmt.Errorf("could not detect question/answer columns in %v", records[0])
	}

	ds := &Dataset{rows: make([]Row, 0, len(records)-1)}
	for _, record := range records[1:] {
		row := Row{
			Question: field(record, qcol),
			Answer:   field(record, acol),
			Category: "CONTACT",
		}
		if row.Question == "" || row.Answer == "" {
			continue
		}
		if catcol >= 0 {
			if cat := strings.ToUpper(field(record, catcol)); cat != "" {
				row.Category = cat
			}
		}
		if intentcol >= 0 {
			row.Intent = field(record, intentcol)
		}
		ds.rows = append(ds.rows, row)
	}
	if len(ds.rows) == 0 {
		return nil, fmt.Errorf("dataset has no usable rows")
	}
	return ds, nil
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

// Rows returns the full corpus.
func (d *Dataset) Rows() []Row {
	return d.rows
}

// Len is the corpus size.
func (d *Dataset) Len() int {
	return len(d.rows)
}

// ByCategory returns rows whose category equals dept. An empty scope
// falls back to the whole corpus, so retrieval always has something to
// search.
func (d *Dataset) ByCategory(dept string) []Row {
	scope := make([]Row, 0)
	for _, row := range d.rows {
		if row.Category == dept {
			scope = append(scope, row)
		}
	}
	if len(scope) == 0 {
		return d.rows
	}
	return scope
}
