package pos

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CommitRecord is the immutable snapshot written when an invoice is saved.
type CommitRecord struct {
	ID           string          `json:"id"`
	Kind         string          `json:"kind"`
	Number       string          `json:"number"`
	Counterparty string          `json:"counterparty,omitempty"`
	Lines        []LineItem      `json:"lines"`
	Totals       Totals          `json:"totals"`
	CreatedAt    time.Time       `json:"created_at"`
}

// CommitSink receives finalized invoices.
type CommitSink interface {
	Commit(rec CommitRecord) error
}

// NewCommitRecord snapshots the invoice into a record. Lines are copied so
// later edits to the invoice cannot reach the record.
func NewCommitRecord(kind string, inv *Invoice) CommitRecord {
	lines := make([]LineItem, len(inv.Lines))
	copy(lines, inv.Lines)

	return CommitRecord{
		ID:           uuid.NewString(),
		Kind:         kind,
		Number:       inv.Number,
		Counterparty: inv.Counterparty,
		Lines:        lines,
		Totals:       CalculateTotals(lines),
		CreatedAt:    time.Now(),
	}
}

// LedgerStore appends committed records to a JSON-lines file, one record
// per line.
type LedgerStore struct {
	path string
	log  zerolog.Logger
}

// NewLedgerStore creates a store writing to path.
func NewLedgerStore(path string, log zerolog.Logger) *LedgerStore {
	return &LedgerStore{path: path, log: log}
}

// Commit appends the record to the ledger file, creating it if needed.
func (s *LedgerStore) Commit(rec CommitRecord) error {
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("cannot open ledger: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("cannot encode record: %w", err)
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write ledger: %w", err)
	}

	s.log.Info().
		Str("number", rec.Number).
		Str("kind", rec.Kind).
		Str("grand_total", rec.Totals.GrandTotal.StringFixed(2)).
		Msg("invoice committed")
	return nil
}

// Recent returns up to n of the most recent ledger records, newest first.
// A missing ledger file yields an empty list, not an error.
func (s *LedgerStore) Recent(n int) ([]CommitRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("cannot open ledger: %w", err)
	}
	defer f.Close()

	var records []CommitRecord
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec CommitRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("cannot parse ledger: %w", err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read ledger: %w", err)
	}

	// Newest first.
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	if n > 0 && len(records) > n {
		records = records[:n]
	}
	return records, nil
}
