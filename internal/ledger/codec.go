package ledger

import (
	"encoding/json"
	"fmt"

	"bilancio/internal/core"
)

// Record is the persisted (and published) wire form of a transaction:
// a JSON object with id, desc, amount (number in units), category, type and
// timestamp (epoch milliseconds). The stored value is a JSON array of these,
// in insertion order; that order is canonical and survives a round trip.
type Record struct {
	ID          string        `json:"id"`
	Description string        `json:"desc"`
	Amount      core.Money    `json:"amount"`
	Category    core.Category `json:"category"`
	Kind        core.Kind     `json:"type"`
	Timestamp   int64         `json:"timestamp"`
}

func RecordFrom(t core.Transaction) Record {
	return Record{
		ID:          t.ID,
		Description: t.Description,
		Amount:      t.Amount,
		Category:    t.Category,
		Kind:        t.Kind,
		Timestamp:   t.Timestamp,
	}
}

func (r Record) transaction() core.Transaction {
	return core.Transaction{
		ID:          r.ID,
		Description: r.Description,
		Amount:      r.Amount,
		Category:    r.Category,
		Kind:        r.Kind,
		Timestamp:   r.Timestamp,
	}
}

func encodeTransactions(txs []core.Transaction) (string, error) {
	records := make([]Record, len(txs))
	for i, t := range txs {
		records[i] = RecordFrom(t)
	}
	data, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("encode transactions: %w", err)
	}
	return string(data), nil
}

// decodeTransactions parses the stored blob. A value that is not a JSON
// array of records is an error; individual records that fail domain
// validation are dropped and counted rather than poisoning the whole load.
func decodeTransactions(value string) (txs []core.Transaction, dropped int, err error) {
	var records []Record
	if err := json.Unmarshal([]byte(value), &records); err != nil {
		return nil, 0, fmt.Errorf("decode transactions: %w", err)
	}
	txs = make([]core.Transaction, 0, len(records))
	for _, r := range records {
		t := r.transaction()
		if t.ID == "" || t.Validate() != nil {
			dropped++
			continue
		}
		txs = append(txs, t)
	}
	return txs, dropped, nil
}
