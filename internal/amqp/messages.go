package amqp

import (
	"encoding/json"
	"fmt"
	"time"

	"bilancio/internal/core"
	"bilancio/internal/ledger"
)

const (
	ActionCreated = "created"
	ActionDeleted = "deleted"
	ActionCleared = "cleared"
)

// TransactionEvent notifies consumers of a ledger mutation. Created events
// carry the full record so the export worker needs no read-back; deletes
// carry only the id.
type TransactionEvent struct {
	Action    string         `json:"action"`
	ID        string         `json:"id,omitempty"`
	Record    *ledger.Record `json:"record,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

func NewCreatedEvent(t core.Transaction) *TransactionEvent {
	r := ledger.RecordFrom(t)
	return &TransactionEvent{
		Action:    ActionCreated,
		ID:        t.ID,
		Record:    &r,
		Timestamp: time.Now(),
	}
}

func NewDeletedEvent(id string) *TransactionEvent {
	return &TransactionEvent{Action: ActionDeleted, ID: id, Timestamp: time.Now()}
}

func NewClearedEvent() *TransactionEvent {
	return &TransactionEvent{Action: ActionCleared, Timestamp: time.Now()}
}

func (e *TransactionEvent) Validate() error {
	switch e.Action {
	case ActionCreated:
		if e.Record == nil {
			return fmt.Errorf("created event without record")
		}
	case ActionDeleted:
		if e.ID == "" {
			return fmt.Errorf("deleted event without id")
		}
	case ActionCleared:
	default:
		return fmt.Errorf("unknown event action %q", e.Action)
	}
	return nil
}

func (e *TransactionEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

func TransactionEventFromJSON(data []byte) (*TransactionEvent, error) {
	var e TransactionEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return &e, nil
}
