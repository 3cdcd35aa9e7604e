package events

import (
	"encoding/json"
	"time"
)

// Action describes what happened to a record.
type Action string

const (
	ActionCreated     Action = "created"
	ActionUpdated     Action = "updated"
	ActionDeleted     Action = "deleted"
	ActionContributed Action = "contributed"
)

// RecordChange is the message published after a successful store mutation.
// It carries only the entity kind and identifier; consumers fetch whatever
// detail they need from the API.
type RecordChange struct {
	Entity    string    `json:"entity"`
	ID        int       `json:"id"`
	Action    Action    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}

func NewRecordChange(entity string, id int, action Action) *RecordChange {
	return &RecordChange{
		Entity:    entity,
		ID:        id,
		Action:    action,
		Timestamp: time.Now(),
	}
}

func (m *RecordChange) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func RecordChangeFromJSON(data []byte) (*RecordChange, error) {
	var msg RecordChange
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
