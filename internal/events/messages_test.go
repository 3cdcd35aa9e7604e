package events

import (
	"testing"
	"time"
)

func TestRecordChangeRoundTrip(t *testing.T) {
	msg := NewRecordChange("transaction", 7, ActionCreated)
	if msg.Timestamp.IsZero() {
		t.Fatal("expected timestamp to be stamped")
	}

	raw, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := RecordChangeFromJSON(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Entity != "transaction" || got.ID != 7 || got.Action != ActionCreated {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if !got.Timestamp.Truncate(time.Second).Equal(msg.Timestamp.Truncate(time.Second)) {
		t.Fatalf("timestamp drift: %v vs %v", got.Timestamp, msg.Timestamp)
	}
}

func TestRecordChangeFromJSONInvalid(t *testing.T) {
	if _, err := RecordChangeFromJSON([]byte("{not json")); err == nil {
		t.Fatal("expected an error")
	}
}
