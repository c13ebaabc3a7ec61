package events

import (
	"encoding/json"
	"testing"
)

func TestEventToJSON(t *testing.T) {
	e := NewEvent(KindTransactionCreated, 42)
	data, err := e.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["kind"] != "transaction_created" {
		t.Fatalf("kind = %v", decoded["kind"])
	}
	if decoded["id"] != float64(42) {
		t.Fatalf("id = %v", decoded["id"])
	}
	if _, ok := decoded["field"]; ok {
		t.Fatal("field must be omitted for entity events")
	}
}

func TestSettingsEventCarriesField(t *testing.T) {
	e := NewSettingsEvent("currency")
	if e.Kind != KindSettingsChanged {
		t.Fatalf("kind = %q", e.Kind)
	}
	data, err := e.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["field"] != "currency" {
		t.Fatalf("field = %v", decoded["field"])
	}
	if _, ok := decoded["id"]; ok {
		t.Fatal("id must be omitted for settings events")
	}
}
