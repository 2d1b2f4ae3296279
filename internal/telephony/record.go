package telephony

import (
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Record is a detail record exactly as the provider returned it, in field order.
// Its shape is owned by the provider and is not fixed here.
type Record = orderedmap.OrderedMap[string, any]

// NewRecord returns an empty record.
func NewRecord() *Record {
	return orderedmap.New[string, any]()
}

// RecordFromJSON decodes a JSON object into a record, keeping every field.
func RecordFromJSON(b []byte) (*Record, error) {
	r := NewRecord()
	if err := json.Unmarshal(b, r); err != nil {
		return nil, fmt.Errorf("telephony: decode record: %w", err)
	}
	return r, nil
}

// RecordFrom converts any JSON-serializable provider object into a record.
func RecordFrom(v any) (*Record, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("telephony: encode record: %w", err)
	}
	return RecordFromJSON(b)
}
