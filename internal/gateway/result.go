package gateway

import (
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"plivo-mcp/internal/telephony"
)

// ErrorKey is the only key of a result produced from a provider rejection.
const ErrorKey = "error"

// Result is the flat mapping returned by every tool invocation.
//
// A success result carries the tool's documented fields; a failure result
// carries exactly one field, "error". Callers branch on the presence of that
// key, never on the result's type.
type Result struct {
	fields *orderedmap.OrderedMap[string, any]
}

// Failure builds the result for a provider rejection.
func Failure(msg string) Result {
	r := Result{fields: orderedmap.New[string, any]()}
	r.fields.Set(ErrorKey, msg)
	return r
}

// stringResult builds a success result from alternating keys and values.
func stringResult(kv ...string) Result {
	r := Result{fields: orderedmap.New[string, any]()}
	for i := 0; i+1 < len(kv); i += 2 {
		r.fields.Set(kv[i], kv[i+1])
	}
	return r
}

// recordResult copies every field of a provider record, in order.
func recordResult(rec *telephony.Record) Result {
	r := Result{fields: orderedmap.New[string, any]()}
	for pair := rec.Oldest(); pair != nil; pair = pair.Next() {
		r.fields.Set(pair.Key, pair.Value)
	}
	return r
}

// ErrorMessage returns the rejection message when r is a failure result.
func (r Result) ErrorMessage() (string, bool) {
	if r.fields == nil || r.fields.Len() != 1 {
		return "", false
	}
	v, ok := r.fields.Get(ErrorKey)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func (r Result) IsError() bool {
	_, ok := r.ErrorMessage()
	return ok
}

func (r Result) Get(key string) (any, bool) {
	if r.fields == nil {
		return nil, false
	}
	return r.fields.Get(key)
}

func (r Result) Len() int {
	if r.fields == nil {
		return 0
	}
	return r.fields.Len()
}

// Keys returns the field names in order.
func (r Result) Keys() []string {
	if r.fields == nil {
		return nil
	}
	keys := make([]string, 0, r.fields.Len())
	for pair := r.fields.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Map returns an unordered copy of the fields.
func (r Result) Map() map[string]any {
	out := make(map[string]any, r.Len())
	if r.fields == nil {
		return out
	}
	for pair := r.fields.Oldest(); pair != nil; pair = pair.Next() {
		out[pair.Key] = pair.Value
	}
	return out
}

// MarshalJSON encodes the result as a JSON object keeping field order.
func (r Result) MarshalJSON() ([]byte, error) {
	if r.fields == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(r.fields)
}
