package telephony

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Default HTTP methods the provider uses to fetch callback URLs.
const (
	DefaultAnswerMethod           = "GET"
	DefaultHangupMethod           = "POST"
	DefaultRingMethod             = "POST"
	DefaultMachineDetectionMethod = "POST"
)

// Outbound call request field names.
const (
	FieldFrom                   = "from"
	FieldTo                     = "to"
	FieldAnswerURL              = "answer_url"
	FieldAnswerMethod           = "answer_method"
	FieldHangupURL              = "hangup_url"
	FieldHangupMethod           = "hangup_method"
	FieldRingURL                = "ring_url"
	FieldRingMethod             = "ring_method"
	FieldMachineDetection       = "machine_detection"
	FieldMachineDetectionURL    = "machine_detection_url"
	FieldMachineDetectionMethod = "machine_detection_method"
)

// CallOptions describes an outbound call. Empty optional fields mean "not set".
type CallOptions struct {
	From      string
	To        string
	AnswerURL string

	AnswerMethod string
	HangupURL    string
	HangupMethod string
	RingURL      string
	RingMethod   string

	// MachineDetection is "true" or "hangup"; empty disables detection.
	MachineDetection       string
	MachineDetectionURL    string
	MachineDetectionMethod string
}

// CallParams is the flat outbound call request in field order.
type CallParams = orderedmap.OrderedMap[string, string]

// ExpandCallOptions builds the flat request for o.
//
// A callback URL and its method are included as a pair or not at all, keyed on
// the URL. machine_detection is included only when set, independently of its
// callback pair.
func ExpandCallOptions(o CallOptions) *CallParams {
	p := orderedmap.New[string, string]()
	p.Set(FieldFrom, o.From)
	p.Set(FieldTo, o.To)
	p.Set(FieldAnswerURL, o.AnswerURL)
	p.Set(FieldAnswerMethod, orDefault(o.AnswerMethod, DefaultAnswerMethod))

	if o.HangupURL != "" {
		p.Set(FieldHangupURL, o.HangupURL)
		p.Set(FieldHangupMethod, orDefault(o.HangupMethod, DefaultHangupMethod))
	}
	if o.RingURL != "" {
		p.Set(FieldRingURL, o.RingURL)
		p.Set(FieldRingMethod, orDefault(o.RingMethod, DefaultRingMethod))
	}
	if o.MachineDetection != "" {
		p.Set(FieldMachineDetection, o.MachineDetection)
	}
	if o.MachineDetectionURL != "" {
		p.Set(FieldMachineDetectionURL, o.MachineDetectionURL)
		p.Set(FieldMachineDetectionMethod, orDefault(o.MachineDetectionMethod, DefaultMachineDetectionMethod))
	}
	return p
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
