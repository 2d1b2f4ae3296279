package gateway

import (
	"context"

	"plivo-mcp/internal/telephony"
)

// Tool names. Keep these stable; they are the public tool surface.
const (
	ToolSendSMS           = "send_sms"
	ToolMakeCall          = "make_call"
	ToolCreateApplication = "create_application"
	ToolCreateEndpoint    = "create_endpoint"
	ToolGetCDR            = "get_cdr"
	ToolGetMDR            = "get_mdr"
)

// ParamSpec describes one named string argument of a tool.
type ParamSpec struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Required    bool   `json:"required" yaml:"required"`

	// Default is applied when the argument is absent. Empty means no default.
	Default string `json:"default,omitempty" yaml:"default,omitempty"`
}

// ToolSpec describes one tool exposed by the gateway.
type ToolSpec struct {
	Name        string      `json:"name" yaml:"name"`
	Description string      `json:"description" yaml:"description"`
	Params      []ParamSpec `json:"params" yaml:"params"`

	// ReadOnly tools only fetch records and never cause provider side effects.
	ReadOnly bool `json:"read_only" yaml:"read_only"`

	call func(g *Gateway, ctx context.Context, a args) (Result, error)
}

var catalog = []ToolSpec{
	{
		Name:        ToolSendSMS,
		Description: "Send an SMS using Plivo.",
		Params: []ParamSpec{
			{Name: "from_number", Description: "Plivo number or sender id to send from.", Required: true},
			{Name: "to_number", Description: "Destination phone number (E.164).", Required: true},
			{Name: "text", Description: "Message body.", Required: true},
		},
		call: func(g *Gateway, ctx context.Context, a args) (Result, error) {
			return g.SendSMS(ctx, SendSMSArgs{
				FromNumber: a.get("from_number"),
				ToNumber:   a.get("to_number"),
				Text:       a.get("text"),
			})
		},
	},
	{
		Name:        ToolMakeCall,
		Description: "Initiate a voice call using Plivo. Callback methods are only sent together with their URL. Returns the call UUID and API ID.",
		Params: []ParamSpec{
			{Name: "from_number", Description: "The Plivo-verified caller ID.", Required: true},
			{Name: "to_number", Description: "The phone number to call (E.164 format).", Required: true},
			{Name: "answer_url", Description: "URL Plivo will request to fetch call instructions.", Required: true},
			{Name: "answer_method", Description: "HTTP method to fetch answer_url.", Default: telephony.DefaultAnswerMethod},
			{Name: "hangup_url", Description: "URL called when the call ends."},
			{Name: "hangup_method", Description: "HTTP method for hangup_url.", Default: telephony.DefaultHangupMethod},
			{Name: "ring_url", Description: "URL called when the call rings."},
			{Name: "ring_method", Description: "HTTP method for ring_url.", Default: telephony.DefaultRingMethod},
			{Name: "machine_detection", Description: "'true' or 'hangup' to enable answering machine detection."},
			{Name: "machine_detection_url", Description: "URL for the machine detection callback."},
			{Name: "machine_detection_method", Description: "HTTP method for machine_detection_url.", Default: telephony.DefaultMachineDetectionMethod},
		},
		call: func(g *Gateway, ctx context.Context, a args) (Result, error) {
			return g.MakeCall(ctx, MakeCallArgs{
				FromNumber:             a.get("from_number"),
				ToNumber:               a.get("to_number"),
				AnswerURL:              a.get("answer_url"),
				AnswerMethod:           a.get("answer_method"),
				HangupURL:              a.get("hangup_url"),
				HangupMethod:           a.get("hangup_method"),
				RingURL:                a.get("ring_url"),
				RingMethod:             a.get("ring_method"),
				MachineDetection:       a.get("machine_detection"),
				MachineDetectionURL:    a.get("machine_detection_url"),
				MachineDetectionMethod: a.get("machine_detection_method"),
			})
		},
	},
	{
		Name:        ToolCreateApplication,
		Description: "Create a Plivo voice application. It is not attached to the default endpoint automatically.",
		Params: []ParamSpec{
			{Name: "app_name", Description: "Name of the application.", Required: true},
			{Name: "answer_url", Description: "URL that Plivo will invoke with call instructions.", Required: true},
		},
		call: func(g *Gateway, ctx context.Context, a args) (Result, error) {
			return g.CreateApplication(ctx, CreateApplicationArgs{
				AppName:   a.get("app_name"),
				AnswerURL: a.get("answer_url"),
			})
		},
	},
	{
		Name:        ToolCreateEndpoint,
		Description: "Create a Plivo SIP endpoint associated with an application.",
		Params: []ParamSpec{
			{Name: "username", Description: "The SIP username.", Required: true},
			{Name: "password", Description: "The SIP password.", Required: true},
			{Name: "alias", Description: "Friendly name for the endpoint.", Required: true},
			{Name: "app_id", Description: "Plivo application ID to associate with this endpoint.", Required: true},
		},
		call: func(g *Gateway, ctx context.Context, a args) (Result, error) {
			return g.CreateEndpoint(ctx, CreateEndpointArgs{
				Username: a.get("username"),
				Password: a.get("password"),
				Alias:    a.get("alias"),
				AppID:    a.get("app_id"),
			})
		},
	},
	{
		Name:        ToolGetCDR,
		Description: "Retrieve the Call Detail Record (CDR) for a call UUID. Returns every field Plivo reports.",
		Params: []ParamSpec{
			{Name: "call_uuid", Description: "The unique identifier of the call.", Required: true},
		},
		ReadOnly: true,
		call: func(g *Gateway, ctx context.Context, a args) (Result, error) {
			return g.GetCDR(ctx, a.get("call_uuid"))
		},
	},
	{
		Name:        ToolGetMDR,
		Description: "Retrieve the Message Detail Record (MDR) for a message UUID. Returns every field Plivo reports.",
		Params: []ParamSpec{
			{Name: "message_uuid", Description: "The unique identifier of the SMS message.", Required: true},
		},
		ReadOnly: true,
		call: func(g *Gateway, ctx context.Context, a args) (Result, error) {
			return g.GetMDR(ctx, a.get("message_uuid"))
		},
	},
}

// Catalog returns the tool specs in registration order.
func Catalog() []ToolSpec {
	out := make([]ToolSpec, len(catalog))
	copy(out, catalog)
	for i := range out {
		out[i].Params = append([]ParamSpec(nil), catalog[i].Params...)
	}
	return out
}

// Lookup returns the tool registered under name.
func Lookup(name string) (ToolSpec, bool) {
	for _, t := range catalog {
		if t.Name == name {
			return t, true
		}
	}
	return ToolSpec{}, false
}

// IsReadOnly reports whether name is a known read-only tool.
func IsReadOnly(name string) bool {
	t, ok := Lookup(name)
	return ok && t.ReadOnly
}
