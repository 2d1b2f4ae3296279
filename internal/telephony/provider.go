package telephony

import (
	"context"
)

//go:generate mockgen -destination=telephonymock/provider.go -package=telephonymock plivo-mcp/internal/telephony Provider

// Provider defines the provider-agnostic interface used by the tool gateway.
//
// Rules:
// - No provider SDK calls outside telephony adapters.
// - Each method performs exactly one remote request.
// - Provider rejections are returned as *RejectedError; every other error is a fault.
type Provider interface {
	Name() string

	SendMessage(ctx context.Context, req MessageRequest) (MessageCreated, error)
	CreateCall(ctx context.Context, params *CallParams) (CallCreated, error)
	CreateApplication(ctx context.Context, req ApplicationRequest) (ApplicationCreated, error)
	CreateEndpoint(ctx context.Context, req EndpointRequest) (EndpointCreated, error)

	GetCall(ctx context.Context, callUUID string) (*Record, error)
	GetMessage(ctx context.Context, messageUUID string) (*Record, error)
}

// MessageRequest is an outbound SMS.
type MessageRequest struct {
	From string `json:"src"`
	To   string `json:"dst"`
	Text string `json:"text"`
}

type MessageCreated struct {
	APIID string `json:"api_id"`

	// MessageUUIDs holds one id per message part; long texts may be split.
	MessageUUIDs []string `json:"message_uuid"`
}

type CallCreated struct {
	APIID       string `json:"api_id"`
	RequestUUID string `json:"request_uuid"`
}

// ApplicationRequest creates a voice application.
type ApplicationRequest struct {
	AppName      string `json:"app_name"`
	AnswerURL    string `json:"answer_url"`
	AnswerMethod string `json:"answer_method"`

	// DefaultEndpointApp attaches the application to endpoints created without an app_id.
	DefaultEndpointApp bool `json:"default_endpoint_app"`
}

type ApplicationCreated struct {
	APIID string `json:"api_id"`
	AppID string `json:"app_id"`
}

// EndpointRequest creates a SIP endpoint bound to an application.
type EndpointRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Alias    string `json:"alias"`
	AppID    string `json:"app_id"`
}

type EndpointCreated struct {
	APIID      string `json:"api_id"`
	EndpointID string `json:"endpoint_id"`
}
