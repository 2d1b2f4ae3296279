package telephony

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/plivo/plivo-go/v7"
)

// PlivoConfig holds the credentials for the shared Plivo REST client.
type PlivoConfig struct {
	AuthID    string
	AuthToken string

	// HTTPTimeout bounds each REST round trip; zero keeps the SDK default.
	HTTPTimeout time.Duration

	// HTTPClient replaces the SDK's HTTP client when set. HTTPTimeout is
	// applied to it when its own Timeout is zero.
	HTTPClient *http.Client
}

// PlivoProvider adapts the official Plivo SDK to Provider.
//
// The SDK client is built once and only read afterwards, so a single
// PlivoProvider is safe to share across concurrent tool invocations.
type PlivoProvider struct {
	client *plivo.Client
}

func NewPlivoProvider(cfg PlivoConfig) (*PlivoProvider, error) {
	opts := &plivo.ClientOptions{HttpClient: cfg.HTTPClient}
	if opts.HttpClient == nil && cfg.HTTPTimeout > 0 {
		opts.HttpClient = &http.Client{}
	}
	if opts.HttpClient != nil && opts.HttpClient.Timeout == 0 {
		opts.HttpClient.Timeout = cfg.HTTPTimeout
	}
	client, err := plivo.NewClient(cfg.AuthID, cfg.AuthToken, opts)
	if err != nil {
		return nil, fmt.Errorf("telephony: plivo client: %w", err)
	}
	return &PlivoProvider{client: client}, nil
}

func (p *PlivoProvider) Name() string { return "plivo" }

func (p *PlivoProvider) SendMessage(ctx context.Context, req MessageRequest) (MessageCreated, error) {
	if err := ctx.Err(); err != nil {
		return MessageCreated{}, err
	}
	resp, err := p.client.Messages.Create(plivo.MessageCreateParams{
		Src:  req.From,
		Dst:  req.To,
		Text: req.Text,
	})
	if err != nil {
		return MessageCreated{}, classify("messages.create", err)
	}
	var raw struct {
		APIID       string `json:"api_id"`
		MessageUUID any    `json:"message_uuid"`
	}
	if err := decodeResponse(resp, &raw); err != nil {
		return MessageCreated{}, err
	}
	return MessageCreated{APIID: raw.APIID, MessageUUIDs: stringList(raw.MessageUUID)}, nil
}

func (p *PlivoProvider) CreateCall(ctx context.Context, params *CallParams) (CallCreated, error) {
	if err := ctx.Err(); err != nil {
		return CallCreated{}, err
	}
	resp, err := p.client.Calls.Create(callCreateParams(params))
	if err != nil {
		return CallCreated{}, classify("calls.create", err)
	}
	var raw struct {
		APIID       string `json:"api_id"`
		RequestUUID any    `json:"request_uuid"`
	}
	if err := decodeResponse(resp, &raw); err != nil {
		return CallCreated{}, err
	}
	return CallCreated{APIID: raw.APIID, RequestUUID: firstString(raw.RequestUUID)}, nil
}

func (p *PlivoProvider) CreateApplication(ctx context.Context, req ApplicationRequest) (ApplicationCreated, error) {
	if err := ctx.Err(); err != nil {
		return ApplicationCreated{}, err
	}
	resp, err := p.client.Applications.Create(plivo.ApplicationCreateParams{
		AppName:            req.AppName,
		AnswerURL:          req.AnswerURL,
		AnswerMethod:       req.AnswerMethod,
		DefaultEndpointApp: req.DefaultEndpointApp,
	})
	if err != nil {
		return ApplicationCreated{}, classify("applications.create", err)
	}
	var out ApplicationCreated
	if err := decodeResponse(resp, &out); err != nil {
		return ApplicationCreated{}, err
	}
	return out, nil
}

func (p *PlivoProvider) CreateEndpoint(ctx context.Context, req EndpointRequest) (EndpointCreated, error) {
	if err := ctx.Err(); err != nil {
		return EndpointCreated{}, err
	}
	resp, err := p.client.Endpoints.Create(plivo.EndpointCreateParams{
		Username: req.Username,
		Password: req.Password,
		Alias:    req.Alias,
		AppID:    req.AppID,
	})
	if err != nil {
		return EndpointCreated{}, classify("endpoints.create", err)
	}
	var out EndpointCreated
	if err := decodeResponse(resp, &out); err != nil {
		return EndpointCreated{}, err
	}
	return out, nil
}

func (p *PlivoProvider) GetCall(ctx context.Context, callUUID string) (*Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	call, err := p.client.Calls.Get(callUUID)
	if err != nil {
		return nil, classify("calls.get", err)
	}
	return RecordFrom(call)
}

func (p *PlivoProvider) GetMessage(ctx context.Context, messageUUID string) (*Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	msg, err := p.client.Messages.Get(messageUUID)
	if err != nil {
		return nil, classify("messages.get", err)
	}
	return RecordFrom(msg)
}

// callCreateParams maps the flat request onto the SDK struct. Absent keys stay
// zero, which the SDK omits from the request body.
func callCreateParams(p *CallParams) plivo.CallCreateParams {
	get := func(k string) string {
		v, _ := p.Get(k)
		return v
	}
	return plivo.CallCreateParams{
		From:                   get(FieldFrom),
		To:                     get(FieldTo),
		AnswerURL:              get(FieldAnswerURL),
		AnswerMethod:           get(FieldAnswerMethod),
		HangupURL:              get(FieldHangupURL),
		HangupMethod:           get(FieldHangupMethod),
		RingURL:                get(FieldRingURL),
		RingMethod:             get(FieldRingMethod),
		MachineDetection:       get(FieldMachineDetection),
		MachineDetectionURL:    get(FieldMachineDetectionURL),
		MachineDetectionMethod: get(FieldMachineDetectionMethod),
	}
}

// classify separates provider rejections from faults.
//
// The SDK reports non-2xx answers as plain errors carrying the response body.
// Transport failures (*url.Error), cancellation and response decoding errors
// did not come from the provider's judgement of the request and stay faults.
func classify(op string, err error) error {
	var (
		urlErr    *url.Error
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)
	switch {
	case errors.As(err, &urlErr),
		errors.As(err, &syntaxErr),
		errors.As(err, &typeErr),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("telephony: plivo %s: %w", op, err)
	}
	return &RejectedError{Op: op, Message: rejectionMessage(err.Error())}
}

// decodeResponse re-reads an SDK response struct through its JSON field names.
func decodeResponse(resp any, out any) error {
	if resp == nil {
		return errors.New("telephony: plivo returned an empty response")
	}
	b, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("telephony: encode response: %w", err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("telephony: decode response: %w", err)
	}
	return nil
}

func stringList(v any) []string {
	switch t := v.(type) {
	case nil:
		return nil
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			out = append(out, firstString(e))
		}
		return out
	default:
		return []string{firstString(t)}
	}
}

// firstString flattens the SDK's loosely typed id fields (string or list).
func firstString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []any:
		if len(t) == 0 {
			return ""
		}
		return firstString(t[0])
	case []string:
		if len(t) == 0 {
			return ""
		}
		return t[0]
	default:
		return fmt.Sprint(t)
	}
}
