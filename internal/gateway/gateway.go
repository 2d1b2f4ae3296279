package gateway

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"plivo-mcp/internal/telemetry"
	"plivo-mcp/internal/telephony"
)

// Gateway forwards tool invocations to the telephony provider and normalizes
// the outcome into a Result.
//
// Error policy:
//   - a provider rejection (*telephony.RejectedError) becomes Failure(msg) with a nil error
//   - every other error is returned unchanged as a fault for the transport to surface
//
// A Gateway holds no mutable state; one instance serves concurrent invocations.
type Gateway struct {
	provider telephony.Provider
	log      *slog.Logger
	metrics  *telemetry.Metrics
	now      func() time.Time
}

type Option func(*Gateway)

func WithLogger(l *slog.Logger) Option {
	return func(g *Gateway) { g.log = l }
}

func WithMetrics(m *telemetry.Metrics) Option {
	return func(g *Gateway) { g.metrics = m }
}

func New(provider telephony.Provider, opts ...Option) *Gateway {
	g := &Gateway{provider: provider, log: slog.Default(), now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	if g.log == nil {
		g.log = slog.Default()
	}
	return g
}

var errNoProvider = errors.New("gateway: provider not configured")

type SendSMSArgs struct {
	FromNumber string `json:"from_number"`
	ToNumber   string `json:"to_number"`
	Text       string `json:"text"`
}

// SendSMS sends one SMS. Success fields: message_uuid, api_id.
func (g *Gateway) SendSMS(ctx context.Context, a SendSMSArgs) (Result, error) {
	return g.run(ctx, ToolSendSMS, func(ctx context.Context) (Result, error) {
		resp, err := g.provider.SendMessage(ctx, telephony.MessageRequest{From: a.FromNumber, To: a.ToNumber, Text: a.Text})
		if err != nil {
			return Result{}, err
		}
		var messageUUID string
		if len(resp.MessageUUIDs) > 0 {
			messageUUID = resp.MessageUUIDs[0]
		}
		return stringResult("message_uuid", messageUUID, "api_id", resp.APIID), nil
	})
}

type MakeCallArgs struct {
	FromNumber string `json:"from_number"`
	ToNumber   string `json:"to_number"`
	AnswerURL  string `json:"answer_url"`

	AnswerMethod           string `json:"answer_method,omitempty"`
	HangupURL              string `json:"hangup_url,omitempty"`
	HangupMethod           string `json:"hangup_method,omitempty"`
	RingURL                string `json:"ring_url,omitempty"`
	RingMethod             string `json:"ring_method,omitempty"`
	MachineDetection       string `json:"machine_detection,omitempty"`
	MachineDetectionURL    string `json:"machine_detection_url,omitempty"`
	MachineDetectionMethod string `json:"machine_detection_method,omitempty"`
}

func (a MakeCallArgs) callOptions() telephony.CallOptions {
	return telephony.CallOptions{
		From:                   a.FromNumber,
		To:                     a.ToNumber,
		AnswerURL:              a.AnswerURL,
		AnswerMethod:           a.AnswerMethod,
		HangupURL:              a.HangupURL,
		HangupMethod:           a.HangupMethod,
		RingURL:                a.RingURL,
		RingMethod:             a.RingMethod,
		MachineDetection:       a.MachineDetection,
		MachineDetectionURL:    a.MachineDetectionURL,
		MachineDetectionMethod: a.MachineDetectionMethod,
	}
}

// MakeCall originates a call. Success fields: call_uuid, api_id.
// The callback URLs are handed to the provider and never served here.
func (g *Gateway) MakeCall(ctx context.Context, a MakeCallArgs) (Result, error) {
	return g.run(ctx, ToolMakeCall, func(ctx context.Context) (Result, error) {
		resp, err := g.provider.CreateCall(ctx, telephony.ExpandCallOptions(a.callOptions()))
		if err != nil {
			return Result{}, err
		}
		return stringResult("call_uuid", resp.RequestUUID, "api_id", resp.APIID), nil
	})
}

type CreateApplicationArgs struct {
	AppName   string `json:"app_name"`
	AnswerURL string `json:"answer_url"`
}

// CreateApplication creates a voice application. Success fields: app_id, api_id.
// New applications must be attached to endpoints explicitly.
func (g *Gateway) CreateApplication(ctx context.Context, a CreateApplicationArgs) (Result, error) {
	return g.run(ctx, ToolCreateApplication, func(ctx context.Context) (Result, error) {
		resp, err := g.provider.CreateApplication(ctx, telephony.ApplicationRequest{
			AppName:            a.AppName,
			AnswerURL:          a.AnswerURL,
			AnswerMethod:       telephony.DefaultAnswerMethod,
			DefaultEndpointApp: false,
		})
		if err != nil {
			return Result{}, err
		}
		return stringResult("app_id", resp.AppID, "api_id", resp.APIID), nil
	})
}

type CreateEndpointArgs struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Alias    string `json:"alias"`
	AppID    string `json:"app_id"`
}

// CreateEndpoint creates a SIP endpoint. Success fields: endpoint_id, api_id.
func (g *Gateway) CreateEndpoint(ctx context.Context, a CreateEndpointArgs) (Result, error) {
	return g.run(ctx, ToolCreateEndpoint, func(ctx context.Context) (Result, error) {
		resp, err := g.provider.CreateEndpoint(ctx, telephony.EndpointRequest{
			Username: a.Username,
			Password: a.Password,
			Alias:    a.Alias,
			AppID:    a.AppID,
		})
		if err != nil {
			return Result{}, err
		}
		return stringResult("endpoint_id", resp.EndpointID, "api_id", resp.APIID), nil
	})
}

// GetCDR returns every field of the call detail record.
func (g *Gateway) GetCDR(ctx context.Context, callUUID string) (Result, error) {
	return g.run(ctx, ToolGetCDR, func(ctx context.Context) (Result, error) {
		return fetchRecord(g.provider.GetCall(ctx, callUUID))
	})
}

// GetMDR returns every field of the message detail record.
func (g *Gateway) GetMDR(ctx context.Context, messageUUID string) (Result, error) {
	return g.run(ctx, ToolGetMDR, func(ctx context.Context) (Result, error) {
		return fetchRecord(g.provider.GetMessage(ctx, messageUUID))
	})
}

func fetchRecord(rec *telephony.Record, err error) (Result, error) {
	if err != nil {
		return Result{}, err
	}
	if rec == nil {
		return Result{}, errors.New("gateway: provider returned no record")
	}
	return recordResult(rec), nil
}

// run performs one invocation and applies the error policy.
func (g *Gateway) run(ctx context.Context, tool string, fn func(context.Context) (Result, error)) (Result, error) {
	log := g.log.With("invocation_id", uuid.NewString(), "tool", tool)
	if g.provider == nil {
		log.Error("tool invocation failed", "err", errNoProvider)
		return Result{}, errNoProvider
	}

	start := g.now()
	res, err := fn(ctx)
	dur := g.now().Sub(start)

	if err != nil {
		if rej, ok := telephony.AsRejected(err); ok {
			g.metrics.ObserveInvocation(tool, telemetry.OutcomeRejected, dur)
			log.Warn("provider rejected request", "provider", g.provider.Name(), "reason", rej.Error(), "duration_ms", dur.Milliseconds())
			return Failure(rej.Error()), nil
		}
		g.metrics.ObserveInvocation(tool, telemetry.OutcomeFault, dur)
		log.Error("tool invocation failed", "provider", g.provider.Name(), "err", err, "duration_ms", dur.Milliseconds())
		return Result{}, err
	}

	g.metrics.ObserveInvocation(tool, telemetry.OutcomeSuccess, dur)
	log.Info("tool invocation completed", "provider", g.provider.Name(), "duration_ms", dur.Milliseconds())
	return res, nil
}
