package telephony

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func keys(p *CallParams) []string {
	var out []string
	for pair := p.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

func TestExpandCallOptions_RequiredOnly(t *testing.T) {
	p := ExpandCallOptions(CallOptions{From: "15551234567", To: "15559876543", AnswerURL: "https://example.com/answer"})

	want := []string{FieldFrom, FieldTo, FieldAnswerURL, FieldAnswerMethod}
	if diff := cmp.Diff(want, keys(p)); diff != "" {
		t.Fatalf("unexpected fields (-want +got):\n%s", diff)
	}
	if m, _ := p.Get(FieldAnswerMethod); m != "GET" {
		t.Fatalf("expected default answer_method GET, got %q", m)
	}
}

func TestExpandCallOptions_MethodWithoutURLIsDropped(t *testing.T) {
	p := ExpandCallOptions(CallOptions{
		From:                   "1",
		To:                     "2",
		AnswerURL:              "https://example.com/answer",
		HangupMethod:           "GET",
		RingMethod:             "GET",
		MachineDetectionMethod: "GET",
	})

	for _, k := range []string{FieldHangupURL, FieldHangupMethod, FieldRingURL, FieldRingMethod, FieldMachineDetectionURL, FieldMachineDetectionMethod} {
		if _, ok := p.Get(k); ok {
			t.Fatalf("expected %s to be omitted", k)
		}
	}
}

func TestExpandCallOptions_URLPairsIncludedWithDefaults(t *testing.T) {
	p := ExpandCallOptions(CallOptions{
		From:                "1",
		To:                  "2",
		AnswerURL:           "https://example.com/answer",
		AnswerMethod:        "POST",
		HangupURL:           "https://example.com/hangup",
		RingURL:             "https://example.com/ring",
		RingMethod:          "GET",
		MachineDetectionURL: "https://example.com/md",
	})

	got := map[string]string{}
	for pair := p.Oldest(); pair != nil; pair = pair.Next() {
		got[pair.Key] = pair.Value
	}
	want := map[string]string{
		FieldFrom:                   "1",
		FieldTo:                     "2",
		FieldAnswerURL:              "https://example.com/answer",
		FieldAnswerMethod:           "POST",
		FieldHangupURL:              "https://example.com/hangup",
		FieldHangupMethod:           "POST",
		FieldRingURL:                "https://example.com/ring",
		FieldRingMethod:             "GET",
		FieldMachineDetectionURL:    "https://example.com/md",
		FieldMachineDetectionMethod: "POST",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected params (-want +got):\n%s", diff)
	}
}

func TestExpandCallOptions_MachineDetectionIndependentOfURL(t *testing.T) {
	p := ExpandCallOptions(CallOptions{From: "1", To: "2", AnswerURL: "u", MachineDetection: "hangup"})
	if v, ok := p.Get(FieldMachineDetection); !ok || v != "hangup" {
		t.Fatalf("expected machine_detection=hangup, got %q (present=%v)", v, ok)
	}
	if _, ok := p.Get(FieldMachineDetectionURL); ok {
		t.Fatalf("expected machine_detection_url omitted")
	}

	p = ExpandCallOptions(CallOptions{From: "1", To: "2", AnswerURL: "u", MachineDetectionURL: "https://example.com/md"})
	if _, ok := p.Get(FieldMachineDetection); ok {
		t.Fatalf("expected machine_detection omitted when empty")
	}
	if _, ok := p.Get(FieldMachineDetectionMethod); !ok {
		t.Fatalf("expected machine_detection_method with its url")
	}
}
