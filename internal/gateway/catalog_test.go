package gateway

import "testing"

func TestCatalog_CoversEveryTool(t *testing.T) {
	want := []string{ToolSendSMS, ToolMakeCall, ToolCreateApplication, ToolCreateEndpoint, ToolGetCDR, ToolGetMDR}
	got := Catalog()
	if len(got) != len(want) {
		t.Fatalf("expected %d tools, got %d", len(want), len(got))
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Fatalf("tool %d: expected %s, got %s", i, name, got[i].Name)
		}
		if got[i].call == nil {
			t.Fatalf("tool %s has no handler", name)
		}
	}
}

func TestCatalog_ReturnsCopy(t *testing.T) {
	c := Catalog()
	c[0].Params[0].Name = "mutated"
	if Catalog()[0].Params[0].Name == "mutated" {
		t.Fatalf("catalog must not be mutable through Catalog()")
	}
}

func TestIsReadOnly(t *testing.T) {
	if !IsReadOnly(ToolGetCDR) || !IsReadOnly(ToolGetMDR) {
		t.Fatalf("expected detail record tools to be read-only")
	}
	if IsReadOnly(ToolSendSMS) || IsReadOnly("unknown") {
		t.Fatalf("expected send_sms and unknown tools not read-only")
	}
}

func TestDecodeArgs_AppliesDefaults(t *testing.T) {
	spec, _ := Lookup(ToolMakeCall)
	a, err := decodeArgs(spec, map[string]any{"from_number": "1", "to_number": "2", "answer_url": "u"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if a.get("answer_method") != "GET" || a.get("hangup_method") != "POST" || a.get("ring_method") != "POST" {
		t.Fatalf("expected defaults, got %v", a)
	}
	if a.get("hangup_url") != "" || a.get("machine_detection") != "" {
		t.Fatalf("expected optional urls unset, got %v", a)
	}
}
