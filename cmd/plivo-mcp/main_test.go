package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"plivo-mcp/internal/auth"
	"plivo-mcp/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func setEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_ENV", "local")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("JWT_ISSUER", "")
	t.Setenv("JWT_AUDIENCE", "")
	t.Setenv("JWT_ACCESS_TTL", "")
	t.Setenv("HTTP_PORT", "")
	t.Setenv("PLIVO_HTTP_TIMEOUT", "")
}

func TestToolsCmd_PrintsCatalog(t *testing.T) {
	setEnv(t)

	out, err := execute(t, "tools")
	if err != nil {
		t.Fatalf("tools: %v", err)
	}
	var tools []struct {
		Name     string `yaml:"name"`
		ReadOnly bool   `yaml:"read_only"`
		Params   []struct {
			Name     string `yaml:"name"`
			Required bool   `yaml:"required"`
		} `yaml:"params"`
	}
	if err := yaml.Unmarshal([]byte(out), &tools); err != nil {
		t.Fatalf("decode yaml: %v\n%s", err, out)
	}
	if len(tools) != 6 {
		t.Fatalf("expected 6 tools, got %d", len(tools))
	}
	if tools[0].Name != "send_sms" || len(tools[0].Params) != 3 || !tools[0].Params[0].Required {
		t.Fatalf("unexpected first tool: %+v", tools[0])
	}
	if tools[4].Name != "get_cdr" || !tools[4].ReadOnly {
		t.Fatalf("expected get_cdr read-only, got %+v", tools[4])
	}
}

func TestTokenCmd_IssuesVerifiableToken(t *testing.T) {
	setEnv(t)

	out, err := execute(t, "token", "--subject", "dashboard", "--role", "viewer")
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	m, err := auth.NewManager(config.AuthConfig{JWTSecret: "secret", AccessTokenTTL: 15 * time.Minute})
	if err != nil {
		t.Fatalf("manager: %v", err)
	}
	claims, err := m.Verify(strings.TrimSpace(out), time.Now())
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Subject != "dashboard" || claims.Role != "viewer" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestTokenCmd_RejectsUnknownRole(t *testing.T) {
	setEnv(t)

	if _, err := execute(t, "token", "--subject", "x", "--role", "root"); err == nil {
		t.Fatalf("expected error for unknown role")
	}
}

func TestRootCmd_RejectsBadConfig(t *testing.T) {
	setEnv(t)
	t.Setenv("APP_ENV", "qa")

	if _, err := execute(t, "tools"); err == nil {
		t.Fatalf("expected config error")
	}
}
