package rbac

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"plivo-mcp/internal/auth"
)

func withRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := auth.WithIdentity(c.Request.Context(), "u", role)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func serve(r *gin.Engine, method, path string) int {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w.Code
}

func TestRequireAnyRole_AdminBypasses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/x", withRole(RoleAdmin), RequireAnyRole(RoleOperator), func(c *gin.Context) {
		c.Status(200)
	})

	if code := serve(r, http.MethodGet, "/x"); code != 200 {
		t.Fatalf("expected 200, got %d", code)
	}
}

func TestRequireAnyRole_DeniesOtherRoles(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/x", withRole(RoleViewer), RequireAnyRole(RoleOperator), func(c *gin.Context) {
		c.Status(200)
	})

	if code := serve(r, http.MethodGet, "/x"); code != 403 {
		t.Fatalf("expected 403, got %d", code)
	}
}

func TestRequireAnyRole_RoleRequired(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/x", RequireAnyRole(RoleOperator), func(c *gin.Context) {
		c.Status(200)
	})

	if code := serve(r, http.MethodGet, "/x"); code != 401 {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestRequireToolAccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	readOnly := func(name string) bool { return name == "get_cdr" }

	cases := []struct {
		role string
		tool string
		want int
	}{
		{RoleViewer, "get_cdr", 200},
		{RoleViewer, "send_sms", 403},
		{RoleOperator, "send_sms", 200},
		{RoleOperator, "get_cdr", 200},
		{RoleAdmin, "send_sms", 200},
		{"guest", "get_cdr", 403},
	}
	for _, tc := range cases {
		r := gin.New()
		r.POST("/v1/tools/:name", withRole(tc.role), RequireToolAccess(readOnly), func(c *gin.Context) {
			c.Status(200)
		})
		if code := serve(r, http.MethodPost, "/v1/tools/"+tc.tool); code != tc.want {
			t.Fatalf("%s on %s: expected %d, got %d", tc.role, tc.tool, tc.want, code)
		}
	}
}
