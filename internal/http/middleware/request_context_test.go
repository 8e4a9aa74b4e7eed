package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/solemate/solemate-backend/internal/pkg/ctxutil"
)

func newContextTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AttachRequestContext())
	r.GET("/ping", func(c *gin.Context) {
		td := ctxutil.GetTraceData(c.Request.Context())
		c.String(http.StatusOK, td.RequestID)
	})
	return r
}

func TestAttachRequestContextGeneratesID(t *testing.T) {
	r := newContextTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	id := rec.Header().Get("X-Request-Id")
	if id == "" {
		t.Fatal("X-Request-Id header must be set")
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("generated id is not a uuid: %v", err)
	}
	if rec.Body.String() != id {
		t.Fatalf("handler saw %q, response header carries %q", rec.Body.String(), id)
	}
}

func TestAttachRequestContextHonorsIncomingID(t *testing.T) {
	r := newContextTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-Id", "req-123")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-Id"); got != "req-123" {
		t.Fatalf("incoming id not preserved: %q", got)
	}
	if rec.Body.String() != "req-123" {
		t.Fatalf("handler context carries %q", rec.Body.String())
	}
}
