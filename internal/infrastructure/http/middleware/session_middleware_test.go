package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func serve(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, string) {
	t.Helper()
	e := echo.New()
	var got string
	e.GET("/", func(c echo.Context) error {
		got = GetSessionID(c)
		return c.NoContent(http.StatusOK)
	}, EchoSession(false))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec, got
}

func TestEchoSession_Header(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(SessionHeader, "abc-123")
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "from-cookie"})

	rec, got := serve(t, req)
	if got != "abc-123" {
		t.Fatalf("session = %q, want header value", got)
	}
	if rec.Header().Get("Set-Cookie") != "" {
		t.Fatal("no cookie should be issued for a known session")
	}
}

func TestEchoSession_Cookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "from-cookie"})

	_, got := serve(t, req)
	if got != "from-cookie" {
		t.Fatalf("session = %q, want cookie value", got)
	}
}

func TestEchoSession_Issues(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(SessionHeader, "../../etc/passwd")

	rec, got := serve(t, req)
	if got == "" || got == "../../etc/passwd" {
		t.Fatalf("expected a fresh session id, got %q", got)
	}
	if rec.Header().Get(SessionHeader) != got {
		t.Fatal("session id should be echoed in the response header")
	}

	resp := http.Response{Header: rec.Header()}
	cookies := resp.Cookies()
	if len(cookies) != 1 || cookies[0].Name != SessionCookie || cookies[0].Value != got {
		t.Fatalf("unexpected cookies %+v", cookies)
	}
}
