package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/kraviona/seller-console/internal/apiclient"
	"github.com/kraviona/seller-console/internal/audit"
	"github.com/kraviona/seller-console/internal/gate"
	"github.com/kraviona/seller-console/internal/models"
	"github.com/kraviona/seller-console/internal/session"
	"github.com/kraviona/seller-console/internal/handlers"
	httpserver "github.com/kraviona/seller-console/internal/transport/http"
	"github.com/kraviona/seller-console/internal/view"
)

type testEnv struct {
	T        *testing.T
	E        *echo.Echo
	Sessions *session.Store
	Cookie   *http.Cookie
}

// newTestEnv wires the whole console against a fake remote API and hands
// back a logged-in session cookie.
func newTestEnv(t *testing.T, remote http.Handler) *testEnv {
	t.Helper()

	srv := httptest.NewServer(remote)
	t.Cleanup(srv.Close)

	sessions, err := session.Open(":memory:", []byte("test_secret"))
	require.NoError(t, err)

	renderer, err := view.NewRenderer()
	require.NoError(t, err)

	api := apiclient.New(srv.URL)
	e := echo.New()
	e.Renderer = renderer

	httpserver.Register(e, &httpserver.Deps{
		Gate:             &gate.Gate{Sessions: sessions},
		AuthHandler:      &handlers.AuthHandler{API: api, Sessions: sessions},
		CategoryHandler:  &handlers.CategoryHandler{API: api, Audit: audit.NewProducer("")},
		ProductHandler:   &handlers.ProductHandler{API: api, Audit: audit.NewProducer("")},
		EmailHandler:     &handlers.EmailHandler{API: api},
		DashboardHandler: &handlers.DashboardHandler{},
	})

	cookieValue, err := sessions.Create(models.Profile{Name: "Alice", Email: "a@b.c"}, "tok123")
	require.NoError(t, err)

	return &testEnv{
		T:        t,
		E:        e,
		Sessions: sessions,
		Cookie:   &http.Cookie{Name: session.CookieName, Value: cookieValue, Path: "/"},
	}
}

func (env *testEnv) get(path string, authed bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authed {
		req.AddCookie(env.Cookie)
	}
	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) postForm(path string, form url.Values, authed bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	if authed {
		req.AddCookie(env.Cookie)
	}
	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}
