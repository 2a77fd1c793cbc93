package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kraviona/seller-console/internal/apiclient"
	"github.com/kraviona/seller-console/internal/logging"
	"github.com/kraviona/seller-console/internal/session"
)

type AuthHandler struct {
	API      *apiclient.Client
	Sessions *session.Store
}

type loginPageData struct {
	Email string
}

func (h *AuthHandler) LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", page(c, "Login", loginPageData{}))
}

// Login exchanges the submitted credentials with the remote API. Success
// stores the session and lands on the dashboard; failure re-renders the
// login screen with the server's message and the email intact.
func (h *AuthHandler) Login(c echo.Context) error {
	email := c.FormValue("email")
	password := c.FormValue("password")

	user, message, err := h.API.Login(c.Request().Context(), email, password)
	if err != nil {
		var remote *apiclient.RemoteError
		if !errors.As(err, &remote) {
			message = apiclient.GenericFailure
		}
		if message == "" {
			message = "Login failed. Please try again."
		}
		return c.Render(http.StatusOK, "login.html",
			pageWithFlash(c, "Login", "error", message, loginPageData{Email: email}))
	}

	cookieValue, err := h.Sessions.Create(user.Profile(), user.Token)
	if err != nil {
		logging.FromContext(c.Request().Context()).Error("create session", "err", err)
		return c.Render(http.StatusOK, "login.html",
			pageWithFlash(c, "Login", "error", apiclient.GenericFailure, loginPageData{Email: email}))
	}

	c.SetCookie(&http.Cookie{
		Name:     session.CookieName,
		Value:    cookieValue,
		Path:     "/",
		Expires:  time.Now().Add(7 * 24 * time.Hour),
		HttpOnly: true,
	})

	if message == "" {
		message = "Login successful!"
	}
	setFlash(c, "success", message)
	return c.Redirect(http.StatusSeeOther, "/")
}

// Logout clears the stored session and drops the cookie. Both profile and
// token go together; there is no half-logged-out state.
func (h *AuthHandler) Logout(c echo.Context) error {
	if ck, err := c.Cookie(session.CookieName); err == nil {
		if err := h.Sessions.Clear(ck.Value); err != nil {
			logging.FromContext(c.Request().Context()).Error("clear session", "err", err)
		}
	}
	c.SetCookie(&http.Cookie{Name: session.CookieName, Value: "", Path: "/", MaxAge: -1, HttpOnly: true})
	return c.Redirect(http.StatusSeeOther, "/login")
}
