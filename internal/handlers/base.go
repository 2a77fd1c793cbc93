package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kraviona/seller-console/internal/session"
	"github.com/kraviona/seller-console/internal/view"
)

const flashCookie = "kraviona_flash"

// setFlash stashes a one-shot notification for the next render; it stands
// in for the toast layer of a client-side console.
func setFlash(c echo.Context, kind, msg string) {
	c.SetCookie(&http.Cookie{
		Name:    flashCookie,
		Value:   url.QueryEscape(kind + "|" + msg),
		Path:    "/",
		Expires: time.Now().Add(time.Minute),
	})
}

func takeFlash(c echo.Context) (kind, msg string) {
	ck, err := c.Cookie(flashCookie)
	if err != nil || ck.Value == "" {
		return "", ""
	}
	c.SetCookie(&http.Cookie{Name: flashCookie, Value: "", Path: "/", MaxAge: -1})
	raw, err := url.QueryUnescape(ck.Value)
	if err != nil {
		return "", ""
	}
	kind, msg, ok := strings.Cut(raw, "|")
	if !ok {
		return "", raw
	}
	return kind, msg
}

// page assembles the common template envelope: profile from the request
// context (default record when absent) plus any pending flash.
func page(c echo.Context, title string, data any) view.Page {
	kind, msg := takeFlash(c)
	return view.Page{
		Title:     title,
		Profile:   session.ProfileFromContext(c.Request().Context()),
		Flash:     msg,
		FlashKind: kind,
		Data:      data,
	}
}

// pageWithFlash renders a notification immediately, without the cookie
// round trip, for responses that stay on the same screen.
func pageWithFlash(c echo.Context, title, kind, msg string, data any) view.Page {
	p := page(c, title, data)
	p.Flash = msg
	p.FlashKind = kind
	return p
}
