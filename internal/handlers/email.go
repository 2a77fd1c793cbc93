package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kraviona/seller-console/internal/apiclient"
	"github.com/kraviona/seller-console/internal/models"
	"github.com/kraviona/seller-console/internal/resource"
)

type EmailHandler struct {
	API *apiclient.Client
}

type emailListData struct {
	Items []models.Message
}

// List shows the inbound contact messages. An empty inbox is a valid
// state, rendered as such rather than as an error.
func (h *EmailHandler) List(c echo.Context) error {
	list := resource.NewList[models.Message]()
	if err := list.Load(c.Request().Context(), h.API.ListMessages); err != nil {
		return c.Render(http.StatusOK, "emails.html",
			pageWithFlash(c, "Emails", "error", userMessage(err), emailListData{Items: list.Items()}))
	}
	return c.Render(http.StatusOK, "emails.html", page(c, "Emails", emailListData{Items: list.Items()}))
}
