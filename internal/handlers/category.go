package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kraviona/seller-console/internal/apiclient"
	"github.com/kraviona/seller-console/internal/audit"
	"github.com/kraviona/seller-console/internal/forms"
	"github.com/kraviona/seller-console/internal/logging"
	"github.com/kraviona/seller-console/internal/models"
	"github.com/kraviona/seller-console/internal/resource"
	"github.com/kraviona/seller-console/internal/session"
)

type CategoryHandler struct {
	API   *apiclient.Client
	Audit *audit.Producer
}

type categoryListData struct {
	Items []models.Category
}

func (h *CategoryHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	list := resource.NewList[models.Category]()
	if err := list.Load(ctx, h.API.ListCategories); err != nil {
		return c.Render(http.StatusOK, "categories.html",
			pageWithFlash(c, "Categories", "error", userMessage(err), categoryListData{Items: list.Items()}))
	}
	return c.Render(http.StatusOK, "categories.html",
		page(c, "Categories", categoryListData{Items: list.Items()}))
}

type categoryFormData struct {
	Form forms.CategoryForm
}

func (h *CategoryHandler) AddPage(c echo.Context) error {
	// published defaults to true on a fresh category form
	data := categoryFormData{Form: forms.CategoryForm{IsPublished: true}}
	return c.Render(http.StatusOK, "add_category.html", page(c, "Add Category", data))
}

func (h *CategoryHandler) Add(c echo.Context) error {
	ctx := c.Request().Context()

	var f forms.CategoryForm
	if err := c.Bind(&f); err != nil {
		return c.Render(http.StatusOK, "add_category.html",
			pageWithFlash(c, "Add Category", "error", apiclient.GenericFailure, categoryFormData{Form: f}))
	}

	message, err := forms.SubmitCategory(ctx, h.API, f)
	if err != nil {
		kind := "error"
		if forms.IsValidation(err) {
			kind = "warn"
		}
		// the form stays editable with every entered value intact
		return c.Render(http.StatusOK, "add_category.html",
			pageWithFlash(c, "Add Category", kind, userMessage(err), categoryFormData{Form: f}))
	}

	h.publish(c, audit.Event{Type: "category_created", Name: f.CategoryName})
	setFlash(c, "success", message)
	return c.Redirect(http.StatusSeeOther, "/categories")
}

type confirmDeleteData struct {
	Kind   string
	Action string
	Back   string
}

func (h *CategoryHandler) ConfirmDelete(c echo.Context) error {
	data := confirmDeleteData{
		Kind:   "category",
		Action: "/categories/" + c.Param("id") + "/delete",
		Back:   "/categories",
	}
	return c.Render(http.StatusOK, "confirm_delete.html", page(c, "Confirm Deletion", data))
}

// Delete runs after the confirmation screen: the remote call first, then
// the local splice, then the list re-renders from the already-updated
// controller.
func (h *CategoryHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	list := resource.NewList[models.Category]()
	if err := list.Load(ctx, h.API.ListCategories); err != nil {
		return c.Render(http.StatusOK, "categories.html",
			pageWithFlash(c, "Categories", "error", userMessage(err), categoryListData{Items: list.Items()}))
	}

	message := ""
	err := list.Remove(ctx, id, func(ctx2 context.Context, id string) error {
		var derr error
		message, derr = h.API.DeleteCategory(ctx2, id)
		return derr
	})
	if err != nil {
		return c.Render(http.StatusOK, "categories.html",
			pageWithFlash(c, "Categories", "error", userMessage(err), categoryListData{Items: list.Items()}))
	}

	h.publish(c, audit.Event{Type: "category_deleted", ID: id})
	return c.Render(http.StatusOK, "categories.html",
		pageWithFlash(c, "Categories", "success", message, categoryListData{Items: list.Items()}))
}

func (h *CategoryHandler) publish(c echo.Context, event audit.Event) {
	ctx := c.Request().Context()
	event.Actor = session.ProfileFromContext(ctx).Email
	if err := h.Audit.Publish(ctx, event); err != nil {
		logging.FromContext(ctx).Error("audit publish", "err", err)
	}
}
