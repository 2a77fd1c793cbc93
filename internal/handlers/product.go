package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/kraviona/seller-console/internal/apiclient"
	"github.com/kraviona/seller-console/internal/audit"
	"github.com/kraviona/seller-console/internal/editor"
	"github.com/kraviona/seller-console/internal/forms"
	"github.com/kraviona/seller-console/internal/logging"
	"github.com/kraviona/seller-console/internal/models"
	"github.com/kraviona/seller-console/internal/resource"
	"github.com/kraviona/seller-console/internal/session"
)

type ProductHandler struct {
	API   *apiclient.Client
	Audit *audit.Producer
}

type productListData struct {
	Items []models.Product
}

func (h *ProductHandler) Table(c echo.Context) error {
	ctx := c.Request().Context()
	list := resource.NewList[models.Product]()
	if err := list.Load(ctx, h.API.ListSellerProducts); err != nil {
		return c.Render(http.StatusOK, "products.html",
			pageWithFlash(c, "Products", "error", userMessage(err), productListData{Items: list.Items()}))
	}
	return c.Render(http.StatusOK, "products.html",
		page(c, "Products", productListData{Items: list.Items()}))
}

type productFormData struct {
	Heading    string
	Submit     string
	Action     string
	Form       forms.ProductForm
	Images     []models.ProductImage
	Staging    string
	Categories []models.Category
}

func (h *ProductHandler) AddPage(c echo.Context) error {
	data := productFormData{
		Heading:    "Add Product",
		Submit:     "Add Product",
		Action:     "/add-product",
		Form:       forms.ProductForm{Status: models.StatusInStock},
		Categories: h.categoryOptions(c.Request().Context()),
	}
	return c.Render(http.StatusOK, "product_form.html", page(c, "Add Product", data))
}

func (h *ProductHandler) Add(c echo.Context) error {
	return h.handleProductForm(c, "", "/add-product", "Add Product", "Add Product")
}

// EditPage is the hydrate-first entry: the product is fetched by id and
// pre-populates every field. A failed fetch surfaces the error and leaves
// the empty defaults, still editable.
func (h *ProductHandler) EditPage(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	f, images, err := forms.HydrateProduct(ctx, h.API, id)
	data := productFormData{
		Heading:    "Edit Product",
		Submit:     "Update Product",
		Action:     "/edit-product/" + id,
		Form:       f,
		Images:     images,
		Categories: h.categoryOptions(ctx),
	}
	if err != nil {
		return c.Render(http.StatusOK, "product_form.html",
			pageWithFlash(c, "Edit Product", "error", userMessage(err), data))
	}
	return c.Render(http.StatusOK, "product_form.html", page(c, "Edit Product", data))
}

func (h *ProductHandler) Edit(c echo.Context) error {
	id := c.Param("id")
	return h.handleProductForm(c, id, "/edit-product/"+id, "Edit Product", "Update Product")
}

// handleProductForm serves both create and update posts. One request is
// one step: staging an image, removing one, or the submission itself.
func (h *ProductHandler) handleProductForm(c echo.Context, id, action, heading, submitLabel string) error {
	ctx := c.Request().Context()

	var f forms.ProductForm
	if err := c.Bind(&f); err != nil {
		return c.Render(http.StatusOK, "product_form.html",
			pageWithFlash(c, heading, "error", apiclient.GenericFailure, productFormData{
				Heading: heading, Submit: submitLabel, Action: action,
				Form: f, Categories: h.categoryOptions(ctx),
			}))
	}

	ed := stagedImages(c)
	data := func() productFormData {
		return productFormData{
			Heading:    heading,
			Submit:     submitLabel,
			Action:     action,
			Form:       f,
			Images:     ed.Images(),
			Staging:    ed.Staging(),
			Categories: h.categoryOptions(ctx),
		}
	}

	if idx := c.FormValue("removeImage"); idx != "" {
		if i, err := strconv.Atoi(idx); err == nil {
			ed.RemoveAt(i)
		}
		return c.Render(http.StatusOK, "product_form.html", page(c, heading, data()))
	}

	if c.FormValue("action") == "add-image" {
		if err := ed.Add(f.Title); err != nil {
			return c.Render(http.StatusOK, "product_form.html",
				pageWithFlash(c, heading, "warn", err.Error(), data()))
		}
		return c.Render(http.StatusOK, "product_form.html", page(c, heading, data()))
	}

	message, err := forms.SubmitProduct(ctx, h.API, id, f, ed.Images())
	if err != nil {
		kind := "error"
		if forms.IsValidation(err) {
			kind = "warn"
		}
		return c.Render(http.StatusOK, "product_form.html",
			pageWithFlash(c, heading, kind, userMessage(err), data()))
	}

	eventType := "product_created"
	if id != "" {
		eventType = "product_updated"
	}
	h.publish(c, audit.Event{Type: eventType, ID: id, Name: f.Title})
	setFlash(c, "success", message)
	return c.Redirect(http.StatusSeeOther, "/products")
}

func (h *ProductHandler) ConfirmDelete(c echo.Context) error {
	data := confirmDeleteData{
		Kind:   "product",
		Action: "/products/" + c.Param("id") + "/delete",
		Back:   "/products",
	}
	return c.Render(http.StatusOK, "confirm_delete.html", page(c, "Confirm Deletion", data))
}

func (h *ProductHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	list := resource.NewList[models.Product]()
	if err := list.Load(ctx, h.API.ListSellerProducts); err != nil {
		return c.Render(http.StatusOK, "products.html",
			pageWithFlash(c, "Products", "error", userMessage(err), productListData{Items: list.Items()}))
	}

	message := ""
	err := list.Remove(ctx, id, func(ctx2 context.Context, id string) error {
		var derr error
		message, derr = h.API.DeleteProduct(ctx2, id)
		return derr
	})
	if err != nil {
		return c.Render(http.StatusOK, "products.html",
			pageWithFlash(c, "Products", "error", userMessage(err), productListData{Items: list.Items()}))
	}

	h.publish(c, audit.Event{Type: "product_deleted", ID: id})
	return c.Render(http.StatusOK, "products.html",
		pageWithFlash(c, "Products", "success", message, productListData{Items: list.Items()}))
}

type productDetailData struct {
	Product models.Product
}

// Detail is the public storefront view, looked up by server-assigned slug.
func (h *ProductHandler) Detail(c echo.Context) error {
	p, err := h.API.ProductBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return c.Render(http.StatusNotFound, "notfound.html", page(c, "Not Found", nil))
	}
	return c.Render(http.StatusOK, "product_detail.html", page(c, p.Title, productDetailData{Product: p}))
}

// Shop is the public product grid; only published inventory comes back
// from the anonymous endpoint.
func (h *ProductHandler) Shop(c echo.Context) error {
	list := resource.NewList[models.Product]()
	if err := list.Load(c.Request().Context(), h.API.ListPublicProducts); err != nil {
		return c.Render(http.StatusOK, "shop.html",
			pageWithFlash(c, "Shop", "error", userMessage(err), productListData{Items: list.Items()}))
	}
	return c.Render(http.StatusOK, "shop.html", page(c, "Shop", productListData{Items: list.Items()}))
}

// categoryOptions feeds the category select. A failed fetch just leaves
// the dropdown empty; the form itself still works.
func (h *ProductHandler) categoryOptions(ctx context.Context) []models.Category {
	cats, err := h.API.ListCategories(ctx)
	if err != nil {
		logging.FromContext(ctx).Warn("load category options", "err", err)
		return nil
	}
	return cats
}

// stagedImages rebuilds the composite editor state from the hidden form
// fields, then applies the staging URL currently in the input.
func stagedImages(c echo.Context) *editor.ImageEditor {
	urls, _ := c.FormParams()
	imgURLs := urls["imageURLs"]
	imgAlts := urls["imageAlts"]

	staged := make([]models.ProductImage, 0, len(imgURLs))
	for i, u := range imgURLs {
		alt := editor.DefaultAltText
		if i < len(imgAlts) {
			alt = imgAlts[i]
		}
		staged = append(staged, models.ProductImage{URL: u, AltText: alt})
	}

	ed := editor.New(staged...)
	ed.SetStaging(c.FormValue("imageUrl"))
	return ed
}

func (h *ProductHandler) publish(c echo.Context, event audit.Event) {
	ctx := c.Request().Context()
	event.Actor = session.ProfileFromContext(ctx).Email
	if err := h.Audit.Publish(ctx, event); err != nil {
		logging.FromContext(ctx).Error("audit publish", "err", err)
	}
}
