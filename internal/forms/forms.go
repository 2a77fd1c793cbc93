// Package forms owns the submission flow for the category and product
// forms: required-field validation before any network call, exactly one
// create-or-update call afterwards, and hydrate-first pre-fill for edits.
package forms

import (
	"context"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/kraviona/seller-console/internal/apiclient"
	"github.com/kraviona/seller-console/internal/models"
)

var validate = validator.New()

// ValidationError is a local, pre-network warning. The form stays editable
// and nothing reaches the wire.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

type CategoryForm struct {
	CategoryName string `form:"categoryName" validate:"required"`
	Image        string `form:"image" validate:"required"`
	Description  string `form:"description"`
	IsPublished  bool   `form:"isPublished"`
}

func (f CategoryForm) payload() apiclient.CategoryPayload {
	return apiclient.CategoryPayload{
		CategoryName: f.CategoryName,
		Image:        f.Image,
		Description:  f.Description,
		IsPublished:  f.IsPublished,
	}
}

// SubmitCategory validates and creates the category. The returned string
// is the message to surface; on success the caller resets the form and
// navigates to the category list, which reloads itself on mount.
func SubmitCategory(ctx context.Context, api *apiclient.Client, f CategoryForm) (string, error) {
	if err := validate.Struct(f); err != nil {
		return "", &ValidationError{Message: "Please fill all the fields"}
	}
	return api.CreateCategory(ctx, f.payload())
}

// ProductForm carries the raw form input. Numbers stay strings until
// validation passes, so a failed submit echoes back exactly what the
// operator typed.
type ProductForm struct {
	Title       string `form:"title" validate:"required"`
	Description string `form:"description" validate:"required"`
	Thumbnail   string `form:"thumbnail" validate:"required"`
	Price       string `form:"price" validate:"required"`
	Discount    string `form:"discount"`
	Stock       string `form:"stock" validate:"required"`
	Status      string `form:"status"`
	Category    string `form:"category" validate:"required"`
	IsPublished bool   `form:"isPublished"`
}

// Payload converts the form plus the staged image collection into the wire
// shape. Unparseable numbers coerce to zero; validation has already
// guaranteed the required ones are present.
func (f ProductForm) Payload(images []models.ProductImage) apiclient.ProductPayload {
	price, _ := strconv.ParseFloat(f.Price, 64)
	discount, _ := strconv.ParseFloat(f.Discount, 64)
	stock, _ := strconv.Atoi(f.Stock)
	status := f.Status
	if status == "" {
		status = models.StatusInStock
	}
	if images == nil {
		images = []models.ProductImage{}
	}
	return apiclient.ProductPayload{
		Title:       f.Title,
		Description: f.Description,
		Thumbnail:   f.Thumbnail,
		Images:      images,
		Price:       price,
		Discount:    discount,
		Stock:       stock,
		Status:      status,
		Category:    f.Category,
		IsPublished: f.IsPublished,
	}
}

// SubmitProduct validates and issues exactly one call: create when id is
// empty, full update otherwise.
func SubmitProduct(ctx context.Context, api *apiclient.Client, id string, f ProductForm, images []models.ProductImage) (string, error) {
	if err := validate.Struct(f); err != nil {
		return "", &ValidationError{Message: "Please fill all required fields"}
	}
	if id == "" {
		return api.CreateProduct(ctx, f.Payload(images))
	}
	return api.UpdateProduct(ctx, id, f.Payload(images))
}

// HydrateProduct fetches the resource by id and pre-populates every field
// for the edit flow. On failure the caller surfaces the error and keeps
// the empty defaults.
func HydrateProduct(ctx context.Context, api *apiclient.Client, id string) (ProductForm, []models.ProductImage, error) {
	p, err := api.ProductByID(ctx, id)
	if err != nil {
		return ProductForm{Status: models.StatusInStock}, nil, err
	}
	f := ProductForm{
		Title:       p.Title,
		Description: p.Description,
		Thumbnail:   p.Thumbnail,
		Price:       strconv.FormatFloat(p.Price, 'f', -1, 64),
		Discount:    strconv.FormatFloat(p.Discount, 'f', -1, 64),
		Stock:       strconv.Itoa(p.Stock),
		Status:      p.Status,
		Category:    p.Category,
		IsPublished: p.IsPublished,
	}
	if f.Status == "" {
		f.Status = models.StatusInStock
	}
	return f, p.Images, nil
}
