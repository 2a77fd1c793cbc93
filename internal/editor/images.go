// Package editor stages a product's ordered image collection before
// submission. The state is purely local and dies with the form.
package editor

import (
	"errors"

	"github.com/kraviona/seller-console/internal/models"
)

// DefaultAltText fills in when no product title exists yet.
const DefaultAltText = "Product Image"

// ErrNoStagingURL is the validation warning for Add without a URL.
var ErrNoStagingURL = errors.New("Add image URL first")

// ImageEditor keeps an ordered set of staged images plus the URL currently
// being typed. Entries are immutable once added except by removal, and
// display order is the order of addition.
type ImageEditor struct {
	staging string
	images  []models.ProductImage
}

func New(images ...models.ProductImage) *ImageEditor {
	return &ImageEditor{images: append([]models.ProductImage(nil), images...)}
}

func (e *ImageEditor) SetStaging(url string) {
	e.staging = url
}

func (e *ImageEditor) Staging() string {
	return e.staging
}

// Add appends an entry built from the staging URL, using the title in
// progress as alt text, then clears the staging field. An empty staging
// URL is a validation warning and changes nothing.
func (e *ImageEditor) Add(title string) error {
	if e.staging == "" {
		return ErrNoStagingURL
	}
	alt := title
	if alt == "" {
		alt = DefaultAltText
	}
	e.images = append(e.images, models.ProductImage{URL: e.staging, AltText: alt})
	e.staging = ""
	return nil
}

// RemoveAt drops exactly the entry at i, preserving the relative order of
// the rest. Out-of-bounds indexes are a no-op.
func (e *ImageEditor) RemoveAt(i int) {
	if i < 0 || i >= len(e.images) {
		return
	}
	e.images = append(e.images[:i], e.images[i+1:]...)
}

func (e *ImageEditor) Images() []models.ProductImage {
	cp := make([]models.ProductImage, len(e.images))
	copy(cp, e.images)
	return cp
}

func (e *ImageEditor) Len() int {
	return len(e.images)
}
