// Package view renders the console's screens. The pages are deliberately
// plain: layout and styling are not what this service is about.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/kraviona/seller-console/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page is the envelope every template receives.
type Page struct {
	Title     string
	Profile   models.Profile
	Flash     string
	FlashKind string
	Data      any
}

type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	t, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{templates: t}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
