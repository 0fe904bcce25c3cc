package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
)

const (
	PageIndex           = "index.html"
	PageTrainerList     = "trainer_list.html"
	PageTrainerRegister = "trainer_register.html"
	PageBooking         = "booking.html"
	PageThankYou        = "thank_you.html"

	layout = "layout.html"
)

//go:embed templates/*.html
var templates embed.FS

//go:embed static/*
var static embed.FS

// Page is the data every template receives.
type Page struct {
	Title string
	Data  any
}

// Renderer holds one parsed template set per page, each wrapped in the layout.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	base, err := template.New(layout).Funcs(template.FuncMap{
		"price": func(p float64) string { return fmt.Sprintf("%.2f", p) },
	}).ParseFS(templates, "templates/"+layout)
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}

	renderer := &Renderer{pages: map[string]*template.Template{}}

	for _, page := range []string{PageIndex, PageTrainerList, PageTrainerRegister, PageBooking, PageThankYou} {
		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("failed to clone layout for %s: %w", page, err)
		}

		if renderer.pages[page], err = clone.ParseFS(templates, "templates/"+page); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", page, err)
		}
	}

	return renderer, nil
}

// Render executes page into a buffer first so a template error never leaves
// a half-written response behind.
func (r *Renderer) Render(w io.Writer, page string, data Page) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer

	if err := tmpl.ExecuteTemplate(&buf, layout, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", page, err)
	}

	_, err := buf.WriteTo(w)

	return err //nolint:wrapcheck
}

// Static returns the stylesheet tree rooted at static/.
func Static() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}

	return sub
}
