package web

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/avelazco/go-mood-player/internal/emotion"
)

// Templates manages HTML template rendering.
type Templates struct {
	templates map[string]*template.Template
	partials  map[string]*template.Template
	funcs     template.FuncMap
}

// NewTemplates creates a new template manager by loading templates from the given filesystem.
func NewTemplates(templatesFS fs.FS) (*Templates, error) {
	t := &Templates{
		templates: make(map[string]*template.Template),
		partials:  make(map[string]*template.Template),
		funcs:     defaultFuncs(),
	}

	if err := t.load(templatesFS); err != nil {
		return nil, err
	}

	return t, nil
}

// Render renders a page template with the given data.
func (t *Templates) Render(w io.Writer, page string, data any) error {
	tmpl, ok := t.templates[page]
	if !ok {
		return fmt.Errorf("template %q not found", page)
	}

	// Execute the "base" template which includes the page content
	return tmpl.ExecuteTemplate(w, "base", data)
}

// RenderPartial renders a partial template (without base layout) with the given data.
func (t *Templates) RenderPartial(w io.Writer, partial string, data any) error {
	tmpl, ok := t.partials[partial]
	if !ok {
		return fmt.Errorf("partial %q not found", partial)
	}
	return tmpl.Execute(w, data)
}

// load parses all templates from the filesystem.
func (t *Templates) load(templatesFS fs.FS) error {
	// Load base layout
	layoutPattern := "layouts/*.html"
	layouts, err := fs.Glob(templatesFS, layoutPattern)
	if err != nil {
		return fmt.Errorf("finding layouts: %w", err)
	}

	// Load partials
	partialPattern := "partials/*.html"
	partials, err := fs.Glob(templatesFS, partialPattern)
	if err != nil {
		return fmt.Errorf("finding partials: %w", err)
	}

	// Load each page template with layouts and partials
	pagePattern := "pages/*.html"
	pages, err := fs.Glob(templatesFS, pagePattern)
	if err != nil {
		return fmt.Errorf("finding pages: %w", err)
	}

	// Common files to include with every page
	commonFiles := append(layouts, partials...)

	for _, page := range pages {
		name := filepath.Base(page)
		name = name[:len(name)-len(".html")] // Remove .html extension

		files := append([]string{page}, commonFiles...)

		tmpl, err := template.New(name).Funcs(t.funcs).ParseFS(templatesFS, files...)
		if err != nil {
			return fmt.Errorf("parsing template %s: %w", name, err)
		}

		t.templates[name] = tmpl
	}

	// Load partials as standalone templates for fragment responses
	for _, partial := range partials {
		name := filepath.Base(partial)
		name = name[:len(name)-len(".html")]

		tmpl, err := template.New(name).Funcs(t.funcs).ParseFS(templatesFS, partial)
		if err != nil {
			return fmt.Errorf("parsing partial %s: %w", name, err)
		}
		t.partials[name] = tmpl
	}

	return nil
}

// moodColors gives each mood its display color.
var moodColors = map[emotion.Label]string{
	emotion.Joy:             "hsl(45, 95%, 55%)",
	emotion.Sadness:         "hsl(215, 60%, 50%)",
	emotion.Anger:           "hsl(5, 80%, 50%)",
	emotion.Fear:            "hsl(270, 45%, 45%)",
	emotion.Disgust:         "hsl(95, 45%, 40%)",
	emotion.Neutral:         "hsl(0, 0%, 60%)",
	emotion.NotDeterminable: "hsl(0, 0%, 40%)",
}

// defaultFuncs returns the default template functions.
func defaultFuncs() template.FuncMap {
	return template.FuncMap{
		// moodColor returns the display color for a mood label.
		"moodColor": func(mood emotion.Label) string {
			if c, ok := moodColors[mood]; ok {
				return c
			}
			return moodColors[emotion.Neutral]
		},

		// formatTime formats a timestamp as "Jan 2, 2006 15:04"
		"formatTime": func(t time.Time) string {
			return t.Format("Jan 2, 2006 15:04")
		},

		// percent renders a 0..1 score as a percentage
		"percent": func(score float64) string {
			return fmt.Sprintf("%.0f%%", score*100)
		},
	}
}

// PageData contains common data passed to all page templates.
type PageData struct {
	Title       string
	User        *UserData
	CurrentPath string
}

// UserData contains authenticated user information.
type UserData struct {
	ID   string
	Name string
}

// HomePageData contains data for the home page template.
type HomePageData struct {
	PageData
	Authenticated bool
}

// HistoryPageData contains data for the mood history page template.
type HistoryPageData struct {
	PageData
	Cycles []CycleData
}

// CycleData contains data for a single recorded mood cycle.
type CycleData struct {
	Mood        emotion.Label
	TextLabel   string
	SpeechLabel string
	Ambiguous   bool
	CreatedAt   time.Time
}
