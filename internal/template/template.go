// Package template holds the catalog of resume templates. Every template
// binds an identifier to a pair of rendering functions: an interactive screen
// view and a paginated A4 export view. Both render the same normalized resume
// value through one shared view model, so the omission, visibility, and date
// rules hold uniformly across the catalog.
package template

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"

	"github.com/jonathan/linkedin-cv/internal/i18n"
	"github.com/jonathan/linkedin-cv/internal/resume"
)

//go:embed assets/*.gohtml
var assetsFS embed.FS

// RenderOptions is the per-render configuration. It is client state, never
// part of the persisted resume value.
type RenderOptions struct {
	// PrimaryColor overrides the template's default accent color. Hex form,
	// e.g. "#1E293B". Empty means "use the template default".
	PrimaryColor string
	// ProfileImage is a data URI for the cropped profile photo. Empty means
	// no photo: the layout collapses, it never reserves a broken image box.
	ProfileImage string
	// Language selects the section-label translation.
	Language i18n.Language
}

// Template is one catalog entry: a stable id, a display name, a default
// accent color, and the screen/export renderer pair.
type Template struct {
	ID                  string
	Name                string
	DefaultPrimaryColor string

	screen *htmltemplate.Template
	export *htmltemplate.Template
}

// RenderScreen renders the interactive preview fragment. It must succeed for
// any well-formed resume value, including the fully-empty profile; an error
// here is a defect, not an expected runtime condition.
func (t *Template) RenderScreen(data resume.ResumeData, opts RenderOptions) (string, error) {
	return t.execute(t.screen, data, opts)
}

// RenderExport renders the standalone paginated A4 document used to produce
// the downloadable artifact. Each template owns its pagination: the emitted
// CSS declares the page size and break rules so content flows to further
// pages instead of clipping.
func (t *Template) RenderExport(data resume.ResumeData, opts RenderOptions) (string, error) {
	return t.execute(t.export, data, opts)
}

func (t *Template) execute(tmpl *htmltemplate.Template, data resume.ResumeData, opts RenderOptions) (string, error) {
	v := buildView(data, opts, t.DefaultPrimaryColor)

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, v); err != nil {
		return "", fmt.Errorf("template %s: render failed: %w", t.ID, err)
	}
	return buf.String(), nil
}

// mustParse loads embedded template files and resolves the named entry
// point. The catalog is static; a missing or invalid asset is a build
// defect, so this panics at init.
func mustParse(entry string, files ...string) *htmltemplate.Template {
	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = "assets/" + f
	}
	tmpl, err := htmltemplate.ParseFS(assetsFS, paths...)
	if err != nil {
		panic(fmt.Sprintf("template: failed to parse embedded assets %v: %v", files, err))
	}
	parsed := tmpl.Lookup(entry)
	if parsed == nil {
		panic(fmt.Sprintf("template: entry %s not defined by %v", entry, files))
	}
	return parsed
}
