package template

import (
	"fmt"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/linkedin-cv/internal/i18n"
	"github.com/jonathan/linkedin-cv/internal/resume"
)

// renderFn lets every contract check run against both render modes of every
// catalog entry.
type renderFn struct {
	name   string
	render func(*Template, resume.ResumeData, RenderOptions) (string, error)
}

var renderModes = []renderFn{
	{name: "screen", render: (*Template).RenderScreen},
	{name: "export", render: (*Template).RenderExport},
}

func sampleResume() resume.ResumeData {
	var data resume.ResumeData
	data.PersonalInfo.FullName = "Jane Doe"
	data.PersonalInfo.Email = "jane@example.com"
	data.PersonalInfo.Summary = "Engineer with a focus on backend systems."
	data.Experience = []resume.Experience{
		{
			Title:       "Engineer",
			Company:     "Acme",
			StartDate:   "2020",
			EndDate:     "",
			Description: []string{"Built things"},
		},
	}
	data.Skills = []resume.TaggedItem{
		{ID: "s1", Name: "Go", Visible: true},
		{ID: "s2", Name: "Rust", Visible: false},
	}
	return data
}

func parseHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func forEachTemplate(t *testing.T, fn func(t *testing.T, tmpl *Template, mode renderFn)) {
	t.Helper()
	for _, tmpl := range List() {
		for _, mode := range renderModes {
			t.Run(fmt.Sprintf("%s/%s", tmpl.ID, mode.name), func(t *testing.T) {
				fn(t, tmpl, mode)
			})
		}
	}
}

func TestRenderSampleResume(t *testing.T) {
	forEachTemplate(t, func(t *testing.T, tmpl *Template, mode renderFn) {
		html, err := mode.render(tmpl, sampleResume(), RenderOptions{})
		require.NoError(t, err)
		doc := parseHTML(t, html)

		assert.Equal(t, "Jane Doe", strings.TrimSpace(doc.Find("h1.full-name").Text()))

		exp := doc.Find(".section-experience")
		require.Equal(t, 1, exp.Length())
		assert.Contains(t, exp.Text(), "Engineer")
		assert.Contains(t, exp.Text(), "Acme")
		assert.Contains(t, exp.Find(".date-range").Text(), "2020 – Present")
		assert.Contains(t, exp.Find(".bullets li").Text(), "Built things")

		skills := doc.Find(".section-skills .item")
		require.Equal(t, 1, skills.Length())
		assert.Equal(t, "Go", strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(skills.Text()), "·")))
	})
}

func TestRenderOmitsEmptySections(t *testing.T) {
	forEachTemplate(t, func(t *testing.T, tmpl *Template, mode renderFn) {
		data := sampleResume()
		data.Education = nil
		data.Languages = nil
		data.Certifications = nil

		html, err := mode.render(tmpl, data, RenderOptions{})
		require.NoError(t, err)
		doc := parseHTML(t, html)

		assert.Equal(t, 0, doc.Find(".section-education").Length())
		assert.Equal(t, 0, doc.Find(".section-languages").Length())
		assert.Equal(t, 0, doc.Find(".section-certifications").Length())
	})
}

func TestRenderTreatsAllHiddenAsEmpty(t *testing.T) {
	forEachTemplate(t, func(t *testing.T, tmpl *Template, mode renderFn) {
		data := sampleResume()
		for i := range data.Skills {
			data.Skills[i].Visible = false
		}

		html, err := mode.render(tmpl, data, RenderOptions{})
		require.NoError(t, err)
		doc := parseHTML(t, html)

		assert.Equal(t, 0, doc.Find(".section-skills").Length())
		assert.NotContains(t, html, "Rust")
	})
}

func TestRenderEmptyProfile(t *testing.T) {
	forEachTemplate(t, func(t *testing.T, tmpl *Template, mode renderFn) {
		var data resume.ResumeData
		data.PersonalInfo.FullName = "Jane Doe"

		html, err := mode.render(tmpl, data, RenderOptions{})
		require.NoError(t, err)
		doc := parseHTML(t, html)

		assert.Equal(t, "Jane Doe", strings.TrimSpace(doc.Find("h1.full-name").Text()))
		assert.Equal(t, 0, doc.Find(".section").Length())
	})
}

func TestRenderFullyEmptyResume(t *testing.T) {
	forEachTemplate(t, func(t *testing.T, tmpl *Template, mode renderFn) {
		html, err := mode.render(tmpl, resume.ResumeData{}, RenderOptions{})
		require.NoError(t, err)
		doc := parseHTML(t, html)
		assert.Equal(t, 1, doc.Find("h1.full-name").Length())
	})
}

func TestRenderAccentColor(t *testing.T) {
	forEachTemplate(t, func(t *testing.T, tmpl *Template, mode renderFn) {
		html, err := mode.render(tmpl, sampleResume(), RenderOptions{})
		require.NoError(t, err)
		assert.Contains(t, html, tmpl.DefaultPrimaryColor)

		html, err = mode.render(tmpl, sampleResume(), RenderOptions{PrimaryColor: "#AB12CD"})
		require.NoError(t, err)
		style, ok := parseHTML(t, html).Find("h1.full-name").Attr("style")
		require.True(t, ok)
		assert.Contains(t, style, "#AB12CD")
	})
}

func TestRenderWithoutPhotoHasNoImage(t *testing.T) {
	forEachTemplate(t, func(t *testing.T, tmpl *Template, mode renderFn) {
		html, err := mode.render(tmpl, sampleResume(), RenderOptions{})
		require.NoError(t, err)
		doc := parseHTML(t, html)
		assert.Equal(t, 0, doc.Find("img").Length())
	})
}

func TestRenderWithPhoto(t *testing.T) {
	const photo = "data:image/jpeg;base64,/9j/SGVsbG8="
	forEachTemplate(t, func(t *testing.T, tmpl *Template, mode renderFn) {
		html, err := mode.render(tmpl, sampleResume(), RenderOptions{ProfileImage: photo})
		require.NoError(t, err)
		doc := parseHTML(t, html)

		img := doc.Find("img.profile-photo")
		if tmpl.ID == "template6" {
			// The ATS layout stays text-only regardless of the photo option.
			assert.Equal(t, 0, img.Length())
			return
		}
		require.Equal(t, 1, img.Length())
		src, ok := img.Attr("src")
		require.True(t, ok)
		assert.Equal(t, photo, src)
	})
}

func TestRenderLocalizedHeadings(t *testing.T) {
	forEachTemplate(t, func(t *testing.T, tmpl *Template, mode renderFn) {
		html, err := mode.render(tmpl, sampleResume(), RenderOptions{Language: i18n.Italian})
		require.NoError(t, err)
		doc := parseHTML(t, html)

		assert.Contains(t, doc.Find(".section-experience h2").Text(), "Esperienza Lavorativa")
		assert.Contains(t, doc.Find(".date-range").Text(), "2020 – Presente")
	})
}

func TestRenderEscapesUserContent(t *testing.T) {
	forEachTemplate(t, func(t *testing.T, tmpl *Template, mode renderFn) {
		data := sampleResume()
		data.PersonalInfo.FullName = `Jane <script>alert("x")</script>`

		html, err := mode.render(tmpl, data, RenderOptions{})
		require.NoError(t, err)
		assert.NotContains(t, html, "<script>")
		doc := parseHTML(t, html)
		assert.Contains(t, doc.Find("h1.full-name").Text(), `<script>alert("x")</script>`)
	})
}

func TestExportIsStandaloneDocument(t *testing.T) {
	for _, tmpl := range List() {
		t.Run(tmpl.ID, func(t *testing.T) {
			html, err := tmpl.RenderExport(sampleResume(), RenderOptions{})
			require.NoError(t, err)

			assert.True(t, strings.HasPrefix(strings.TrimSpace(html), "<!DOCTYPE html>"))
			assert.Contains(t, html, "size: A4")
			assert.Contains(t, html, "<title>Jane Doe</title>")
		})
	}
}

func TestScreenIsFragment(t *testing.T) {
	for _, tmpl := range List() {
		t.Run(tmpl.ID, func(t *testing.T) {
			html, err := tmpl.RenderScreen(sampleResume(), RenderOptions{})
			require.NoError(t, err)
			assert.NotContains(t, html, "<!DOCTYPE html>")
			assert.NotContains(t, html, "@page")
		})
	}
}
