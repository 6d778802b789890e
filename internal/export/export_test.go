package export

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/linkedin-cv/internal/i18n"
	"github.com/jonathan/linkedin-cv/internal/resume"
	"github.com/jonathan/linkedin-cv/internal/template"
)

func sampleResume() resume.ResumeData {
	var data resume.ResumeData
	data.PersonalInfo.FullName = "Jane Doe"
	data.PersonalInfo.Email = "jane@example.com"
	data.PersonalInfo.Phone = "+1 555 0100"
	data.PersonalInfo.Summary = "Backend engineer."
	data.Experience = []resume.Experience{
		{Title: "Engineer", Company: "Acme", StartDate: "2020", Description: []string{"Built things"}},
	}
	data.Education = []resume.Education{
		{School: "State University", Degree: "BSc", StartDate: "2014", EndDate: "2018"},
	}
	data.Skills = []resume.TaggedItem{
		{ID: "s1", Name: "Go", Visible: true},
		{ID: "s2", Name: "Rust", Visible: false},
		{ID: "s3", Name: "SQL", Visible: true},
	}
	return data
}

func TestFilename(t *testing.T) {
	tests := []struct {
		name     string
		fullName string
		format   Format
		want     string
	}{
		{name: "simple", fullName: "Jane Doe", format: FormatPDF, want: "Jane_Doe.pdf"},
		{name: "extra whitespace", fullName: "  Jane   Q.  Doe ", format: FormatDOCX, want: "Jane_Q._Doe.docx"},
		{name: "empty falls back", fullName: "", format: FormatTXT, want: "resume.txt"},
		{name: "whitespace only falls back", fullName: "   ", format: FormatJSON, want: "resume.json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Filename(tt.fullName, tt.format))
		})
	}
}

func TestValidFormat(t *testing.T) {
	for _, f := range []Format{FormatPDF, FormatDOCX, FormatTXT, FormatJSON} {
		assert.True(t, ValidFormat(f))
	}
	assert.False(t, ValidFormat("html"))
	assert.False(t, ValidFormat(""))
}

func TestMarshalText(t *testing.T) {
	text := marshalText(sampleResume(), i18n.LabelsFor(i18n.English))

	assert.True(t, strings.HasPrefix(text, "Jane Doe\n"))
	assert.Contains(t, text, "jane@example.com | +1 555 0100")
	assert.Contains(t, text, "WORK EXPERIENCE\n=================\n")
	assert.Contains(t, text, "Engineer at Acme\n2020 - Present\n - Built things")
	assert.Contains(t, text, "State University - BSc\n2014 - 2018")
	assert.Contains(t, text, "SKILLS\n=================\nGo, SQL")
	assert.NotContains(t, text, "Rust")
}

func TestMarshalTextLocalized(t *testing.T) {
	text := marshalText(sampleResume(), i18n.LabelsFor(i18n.Italian))

	assert.Contains(t, text, "ESPERIENZA LAVORATIVA")
	assert.Contains(t, text, "2020 - Presente")
	assert.Contains(t, text, "COMPETENZE")
}

func TestMarshalTextSkipsEmptySections(t *testing.T) {
	var data resume.ResumeData
	data.PersonalInfo.FullName = "Jane Doe"
	data.Skills = []resume.TaggedItem{{ID: "s1", Name: "Go", Visible: false}}

	text := marshalText(data, i18n.LabelsFor(i18n.English))

	assert.Equal(t, "Jane Doe\n", text)
}

func TestMarshalJSONRoundTrips(t *testing.T) {
	original := sampleResume()
	payload, err := marshalJSON(original)
	require.NoError(t, err)

	assert.Contains(t, string(payload), "\n  \"personal_info\"")

	var decoded resume.ResumeData
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.True(t, original.Equal(decoded))
}

func TestMarshalDocxProducesDocument(t *testing.T) {
	payload, err := marshalDocx(sampleResume(), i18n.LabelsFor(i18n.English))
	require.NoError(t, err)

	// DOCX is a zip container.
	require.Greater(t, len(payload), 4)
	assert.Equal(t, "PK", string(payload[:2]))
}

type stubPDFRenderer struct {
	lastHTML string
	out      []byte
	err      error
}

func (s *stubPDFRenderer) RenderHTMLToPDF(_ context.Context, html string) ([]byte, error) {
	s.lastHTML = html
	return s.out, s.err
}

func TestExportPDFUsesTemplateDocument(t *testing.T) {
	stub := &stubPDFRenderer{out: []byte("%PDF-1.7 fake")}
	exporter := New(stub)

	artifact, err := exporter.Export(context.Background(), sampleResume(), template.Get("template1"), template.RenderOptions{}, FormatPDF)
	require.NoError(t, err)

	assert.Equal(t, "Jane_Doe.pdf", artifact.Filename)
	assert.Equal(t, "application/pdf", artifact.ContentType)
	assert.Equal(t, stub.out, artifact.Data)
	assert.Contains(t, stub.lastHTML, "<!DOCTYPE html>")
	assert.Contains(t, stub.lastHTML, "Jane Doe")
}

func TestExportTXTArtifact(t *testing.T) {
	exporter := New(nil)

	artifact, err := exporter.Export(context.Background(), sampleResume(), template.Get("template1"), template.RenderOptions{Language: i18n.Spanish}, FormatTXT)
	require.NoError(t, err)

	assert.Equal(t, "Jane_Doe.txt", artifact.Filename)
	assert.Equal(t, "text/plain; charset=utf-8", artifact.ContentType)
	assert.Contains(t, string(artifact.Data), "EXPERIENCIA LABORAL")
}

func TestExportPDFWithoutRenderer(t *testing.T) {
	exporter := New(nil)

	_, err := exporter.Export(context.Background(), sampleResume(), template.Get("template1"), template.RenderOptions{}, FormatPDF)
	require.Error(t, err)
}

func TestExportUnsupportedFormat(t *testing.T) {
	exporter := New(nil)

	_, err := exporter.Export(context.Background(), sampleResume(), template.Get("template1"), template.RenderOptions{}, Format("html"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}
