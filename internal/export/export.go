// Package export turns a resume value into downloadable artifacts. The PDF
// path renders the selected template's A4 document through headless Chrome;
// the DOCX, TXT, and JSON paths derive their layout directly from the resume
// value so they stay template-independent.
package export

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/linkedin-cv/internal/i18n"
	"github.com/jonathan/linkedin-cv/internal/resume"
	"github.com/jonathan/linkedin-cv/internal/template"
)

// Format names a supported artifact format.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatTXT  Format = "txt"
	FormatJSON Format = "json"
)

// ValidFormat reports whether f is one of the supported formats.
func ValidFormat(f Format) bool {
	switch f {
	case FormatPDF, FormatDOCX, FormatTXT, FormatJSON:
		return true
	}
	return false
}

var contentTypes = map[Format]string{
	FormatPDF:  "application/pdf",
	FormatDOCX: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	FormatTXT:  "text/plain; charset=utf-8",
	FormatJSON: "application/json",
}

// Artifact is a finished export: bytes plus the metadata a download needs.
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Filename derives the download name from the resume owner's full name:
// whitespace runs become single underscores, an empty name falls back to
// "resume".
func Filename(fullName string, format Format) string {
	base := strings.Join(strings.Fields(fullName), "_")
	if base == "" {
		base = "resume"
	}
	return base + "." + string(format)
}

// PDFRenderer converts a standalone HTML document into PDF bytes.
type PDFRenderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// Exporter produces artifacts in every supported format.
type Exporter struct {
	pdf PDFRenderer
}

func New(pdf PDFRenderer) *Exporter {
	return &Exporter{pdf: pdf}
}

// Export builds the artifact for format. The template and render options only
// influence the PDF path; the other formats use the language option for
// section labels and ignore the rest.
func (e *Exporter) Export(ctx context.Context, data resume.ResumeData, tmpl *template.Template, opts template.RenderOptions, format Format) (*Artifact, error) {
	var (
		payload []byte
		err     error
	)
	switch format {
	case FormatPDF:
		if e.pdf == nil {
			return nil, fmt.Errorf("export: no PDF renderer configured")
		}
		var html string
		html, err = tmpl.RenderExport(data, opts)
		if err == nil {
			payload, err = e.pdf.RenderHTMLToPDF(ctx, html)
		}
	case FormatDOCX:
		payload, err = marshalDocx(data, i18n.LabelsFor(opts.Language))
	case FormatTXT:
		payload = []byte(marshalText(data, i18n.LabelsFor(opts.Language)))
	case FormatJSON:
		payload, err = marshalJSON(data)
	default:
		return nil, fmt.Errorf("export: unsupported format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("export: %s: %w", format, err)
	}

	return &Artifact{
		Filename:    Filename(data.PersonalInfo.FullName, format),
		ContentType: contentTypes[format],
		Data:        payload,
	}, nil
}
