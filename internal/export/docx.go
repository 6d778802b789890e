package export

import (
	"bytes"

	"github.com/fumiama/go-docx"

	"github.com/jonathan/linkedin-cv/internal/i18n"
	"github.com/jonathan/linkedin-cv/internal/resume"
)

// marshalDocx builds the Word artifact: centered title block, then the same
// section order and visibility rules as the other text formats.
func marshalDocx(data resume.ResumeData, labels i18n.Labels) ([]byte, error) {
	w := docx.New().WithDefaultTheme()

	info := data.PersonalInfo
	title := w.AddParagraph().Justification("center")
	title.AddText(info.FullName).Size("36").Bold()

	if contact := joinNonEmpty(" | ", info.Email, info.Phone, info.Location); contact != "" {
		p := w.AddParagraph().Justification("center")
		p.AddText(contact).Size("20")
	}
	if links := joinNonEmpty(" | ", info.LinkedinURL, info.PortfolioURL); links != "" {
		p := w.AddParagraph().Justification("center")
		p.AddText(links).Size("20")
	}
	w.AddParagraph()

	if info.Summary != "" {
		addDocxHeading(w, labels.Summary)
		w.AddParagraph().AddText(info.Summary).Size("22")
		w.AddParagraph()
	}

	if len(data.Experience) > 0 {
		addDocxHeading(w, labels.Experience)
		for _, exp := range data.Experience {
			p := w.AddParagraph()
			p.AddText(exp.Title).Size("24").Bold()
			if exp.Company != "" {
				p.AddText(" at " + exp.Company).Size("22").Italic()
			}
			if dates := dateRange(exp.StartDate, exp.EndDate, labels.Present); dates != "" {
				w.AddParagraph().AddText(dates).Size("20")
			}
			for _, d := range exp.Description {
				w.AddParagraph().AddText("• " + d).Size("22")
			}
			w.AddParagraph()
		}
	}

	if len(data.Education) > 0 {
		addDocxHeading(w, labels.Education)
		for _, edu := range data.Education {
			p := w.AddParagraph()
			p.AddText(edu.School).Size("22").Bold()
			if edu.Degree != "" {
				p.AddText(" - " + edu.Degree).Size("22")
			}
			if dates := dateRange(edu.StartDate, edu.EndDate, labels.Present); dates != "" {
				w.AddParagraph().AddText(dates).Size("20")
			}
			w.AddParagraph()
		}
	}

	addDocxTagged(w, labels.Skills, data.Skills)
	addDocxTagged(w, labels.Languages, data.Languages)
	addDocxTagged(w, labels.Certifications, data.Certifications)

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func addDocxHeading(w *docx.Docx, label string) {
	w.AddParagraph().AddText(label).Size("26").Bold()
}

func addDocxTagged(w *docx.Docx, label string, items []resume.TaggedItem) {
	var names []string
	for _, item := range items {
		if item.Visible {
			names = append(names, item.Name)
		}
	}
	if len(names) == 0 {
		return
	}
	addDocxHeading(w, label)
	w.AddParagraph().AddText(joinNonEmpty(", ", names...)).Size("22")
	w.AddParagraph()
}
