package export

import (
	"strings"

	"github.com/jonathan/linkedin-cv/internal/i18n"
	"github.com/jonathan/linkedin-cv/internal/resume"
)

const headingRule = "================="

// marshalText renders the plain-text artifact. Hidden items stay out of the
// output and empty sections are skipped entirely.
func marshalText(data resume.ResumeData, labels i18n.Labels) string {
	var b strings.Builder

	info := data.PersonalInfo
	b.WriteString(info.FullName + "\n")
	if contact := joinNonEmpty(" | ", info.Email, info.Phone, info.Location); contact != "" {
		b.WriteString(contact + "\n")
	}
	if info.LinkedinURL != "" {
		b.WriteString(info.LinkedinURL + "\n")
	}
	if info.PortfolioURL != "" {
		b.WriteString(info.PortfolioURL + "\n")
	}

	if info.Summary != "" {
		b.WriteString("\n" + labels.Summary + ":\n")
		b.WriteString(info.Summary + "\n")
	}

	if len(data.Experience) > 0 {
		writeHeading(&b, labels.Experience)
		for _, exp := range data.Experience {
			b.WriteString(exp.Title)
			if exp.Company != "" {
				b.WriteString(" at " + exp.Company)
			}
			b.WriteString("\n")
			if dates := dateRange(exp.StartDate, exp.EndDate, labels.Present); dates != "" {
				b.WriteString(dates + "\n")
			}
			for _, d := range exp.Description {
				b.WriteString(" - " + d + "\n")
			}
			b.WriteString("\n")
		}
	}

	if len(data.Education) > 0 {
		writeHeading(&b, labels.Education)
		for _, edu := range data.Education {
			line := edu.School
			if edu.Degree != "" {
				if line != "" {
					line += " - "
				}
				line += edu.Degree
			}
			b.WriteString(line + "\n")
			if dates := dateRange(edu.StartDate, edu.EndDate, labels.Present); dates != "" {
				b.WriteString(dates + "\n")
			}
			b.WriteString("\n")
		}
	}

	writeTaggedSection(&b, labels.Skills, data.Skills)
	writeTaggedSection(&b, labels.Languages, data.Languages)
	writeTaggedSection(&b, labels.Certifications, data.Certifications)

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func writeHeading(b *strings.Builder, label string) {
	b.WriteString("\n" + strings.ToUpper(label) + "\n" + headingRule + "\n")
}

func writeTaggedSection(b *strings.Builder, label string, items []resume.TaggedItem) {
	var names []string
	for _, item := range items {
		if item.Visible {
			names = append(names, item.Name)
		}
	}
	if len(names) == 0 {
		return
	}
	writeHeading(b, label)
	b.WriteString(strings.Join(names, ", ") + "\n")
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

func dateRange(start, end, present string) string {
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)
	switch {
	case start == "" && end == "":
		return ""
	case start == "":
		return end
	case end == "":
		return start + " - " + present
	default:
		return start + " - " + end
	}
}
