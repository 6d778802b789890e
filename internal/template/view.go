package template

import (
	htmltemplate "html/template"
	"strings"

	"github.com/jonathan/linkedin-cv/internal/i18n"
	"github.com/jonathan/linkedin-cv/internal/resume"
)

// view is the fully-resolved model every template asset renders from. All
// cross-template rules live in its construction: empty sections come out as
// empty slices (templates wrap each section in a presence check), tagged
// items are pre-filtered to visible names in stored order, and date ranges
// are pre-formatted with the localized open-ended fallback.
type view struct {
	FullName string
	Summary  string

	Email        string
	Phone        string
	Location     string
	LinkedinURL  string
	PortfolioURL string
	HasContact   bool

	Experience []experienceView
	Education  []educationView

	Skills         []string
	Languages      []string
	Certifications []string

	Labels i18n.Labels

	// Accent is the effective primary color, already validated as a hex
	// literal, marked safe for direct interpolation into style attributes.
	Accent htmltemplate.CSS
	// PhotoSrc carries the profile photo data URI when present.
	PhotoSrc htmltemplate.URL
	HasPhoto bool
}

type experienceView struct {
	Title     string
	Company   string
	Location  string
	DateRange string
	Bullets   []string
}

type educationView struct {
	Degree    string
	School    string
	Location  string
	DateRange string
}

func buildView(data resume.ResumeData, opts RenderOptions, defaultColor string) view {
	labels := i18n.LabelsFor(opts.Language)

	v := view{
		FullName:       strings.TrimSpace(data.PersonalInfo.FullName),
		Summary:        strings.TrimSpace(data.PersonalInfo.Summary),
		Email:          data.PersonalInfo.Email,
		Phone:          data.PersonalInfo.Phone,
		Location:       data.PersonalInfo.Location,
		LinkedinURL:    data.PersonalInfo.LinkedinURL,
		PortfolioURL:   data.PersonalInfo.PortfolioURL,
		Skills:         visibleNames(data.Skills),
		Languages:      visibleNames(data.Languages),
		Certifications: visibleNames(data.Certifications),
		Labels:         labels,
		Accent:         accentColor(opts.PrimaryColor, defaultColor),
	}

	v.HasContact = v.Email != "" || v.Phone != "" || v.Location != "" ||
		v.LinkedinURL != "" || v.PortfolioURL != ""

	for _, exp := range data.Experience {
		v.Experience = append(v.Experience, experienceView{
			Title:     exp.Title,
			Company:   exp.Company,
			Location:  exp.Location,
			DateRange: formatDateRange(exp.StartDate, exp.EndDate, labels.Present),
			Bullets:   exp.Description,
		})
	}
	for _, edu := range data.Education {
		v.Education = append(v.Education, educationView{
			Degree:    edu.Degree,
			School:    edu.School,
			Location:  edu.Location,
			DateRange: formatDateRange(edu.StartDate, edu.EndDate, labels.Present),
		})
	}

	if strings.HasPrefix(opts.ProfileImage, "data:image/") {
		v.PhotoSrc = htmltemplate.URL(opts.ProfileImage)
		v.HasPhoto = true
	}

	return v
}

// visibleNames keeps the stored order and drops hidden items. A section with
// no visible items renders the same as an empty section.
func visibleNames(items []resume.TaggedItem) []string {
	var names []string
	for _, item := range items {
		if item.Visible {
			names = append(names, item.Name)
		}
	}
	return names
}

// formatDateRange renders "start – end". An entry with no end date is treated
// as ongoing and closes with the localized Present label.
func formatDateRange(start, end, present string) string {
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)
	switch {
	case start == "" && end == "":
		return ""
	case start == "":
		return end
	case end == "":
		return start + " – " + present
	default:
		return start + " – " + end
	}
}

// accentColor picks the override when it is a plausible hex color, otherwise
// the template default. The value is interpolated into inline styles, so only
// the strict hex form is accepted.
func accentColor(override, fallback string) htmltemplate.CSS {
	if isHexColor(override) {
		return htmltemplate.CSS(override)
	}
	return htmltemplate.CSS(fallback)
}

func isHexColor(s string) bool {
	if len(s) != 4 && len(s) != 7 {
		return false
	}
	if s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
