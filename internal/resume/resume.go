// Package resume defines the canonical structured resume value consumed by
// the editor, the template renderers, and the export pipeline.
//
//nolint:revive // resume is the domain name, not a utility grab-bag
package resume

import "encoding/json"

// PersonalInfo holds the profile header fields. FullName is the only field
// assumed to always be present; every other field may be empty, and an empty
// field means "omit from render", never "render empty".
type PersonalInfo struct {
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Location     string `json:"location"`
	LinkedinURL  string `json:"linkedinUrl,omitempty"`
	PortfolioURL string `json:"portfolioUrl,omitempty"`
	Summary      string `json:"summary"`
}

// Experience is one work experience entry. Description holds bullet lines;
// after normalization it never contains blank lines.
type Experience struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Description []string `json:"description"`
}

// Education is one education entry.
type Education struct {
	Degree    string `json:"degree"`
	School    string `json:"school"`
	Location  string `json:"location"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// TaggedItem is a named entry (skill, language, certification) carrying a
// visibility flag. Visible controls render-time inclusion without deleting
// the item. ID is a synthetic identifier assigned at normalization time; all
// toggle/remove/reorder operations address the ID, so duplicate display names
// stay unambiguous.
type TaggedItem struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Visible bool   `json:"visible"`
}

// ResumeData is the root aggregate. It is treated as an immutable value by
// every consumer: a "mutation" derives a new value, the stored instance is
// only ever replaced wholesale. Order in every slice is insertion order and
// is the only ordering signal.
type ResumeData struct {
	PersonalInfo   PersonalInfo `json:"personal_info"`
	Experience     []Experience `json:"work_experience"`
	Education      []Education  `json:"education"`
	Skills         []TaggedItem `json:"skills"`
	Languages      []TaggedItem `json:"languages"`
	Certifications []TaggedItem `json:"certifications"`
}

// Clone returns a deep copy. Callers that derive a new value start from a
// clone so the original and its slices are never shared with the result.
func (d ResumeData) Clone() ResumeData {
	out := d
	out.Experience = make([]Experience, len(d.Experience))
	for i, exp := range d.Experience {
		out.Experience[i] = exp
		out.Experience[i].Description = append([]string(nil), exp.Description...)
	}
	out.Education = append([]Education(nil), d.Education...)
	out.Skills = append([]TaggedItem(nil), d.Skills...)
	out.Languages = append([]TaggedItem(nil), d.Languages...)
	out.Certifications = append([]TaggedItem(nil), d.Certifications...)
	return out
}

// Equal reports structural equality of two resume values.
func (d ResumeData) Equal(other ResumeData) bool {
	a, err := json.Marshal(d)
	if err != nil {
		return false
	}
	b, err := json.Marshal(other)
	if err != nil {
		return false
	}
	return string(a) == string(b)
}

// Empty returns a resume with only the given name set. Renderers must accept
// this value without error.
func Empty(fullName string) ResumeData {
	return ResumeData{PersonalInfo: PersonalInfo{FullName: fullName}}
}
