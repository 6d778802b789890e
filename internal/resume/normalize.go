package resume

import (
	"strings"

	"github.com/google/uuid"
)

// Normalize repairs a freshly parsed resume value so it satisfies the model
// invariants: bullet lines are trimmed and blank lines dropped, tagged items
// with empty names are removed, and every tagged item carries a synthetic ID.
// The input is not modified.
func Normalize(d ResumeData) ResumeData {
	out := d.Clone()

	out.PersonalInfo.FullName = strings.TrimSpace(out.PersonalInfo.FullName)

	for i := range out.Experience {
		out.Experience[i].Description = CleanBullets(out.Experience[i].Description)
	}

	out.Skills = normalizeTagged(out.Skills)
	out.Languages = normalizeTagged(out.Languages)
	out.Certifications = normalizeTagged(out.Certifications)

	return out
}

// CleanBullets trims each bullet line and drops the blank ones. The result is
// nil when nothing survives, so empty-section omission keeps working.
func CleanBullets(lines []string) []string {
	var out []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// TaggedFromNames builds visible tagged items from plain display names,
// skipping blanks. Used when adopting payloads that carry bare string lists.
func TaggedFromNames(names []string) []TaggedItem {
	var out []TaggedItem
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		out = append(out, TaggedItem{ID: uuid.NewString(), Name: name, Visible: true})
	}
	return out
}

func normalizeTagged(items []TaggedItem) []TaggedItem {
	var out []TaggedItem
	for _, item := range items {
		item.Name = strings.TrimSpace(item.Name)
		if item.Name == "" {
			continue
		}
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		out = append(out, item)
	}
	return out
}
