package editor

import (
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/linkedin-cv/internal/resume"
)

// TaggedList names one of the tagged-item lists.
type TaggedList string

// The three tagged-item lists.
const (
	Skills         TaggedList = "skills"
	Languages      TaggedList = "languages"
	Certifications TaggedList = "certifications"
)

// ValidTaggedList reports whether list names a tagged-item list.
func ValidTaggedList(list TaggedList) bool {
	switch list {
	case Skills, Languages, Certifications:
		return true
	}
	return false
}

func taggedSlice(d *resume.ResumeData, list TaggedList) *[]resume.TaggedItem {
	switch list {
	case Skills:
		return &d.Skills
	case Languages:
		return &d.Languages
	case Certifications:
		return &d.Certifications
	}
	return nil
}

// AddTagged appends a visible item with the given display name and a fresh
// synthetic ID. Blank names are ignored.
func AddTagged(d resume.ResumeData, list TaggedList, name string) resume.ResumeData {
	out := d.Clone()
	items := taggedSlice(&out, list)
	name = strings.TrimSpace(name)
	if items == nil || name == "" {
		return out
	}
	*items = append(*items, resume.TaggedItem{ID: uuid.NewString(), Name: name, Visible: true})
	return out
}

// RemoveTagged deletes the item with the given ID. Unknown IDs are a no-op.
func RemoveTagged(d resume.ResumeData, list TaggedList, id string) resume.ResumeData {
	out := d.Clone()
	items := taggedSlice(&out, list)
	if items == nil {
		return out
	}
	for i, item := range *items {
		if item.ID == id {
			*items = append((*items)[:i], (*items)[i+1:]...)
			break
		}
	}
	return out
}

// ToggleTagged flips the visibility of the item with the given ID. The item
// stays in place: hiding is a soft delete, distinct from removal.
func ToggleTagged(d resume.ResumeData, list TaggedList, id string) resume.ResumeData {
	out := d.Clone()
	items := taggedSlice(&out, list)
	if items == nil {
		return out
	}
	for i, item := range *items {
		if item.ID == id {
			(*items)[i].Visible = !item.Visible
			break
		}
	}
	return out
}

// RenameTagged replaces the display name of the item with the given ID. The
// ID is the identity, so renaming never re-targets other operations.
func RenameTagged(d resume.ResumeData, list TaggedList, id, name string) resume.ResumeData {
	out := d.Clone()
	items := taggedSlice(&out, list)
	name = strings.TrimSpace(name)
	if items == nil || name == "" {
		return out
	}
	for i, item := range *items {
		if item.ID == id {
			(*items)[i].Name = name
			break
		}
	}
	return out
}

// MoveTagged moves the item at index i to index j within a tagged list,
// preserving all other relative orders.
func MoveTagged(d resume.ResumeData, list TaggedList, i, j int) resume.ResumeData {
	out := d.Clone()
	items := taggedSlice(&out, list)
	if items == nil {
		return out
	}
	*items = arrayMove(*items, i, j)
	return out
}
