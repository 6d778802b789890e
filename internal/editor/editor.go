// Package editor applies user edits to a resume value. Every operation has
// the same shape: it takes the current value plus arguments and returns a new
// value, never touching the input. The caller replaces its single stored
// resume with the returned one.
package editor

import (
	"strings"

	"github.com/jonathan/linkedin-cv/internal/resume"
)

// PersonalField names a leaf string field of PersonalInfo.
type PersonalField string

// Editable personal-info fields.
const (
	FieldFullName     PersonalField = "fullName"
	FieldEmail        PersonalField = "email"
	FieldPhone        PersonalField = "phone"
	FieldLocation     PersonalField = "location"
	FieldLinkedinURL  PersonalField = "linkedinUrl"
	FieldPortfolioURL PersonalField = "portfolioUrl"
	FieldSummary      PersonalField = "summary"
)

// ValidPersonalField reports whether field names an editable field.
func ValidPersonalField(field PersonalField) bool {
	switch field {
	case FieldFullName, FieldEmail, FieldPhone, FieldLocation,
		FieldLinkedinURL, FieldPortfolioURL, FieldSummary:
		return true
	}
	return false
}

// SetPersonalField replaces one leaf string field of the personal info.
// Unknown fields leave the value unchanged.
func SetPersonalField(d resume.ResumeData, field PersonalField, value string) resume.ResumeData {
	out := d.Clone()
	switch field {
	case FieldFullName:
		out.PersonalInfo.FullName = value
	case FieldEmail:
		out.PersonalInfo.Email = value
	case FieldPhone:
		out.PersonalInfo.Phone = value
	case FieldLocation:
		out.PersonalInfo.Location = value
	case FieldLinkedinURL:
		out.PersonalInfo.LinkedinURL = value
	case FieldPortfolioURL:
		out.PersonalInfo.PortfolioURL = value
	case FieldSummary:
		out.PersonalInfo.Summary = value
	}
	return out
}

// AddExperience prepends a placeholder experience entry, matching the UI
// convention that a new role appears on top.
func AddExperience(d resume.ResumeData) resume.ResumeData {
	out := d.Clone()
	entry := resume.Experience{
		Company:     "New Company",
		Title:       "Job Title",
		StartDate:   "2024",
		Description: []string{"Description..."},
	}
	out.Experience = append([]resume.Experience{entry}, out.Experience...)
	return out
}

// RemoveExperience deletes the entry at index i. Out-of-range indices are a
// no-op.
func RemoveExperience(d resume.ResumeData, i int) resume.ResumeData {
	out := d.Clone()
	if i < 0 || i >= len(out.Experience) {
		return out
	}
	out.Experience = append(out.Experience[:i], out.Experience[i+1:]...)
	return out
}

// ExperienceField names a leaf string field of an experience entry.
type ExperienceField string

// Editable experience fields.
const (
	ExpTitle     ExperienceField = "title"
	ExpCompany   ExperienceField = "company"
	ExpLocation  ExperienceField = "location"
	ExpStartDate ExperienceField = "startDate"
	ExpEndDate   ExperienceField = "endDate"
)

// ValidExperienceField reports whether field names an editable field.
func ValidExperienceField(field ExperienceField) bool {
	switch field {
	case ExpTitle, ExpCompany, ExpLocation, ExpStartDate, ExpEndDate:
		return true
	}
	return false
}

// UpdateExperienceField replaces one string field of the entry at index i.
func UpdateExperienceField(d resume.ResumeData, i int, field ExperienceField, value string) resume.ResumeData {
	out := d.Clone()
	if i < 0 || i >= len(out.Experience) {
		return out
	}
	switch field {
	case ExpTitle:
		out.Experience[i].Title = value
	case ExpCompany:
		out.Experience[i].Company = value
	case ExpLocation:
		out.Experience[i].Location = value
	case ExpStartDate:
		out.Experience[i].StartDate = value
	case ExpEndDate:
		out.Experience[i].EndDate = value
	}
	return out
}

// AddEducation prepends a placeholder education entry.
func AddEducation(d resume.ResumeData) resume.ResumeData {
	out := d.Clone()
	entry := resume.Education{
		School:    "New School",
		Degree:    "Degree",
		StartDate: "2024",
	}
	out.Education = append([]resume.Education{entry}, out.Education...)
	return out
}

// RemoveEducation deletes the entry at index i. Out-of-range indices are a
// no-op.
func RemoveEducation(d resume.ResumeData, i int) resume.ResumeData {
	out := d.Clone()
	if i < 0 || i >= len(out.Education) {
		return out
	}
	out.Education = append(out.Education[:i], out.Education[i+1:]...)
	return out
}

// EducationField names a leaf string field of an education entry.
type EducationField string

// Editable education fields.
const (
	EduDegree    EducationField = "degree"
	EduSchool    EducationField = "school"
	EduLocation  EducationField = "location"
	EduStartDate EducationField = "startDate"
	EduEndDate   EducationField = "endDate"
)

// ValidEducationField reports whether field names an editable field.
func ValidEducationField(field EducationField) bool {
	switch field {
	case EduDegree, EduSchool, EduLocation, EduStartDate, EduEndDate:
		return true
	}
	return false
}

// UpdateEducationField replaces one string field of the entry at index i.
func UpdateEducationField(d resume.ResumeData, i int, field EducationField, value string) resume.ResumeData {
	out := d.Clone()
	if i < 0 || i >= len(out.Education) {
		return out
	}
	switch field {
	case EduDegree:
		out.Education[i].Degree = value
	case EduSchool:
		out.Education[i].School = value
	case EduLocation:
		out.Education[i].Location = value
	case EduStartDate:
		out.Education[i].StartDate = value
	case EduEndDate:
		out.Education[i].EndDate = value
	}
	return out
}

// MoveExperience moves the experience entry from index i to index j with
// standard array-move semantics.
func MoveExperience(d resume.ResumeData, i, j int) resume.ResumeData {
	out := d.Clone()
	out.Experience = arrayMove(out.Experience, i, j)
	return out
}

// MoveEducation moves the education entry from index i to index j.
func MoveEducation(d resume.ResumeData, i, j int) resume.ResumeData {
	out := d.Clone()
	out.Education = arrayMove(out.Education, i, j)
	return out
}

// arrayMove removes the element at i and reinserts it at j, shifting the
// elements in between by one. Invalid indices return the slice unchanged.
func arrayMove[T any](items []T, i, j int) []T {
	if i < 0 || i >= len(items) || j < 0 || j >= len(items) || i == j {
		return items
	}
	item := items[i]
	items = append(items[:i], items[i+1:]...)
	items = append(items[:j], append([]T{item}, items[j:]...)...)
	return items
}

// SplitBullets turns one newline-delimited text block into bullet lines,
// trimming each line and dropping the blank ones. JoinBullets followed by
// SplitBullets is the identity on a clean bullet list.
func SplitBullets(block string) []string {
	return resume.CleanBullets(strings.Split(block, "\n"))
}

// JoinBullets is the inverse presentation used by bulk-edit text areas.
func JoinBullets(bullets []string) string {
	return strings.Join(bullets, "\n")
}

// SetExperienceBullets replaces the bullet list of the entry at index i from
// a newline-delimited text block.
func SetExperienceBullets(d resume.ResumeData, i int, block string) resume.ResumeData {
	out := d.Clone()
	if i < 0 || i >= len(out.Experience) {
		return out
	}
	out.Experience[i].Description = SplitBullets(block)
	return out
}
