// Package i18n provides the static section-label dictionary used when
// rendering a resume in one of the supported output languages.
package i18n

// Language selects the language of the rendered section labels. It is a
// render-time option, not part of the resume data.
type Language string

// Supported output languages.
const (
	Italian Language = "Italiano"
	English Language = "English"
	Spanish Language = "Español"
	French  Language = "Français"
	German  Language = "Deutsch"
)

// Labels holds the translated section headings and tokens a template needs.
type Labels struct {
	Contact        string
	Summary        string
	Experience     string
	Education      string
	Certifications string
	Skills         string
	Languages      string
	Present        string
}

var dictionary = map[Language]Labels{
	Italian: {
		Contact:        "Contatti",
		Summary:        "Profilo",
		Experience:     "Esperienza Lavorativa",
		Education:      "Formazione",
		Certifications: "Certificazioni",
		Skills:         "Competenze",
		Languages:      "Lingue",
		Present:        "Presente",
	},
	English: {
		Contact:        "Contact",
		Summary:        "Profile",
		Experience:     "Work Experience",
		Education:      "Education",
		Certifications: "Certifications",
		Skills:         "Skills",
		Languages:      "Languages",
		Present:        "Present",
	},
	Spanish: {
		Contact:        "Contacto",
		Summary:        "Perfil",
		Experience:     "Experiencia Laboral",
		Education:      "Educación",
		Certifications: "Certificaciones",
		Skills:         "Habilidades",
		Languages:      "Idiomas",
		Present:        "Presente",
	},
	French: {
		Contact:        "Contact",
		Summary:        "Profil",
		Experience:     "Expérience Professionnelle",
		Education:      "Formation",
		Certifications: "Certifications",
		Skills:         "Compétences",
		Languages:      "Langues",
		Present:        "Présent",
	},
	German: {
		Contact:        "Kontakt",
		Summary:        "Profil",
		Experience:     "Berufserfahrung",
		Education:      "Ausbildung",
		Certifications: "Zertifizierungen",
		Skills:         "Fähigkeiten",
		Languages:      "Sprachen",
		Present:        "Heute",
	},
}

// Supported returns the languages in menu order.
func Supported() []Language {
	return []Language{Italian, English, Spanish, French, German}
}

// LabelsFor returns the label set for lang, falling back to English for any
// unknown value so a stale selector degrades instead of breaking a render.
func LabelsFor(lang Language) Labels {
	if labels, ok := dictionary[lang]; ok {
		return labels
	}
	return dictionary[English]
}

// Valid reports whether lang is one of the supported languages.
func Valid(lang Language) bool {
	_, ok := dictionary[lang]
	return ok
}
