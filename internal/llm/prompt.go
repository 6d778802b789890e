package llm

import (
	"fmt"
	"strings"
)

// ExtractionSchema defines the structure for LLM-based content extraction.
type ExtractionSchema struct {
	Name        string        // Schema name (e.g., "Resume")
	Description string        // System prompt preamble describing the extraction task
	Fields      []SchemaField // Expected output fields
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint shown to the model
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

// BuildExtractionPrompt constructs the LLM prompt from schema and input text.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "string"
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Extract information directly from the text, do not invent facts.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	sb.WriteString("Input text:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// ResumeSchema returns the extraction schema for LinkedIn-exported profile
// documents. outputLanguage selects the natural language of the extracted
// content (summaries, degree names); factual tokens like emails and company
// names are copied verbatim.
func ResumeSchema(outputLanguage string) ExtractionSchema {
	description := `You are a professional resume parser. Extract the candidate's information from the provided resume text.
Dates are copied as written (years or month-year tokens); use an empty string for an ongoing position's end date.
Bullet points are split into individual lines, one array element each.`
	if outputLanguage != "" {
		description += fmt.Sprintf("\nWrite free-text content (summary, descriptions, degree names) in %s. Copy names, emails, phone numbers and URLs verbatim.", outputLanguage)
	}

	return ExtractionSchema{
		Name:        "Resume",
		Description: description,
		Fields: []SchemaField{
			{
				Name:        "personal_info",
				Type:        `{"fullName": "string", "email": "string", "phone": "string", "location": "string", "linkedinUrl": "string", "portfolioUrl": "string", "summary": "string"}`,
				Description: "Profile header; fullName is mandatory, use empty strings for anything absent",
				Required:    true,
			},
			{
				Name:        "work_experience",
				Type:        `[{"title": "string", "company": "string", "location": "string", "startDate": "string", "endDate": "string", "description": ["string"]}]`,
				Description: "Most recent first, as ordered in the document",
				Required:    true,
			},
			{
				Name:        "education",
				Type:        `[{"degree": "string", "school": "string", "location": "string", "startDate": "string", "endDate": "string"}]`,
				Description: "Degrees and schools",
				Required:    true,
			},
			{
				Name:        "skills",
				Type:        `["string"]`,
				Description: "Skill names only, no proficiency annotations",
				Required:    false,
			},
			{
				Name:        "languages",
				Type:        `["string"]`,
				Description: "Spoken languages",
				Required:    false,
			},
			{
				Name:        "certifications",
				Type:        `["string"]`,
				Description: "Certification names",
				Required:    false,
			},
		},
	}
}
