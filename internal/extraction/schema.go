package extraction

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// payloadSchema validates the shape the extraction service is asked to
// return before the payload is trusted. The service hands back bare string
// lists for skills/languages/certifications; tagged items are built locally.
const payloadSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["personal_info"],
  "properties": {
    "personal_info": {
      "type": "object",
      "required": ["fullName"],
      "properties": {
        "fullName": {"type": "string", "minLength": 1},
        "email": {"type": "string"},
        "phone": {"type": "string"},
        "location": {"type": "string"},
        "linkedinUrl": {"type": "string"},
        "portfolioUrl": {"type": "string"},
        "summary": {"type": "string"}
      }
    },
    "work_experience": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "title": {"type": "string"},
          "company": {"type": "string"},
          "location": {"type": "string"},
          "startDate": {"type": "string"},
          "endDate": {"type": "string"},
          "description": {"type": "array", "items": {"type": "string"}}
        }
      }
    },
    "education": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "degree": {"type": "string"},
          "school": {"type": "string"},
          "location": {"type": "string"},
          "startDate": {"type": "string"},
          "endDate": {"type": "string"}
        }
      }
    },
    "skills": {"type": "array", "items": {"type": "string"}},
    "languages": {"type": "array", "items": {"type": "string"}},
    "certifications": {"type": "array", "items": {"type": "string"}}
  }
}`

var compiledSchema *gojsonschema.Schema

func init() {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(payloadSchema))
	if err != nil {
		panic(fmt.Sprintf("extraction: invalid embedded payload schema: %v", err))
	}
	compiledSchema = schema
}

// validatePayload checks raw JSON against the payload schema and returns a
// field-by-field description of what failed.
func validatePayload(raw string) error {
	result, err := compiledSchema.Validate(gojsonschema.NewStringLoader(raw))
	if err != nil {
		return fmt.Errorf("payload is not valid JSON: %w", err)
	}
	if result.Valid() {
		return nil
	}

	msg := "payload does not match the resume shape:"
	for _, desc := range result.Errors() {
		msg += fmt.Sprintf(" %s: %s;", desc.Field(), desc.Description())
	}
	return fmt.Errorf("%s", msg)
}
