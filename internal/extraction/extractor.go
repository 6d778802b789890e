package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/jonathan/linkedin-cv/internal/i18n"
	"github.com/jonathan/linkedin-cv/internal/llm"
	"github.com/jonathan/linkedin-cv/internal/resume"
)

// maxPromptChars bounds the document excerpt embedded in the prompt.
// Oversized documents are silently truncated, not rejected: resumes are
// assumed short, and the head of the document carries the profile.
const maxPromptChars = 30000

// liteThreshold is the excerpt size under which the lite model tier is
// enough. A one-page profile parses fine on the cheaper model.
const liteThreshold = 6000

// payload is the wire shape requested from the extraction service.
type payload struct {
	PersonalInfo   resume.PersonalInfo `json:"personal_info"`
	WorkExperience []resume.Experience `json:"work_experience"`
	Education      []resume.Education  `json:"education"`
	Skills         []string            `json:"skills"`
	Languages      []string            `json:"languages"`
	Certifications []string            `json:"certifications"`
}

// Extractor converts document text into a validated resume value. One
// outbound service call per invocation; no retries.
type Extractor struct {
	client llm.Client
}

// New creates an Extractor on top of an LLM client.
func New(client llm.Client) *Extractor {
	return &Extractor{client: client}
}

// Extract asks the service to structure text into the resume shape, with
// free-text content written in lang. The returned value is validated against
// the payload schema and normalized; any mismatch surfaces as a
// MalformedResponseError, never a panic. The service is non-deterministic:
// identical input may yield semantically similar but not byte-identical
// output.
func (e *Extractor) Extract(ctx context.Context, text string, lang i18n.Language) (*resume.ResumeData, error) {
	if text == "" {
		return nil, &UnreadableDocumentError{Cause: fmt.Errorf("no text content")}
	}

	excerpt := truncate(text, maxPromptChars)

	schema := llm.ResumeSchema(string(lang))
	prompt := llm.BuildExtractionPrompt(schema, excerpt)

	tier := llm.TierStandard
	if len(excerpt) < liteThreshold {
		tier = llm.TierLite
	}

	raw, err := e.client.GenerateJSON(ctx, prompt, tier)
	if err != nil {
		return nil, &ExternalServiceError{Cause: err}
	}

	// GenerateJSON strips fences, but responses relayed through other
	// channels may still carry them.
	raw = llm.CleanJSONBlock(raw)

	if err := validatePayload(raw); err != nil {
		return nil, &MalformedResponseError{Raw: raw, Cause: err}
	}

	var p payload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, &MalformedResponseError{Raw: raw, Cause: err}
	}

	data := resume.Normalize(resume.ResumeData{
		PersonalInfo:   p.PersonalInfo,
		Experience:     p.WorkExperience,
		Education:      p.Education,
		Skills:         resume.TaggedFromNames(p.Skills),
		Languages:      resume.TaggedFromNames(p.Languages),
		Certifications: resume.TaggedFromNames(p.Certifications),
	})

	if data.PersonalInfo.FullName == "" {
		return nil, &MalformedResponseError{Raw: raw, Cause: fmt.Errorf("missing fullName")}
	}

	return &data, nil
}

// truncate cuts s to at most max bytes, backing off to a rune boundary so
// the prompt stays valid UTF-8.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
