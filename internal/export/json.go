package export

import (
	"encoding/json"

	"github.com/jonathan/linkedin-cv/internal/resume"
)

// marshalJSON emits the resume in its canonical wire shape, indented for
// hand editing. A re-import of this file round-trips losslessly.
func marshalJSON(data resume.ResumeData) ([]byte, error) {
	return json.MarshalIndent(data, "", "  ")
}
