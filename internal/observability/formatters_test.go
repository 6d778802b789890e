package observability

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/linkedin-cv/internal/resume"
)

func TestPrintResume(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	var data resume.ResumeData
	data.PersonalInfo.FullName = "Jane Doe"
	data.PersonalInfo.Email = "jane@example.com"
	data.Experience = []resume.Experience{
		{Title: "Engineer", Company: "Acme"},
		{Title: "Intern", Company: "Initech"},
	}
	data.Education = []resume.Education{
		{School: "State University", Degree: "BSc"},
	}
	data.Skills = []resume.TaggedItem{
		{ID: "s1", Name: "Go", Visible: true},
		{ID: "s2", Name: "SQL", Visible: true},
	}

	p.PrintResume(&data)
	output := buf.String()

	assert.Contains(t, output, "EXTRACTED RESUME")
	assert.Contains(t, output, "Jane Doe")
	assert.Contains(t, output, "jane@example.com")
	assert.Contains(t, output, "Engineer @ Acme")
	assert.Contains(t, output, "State University")
	assert.Contains(t, output, "Skills (2): Go, SQL")
}

func TestPrintResume_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResume(nil)

	assert.Empty(t, buf.String())
}

func TestPrintResume_TruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	var data resume.ResumeData
	data.PersonalInfo.FullName = "Jane Doe"
	for i := 0; i < 8; i++ {
		data.Experience = append(data.Experience, resume.Experience{Title: "Role"})
	}

	p.PrintResume(&data)

	assert.Contains(t, buf.String(), "... and 3 more")
}

func TestPrintDocumentStats(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintDocumentStats("line one\nline two", 1500*time.Millisecond)
	output := buf.String()

	assert.Contains(t, output, "DOCUMENT TEXT")
	assert.Contains(t, output, "Characters: 17")
	assert.Contains(t, output, "Lines:      2")
	assert.Contains(t, output, "1.5s")
}

func TestPrintArtifact(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintArtifact("Jane_Doe.pdf", 2048)
	output := buf.String()

	assert.Contains(t, output, "EXPORT ARTIFACT")
	assert.Contains(t, output, "Jane_Doe.pdf")
	assert.Contains(t, output, "2048 bytes")
}

func TestPrintBoxTruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintArtifact(strings.Repeat("x", 100), 1)

	for _, line := range strings.Split(buf.String(), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
}
