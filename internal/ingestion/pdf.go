package ingestion

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"
)

// ExtractPDFText converts PDF bytes into cleaned plain text. Encrypted,
// truncated, or otherwise unreadable files return an error; the caller maps
// it to the unreadable-document failure. No OCR is attempted: a scanned PDF
// with no text layer yields empty text, which is also unreadable.
func ExtractPDFText(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty document")
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract PDF text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("failed to read PDF text: %w", err)
	}

	text := CleanText(buf.String())
	if text == "" {
		return "", fmt.Errorf("document contains no extractable text")
	}
	return text, nil
}
