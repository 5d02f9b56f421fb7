package resume

import (
	"errors"
	"fmt"
	"os"

	"code.sajari.com/docconv"

	"interviewedge/internal/utils"
)

var (
	ErrNoFile             = errors.New("no resume file provided")
	ErrDocumentUnreadable = errors.New("document could not be parsed")
)

// convertFunc matches docconv.ConvertPath; swapped out in tests
type convertFunc func(path string) (*docconv.Response, error)

// Extractor turns an uploaded document on transient storage into
// normalized plain text.
type Extractor struct {
	convert convertFunc
}

func NewExtractor() *Extractor {
	return &Extractor{convert: docconv.ConvertPath}
}

// ExtractText parses the staged file and collapses all whitespace runs to
// single spaces. It does not delete the file; the caller owns cleanup on
// every exit path.
func (e *Extractor) ExtractText(path string) (string, error) {
	if path == "" {
		return "", ErrNoFile
	}
	if _, err := os.Stat(path); err != nil {
		return "", ErrNoFile
	}

	res, err := e.convert(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDocumentUnreadable, err)
	}

	text := utils.CollapseWhitespace(res.Body)
	if text == "" {
		return "", ErrDocumentUnreadable
	}
	return text, nil
}
