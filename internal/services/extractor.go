package services

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// UnsupportedFileTypeText stands in for the resume text when the upload has
// an extension we cannot read. It is scored like any other text.
const UnsupportedFileTypeText = "Unsupported file type"

const (
	UnsupportedPolicyPlaceholder = "placeholder"
	UnsupportedPolicyReject      = "reject"
)

type TextExtractor interface {
	Extract(filePath, ext string) (string, error)
}

type textExtractor struct {
	pdfParser         PDFParserService
	docxParser        DocxParserService
	unsupportedPolicy string
}

func NewTextExtractor(
	pdfParser PDFParserService,
	docxParser DocxParserService,
	unsupportedPolicy string,
) TextExtractor {
	return &textExtractor{
		pdfParser:         pdfParser,
		docxParser:        docxParser,
		unsupportedPolicy: unsupportedPolicy,
	}
}

// Extract implements TextExtractor. ext is matched case-insensitively and
// may be given with or without the leading dot.
func (e *textExtractor) Extract(filePath, ext string) (string, error) {
	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	switch ext {
	case ".txt":
		return readPlainText(filePath)
	case ".docx":
		text, err := e.docxParser.ExtractText(filePath)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrExtraction, err)
		}
		return text, nil
	case ".pdf":
		text, err := e.pdfParser.ExtractText(filePath)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrExtraction, err)
		}
		return text, nil
	default:
		if e.unsupportedPolicy == UnsupportedPolicyReject {
			return "", fmt.Errorf("%w: %q", ErrUnsupportedFileType, ext)
		}
		return UnsupportedFileTypeText, nil
	}
}

func readPlainText(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read file: %w", ErrExtraction, err)
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: file is not valid UTF-8", ErrExtraction)
	}

	return string(data), nil
}
