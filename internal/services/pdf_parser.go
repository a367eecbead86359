package services

import (
	"fmt"
	"strings"

	fitz "github.com/gen2brain/go-fitz"
	"github.com/ledongthuc/pdf"
)

const (
	PDFEngineLedongthuc = "ledongthuc"
	PDFEngineMuPDF      = "mupdf"
)

type PDFParserService interface {
	ExtractText(filePath string) (string, error)
}

// NewPDFParserService returns the parser for the named engine. Unknown names
// fall back to the pure Go engine.
func NewPDFParserService(engine string) PDFParserService {
	if engine == PDFEngineMuPDF {
		return &mupdfParser{}
	}
	return &pdfParserService{}
}

type pdfParserService struct{}

// ExtractText implements PDFParserService. Pages are joined with a single
// newline; a page without a content stream contributes an empty string.
func (p *pdfParserService) ExtractText(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	totalPage := r.NumPage()
	pages := make([]string, 0, totalPage)

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to read PDF page %d: %w", pageIndex, err)
		}

		pages = append(pages, text)
	}

	return strings.Join(pages, "\n"), nil
}

type mupdfParser struct{}

// ExtractText implements PDFParserService.
func (m *mupdfParser) ExtractText(filePath string) (string, error) {
	doc, err := fitz.New(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	pages := make([]string, 0, doc.NumPage())
	for n := 0; n < doc.NumPage(); n++ {
		text, err := doc.Text(n)
		if err != nil {
			return "", fmt.Errorf("failed to read PDF page %d: %w", n+1, err)
		}
		pages = append(pages, text)
	}

	return strings.Join(pages, "\n"), nil
}
