package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

const maxFilenameLength = 120

type StorageService interface {
	SaveFile(file *multipart.FileHeader) (*StoredFile, error)
	GetFilePath(filename string) string
	EnsureUploadDir() error
}

// StoredFile describes an upload written to disk. OriginalName is the
// sanitized client filename; Filename is the unique key on disk.
type StoredFile struct {
	Filename     string
	FilePath     string
	OriginalName string
}

type storageService struct {
	uploadPath string
}

func NewStorageService(uploadPath string) StorageService {
	return &storageService{
		uploadPath: uploadPath,
	}
}

func (s *storageService) EnsureUploadDir() error {
	if err := os.MkdirAll(s.uploadPath, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	return nil
}

func (s *storageService) SaveFile(file *multipart.FileHeader) (*StoredFile, error) {
	originalName := SanitizeFilename(file.Filename)

	// Two uploads with the same name never share a path
	uniqueFilename := fmt.Sprintf("%s_%s", uuid.New().String(), originalName)
	filePath := filepath.Join(s.uploadPath, uniqueFilename)

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	return &StoredFile{
		Filename:     uniqueFilename,
		FilePath:     filePath,
		OriginalName: originalName,
	}, nil
}

func (s *storageService) GetFilePath(filename string) string {
	return filepath.Join(s.uploadPath, filename)
}

// SanitizeFilename reduces a client supplied name to a safe basename:
// accents are folded to ASCII, path separators and whitespace become
// underscores, anything outside [A-Za-z0-9._-] is dropped and leading or
// trailing dots and underscores are trimmed. The result is capped at 120
// characters, keeping the extension where possible.
func SanitizeFilename(name string) string {
	decomposed := norm.NFKD.String(name)

	var b strings.Builder
	for _, r := range decomposed {
		switch {
		case r == '/' || r == '\\' || unicode.IsSpace(r):
			b.WriteByte(' ')
		case r > unicode.MaxASCII:
			// combining marks and non-latin characters
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '_', r == '-':
			b.WriteRune(r)
		}
	}

	cleaned := strings.Join(strings.Fields(b.String()), "_")
	cleaned = strings.Trim(cleaned, "._")

	if cleaned == "" {
		return "upload"
	}

	if len(cleaned) > maxFilenameLength {
		ext := filepath.Ext(cleaned)
		if len(ext) >= maxFilenameLength {
			ext = ""
		}
		cleaned = cleaned[:maxFilenameLength-len(ext)] + ext
	}

	return cleaned
}
