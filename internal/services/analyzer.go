package services

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"path/filepath"

	"alfredoptarigan/resume-matcher/internal/models"
	"alfredoptarigan/resume-matcher/internal/repositories"
)

const jdSnippetLength = 300

type AnalyzerService interface {
	Analyze(ctx context.Context, file *multipart.FileHeader, jdText string) (*models.Submission, error)
}

type analyzerService struct {
	submissionRepo  repositories.SubmissionRepository
	storageService  StorageService
	extractor       TextExtractor
	feedbackService FeedbackService
}

func NewAnalyzerService(
	submissionRepo repositories.SubmissionRepository,
	storageService StorageService,
	extractor TextExtractor,
	feedbackService FeedbackService,
) AnalyzerService {
	return &analyzerService{
		submissionRepo:  submissionRepo,
		storageService:  storageService,
		extractor:       extractor,
		feedbackService: feedbackService,
	}
}

// Analyze runs save, extract, score, feedback and persist in order. The first
// failing step aborts the rest and nothing is written to the store. A saved
// upload is left on disk.
func (a *analyzerService) Analyze(ctx context.Context, file *multipart.FileHeader, jdText string) (*models.Submission, error) {
	// Step 1: Save upload
	stored, err := a.storageService.SaveFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to save resume: %w", err)
	}
	log.Printf("📄 Resume saved: %s\n", stored.Filename)

	// Step 2: Extract text
	resumeText, err := a.extractor.Extract(stored.FilePath, filepath.Ext(stored.OriginalName))
	if err != nil {
		log.Printf("❌ Extraction failed for %s: %v\n", stored.OriginalName, err)
		return nil, fmt.Errorf("failed to extract resume text: %w", err)
	}

	// Step 3: Score
	score := Score(resumeText, jdText)
	log.Printf("📊 Match score for %s: %.2f\n", stored.OriginalName, score)

	// Step 4: Feedback
	log.Println("🤖 Requesting feedback from LLM...")
	feedback, err := a.feedbackService.RequestFeedback(ctx, resumeText, jdText)
	if err != nil {
		log.Printf("❌ Feedback request failed: %v\n", err)
		return nil, fmt.Errorf("failed to get feedback: %w", err)
	}

	// Step 5: Persist
	submission := &models.Submission{
		ResumeName: stored.OriginalName,
		JDSnippet:  truncateRunes(jdText, jdSnippetLength),
		Score:      score,
		Feedback:   feedback,
	}

	log.Println("💾 Saving submission...")
	if err := a.submissionRepo.Create(ctx, submission); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	log.Printf("✅ Submission %d saved\n", submission.ID)
	return submission, nil
}
