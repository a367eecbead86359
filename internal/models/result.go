package models

import "time"

type AnalyzeResponse struct {
	ID         uint      `json:"id"`
	ResumeName string    `json:"resume_name"`
	Score      float64   `json:"score"`
	Feedback   string    `json:"feedback"`
	Timestamp  time.Time `json:"timestamp"`
}

type SubmissionListResponse struct {
	Count       int          `json:"count"`
	Submissions []Submission `json:"submissions"`
}

// AnalyzePage is the data rendered into the analysis form.
type AnalyzePage struct {
	HasResult bool
	Score     float64
	Feedback  string
}

type DashboardPage struct {
	Submissions []Submission
}

func NewAnalyzeResponse(s *Submission) AnalyzeResponse {
	return AnalyzeResponse{
		ID:         s.ID,
		ResumeName: s.ResumeName,
		Score:      s.Score,
		Feedback:   s.Feedback,
		Timestamp:  s.Timestamp,
	}
}
