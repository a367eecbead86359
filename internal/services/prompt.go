package services

import "fmt"

const promptTextLimit = 1500

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildFeedbackPrompt creates the career advisor prompt. Resume and job
// description are each cut to their first 1500 characters.
func (pb *PromptBuilder) BuildFeedbackPrompt(resumeText, jdText string) string {
	return fmt.Sprintf(`
You're an expert career advisor. Analyze the following resume and job description, and provide specific feedback to the candidate. Suggest:
1. Skills or experiences missing from resume.
2. Sections or keywords to improve.
3. Overall match insight.

Resume:
%s

Job Description:
%s
`, truncateRunes(resumeText, promptTextLimit), truncateRunes(jdText, promptTextLimit))
}

// truncateRunes keeps at most n characters without splitting a code point.
func truncateRunes(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
