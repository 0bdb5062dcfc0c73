package ats

import (
	"context"
	"math/rand/v2"
	"time"

	"resume-builder-backend/internal/resumes"
	"resume-builder-backend/internal/shared/metrics"
	"resume-builder-backend/internal/shared/telemetry"
)

// Result sources. Every result is labeled so clients can tell a real
// upstream score from generated placeholder data.
const (
	SourceAPI  = "api"
	SourceMock = "mock"
)

// Result is an ATS compatibility report for one resume.
type Result struct {
	Score       int      `json:"score"`
	Label       string   `json:"label"`
	Color       string   `json:"color"`
	Feedback    []string `json:"feedback"`
	Suggestions []string `json:"suggestions"`
	Source      string   `json:"source"`
}

// checker is what Advisor needs from the upstream client.
type checker interface {
	Check(ctx context.Context, resumeText string) (Result, error)
}

// Advisor scores resumes, preferring the upstream API and falling back
// to deterministic mock-shaped data when no upstream is configured or
// the call fails.
type Advisor struct {
	client checker
}

// NewAdvisor builds an Advisor. client may be nil, in which case every
// score is mock data.
func NewAdvisor(client *Client) *Advisor {
	a := &Advisor{}
	if client != nil {
		a.client = client
	}
	return a
}

func (a *Advisor) Score(ctx context.Context, r resumes.Resume) Result {
	metrics.IncATSRequest()
	start := time.Now()
	defer func() {
		metrics.ObserveATSDurationMs(float64(time.Since(start).Milliseconds()))
	}()

	if a.client != nil {
		result, err := a.client.Check(ctx, ResumeText(r))
		if err == nil {
			result.Label = ScoreLabel(result.Score)
			result.Color = ScoreColor(result.Score)
			return result
		}
		telemetry.Warn("ats.upstream_failed", map[string]any{
			"error": err.Error(),
		})
	}

	metrics.IncATSMockFallback()
	return a.mockResult()
}

// mockResult mirrors the placeholder report shown before an upstream is
// wired up: a random score in [60, 100] with canned advice. The shared
// top-level generator is safe for concurrent handlers.
func (a *Advisor) mockResult() Result {
	score := rand.IntN(41) + 60
	return Result{
		Score: score,
		Label: ScoreLabel(score),
		Color: ScoreColor(score),
		Feedback: []string{
			"Your resume has good structure and formatting",
			"Consider adding more quantifiable achievements",
			"Skills section could be more specific",
			"Overall professional appearance",
		},
		Suggestions: []string{
			"Use action verbs to start bullet points",
			"Include metrics and numbers where possible",
			"Tailor skills to match job requirements",
			"Ensure consistent formatting throughout",
		},
		Source: SourceMock,
	}
}

func ScoreColor(score int) string {
	switch {
	case score >= 90:
		return "text-green-600"
	case score >= 80:
		return "text-blue-600"
	case score >= 70:
		return "text-yellow-600"
	default:
		return "text-red-600"
	}
}

func ScoreLabel(score int) string {
	switch {
	case score >= 90:
		return "Excellent"
	case score >= 80:
		return "Good"
	case score >= 70:
		return "Fair"
	default:
		return "Needs Improvement"
	}
}
