package ats

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"resume-builder-backend/internal/resumes"
)

type stubChecker struct {
	result Result
	err    error
}

func (s *stubChecker) Check(ctx context.Context, resumeText string) (Result, error) {
	return s.result, s.err
}

func TestScoreUsesUpstreamWhenAvailable(t *testing.T) {
	a := NewAdvisor(nil)
	a.client = &stubChecker{result: Result{Score: 92, Feedback: []string{"strong"}, Source: SourceAPI}}

	got := a.Score(context.Background(), resumes.Resume{})
	if got.Source != SourceAPI {
		t.Fatalf("expected api source, got %q", got.Source)
	}
	if got.Score != 92 || got.Label != "Excellent" || got.Color != "text-green-600" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestScoreFallsBackToMockOnError(t *testing.T) {
	a := NewAdvisor(nil)
	a.client = &stubChecker{err: fmt.Errorf("upstream down")}

	got := a.Score(context.Background(), resumes.Resume{})
	if got.Source != SourceMock {
		t.Fatalf("expected mock source, got %q", got.Source)
	}
	if got.Score < 60 || got.Score > 100 {
		t.Fatalf("mock score out of range: %d", got.Score)
	}
	if len(got.Feedback) != 4 || len(got.Suggestions) != 4 {
		t.Fatalf("mock result shape wrong: %+v", got)
	}
}

func TestScoreWithoutClientIsMock(t *testing.T) {
	a := NewAdvisor(nil)
	for i := 0; i < 50; i++ {
		got := a.Score(context.Background(), resumes.Resume{})
		if got.Source != SourceMock {
			t.Fatalf("expected mock source, got %q", got.Source)
		}
		if got.Score < 60 || got.Score > 100 {
			t.Fatalf("mock score out of range: %d", got.Score)
		}
		if got.Label == "" || got.Color == "" {
			t.Fatalf("mock result missing label or color: %+v", got)
		}
	}
}

func TestScoreConcurrentMockFallback(t *testing.T) {
	a := NewAdvisor(nil)
	a.client = &stubChecker{err: fmt.Errorf("upstream down")}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				got := a.Score(context.Background(), resumes.Resume{})
				if got.Source != SourceMock {
					t.Errorf("expected mock source, got %q", got.Source)
					return
				}
				if got.Score < 60 || got.Score > 100 {
					t.Errorf("mock score out of range: %d", got.Score)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestScoreLabelsAndColors(t *testing.T) {
	cases := []struct {
		score int
		label string
		color string
	}{
		{95, "Excellent", "text-green-600"},
		{90, "Excellent", "text-green-600"},
		{85, "Good", "text-blue-600"},
		{80, "Good", "text-blue-600"},
		{75, "Fair", "text-yellow-600"},
		{70, "Fair", "text-yellow-600"},
		{69, "Needs Improvement", "text-red-600"},
		{0, "Needs Improvement", "text-red-600"},
	}
	for _, c := range cases {
		if got := ScoreLabel(c.score); got != c.label {
			t.Errorf("ScoreLabel(%d) = %q, want %q", c.score, got, c.label)
		}
		if got := ScoreColor(c.score); got != c.color {
			t.Errorf("ScoreColor(%d) = %q, want %q", c.score, got, c.color)
		}
	}
}

func TestClientCheck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", auth)
		}
		var req scoreRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if !strings.Contains(req.Resume, "PROFILE") {
			t.Errorf("request body missing resume text: %q", req.Resume)
		}
		json.NewEncoder(w).Encode(scoreResponse{
			Score:       88,
			Feedback:    []string{"solid"},
			Suggestions: []string{"more metrics"},
		})
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, "test-key", 5*time.Second)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	got, err := client.Check(context.Background(), ResumeText(resumes.Resume{}))
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if got.Score != 88 || got.Source != SourceAPI {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestClientCheckUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, "test-key", 5*time.Second)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	if _, err := client.Check(context.Background(), "text"); err == nil {
		t.Fatal("expected error on non-200 response")
	}
}

func TestResumeTextLayout(t *testing.T) {
	r := resumes.Resume{
		ProfileInfo: resumes.ProfileInfo{FullName: "Ada Lovelace", Designation: "Engineer"},
		ContactInfo: resumes.ContactInfo{Email: "ada@example.com"},
		WorkExperience: []resumes.Experience{
			{Company: "Acme", Role: "Engineer", StartDate: "2020"},
		},
		Skills: []resumes.Skill{{Name: "Go"}},
	}
	text := ResumeText(r)

	for _, want := range []string{
		"PROFILE",
		"Name: Ada Lovelace",
		"WORK EXPERIENCE",
		"1. Engineer at Acme",
		"   2020 - ",
		"SKILLS",
		"- Go",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("missing %q in:\n%s", want, text)
		}
	}
	if strings.Contains(text, "EDUCATION") {
		t.Fatalf("empty education section should be omitted:\n%s", text)
	}
}
