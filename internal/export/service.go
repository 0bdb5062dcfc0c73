package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"resume-builder-backend/internal/render"
	"resume-builder-backend/internal/resumes"
	"resume-builder-backend/internal/shared/metrics"
	"resume-builder-backend/internal/shared/storage/object"
	"resume-builder-backend/internal/shared/util"
	"resume-builder-backend/internal/templates"
)

const contentTypePDF = "application/pdf"

// Info describes a stored export.
type Info struct {
	ResumeID   string `json:"resumeId"`
	FileName   string `json:"fileName"`
	SizeBytes  int64  `json:"sizeBytes"`
	ExportedAt string `json:"exportedAt"`
}

// Service renders resumes to PDF and keeps the result in the object
// store under a deterministic per-user key, so re-export overwrites the
// previous copy.
type Service struct {
	Resumes  *resumes.Service
	Store    object.ObjectStore
	Renderer Renderer
	Now      func() time.Time
}

func NewService(resumeSvc *resumes.Service, store object.ObjectStore, renderer Renderer) *Service {
	return &Service{
		Resumes:  resumeSvc,
		Store:    store,
		Renderer: renderer,
		Now:      time.Now,
	}
}

// Export renders the resume's print document to PDF and stores it.
func (s *Service) Export(ctx context.Context, userID, resumeID string) (Info, error) {
	metrics.IncExportStarted()
	start := time.Now()

	info, err := s.export(ctx, userID, resumeID)
	metrics.ObserveExportDurationMs(float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.IncExportFailed()
		return Info{}, err
	}
	metrics.IncExportCompleted()
	return info, nil
}

func (s *Service) export(ctx context.Context, userID, resumeID string) (Info, error) {
	resume, err := s.Resumes.Get(ctx, userID, resumeID)
	if err != nil {
		return Info{}, err
	}

	doc := render.PrintDocument(resume, templates.ByID(resume.TemplateID))
	pdf, err := s.Renderer.RenderPDF(ctx, doc)
	if err != nil {
		return Info{}, fmt.Errorf("render pdf: %w", err)
	}

	key := storageKey(userID, resume.ID)
	size, err := s.Store.Put(ctx, key, contentTypePDF, bytes.NewReader(pdf))
	if err != nil {
		return Info{}, fmt.Errorf("store pdf: %w", err)
	}

	return Info{
		ResumeID:   resume.ID,
		FileName:   fileName(resume),
		SizeBytes:  size,
		ExportedAt: s.Now().UTC().Format(time.RFC3339),
	}, nil
}

// Open streams a previously exported PDF. Ownership is checked before
// touching the store, so a stored object is never reachable across users.
func (s *Service) Open(ctx context.Context, userID, resumeID string) (io.ReadCloser, string, error) {
	resume, err := s.Resumes.Get(ctx, userID, resumeID)
	if err != nil {
		return nil, "", err
	}

	rc, err := s.Store.Open(ctx, storageKey(userID, resume.ID))
	if err != nil {
		return nil, "", err
	}
	return rc, fileName(resume), nil
}

func storageKey(userID, resumeID string) string {
	return util.HashUserKey(userID) + "/" + resumeID + ".pdf"
}

func fileName(r resumes.Resume) string {
	name, err := util.SanitizeFileName(r.Title)
	if err != nil || name == "" {
		name = "resume"
	}
	return name + ".pdf"
}
