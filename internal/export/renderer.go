package export

import "context"

// Renderer converts a standalone HTML document to PDF bytes.
type Renderer interface {
	RenderPDF(ctx context.Context, html string) ([]byte, error)
}
