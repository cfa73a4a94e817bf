package pipeline

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/ppiankov/docent/internal/extract"
	"github.com/ppiankov/docent/internal/model"
)

// AnalyzeSource analyzes a document source: an http(s) URL is fetched
// (robots.txt permitting), anything else is read as a local file. This
// is the entry point batch workers use.
func (p *Pipeline) AnalyzeSource(ctx context.Context, source string) (*model.AnalysisResult, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		fetched, err := p.fetcher.Fetch(ctx, source)
		if err != nil {
			return nil, err
		}
		return p.Analyze(ctx, Document{Name: fetched.Name, Text: fetched.Text})
	}

	text, images, err := extract.Extract(source, nil)
	if err != nil {
		return nil, err
	}
	return p.Analyze(ctx, Document{
		Name:   strings.TrimSuffix(filepath.Base(source), filepath.Ext(source)),
		Text:   text,
		Images: images,
	})
}
