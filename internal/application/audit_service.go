package application

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/pagekraft/pagekraft/internal/domain"
	"github.com/pagekraft/pagekraft/internal/domain/rules"
)

// AuditService orchestrates the audit pipeline:
// load config → parse page → resolve and parse stylesheets → evaluate rules
// → apply category skips.
type AuditService struct {
	pages  domain.PageLoader
	styles domain.StyleLoader
	config domain.ConfigLoader
}

func NewAuditService(
	pages domain.PageLoader,
	styles domain.StyleLoader,
	config domain.ConfigLoader,
) *AuditService {
	return &AuditService{
		pages:  pages,
		styles: styles,
		config: config,
	}
}

// AuditSite audits the page of a site directory. The page defaults to
// index.html; stylesheets are the page's local <link rel="stylesheet">
// references plus any configured extras, resolved relative to the site root.
func (s *AuditService) AuditSite(sitePath string) (*domain.AuditReport, error) {
	cfg, err := s.config.Load(sitePath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	doc, err := s.pages.Load(filepath.Join(sitePath, cfg.Page))
	if err != nil {
		return nil, fmt.Errorf("loading page: %w", err)
	}

	cssPaths := domain.StylesheetRefs(doc)
	cssPaths = append(cssPaths, cfg.Stylesheets...)
	for i, p := range cssPaths {
		cssPaths[i] = filepath.Join(sitePath, filepath.FromSlash(p))
	}

	styles, err := s.styles.Load(cssPaths)
	if err != nil {
		return nil, fmt.Errorf("loading stylesheets: %w", err)
	}

	report, err := rules.EvaluateWithLimit(doc, styles, cfg.EffectiveMaxDepth())
	if err != nil {
		return nil, fmt.Errorf("evaluating rules: %w", err)
	}

	report.Categories = applySkips(report.Categories, cfg)
	report.Overall = domain.ComputeOverallScore(report.Categories)
	report.Timestamp = time.Now()
	return report, nil
}

// applySkips drops configured-out categories and leaves the rest untouched.
func applySkips(categories []domain.CategoryResult, cfg domain.SiteConfig) []domain.CategoryResult {
	if len(cfg.SkipCategories) == 0 {
		return categories
	}
	var result []domain.CategoryResult
	for _, cat := range categories {
		if cfg.IsSkippedCategory(cat.Category) {
			continue
		}
		result = append(result, cat)
	}
	return result
}
