package application_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagekraft/pagekraft/internal/adapters/outbound/config"
	"github.com/pagekraft/pagekraft/internal/adapters/outbound/cssparse"
	"github.com/pagekraft/pagekraft/internal/adapters/outbound/htmlparse"
	"github.com/pagekraft/pagekraft/internal/application"
	"github.com/pagekraft/pagekraft/internal/domain"
)

func newService() *application.AuditService {
	return application.NewAuditService(htmlparse.New(), cssparse.New(), config.New())
}

func TestAuditSite_GoodFixture(t *testing.T) {
	report, err := newService().AuditSite(filepath.Join("..", "..", "testdata", "site-good"))
	require.NoError(t, err)

	assert.Len(t, report.Categories, len(domain.Categories))
	assert.GreaterOrEqual(t, report.Overall, 9.0, "the clean fixture should score near the top")
	assert.False(t, report.Timestamp.IsZero())
}

func TestAuditSite_BadFixtureScoresLower(t *testing.T) {
	svc := newService()

	good, err := svc.AuditSite(filepath.Join("..", "..", "testdata", "site-good"))
	require.NoError(t, err)
	bad, err := svc.AuditSite(filepath.Join("..", "..", "testdata", "site-bad"))
	require.NoError(t, err)

	assert.Less(t, bad.Overall, good.Overall)

	counts := bad.FailingCount()
	assert.Positive(t, counts[domain.SeverityCritical], "the violating fixture must produce critical findings")
}

func TestAuditSite_Deterministic(t *testing.T) {
	svc := newService()
	site := filepath.Join("..", "..", "testdata", "site-good")

	r1, err := svc.AuditSite(site)
	require.NoError(t, err)
	r2, err := svc.AuditSite(site)
	require.NoError(t, err)

	assert.Equal(t, r1.Overall, r2.Overall)
	assert.Equal(t, r1.Categories, r2.Categories)
}

func TestAuditSite_SkipCategories(t *testing.T) {
	dir := t.TempDir()
	page := `<!DOCTYPE html>
<html lang="en">
<head><meta name="viewport" content="width=device-width, initial-scale=1"></head>
<body>
  <header><nav><a href="#top">Top</a></nav></header>
  <main><h1>Hi <strong>there</strong></h1></main>
  <footer><p>bye</p></footer>
</body>
</html>`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte(page), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".pagekraft.yaml"),
		[]byte("skip_categories: [styling, interactions]\n"), 0644))

	report, err := newService().AuditSite(dir)
	require.NoError(t, err)

	assert.Len(t, report.Categories, len(domain.Categories)-2)
	for _, cat := range report.Categories {
		assert.NotEqual(t, domain.CategoryStyling, cat.Category)
		assert.NotEqual(t, domain.CategoryInteractions, cat.Category)
	}
}

func TestAuditSite_MissingPage(t *testing.T) {
	_, err := newService().AuditSite(t.TempDir())
	assert.ErrorContains(t, err, "loading page")
}
