package rules

import (
	"path"
	"strings"

	"github.com/pagekraft/pagekraft/internal/domain"
)

// typeDirectories maps asset extensions to the directory names they are
// conventionally grouped under.
var typeDirectories = map[string][]string{
	".css":   {"css", "styles", "assets"},
	".js":    {"js", "scripts", "assets"},
	".png":   {"images", "img", "assets"},
	".jpg":   {"images", "img", "assets"},
	".jpeg":  {"images", "img", "assets"},
	".gif":   {"images", "img", "assets"},
	".svg":   {"images", "img", "icons", "assets"},
	".webp":  {"images", "img", "assets"},
	".woff":  {"fonts", "assets"},
	".woff2": {"fonts", "assets"},
}

// checkAssetDirectories flags local assets that are not grouped under a
// conventional type directory (css/, images/, fonts/, ...).
func checkAssetDirectories(p *page) []domain.Finding {
	refs := assetRefs(p)
	if len(refs) == 0 {
		return nil
	}

	var findings []domain.Finding
	checked := 0
	for _, ref := range refs {
		ext := strings.ToLower(path.Ext(ref.path))
		wantDirs, known := typeDirectories[ext]
		if !known {
			continue
		}
		checked++
		if !underAnyDirectory(ref.path, wantDirs) {
			findings = append(findings, nodeFinding(domain.CategoryFileStructure, domain.SeverityLow, ref.node,
				"asset %q is not grouped under a type directory (expected one of %s)",
				ref.path, strings.Join(wantDirs, "/, ")+"/"))
		}
	}
	if checked == 0 {
		return nil
	}
	if len(findings) == 0 {
		return pass(domain.CategoryFileStructure, "all referenced assets are grouped under type directories")
	}
	return findings
}

func underAnyDirectory(assetPath string, dirs []string) bool {
	segments := strings.Split(path.Dir(strings.TrimPrefix(assetPath, "./")), "/")
	for _, seg := range segments {
		for _, d := range dirs {
			if strings.EqualFold(seg, d) {
				return true
			}
		}
	}
	return false
}
