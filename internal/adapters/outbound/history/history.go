package history

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pagekraft/pagekraft/internal/domain"
)

const historyFile = ".pagekraft/history/audits.json"

// FileHistory implements domain.AuditHistory using JSON file storage inside
// the audited site directory.
type FileHistory struct{}

func New() *FileHistory {
	return &FileHistory{}
}

func (h *FileHistory) Save(sitePath string, entry domain.AuditEntry) error {
	entries, err := h.Load(sitePath)
	if err != nil {
		return err
	}

	entries = append(entries, entry)

	fp := filepath.Join(sitePath, historyFile)
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(fp, data, 0644)
}

func (h *FileHistory) Load(sitePath string) ([]domain.AuditEntry, error) {
	fp := filepath.Join(sitePath, historyFile)

	data, err := os.ReadFile(fp)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []domain.AuditEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}
