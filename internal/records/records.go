// Package records handles reading raw content batches and persisting
// curated output documents as JSON files.
package records

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jonesrussell/digest-curator/internal/domain"
)

// Batch is the raw input document produced by the collection layer.
type Batch struct {
	Source string                  `json:"source,omitempty"`
	Items  []*domain.ContentRecord `json:"items"`
}

// LoadBatch reads a raw batch file.
func LoadBatch(path string) (*Batch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read batch file %s: %w", path, err)
	}

	var batch Batch
	if err := json.Unmarshal(data, &batch); err != nil {
		return nil, fmt.Errorf("parse batch file %s: %w", path, err)
	}
	return &batch, nil
}

// SaveOutput writes the curated document as indented JSON. The parent
// directory is created when missing.
func SaveOutput(path string, output *domain.CurationOutput) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir %s: %w", dir, err)
		}
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal curated output: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output file %s: %w", path, err)
	}
	return nil
}

// DefaultOutputPath builds a timestamped output path under dir.
func DefaultOutputPath(dir string, now time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("newsletter_curated_%s.json", now.Format("20060102_150405")))
}
