// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/meeting-report/pkg/types"
)

const exportLimit = 100000

// ExportYAML writes every recorded delivery to path as YAML.
func (l *Ledger) ExportYAML(ctx context.Context, path string) error {
	entries, err := l.exportEntries(ctx)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ExportJSON writes every recorded delivery to path as indented JSON.
func (l *Ledger) ExportJSON(ctx context.Context, path string) error {
	entries, err := l.exportEntries(ctx)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func (l *Ledger) exportEntries(ctx context.Context) ([]types.Delivery, error) {
	entries, err := l.List(ctx, ListOptions{Limit: exportLimit})
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}
	if entries == nil {
		entries = []types.Delivery{}
	}
	return entries, nil
}
