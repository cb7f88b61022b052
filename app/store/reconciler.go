package store

import (
	"log/slog"
	"os"
	"path/filepath"
)

// Reconciler aligns the store root with the current configuration by deleting
// every top-level entry whose name is not in the keep set, recursively for
// directories. Stray files directly under the root are removed the same way.
type Reconciler struct{}

func NewReconciler() *Reconciler {
	return &Reconciler{}
}

func (r *Reconciler) Run(root string, keep map[string]bool) ReconcileResult {
	entries, err := os.ReadDir(root)
	if err != nil {
		slog.Error("Failed to list output directory", "dir", root, "error", err)
		return ReconcileResult{}
	}

	var result ReconcileResult
	for _, entry := range entries {
		name := entry.Name()
		if keep[name] {
			continue
		}

		full := filepath.Join(root, name)
		slog.Info("Removing unconfigured entry", "path", full)

		if err := os.RemoveAll(full); err != nil {
			slog.Error("Failed to remove entry", "path", full, "error", err)
			result.Failed++
			continue
		}
		result.Removed++
	}

	return result
}
