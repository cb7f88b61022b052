package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReconcileRemovesUnconfiguredDirectories(t *testing.T) {
	root := t.TempDir()

	for _, name := range []string{"Alpha", "Beta", "Gamma"} {
		dir := filepath.Join(root, name)
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatal(err)
		}
		writeEntry(t, dir, "2024-01-15 - Video [x1].mp4")
	}

	keep := map[string]bool{"Alpha": true, "Gamma": true}
	result := NewReconciler().Run(root, keep)

	if result.Removed != 1 {
		t.Errorf("Expected 1 removed entry, got %d", result.Removed)
	}
	if result.Failed != 0 {
		t.Errorf("Expected 0 failed entries, got %d", result.Failed)
	}
	if exists(t, filepath.Join(root, "Beta")) {
		t.Error("Expected Beta to be removed")
	}
	if !exists(t, filepath.Join(root, "Alpha")) {
		t.Error("Expected Alpha to be kept")
	}
	if !exists(t, filepath.Join(root, "Gamma")) {
		t.Error("Expected Gamma to be kept")
	}
}

func TestReconcileRemovesStrayFiles(t *testing.T) {
	root := t.TempDir()

	if err := os.MkdirAll(filepath.Join(root, "Channel"), 0755); err != nil {
		t.Fatal(err)
	}
	writeEntry(t, root, "notes.txt")

	result := NewReconciler().Run(root, map[string]bool{"Channel": true})

	if result.Removed != 1 {
		t.Errorf("Expected 1 removed entry, got %d", result.Removed)
	}
	if exists(t, filepath.Join(root, "notes.txt")) {
		t.Error("Expected stray file to be removed")
	}
	if !exists(t, filepath.Join(root, "Channel")) {
		t.Error("Expected configured directory to be kept")
	}
}

func TestReconcileEmptyKeepSet(t *testing.T) {
	root := t.TempDir()

	for _, name := range []string{"One", "Two"} {
		if err := os.MkdirAll(filepath.Join(root, name), 0755); err != nil {
			t.Fatal(err)
		}
	}

	result := NewReconciler().Run(root, map[string]bool{})

	if result.Removed != 2 {
		t.Errorf("Expected 2 removed entries, got %d", result.Removed)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected empty root, found %d entries", len(entries))
	}
}

func TestReconcileMissingRoot(t *testing.T) {
	result := NewReconciler().Run(filepath.Join(t.TempDir(), "missing"), map[string]bool{})

	if result.Removed != 0 || result.Failed != 0 {
		t.Errorf("Expected empty result for missing root, got %+v", result)
	}
}
