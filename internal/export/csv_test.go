package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"storefront/exporter/internal/domain"
)

func TestFileName(t *testing.T) {
	cases := map[string]string{
		"Robe Fleurie":       "robe_fleurie_products.csv",
		"Robe Fleurie Femme": "robe_fleurie_femme_products.csv",
		"Tops/Shirts":        "tops_shirts_products.csv",
		"SALE":               "sale_products.csv",
	}

	for in, want := range cases {
		if got := FileName(in); got != want {
			t.Errorf("FileName(%q) = %q, want %q", in, got, want)
		}
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open %s: %v", path, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("failed to read CSV: %v", err)
	}
	return rows
}

func TestWriteRoundTrip(t *testing.T) {
	parent := domain.NewRecord(domain.ProductTypeVariable)
	parent.SKU = "a1b2c"
	parent.Name = `Robe "Été", fleurie`
	parent.Description = "<p>Ligne 1\nLigne 2</p>"
	parent.Categories = "Robe Fleurie"
	parent.Tags = "summer, floral"
	parent.Attributes[0] = domain.Attribute{Name: "Size", Values: "S|M"}
	parent.Images = "a.jpg, b.jpg"

	variation := domain.NewRecord(domain.ProductTypeVariation)
	variation.SKU = "d3e4f"
	variation.Parent = parent.SKU
	variation.Name = `Robe "Été", fleurie - S`
	variation.RegularPrice = "29.99"
	variation.Attributes[0] = domain.Attribute{Name: "Size", Values: "S"}

	records := []domain.Record{parent, variation}

	dir := filepath.Join(t.TempDir(), "nested", "data")
	w := NewCSVWriter(dir)

	path, err := w.Write("Robe Fleurie", records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := filepath.Join(dir, "robe_fleurie_products.csv"); path != want {
		t.Errorf("expected path %s, got %s", want, path)
	}

	rows := readCSV(t, path)
	if len(rows) != len(records)+1 {
		t.Fatalf("expected %d rows, got %d", len(records)+1, len(rows))
	}
	if !reflect.DeepEqual(rows[0], domain.Columns) {
		t.Errorf("unexpected header: %v", rows[0])
	}

	for i, record := range records {
		row := rows[i+1]
		for j, column := range rows[0] {
			if row[j] != record.Field(column) {
				t.Errorf("row %d column %q: got %q, want %q", i+1, column, row[j], record.Field(column))
			}
		}
	}

	if rows[2][0] != "" {
		t.Errorf("expected empty ID cell, got %q", rows[2][0])
	}
}

func TestWriteHeaderOnly(t *testing.T) {
	dir := t.TempDir()

	path, err := NewCSVWriter(dir).Write("Empty", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows := readCSV(t, path); len(rows) != 1 {
		t.Errorf("expected only header row, got %d rows", len(rows))
	}
}

func TestWriteOverwritesPreviousRun(t *testing.T) {
	dir := t.TempDir()
	w := NewCSVWriter(dir)

	first := domain.NewRecord(domain.ProductTypeSimple)
	first.SKU = "11111"
	second := domain.NewRecord(domain.ProductTypeSimple)
	second.SKU = "22222"

	if _, err := w.Write("Dresses", []domain.Record{first, second}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	path, err := w.Write("Dresses", []domain.Record{second})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows := readCSV(t, path)
	if len(rows) != 2 || rows[1][2] != "22222" {
		t.Errorf("expected file to hold only the latest run, got %v", rows)
	}
}

func TestWriteFailsWhenOutputDirIsAFile(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "data")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("failed to create blocker file: %v", err)
	}

	if _, err := NewCSVWriter(blocker).Write("Robe Fleurie", nil); err == nil {
		t.Fatal("expected error when output dir is a regular file")
	}
}
