package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"storefront/exporter/internal/domain"

	log "github.com/sirupsen/logrus"
)

type Writer interface {
	// Write stores all records of one category and returns the file path.
	Write(categoryName string, records []domain.Record) (string, error)
}

// CSVWriter writes one WooCommerce import file per category.
type CSVWriter struct {
	outputDir string
}

func NewCSVWriter(outputDir string) *CSVWriter {
	return &CSVWriter{outputDir: outputDir}
}

// FileName maps a category to its file name, e.g. "Robe Fleurie" to
// "robe_fleurie_products.csv".
func FileName(categoryName string) string {
	name := strings.NewReplacer(" ", "_", "/", "_").Replace(categoryName)
	return strings.ToLower(name) + "_products.csv"
}

func (w *CSVWriter) Write(categoryName string, records []domain.Record) (string, error) {
	if err := os.MkdirAll(w.outputDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", w.outputDir, err)
	}

	path := filepath.Join(w.outputDir, FileName(categoryName))
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create CSV file %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(domain.Columns); err != nil {
		return "", fmt.Errorf("failed to write CSV header to %s: %w", path, err)
	}

	for _, record := range records {
		if err := writer.Write(record.Values()); err != nil {
			return "", fmt.Errorf("failed to write record %s to %s: %w", record.SKU, path, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("failed to flush CSV file %s: %w", path, err)
	}

	if err := file.Close(); err != nil {
		return "", fmt.Errorf("failed to close CSV file %s: %w", path, err)
	}

	log.WithFields(log.Fields{
		"category": categoryName,
		"file":     path,
		"count":    len(records),
	}).Debug("CSV file written")

	return path, nil
}
