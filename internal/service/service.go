package service

import (
	"context"
	"errors"
	"fmt"

	"storefront/exporter/internal/client"
	"storefront/exporter/internal/domain"
	"storefront/exporter/internal/export"
	"storefront/exporter/internal/transform"

	log "github.com/sirupsen/logrus"
)

type Service struct {
	client      client.StorefrontClient
	transformer *transform.Transformer
	writer      export.Writer
	categories  []domain.Category
}

func NewService(
	client client.StorefrontClient,
	transformer *transform.Transformer,
	writer export.Writer,
	categories []domain.Category,
) *Service {
	return &Service{
		client:      client,
		transformer: transformer,
		writer:      writer,
		categories:  categories,
	}
}

// ExportAll exports every category in order. A failing category never stops
// the ones after it; all failures are returned together.
func (s *Service) ExportAll(ctx context.Context) error {
	var errs []error

	for _, category := range s.categories {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}

		log.Infof("🔄 Processing category: %s (%s)", category.Name, category.URL)

		path, err := s.ExportCategory(ctx, category)
		if err != nil {
			log.Errorf("❌ Failed to export category '%s': %v", category.Name, err)
			errs = append(errs, fmt.Errorf("category %q: %w", category.Name, err))
			if ctx.Err() != nil {
				break
			}
			continue
		}

		if path == "" {
			log.Warnf("⚠️ No products scraped for category '%s', nothing written", category.Name)
			continue
		}

		log.Infof("✅ All products for category: %s, saved to %s", category.Name, path)
	}

	return errors.Join(errs...)
}

// ExportCategory fetches, transforms and writes one category. It returns an
// empty path when the category yielded no records.
func (s *Service) ExportCategory(ctx context.Context, category domain.Category) (string, error) {
	records := make([]domain.Record, 0)

	for page := range s.client.Pages(ctx, category) {
		for _, product := range page.Products {
			records = append(records, s.transformer.Transform(product, category.Name)...)
		}

		log.Infof("📦 Scraped %d products for category '%s' from page %d", len(records), category.Name, page.Number)
	}

	// An interrupted category is never written, so the previous export stays intact.
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("export interrupted: %w", err)
	}

	if len(records) == 0 {
		return "", nil
	}

	path, err := s.writer.Write(category.Name, records)
	if err != nil {
		return "", fmt.Errorf("failed to write records: %w", err)
	}

	return path, nil
}
