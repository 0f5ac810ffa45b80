package transform

import (
	"fmt"
	"strings"

	"storefront/exporter/internal/domain"

	log "github.com/sirupsen/logrus"
)

type Option func(*Transformer)

// WithSKUGenerator replaces NewSKU, mostly for deterministic tests.
func WithSKUGenerator(generate func() string) Option {
	return func(t *Transformer) {
		t.newSKU = generate
	}
}

// Transformer turns storefront products into WooCommerce import records.
type Transformer struct {
	newSKU func() string
}

func NewTransformer(opts ...Option) *Transformer {
	t := &Transformer{newSKU: NewSKU}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Transform returns a single simple record, or a variable parent followed by
// one variation per variant when the product has more than one variant.
func (t *Transformer) Transform(product domain.Product, categoryName string) []domain.Record {
	base := baseRecord(product, categoryName)
	if len(product.Variants) > 1 {
		return t.variableRecords(product, base)
	}
	return []domain.Record{t.simpleRecord(product, base)}
}

func (t *Transformer) simpleRecord(product domain.Product, record domain.Record) domain.Record {
	record.Type = domain.ProductTypeSimple
	record.SKU = t.newSKU()
	record.Name = product.Title
	record.RegularPrice = firstPrice(product)
	record.Images = joinImages(product.Images)
	return record
}

func (t *Transformer) variableRecords(product domain.Product, base domain.Record) []domain.Record {
	records := make([]domain.Record, 0, len(product.Variants)+1)

	parent := base
	parent.Type = domain.ProductTypeVariable
	parent.SKU = t.newSKU()
	parent.Name = product.Title
	parent.Images = joinImages(product.Images)

	for i, option := range product.Options {
		if i >= domain.MaxAttributes {
			log.Debugf("Dropping option %q of %q: only %d attributes are exported", option.Name, product.Title, domain.MaxAttributes)
			continue
		}
		parent.Attributes[i].Name = option.Name
		parent.Attributes[i].Values = strings.Join(option.Values, "|")
	}
	records = append(records, parent)

	// Every variation carries the first variant's price.
	price := firstPrice(product)

	for _, variant := range product.Variants {
		record := base
		record.Type = domain.ProductTypeVariation
		record.SKU = t.newSKU()
		record.Parent = parent.SKU
		record.Name = fmt.Sprintf("%s - %s", product.Title, variant.Title)
		record.RegularPrice = price
		record.Images = joinImages(variant.Images)

		values := [domain.MaxAttributes]string{variant.Option1, variant.Option2, variant.Option3}
		for i := range record.Attributes {
			record.Attributes[i].Name = optionName(product.Options, i)
			record.Attributes[i].Values = values[i]
		}

		records = append(records, record)
	}

	return records
}

// baseRecord holds the cells shared by every record of one product.
func baseRecord(product domain.Product, categoryName string) domain.Record {
	record := domain.NewRecord(domain.ProductTypeSimple)
	record.Description = SanitizeHTML(product.BodyHTML)
	record.Categories = categoryName
	record.Tags = strings.Join(product.Tags, ", ")
	return record
}

func firstPrice(product domain.Product) string {
	if len(product.Variants) == 0 {
		return ""
	}
	return product.Variants[0].Price
}

func optionName(options []domain.Option, i int) string {
	if i < len(options) {
		return options[i].Name
	}
	return ""
}

func joinImages(urls []string) string {
	return strings.Join(urls, ", ")
}
