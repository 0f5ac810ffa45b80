package client

import (
	"fmt"
	"strings"

	"storefront/exporter/internal/domain"

	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

// parseProductsPage decodes a products.json body. Only malformed JSON is an
// error; absent or mistyped fields decode to empty values.
func parseProductsPage(body string, pageNumber int) (*domain.ProductsPage, error) {
	if !gjson.Valid(body) {
		return nil, fmt.Errorf("response body is not valid JSON")
	}

	page := &domain.ProductsPage{
		Number:   pageNumber,
		Products: make([]domain.Product, 0),
	}

	for _, product := range arrayOf(gjson.Get(body, "products")) {
		page.Products = append(page.Products, parseProduct(product))
	}

	log.Debugf("Parsed page %d with %d products", page.Number, len(page.Products))
	return page, nil
}

func parseProduct(p gjson.Result) domain.Product {
	product := domain.Product{
		Title:    p.Get("title").String(),
		BodyHTML: p.Get("body_html").String(),
		Tags:     parseTags(p.Get("tags")),
		Variants: make([]domain.Variant, 0),
		Options:  make([]domain.Option, 0),
		Images:   parseImageURLs(p),
	}

	for _, v := range arrayOf(p.Get("variants")) {
		product.Variants = append(product.Variants, domain.Variant{
			Title:   v.Get("title").String(),
			Price:   v.Get("price").String(),
			Option1: v.Get("option1").String(),
			Option2: v.Get("option2").String(),
			Option3: v.Get("option3").String(),
			Images:  parseImageURLs(v),
		})
	}

	for _, o := range arrayOf(p.Get("options")) {
		product.Options = append(product.Options, domain.Option{
			Name:   o.Get("name").String(),
			Values: stringsOf(o.Get("values")),
		})
	}

	return product
}

// parseImageURLs prefers featured_image.src and falls back to every
// images[].src. Entries without a src keep their position as "".
func parseImageURLs(r gjson.Result) []string {
	if src := r.Get("featured_image.src").String(); src != "" {
		return []string{src}
	}

	images := arrayOf(r.Get("images"))
	urls := make([]string, 0, len(images))
	for _, image := range images {
		if image.Type == gjson.String {
			urls = append(urls, image.String())
			continue
		}
		urls = append(urls, image.Get("src").String())
	}
	return urls
}

// parseTags accepts both a JSON array and the legacy comma separated string.
func parseTags(r gjson.Result) []string {
	if r.Type != gjson.String {
		return stringsOf(r)
	}

	tags := make([]string, 0)
	for _, tag := range strings.Split(r.String(), ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func stringsOf(r gjson.Result) []string {
	items := arrayOf(r)
	values := make([]string, 0, len(items))
	for _, item := range items {
		values = append(values, item.String())
	}
	return values
}

func arrayOf(r gjson.Result) []gjson.Result {
	if !r.IsArray() {
		return nil
	}
	return r.Array()
}
