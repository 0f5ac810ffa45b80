package client

import (
	"context"
	"fmt"
	"iter"
	"strconv"
	"time"

	"storefront/exporter/internal/config"
	"storefront/exporter/internal/domain"
	"storefront/exporter/internal/proxy"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"resty.dev/v3"
)

type StorefrontClient interface {
	GetProductsPage(ctx context.Context, collectionURL string, pageNumber int) (*domain.ProductsPage, error)
	// Pages yields the non-empty pages of a category, starting at page 1.
	// The sequence ends at the first empty page or the first failed request.
	Pages(ctx context.Context, category domain.Category) iter.Seq[*domain.ProductsPage]
	Close() error
}

type storefrontClient struct {
	rl            ratelimit.Limiter
	config        config.StorefrontConfig
	httpClient    *resty.Client
	proxySupplier proxy.ProxySupplier
}

func NewStorefrontClient(cfg config.StorefrontConfig, proxySupplier proxy.ProxySupplier) StorefrontClient {
	client := resty.New().
		SetTimeout(time.Duration(cfg.Timeout)*time.Second).
		SetRetryCount(0).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Accept", "application/json")

	rl := ratelimit.NewUnlimited()
	if cfg.MaxRequestsPerSecond > 0 {
		rl = ratelimit.New(cfg.MaxRequestsPerSecond)
	}

	return &storefrontClient{
		rl:            rl,
		config:        cfg,
		httpClient:    client,
		proxySupplier: proxySupplier,
	}
}

func (c *storefrontClient) GetProductsPage(ctx context.Context, collectionURL string, pageNumber int) (*domain.ProductsPage, error) {
	body, err := c.fetchJSON(ctx, collectionURL, pageNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products page %d: %w", pageNumber, err)
	}

	page, err := parseProductsPage(body, pageNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to parse products page %d: %w", pageNumber, err)
	}

	return page, nil
}

func (c *storefrontClient) Pages(ctx context.Context, category domain.Category) iter.Seq[*domain.ProductsPage] {
	return func(yield func(*domain.ProductsPage) bool) {
		for pageNumber := 1; ; pageNumber++ {
			page, err := c.GetProductsPage(ctx, category.URL, pageNumber)
			if err != nil {
				log.Errorf("❌ Error fetching data for category '%s', page %d: %v", category.Name, pageNumber, err)
				return
			}

			if len(page.Products) == 0 {
				log.Infof("🏁 Reached the end of products for category '%s'", category.Name)
				return
			}

			if !yield(page) {
				return
			}
		}
	}
}

func (c *storefrontClient) Close() error {
	return c.httpClient.Close()
}

func (c *storefrontClient) fetchJSON(ctx context.Context, collectionURL string, pageNumber int) (string, error) {
	if c.proxySupplier != nil {
		if proxyURL := c.proxySupplier.Get(); proxyURL != "" {
			c.httpClient.SetProxy(proxyURL)
			log.Debugf("🔗 Using proxy %s for page %d", proxyURL, pageNumber)
		}
	}

	c.rl.Take()

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"page":  strconv.Itoa(pageNumber),
			"limit": strconv.Itoa(c.config.PageLimit),
		}).
		Get(collectionURL)

	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("request cancelled: %w", ctx.Err())
		}
		return "", fmt.Errorf("failed to fetch URL: %w", err)
	}

	if !resp.IsSuccess() {
		return "", fmt.Errorf("HTTP error: %s", resp.Status())
	}

	return resp.String(), nil
}
