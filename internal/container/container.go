package container

import (
	"context"
	"time"

	"storefront/exporter/internal/client"
	"storefront/exporter/internal/config"
	"storefront/exporter/internal/export"
	"storefront/exporter/internal/proxy"
	"storefront/exporter/internal/service"
	"storefront/exporter/internal/transform"

	log "github.com/sirupsen/logrus"
)

// Container holds all initialized components
type Container struct {
	Config  *config.Config
	Client  client.StorefrontClient
	Service *service.Service
}

// New creates a new container with all dependencies initialized
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	container := &Container{
		Config: cfg,
	}

	categories := cfg.CategoryList()

	// Proxies are checked against the first collection so dead ones never
	// reach the fetch loop.
	var testURL string
	if len(categories) > 0 {
		testURL = categories[0].URL
	}
	proxySupplier := proxy.NewProxySupplier(ctx, cfg.Storefront.Proxies, testURL,
		time.Duration(cfg.Storefront.Timeout)*time.Second)

	storefrontClient := client.NewStorefrontClient(cfg.Storefront, proxySupplier)
	container.Client = storefrontClient

	container.Service = service.NewService(
		storefrontClient,
		transform.NewTransformer(),
		export.NewCSVWriter(cfg.Export.OutputDir),
		categories,
	)

	log.Infof("✅ Container initialized with %d categories, %d working proxies, output to %s",
		len(categories), proxySupplier.Len(), cfg.Export.OutputDir)

	return container, nil
}

// Run exports every configured category
func (c *Container) Run(ctx context.Context) error {
	return c.Service.ExportAll(ctx)
}

// Close performs cleanup when shutting down
func (c *Container) Close() error {
	log.Info("Shutting down container...")

	if err := c.Client.Close(); err != nil {
		log.Warnf("Failed to close storefront client: %v", err)
		return err
	}

	log.Info("Container shut down successfully")
	return nil
}
