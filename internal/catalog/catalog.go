// Package catalog provides the product data the recommendation pipeline runs
// against: a built-in static dataset, an optional PostgreSQL source, and an
// optional best-effort marketplace augmentation source.
package catalog

import (
	"context"

	"core/internal/model"

	"go.uber.org/zap"
)

// Provider exposes a tabular read of all products in the fixed schema.
type Provider interface {
	Products(ctx context.Context) ([]model.Product, error)
}

// Load fetches the catalog from the provider, degrading to the static
// dataset when the provider is absent or fails. Load never returns an error;
// a broken data source must not take the assistant down.
func Load(ctx context.Context, provider Provider, log *zap.Logger) []model.Product {
	if provider == nil {
		log.Info("no catalog database configured, using built-in dataset",
			zap.Int("products", len(staticProducts)))
		return Static()
	}

	products, err := provider.Products(ctx)
	if err != nil {
		log.Warn("catalog load failed, falling back to built-in dataset", zap.Error(err))
		return Static()
	}
	if len(products) == 0 {
		log.Warn("catalog database is empty, falling back to built-in dataset")
		return Static()
	}

	log.Info("catalog loaded", zap.Int("products", len(products)))
	return products
}
