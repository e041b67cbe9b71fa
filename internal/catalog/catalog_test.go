package catalog

import (
	"context"
	"errors"
	"testing"

	"core/internal/model"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeProvider struct {
	products []model.Product
	err      error
}

func (f *fakeProvider) Products(_ context.Context) ([]model.Product, error) {
	return f.products, f.err
}

func TestLoadWithoutProvider(t *testing.T) {
	products := Load(context.Background(), nil, zap.NewNop())
	assert.Equal(t, Static(), products)
}

func TestLoadProviderError(t *testing.T) {
	provider := &fakeProvider{err: errors.New("connection refused")}
	products := Load(context.Background(), provider, zap.NewNop())
	assert.Equal(t, Static(), products)
}

func TestLoadProviderEmpty(t *testing.T) {
	provider := &fakeProvider{}
	products := Load(context.Background(), provider, zap.NewNop())
	assert.Equal(t, Static(), products)
}

func TestLoadProviderData(t *testing.T) {
	want := []model.Product{{Name: "DB Filter", Installation: model.InstallCountertop, PriceGBP: 10}}
	provider := &fakeProvider{products: want}
	products := Load(context.Background(), provider, zap.NewNop())
	assert.Equal(t, want, products)
}

func TestStaticReturnsCopy(t *testing.T) {
	a := Static()
	a[0].Name = "mutated"
	assert.NotEqual(t, "mutated", Static()[0].Name)
}
