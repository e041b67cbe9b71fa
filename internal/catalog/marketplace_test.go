package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"core/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const listingPage = `<html><body>
<div class="organic-list">
  <div class="search-result-data card">
    <h2 class="title">Portable Carbon Filter Bottle</h2>
    <span class="price-num">US $25.00</span>
  </div>
  <div class="search-result-data card">
    <h2 class="title">Under Sink RO System</h2>
    <span class="price-num">$120.50</span>
  </div>
  <div class="search-result-data card">
    <h2 class="title">No Price Listed</h2>
    <span class="price-num">contact seller</span>
  </div>
  <div class="search-result-data card">
    <span class="price-num">$40.00</span>
  </div>
  <div class="search-result-data card">
    <h2 class="title">Premium Whole House Unit</h2>
    <span class="price-num">$900</span>
  </div>
</div>
</body></html>`

func TestParseListings(t *testing.T) {
	listings, err := parseListings(strings.NewReader(listingPage), 10)
	require.NoError(t, err)

	// rows without a title or a parseable price are skipped
	require.Len(t, listings, 3)
	assert.Equal(t, "Portable Carbon Filter Bottle", listings[0].name)
	assert.Equal(t, 25.0, listings[0].priceUSD)
	assert.Equal(t, "Under Sink RO System", listings[1].name)
	assert.Equal(t, 120.5, listings[1].priceUSD)
	assert.Equal(t, "Premium Whole House Unit", listings[2].name)
}

func TestParseListingsMaxResults(t *testing.T) {
	listings, err := parseListings(strings.NewReader(listingPage), 1)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "Portable Carbon Filter Bottle", listings[0].name)
}

func TestMarketplaceSearch(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("keywords")
		_, _ = w.Write([]byte(listingPage))
	}))
	defer srv.Close()

	m := NewMarketplace(srv.URL, 5*time.Second, 10, zap.NewNop())
	req := &model.Requirements{
		Installation: []string{model.InstallUnderSink},
		MaxPrice:     200,
		RemoveLead:   true,
	}

	products := m.Search(context.Background(), req)

	assert.Equal(t, "water filter under sink", gotQuery)
	// $900 converts to £720 and is dropped by the price cap
	require.Len(t, products, 2)
	assert.Equal(t, "Portable Carbon Filter Bottle", products[0].Name)
	assert.InDelta(t, 20, products[0].PriceGBP, 1e-9)
	assert.Equal(t, model.InstallUnderSink, products[0].Installation)
	assert.Equal(t, model.RemovalYes, products[0].RemovesLead)
	assert.Equal(t, model.RemovalNo, products[0].RemovesChlorine)
	assert.InDelta(t, 96.4, products[1].PriceGBP, 1e-9)
}

func TestMarketplaceSearchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	m := NewMarketplace(srv.URL, 5*time.Second, 10, zap.NewNop())
	assert.Nil(t, m.Search(context.Background(), &model.Requirements{}))
}

func TestMarketplaceSearchUnreachable(t *testing.T) {
	m := NewMarketplace("http://127.0.0.1:1", time.Second, 10, zap.NewNop())
	assert.Nil(t, m.Search(context.Background(), &model.Requirements{}))
}
