package catalog

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"core/internal/model"

	"go.uber.org/zap"
	"golang.org/x/net/html"
)

// Marketplace is an optional augmentation source that pulls extra candidate
// products from an external listing site. It is strictly best-effort: every
// failure (network, timeout, markup changes) degrades to an empty result and
// is only logged, never returned to the caller.
type Marketplace struct {
	baseURL    string
	client     *http.Client
	maxResults int
	log        *zap.Logger
}

// marketUSDToGBP is the rough conversion applied to marketplace prices.
const marketUSDToGBP = 0.80

var priceDigits = regexp.MustCompile(`[^\d.]`)

// NewMarketplace creates a marketplace source with its own request timeout.
func NewMarketplace(baseURL string, timeout time.Duration, maxResults int, log *zap.Logger) *Marketplace {
	return &Marketplace{
		baseURL:    baseURL,
		client:     &http.Client{Timeout: timeout},
		maxResults: maxResults,
		log:        log,
	}
}

// Search fetches listings for the requirements' installation categories and
// conforms them to the product schema. Rows above the max price are dropped.
func (m *Marketplace) Search(ctx context.Context, req *model.Requirements) []model.Product {
	searchTerm := "water filter"
	if len(req.Installation) > 0 {
		searchTerm += " " + strings.ReplaceAll(strings.Join(req.Installation, " "), "_", " ")
	}

	endpoint := m.baseURL + "?fsb=y&IndexArea=product_en&keywords=" + url.QueryEscape(searchTerm)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		m.log.Warn("marketplace request build failed", zap.Error(err))
		return nil
	}

	resp, err := m.client.Do(httpReq)
	if err != nil {
		m.log.Warn("marketplace fetch failed", zap.Error(err))
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		m.log.Warn("marketplace returned non-200", zap.Int("status", resp.StatusCode))
		return nil
	}

	listings, err := parseListings(resp.Body, m.maxResults)
	if err != nil {
		m.log.Warn("marketplace parse failed", zap.Error(err))
		return nil
	}

	products := make([]model.Product, 0, len(listings))
	for _, l := range listings {
		priceGBP := l.priceUSD * marketUSDToGBP
		if req.MaxPrice > 0 && priceGBP > req.MaxPrice {
			continue
		}
		products = append(products, conform(l.name, priceGBP, req))
	}

	m.log.Info("marketplace augmentation fetched",
		zap.Int("listings", len(listings)), zap.Int("kept", len(products)))
	return products
}

// listing is one raw row scraped from the marketplace page.
type listing struct {
	name     string
	priceUSD float64
}

// parseListings walks the result page for product blocks, keeping rows where
// both a title and a parseable price are present.
func parseListings(r io.Reader, maxResults int) ([]listing, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var listings []listing
	for _, block := range findAll(doc, func(n *html.Node) bool {
		return n.Type == html.ElementNode && hasClass(n, "search-result-data")
	}) {
		if len(listings) >= maxResults {
			break
		}
		name := strings.TrimSpace(textOfClass(block, "title"))
		if name == "" {
			continue
		}
		priceText := priceDigits.ReplaceAllString(textOfClass(block, "price-num"), "")
		price, err := strconv.ParseFloat(priceText, 64)
		if err != nil {
			continue
		}
		listings = append(listings, listing{name: name, priceUSD: price})
	}
	return listings, nil
}

// conform maps a scraped listing onto the fixed product schema. Removal
// ratings are taken from the requirements that produced the search, the way
// the listing was matched; the remaining metrics get conservative defaults.
func conform(name string, priceGBP float64, req *model.Requirements) model.Product {
	installation := model.InstallPortable
	if len(req.Installation) > 0 {
		installation = req.Installation[0]
	}
	remin := "no"
	if req.Remineralization {
		remin = "yes"
	}
	eco := 3
	if req.EcoFriendly {
		eco = 4
	}
	return model.Product{
		Name:                 name,
		Type:                 installation,
		Installation:         installation,
		PriceGBP:             priceGBP,
		FiltrationType:       "activated_carbon",
		CapacityLiters:       10,
		Remineralization:     remin,
		RemovesChlorine:      requestedRating(req.RemoveChlorine),
		RemovesLead:          requestedRating(req.RemoveLead),
		RemovesFluoride:      requestedRating(req.RemoveFluoride),
		RemovesBacteria:      requestedRating(req.RemoveBacteria),
		FilterLifespanMonths: 6,
		MaintenanceCostGBP:   50,
		WarrantyYears:        1,
		EcoRating:            eco,
	}
}

func requestedRating(requested bool) model.RemovalRating {
	if requested {
		return model.RemovalYes
	}
	return model.RemovalNo
}

// HTML helpers

func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key == "class" && strings.Contains(attr.Val, class) {
			return true
		}
	}
	return false
}

func findAll(n *html.Node, pred func(*html.Node) bool) []*html.Node {
	var found []*html.Node
	if pred(n) {
		found = append(found, n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		found = append(found, findAll(c, pred)...)
	}
	return found
}

func textOfClass(n *html.Node, class string) string {
	nodes := findAll(n, func(c *html.Node) bool {
		return c.Type == html.ElementNode && hasClass(c, class)
	})
	if len(nodes) == 0 {
		return ""
	}
	return textContent(nodes[0])
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textContent(c))
	}
	return sb.String()
}
