// Package api is the storefront's HTTP client for the EMALL catalog and
// auth endpoints. The catalog is a black box to the rest of the client:
// everything else works on the snapshots this package returns.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/PhornSunnich/emall-cambodia/client/shop"
)

const requestTimeout = 12 * time.Second

type Client struct {
	base           string
	http           *http.Client
	tokenSource    func() string
	onUnauthorized func()
}

func New(base string) *Client {
	return &Client{
		base: base,
		http: &http.Client{Timeout: requestTimeout},
	}
}

// SetTokenSource installs a bearer-token provider; every request carries
// its current value when non-empty.
func (c *Client) SetTokenSource(fn func() string) { c.tokenSource = fn }

// OnUnauthorized installs the 401 hook, typically the session's Logout.
func (c *Client) OnUnauthorized(fn func()) { c.onUnauthorized = fn }

// price accepts both the API's 2-decimal strings and plain numbers.
type price float64

func (p *price) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("api: bad price %q: %w", s, err)
		}
		*p = price(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = price(v)
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, out any) error {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.tokenSource != nil {
		if token := c.tokenSource(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return fmt.Errorf("api: unauthorized")
	}
	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil {
			if apiErr.Error != "" {
				return fmt.Errorf("api: %s", apiErr.Error)
			}
			if apiErr.Message != "" {
				return fmt.Errorf("api: %s", apiErr.Message)
			}
		}
		return fmt.Errorf("api: unexpected status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// --- Catalog ---

type productDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       price  `json:"price"`
	Image       string `json:"image"`
	Category    string `json:"category"`
}

func (d productDTO) toProduct() shop.Product {
	return shop.Product{
		ID:          d.ID,
		Name:        d.Name,
		Price:       float64(d.Price),
		Image:       d.Image,
		Category:    d.Category,
		Description: d.Description,
	}
}

type Pagination struct {
	Current int `json:"current"`
	Pages   int `json:"pages"`
	Total   int `json:"total"`
	Limit   int `json:"limit"`
}

type ProductQuery struct {
	Search   string
	Category string
	Page     int
	Limit    int
}

// Products fetches one catalog page.
func (c *Client) Products(ctx context.Context, q ProductQuery) ([]shop.Product, Pagination, error) {
	query := url.Values{}
	if q.Search != "" {
		query.Set("search", q.Search)
	}
	if q.Category != "" {
		query.Set("category", q.Category)
	}
	if q.Page > 0 {
		query.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		query.Set("limit", strconv.Itoa(q.Limit))
	}

	var resp struct {
		Products   []productDTO `json:"products"`
		Pagination Pagination   `json:"pagination"`
	}
	if err := c.get(ctx, "/api/products", query, &resp); err != nil {
		return nil, Pagination{}, err
	}

	products := make([]shop.Product, 0, len(resp.Products))
	for _, d := range resp.Products {
		products = append(products, d.toProduct())
	}
	return products, resp.Pagination, nil
}

// ProductByID fetches a single product snapshot.
func (c *Client) ProductByID(ctx context.Context, id int64) (shop.Product, error) {
	var dto productDTO
	if err := c.get(ctx, "/api/products/"+strconv.FormatInt(id, 10), nil, &dto); err != nil {
		return shop.Product{}, err
	}
	return dto.toProduct(), nil
}

type Brand struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

func (c *Client) Brands(ctx context.Context) ([]Brand, error) {
	var resp struct {
		Brands []Brand `json:"brands"`
	}
	if err := c.get(ctx, "/api/brands", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Brands, nil
}

type StoreListing struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
	CoverImage  string `json:"cover_image"`
	Rating      string `json:"rating"`
	TotalSales  int    `json:"total_sales"`
	Category    string `json:"category"`
}

func (c *Client) Stores(ctx context.Context, search, category string, page int) ([]StoreListing, Pagination, error) {
	query := url.Values{}
	if search != "" {
		query.Set("search", search)
	}
	if category != "" {
		query.Set("category", category)
	}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}

	var resp struct {
		Stores     []StoreListing `json:"stores"`
		Pagination Pagination     `json:"pagination"`
	}
	if err := c.get(ctx, "/api/stores", query, &resp); err != nil {
		return nil, Pagination{}, err
	}
	return resp.Stores, resp.Pagination, nil
}

type Property struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Location string `json:"location"`
	Type     string `json:"type"`
	Price    price  `json:"price"`
	Image    string `json:"image"`
	Featured bool   `json:"featured"`
}

func (c *Client) Properties(ctx context.Context, search, propType string) ([]Property, error) {
	query := url.Values{}
	if search != "" {
		query.Set("search", search)
	}
	if propType != "" {
		query.Set("type", propType)
	}

	var resp struct {
		Properties []Property `json:"properties"`
	}
	if err := c.get(ctx, "/api/real-estate", query, &resp); err != nil {
		return nil, err
	}
	return resp.Properties, nil
}
