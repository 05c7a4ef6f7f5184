package repository

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"labStore/entities"
	"labStore/models"
)

// BackendRepository talks to the external product/order backend over HTTP.
type BackendRepository interface {
	ListProducts(filter models.QueryFilter) (items []entities.Product, err error)
	SeedProducts() (err error)
	CreateOrder(payload entities.OrderPayload) (orderId string, err error)
}

type BackendRepo struct {
	baseUrl string
	client  *http.Client
}

func NewBackendRepository(baseUrl string) (BackendRepository, error) {
	baseUrl = strings.TrimRight(strings.TrimSpace(baseUrl), "/")
	if baseUrl == "" {
		return nil, errors.New("baseUrl must be non-empty")
	}
	return &BackendRepo{
		baseUrl: baseUrl,
		client:  &http.Client{},
	}, nil
}

// ListProducts sends only the constrained dimensions of the filter. Absent
// parameters are treated as unbounded by the backend.
func (b *BackendRepo) ListProducts(filter models.QueryFilter) (items []entities.Product, err error) {
	params := url.Values{}
	if filter.Search != "" {
		params.Set("q", filter.Search)
	}
	if filter.Category != "" && filter.Category != entities.CategoryAll {
		params.Set("category", filter.Category)
	}
	if filter.MinPrice != nil {
		params.Set("min_price", strconv.FormatFloat(*filter.MinPrice, 'f', -1, 64))
	}
	if filter.MaxPrice != nil {
		params.Set("max_price", strconv.FormatFloat(*filter.MaxPrice, 'f', -1, 64))
	}

	reqUrl := b.baseUrl + "/api/products"
	if len(params) > 0 {
		reqUrl = reqUrl + "?" + params.Encode()
	}

	resp, e := b.client.Get(reqUrl)
	if e != nil {
		log.Printf("ListProducts: %v", e)
		err = models.ErrFetchFailed
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err = fmt.Errorf("%w: status %d", models.ErrFetchFailed, resp.StatusCode)
		return
	}

	list := models.ProductList{}
	if e := json.NewDecoder(resp.Body).Decode(&list); e != nil {
		log.Printf("ListProducts: decode: %v", e)
		err = models.ErrFetchFailed
		return
	}
	items = list.Items
	return
}

func (b *BackendRepo) SeedProducts() (err error) {
	resp, e := b.client.Get(b.baseUrl + "/api/products/sample-seed")
	if e != nil {
		log.Printf("SeedProducts: %v", e)
		err = fmt.Errorf("%w: failed to seed products", models.ErrFetchFailed)
		return
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err = fmt.Errorf("%w: failed to seed products: status %d", models.ErrFetchFailed, resp.StatusCode)
	}
	return
}

func (b *BackendRepo) CreateOrder(payload entities.OrderPayload) (orderId string, err error) {
	jsonData, e := json.Marshal(payload)
	if e != nil {
		log.Printf("CreateOrder: marshal: %v", e)
		err = models.ErrServerError
		return
	}

	resp, e := b.client.Post(b.baseUrl+"/api/orders", "application/json", bytes.NewReader(jsonData))
	if e != nil {
		log.Printf("CreateOrder: %v", e)
		err = models.ErrOrderFailed
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// the backend answers failures with a plain-text or JSON error body,
		// keep it so the user sees the reason
		body, _ := io.ReadAll(resp.Body)
		msg := strings.TrimSpace(string(body))
		if msg == "" {
			err = models.ErrOrderFailed
			return
		}
		err = fmt.Errorf("%w: %s", models.ErrOrderFailed, msg)
		return
	}

	ack := models.OrderAck{}
	if e := json.NewDecoder(resp.Body).Decode(&ack); e != nil {
		log.Printf("CreateOrder: decode: %v", e)
		err = models.ErrOrderFailed
		return
	}
	orderId = ack.OrderId
	return
}
