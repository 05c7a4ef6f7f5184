package models

import (
	"errors"

	"labStore/entities"
)

var ErrBadRequest = errors.New("bad request")
var ErrServerError = errors.New("server error")
var ErrFetchFailed = errors.New("failed to load products")
var ErrOrderFailed = errors.New("failed to place order")

// QueryFilter is the parameter set for catalog fetches. Zero values mean
// unconstrained: empty search, empty or "all" category, nil price bounds.
type QueryFilter struct {
	Search   string
	Category string
	MinPrice *float64
	MaxPrice *float64
}

type ProductList struct {
	Items []entities.Product `json:"items"`
}

type OrderAck struct {
	OrderId string `json:"order_id"`
}
