package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"labStore/entities"
	"labStore/models"
	"labStore/services"

	"github.com/google/uuid"
)

type Handler struct {
	cts services.CatalogService
	cs  services.CartService
	ors services.OrderService
}

type HandlerParams struct {
	CatService services.CatalogService
	CrtService services.CartService
	OrdService services.OrderService
}

func NewHandler(params HandlerParams) *Handler {
	return &Handler{
		cts: params.CatService,
		cs:  params.CrtService,
		ors: params.OrdService,
	}
}

func (h *Handler) Welcome(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Welcome to the lab store!"))
}

// catalog

func (h *Handler) GetProducts(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}

	items, err := h.cts.FetchProducts(filter)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}

	jsonData, err2 := json.MarshalIndent(models.ProductList{Items: items}, "", "  ")
	if err2 != nil {
		log.Printf("Marshal err:%v", err2)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(jsonData)
}

func parseFilter(r *http.Request) (filter models.QueryFilter, err error) {
	query := r.URL.Query()
	filter.Search = query.Get("q")
	filter.Category = query.Get("category")
	if filter.Category != "" && filter.Category != entities.CategoryAll && !knownCategory(filter.Category) {
		err = models.ErrBadRequest
		return
	}
	if v := query.Get("min_price"); v != "" {
		p, e := strconv.ParseFloat(v, 64)
		if e != nil || p < 0 {
			err = models.ErrBadRequest
			return
		}
		filter.MinPrice = &p
	}
	if v := query.Get("max_price"); v != "" {
		p, e := strconv.ParseFloat(v, 64)
		if e != nil || p < 0 {
			err = models.ErrBadRequest
			return
		}
		filter.MaxPrice = &p
	}
	return
}

func knownCategory(category string) bool {
	for _, c := range entities.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// cart

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	cartKey := h.cartKey(w, r)
	resp := h.cs.GetCart(cartKey)

	jsonData, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		log.Printf("Marshal err:%v", err)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(jsonData)
}

func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	product := entities.Product{}
	err := json.NewDecoder(r.Body).Decode(&product)
	if err != nil {
		log.Printf("Unmarshal err:%v", err)
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if product.Id == "" || product.Price < 0 {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	cartKey := h.cartKey(w, r)
	note := h.cs.AddCartItem(cartKey, product)
	resp := entities.CartUpdateResponse{
		Cart:         h.cs.GetCart(cartKey),
		Notification: note,
	}

	jsonData, err2 := json.MarshalIndent(resp, "", "  ")
	if err2 != nil {
		log.Printf("Marshal err:%v", err2)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(jsonData)
}

// order

func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	cartKey := h.cartKey(w, r)
	orderId, err := h.ors.Checkout(cartKey)
	if err != nil {
		WriteErrorResponse(w, err)
		return
	}

	resp := entities.CheckoutResponse{
		OrderId: orderId,
		Notification: entities.Notification{
			Type:    "success",
			Message: "Order placed! Ref: " + orderId,
		},
	}
	jsonData, err2 := json.MarshalIndent(resp, "", "  ")
	if err2 != nil {
		log.Printf("Marshal err:%v", err2)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(jsonData)
}

// cartKey returns the cart session id cookie, issuing a fresh one when it is
// absent or not a uuid (cookie values reach the storage layer as keys).
func (h *Handler) cartKey(w http.ResponseWriter, r *http.Request) string {
	c, err := r.Cookie("cartSessionId")
	if err == nil {
		if _, e := uuid.Parse(c.Value); e == nil {
			return c.Value
		}
	}
	cartKey := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:    "cartSessionId",
		Value:   cartKey,
		Path:    "/",
		Expires: time.Now().Add(24 * time.Hour),
	})
	return cartKey
}

// middleware

func (h *Handler) ErrorHandleMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("panic occured: %v \n stacktrace: %v", rec, string(debug.Stack()))
				http.Error(w, "something went wrong, contact with service administration", http.StatusBadGateway)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func WriteErrorResponse(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrBadRequest):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, models.ErrFetchFailed):
		http.Error(w, err.Error(), http.StatusBadGateway)
	case errors.Is(err, models.ErrOrderFailed):
		http.Error(w, err.Error(), http.StatusBadGateway)
	case errors.Is(err, models.ErrServerError):
		http.Error(w, err.Error(), http.StatusInternalServerError)
	default:
		http.Error(w, "server error", http.StatusInternalServerError)
	}
}
