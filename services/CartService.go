package services

import (
	"log"
	"sync"

	"labStore/entities"
	"labStore/repository"

	"github.com/shopspring/decimal"
)

type CartService struct {
	cr repository.CartRepository
	mu *sync.Mutex
}

func NewCartService(cartRepo repository.CartRepository) CartService {
	return CartService{
		cr: cartRepo,
		mu: &sync.Mutex{},
	}
}

func (cs *CartService) GetCart(cartKey string) (resp entities.CartView) {
	lines := cs.cr.GetCart(cartKey)
	resp = entities.CartView{
		Items:    lines,
		Subtotal: Subtotal(lines),
	}
	return
}

// AddCartItem appends a new line with quantity 1, or bumps the quantity of an
// existing line in place. The cart is persisted before the call returns.
func (cs *CartService) AddCartItem(cartKey string, product entities.Product) (note entities.Notification) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	lines := cs.cr.GetCart(cartKey)
	found := false
	for i := range lines {
		if lines[i].Id == product.Id {
			lines[i].Quantity = lines[i].Quantity + 1
			found = true
			break
		}
	}
	if !found {
		lines = append(lines, entities.CartLine{
			Id:       product.Id,
			Title:    product.Title,
			Price:    product.Price,
			Quantity: 1,
		})
	}
	if err := cs.cr.SetCart(cartKey, lines); err != nil {
		log.Printf("AddCartItem: %v", err)
	}
	note = entities.Notification{
		Type:    "success",
		Message: product.Title + " added to cart",
	}
	return
}

// Subtotal is the sum of price times quantity over all lines, rounded to
// 2 decimal places.
func Subtotal(lines []entities.CartLine) float64 {
	sum := decimal.Zero
	for _, line := range lines {
		price := decimal.NewFromFloat(line.Price)
		sum = sum.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	res, _ := sum.Round(2).Float64()
	return res
}
