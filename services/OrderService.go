package services

import (
	"log"

	"labStore/entities"
	"labStore/repository"
)

// checkout is pay-on-delivery with a fixed guest identity, there is no
// account system behind it.
var guestCustomer = entities.OrderCustomer{
	FullName:     "Guest Buyer",
	Email:        "guest@example.com",
	Phone:        "+10000000000",
	AddressLine1: "Pay on Delivery",
	City:         "N/A",
	State:        "N/A",
	PostalCode:   "00000",
	Country:      "N/A",
}

type OrderService struct {
	cr repository.CartRepository
	br repository.BackendRepository
}

func NewOrderService(cartRepo repository.CartRepository, backendRepo repository.BackendRepository) OrderService {
	return OrderService{
		cr: cartRepo,
		br: backendRepo,
	}
}

// Checkout submits the current cart as an order. On success the cart is
// replaced with an empty one and persisted; on failure it is left untouched
// so the user can retry. An empty cart still submits a zero-total order.
func (ors *OrderService) Checkout(cartKey string) (orderId string, err error) {
	lines := ors.cr.GetCart(cartKey)
	payload := BuildOrderPayload(lines)

	orderId, err = ors.br.CreateOrder(payload)
	if err != nil {
		return
	}

	if e := ors.cr.SetCart(cartKey, []entities.CartLine{}); e != nil {
		log.Printf("Checkout: clear cart: %v", e)
	}
	return
}

func BuildOrderPayload(lines []entities.CartLine) entities.OrderPayload {
	items := make([]entities.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, entities.OrderItem{
			ProductId: line.Id,
			Title:     line.Title,
			Price:     line.Price,
			Quantity:  line.Quantity,
		})
	}
	subtotal := Subtotal(lines)
	return entities.OrderPayload{
		Items:    items,
		Customer: guestCustomer,
		Subtotal: subtotal,
		Shipping: 0,
		Total:    subtotal,
	}
}
