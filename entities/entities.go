package entities

// CategoryAll is a query-side wildcard, it never appears on a stored product.
const CategoryAll = "all"

var Categories = []string{"3d-printed", "laser-engraved", "electronics"}

type Product struct {
	Id          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price"`
	Category    string   `json:"category,omitempty"`
	Images      []string `json:"images,omitempty"`
	InStock     bool     `json:"in_stock"`
}

// CartLine keeps the title and price as snapshots taken at add-time,
// they do not follow later changes to the product.
type CartLine struct {
	Id       string  `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type CartView struct {
	Items    []CartLine `json:"items"`
	Subtotal float64    `json:"subtotal"`
}

type OrderItem struct {
	ProductId string  `json:"product_id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type OrderCustomer struct {
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"address_line1"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country"`
}

type OrderPayload struct {
	Items    []OrderItem   `json:"items"`
	Customer OrderCustomer `json:"customer"`
	Subtotal float64       `json:"subtotal"`
	Shipping float64       `json:"shipping"`
	Total    float64       `json:"total"`
}

type Notification struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type CartUpdateResponse struct {
	Cart         CartView     `json:"cart"`
	Notification Notification `json:"notification"`
}

type CheckoutResponse struct {
	OrderId      string       `json:"order_id"`
	Notification Notification `json:"notification"`
}
