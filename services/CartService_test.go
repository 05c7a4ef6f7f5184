package services

import (
	"testing"

	"labStore/entities"
)

type fakeCartRepo struct {
	carts  map[string][]entities.CartLine
	writes int
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: map[string][]entities.CartLine{}}
}

func (f *fakeCartRepo) GetCart(cartKey string) []entities.CartLine {
	lines, ok := f.carts[cartKey]
	if !ok {
		return []entities.CartLine{}
	}
	return lines
}

func (f *fakeCartRepo) SetCart(cartKey string, lines []entities.CartLine) error {
	f.carts[cartKey] = lines
	f.writes = f.writes + 1
	return nil
}

func TestAddCartItem(t *testing.T) {
	servo := entities.Product{Id: "A", Title: "Servo Motor", Price: 10.00}
	bracket := entities.Product{Id: "B", Title: "Bracket", Price: 5.50}
	board := entities.Product{Id: "C", Title: "Driver Board", Price: 19.99}

	t.Run("same product twice -> one line with quantity 2", func(t *testing.T) {
		repo := newFakeCartRepo()
		svc := NewCartService(repo)

		svc.AddCartItem("k", servo)
		svc.AddCartItem("k", servo)

		lines := repo.GetCart("k")
		if len(lines) != 1 {
			t.Fatalf("expected 1 line, got %d", len(lines))
		}
		if lines[0].Id != "A" || lines[0].Quantity != 2 {
			t.Fatalf("unexpected line: %+v", lines[0])
		}
	})

	t.Run("line count tracks distinct products, quantity tracks adds", func(t *testing.T) {
		repo := newFakeCartRepo()
		svc := NewCartService(repo)

		for _, p := range []entities.Product{servo, bracket, servo, board, bracket, servo} {
			svc.AddCartItem("k", p)
		}

		lines := repo.GetCart("k")
		if len(lines) != 3 {
			t.Fatalf("expected 3 lines, got %d", len(lines))
		}
		want := map[string]int{"A": 3, "B": 2, "C": 1}
		for _, line := range lines {
			if line.Quantity != want[line.Id] {
				t.Fatalf("line %s: expected quantity %d, got %d", line.Id, want[line.Id], line.Quantity)
			}
		}
	})

	t.Run("insertion order preserved, increment keeps position", func(t *testing.T) {
		repo := newFakeCartRepo()
		svc := NewCartService(repo)

		svc.AddCartItem("k", servo)
		svc.AddCartItem("k", bracket)
		svc.AddCartItem("k", board)
		svc.AddCartItem("k", bracket)

		lines := repo.GetCart("k")
		got := []string{lines[0].Id, lines[1].Id, lines[2].Id}
		if got[0] != "A" || got[1] != "B" || got[2] != "C" {
			t.Fatalf("unexpected order: %v", got)
		}
	})

	t.Run("snapshot fields come from the product at add-time", func(t *testing.T) {
		repo := newFakeCartRepo()
		svc := NewCartService(repo)

		svc.AddCartItem("k", servo)
		renamed := entities.Product{Id: "A", Title: "Servo Motor v2", Price: 12.00}
		svc.AddCartItem("k", renamed)

		lines := repo.GetCart("k")
		if lines[0].Title != "Servo Motor" || lines[0].Price != 10.00 {
			t.Fatalf("snapshot changed on increment: %+v", lines[0])
		}
	})

	t.Run("notification carries the product title", func(t *testing.T) {
		repo := newFakeCartRepo()
		svc := NewCartService(repo)

		note := svc.AddCartItem("k", bracket)
		if note.Type != "success" || note.Message != "Bracket added to cart" {
			t.Fatalf("unexpected notification: %+v", note)
		}
	})

	t.Run("every mutation persists", func(t *testing.T) {
		repo := newFakeCartRepo()
		svc := NewCartService(repo)

		svc.AddCartItem("k", servo)
		svc.AddCartItem("k", servo)
		svc.AddCartItem("k", bracket)

		if repo.writes != 3 {
			t.Fatalf("expected 3 writes, got %d", repo.writes)
		}
	})

	t.Run("carts under different keys stay separate", func(t *testing.T) {
		repo := newFakeCartRepo()
		svc := NewCartService(repo)

		svc.AddCartItem("k1", servo)
		svc.AddCartItem("k2", bracket)

		if len(repo.GetCart("k1")) != 1 || repo.GetCart("k1")[0].Id != "A" {
			t.Fatalf("unexpected k1 cart: %+v", repo.GetCart("k1"))
		}
		if len(repo.GetCart("k2")) != 1 || repo.GetCart("k2")[0].Id != "B" {
			t.Fatalf("unexpected k2 cart: %+v", repo.GetCart("k2"))
		}
	})
}

func TestSubtotal(t *testing.T) {
	t.Run("sum of price times quantity", func(t *testing.T) {
		lines := []entities.CartLine{
			{Id: "A", Price: 10.00, Quantity: 2},
			{Id: "B", Price: 5.50, Quantity: 1},
		}
		if got := Subtotal(lines); got != 25.50 {
			t.Fatalf("expected 25.50, got %v", got)
		}
	})

	t.Run("rounded to 2 decimal places", func(t *testing.T) {
		lines := []entities.CartLine{
			{Id: "A", Price: 0.1, Quantity: 3},
		}
		if got := Subtotal(lines); got != 0.3 {
			t.Fatalf("expected 0.3, got %v", got)
		}
	})

	t.Run("empty cart -> zero", func(t *testing.T) {
		if got := Subtotal(nil); got != 0 {
			t.Fatalf("expected 0, got %v", got)
		}
	})
}

func TestGetCart(t *testing.T) {
	repo := newFakeCartRepo()
	svc := NewCartService(repo)

	svc.AddCartItem("k", entities.Product{Id: "A", Title: "Servo Motor", Price: 10.00})
	svc.AddCartItem("k", entities.Product{Id: "A", Title: "Servo Motor", Price: 10.00})
	svc.AddCartItem("k", entities.Product{Id: "B", Title: "Bracket", Price: 5.50})

	view := svc.GetCart("k")
	if len(view.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(view.Items))
	}
	if view.Subtotal != 25.50 {
		t.Fatalf("expected subtotal 25.50, got %v", view.Subtotal)
	}
}
