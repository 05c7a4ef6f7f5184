package repository

import (
	"encoding/json"
	"errors"
	"log"

	"labStore/entities"
	"labStore/models"
)

// CartRepository persists carts as a JSON array of lines, the same format the
// browser client kept under its single storage key.
type CartRepository interface {
	GetCart(cartKey string) (lines []entities.CartLine)
	SetCart(cartKey string, lines []entities.CartLine) (err error)
}

type CartRepo struct {
	storage CartStorage
}

func NewCartRepository(storage CartStorage) (CartRepository, error) {
	if storage == nil {
		return nil, errors.New("storage must be non-nil")
	}
	return &CartRepo{
		storage: storage,
	}, nil
}

// GetCart never fails: a missing, unreadable or malformed stored cart comes
// back as an empty one.
func (c *CartRepo) GetCart(cartKey string) (lines []entities.CartLine) {
	lines = []entities.CartLine{}
	data, found, e := c.storage.Read(cartKey)
	if e != nil {
		log.Printf("GetCart: %v", e)
		return
	}
	if !found {
		return
	}
	if e := json.Unmarshal(data, &lines); e != nil {
		log.Printf("GetCart: corrupt cart data, starting empty: %v", e)
		lines = []entities.CartLine{}
	}
	return
}

func (c *CartRepo) SetCart(cartKey string, lines []entities.CartLine) (err error) {
	if lines == nil {
		lines = []entities.CartLine{}
	}
	jsonData, e := json.Marshal(lines)
	if e != nil {
		log.Printf("SetCart: marshal: %v", e)
		err = models.ErrServerError
		return
	}
	err = c.storage.Write(cartKey, jsonData)
	return
}
