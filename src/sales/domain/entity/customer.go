package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer representa un cliente registrado
// Los campos de contacto son opcionales (NULL en la base)
type Customer struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Document  *string   `json:"document,omitempty" db:"document"`
	Phone     *string   `json:"phone,omitempty" db:"phone"`
	Address   *string   `json:"address,omitempty" db:"address"`
	Active    bool      `json:"active" db:"active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// NewCustomer crea un nuevo cliente validando el nombre
func NewCustomer(name string, document, phone, address *string, createdAt time.Time) (*Customer, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	if len(name) < 2 {
		return nil, ErrNameTooShort
	}

	return &Customer{
		ID:        uuid.New(),
		Name:      name,
		Document:  document,
		Phone:     phone,
		Address:   address,
		Active:    true,
		CreatedAt: createdAt,
	}, nil
}
