package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type Client struct {
	ID uuid.UUID `json:"id"`

	Name        string `json:"name"`
	AddressLine string `json:"addressLine,omitempty"`
	State       string `json:"state,omitempty"`
	PostalCode  string `json:"postalCode,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Email       string `json:"email,omitempty"`
	TaxNumber   string `json:"taxNumber,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
