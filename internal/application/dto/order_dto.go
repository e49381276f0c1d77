package dto

import "time"

// CreateOrderRequest registro manual de un pedido entrante.
type CreateOrderRequest struct {
	CustomerName string `json:"customerName" validate:"required,min=1,max=200"`
	Phone        string `json:"phone" validate:"max=30"`
	Address      string `json:"address" validate:"max=300"`
	Channel      string `json:"channel" validate:"required,oneof=WEBSITE TELEGRAM PHONE OTHER"`
	Total        int64  `json:"total" validate:"required,min=1"`
	Note         string `json:"note" validate:"max=200"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customerName"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	Channel      string    `json:"channel"`
	Source       string    `json:"source,omitempty"`
	Status       string    `json:"status"`
	Total        int64     `json:"total"`
	Note         string    `json:"note,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
