package entity

import "time"

// Canales por los que entra un pedido.
const (
	ChannelWebsite  = "WEBSITE"
	ChannelTelegram = "TELEGRAM"
	ChannelPhone    = "PHONE"
	ChannelOther    = "OTHER"
)

// Estados del ciclo de vida de un pedido.
const (
	OrderNew        = "NEW"
	OrderAccepted   = "ACCEPTED"
	OrderInDelivery = "IN_DELIVERY"
	OrderDelivered  = "DELIVERED"
	OrderCanceled   = "CANCELED"
)

// Order pedido entrante (website, Telegram o registro manual).
// Total en so'm; Source identifica el origen automático ("WEBSITE" para
// pedidos que llegan desde la tienda online).
type Order struct {
	ID           string
	CustomerName string
	Phone        string
	Address      string
	Channel      string // WEBSITE | TELEGRAM | PHONE | OTHER
	Source       string
	Status       string // NEW | ACCEPTED | IN_DELIVERY | DELIVERED | CANCELED
	Total        int64
	Note         string
	CouponCode   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
