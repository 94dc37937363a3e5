package models

import "time"

// OrderSide is the direction of an order.
type OrderSide string

const (
	OrderSideBuy  OrderSide = "buy"
	OrderSideSell OrderSide = "sell"
)

// OrderType is the execution style of an order.
type OrderType string

const (
	OrderTypeMarket OrderType = "market"
	OrderTypeLimit  OrderType = "limit"
)

// OrderStatus is the lifecycle state of an order: open, then one of
// filled, partially_filled or canceled.
type OrderStatus string

const (
	OrderStatusOpen            OrderStatus = "open"
	OrderStatusFilled          OrderStatus = "filled"
	OrderStatusPartiallyFilled OrderStatus = "partially_filled"
	OrderStatusCanceled        OrderStatus = "canceled"
)

// Order is an entry in the mock order history.
type Order struct {
	ID        string      `json:"id"`
	Pair      string      `json:"pair"`
	Type      OrderSide   `json:"type"`
	OrderType OrderType   `json:"orderType"`
	Price     float64     `json:"price"`
	Amount    float64     `json:"amount"`
	Total     float64     `json:"total"`
	Status    OrderStatus `json:"status"`
	Date      time.Time   `json:"date"`
}
