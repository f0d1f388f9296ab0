package models

type CreateOrderInput struct {
	ChatID       int64
	CustomerName string
	Phone        string
	Address      string
	Postcode     string
	DeliveryType string // 'pickup' or 'delivery'
	Lines        []OrderLine
	ItemsTotal   int64 // cents
	DeliveryFee  int64 // cents
	Summary      string
}

// Order is a row from the orders table (for status updates and cards).
type Order struct {
	ID           int64
	ChatID       int64
	CustomerName string
	Phone        string
	Address      string
	Postcode     string
	DeliveryType string
	Status       string
	ItemsTotal   int64
	DeliveryFee  int64
	GrandTotal   int64
	Summary      string
}

type DailyStats struct {
	OrdersCount     int
	ItemsRevenue    int64
	DeliveryRevenue int64
	GrandRevenue    int64
	RejectedCount   int
}
