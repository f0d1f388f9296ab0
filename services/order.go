package services

import (
	"context"
	"encoding/json"
	"fmt"

	"pizzeria-telegram/db"
	"pizzeria-telegram/models"

	"github.com/shopspring/decimal"
)

// DeliveryZone is one row of the fixed zone table: a postcode area, its
// delivery fee and the minimum order value for delivery.
type DeliveryZone struct {
	Postcode string
	Area     string
	Fee      decimal.Decimal
	MinOrder decimal.Decimal
}

var deliveryZones = []DeliveryZone{
	{"67433", "Neustadt Kernstadt", decimal.Zero, decimal.New(1000, -2)},
	{"67434", "Hambach / Diedesfeld", decimal.New(150, -2), decimal.New(1500, -2)},
	{"67435", "Lachen-Speyerdorf", decimal.New(150, -2), decimal.New(1500, -2)},
	{"67454", "Haßloch", decimal.New(250, -2), decimal.New(2000, -2)},
	{"67487", "Maikammer", decimal.New(250, -2), decimal.New(2000, -2)},
}

// ZoneForPostcode looks a postcode up in the zone table.
func ZoneForPostcode(postcode string) (DeliveryZone, bool) {
	for _, z := range deliveryZones {
		if z.Postcode == postcode {
			return z, true
		}
	}
	return DeliveryZone{}, false
}

// DeliveryFee returns the fee for delivering subtotal to postcode, or an
// error when the postcode is outside the delivery area or the subtotal is
// below the zone's minimum.
func DeliveryFee(postcode string, subtotal decimal.Decimal) (decimal.Decimal, error) {
	zone, ok := ZoneForPostcode(postcode)
	if !ok {
		return decimal.Zero, fmt.Errorf("no delivery to postcode %s", postcode)
	}
	if subtotal.LessThan(zone.MinOrder) {
		return decimal.Zero, fmt.Errorf("minimum order for %s is %s", zone.Area, FormatPrice(zone.MinOrder))
	}
	return zone.Fee, nil
}

func CreateOrder(ctx context.Context, input models.CreateOrderInput) (int64, error) {
	linesJSON, err := json.Marshal(input.Lines)
	if err != nil {
		return 0, fmt.Errorf("marshal order lines: %w", err)
	}
	grandTotal := input.ItemsTotal + input.DeliveryFee
	var id int64
	err = db.Pool.QueryRow(ctx, `
		INSERT INTO orders (
			chat_id, customer_name, phone, address, postcode, delivery_type,
			lines, items_total, delivery_fee, grand_total, summary, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, 'new')
		RETURNING id`,
		input.ChatID, input.CustomerName, input.Phone, input.Address, input.Postcode,
		input.DeliveryType, linesJSON, input.ItemsTotal, input.DeliveryFee, grandTotal,
		input.Summary,
	).Scan(&id)
	return id, err
}

func GetOrder(ctx context.Context, id int64) (*models.Order, error) {
	var o models.Order
	err := db.Pool.QueryRow(ctx, `
		SELECT id, chat_id, customer_name, phone, address, postcode,
		       COALESCE(delivery_type, ''), status, items_total, delivery_fee,
		       grand_total, summary
		FROM orders WHERE id = $1`,
		id,
	).Scan(&o.ID, &o.ChatID, &o.CustomerName, &o.Phone, &o.Address, &o.Postcode,
		&o.DeliveryType, &o.Status, &o.ItemsTotal, &o.DeliveryFee, &o.GrandTotal, &o.Summary)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func SetOrderStatus(ctx context.Context, id int64, status string) error {
	_, err := db.Pool.Exec(ctx, `
		UPDATE orders SET status = $1, updated_at = now() WHERE id = $2`,
		status, id,
	)
	return err
}

func GetDailyStats(ctx context.Context, date string) (*models.DailyStats, error) {
	var s models.DailyStats
	err := db.Pool.QueryRow(ctx, `
		SELECT
			COUNT(*)::int,
			COALESCE(SUM(items_total), 0)::bigint,
			COALESCE(SUM(delivery_fee), 0)::bigint,
			COALESCE(SUM(grand_total), 0)::bigint,
			COUNT(*) FILTER (WHERE status = 'rejected')::int
		FROM orders
		WHERE created_at::date = $1::date`,
		date,
	).Scan(&s.OrdersCount, &s.ItemsRevenue, &s.DeliveryRevenue, &s.GrandRevenue, &s.RejectedCount)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
