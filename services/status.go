package services

import (
	"fmt"

	"pizzeria-telegram/models"
)

const (
	OrderStatusNew       = "new"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusCompleted = "completed"
	OrderStatusRejected  = "rejected"
)

// ValidStatusTransition reports whether an order may move from one status to
// another. Orders advance strictly forward; only new orders can be rejected.
func ValidStatusTransition(from, to string) bool {
	switch from {
	case OrderStatusNew:
		return to == OrderStatusPreparing || to == OrderStatusRejected
	case OrderStatusPreparing:
		return to == OrderStatusReady
	case OrderStatusReady:
		return to == OrderStatusCompleted
	}
	return false
}

// CustomerMessageForOrderStatus builds the notification text sent to the
// customer when their order reaches the given status. Empty string means no
// notification for that transition.
func CustomerMessageForOrderStatus(o *models.Order, status string) string {
	total := FormatPrice(centsToDecimal(o.GrandTotal))
	switch status {
	case OrderStatusPreparing:
		return fmt.Sprintf("👨‍🍳 Ihre Bestellung Nr. %d (%s) wird jetzt zubereitet.", o.ID, total)
	case OrderStatusReady:
		if o.DeliveryType == "pickup" {
			return fmt.Sprintf("✅ Ihre Bestellung Nr. %d ist fertig und kann abgeholt werden.", o.ID)
		}
		return fmt.Sprintf("🛵 Ihre Bestellung Nr. %d ist fertig und wird jetzt geliefert.", o.ID)
	case OrderStatusCompleted:
		return fmt.Sprintf("Vielen Dank! Ihre Bestellung Nr. %d ist abgeschlossen. Guten Appetit!", o.ID)
	case OrderStatusRejected:
		return fmt.Sprintf("❌ Ihre Bestellung Nr. %d konnte leider nicht angenommen werden.", o.ID)
	}
	return ""
}
