package services

import (
	"fmt"
	"strings"

	"pizzeria-telegram/models"

	"github.com/shopspring/decimal"
)

// BuildOrderSummary renders the cart plus customer data as the human-readable
// order text that is handed to the notification channel and stored with the
// order.
func BuildOrderSummary(lines []models.OrderLine, input models.CreateOrderInput) string {
	var b strings.Builder
	b.WriteString("🍕 *Neue Bestellung*\n\n")
	for _, l := range lines {
		fmt.Fprintf(&b, "%dx %s", l.Quantity, l.Name)
		if d := describeSelection(l.Selection); d != "" {
			b.WriteString(" (" + d + ")")
		}
		fmt.Fprintf(&b, " — %s\n", FormatPrice(l.Total()))
	}
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.Total())
	}
	fmt.Fprintf(&b, "\nZwischensumme: %s\n", FormatPrice(subtotal))
	if input.DeliveryType == "delivery" {
		fmt.Fprintf(&b, "Liefergebühr: %s\n", FormatPrice(centsToDecimal(input.DeliveryFee)))
	}
	fmt.Fprintf(&b, "Gesamt: %s\n\n", FormatPrice(subtotal.Add(centsToDecimal(input.DeliveryFee))))

	fmt.Fprintf(&b, "Name: %s\n", input.CustomerName)
	fmt.Fprintf(&b, "Telefon: %s\n", input.Phone)
	if input.DeliveryType == "delivery" {
		fmt.Fprintf(&b, "Adresse: %s, %s\n", input.Address, input.Postcode)
	} else {
		b.WriteString("Abholung\n")
	}
	return b.String()
}

// describeSelection lists the chosen options of one line in a fixed order.
func describeSelection(sel models.Selection) string {
	var parts []string
	if sel.Size != "" {
		parts = append(parts, sel.Size)
	}
	if sel.PizzaStyle != "" {
		parts = append(parts, sel.PizzaStyle)
	}
	if sel.PastaType != "" {
		parts = append(parts, sel.PastaType)
	}
	if sel.Sauce != "" {
		parts = append(parts, sel.Sauce)
	}
	if sel.Beer != "" {
		parts = append(parts, sel.Beer)
	}
	if sel.Fries != "" {
		parts = append(parts, sel.Fries)
	}
	if len(sel.Ingredients) > 0 {
		parts = append(parts, "Zutaten: "+strings.Join(sel.Ingredients, ", "))
	}
	if len(sel.Extras) > 0 {
		parts = append(parts, "Extras: "+strings.Join(sel.Extras, ", "))
	}
	return strings.Join(parts, ", ")
}
