package bot

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"pizzeria-telegram/config"
	"pizzeria-telegram/models"
	"pizzeria-telegram/services"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	bolt "go.etcd.io/bbolt"
)

const (
	btnMenu     = "🍕 Speisekarte"
	btnCart     = "🛒 Warenkorb"
	btnHours    = "🕒 Öffnungszeiten"
	btnCheckout = "✅ Bestellen"
)

// configState is one chat's in-progress item configuration. The validator is
// re-queried after every tap to decide which step to show next.
type configState struct {
	ItemID int64
	Sel    models.Selection
}

// checkoutState collects customer data step by step before the order is
// created.
type checkoutState struct {
	Step  string // name, phone, type, address
	Input models.CreateOrderInput
}

type Bot struct {
	api        *tgbotapi.BotAPI
	messageBot *tgbotapi.BotAPI // sends order cards to the kitchen channel (MESSAGE_TOKEN)
	cfg        *config.Config
	catalog    *services.Catalog
	cartDB     *bolt.DB

	carts   map[int64]*services.Cart
	cartsMu sync.Mutex

	configuring   map[int64]*configState
	configuringMu sync.RWMutex

	checkouts   map[int64]*checkoutState
	checkoutsMu sync.RWMutex
}

func New(cfg *config.Config, catalog *services.Catalog, cartDB *bolt.DB) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return nil, err
	}
	bot := &Bot{
		api:         api,
		cfg:         cfg,
		catalog:     catalog,
		cartDB:      cartDB,
		carts:       make(map[int64]*services.Cart),
		configuring: make(map[int64]*configState),
		checkouts:   make(map[int64]*checkoutState),
	}
	if cfg.Telegram.MessageToken != "" {
		messageBot, err := tgbotapi.NewBotAPI(cfg.Telegram.MessageToken)
		if err != nil {
			log.Printf("warning: failed to initialize message bot: %v", err)
		} else {
			bot.messageBot = messageBot
		}
	}
	return bot, nil
}

func (b *Bot) Start() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	for update := range b.api.GetUpdatesChan(u) {
		if update.CallbackQuery != nil {
			b.handleCallback(update.CallbackQuery)
			continue
		}
		if update.Message != nil {
			b.handleMessage(update.Message)
		}
	}
}

// cartFor returns the chat's cart, rehydrating it from the bolt store on
// first use in this process.
func (b *Bot) cartFor(chatID int64) *services.Cart {
	b.cartsMu.Lock()
	defer b.cartsMu.Unlock()
	if c, ok := b.carts[chatID]; ok {
		return c
	}
	c := services.NewCart(services.NewBoltStore(b.cartDB, "chat:"+strconv.FormatInt(chatID, 10)))
	b.carts[chatID] = c
	return c
}

func (b *Bot) send(c tgbotapi.Chattable) {
	if _, err := b.api.Send(c); err != nil {
		log.Printf("send: %v", err)
	}
}

func (b *Bot) reply(chatID int64, text string) {
	b.send(tgbotapi.NewMessage(chatID, text))
}

func mainKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnMenu),
			tgbotapi.NewKeyboardButton(btnCart),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnHours),
			tgbotapi.NewKeyboardButton(btnCheckout),
		),
	)
}

func (b *Bot) handleMessage(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	b.checkoutsMu.RLock()
	co := b.checkouts[chatID]
	b.checkoutsMu.RUnlock()
	if co != nil && !msg.IsCommand() {
		b.handleCheckoutInput(chatID, co, strings.TrimSpace(msg.Text))
		return
	}

	switch {
	case msg.IsCommand() && msg.Command() == "start":
		m := tgbotapi.NewMessage(chatID, "Willkommen bei Pizzeria Roma! 🍕\nWas darf es sein?")
		m.ReplyMarkup = mainKeyboard()
		b.send(m)
	case msg.IsCommand() && msg.Command() == "stats":
		b.handleStats(chatID, msg.CommandArguments())
	case msg.Text == btnMenu:
		b.showCategories(chatID)
	case msg.Text == btnCart:
		b.showCart(chatID)
	case msg.Text == btnHours:
		b.reply(chatID, services.OpeningHoursText())
	case msg.Text == btnCheckout:
		b.startCheckout(chatID)
	default:
		b.reply(chatID, "Bitte benutzen Sie die Tasten unten. 👇")
	}
}

// handleStats answers the kitchen channel's /stats [YYYY-MM-DD] command.
func (b *Bot) handleStats(chatID int64, arg string) {
	if chatID != b.cfg.Telegram.OrderChatID {
		return
	}
	date := strings.TrimSpace(arg)
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	s, err := services.GetDailyStats(context.Background(), date)
	if err != nil {
		log.Printf("stats: %v", err)
		b.reply(chatID, "Statistik konnte nicht geladen werden.")
		return
	}
	b.reply(chatID, fmt.Sprintf(
		"📊 %s\nBestellungen: %d\nWarenumsatz: %s\nLiefergebühren: %s\nGesamtumsatz: %s\nAbgelehnt: %d",
		date, s.OrdersCount,
		formatCents(s.ItemsRevenue), formatCents(s.DeliveryRevenue),
		formatCents(s.GrandRevenue), s.RejectedCount,
	))
}

func (b *Bot) showCategories(chatID int64) {
	rows := [][]tgbotapi.InlineKeyboardButton{
		{tgbotapi.NewInlineKeyboardButtonData("🍕 Pizza", "cat:"+models.CategoryPizza)},
		{tgbotapi.NewInlineKeyboardButtonData("🍝 Pasta", "cat:"+models.CategoryPasta)},
		{tgbotapi.NewInlineKeyboardButtonData("🥗 Salate", "cat:"+models.CategorySalat)},
		{tgbotapi.NewInlineKeyboardButtonData("🍟 Snacks", "cat:"+models.CategorySnack)},
		{tgbotapi.NewInlineKeyboardButtonData("🥤 Getränke", "cat:"+models.CategoryGetrank)},
	}
	m := tgbotapi.NewMessage(chatID, "Unsere Speisekarte:")
	m.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	b.send(m)
}

func (b *Bot) showCategory(chatID int64, category string) {
	items := b.catalog.ItemsByCategory(category)
	if len(items) == 0 {
		b.reply(chatID, "In dieser Kategorie gibt es gerade nichts.")
		return
	}
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, it := range items {
		label := fmt.Sprintf("%d. %s", it.ID, it.Name)
		if len(it.Sizes) > 0 {
			label += " ab " + services.FormatPrice(it.Sizes[0].Price)
		} else {
			label += " " + services.FormatPrice(it.Price)
		}
		rows = append(rows, []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData(label, "item:"+strconv.FormatInt(it.ID, 10)),
		})
	}
	m := tgbotapi.NewMessage(chatID, "Bitte wählen:")
	m.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	b.send(m)
}

func (b *Bot) handleCallback(cb *tgbotapi.CallbackQuery) {
	defer func() {
		if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
			log.Printf("callback ack: %v", err)
		}
	}()
	chatID := cb.Message.Chat.ID
	parts := strings.SplitN(cb.Data, ":", 3)

	switch parts[0] {
	case "cat":
		b.showCategory(chatID, parts[1])
	case "item":
		id, _ := strconv.ParseInt(parts[1], 10, 64)
		b.startConfiguring(chatID, id)
	case "size", "pasta", "sauce", "beer", "style", "fries":
		b.applyChoice(chatID, parts[0], parts[1])
	case "ing":
		b.toggleIngredient(chatID, parts[1])
	case "extra":
		b.toggleExtra(chatID, parts[1])
	case "confirm":
		b.confirmItem(chatID)
	case "cancelitem":
		b.configuringMu.Lock()
		delete(b.configuring, chatID)
		b.configuringMu.Unlock()
		b.reply(chatID, "Auswahl abgebrochen.")
	case "qty":
		idx, _ := strconv.Atoi(parts[1])
		b.changeQuantity(chatID, idx, parts[2])
	case "clearcart":
		b.cartFor(chatID).Clear()
		b.reply(chatID, "Warenkorb geleert.")
	case "cotype":
		b.handleCheckoutType(chatID, parts[1])
	case "order_status":
		orderID, _ := strconv.ParseInt(parts[1], 10, 64)
		b.handleOrderStatus(chatID, orderID, parts[2])
	}
}

func (b *Bot) startConfiguring(chatID, itemID int64) {
	item, ok := b.catalog.ItemByID(itemID)
	if !ok {
		b.reply(chatID, "Dieser Artikel ist nicht mehr verfügbar.")
		return
	}
	b.configuringMu.Lock()
	b.configuring[chatID] = &configState{ItemID: itemID}
	b.configuringMu.Unlock()

	text := fmt.Sprintf("%d. %s", item.ID, item.Name)
	if item.Description != "" {
		text += "\n" + item.Description
	}
	if item.Allergens != "" {
		text += "\nAllergene: " + item.Allergens
	}
	b.reply(chatID, text)
	b.promptNext(chatID)
}

func (b *Bot) currentConfig(chatID int64) (*configState, models.MenuItem, bool) {
	b.configuringMu.RLock()
	st := b.configuring[chatID]
	b.configuringMu.RUnlock()
	if st == nil {
		return nil, models.MenuItem{}, false
	}
	item, ok := b.catalog.ItemByID(st.ItemID)
	return st, item, ok
}

// promptNext asks for the first requirement the validator still reports, or
// offers extras and confirmation once the selection is complete.
func (b *Bot) promptNext(chatID int64) {
	st, item, ok := b.currentConfig(chatID)
	if !ok {
		return
	}
	switch services.NextRequirement(item, st.Sel) {
	case services.RequirementSize:
		var rows [][]tgbotapi.InlineKeyboardButton
		for _, s := range item.Sizes {
			label := s.Name
			if s.Description != "" {
				label += " (" + s.Description + ")"
			}
			label += " — " + services.FormatPrice(s.Price)
			rows = append(rows, []tgbotapi.InlineKeyboardButton{
				tgbotapi.NewInlineKeyboardButtonData(label, "size:"+s.Name),
			})
		}
		b.sendChoice(chatID, "Welche Größe?", rows)
	case services.RequirementPastaType:
		b.sendNameChoice(chatID, "Welche Nudelsorte?", "pasta", b.catalog.PastaTypes())
	case services.RequirementSauce:
		prompt := "Welche Soße?"
		if item.NeedsDressing {
			prompt = "Welches Dressing?"
		}
		b.sendNameChoice(chatID, prompt, "sauce", b.catalog.SauceOptionsFor(item))
	case services.RequirementBeer:
		b.sendNameChoice(chatID, "Welches Bier?", "beer", b.catalog.Beers())
	case services.RequirementIngredients:
		b.promptIngredients(chatID, st)
	case services.RequirementNone:
		b.promptExtras(chatID, st, item)
	}
}

func (b *Bot) sendChoice(chatID int64, prompt string, rows [][]tgbotapi.InlineKeyboardButton) {
	rows = append(rows, []tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardButtonData("Abbrechen", "cancelitem:-"),
	})
	m := tgbotapi.NewMessage(chatID, prompt)
	m.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	b.send(m)
}

func (b *Bot) sendNameChoice(chatID int64, prompt, prefix string, names []string) {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, name := range names {
		rows = append(rows, []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData(name, prefix+":"+name),
		})
	}
	b.sendChoice(chatID, prompt, rows)
}

func (b *Bot) promptIngredients(chatID int64, st *configState) {
	chosen := make(map[string]bool, len(st.Sel.Ingredients))
	for _, n := range st.Sel.Ingredients {
		chosen[n] = true
	}
	var rows [][]tgbotapi.InlineKeyboardButton
	sentinel := services.NoIngredient
	label := sentinel
	if chosen[sentinel] {
		label = "✅ " + label
	}
	rows = append(rows, []tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardButtonData(label, "ing:"+sentinel),
	})
	for _, ing := range b.catalog.Ingredients() {
		if ing.Name == sentinel {
			continue
		}
		label := ing.Name
		if !ing.Available {
			label += " (nicht verfügbar)"
		} else if chosen[ing.Name] {
			label = "✅ " + label
		}
		rows = append(rows, []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData(label, "ing:"+ing.Name),
		})
	}
	prompt := fmt.Sprintf("Bitte %d Zutaten wählen (%d/%d) — oder \"%s\":",
		services.WunschIngredients, len(realIngredients(st.Sel.Ingredients)), services.WunschIngredients, sentinel)
	b.sendChoice(chatID, prompt, rows)
}

func realIngredients(names []string) []string {
	var out []string
	for _, n := range names {
		if n != services.NoIngredient {
			out = append(out, n)
		}
	}
	return out
}

func (b *Bot) promptExtras(chatID int64, st *configState, item models.MenuItem) {
	chosen := make(map[string]bool, len(st.Sel.Extras))
	for _, n := range st.Sel.Extras {
		chosen[n] = true
	}
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, o := range item.Styles {
		label := o.Name
		if o.Price.IsPositive() {
			label += " (+" + services.FormatPrice(o.Price) + ")"
		}
		if st.Sel.PizzaStyle == o.Name {
			label = "✅ " + label
		}
		rows = append(rows, []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData(label, "style:"+o.Name),
		})
	}
	for _, o := range item.FriesOpts {
		label := o.Name
		if o.Price.IsPositive() {
			label += " (" + services.FormatPrice(o.Price) + ")"
		}
		if st.Sel.Fries == o.Name {
			label = "✅ " + label
		}
		rows = append(rows, []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData(label, "fries:"+o.Name),
		})
	}
	if item.IsPizza {
		for _, name := range b.catalog.Extras() {
			label := name + " (+" + services.FormatPrice(services.ExtraPrice) + ")"
			if chosen[name] {
				label = "✅ " + label
			}
			rows = append(rows, []tgbotapi.InlineKeyboardButton{
				tgbotapi.NewInlineKeyboardButtonData(label, "extra:"+name),
			})
		}
	}
	price := services.UnitPrice(item, st.Sel)
	rows = append(rows, []tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardButtonData("In den Warenkorb — "+services.FormatPrice(price), "confirm:-"),
	})
	b.sendChoice(chatID, "Noch Extras dazu?", rows)
}

func (b *Bot) applyChoice(chatID int64, field, value string) {
	st, _, ok := b.currentConfig(chatID)
	if !ok {
		return
	}
	switch field {
	case "size":
		st.Sel.Size = value
	case "pasta":
		st.Sel.PastaType = value
	case "sauce":
		st.Sel.Sauce = value
	case "beer":
		st.Sel.Beer = value
	case "style":
		st.Sel.PizzaStyle = value
	case "fries":
		st.Sel.Fries = value
	}
	b.promptNext(chatID)
}

func (b *Bot) toggleIngredient(chatID int64, name string) {
	st, _, ok := b.currentConfig(chatID)
	if !ok {
		return
	}
	if !b.catalog.IngredientAvailable(name) {
		b.reply(chatID, name+" ist leider nicht verfügbar.")
		return
	}
	st.Sel.Ingredients = services.ToggleIngredient(st.Sel.Ingredients, name)
	b.promptNext(chatID)
}

func (b *Bot) toggleExtra(chatID int64, name string) {
	st, _, ok := b.currentConfig(chatID)
	if !ok {
		return
	}
	st.Sel.Extras = services.ToggleExtra(st.Sel.Extras, name)
	b.promptNext(chatID)
}

func (b *Bot) confirmItem(chatID int64) {
	st, item, ok := b.currentConfig(chatID)
	if !ok {
		return
	}
	if req := services.NextRequirement(item, st.Sel); req != services.RequirementNone {
		// Should have been caught step by step; re-prompt for the gap.
		b.promptNext(chatID)
		return
	}
	b.cartFor(chatID).AddItem(item, st.Sel)
	b.configuringMu.Lock()
	delete(b.configuring, chatID)
	b.configuringMu.Unlock()
	b.reply(chatID, item.Name+" wurde in den Warenkorb gelegt. 🛒")
}

func (b *Bot) showCart(chatID int64) {
	cart := b.cartFor(chatID)
	lines := cart.Lines()
	if len(lines) == 0 {
		b.reply(chatID, "Ihr Warenkorb ist leer.")
		return
	}
	var sb strings.Builder
	var rows [][]tgbotapi.InlineKeyboardButton
	for i, l := range lines {
		fmt.Fprintf(&sb, "%dx %s — %s\n", l.Quantity, l.Name, services.FormatPrice(l.Total()))
		idx := strconv.Itoa(i)
		rows = append(rows, []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData("➖ "+l.Name, "qty:"+idx+":dec"),
			tgbotapi.NewInlineKeyboardButtonData("➕", "qty:"+idx+":inc"),
			tgbotapi.NewInlineKeyboardButtonData("🗑", "qty:"+idx+":del"),
		})
	}
	fmt.Fprintf(&sb, "\nZwischensumme: %s", services.FormatPrice(cart.Subtotal()))
	rows = append(rows, []tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardButtonData("Warenkorb leeren", "clearcart:-"),
	})
	m := tgbotapi.NewMessage(chatID, sb.String())
	m.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	b.send(m)
}

func (b *Bot) changeQuantity(chatID int64, idx int, op string) {
	cart := b.cartFor(chatID)
	lines := cart.Lines()
	if idx < 0 || idx >= len(lines) {
		return
	}
	l := lines[idx]
	switch op {
	case "inc":
		cart.UpdateQuantity(l.ItemID, l.Quantity+1, l.Selection)
	case "dec":
		cart.UpdateQuantity(l.ItemID, l.Quantity-1, l.Selection)
	case "del":
		cart.RemoveItem(l.ItemID, l.Selection)
	}
	b.showCart(chatID)
}

func (b *Bot) startCheckout(chatID int64) {
	if !services.IsOpenAt(time.Now()) {
		b.reply(chatID, "Wir haben gerade geschlossen.\n\n"+services.OpeningHoursText())
		return
	}
	cart := b.cartFor(chatID)
	if len(cart.Lines()) == 0 {
		b.reply(chatID, "Ihr Warenkorb ist leer.")
		return
	}
	b.checkoutsMu.Lock()
	b.checkouts[chatID] = &checkoutState{
		Step:  "name",
		Input: models.CreateOrderInput{ChatID: chatID},
	}
	b.checkoutsMu.Unlock()
	b.reply(chatID, "Wie ist Ihr Name?")
}

func (b *Bot) handleCheckoutInput(chatID int64, co *checkoutState, text string) {
	if text == "" {
		b.reply(chatID, "Bitte eine Eingabe machen.")
		return
	}
	switch co.Step {
	case "name":
		co.Input.CustomerName = text
		co.Step = "phone"
		b.reply(chatID, "Ihre Telefonnummer?")
	case "phone":
		co.Input.Phone = text
		co.Step = "type"
		m := tgbotapi.NewMessage(chatID, "Abholung oder Lieferung?")
		m.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("🏃 Abholung", "cotype:pickup"),
				tgbotapi.NewInlineKeyboardButtonData("🛵 Lieferung", "cotype:delivery"),
			),
		)
		b.send(m)
	case "address":
		street, postcode, ok := splitAddress(text)
		if !ok {
			b.reply(chatID, "Bitte Straße und Postleitzahl angeben, z.B. \"Hauptstraße 1, 67433\".")
			return
		}
		fee, err := services.DeliveryFee(postcode, b.cartFor(chatID).Subtotal())
		if err != nil {
			b.reply(chatID, "Lieferung nicht möglich: "+err.Error())
			return
		}
		co.Input.Address = street
		co.Input.Postcode = postcode
		co.Input.DeliveryFee = services.Cents(fee)
		b.placeOrder(chatID, co)
	}
}

func (b *Bot) handleCheckoutType(chatID int64, deliveryType string) {
	b.checkoutsMu.RLock()
	co := b.checkouts[chatID]
	b.checkoutsMu.RUnlock()
	if co == nil || co.Step != "type" {
		return
	}
	co.Input.DeliveryType = deliveryType
	if deliveryType == "delivery" {
		co.Step = "address"
		b.reply(chatID, "Ihre Lieferadresse (Straße, Postleitzahl)?")
		return
	}
	b.placeOrder(chatID, co)
}

// splitAddress separates "Hauptstraße 1, 67433" into street and postcode.
func splitAddress(text string) (street, postcode string, ok bool) {
	i := strings.LastIndex(text, ",")
	if i < 0 {
		return "", "", false
	}
	street = strings.TrimSpace(text[:i])
	postcode = strings.TrimSpace(text[i+1:])
	if street == "" || len(postcode) != 5 {
		return "", "", false
	}
	return street, postcode, true
}

func (b *Bot) placeOrder(chatID int64, co *checkoutState) {
	cart := b.cartFor(chatID)
	lines := cart.Lines()
	co.Input.Lines = lines
	co.Input.ItemsTotal = services.Cents(cart.Subtotal())
	co.Input.Summary = services.BuildOrderSummary(lines, co.Input)

	id, err := services.CreateOrder(context.Background(), co.Input)
	if err != nil {
		log.Printf("create order: %v", err)
		b.reply(chatID, "Die Bestellung konnte nicht gespeichert werden. Bitte später erneut versuchen.")
		return
	}

	b.notifyKitchen(id, co.Input.Summary)
	cart.Clear()
	b.checkoutsMu.Lock()
	delete(b.checkouts, chatID)
	b.checkoutsMu.Unlock()
	b.reply(chatID, fmt.Sprintf("Vielen Dank! Ihre Bestellung Nr. %d ist eingegangen. 🍕", id))
}

// notifyKitchen hands the order summary to the kitchen channel with status
// buttons attached.
func (b *Bot) notifyKitchen(orderID int64, summary string) {
	api := b.messageBot
	if api == nil {
		api = b.api
	}
	if b.cfg.Telegram.OrderChatID == 0 {
		log.Printf("order %d: no ORDER_CHAT_ID configured, summary not delivered", orderID)
		return
	}
	oid := strconv.FormatInt(orderID, 10)
	m := tgbotapi.NewMessage(b.cfg.Telegram.OrderChatID, summary)
	m.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("👨‍🍳 Zubereiten", "order_status:"+oid+":"+services.OrderStatusPreparing),
			tgbotapi.NewInlineKeyboardButtonData("❌ Ablehnen", "order_status:"+oid+":"+services.OrderStatusRejected),
		),
	)
	if _, err := api.Send(m); err != nil {
		log.Printf("order %d: notify kitchen: %v", orderID, err)
	}
}

func (b *Bot) handleOrderStatus(chatID, orderID int64, status string) {
	ctx := context.Background()
	o, err := services.GetOrder(ctx, orderID)
	if err != nil {
		log.Printf("order %d: load: %v", orderID, err)
		return
	}
	if !services.ValidStatusTransition(o.Status, status) {
		b.reply(chatID, fmt.Sprintf("Bestellung %d ist bereits '%s'.", orderID, o.Status))
		return
	}
	if err := services.SetOrderStatus(ctx, orderID, status); err != nil {
		log.Printf("order %d: set status: %v", orderID, err)
		return
	}
	if msg := services.CustomerMessageForOrderStatus(o, status); msg != "" {
		b.reply(o.ChatID, msg)
	}

	var next [][]tgbotapi.InlineKeyboardButton
	oid := strconv.FormatInt(orderID, 10)
	switch status {
	case services.OrderStatusPreparing:
		next = append(next, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Fertig", "order_status:"+oid+":"+services.OrderStatusReady),
		))
	case services.OrderStatusReady:
		next = append(next, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🏁 Abgeschlossen", "order_status:"+oid+":"+services.OrderStatusCompleted),
		))
	}
	m := tgbotapi.NewMessage(chatID, fmt.Sprintf("Bestellung %d: %s", orderID, status))
	if next != nil {
		m.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(next...)
	}
	b.send(m)
}

func formatCents(c int64) string {
	return fmt.Sprintf("%d,%02d €", c/100, c%100)
}
