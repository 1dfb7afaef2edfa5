package order

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"orders/internal/entities"
)

// Снимки заказа для diff. Позиции лежат в map по id, поэтому порядок
// позиций в запросе клиента ни на что не влияет.
type orderSnapshot struct {
	StatusID string                     `json:"statusId"`
	Customer *customerSnapshot          `json:"customer"`
	Products map[string]productSnapshot `json:"products"`
}

type customerSnapshot struct {
	Name     string `json:"name"`
	LastName string `json:"lastName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

type productSnapshot struct {
	StatusID   string `json:"statusId"`
	Amount     int64  `json:"amount"`
	Price      string `json:"price"`
	IsCanceled bool   `json:"isCanceled"`
}

// amountSnapshot пишется в журнал при изменении количества позиции.
type amountSnapshot struct {
	Products map[string]amountLine `json:"products"`
}

type amountLine struct {
	Amount     int64  `json:"amount"`
	TotalPrice string `json:"totalPrice"`
}

func snapshotOfAggregate(aggregate *entities.OrderAggregate) orderSnapshot {
	snapshot := orderSnapshot{
		StatusID: aggregate.Order.StatusID.String(),
		Products: make(map[string]productSnapshot, len(aggregate.Products)),
	}

	if aggregate.Customer != nil {
		snapshot.Customer = customerSnapshotOf(*aggregate.Customer)
	}

	for _, p := range aggregate.Products {
		snapshot.Products[p.ID.String()] = productSnapshot{
			StatusID:   p.StatusID.String(),
			Amount:     p.Amount,
			Price:      p.Price.String(),
			IsCanceled: p.IsCanceled,
		}
	}
	return snapshot
}

// snapshotOfUpdate строит "следующее" состояние из запроса клиента.
// Если клиент не прислал покупателя, берётся текущий.
func snapshotOfUpdate(update entities.OrderUpdate, current *entities.OrderAggregate) orderSnapshot {
	snapshot := orderSnapshot{
		StatusID: update.StatusID.String(),
		Products: make(map[string]productSnapshot, len(update.Products)),
	}

	switch {
	case update.Customer != nil:
		snapshot.Customer = &customerSnapshot{
			Name:     update.Customer.Name,
			LastName: update.Customer.LastName,
			Email:    update.Customer.Email,
			Phone:    update.Customer.Phone,
		}
	case current.Customer != nil:
		snapshot.Customer = customerSnapshotOf(*current.Customer)
	}

	for _, p := range update.Products {
		snapshot.Products[p.ID.String()] = productSnapshot{
			StatusID:   p.StatusID.String(),
			Amount:     p.Amount,
			Price:      p.Price.String(),
			IsCanceled: p.IsCanceled,
		}
	}
	return snapshot
}

func customerSnapshotOf(c entities.OrderCustomer) *customerSnapshot {
	return &customerSnapshot{
		Name:     c.Name,
		LastName: c.LastName,
		Email:    c.Email,
		Phone:    c.Phone,
	}
}

func customerModifyFromPatch(orderID uuid.UUID, fields map[string]any) (entities.OrderCustomerModify, error) {
	modify := entities.OrderCustomerModify{OrderID: &orderID}

	targets := map[string]**string{
		"name":     &modify.Name,
		"lastName": &modify.LastName,
		"email":    &modify.Email,
		"phone":    &modify.Phone,
	}
	for key, value := range fields {
		target, ok := targets[key]
		if !ok {
			continue
		}
		str, ok := value.(string)
		if !ok {
			return modify, fmt.Errorf("%w: customer.%s is not a string", ErrInvalidInput, key)
		}
		*target = &str
	}
	return modify, nil
}

// patchProduct применяет поля из diff к позиции и возвращает изменения для
// репозитория вместе с позицией после патча.
func patchProduct(product entities.OrderProduct, fields map[string]any) (entities.OrderProductModify, entities.OrderProduct, error) {
	modify := entities.OrderProductModify{ID: &product.ID}
	patched := product

	for key, value := range fields {
		switch key {
		case "statusId":
			id, err := parseUUID(value)
			if err != nil {
				return modify, patched, fmt.Errorf("products.%s.statusId: %w", product.ID, err)
			}
			patched.StatusID = id
			modify.StatusID = &patched.StatusID
		case "amount":
			number, ok := value.(json.Number)
			if !ok {
				return modify, patched, fmt.Errorf("%w: products.%s.amount", ErrInvalidInput, product.ID)
			}
			amount, err := number.Int64()
			if err != nil {
				return modify, patched, fmt.Errorf("%w: products.%s.amount: %v", ErrInvalidInput, product.ID, err)
			}
			patched.Amount = amount
			modify.Amount = &patched.Amount
		case "price":
			str, ok := value.(string)
			if !ok {
				return modify, patched, fmt.Errorf("%w: products.%s.price", ErrInvalidInput, product.ID)
			}
			price, err := decimal.NewFromString(str)
			if err != nil {
				return modify, patched, fmt.Errorf("%w: products.%s.price: %v", ErrInvalidInput, product.ID, err)
			}
			if !isValidPrice(price) {
				return modify, patched, fmt.Errorf("%w: products.%s.price %s", ErrInvalidPrice, product.ID, str)
			}
			patched.Price = price
			modify.Price = &patched.Price
		case "isCanceled":
			canceled, ok := value.(bool)
			if !ok {
				return modify, patched, fmt.Errorf("%w: products.%s.isCanceled", ErrInvalidInput, product.ID)
			}
			patched.IsCanceled = canceled
			modify.IsCanceled = &patched.IsCanceled
		}
	}

	if modify.Amount != nil || modify.Price != nil {
		patched.TotalPrice = entities.CalculateTotal(patched.Price, patched.Amount)
		modify.TotalPrice = &patched.TotalPrice
	}
	return modify, patched, nil
}

func parseUUID(value any) (uuid.UUID, error) {
	str, ok := value.(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("%w: expected uuid string", ErrInvalidInput)
	}
	id, err := uuid.Parse(str)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return id, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
