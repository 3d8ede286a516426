package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const StatusActive = "active"

// Stock is one purchased lot owned by a single user.
type Stock struct {
	ID           int64           `db:"stock_id"`
	UserID       int64           `db:"user_id"`
	Name         string          `db:"stock_name"`
	Symbol       *string         `db:"stock_symbol"`
	BuyPrice     decimal.Decimal `db:"stock_buy_price"`
	CurrentPrice decimal.Decimal `db:"current_price"`
	Quantity     int             `db:"quantity"`
	PurchaseDate time.Time       `db:"purchase_date"`
	Status       string          `db:"status"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}

// CreateStockParams holds validated input for a new holding. A nil
// CurrentPrice falls back to BuyPrice and a nil Status to StatusActive.
type CreateStockParams struct {
	UserID       int64
	Name         string
	Symbol       *string
	BuyPrice     decimal.Decimal
	CurrentPrice *decimal.Decimal
	Quantity     int
	PurchaseDate time.Time
	Status       *string
}

// UpdateStockParams holds a partial update. Nil fields keep the stored value.
// ClearSymbol stores NULL in stock_symbol and takes precedence over Symbol.
type UpdateStockParams struct {
	Name         *string
	Symbol       *string
	ClearSymbol  bool
	BuyPrice     *decimal.Decimal
	CurrentPrice *decimal.Decimal
	Quantity     *int
	PurchaseDate *time.Time
	Status       *string
}
