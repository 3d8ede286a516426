package schemas

import (
	"encoding/json"
	"time"

	"stockholdings/src/models"
	"stockholdings/src/utils"
)

type CreateStockRequest struct {
	StockName     OptionalString  `json:"stock_name"`
	StockSymbol   OptionalString  `json:"stock_symbol"`
	StockBuyPrice OptionalDecimal `json:"stock_buy_price"`
	CurrentPrice  OptionalDecimal `json:"current_price"`
	Quantity      OptionalInt     `json:"quantity"`
	PurchaseDate  OptionalString  `json:"purchase_date"`
}

// UpdateStockRequest is a partial update, every field is optional.
type UpdateStockRequest struct {
	StockName     OptionalString  `json:"stock_name"`
	StockSymbol   OptionalString  `json:"stock_symbol"`
	StockBuyPrice OptionalDecimal `json:"stock_buy_price"`
	CurrentPrice  OptionalDecimal `json:"current_price"`
	Quantity      OptionalInt     `json:"quantity"`
	PurchaseDate  OptionalString  `json:"purchase_date"`
	Status        OptionalString  `json:"status"`
}

type StockResponse struct {
	StockID       int64       `json:"stock_id"`
	UserID        int64       `json:"user_id"`
	StockName     string      `json:"stock_name"`
	StockSymbol   *string     `json:"stock_symbol"`
	StockBuyPrice json.Number `json:"stock_buy_price"`
	CurrentPrice  json.Number `json:"current_price"`
	Quantity      int         `json:"quantity"`
	PurchaseDate  string      `json:"purchase_date"`
	Status        string      `json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

func NewStockResponse(s *models.Stock) StockResponse {
	return StockResponse{
		StockID:       s.ID,
		UserID:        s.UserID,
		StockName:     s.Name,
		StockSymbol:   s.Symbol,
		StockBuyPrice: json.Number(s.BuyPrice.String()),
		CurrentPrice:  json.Number(s.CurrentPrice.String()),
		Quantity:      s.Quantity,
		PurchaseDate:  s.PurchaseDate.Format(utils.ShortDashDateLayout),
		Status:        s.Status,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

type CreateStockResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	StockID int64  `json:"stock_id"`
}

type StockListResponse struct {
	Success bool            `json:"success"`
	Count   int             `json:"count"`
	Stocks  []StockResponse `json:"stocks"`
}

type StockDetailResponse struct {
	Success bool          `json:"success"`
	Stock   StockResponse `json:"stock"`
}

type UpdateStockResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	StockID int64  `json:"stock_id"`
}

type DeleteStockResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
