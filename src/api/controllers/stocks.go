package controllers

import (
	"context"
	"errors"
	"strings"

	"stockholdings/src/models"
	"stockholdings/src/repositories"
	"stockholdings/src/schemas"
	"stockholdings/src/utils"

	"github.com/shopspring/decimal"
)

const (
	MsgRequiredFields = "Stock name, buy price, quantity and purchase date are required"
	MsgStockNotFound  = "Stock not found"

	msgErrorAdding   = "Error adding stock"
	msgErrorFetching = "Error fetching stocks"
	msgErrorFetchOne = "Error fetching stock"
	msgErrorUpdating = "Error updating stock"
	msgErrorDeleting = "Error deleting stock"
	msgPositivePrice = "Prices must be positive numbers"
	msgPositiveQty   = "Quantity must be a positive integer"
	msgInvalidDate   = "Purchase date must use the YYYY-MM-DD format"
	msgEmptyName     = "Stock name cannot be empty"
	msgEmptyStatus   = "Status cannot be empty"
)

type StockControllerI interface {
	CreateStock(ctx context.Context, userID int64, req *schemas.CreateStockRequest) (int64, error)
	GetStocks(ctx context.Context, userID int64, status string) ([]schemas.StockResponse, error)
	GetStockByID(ctx context.Context, userID, stockID int64) (*schemas.StockResponse, error)
	UpdateStock(ctx context.Context, userID, stockID int64, req *schemas.UpdateStockRequest) error
	DeleteStock(ctx context.Context, userID, stockID int64) error
}

type StockController struct {
	Repository repositories.StockRepository
}

func NewStockController(repo repositories.StockRepository) *StockController {
	return &StockController{Repository: repo}
}

// CreateStock validates the request and stores a new holding for userID.
// Validation failures never reach the repository.
func (c *StockController) CreateStock(ctx context.Context, userID int64, req *schemas.CreateStockRequest) (int64, error) {
	if req.StockName.Blank() || !req.StockBuyPrice.Set || !req.Quantity.Set || req.PurchaseDate.Blank() {
		return 0, utils.BadRequest(MsgRequiredFields)
	}
	if !isPositive(req.StockBuyPrice.Value) || (req.CurrentPrice.Set && !isPositive(req.CurrentPrice.Value)) {
		return 0, utils.BadRequest(msgPositivePrice)
	}
	if req.Quantity.Value <= 0 {
		return 0, utils.BadRequest(msgPositiveQty)
	}
	purchaseDate, err := utils.ParseCalendarDate(req.PurchaseDate.Value)
	if err != nil {
		return 0, utils.BadRequest(msgInvalidDate)
	}

	params := models.CreateStockParams{
		UserID:       userID,
		Name:         strings.TrimSpace(req.StockName.Value),
		BuyPrice:     req.StockBuyPrice.Value,
		CurrentPrice: req.CurrentPrice.Ptr(),
		Quantity:     req.Quantity.Value,
		PurchaseDate: purchaseDate,
	}
	if !req.StockSymbol.Blank() {
		symbol := strings.TrimSpace(req.StockSymbol.Value)
		params.Symbol = &symbol
	}

	id, err := c.Repository.Create(ctx, params)
	if err != nil {
		return 0, utils.InternalServerError(msgErrorAdding, err)
	}
	return id, nil
}

func (c *StockController) GetStocks(ctx context.Context, userID int64, status string) ([]schemas.StockResponse, error) {
	if status == "" {
		status = models.StatusActive
	}
	stocks, err := c.Repository.ListByOwner(ctx, userID, status)
	if err != nil {
		return nil, utils.InternalServerError(msgErrorFetching, err)
	}

	responses := make([]schemas.StockResponse, 0, len(stocks))
	for i := range stocks {
		responses = append(responses, schemas.NewStockResponse(&stocks[i]))
	}
	return responses, nil
}

func (c *StockController) GetStockByID(ctx context.Context, userID, stockID int64) (*schemas.StockResponse, error) {
	stock, err := c.Repository.GetByID(ctx, userID, stockID)
	if err != nil {
		return nil, mapRepositoryError(err, msgErrorFetchOne)
	}
	response := schemas.NewStockResponse(stock)
	return &response, nil
}

// UpdateStock applies the fields present in req. An empty stock_symbol
// clears the stored symbol; every other field keeps its value when absent.
func (c *StockController) UpdateStock(ctx context.Context, userID, stockID int64, req *schemas.UpdateStockRequest) error {
	params, err := buildUpdateParams(req)
	if err != nil {
		return err
	}
	if err := c.Repository.Update(ctx, userID, stockID, params); err != nil {
		return mapRepositoryError(err, msgErrorUpdating)
	}
	return nil
}

func (c *StockController) DeleteStock(ctx context.Context, userID, stockID int64) error {
	if err := c.Repository.Delete(ctx, userID, stockID); err != nil {
		return mapRepositoryError(err, msgErrorDeleting)
	}
	return nil
}

func buildUpdateParams(req *schemas.UpdateStockRequest) (models.UpdateStockParams, error) {
	var params models.UpdateStockParams

	if req.StockName.Set {
		if req.StockName.Blank() {
			return params, utils.BadRequest(msgEmptyName)
		}
		name := strings.TrimSpace(req.StockName.Value)
		params.Name = &name
	}
	if req.StockSymbol.Set {
		if req.StockSymbol.Blank() {
			params.ClearSymbol = true
		} else {
			symbol := strings.TrimSpace(req.StockSymbol.Value)
			params.Symbol = &symbol
		}
	}
	if req.StockBuyPrice.Set && !isPositive(req.StockBuyPrice.Value) {
		return params, utils.BadRequest(msgPositivePrice)
	}
	if req.CurrentPrice.Set && !isPositive(req.CurrentPrice.Value) {
		return params, utils.BadRequest(msgPositivePrice)
	}
	params.BuyPrice = req.StockBuyPrice.Ptr()
	params.CurrentPrice = req.CurrentPrice.Ptr()

	if req.Quantity.Set && req.Quantity.Value <= 0 {
		return params, utils.BadRequest(msgPositiveQty)
	}
	params.Quantity = req.Quantity.Ptr()

	if req.PurchaseDate.Set {
		d, err := utils.ParseCalendarDate(req.PurchaseDate.Value)
		if err != nil {
			return params, utils.BadRequest(msgInvalidDate)
		}
		params.PurchaseDate = &d
	}
	if req.Status.Set {
		if req.Status.Blank() {
			return params, utils.BadRequest(msgEmptyStatus)
		}
		status := strings.TrimSpace(req.Status.Value)
		params.Status = &status
	}
	return params, nil
}

func mapRepositoryError(err error, message string) error {
	if errors.Is(err, repositories.ErrStockNotFound) {
		return utils.NotFound(MsgStockNotFound)
	}
	return utils.InternalServerError(message, err)
}

func isPositive(d decimal.Decimal) bool {
	return d.GreaterThan(decimal.Zero)
}
