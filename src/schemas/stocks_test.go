package schemas_test

import (
	"encoding/json"
	"testing"
	"time"

	"stockholdings/src/models"
	"stockholdings/src/schemas"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateStockRequestCoercesNumericStrings(t *testing.T) {
	var req schemas.CreateStockRequest
	err := json.Unmarshal([]byte(`{
		"stock_name": "Acme",
		"stock_buy_price": "10.50",
		"current_price": 12,
		"quantity": "5",
		"purchase_date": "2024-01-01"
	}`), &req)
	require.NoError(t, err)

	assert.True(t, req.StockName.Set)
	assert.Equal(t, "Acme", req.StockName.Value)
	assert.True(t, req.StockBuyPrice.Value.Equal(decimal.RequireFromString("10.5")))
	assert.True(t, req.CurrentPrice.Value.Equal(decimal.NewFromInt(12)))
	assert.Equal(t, 5, req.Quantity.Value)
	assert.False(t, req.StockSymbol.Set)
	assert.Nil(t, req.StockSymbol.Ptr())
}

func TestOptionalFieldsNullAndEmpty(t *testing.T) {
	var req schemas.UpdateStockRequest
	err := json.Unmarshal([]byte(`{
		"stock_name": null,
		"stock_symbol": "",
		"stock_buy_price": "",
		"current_price": null,
		"quantity": 0
	}`), &req)
	require.NoError(t, err)

	assert.False(t, req.StockName.Set, "null string is absent")
	assert.True(t, req.StockSymbol.Set, "empty string is an explicit value")
	assert.True(t, req.StockSymbol.Blank())
	assert.False(t, req.StockBuyPrice.Set, "empty numeric string is absent")
	assert.False(t, req.CurrentPrice.Set)
	assert.True(t, req.Quantity.Set, "zero is present")
	assert.Equal(t, 0, req.Quantity.Value)
	assert.False(t, req.Status.Set)
}

func TestOptionalRejectsNonNumeric(t *testing.T) {
	cases := []string{
		`{"stock_buy_price": "ten"}`,
		`{"stock_buy_price": true}`,
		`{"quantity": "5 shares"}`,
		`{"quantity": 2.5}`,
		`{"stock_name": 42}`,
	}
	for _, body := range cases {
		var req schemas.CreateStockRequest
		assert.Error(t, json.Unmarshal([]byte(body), &req), body)
	}
}

func TestNewStockResponse(t *testing.T) {
	symbol := "ACME"
	stock := &models.Stock{
		ID:           7,
		UserID:       3,
		Name:         "Acme",
		Symbol:       &symbol,
		BuyPrice:     decimal.RequireFromString("10.5"),
		CurrentPrice: decimal.RequireFromString("11.25"),
		Quantity:     5,
		PurchaseDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Status:       models.StatusActive,
	}

	raw, err := json.Marshal(schemas.NewStockResponse(stock))
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, float64(7), decoded["stock_id"])
	assert.Equal(t, 10.5, decoded["stock_buy_price"])
	assert.Equal(t, 11.25, decoded["current_price"])
	assert.Equal(t, "2024-01-01", decoded["purchase_date"])
	assert.Equal(t, "ACME", decoded["stock_symbol"])
	assert.Equal(t, "active", decoded["status"])
}

func TestNewStockResponseNullSymbol(t *testing.T) {
	raw, err := json.Marshal(schemas.NewStockResponse(&models.Stock{
		BuyPrice:     decimal.NewFromInt(1),
		CurrentPrice: decimal.NewFromInt(1),
	}))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"stock_symbol":null`)
}
