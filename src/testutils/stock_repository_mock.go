// Package testutils holds in-memory doubles shared by the API tests.
package testutils

import (
	"context"
	"sort"
	"sync"
	"time"

	"stockholdings/src/models"
	"stockholdings/src/repositories"
)

// MockStockRepository keeps holdings in memory with the same owner scoping
// as the SQL repository. Setting Err makes every call fail with it.
type MockStockRepository struct {
	Mu     sync.Mutex
	Stocks map[int64]models.Stock
	Calls  map[string]int
	Err    error
	nextID int64
}

func NewMockStockRepository() *MockStockRepository {
	return &MockStockRepository{
		Stocks: make(map[int64]models.Stock),
		Calls:  make(map[string]int),
	}
}

// CallCount returns how many times method was invoked.
func (m *MockStockRepository) CallCount(method string) int {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	return m.Calls[method]
}

func (m *MockStockRepository) Len() int {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	return len(m.Stocks)
}

func (m *MockStockRepository) Create(_ context.Context, params models.CreateStockParams) (int64, error) {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	m.Calls["Create"]++
	if m.Err != nil {
		return 0, m.Err
	}

	m.nextID++
	now := time.Now().UTC()
	s := models.Stock{
		ID:           m.nextID,
		UserID:       params.UserID,
		Name:         params.Name,
		Symbol:       params.Symbol,
		BuyPrice:     params.BuyPrice,
		CurrentPrice: params.BuyPrice,
		Quantity:     params.Quantity,
		PurchaseDate: params.PurchaseDate,
		Status:       models.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if params.CurrentPrice != nil {
		s.CurrentPrice = *params.CurrentPrice
	}
	if params.Status != nil {
		s.Status = *params.Status
	}
	m.Stocks[s.ID] = s
	return s.ID, nil
}

func (m *MockStockRepository) ListByOwner(_ context.Context, userID int64, status string) ([]models.Stock, error) {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	m.Calls["ListByOwner"]++
	if m.Err != nil {
		return nil, m.Err
	}
	if status == "" {
		status = models.StatusActive
	}

	stocks := make([]models.Stock, 0)
	for _, s := range m.Stocks {
		if s.UserID == userID && s.Status == status {
			stocks = append(stocks, s)
		}
	}
	sort.Slice(stocks, func(i, j int) bool {
		if !stocks[i].PurchaseDate.Equal(stocks[j].PurchaseDate) {
			return stocks[i].PurchaseDate.After(stocks[j].PurchaseDate)
		}
		return stocks[i].ID > stocks[j].ID
	})
	return stocks, nil
}

func (m *MockStockRepository) GetByID(_ context.Context, userID, stockID int64) (*models.Stock, error) {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	m.Calls["GetByID"]++
	if m.Err != nil {
		return nil, m.Err
	}

	s, ok := m.Stocks[stockID]
	if !ok || s.UserID != userID {
		return nil, repositories.ErrStockNotFound
	}
	return &s, nil
}

func (m *MockStockRepository) Update(_ context.Context, userID, stockID int64, params models.UpdateStockParams) error {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	m.Calls["Update"]++
	if m.Err != nil {
		return m.Err
	}

	s, ok := m.Stocks[stockID]
	if !ok || s.UserID != userID {
		return repositories.ErrStockNotFound
	}
	if params.Name != nil {
		s.Name = *params.Name
	}
	if params.ClearSymbol {
		s.Symbol = nil
	} else if params.Symbol != nil {
		s.Symbol = params.Symbol
	}
	if params.BuyPrice != nil {
		s.BuyPrice = *params.BuyPrice
	}
	if params.CurrentPrice != nil {
		s.CurrentPrice = *params.CurrentPrice
	}
	if params.Quantity != nil {
		s.Quantity = *params.Quantity
	}
	if params.PurchaseDate != nil {
		s.PurchaseDate = *params.PurchaseDate
	}
	if params.Status != nil {
		s.Status = *params.Status
	}
	s.UpdatedAt = time.Now().UTC()
	m.Stocks[stockID] = s
	return nil
}

func (m *MockStockRepository) Delete(_ context.Context, userID, stockID int64) error {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	m.Calls["Delete"]++
	if m.Err != nil {
		return m.Err
	}

	s, ok := m.Stocks[stockID]
	if !ok || s.UserID != userID {
		return repositories.ErrStockNotFound
	}
	delete(m.Stocks, stockID)
	return nil
}

var _ repositories.StockRepository = (*MockStockRepository)(nil)
