package repositories

import (
	"context"
	"errors"
	"fmt"

	"stockholdings/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrStockNotFound is returned when no holding matches both the id and the
// owner. A holding owned by someone else is reported the same way.
var ErrStockNotFound = errors.New("stock not found")

type StockRepository interface {
	Create(ctx context.Context, params models.CreateStockParams) (int64, error)
	ListByOwner(ctx context.Context, userID int64, status string) ([]models.Stock, error)
	GetByID(ctx context.Context, userID, stockID int64) (*models.Stock, error)
	Update(ctx context.Context, userID, stockID int64, params models.UpdateStockParams) error
	Delete(ctx context.Context, userID, stockID int64) error
}

type stockRepo struct {
	db *pgxpool.Pool
}

func NewStockRepository(db *pgxpool.Pool) StockRepository {
	return &stockRepo{db: db}
}

const stockColumns = `stock_id, user_id, stock_name, stock_symbol, stock_buy_price, current_price,
		quantity, purchase_date, status, created_at, updated_at`

const (
	sqlInsertStock = `
		INSERT INTO stocks (user_id, stock_name, stock_symbol, stock_buy_price, current_price,
			quantity, purchase_date, status)
		VALUES ($1, $2, $3, $4::numeric, COALESCE($5::numeric, $4::numeric), $6, $7,
			COALESCE($8::varchar, 'active'))
		RETURNING stock_id`

	sqlListStocksByOwner = `
		SELECT ` + stockColumns + `
		FROM stocks
		WHERE user_id = $1 AND status = $2
		ORDER BY purchase_date DESC, stock_id DESC`

	sqlGetStock = `
		SELECT ` + stockColumns + `
		FROM stocks
		WHERE stock_id = $1 AND user_id = $2`

	// Ownership check and mutation happen in one statement; the affected
	// row count tells a missing holding apart from a successful update.
	sqlUpdateStock = `
		UPDATE stocks
		SET stock_name      = COALESCE($3, stock_name),
		    stock_symbol    = CASE WHEN $4::boolean THEN NULL ELSE COALESCE($5, stock_symbol) END,
		    stock_buy_price = COALESCE($6, stock_buy_price),
		    current_price   = COALESCE($7, current_price),
		    quantity        = COALESCE($8, quantity),
		    purchase_date   = COALESCE($9, purchase_date),
		    status          = COALESCE($10, status),
		    updated_at      = NOW()
		WHERE stock_id = $1 AND user_id = $2`

	sqlDeleteStock = `
		DELETE FROM stocks
		WHERE stock_id = $1 AND user_id = $2`
)

func (r *stockRepo) Create(ctx context.Context, params models.CreateStockParams) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, sqlInsertStock,
		params.UserID,
		params.Name,
		params.Symbol,
		params.BuyPrice,
		params.CurrentPrice,
		params.Quantity,
		params.PurchaseDate,
		params.Status,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert stock: %w", err)
	}
	return id, nil
}

func (r *stockRepo) ListByOwner(ctx context.Context, userID int64, status string) ([]models.Stock, error) {
	if status == "" {
		status = models.StatusActive
	}

	rows, err := r.db.Query(ctx, sqlListStocksByOwner, userID, status)
	if err != nil {
		return nil, fmt.Errorf("query stocks: %w", err)
	}
	defer rows.Close()

	stocks := make([]models.Stock, 0)
	for rows.Next() {
		s, err := scanStock(rows)
		if err != nil {
			return nil, err
		}
		stocks = append(stocks, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return stocks, nil
}

func (r *stockRepo) GetByID(ctx context.Context, userID, stockID int64) (*models.Stock, error) {
	s, err := scanStock(r.db.QueryRow(ctx, sqlGetStock, stockID, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrStockNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *stockRepo) Update(ctx context.Context, userID, stockID int64, params models.UpdateStockParams) error {
	tag, err := r.db.Exec(ctx, sqlUpdateStock,
		stockID,
		userID,
		params.Name,
		params.ClearSymbol,
		params.Symbol,
		params.BuyPrice,
		params.CurrentPrice,
		params.Quantity,
		params.PurchaseDate,
		params.Status,
	)
	if err != nil {
		return fmt.Errorf("update stock %d: %w", stockID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrStockNotFound
	}
	return nil
}

func (r *stockRepo) Delete(ctx context.Context, userID, stockID int64) error {
	tag, err := r.db.Exec(ctx, sqlDeleteStock, stockID, userID)
	if err != nil {
		return fmt.Errorf("delete stock %d: %w", stockID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrStockNotFound
	}
	return nil
}

func scanStock(row pgx.Row) (*models.Stock, error) {
	var s models.Stock
	err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.Name,
		&s.Symbol,
		&s.BuyPrice,
		&s.CurrentPrice,
		&s.Quantity,
		&s.PurchaseDate,
		&s.Status,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan stock: %w", err)
	}
	return &s, nil
}

var _ StockRepository = (*stockRepo)(nil)
