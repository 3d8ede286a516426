package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"stockholdings/src/api/controllers"
	"stockholdings/src/api/middleware"
	"stockholdings/src/schemas"
	"stockholdings/src/utils"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

const (
	msgInvalidBody     = "Invalid request body"
	msgMissingIdentity = "Authentication required"

	msgStockAdded   = "Stock added successfully"
	msgStockUpdated = "Stock updated successfully"
	msgStockDeleted = "Stock deleted successfully"
)

func (h *Handler) CreateStock(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.RequestTimeout)
	defer cancel()

	fields := logrus.Fields{"op": "create_stock"}
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		h.HandleErrors(w, r, utils.Unauthorized(msgMissingIdentity), fields)
		return
	}
	fields["user_id"] = userID

	var req schemas.CreateStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.HandleErrors(w, r, utils.BadRequest(msgInvalidBody), fields)
		return
	}

	stockID, err := h.StockController.CreateStock(ctx, userID, &req)
	if err != nil {
		h.HandleErrors(w, r, err, fields)
		return
	}

	h.respond(w, r, schemas.CreateStockResponse{
		Success: true,
		Message: msgStockAdded,
		StockID: stockID,
	}, http.StatusCreated)
}

// GetStocks lists the caller's holdings. The status query parameter
// defaults to active.
func (h *Handler) GetStocks(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.RequestTimeout)
	defer cancel()

	fields := logrus.Fields{"op": "get_stocks"}
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		h.HandleErrors(w, r, utils.Unauthorized(msgMissingIdentity), fields)
		return
	}
	fields["user_id"] = userID

	status := strings.TrimSpace(r.URL.Query().Get("status"))
	stocks, err := h.StockController.GetStocks(ctx, userID, status)
	if err != nil {
		h.HandleErrors(w, r, err, fields)
		return
	}

	h.respond(w, r, schemas.StockListResponse{
		Success: true,
		Count:   len(stocks),
		Stocks:  stocks,
	}, http.StatusOK)
}

func (h *Handler) GetStockByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.RequestTimeout)
	defer cancel()

	fields := logrus.Fields{"op": "get_stock"}
	userID, stockID, err := identify(r, fields)
	if err != nil {
		h.HandleErrors(w, r, err, fields)
		return
	}

	stock, err := h.StockController.GetStockByID(ctx, userID, stockID)
	if err != nil {
		h.HandleErrors(w, r, err, fields)
		return
	}

	h.respond(w, r, schemas.StockDetailResponse{Success: true, Stock: *stock}, http.StatusOK)
}

func (h *Handler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.RequestTimeout)
	defer cancel()

	fields := logrus.Fields{"op": "update_stock"}
	userID, stockID, err := identify(r, fields)
	if err != nil {
		h.HandleErrors(w, r, err, fields)
		return
	}

	var req schemas.UpdateStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.HandleErrors(w, r, utils.BadRequest(msgInvalidBody), fields)
		return
	}

	if err := h.StockController.UpdateStock(ctx, userID, stockID, &req); err != nil {
		h.HandleErrors(w, r, err, fields)
		return
	}

	h.respond(w, r, schemas.UpdateStockResponse{
		Success: true,
		Message: msgStockUpdated,
		StockID: stockID,
	}, http.StatusOK)
}

func (h *Handler) DeleteStock(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.RequestTimeout)
	defer cancel()

	fields := logrus.Fields{"op": "delete_stock"}
	userID, stockID, err := identify(r, fields)
	if err != nil {
		h.HandleErrors(w, r, err, fields)
		return
	}

	if err := h.StockController.DeleteStock(ctx, userID, stockID); err != nil {
		h.HandleErrors(w, r, err, fields)
		return
	}

	h.respond(w, r, schemas.DeleteStockResponse{Success: true, Message: msgStockDeleted}, http.StatusOK)
}

// identify returns the authenticated user and the stock id from the path,
// recording both on fields. An id that is not a positive integer cannot
// match any row and is reported as not found.
func identify(r *http.Request, fields logrus.Fields) (int64, int64, error) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		return 0, 0, utils.Unauthorized(msgMissingIdentity)
	}
	fields["user_id"] = userID

	raw := strings.TrimPrefix(chi.URLParam(r, "id"), ":")
	stockID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || stockID <= 0 {
		fields["stock_id"] = raw
		return userID, 0, utils.NotFound(controllers.MsgStockNotFound)
	}
	fields["stock_id"] = stockID
	return userID, stockID, nil
}
