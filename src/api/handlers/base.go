package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"stockholdings/src/api/controllers"
	"stockholdings/src/api/middleware"
	"stockholdings/src/utils"

	"github.com/sirupsen/logrus"
)

const defaultRequestTimeout = 10 * time.Second

type Handler struct {
	StockController controllers.StockControllerI
	Logger          *logrus.Logger
	RequestTimeout  time.Duration
}

func NewHandler(stockController controllers.StockControllerI, logger *logrus.Logger, requestTimeout time.Duration) *Handler {
	if requestTimeout <= 0 {
		requestTimeout = defaultRequestTimeout
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Handler{
		StockController: stockController,
		Logger:          logger,
		RequestTimeout:  requestTimeout,
	}
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, data interface{}, status int) {
	res, err := json.Marshal(data)
	if err != nil {
		h.HandleErrors(w, r, err, logrus.Fields{"op": "respond"})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write(res)
}

// HandleErrors logs err with the operation fields and writes the error
// envelope. Server side causes are logged but never sent to the client.
func (h *Handler) HandleErrors(w http.ResponseWriter, r *http.Request, err error, fields logrus.Fields) {
	httpErr := utils.AsHTTPError(err)

	entry := h.requestLogger(r).WithFields(fields).WithField("status", httpErr.Code)
	if httpErr.Code >= http.StatusInternalServerError {
		entry.WithError(httpErr.Unwrap()).Error(httpErr.Message)
	} else {
		entry.Warn(httpErr.Message)
	}

	utils.WriteError(w, httpErr)
}

func (h *Handler) requestLogger(r *http.Request) *logrus.Entry {
	if r == nil {
		return logrus.NewEntry(h.Logger)
	}
	if entry, ok := utils.EntryFromContext(r.Context()); ok {
		return entry
	}
	return h.Logger.WithField("request_id", middleware.GetRequestID(r.Context()))
}
