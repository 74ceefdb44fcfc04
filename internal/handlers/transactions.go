package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-expense-manager/internal/models"
	"github.com/sbilibin2017/gw-expense-manager/internal/services"
	"github.com/shopspring/decimal"
)

// TransactionManager defines the owner scoped transaction operations.
type TransactionManager interface {
	List(ctx context.Context, owner, frequency string, selectedDate []string, txType string) ([]models.TransactionDB, error)
	Get(ctx context.Context, owner, transactionID string) (*models.TransactionDB, error)
	Add(ctx context.Context, owner string, tx models.TransactionDB) (*models.TransactionDB, error)
	Edit(ctx context.Context, owner, transactionID string, tx models.TransactionDB) (*models.TransactionDB, error)
	Delete(ctx context.Context, owner, transactionID string) error
}

// ListTransactionsRequest represents the JSON body for listing transactions
// swagger:model ListTransactionsRequest
type ListTransactionsRequest struct {
	// Number of days back, or "custom"
	// default: 7
	Frequency string `json:"frequency"`

	// Inclusive [from, to] range for "custom"
	SelectedDate []string `json:"selectedDate"`

	// Income, Expense or all
	// default: all
	Type string `json:"type"`
}

// TransactionRequest represents the JSON body for adding or editing a transaction
// swagger:model TransactionRequest
type TransactionRequest struct {
	// required: true
	// default: 250.50
	Amount decimal.Decimal `json:"amount" swaggertype:"number"`

	// Income or Expense
	// required: true
	Type string `json:"type"`

	Category    string `json:"category"`
	Reference   string `json:"reference"`
	Description string `json:"description"`

	// RFC3339 timestamp or YYYY-MM-DD
	// required: true
	// default: 2024-01-31
	Date string `json:"date"`
}

// Transaction is the client view of a transaction.
// swagger:model Transaction
type Transaction struct {
	TransactionID string          `json:"transactionId"`
	Amount        decimal.Decimal `json:"amount" swaggertype:"number"`
	Type          string          `json:"type"`
	Category      string          `json:"category"`
	Reference     string          `json:"reference"`
	Description   string          `json:"description"`
	Date          time.Time       `json:"date"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// TransactionsResponse carries a transaction listing
// swagger:model TransactionsResponse
type TransactionsResponse struct {
	Response
	Transactions []Transaction `json:"transactions"`
}

// TransactionResponse carries a single transaction
// swagger:model TransactionResponse
type TransactionResponse struct {
	Response
	Transaction Transaction `json:"transaction"`
}

func newTransaction(tx *models.TransactionDB) Transaction {
	return Transaction{
		TransactionID: tx.TransactionID,
		Amount:        tx.Amount,
		Type:          tx.Type,
		Category:      tx.Category,
		Reference:     tx.Reference,
		Description:   tx.Description,
		Date:          tx.Date,
		CreatedAt:     tx.CreatedAt,
	}
}

func (req TransactionRequest) model() (models.TransactionDB, error) {
	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		if date, err = time.Parse(time.DateOnly, req.Date); err != nil {
			return models.TransactionDB{}, services.ErrInvalidTransaction
		}
	}
	return models.TransactionDB{
		Amount:      req.Amount,
		Type:        req.Type,
		Category:    req.Category,
		Reference:   req.Reference,
		Description: req.Description,
		Date:        date,
	}, nil
}

// NewListTransactionsHandler returns an HTTP handler listing the caller's transactions.
// @Summary List transactions
// @Description Newest first. frequency N keeps the last N days; custom uses selectedDate.
// @Tags transections
// @Accept json
// @Produce json
// @Param request body handlers.ListTransactionsRequest true "Filter"
// @Success 200 {object} handlers.TransactionsResponse "Transactions"
// @Failure 400 {object} handlers.Response "Invalid filter"
// @Failure 401 {object} handlers.Response "Unauthorized"
// @Router /transections/get-transection [post]
// @Security BearerAuth
func NewListTransactionsHandler(svc TransactionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}
		var req ListTransactionsRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		txs, err := svc.List(r.Context(), claims.PublicID, req.Frequency, req.SelectedDate, req.Type)
		if err != nil {
			writeError(w, r, err)
			return
		}

		resp := TransactionsResponse{
			Response:     Response{Status: StatusSuccess, Message: "All transactions fetched successfully"},
			Transactions: make([]Transaction, 0, len(txs)),
		}
		for i := range txs {
			resp.Transactions = append(resp.Transactions, newTransaction(&txs[i]))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// NewGetTransactionHandler returns an HTTP handler fetching one transaction.
// @Summary Get transaction
// @Tags transections
// @Produce json
// @Param id path string true "Transaction id"
// @Success 200 {object} handlers.TransactionResponse "Transaction"
// @Failure 404 {object} handlers.Response "Transaction not found"
// @Router /transections/get-transection/{id} [get]
// @Security BearerAuth
func NewGetTransactionHandler(svc TransactionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		tx, err := svc.Get(r.Context(), claims.PublicID, chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, TransactionResponse{
			Response:    Response{Status: StatusSuccess, Message: "Transaction fetched successfully"},
			Transaction: newTransaction(tx),
		})
	}
}

// NewAddTransactionHandler returns an HTTP handler creating a transaction.
// @Summary Add transaction
// @Tags transections
// @Accept json
// @Produce json
// @Param request body handlers.TransactionRequest true "Transaction"
// @Success 201 {object} handlers.TransactionResponse "Transaction created"
// @Failure 400 {object} handlers.Response "Invalid transaction"
// @Router /transections/add-transection [post]
// @Security BearerAuth
func NewAddTransactionHandler(svc TransactionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}
		var req TransactionRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		in, err := req.model()
		if err != nil {
			writeError(w, r, err)
			return
		}

		tx, err := svc.Add(r.Context(), claims.PublicID, in)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, TransactionResponse{
			Response:    Response{Status: StatusSuccess, Message: "Transaction created successfully"},
			Transaction: newTransaction(tx),
		})
	}
}

// NewEditTransactionHandler returns an HTTP handler overwriting a transaction.
// @Summary Edit transaction
// @Tags transections
// @Accept json
// @Produce json
// @Param id path string true "Transaction id"
// @Param request body handlers.TransactionRequest true "Transaction"
// @Success 200 {object} handlers.TransactionResponse "Transaction updated"
// @Failure 400 {object} handlers.Response "Invalid transaction"
// @Failure 404 {object} handlers.Response "Transaction not found"
// @Router /transections/edit-transection/{id} [post]
// @Security BearerAuth
func NewEditTransactionHandler(svc TransactionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}
		var req TransactionRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		in, err := req.model()
		if err != nil {
			writeError(w, r, err)
			return
		}

		tx, err := svc.Edit(r.Context(), claims.PublicID, chi.URLParam(r, "id"), in)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, TransactionResponse{
			Response:    Response{Status: StatusSuccess, Message: "Transaction updated successfully"},
			Transaction: newTransaction(tx),
		})
	}
}

// NewDeleteTransactionHandler returns an HTTP handler deleting a transaction.
// @Summary Delete transaction
// @Tags transections
// @Produce json
// @Param id path string true "Transaction id"
// @Success 200 {object} handlers.Response "Transaction deleted"
// @Failure 404 {object} handlers.Response "Transaction not found"
// @Router /transections/delete-transection/{id} [post]
// @Security BearerAuth
func NewDeleteTransactionHandler(svc TransactionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), claims.PublicID, chi.URLParam(r, "id")); err != nil {
			writeError(w, r, err)
			return
		}
		writeMessage(w, http.StatusOK, "Transaction deleted successfully")
	}
}
