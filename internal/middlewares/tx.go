package middlewares

import (
	"bytes"
	"context"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-expense-manager/internal/logger"
)

// TxMiddleware wraps an HTTP handler with a database transaction. The
// transaction is rolled back when the handler panics or answers 500 and
// committed otherwise, including 502 provider failures. The response is
// buffered and only sent once the transaction has been settled, so a failed
// commit reaches the client as 500.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromContext(r.Context())

			tx, err := db.Beginx()
			if err != nil {
				log.Errorw("failed to begin transaction", "error", err)
				deny(w, http.StatusInternalServerError, msgInternalError)
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					panic(rec)
				}
			}()

			buf := newBufferedResponse()
			next.ServeHTTP(buf, r.WithContext(setTxToContext(r.Context(), tx)))

			if buf.statusCode == http.StatusInternalServerError {
				if err := tx.Rollback(); err != nil {
					log.Errorw("failed to roll back transaction", "error", err)
				}
				buf.flush(w)
				return
			}

			if err := tx.Commit(); err != nil {
				log.Errorw("failed to commit transaction", "status", buf.statusCode, "error", err)
				deny(w, http.StatusInternalServerError, msgInternalError)
				return
			}
			buf.flush(w)
		})
	}
}

const msgInternalError = "Internal server error"

// bufferedResponse holds a handler's response until the transaction settles.
type bufferedResponse struct {
	header     http.Header
	statusCode int
	body       bytes.Buffer
}

func newBufferedResponse() *bufferedResponse {
	return &bufferedResponse{header: make(http.Header), statusCode: http.StatusOK}
}

func (b *bufferedResponse) Header() http.Header { return b.header }

func (b *bufferedResponse) WriteHeader(code int) { b.statusCode = code }

func (b *bufferedResponse) Write(p []byte) (int, error) { return b.body.Write(p) }

func (b *bufferedResponse) flush(w http.ResponseWriter) {
	dst := w.Header()
	for k, v := range b.header {
		dst[k] = v
	}
	w.WriteHeader(b.statusCode)
	if b.body.Len() > 0 {
		w.Write(b.body.Bytes())
	}
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}
