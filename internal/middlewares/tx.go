package middlewares

import (
	"bytes"
	"context"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-finance-ledger/internal/logger"
	"github.com/sbilibin2017/gw-finance-ledger/internal/services"
)

// TxMiddleware runs the handler inside a database transaction.
// The response is held back until the transaction is finished: a status
// below 400 commits, anything else rolls back. A failed commit turns the
// response into a 500. Events raised by the handler are published only after
// a successful commit.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.BeginTxx(r.Context(), nil)
			if err != nil {
				logger.FromContext(r.Context()).Errorw("failed to begin transaction", "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					panic(rec)
				}
			}()

			ctx, pending := services.WithPendingEvents(setTxToContext(r.Context(), tx))
			buf := &bufferedResponseWriter{header: w.Header(), statusCode: http.StatusOK}
			next.ServeHTTP(buf, r.WithContext(ctx))

			if buf.statusCode >= http.StatusBadRequest {
				pending.Discard()
				if err := tx.Rollback(); err != nil {
					logger.FromContext(r.Context()).Errorw("failed to rollback transaction", "error", err)
				}
				buf.flush(w)
				return
			}

			if err := tx.Commit(); err != nil {
				pending.Discard()
				logger.FromContext(r.Context()).Errorw("failed to commit transaction", "error", err)
				w.Header().Del("Location")
				writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			buf.flush(w)
			pending.Flush(r.Context())
		})
	}
}

// bufferedResponseWriter records status and body until flush.
// Headers go straight to the underlying writer's header map.
type bufferedResponseWriter struct {
	header     http.Header
	statusCode int
	body       bytes.Buffer
}

func (b *bufferedResponseWriter) Header() http.Header {
	return b.header
}

func (b *bufferedResponseWriter) WriteHeader(code int) {
	b.statusCode = code
}

func (b *bufferedResponseWriter) Write(p []byte) (int, error) {
	return b.body.Write(p)
}

func (b *bufferedResponseWriter) flush(w http.ResponseWriter) {
	w.WriteHeader(b.statusCode)
	if b.body.Len() > 0 {
		w.Write(b.body.Bytes())
	}
}

type txKey struct{}

func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey{}).(*sqlx.Tx)
	return tx
}
