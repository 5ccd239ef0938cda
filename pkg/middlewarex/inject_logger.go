package middlewarex

import (
	"log/slog"
	"net/http"

	"dealdesk/pkg/contextx"
)

// Logger кладёт логгер приложения в контекст запроса, чтобы нижние слои
// доставали его через contextx.
func Logger(log *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(contextx.WithLogger(r.Context(), log)))
		})
	}
}
