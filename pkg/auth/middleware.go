package auth

import (
	"net/http"

	"github.com/GlebRadaev/clientes/pkg/utils"
)

const TokenParam = "token"

// TokenMiddleware rejects requests whose "token" query parameter is not
// accepted by v before the wrapped handler runs.
func TokenMiddleware(v Validator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.URL.Query().Get(TokenParam)
			if token == "" || !v.Validate(r.Context(), token) {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
