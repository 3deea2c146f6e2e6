package chi

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// requestID tags every response with an X-Request-ID header, generating a
// fresh uuid when the client did not send one. Useful for correlating a
// response with its entry in the request log.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}

// recoverPanics converts an unhandled panic into the standard 500
// envelope instead of a bare connection reset or plain-text body.
func recoverPanics(re *responder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					err, ok := rec.(error)
					if !ok {
						err = fmt.Errorf("panic: %v", rec)
					}
					re.serverError(w, err)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
