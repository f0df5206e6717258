package handlers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/amiracx/partner-portal-api/internal/entity"
	"github.com/amiracx/partner-portal-api/internal/infra/http/middleware"
	"github.com/amiracx/partner-portal-api/internal/usecase"
)

type AuthHandler struct {
	LoginUC *usecase.LoginPartnerUseCase
	limiter *loginLimiter
}

func NewAuthHandler(loginUC *usecase.LoginPartnerUseCase) *AuthHandler {
	return &AuthHandler{
		LoginUC: loginUC,
		limiter: newLoginLimiter(rate.Every(6*time.Second), 10), // ~10/min per IP, burst 10
	}
}

type loginResponse struct {
	Success bool            `json:"success"`
	Partner *entity.Partner `json:"partner"`
}

func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if !h.limiter.allow(getClientIP(r)) {
		writeErrorResponse(w, http.StatusTooManyRequests, "too many login attempts")
		return
	}

	var input usecase.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	partner, err := h.LoginUC.Execute(r.Context(), input)
	if err != nil {
		middleware.RecordLogin("failed")
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordLogin("ok")
	writeJSON(w, http.StatusOK, loginResponse{Success: true, Partner: partner})
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}

// loginLimiter keeps one token bucket per client IP.
type loginLimiter struct {
	mu       sync.Mutex
	visitors map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func newLoginLimiter(limit rate.Limit, burst int) *loginLimiter {
	return &loginLimiter{
		visitors: make(map[string]*rate.Limiter),
		limit:    limit,
		burst:    burst,
	}
}

func (l *loginLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.visitors[ip]
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.visitors[ip] = limiter
	}
	return limiter.Allow()
}
