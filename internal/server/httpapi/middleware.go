package httpapi

import (
	"net/http"
	"sync"
	"time"

	"github.com/dmitrijs2005/examhub/internal/common"
	"github.com/dmitrijs2005/examhub/internal/logging"
	"github.com/dmitrijs2005/examhub/internal/server/auth"
	"github.com/dmitrijs2005/examhub/internal/server/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	telegramUserKey = "telegram_user"
	currentUserKey  = "current_user"
)

// telegramAuth validates X-Telegram-Auth and stores the Telegram identity.
func telegramAuth(v InitDataValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		initData := c.GetHeader(common.InitDataHeaderName)
		if initData == "" {
			abortWith(c, http.StatusUnauthorized, msgMissingAuth)
			return
		}

		tg, err := v.Validate(initData)
		if err != nil {
			abortWith(c, http.StatusUnauthorized, msgInvalidAuth)
			return
		}

		c.Set(telegramUserKey, tg)
		c.Next()
	}
}

// currentUser resolves the Telegram identity to a registered user.
func (h *handler) currentUser(c *gin.Context) {
	user, err := h.users.Resolve(c.Request.Context(), telegramUser(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Set(currentUserKey, user)
	c.Next()
}

func telegramUser(c *gin.Context) *auth.TelegramUser {
	tg, _ := c.MustGet(telegramUserKey).(*auth.TelegramUser)
	return tg
}

func userFrom(c *gin.Context) *models.User {
	u, _ := c.MustGet(currentUserKey).(*models.User)
	return u
}

// requestLogger logs one line per request.
func requestLogger(l logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", time.Since(start),
			"ip", c.ClientIP(),
		}
		switch {
		case status >= http.StatusInternalServerError:
			l.Error(c.Request.Context(), "request", args...)
		case status >= http.StatusBadRequest:
			l.Warn(c.Request.Context(), "request", args...)
		default:
			l.Info(c.Request.Context(), "request", args...)
		}
	}
}

// recovery turns a handler panic into a logged 500.
func recovery(l logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if p := recover(); p != nil {
				l.Error(c.Request.Context(), "panic recovered", "path", c.Request.URL.Path, "panic", p)
				abortWith(c, http.StatusInternalServerError, msgInternal)
			}
		}()
		c.Next()
	}
}

type limiterEntry struct {
	limiter *rate.Limiter
	expires time.Time
}

// limiterStore keeps one token bucket per key. Idle buckets expire.
type limiterStore struct {
	mu      sync.Mutex
	entries map[string]*limiterEntry
	limit   rate.Limit
	burst   int
	ttl     time.Duration
	now     func() time.Time
}

func newLimiterStore(perSecond float64, burst int) *limiterStore {
	if burst < 1 {
		burst = 1
	}
	return &limiterStore{
		entries: map[string]*limiterEntry{},
		limit:   rate.Limit(perSecond),
		burst:   burst,
		ttl:     5 * time.Minute,
		now:     time.Now,
	}
}

func (s *limiterStore) allow(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for k, e := range s.entries {
		if now.After(e.expires) {
			delete(s.entries, k)
		}
	}

	e, ok := s.entries[key]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(s.limit, s.burst)}
		s.entries[key] = e
	}
	e.expires = now.Add(s.ttl)
	return e.limiter.AllowN(now, 1)
}

// rateLimit throttles per Telegram user, or per client IP before auth.
func rateLimit(store *limiterStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP()
		if v, ok := c.Get(telegramUserKey); ok {
			key = "tg:" + v.(*auth.TelegramUser).IDString()
		}
		if !store.allow(key) {
			abortWith(c, http.StatusTooManyRequests, msgRateLimited)
			return
		}
		c.Next()
	}
}
