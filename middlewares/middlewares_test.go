package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/pizza_sales/middlewares"
	"github.com/mmdatafocus/pizza_sales/models"
	"github.com/mmdatafocus/pizza_sales/utils"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestCorrelationMiddleware(t *testing.T) {
	r := newEngine()
	r.Use(middlewares.CorrelationMiddleware())
	var seen string
	r.GET("/", func(c *gin.Context) {
		seen, _ = utils.GetCorrelationIdFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middlewares.CorrelationHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", w.Header().Get(middlewares.CorrelationHeader))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.NotEqual(t, "abc-123", seen)
}

func TestSessionMiddleware(t *testing.T) {
	registry := models.NewSessionRegistry(4, time.Hour)
	session := registry.Create("orders.csv", models.EmptyRowStore(), nil)

	r := newEngine()
	r.GET("/sessions/:id", middlewares.SessionMiddleware(registry), func(c *gin.Context) {
		sid, _ := utils.GetSessionIdFromContext(c.Request.Context())
		assert.Equal(t, middlewares.GetSession(c).ID, sid)
		c.String(http.StatusOK, middlewares.GetSession(c).Source)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/sessions/"+session.ID, nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "orders.csv", w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/sessions/unknown", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"session not found"}`, w.Body.String())
}

func TestRateLimitMiddleware_FailsOpenWithoutRedis(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()
	limiter := middlewares.NewRateLimiter(client, 1, time.Minute)

	r := newEngine()
	r.Use(limiter.RateLimitMiddleware)
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
