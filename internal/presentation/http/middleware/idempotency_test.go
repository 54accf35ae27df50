package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/franlead/franlead-api/internal/domain/entity"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// memoryIdempotencyRepo keeps keys in a map for middleware tests
type memoryIdempotencyRepo struct {
	keys map[string]*entity.IdempotencyKey
}

func newMemoryIdempotencyRepo() *memoryIdempotencyRepo {
	return &memoryIdempotencyRepo{keys: make(map[string]*entity.IdempotencyKey)}
}

func (r *memoryIdempotencyRepo) Create(ctx context.Context, key *entity.IdempotencyKey) error {
	r.keys[key.Key+"/"+key.UserID.String()] = key
	return nil
}

func (r *memoryIdempotencyRepo) GetByKey(ctx context.Context, key string, userID uuid.UUID) (*entity.IdempotencyKey, error) {
	return r.keys[key+"/"+userID.String()], nil
}

func (r *memoryIdempotencyRepo) DeleteExpired(ctx context.Context) error {
	return nil
}

func newIdempotencyRouter(repo *memoryIdempotencyRepo, userID uuid.UUID, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	})
	router.POST("/leads", IdempotencyRequired(IdempotencyConfig{Repo: repo}), handler)
	return router
}

func TestIdempotencyRejectsMissingKey(t *testing.T) {
	calls := 0
	router := newIdempotencyRouter(newMemoryIdempotencyRepo(), uuid.New(), func(c *gin.Context) {
		calls++
		c.JSON(201, gin.H{"success": true})
	})

	w1 := httptest.NewRecorder()
	router.ServeHTTP(w1, httptest.NewRequest(http.MethodPost, "/leads", nil))
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, httptest.NewRequest(http.MethodPost, "/leads", nil))

	assert.Equal(t, 400, w1.Code)
	assert.Equal(t, 400, w2.Code)
	assert.Equal(t, 0, calls)
}

func TestIdempotencyReplaysCachedResponse(t *testing.T) {
	calls := 0
	router := newIdempotencyRouter(newMemoryIdempotencyRepo(), uuid.New(), func(c *gin.Context) {
		calls++
		c.JSON(201, gin.H{"success": true, "message": "Lead created successfully"})
	})

	req1 := httptest.NewRequest(http.MethodPost, "/leads", nil)
	req1.Header.Set(IdempotencyKeyHeader, "abc-123")
	w1 := httptest.NewRecorder()
	router.ServeHTTP(w1, req1)

	req2 := httptest.NewRequest(http.MethodPost, "/leads", nil)
	req2.Header.Set(IdempotencyKeyHeader, "abc-123")
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, req2)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 201, w2.Code)
	assert.Equal(t, "true", w2.Header().Get("X-Idempotency-Replayed"))
	assert.JSONEq(t, w1.Body.String(), w2.Body.String())
}

func TestIdempotencyDoesNotCacheFailures(t *testing.T) {
	calls := 0
	router := newIdempotencyRouter(newMemoryIdempotencyRepo(), uuid.New(), func(c *gin.Context) {
		calls++
		if calls == 1 {
			c.JSON(500, gin.H{"success": false})
			return
		}
		c.JSON(201, gin.H{"success": true})
	})

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/leads", nil)
		req.Header.Set(IdempotencyKeyHeader, "retry-1")
		router.ServeHTTP(httptest.NewRecorder(), req)
	}

	// The failed first attempt was not cached, so the retry ran the handler
	assert.Equal(t, 2, calls)
}

func TestIdempotencyKeysScopedPerUser(t *testing.T) {
	repo := newMemoryIdempotencyRepo()
	calls := 0
	handler := func(c *gin.Context) {
		calls++
		c.JSON(201, gin.H{"success": true})
	}

	routerA := newIdempotencyRouter(repo, uuid.New(), handler)
	routerB := newIdempotencyRouter(repo, uuid.New(), handler)

	for _, router := range []*gin.Engine{routerA, routerB} {
		req := httptest.NewRequest(http.MethodPost, "/leads", nil)
		req.Header.Set(IdempotencyKeyHeader, "shared-key")
		router.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.Equal(t, 2, calls)
}

func TestIdempotencyExpiredKeyRunsAgain(t *testing.T) {
	repo := newMemoryIdempotencyRepo()
	userID := uuid.New()
	repo.keys["old-key/"+userID.String()] = &entity.IdempotencyKey{
		Key:          "old-key",
		UserID:       userID,
		ResponseCode: 201,
		ResponseBody: `{"success":true}`,
		ExpiresAt:    time.Now().Add(-time.Hour),
	}

	calls := 0
	router := newIdempotencyRouter(repo, userID, func(c *gin.Context) {
		calls++
		c.JSON(201, gin.H{"success": true})
	})

	req := httptest.NewRequest(http.MethodPost, "/leads", nil)
	req.Header.Set(IdempotencyKeyHeader, "old-key")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 1, calls)
	assert.Empty(t, w.Header().Get("X-Idempotency-Replayed"))
}
