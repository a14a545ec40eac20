package controllers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hostel-management-api/config"
	"hostel-management-api/models"
	"hostel-management-api/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newMockDB points config.DB at a sqlmock-backed gorm connection and
// returns the mock plus a restore func.
func newMockDB(t *testing.T) (sqlmock.Sqlmock, func()) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	prev := config.DB
	config.DB = gdb
	return mock, func() {
		config.DB = prev
		sqlDB.Close()
	}
}

// recordingPublisher captures realtime publishes from the notifier.
type recordingPublisher struct {
	mu     sync.Mutex
	Events []*models.Notification
}

func (p *recordingPublisher) Publish(userID string, n *models.Notification) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Events = append(p.Events, n)
}

func (p *recordingPublisher) Published() []*models.Notification {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*models.Notification(nil), p.Events...)
}

// setupNotifier wires the controllers package with a notifier whose
// publisher records events. Mail resolution still hits the mock DB; the
// SMTP leg fails fast and is log-only.
func setupNotifier() *recordingPublisher {
	pub := &recordingPublisher{}
	Init(services.NewNotifier(config.DB, pub), nil)
	return pub
}

// authAs injects the identity the auth middleware would set.
func authAs(userID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID != "" {
			c.Set("userID", userID)
		}
		if role != "" {
			c.Set("role", role)
		}
		c.Next()
	}
}

func newRouter(mw gin.HandlerFunc, method, path string, handler gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	if mw != nil {
		r.Use(mw)
	}
	r.Handle(method, path, handler)
	return r
}

func performRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
