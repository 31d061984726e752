package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	dbpkg "eprasadam/internal/db"
	"eprasadam/internal/middleware"
	"eprasadam/internal/payment"
	"eprasadam/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
	logrus.SetLevel(logrus.ErrorLevel)
}

// testServer wires the full route table against an in-memory database and
// an in-memory session store
type testServer struct {
	t        *testing.T
	db       *gorm.DB
	router   *gin.Engine
	sessions *session.MemoryStore
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	// A single connection keeps every query on the same in-memory database
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, dbpkg.Migrate(conn))

	sessions := session.NewMemoryStore()
	provider := payment.NewTestProvider()

	r := gin.New()
	r.GET("/api/health", HealthHandler())
	r.POST("/api/auth/register", RegisterHandler(conn, testSecret))
	r.POST("/api/auth/login", LoginHandler(conn, sessions, testSecret))
	r.POST("/api/auth/logout", LogoutHandler(sessions))

	apiGroup := r.Group("/api")
	apiGroup.Use(middleware.RequireAuth(conn, sessions, testSecret))
	apiGroup.GET("/auth/me", MeHandler())
	apiGroup.GET("/temples", ListTemplesHandler(conn, nil))
	apiGroup.GET("/prasadam", ListPrasadamHandler(conn, nil))
	apiGroup.POST("/create-order", CreateOrderHandler(conn))
	apiGroup.POST("/verify-payment", VerifyPaymentHandler(conn, provider))
	apiGroup.GET("/my-orders", MyOrdersHandler(conn))

	return &testServer{t: t, db: conn, router: r, sessions: sessions}
}

// do performs a request with an optional JSON body and bearer token
func (s *testServer) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	s.t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// decode unmarshals a recorded JSON response body
func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// register creates a user through the API and returns its token
func (s *testServer) register(name, email, phone, password string) string {
	s.t.Helper()
	w := s.do(http.MethodPost, "/api/auth/register", gin.H{
		"name":     name,
		"email":    email,
		"phone":    phone,
		"password": password,
		"address":  "Varanasi",
	}, "")
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())
	body := decode(s.t, w)
	token, _ := body["token"].(string)
	require.NotEmpty(s.t, token)
	return token
}

// placeOrder creates an order through the API and returns the response body
func (s *testServer) placeOrder(token string, total float64) map[string]any {
	s.t.Helper()
	w := s.do(http.MethodPost, "/api/create-order", gin.H{
		"user_name":    "A Devotee",
		"user_email":   "devotee@x.com",
		"user_phone":   "9876543210",
		"user_address": "Varanasi",
		"items": []gin.H{
			{"name": "Laddu", "quantity": 2, "price": 200},
			{"name": "Panchamrut", "quantity": 1, "price": 250},
		},
		"total_amount": total,
	}, token)
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())
	return decode(s.t, w)
}
