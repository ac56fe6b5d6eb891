package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adubrov/boiler-parts/internal/adapter/handler"
	"github.com/adubrov/boiler-parts/internal/adapter/storage"
	"github.com/adubrov/boiler-parts/internal/auth"
	"github.com/adubrov/boiler-parts/internal/core/domain"
	"github.com/adubrov/boiler-parts/internal/core/service"
)

type stubGateway struct{}

func (stubGateway) CreatePayment(ctx context.Context, amount float64, description string) (*domain.Payment, error) {
	return &domain.Payment{
		ID:     uuid.NewString(),
		Status: domain.PaymentStatusPending,
		Amount: domain.PaymentAmount{Value: fmt.Sprintf("%.2f", amount), Currency: "RUB"},
	}, nil
}

func (stubGateway) GetPayment(ctx context.Context, paymentID string) (*domain.Payment, error) {
	return &domain.Payment{ID: paymentID, Status: domain.PaymentStatusPending}, nil
}

type testEnv struct {
	db       *sqlx.DB
	redis    *redis.Client
	server   *httptest.Server
	client   *http.Client
	partRepo *storage.MySQLPartRepository
	cleanup  func()
}

// setupTestEnv wires the real MySQL and Redis adapters behind the full HTTP
// router. The schema is expected to be migrated already; the test skips when
// either store is unreachable.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	mysqlDSN := os.Getenv("MYSQL_DSN")
	if mysqlDSN == "" {
		mysqlDSN = "root:root@tcp(localhost:3306)/boilerparts?parseTime=true"
	}

	rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	db, err := sqlx.Open("mysql", mysqlDSN)
	if err != nil {
		t.Skipf("MySQL not available: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Skipf("MySQL not available: %v", err)
	}

	partRepo := storage.NewMySQLPartRepository(db)
	cartRepo := storage.NewMySQLCartRepository(db)
	userRepo := storage.NewMySQLUserRepository(db)
	sessions := storage.NewRedisSessionStore(rdb, time.Minute)

	router := handler.NewRouter(
		service.NewCatalogService(partRepo),
		service.NewCartService(cartRepo, partRepo, userRepo),
		service.NewUserService(userRepo, auth.NewBcryptPasswordManager(4)),
		service.NewPaymentService(stubGateway{}),
		sessions,
	)

	server := httptest.NewServer(router)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &testEnv{
		db:       db,
		redis:    rdb,
		server:   server,
		client:   &http.Client{Jar: jar},
		partRepo: partRepo,
		cleanup: func() {
			server.Close()
			rdb.Close()
			db.Close()
		},
	}
}

func (e *testEnv) doJSON(t *testing.T, method, path string, body interface{}) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, e.server.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestIntegration_FullShopFlow(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()

	ctx := context.Background()
	marker := "it-" + uuid.NewString()[:8]
	username := "it-user-" + uuid.NewString()[:8]

	now := time.Now().UTC().Truncate(time.Millisecond)
	part := &domain.PartRecord{
		BoilerManufacturer: marker,
		PartsManufacturer:  "Azure",
		Price:              5105,
		VendorCode:         uuid.NewString(),
		Name:               "Integration valve " + marker,
		Description:        "integration test part",
		Images:             `["https://example.com/first.jpg"]`,
		InStock:            4,
		Bestsellers:        true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	require.NoError(t, env.partRepo.Create(ctx, part))
	defer env.db.ExecContext(ctx, "DELETE FROM boiler_parts WHERE id = ?", part.ID)

	// The guard rejects catalog access without a session.
	resp := env.doJSON(t, http.MethodGet, "/boiler-parts", nil)
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Sign up and log in; the cookie jar keeps the session.
	resp = env.doJSON(t, http.MethodPost, "/users/signup", map[string]string{
		"username": username, "email": username + "@example.com", "password": "john123",
	})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var login struct {
		User struct {
			UserID int64 `json:"userId"`
		} `json:"user"`
	}
	resp = env.doJSON(t, http.MethodPost, "/users/login", map[string]string{
		"username": username, "password": "john123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &login)
	userID := login.User.UserID
	defer env.db.ExecContext(ctx, "DELETE FROM users WHERE id = ?", userID)
	defer env.db.ExecContext(ctx, "DELETE FROM shopping_cart WHERE user_id = ?", userID)

	// Browse the catalog.
	var found domain.PartRecord
	resp = env.doJSON(t, http.MethodGet, fmt.Sprintf("/boiler-parts/find/%d", part.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &found)
	assert.Equal(t, part.Name, found.Name)

	var page domain.Page
	resp = env.doJSON(t, http.MethodGet, "/boiler-parts?boiler_manufacturer="+marker, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &page)
	assert.EqualValues(t, 1, page.Count)

	resp = env.doJSON(t, http.MethodPost, "/boiler-parts/search", map[string]string{"search": marker})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &page)
	assert.EqualValues(t, 1, page.Count)

	// Fill the cart and run the two-step count/total update.
	var line domain.CartLine
	resp = env.doJSON(t, http.MethodPost, "/shopping-cart/add", map[string]interface{}{
		"username": username, "partId": part.ID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	decode(t, resp, &line)
	assert.Equal(t, part.Price, line.TotalPrice)
	assert.Equal(t, 1, line.Count)

	resp = env.doJSON(t, http.MethodPatch, fmt.Sprintf("/shopping-cart/count/%d", line.ID),
		map[string]int{"count": 3})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.doJSON(t, http.MethodPatch, fmt.Sprintf("/shopping-cart/total-price/%d", line.ID),
		map[string]float64{"total_price": part.Price * 3})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var lines []domain.CartLine
	resp = env.doJSON(t, http.MethodGet, fmt.Sprintf("/shopping-cart/%d", userID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &lines)
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Count)
	assert.Equal(t, part.Price*3, lines[0].TotalPrice)

	// Pay and empty the cart.
	var payment domain.Payment
	resp = env.doJSON(t, http.MethodPost, "/payment", map[string]interface{}{"amount": part.Price * 3})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &payment)
	assert.Equal(t, domain.PaymentStatusPending, payment.Status)

	resp = env.doJSON(t, http.MethodDelete, fmt.Sprintf("/shopping-cart/all/%d", userID), nil)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = env.doJSON(t, http.MethodGet, fmt.Sprintf("/shopping-cart/%d", userID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &lines)
	assert.Empty(t, lines)

	// Log out; the session is gone.
	resp = env.doJSON(t, http.MethodPost, "/users/logout", nil)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.doJSON(t, http.MethodGet, "/users/login-check", nil)
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
