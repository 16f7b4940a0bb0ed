package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ultimatebank/account-service/internal/middleware"
	"github.com/ultimatebank/account-service/internal/models"
	"github.com/ultimatebank/account-service/internal/users"
)

// ---- mock implementations ----

type mockAccountService struct {
	listFn   func(context.Context) ([]models.Account, error)
	getFn    func(context.Context, uint64) (*models.Account, error)
	createFn func(context.Context, models.Account) (*models.Account, error)
}

func (m *mockAccountService) ReadAccounts(ctx context.Context) ([]models.Account, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockAccountService) ReadAccount(ctx context.Context, id uint64) (*models.Account, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockAccountService) CreateAccount(ctx context.Context, account models.Account) (*models.Account, error) {
	if m.createFn != nil {
		return m.createFn(ctx, account)
	}
	return nil, fmt.Errorf("not configured")
}

// ---- helpers ----

func newAccountTestRouter(svc AccountService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(RouterDeps{
		Accounts: svc,
		Resolver: middleware.NewUserResolver(users.Default(), nil),
	})
}

func acctDoRequest(router *gin.Engine, method, url, username string, body any) *httptest.ResponseRecorder {
	var req *http.Request
	switch b := body.(type) {
	case nil:
		req = httptest.NewRequest(method, url, nil)
	case string:
		req = httptest.NewRequest(method, url, strings.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
	default:
		raw, _ := json.Marshal(b)
		req = httptest.NewRequest(method, url, strings.NewReader(string(raw)))
		req.Header.Set("Content-Type", "application/json")
	}
	if username != "" {
		req.Header.Set(middleware.HeaderUsername, username)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ---- test data ----

var aTestAccount = models.Account{ID: 1000, Alias: "alias", Balance: 42}

// ---- tests ----

func TestAccountRoutes_RequireIdentity(t *testing.T) {
	called := false
	svc := &mockAccountService{
		listFn: func(context.Context) ([]models.Account, error) {
			called = true
			return []models.Account{}, nil
		},
		getFn: func(context.Context, uint64) (*models.Account, error) {
			called = true
			return &aTestAccount, nil
		},
		createFn: func(context.Context, models.Account) (*models.Account, error) {
			called = true
			return &aTestAccount, nil
		},
	}
	router := newAccountTestRouter(svc)

	tests := []struct {
		name     string
		method   string
		url      string
		username string
		body     any
	}{
		{name: "list without header", method: http.MethodGet, url: "/accounts"},
		{name: "list with unknown user", method: http.MethodGet, url: "/accounts", username: "intruder"},
		{name: "get without header", method: http.MethodGet, url: "/accounts/1000"},
		{name: "get with unknown user", method: http.MethodGet, url: "/accounts/1000", username: "Admin"},
		{name: "create without header", method: http.MethodPost, url: "/accounts", body: aTestAccount},
		{name: "create with unknown user", method: http.MethodPost, url: "/accounts", username: "root", body: aTestAccount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called = false
			w := acctDoRequest(router, tt.method, tt.url, tt.username, tt.body)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.False(t, called, "service must not run for a rejected request")
			assert.JSONEq(t, `{"message":"You are not authorized to access this page!"}`, w.Body.String())
		})
	}
}

func TestListAccounts(t *testing.T) {
	tests := []struct {
		name           string
		listFn         func(context.Context) ([]models.Account, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "success - empty list",
			listFn:         func(context.Context) ([]models.Account, error) { return []models.Account{}, nil },
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name:           "success - single account",
			listFn:         func(context.Context) ([]models.Account, error) { return []models.Account{aTestAccount}, nil },
			expectedStatus: http.StatusOK,
			expectedBody:   `[{"id":1000,"alias":"alias","balance":42}]`,
		},
		{
			name: "store failure - 500",
			listFn: func(context.Context) ([]models.Account, error) {
				return nil, fmt.Errorf("list: %w", models.ErrStore)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"message":"Failed to list accounts"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAccountTestRouter(&mockAccountService{listFn: tt.listFn})
			w := acctDoRequest(router, http.MethodGet, "/accounts", users.Customer, nil)

			assert.Equal(t, tt.expectedStatus, w.Code, "body: %s", w.Body.String())
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestGetAccount(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		getFn          func(context.Context, uint64) (*models.Account, error)
		expectedStatus int
	}{
		{
			name: "success - existing account",
			path: "/accounts/1000",
			getFn: func(_ context.Context, id uint64) (*models.Account, error) {
				if id != 1000 {
					return nil, fmt.Errorf("unexpected id %d", id)
				}
				return &aTestAccount, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "not found - unknown id",
			path: "/accounts/4242",
			getFn: func(_ context.Context, id uint64) (*models.Account, error) {
				return nil, fmt.Errorf("account %d: %w", id, models.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "bad request - non numeric id",
			path:           "/accounts/abc",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad request - negative id",
			path:           "/accounts/-1",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "store failure - 500",
			path: "/accounts/1000",
			getFn: func(context.Context, uint64) (*models.Account, error) {
				return nil, fmt.Errorf("get: %w", models.ErrStore)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAccountTestRouter(&mockAccountService{getFn: tt.getFn})
			w := acctDoRequest(router, http.MethodGet, tt.path, users.Admin, nil)

			assert.Equal(t, tt.expectedStatus, w.Code, "body: %s", w.Body.String())
		})
	}
}

func TestCreateAccount(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		createFn       func(context.Context, models.Account) (*models.Account, error)
		expectedStatus int
	}{
		{
			name: "success - create account",
			body: `{"id":0,"alias":"alias","balance":42}`,
			createFn: func(_ context.Context, a models.Account) (*models.Account, error) {
				a.ID = 1000
				return &a, nil
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "bad request - malformed json",
			body:           `{"alias":`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad request - balance out of range",
			body:           `{"alias":"alias","balance":3000000000}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad request - alias too long",
			body:           models.Account{Alias: strings.Repeat("x", models.MaxAliasLength+1)},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "bad request - store rejects value",
			body: `{"alias":"alias","balance":1}`,
			createFn: func(context.Context, models.Account) (*models.Account, error) {
				return nil, fmt.Errorf("insert: %w", models.ErrValidation)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "store failure - 500",
			body: `{"alias":"alias","balance":1}`,
			createFn: func(context.Context, models.Account) (*models.Account, error) {
				return nil, fmt.Errorf("insert: %w", models.ErrStore)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAccountTestRouter(&mockAccountService{createFn: tt.createFn})
			w := acctDoRequest(router, http.MethodPost, "/accounts", users.Customer, tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code, "body: %s", w.Body.String())
		})
	}
}

func TestCreateAccount_ResponseBody(t *testing.T) {
	svc := &mockAccountService{createFn: func(_ context.Context, a models.Account) (*models.Account, error) {
		a.ID = 1000
		return &a, nil
	}}
	router := newAccountTestRouter(svc)

	w := acctDoRequest(router, http.MethodPost, "/accounts", users.Admin, `{"id":0,"alias":"alias","balance":42}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":1000,"alias":"alias","balance":42}`, w.Body.String())
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, statusFor(fmt.Errorf("x: %w", models.ErrUnauthorized)))
	assert.Equal(t, http.StatusNotFound, statusFor(fmt.Errorf("x: %w", models.ErrNotFound)))
	assert.Equal(t, http.StatusBadRequest, statusFor(fmt.Errorf("x: %w", models.ErrValidation)))
	assert.Equal(t, http.StatusInternalServerError, statusFor(fmt.Errorf("x: %w", models.ErrStore)))
	assert.Equal(t, http.StatusInternalServerError, statusFor(fmt.Errorf("unclassified")))
}
