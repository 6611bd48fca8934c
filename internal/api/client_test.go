package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lazzat-client/internal/domain/food"
	"lazzat-client/internal/domain/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := New(srv.URL, Options{})
	require.NoError(t, err)
	return client, srv
}

func TestRequestHeaders(t *testing.T) {
	var gotAuth, gotRequestID string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{}`))
	}))
	client.SetTokenSource(func() string { return "tok-123" })

	var out map[string]interface{}
	require.NoError(t, client.doJSON(context.Background(), http.MethodGet, "/auth/me/", nil, &out))

	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.NotEmpty(t, gotRequestID, "every request carries a correlation id")
}

func TestNoAuthHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))

	var out map[string]interface{}
	require.NoError(t, client.doJSON(context.Background(), http.MethodGet, "/foods/foods/", nil, &out))
	assert.Empty(t, gotAuth)
}

func TestLogin(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login/", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice", body["username"])

		json.NewEncoder(w).Encode(map[string]string{"access": "a-token", "refresh": "r-token"})
	}))

	pair, err := NewAuthService(client).Login(context.Background(), "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, "a-token", pair.Access)
	assert.Equal(t, "r-token", pair.Refresh)
}

func TestLoginErrorDetail(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "No active account found"})
	}))

	_, err := NewAuthService(client).Login(context.Background(), "alice", "wrong")
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "No active account found", apiErr.Detail)
	assert.Equal(t, "No active account found", apiErr.Error())
}

func TestRegisterFieldErrors(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string][]string{
			"username": {"A user with that username already exists."},
		})
	}))

	err := NewAuthService(client).Register(context.Background(), "alice", "secret", "")
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	msg, ok := apiErr.FieldError("username")
	assert.True(t, ok)
	assert.Equal(t, "A user with that username already exists.", msg)
}

func TestGetCurrentUser(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/me/", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]bool{"is_staff": true, "is_superuser": false})
	}))

	user, err := NewAuthService(client).GetCurrentUser(context.Background())
	require.NoError(t, err)
	assert.True(t, user.IsStaff)
	assert.False(t, user.IsSuperuser)
}

func TestFoodsListDecodesDecimalPrices(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/foods/foods/", r.URL.Path)
		assert.Equal(t, "drink", r.URL.Query().Get("category"))
		assert.Equal(t, "tea", r.URL.Query().Get("search"))
		w.Write([]byte(`[{"id":1,"name":"Green Tea","price":"5.50","category":"drink","is_available":true}]`))
	}))

	foods, err := NewFoodsService(client).List(context.Background(), ListParams{
		Category: food.CategoryDrink,
		Search:   "tea",
	})
	require.NoError(t, err)
	require.Len(t, foods, 1)
	assert.Equal(t, "Green Tea", foods[0].Name)
	assert.Equal(t, 5.50, foods[0].Price)
	assert.True(t, foods[0].Available)
}

func TestFoodsCreateMultipart(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Plov", r.FormValue("name"))
		assert.Equal(t, "12.00", r.FormValue("price"))
		assert.Equal(t, "national", r.FormValue("category"))
		assert.Equal(t, "true", r.FormValue("is_available"))

		w.Write([]byte(`{"id":5,"name":"Plov","price":"12.00","category":"national","is_available":true}`))
	}))

	avail := true
	created, err := NewFoodsService(client).Create(context.Background(), FoodForm{
		Name:      "Plov",
		Price:     "12.00",
		Category:  food.CategoryNational,
		Available: &avail,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), created.ID)
}

func TestOrdersCreate(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders/create/", r.URL.Path)

		var req order.CreateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "12 Amir Temur Ave", req.Address)
		require.Len(t, req.Items, 1)
		assert.Equal(t, int64(3), req.Items[0].FoodID)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"order_id": 77, "total_price": "24.00", "message": "Order created",
		})
	}))

	resp, err := NewOrdersService(client).Create(context.Background(), order.CreateRequest{
		Address: "12 Amir Temur Ave",
		Items:   []order.ItemInput{{FoodID: 3, Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(77), resp.OrderID)
	assert.Equal(t, 24.00, resp.TotalPrice)
}

func TestOrdersCreatePromoValidationError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string][]string{"promo_code": {"Invalid or expired promo code"}})
	}))

	_, err := NewOrdersService(client).Create(context.Background(), order.CreateRequest{
		Address:   "somewhere",
		Items:     []order.ItemInput{{FoodID: 1, Quantity: 1}},
		PromoCode: "NOPE",
	})
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	msg, ok := apiErr.FieldError("promo_code")
	assert.True(t, ok)
	assert.Equal(t, "Invalid or expired promo code", msg)
}

func TestUnauthorizedResponseFiresHook(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Token is invalid or expired"})
	}))

	var fired int
	client.SetUnauthorizedHook(func() { fired++ })

	var out map[string]interface{}
	err := client.doJSON(context.Background(), http.MethodGet, "/orders/my/", nil, &out)
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, 1, fired, "a 401 must notify the session owner")
}

func TestNonUnauthorizedErrorDoesNotFireHook(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"detail": "bad request"})
	}))

	var fired int
	client.SetUnauthorizedHook(func() { fired++ })

	var out map[string]interface{}
	err := client.doJSON(context.Background(), http.MethodGet, "/orders/my/", nil, &out)
	require.Error(t, err)
	assert.Zero(t, fired)
}

func TestUnparseableErrorBody(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))

	var out map[string]interface{}
	err := client.doJSON(context.Background(), http.MethodGet, "/foods/foods/", nil, &out)
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Contains(t, apiErr.Error(), "502")
}
