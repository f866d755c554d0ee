package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestProductsParsesStringPrices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/products" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("search"); got != "usb" {
			t.Fatalf("expected search=usb, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"products": [
				{"id": 7, "name": "USB Cable", "price": "3.00", "stock": 12, "image": "", "category": "Electronics"},
				{"id": 8, "name": "Charger", "price": 12.5, "stock": 3, "image": "", "category": "Electronics"}
			],
			"pagination": {"current": 1, "pages": 1, "total": 2, "limit": 12}
		}`))
	}))
	defer server.Close()

	client := New(server.URL)
	products, pagination, err := client.Products(context.Background(), ProductQuery{Search: "usb"})
	if err != nil {
		t.Fatalf("Products: %v", err)
	}

	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[0].Price != 3.00 {
		t.Fatalf("string price parsed wrong: %v", products[0].Price)
	}
	if products[1].Price != 12.5 {
		t.Fatalf("numeric price parsed wrong: %v", products[1].Price)
	}
	if pagination.Total != 2 {
		t.Fatalf("expected total 2, got %d", pagination.Total)
	}
}

func TestBearerTokenAttached(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok123" {
			t.Fatalf("expected bearer token, got %q", got)
		}
		w.Write([]byte(`{"products": [], "pagination": {}}`))
	}))
	defer server.Close()

	client := New(server.URL)
	client.SetTokenSource(func() string { return "tok123" })

	if _, _, err := client.Products(context.Background(), ProductQuery{}); err != nil {
		t.Fatalf("Products: %v", err)
	}
}

func TestUnauthorizedTriggersHook(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"Invalid token"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	client := New(server.URL)
	loggedOut := false
	client.OnUnauthorized(func() { loggedOut = true })

	if _, _, err := client.Products(context.Background(), ProductQuery{}); err == nil {
		t.Fatal("expected an error on 401")
	}
	if !loggedOut {
		t.Fatal("401 must trigger the unauthorized hook")
	}
}

func TestProductByIDNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "Product not found"}`))
	}))
	defer server.Close()

	client := New(server.URL)
	if _, err := client.ProductByID(context.Background(), 42); err == nil {
		t.Fatal("expected an error for a missing product")
	}
}

func TestLogin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/auth/login" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"token": "tok", "user": {"user_id": "u1", "username": "dara", "email": "dara@example.com"}}`))
	}))
	defer server.Close()

	client := New(server.URL)
	result, err := client.Login(context.Background(), "dara@example.com", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.Token != "tok" || result.User.Username != "dara" {
		t.Fatalf("unexpected login result %+v", result)
	}
}
