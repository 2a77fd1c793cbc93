package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kraviona/seller-console/internal/session"
)

func TestLoginSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/user/password", r.URL.Path)
		require.Empty(t, r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "a@b.c", body["email"])

		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"message": "Login successful!",
			"user":    map[string]string{"name": "Alice", "email": "a@b.c", "token": "tok123"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	user, message, err := c.Login(context.Background(), "a@b.c", "secret")
	require.NoError(t, err)
	require.Equal(t, "tok123", user.Token)
	require.Equal(t, "Alice", user.Name)
	require.Equal(t, "Login successful!", message)
}

func TestLoginFailureCarriesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Invalid credentials"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, message, err := c.Login(context.Background(), "a@b.c", "wrong")
	require.Error(t, err)

	var remote *RemoteError
	require.ErrorAs(t, err, &remote)
	require.Equal(t, "Invalid credentials", remote.Message)
	require.Equal(t, "Invalid credentials", message)
}

func TestAuthenticatedCallAttachesBearer(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]any{"success": true, "categories": []any{}})
	}))
	defer srv.Close()

	c := New(srv.URL)
	ctx := session.WithToken(context.Background(), "tok123")
	_, err := c.ListCategories(ctx)
	require.NoError(t, err)
	require.Equal(t, "Bearer tok123", gotAuth)
}

func TestPublicCallOmitsBearer(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]any{"success": true, "products": []any{}})
	}))
	defer srv.Close()

	c := New(srv.URL)
	ctx := session.WithToken(context.Background(), "tok123")
	_, err := c.ListPublicProducts(ctx)
	require.NoError(t, err)
	require.Empty(t, gotAuth)
}

func TestTransportFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := New(srv.URL)
	_, err := c.ListCategories(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestMalformedBodyIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway error</html>"))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.ListCategories(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestListCategoriesDecodesWireShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/seller/categories", r.URL.Path)
		w.Write([]byte(`{"success":true,"categories":[
			{"_id":"c1","categoryName":"Shoes","image":"http://x/y.png","description":"","isPublished":true}
		]}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	cats, err := c.ListCategories(session.WithToken(context.Background(), "tok"))
	require.NoError(t, err)
	require.Len(t, cats, 1)
	require.Equal(t, "c1", cats[0].ID)
	require.Equal(t, "Shoes", cats[0].CategoryName)
	require.True(t, cats[0].IsPublished)
}

func TestProductEndpointsUseContractPaths(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"success": true, "message": "ok",
			"product": map[string]any{"_id": "p1"}, "products": []any{},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	ctx := session.WithToken(context.Background(), "tok")

	_, err := c.ListSellerProducts(ctx)
	require.NoError(t, err)
	_, err = c.ProductByID(ctx, "p1")
	require.NoError(t, err)
	_, err = c.ProductBySlug(ctx, "red-shoe")
	require.NoError(t, err)
	_, err = c.CreateProduct(ctx, ProductPayload{})
	require.NoError(t, err)
	_, err = c.UpdateProduct(ctx, "p1", ProductPayload{})
	require.NoError(t, err)
	_, err = c.DeleteProduct(ctx, "p1")
	require.NoError(t, err)

	require.Equal(t, []string{
		"GET /seller/products",
		"GET /product-id/p1",
		"GET /product/red-shoe",
		"POST /product",
		"PUT /product/p1",
		"DELETE /product/p1",
	}, paths)
}

func TestListMessages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/messages", r.URL.Path)
		require.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`{"success":true,"messages":[{"_id":"m1","name":"Bob","email":"b@c.d","message":"hi","createdAt":"2024-01-01"}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	msgs, err := c.ListMessages(context.Background())
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	require.Equal(t, "Bob", msgs[0].Name)
}
