package forms

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kraviona/seller-console/internal/apiclient"
	"github.com/kraviona/seller-console/internal/models"
	"github.com/kraviona/seller-console/internal/session"
)

func countingAPI(t *testing.T, calls *int64) (*apiclient.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(calls, 1)
		json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "Created"})
	}))
	t.Cleanup(srv.Close)
	return apiclient.New(srv.URL), srv
}

func TestSubmitCategoryMissingFieldsSkipsNetwork(t *testing.T) {
	var calls int64
	api, _ := countingAPI(t, &calls)

	_, err := SubmitCategory(context.Background(), api, CategoryForm{CategoryName: "Shoes"})
	require.Error(t, err)
	require.True(t, IsValidation(err))
	require.EqualValues(t, 0, atomic.LoadInt64(&calls))
}

func TestSubmitCategorySuccess(t *testing.T) {
	var calls int64
	api, _ := countingAPI(t, &calls)

	f := CategoryForm{CategoryName: "Shoes", Image: "http://x/y.png", IsPublished: true}
	message, err := SubmitCategory(session.WithToken(context.Background(), "tok"), api, f)
	require.NoError(t, err)
	require.Equal(t, "Created", message)
	require.EqualValues(t, 1, atomic.LoadInt64(&calls))
}

func TestSubmitProductMissingPriceSkipsNetwork(t *testing.T) {
	var calls int64
	api, _ := countingAPI(t, &calls)

	f := ProductForm{
		Title:       "Sneaker",
		Description: "Runs fast",
		Thumbnail:   "http://x/t.png",
		Stock:       "3",
		Category:    "Shoes",
	}
	_, err := SubmitProduct(context.Background(), api, "", f, nil)
	require.Error(t, err)
	require.True(t, IsValidation(err))
	require.EqualValues(t, 0, atomic.LoadInt64(&calls))
}

func TestSubmitProductCreateVsUpdate(t *testing.T) {
	var methods []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		methods = append(methods, r.Method+" "+r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "ok"})
	}))
	defer srv.Close()
	api := apiclient.New(srv.URL)

	f := ProductForm{
		Title: "Sneaker", Description: "d", Thumbnail: "t",
		Price: "10", Stock: "3", Category: "Shoes",
	}
	ctx := session.WithToken(context.Background(), "tok")

	_, err := SubmitProduct(ctx, api, "", f, nil)
	require.NoError(t, err)
	_, err = SubmitProduct(ctx, api, "p1", f, nil)
	require.NoError(t, err)

	require.Equal(t, []string{"POST /product", "PUT /product/p1"}, methods)
}

func TestProductPayloadConversion(t *testing.T) {
	f := ProductForm{
		Title: "Sneaker", Description: "d", Thumbnail: "t",
		Price: "19.99", Discount: "15", Stock: "7",
		Category: "Shoes", IsPublished: true,
	}
	images := []models.ProductImage{{URL: "http://x/1.png", AltText: "Sneaker"}}

	p := f.Payload(images)
	require.Equal(t, 19.99, p.Price)
	require.Equal(t, 15.0, p.Discount)
	require.Equal(t, 7, p.Stock)
	require.Equal(t, models.StatusInStock, p.Status)
	require.Equal(t, images, p.Images)
}

func TestProductPayloadNeverSendsNilImages(t *testing.T) {
	f := ProductForm{Title: "T", Description: "d", Thumbnail: "t", Price: "1", Stock: "1", Category: "c"}
	p := f.Payload(nil)
	require.NotNil(t, p.Images)
	require.Len(t, p.Images, 0)
}

func TestHydrateProduct(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/product-id/p1", r.URL.Path)
		w.Write([]byte(`{"success":true,"product":{
			"_id":"p1","title":"Sneaker","description":"d","thumbnail":"t",
			"images":[{"url":"http://x/1.png","altText":"Sneaker"}],
			"price":19.99,"discount":5,"stock":3,"status":"limited stock",
			"category":"Shoes","isPublished":true,"slug":"sneaker"
		}}`))
	}))
	defer srv.Close()
	api := apiclient.New(srv.URL)

	f, images, err := HydrateProduct(session.WithToken(context.Background(), "tok"), api, "p1")
	require.NoError(t, err)
	require.Equal(t, "Sneaker", f.Title)
	require.Equal(t, "19.99", f.Price)
	require.Equal(t, "5", f.Discount)
	require.Equal(t, "3", f.Stock)
	require.Equal(t, models.StatusLimitedStock, f.Status)
	require.True(t, f.IsPublished)
	require.Len(t, images, 1)
}

func TestHydrateProductFailureKeepsEmptyDefaults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Product not found"})
	}))
	defer srv.Close()
	api := apiclient.New(srv.URL)

	f, images, err := HydrateProduct(context.Background(), api, "missing")
	require.Error(t, err)
	require.Empty(t, f.Title)
	require.Equal(t, models.StatusInStock, f.Status)
	require.Empty(t, images)
}
