package services_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ostroner/smartCarproject/internal/services"
)

func TestCatalog(t *testing.T) {
	list := services.Catalog()
	require.Len(t, list, 6)

	seenSlug := map[string]bool{}
	for _, svc := range list {
		assert.NotZero(t, svc.ID)
		assert.NotEmpty(t, svc.Name)
		assert.Positive(t, svc.Price)
		assert.False(t, seenSlug[svc.Slug], "slug %q not unique", svc.Slug)
		seenSlug[svc.Slug] = true
	}

	assert.Equal(t, "oil-change", list[2].Slug)
	assert.Equal(t, 60000.0, list[2].Price)
}

func TestCatalogIsCopied(t *testing.T) {
	a := services.Catalog()
	a[0].Price = 1
	b := services.Catalog()
	assert.Equal(t, 150000.0, b[0].Price)
}

func TestListServicesHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	services.NewHandler().Routes(r.Group("/api/services"))

	req := httptest.NewRequest(http.MethodGet, "/api/services", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Engine repair")
	assert.Contains(t, w.Body.String(), `"success":true`)
}
