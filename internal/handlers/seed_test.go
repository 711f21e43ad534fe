package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"froakie_tcg_back_end/internal/mocks"
	"froakie_tcg_back_end/internal/models"
)

func seedRouter(s *mocks.MockProductStore) *gin.Engine {
	r := gin.New()
	r.POST("/api/initialize", NewProductHandler(s).Initialize)
	return r
}

func TestInitialize(t *testing.T) {
	s := new(mocks.MockProductStore)
	s.On("Count", mock.Anything).Return(int64(0), nil)
	s.On("InsertMany", mock.Anything, mock.AnythingOfType("[]models.Product")).
		Return(nil).
		Run(func(args mock.Arguments) {
			products := args.Get(1).([]models.Product)
			assert.Len(t, products, 3)
			assert.Equal(t, "Charizard VMAX", products[0].Name)
		})

	w := performRequest(seedRouter(s), http.MethodPost, "/api/initialize", "")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Sample products added", body["message"])
	assert.Equal(t, float64(3), body["count"])
	s.AssertExpectations(t)
}

// Le second appel est un no-op : le seeding est idempotent.
func TestInitialize_AlreadyInitialized(t *testing.T) {
	s := new(mocks.MockProductStore)
	s.On("Count", mock.Anything).Return(int64(3), nil)

	w := performRequest(seedRouter(s), http.MethodPost, "/api/initialize", "")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Database already initialized", body["message"])
	s.AssertNotCalled(t, "InsertMany", mock.Anything, mock.Anything)
}
