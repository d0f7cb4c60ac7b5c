package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sravanthchary14/sustainshare/config"
	"github.com/sravanthchary14/sustainshare/internal/api"
	"github.com/sravanthchary14/sustainshare/internal/router"
	"github.com/sravanthchary14/sustainshare/internal/service"
	"github.com/sravanthchary14/sustainshare/internal/testhelpers"
)

// setupAPITest builds the full application router on an in-memory database.
func setupAPITest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDatabase(t)
	cfg := &config.Config{
		FrontendOrigin: "http://localhost:3000",
		JWTSecret:      "test-secret",
	}

	donationSvc := service.NewDonationService(db)
	foodSvc := service.NewFoodService(db)
	userSvc := service.NewUserService(db)
	pickupSvc := service.NewPickupService(db)
	notificationSvc := service.NewNotificationService(donationSvc, userSvc)
	authSvc := service.NewAuthService(cfg.JWTSecret)

	handlers := router.Handlers{
		Auth:          api.NewAuthHandler(userSvc, authSvc),
		Donations:     api.NewDonationHandler(donationSvc),
		Food:          api.NewFoodHandler(foodSvc),
		Users:         api.NewUserHandler(userSvc),
		Pickups:       api.NewPickupHandler(pickupSvc),
		Notifications: api.NewNotificationHandler(notificationSvc),
	}

	return router.SetupRouter(cfg, handlers, authSvc, nil), db
}

// doJSON issues a request with a JSON body and returns the recorder.
func doJSON(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func doGet(t *testing.T, engine *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func newAuthedGet(t *testing.T, path, token string) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func doRequest(engine *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}
