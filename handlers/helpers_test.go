package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/digicraft-one/DigiCraft-MarketPlace-sub000/config"
	"github.com/digicraft-one/DigiCraft-MarketPlace-sub000/db"
	"github.com/digicraft-one/DigiCraft-MarketPlace-sub000/handlers"
	"github.com/digicraft-one/DigiCraft-MarketPlace-sub000/models"
	"github.com/digicraft-one/DigiCraft-MarketPlace-sub000/notifications"
	"github.com/digicraft-one/DigiCraft-MarketPlace-sub000/routes"
	"github.com/digicraft-one/DigiCraft-MarketPlace-sub000/services"
	"github.com/digicraft-one/DigiCraft-MarketPlace-sub000/utils"
)

const testSecret = "test-secret"

// fakeNotifier records dispatches and can be made to fail every channel
// call, standing in for a third-party outage.
type fakeNotifier struct {
	name         string
	fail         bool
	enquiries    []string
	applications []string
	products     []notifications.ProductView
}

func (f *fakeNotifier) Name() string { return f.name }

func (f *fakeNotifier) EnquiryReceived(ctx context.Context, e *models.Enquiry, product notifications.ProductView) error {
	f.enquiries = append(f.enquiries, e.Email)
	f.products = append(f.products, product)
	if f.fail {
		return errors.New("channel down")
	}
	return nil
}

func (f *fakeNotifier) ApplicationReceived(ctx context.Context, a *models.Application) error {
	f.applications = append(f.applications, a.Email)
	if f.fail {
		return errors.New("channel down")
	}
	return nil
}

type testEnv struct {
	router    *gin.Engine
	db        *gorm.DB
	notifiers []*fakeNotifier
}

// newTestEnv builds the real router over an in-memory database and the
// given fake channels (one healthy channel when none are given).
func newTestEnv(t *testing.T, notifiers ...*fakeNotifier) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	if len(notifiers) == 0 {
		notifiers = []*fakeNotifier{{name: "fake"}}
	}
	channels := make([]notifications.Notifier, 0, len(notifiers))
	for _, n := range notifiers {
		channels = append(channels, n)
	}

	cfg := &config.Config{
		JWTSecret:     testSecret,
		AdminEmail:    "admin@digicraft.one",
		AdminPassword: "hunter2",
	}

	sm := services.NewServiceManager(gdb, notifications.NewFanout(channels...), cfg)
	router := routes.SetupRoutes(handlers.NewHandlerManager(sm), cfg.JWTSecret)

	return &testEnv{router: router, db: gdb, notifiers: notifiers}
}

func (env *testEnv) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	env := decodeEnvelope(t, w)
	require.NoError(t, json.Unmarshal(env.Data, out))
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := utils.GenerateJWT([]byte(testSecret), "admin@digicraft.one")
	require.NoError(t, err)
	return token
}

func countRows(t *testing.T, gdb *gorm.DB, model interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, gdb.Model(model).Count(&count).Error)
	return count
}

// seedProduct inserts a product directly.
func seedProduct(t *testing.T, gdb *gorm.DB, title string) models.Product {
	t.Helper()
	product := models.Product{
		Title:            title,
		ShortDescription: "short",
		Category:         "ecommerce",
		Features:         models.StringList{"responsive"},
		Pricing: models.PricingList{
			{Tier: "base", Price: 99, DiscountPercentage: 0},
			{Tier: "pro", Price: 299, DiscountPercentage: 10},
		},
	}
	require.NoError(t, gdb.Create(&product).Error)
	return product
}
