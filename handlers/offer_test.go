package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digicraft-one/DigiCraft-MarketPlace-sub000/models"
)

func offerBody(title string, expiresAt time.Time) map[string]interface{} {
	return map[string]interface{}{
		"title":       title,
		"description": "limited time deal",
		"bannerImage": "https://cdn.example.com/banner.png",
		"expiresAt":   expiresAt.Format(time.RFC3339),
	}
}

func TestOfferPublicListOnlyLive(t *testing.T) {
	env := newTestEnv(t)
	token := adminToken(t)
	future := time.Now().Add(48 * time.Hour)

	w := env.request(t, http.MethodPost, "/api/v1/offers", token, offerBody("live", future))
	require.Equal(t, http.StatusCreated, w.Code)

	inactive := offerBody("inactive", future)
	inactive["active"] = false
	w = env.request(t, http.MethodPost, "/api/v1/offers", token, inactive)
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.request(t, http.MethodPost, "/api/v1/offers", token, offerBody("expired", time.Now().Add(-time.Hour)))
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.request(t, http.MethodGet, "/api/v1/offers", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var views []models.OfferView
	decodeData(t, w, &views)
	require.Len(t, views, 1)
	assert.Equal(t, "live", views[0].Title)

	now := time.Now()
	for _, v := range views {
		assert.True(t, v.Active)
		assert.False(t, v.ExpiresAt.Before(now))
	}
}

func TestOfferCreateDefaults(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/v1/offers", adminToken(t),
		offerBody("defaults", time.Now().Add(time.Hour)))
	require.Equal(t, http.StatusCreated, w.Code)

	var stored models.Offer
	require.NoError(t, env.db.First(&stored).Error)
	assert.True(t, stored.Active)
	assert.EqualValues(t, 0, countRows(t, env.db, &models.OfferProduct{}))
}

func TestOfferCreateMissingField(t *testing.T) {
	env := newTestEnv(t)
	body := offerBody("incomplete", time.Now().Add(time.Hour))
	delete(body, "bannerImage")

	w := env.request(t, http.MethodPost, "/api/v1/offers", adminToken(t), body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeEnvelope(t, w)
	assert.Contains(t, resp.Error, "bannerImage")
}

func TestOfferCreateRequiresAuth(t *testing.T) {
	env := newTestEnv(t)
	w := env.request(t, http.MethodPost, "/api/v1/offers", "", offerBody("nope", time.Now().Add(time.Hour)))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.EqualValues(t, 0, countRows(t, env.db, &models.Offer{}))
}

func TestOfferIDMustBeSyntacticallyValid(t *testing.T) {
	env := newTestEnv(t)
	token := adminToken(t)

	for _, method := range []string{http.MethodGet, http.MethodPatch, http.MethodDelete} {
		w := env.request(t, method, "/api/v1/offers/not-a-uuid", token, map[string]interface{}{})
		assert.Equal(t, http.StatusBadRequest, w.Code, method)
	}
}

func TestOfferWithProductPopulation(t *testing.T) {
	env := newTestEnv(t)
	product := seedProduct(t, env.db, "Shopfront")

	body := offerBody("bundle", time.Now().Add(time.Hour))
	body["products"] = []map[string]interface{}{
		{"productId": product.ID.String(), "tier": "pro", "price": 249.0},
	}

	w := env.request(t, http.MethodPost, "/api/v1/offers", adminToken(t), body)
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.request(t, http.MethodGet, "/api/v1/offers", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var views []models.OfferView
	decodeData(t, w, &views)
	require.Len(t, views, 1)
	require.Len(t, views[0].Products, 1)

	line := views[0].Products[0]
	assert.Equal(t, product.ID, line.ProductID)
	require.NotNil(t, line.ProductRef)
	assert.Equal(t, "Shopfront", line.ProductRef.Title)
	assert.Equal(t, "short", line.ProductRef.ShortDescription)
	require.Len(t, line.ProductRef.Pricing, 2)
}

func TestOfferCreateRejectsUnknownProduct(t *testing.T) {
	env := newTestEnv(t)

	body := offerBody("bundle", time.Now().Add(time.Hour))
	body["products"] = []map[string]interface{}{
		{"productId": "3f1e9d50-0000-0000-0000-000000000000"},
	}

	w := env.request(t, http.MethodPost, "/api/v1/offers", adminToken(t), body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.EqualValues(t, 0, countRows(t, env.db, &models.Offer{}))
}

func TestOfferPatchAndDelete(t *testing.T) {
	env := newTestEnv(t)
	token := adminToken(t)

	w := env.request(t, http.MethodPost, "/api/v1/offers", token, offerBody("seasonal", time.Now().Add(time.Hour)))
	require.Equal(t, http.StatusCreated, w.Code)

	var stored models.Offer
	require.NoError(t, env.db.First(&stored).Error)

	w = env.request(t, http.MethodPatch, "/api/v1/offers/"+stored.ID.String(), token,
		map[string]interface{}{"active": false})
	require.Equal(t, http.StatusOK, w.Code)

	// deactivated offers disappear from the public listing
	w = env.request(t, http.MethodGet, "/api/v1/offers", "", nil)
	var views []models.OfferView
	decodeData(t, w, &views)
	assert.Empty(t, views)

	w = env.request(t, http.MethodDelete, "/api/v1/offers/"+stored.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.request(t, http.MethodGet, "/api/v1/offers/"+stored.ID.String(), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
