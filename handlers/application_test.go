package handlers_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digicraft-one/DigiCraft-MarketPlace-sub000/constants"
	"github.com/digicraft-one/DigiCraft-MarketPlace-sub000/models"
)

func validApplicationBody() map[string]interface{} {
	return map[string]interface{}{
		"name":            "Meera",
		"email":           "meera@example.com",
		"phone":           "9876501234",
		"location":        "Pune",
		"role":            "Backend Engineer",
		"experience":      "3 years",
		"primarySkills":   "Go, Postgres",
		"secondarySkills": "",
		"resume":          "https://example.com/resume.pdf",
		"canJoin":         "2 weeks",
		"coverLetter":     "I build reliable services.",
	}
}

func TestApplicationCreateWithOptionalDefaults(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/v1/applications", "", validApplicationBody())
	require.Equal(t, http.StatusCreated, w.Code)

	var stored models.Application
	require.NoError(t, env.db.First(&stored).Error)
	assert.Equal(t, "", stored.SecondarySkills)
	assert.Equal(t, "", stored.Github)
	assert.Equal(t, constants.ApplicationPending, stored.Status)

	require.Len(t, env.notifiers[0].applications, 1)
	assert.Equal(t, "meera@example.com", env.notifiers[0].applications[0])
}

func TestApplicationCreateMissingFieldShortCircuits(t *testing.T) {
	env := newTestEnv(t)
	body := validApplicationBody()
	// drop two fields; the earlier one in validation order is reported
	delete(body, "phone")
	delete(body, "resume")

	w := env.request(t, http.MethodPost, "/api/v1/applications", "", body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeEnvelope(t, w)
	assert.Contains(t, resp.Error, "phone")
	assert.EqualValues(t, 0, countRows(t, env.db, &models.Application{}))
}

func TestApplicationCreateSucceedsWhenChannelsFail(t *testing.T) {
	env := newTestEnv(t, &fakeNotifier{name: "telegram", fail: true}, &fakeNotifier{name: "email", fail: true})

	w := env.request(t, http.MethodPost, "/api/v1/applications", "", validApplicationBody())
	require.Equal(t, http.StatusCreated, w.Code)
	assert.EqualValues(t, 1, countRows(t, env.db, &models.Application{}))
}

func TestApplicationUnauthenticatedListLeaksNothing(t *testing.T) {
	env := newTestEnv(t)
	env.request(t, http.MethodPost, "/api/v1/applications", "", validApplicationBody())

	w := env.request(t, http.MethodGet, "/api/v1/applications", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	resp := decodeEnvelope(t, w)
	assert.False(t, resp.Success)
	assert.Nil(t, resp.Data)
	assert.NotContains(t, w.Body.String(), "meera@example.com")
}

func TestApplicationPatchStatus(t *testing.T) {
	env := newTestEnv(t)
	env.request(t, http.MethodPost, "/api/v1/applications", "", validApplicationBody())

	var stored models.Application
	require.NoError(t, env.db.First(&stored).Error)

	w := env.request(t, http.MethodPatch, "/api/v1/applications/"+stored.ID.String(), adminToken(t),
		map[string]interface{}{"status": "selected"})
	require.Equal(t, http.StatusOK, w.Code)

	var after models.Application
	require.NoError(t, env.db.First(&after, "id = ?", stored.ID).Error)
	assert.Equal(t, constants.ApplicationSelected, after.Status)
}

func TestApplicationPatchInvalidStatus(t *testing.T) {
	env := newTestEnv(t)
	env.request(t, http.MethodPost, "/api/v1/applications", "", validApplicationBody())

	var stored models.Application
	require.NoError(t, env.db.First(&stored).Error)

	w := env.request(t, http.MethodPatch, "/api/v1/applications/"+stored.ID.String(), adminToken(t),
		map[string]interface{}{"status": "hired"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var after models.Application
	require.NoError(t, env.db.First(&after, "id = ?", stored.ID).Error)
	assert.Equal(t, constants.ApplicationPending, after.Status)
}

func TestApplicationDeleteMissing(t *testing.T) {
	env := newTestEnv(t)
	w := env.request(t, http.MethodDelete, "/api/v1/applications/"+uuid.NewString(), adminToken(t), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestApplicationGet(t *testing.T) {
	env := newTestEnv(t)
	env.request(t, http.MethodPost, "/api/v1/applications", "", validApplicationBody())

	var stored models.Application
	require.NoError(t, env.db.First(&stored).Error)

	w := env.request(t, http.MethodGet, "/api/v1/applications/"+stored.ID.String(), adminToken(t), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Application
	decodeData(t, w, &got)
	assert.Equal(t, stored.ID, got.ID)
	assert.Equal(t, "Backend Engineer", got.Role)
}
