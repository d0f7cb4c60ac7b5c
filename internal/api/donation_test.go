package api_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sravanthchary14/sustainshare/internal/models"
	"github.com/sravanthchary14/sustainshare/internal/testhelpers"
)

func TestClaimEndpoint(t *testing.T) {
	engine, db := setupAPITest(t)

	donor := testhelpers.CreateTestUser(t, db, models.RoleDonor)
	charity := testhelpers.CreateTestUser(t, db, models.RoleCharity)
	food := testhelpers.CreateTestFoodItem(t, db, &donor.ID)

	w := doJSON(t, engine, http.MethodPost,
		fmt.Sprintf("/api/donations/claim/%d", food.ID),
		map[string]any{"charityId": charity.ID})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	require.NotNil(t, body["claimedAt"])
	charityObj, ok := body["charity"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, charity.ID, charityObj["id"])
	foodObj, ok := body["foodItem"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, food.ID, foodObj["id"])
}

func TestClaimEndpointMissingCharityID(t *testing.T) {
	engine, db := setupAPITest(t)

	donor := testhelpers.CreateTestUser(t, db, models.RoleDonor)
	food := testhelpers.CreateTestFoodItem(t, db, &donor.ID)

	w := doJSON(t, engine, http.MethodPost,
		fmt.Sprintf("/api/donations/claim/%d", food.ID),
		map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "charityId is required")
}

func TestClaimEndpointConflictOnSecondClaim(t *testing.T) {
	engine, db := setupAPITest(t)

	donor := testhelpers.CreateTestUser(t, db, models.RoleDonor)
	first := testhelpers.CreateTestUser(t, db, models.RoleCharity)
	second := testhelpers.CreateTestUser(t, db, models.RoleCharity)
	food := testhelpers.CreateTestFoodItem(t, db, &donor.ID)

	path := fmt.Sprintf("/api/donations/claim/%d", food.ID)

	w := doJSON(t, engine, http.MethodPost, path, map[string]any{"charityId": first.ID})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, engine, http.MethodPost, path, map[string]any{"charityId": second.ID})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Already claimed or invalid IDs")

	// The stored claim still belongs to the first charity.
	var entry models.DonationLog
	require.NoError(t, db.Where("food_item_id = ?", food.ID).First(&entry).Error)
	require.NotNil(t, entry.CharityID)
	assert.Equal(t, first.ID, *entry.CharityID)
}

func TestClaimEndpointUnknownFoodItem(t *testing.T) {
	engine, db := setupAPITest(t)

	charity := testhelpers.CreateTestUser(t, db, models.RoleCharity)

	w := doJSON(t, engine, http.MethodPost, "/api/donations/claim/999",
		map[string]any{"charityId": charity.ID})
	assert.Equal(t, http.StatusConflict, w.Code)

	var n int64
	require.NoError(t, db.Model(&models.DonationLog{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestCreateAndUpdateDonationLog(t *testing.T) {
	engine, db := setupAPITest(t)

	donor := testhelpers.CreateTestUser(t, db, models.RoleDonor)
	charity := testhelpers.CreateTestUser(t, db, models.RoleCharity)
	food := testhelpers.CreateTestFoodItem(t, db, &donor.ID)

	w := doJSON(t, engine, http.MethodPost, "/api/donations", map[string]any{
		"donor":    map[string]any{"id": donor.ID},
		"foodItem": map[string]any{"id": food.ID},
	})
	require.Equal(t, http.StatusOK, w.Code)

	created := decodeBody(t, w)
	id := created["id"].(float64)
	require.NotZero(t, id)
	assert.NotNil(t, created["donatedAt"])
	assert.Nil(t, created["charity"])

	// Patch only the charity; everything else must survive.
	w = doJSON(t, engine, http.MethodPut, fmt.Sprintf("/api/donations/%.0f", id),
		map[string]any{"charity": map[string]any{"id": charity.ID}})
	require.Equal(t, http.StatusOK, w.Code)

	updated := decodeBody(t, w)
	charityObj, ok := updated["charity"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, charity.ID, charityObj["id"])
	donorObj, ok := updated["donor"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, donor.ID, donorObj["id"])
	assert.Equal(t, created["donatedAt"], updated["donatedAt"])
}

func TestUpdateDonationLogNotFoundEndpoint(t *testing.T) {
	engine, _ := setupAPITest(t)

	w := doJSON(t, engine, http.MethodPut, "/api/donations/999", map[string]any{})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDonationCounters(t *testing.T) {
	engine, db := setupAPITest(t)

	donor := testhelpers.CreateTestUser(t, db, models.RoleDonor)
	charity := testhelpers.CreateTestUser(t, db, models.RoleCharity)
	food := testhelpers.CreateTestFoodItem(t, db, &donor.ID)
	other := testhelpers.CreateTestFoodItem(t, db, &donor.ID)

	w := doJSON(t, engine, http.MethodPost, "/api/donations", map[string]any{
		"donor":    map[string]any{"id": donor.ID},
		"foodItem": map[string]any{"id": other.ID},
	})
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, engine, http.MethodPost,
		fmt.Sprintf("/api/donations/claim/%d", food.ID),
		map[string]any{"charityId": charity.ID})
	require.Equal(t, http.StatusOK, w.Code)

	// Counters answer bare JSON numbers.
	w = doGet(t, engine, "/api/donations/count")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2", strings.TrimSpace(w.Body.String()))

	w = doGet(t, engine, "/api/donations/claimed/count")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", strings.TrimSpace(w.Body.String()))

	w = doGet(t, engine, "/api/donations/foodquantity/total")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, fmt.Sprint(food.Quantity+other.Quantity), strings.TrimSpace(w.Body.String()))
}
