package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuscanteen/canteen-app/models"
)

func TestRegisterAndLogin(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/register", "", map[string]string{
		"name":     "Asha",
		"email":    "asha@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Duplicate email.
	w = doJSON(t, r, http.MethodPost, "/register", "", map[string]string{
		"name":     "Asha Again",
		"email":    "asha@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Wrong password.
	w = doJSON(t, r, http.MethodPost, "/login", "", map[string]string{
		"email":    "asha@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := loginAs(t, r, "asha@example.com")

	w = doJSON(t, r, http.MethodGet, "/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var profile struct {
		Name string `json:"name"`
		Role string `json:"role"`
	}
	decodeData(t, w, &profile)
	assert.Equal(t, "Asha", profile.Name)
	assert.Equal(t, models.RoleCustomer, profile.Role, "role defaults to customer")
}

func TestAuthRequired(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/orders", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/orders", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
