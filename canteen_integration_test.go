package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/campuscanteen/canteen-app/models"
	"github.com/campuscanteen/canteen-app/router"
	"github.com/campuscanteen/canteen-app/utils"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()
	os.Exit(m.Run())
}

// TestEndToEndIntegration walks the whole order workflow:
// 0. Seed users and menu, login both roles
// 1. Customer places an order (pending, total = round(subtotal*1.05))
// 2. Staff approves with a 20 minute estimate
// 3. preparing -> ready -> completed, one customer notification each step
// 4. Rejecting the completed order fails and changes nothing
func TestEndToEndIntegration(t *testing.T) {
	db := setupIntegrationDB(t)
	r := router.SetupRouter(db, 500)

	customerToken := integrationLogin(t, r, "asha@example.com")
	staffToken := integrationLogin(t, r, "meena@example.com")

	// Place: 2x100 + 1x50 => subtotal 250, tax 13, total 263.
	w := request(r, http.MethodPost, "/orders", customerToken, map[string]interface{}{
		"items": []map[string]interface{}{
			{"menu_item_id": 1, "quantity": 2},
			{"menu_item_id": 2, "quantity": 1},
		},
		"payment_method": "upi",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("place order: expected 201, got %d, body=%s", w.Code, w.Body.String())
	}
	var order models.Order
	decode(t, w, &order)
	if order.Status != models.StatusPending {
		t.Fatalf("expected pending, got %s", order.Status)
	}
	if order.TotalAmount != 263 {
		t.Fatalf("expected total 263, got %d", order.TotalAmount)
	}

	statusURL := fmt.Sprintf("/orders/%d/status", order.ID)

	// Approve with estimate.
	w = request(r, http.MethodPatch, statusURL, staffToken, map[string]interface{}{
		"status": "approved", "estimated_minutes": 20,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("approve: expected 200, got %d, body=%s", w.Code, w.Body.String())
	}
	decode(t, w, &order)
	if order.EstimatedMinutes == nil || *order.EstimatedMinutes != 20 {
		t.Fatalf("expected estimated_minutes=20, got %v", order.EstimatedMinutes)
	}

	// No skips, one notification per step.
	for i, status := range []string{"preparing", "ready", "completed"} {
		w = request(r, http.MethodPatch, statusURL, staffToken, map[string]interface{}{"status": status})
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d, body=%s", status, w.Code, w.Body.String())
		}

		w = request(r, http.MethodGet, "/notifications", customerToken, nil)
		var notifs []models.Notification
		decode(t, w, &notifs)
		if len(notifs) != i+2 { // approve produced the first one
			t.Fatalf("after %s: expected %d notifications, got %d", status, i+2, len(notifs))
		}
	}

	// Terminal state: reject must fail and leave the order untouched.
	w = request(r, http.MethodPatch, statusURL, staffToken, map[string]interface{}{
		"status": "rejected", "rejection_reason": "changed my mind",
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("reject completed: expected 409, got %d", w.Code)
	}

	w = request(r, http.MethodGet, fmt.Sprintf("/orders/%d", order.ID), customerToken, nil)
	decode(t, w, &order)
	if order.Status != models.StatusCompleted {
		t.Fatalf("expected completed, got %s", order.Status)
	}
	if order.RejectionReason != nil {
		t.Fatalf("rejection reason must not be set on a completed order")
	}
}

func setupIntegrationDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:integration?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Notification{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	db.Create(&models.User{Name: "Asha", Email: "asha@example.com", Password: string(hashed), Role: models.RoleCustomer})
	db.Create(&models.User{Name: "Meena", Email: "meena@example.com", Password: string(hashed), Role: models.RoleStaff})

	db.Create(&models.MenuItem{Name: "Veg Biryani", Price: 100, Category: "lunch", Available: true})
	db.Create(&models.MenuItem{Name: "Masala Chai", Price: 50, Category: "beverages", Available: true})

	return db
}

func integrationLogin(t *testing.T, r *gin.Engine, email string) string {
	w := request(r, http.MethodPost, "/login", "", map[string]string{
		"email":    email,
		"password": "secret123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: code=%d, body=%s", email, w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("login %s: bad response: %v", email, err)
	}
	if resp.Data.Token == "" {
		t.Fatalf("login %s: empty token", email)
	}
	return resp.Data.Token
}

func request(r *gin.Engine, method, url, token string, payload interface{}) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		json.NewEncoder(&body).Encode(payload)
	}
	req := httptest.NewRequest(method, url, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var resp struct {
		Status  bool            `json:"status"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad envelope: %v, body=%s", err, w.Body.String())
	}
	if err := json.Unmarshal(resp.Data, out); err != nil {
		t.Fatalf("bad data payload: %v, body=%s", err, w.Body.String())
	}
}
