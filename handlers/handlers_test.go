package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"restaurant-pos-api/config"
	"restaurant-pos-api/middleware"
	"restaurant-pos-api/models"
	"restaurant-pos-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

// setupRouter points the global DB at a fresh in-memory database and builds
// the real route table, so tests exercise auth and role gates end to end.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.DB = newTestDB(t)
	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

// createStaff inserts a staff account with password "secret123" and returns
// it together with a valid token.
func createStaff(t *testing.T, username string, role models.StaffRole) (models.User, string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{
		Name:         "Test " + username,
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}
	require.NoError(t, config.DB.Create(&user).Error)
	token, err := middleware.GenerateToken(&user)
	require.NoError(t, err)
	return user, token
}

func do(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// ── Auth ───────────────────────────────────────────────────────────

func TestLoginSucceedsWithCorrectPassword(t *testing.T) {
	r := setupRouter(t)
	createStaff(t, "maria", models.RoleWaiter)

	w := do(r, http.MethodPost, "/api/auth/login", "", gin.H{"username": "maria", "password": "secret123"})
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.NotEmpty(t, body["token"])
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "waiter", user["role"])
}

func TestLoginNeverRevealsWhichCredentialFailed(t *testing.T) {
	r := setupRouter(t)
	createStaff(t, "maria", models.RoleWaiter)

	// wrong password twice in a row
	w1 := do(r, http.MethodPost, "/api/auth/login", "", gin.H{"username": "maria", "password": "wrong"})
	w2 := do(r, http.MethodPost, "/api/auth/login", "", gin.H{"username": "maria", "password": "wrong"})
	require.Equal(t, http.StatusUnauthorized, w1.Code)
	require.Equal(t, http.StatusUnauthorized, w2.Code)

	// unknown username: identical response body, nothing to enumerate on
	w3 := do(r, http.MethodPost, "/api/auth/login", "", gin.H{"username": "nobody", "password": "wrong"})
	require.Equal(t, http.StatusUnauthorized, w3.Code)
	assert.Equal(t, w1.Body.String(), w2.Body.String())
	assert.Equal(t, w1.Body.String(), w3.Body.String())
}

// ── Staff accounts ─────────────────────────────────────────────────

func TestUserCRUD(t *testing.T) {
	r := setupRouter(t)
	_, adminToken := createStaff(t, "boss", models.RoleAdmin)

	w := do(r, http.MethodPost, "/api/users", adminToken, gin.H{
		"name": "John", "username": "john", "password": "secret123", "role": "kitchen",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode(t, w)["user"].(map[string]interface{})
	id := uint(created["id"].(float64))

	// duplicate username
	w = do(r, http.MethodPost, "/api/users", adminToken, gin.H{
		"name": "John II", "username": "john", "password": "secret123", "role": "bar",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// invalid role
	w = do(r, http.MethodPost, "/api/users", adminToken, gin.H{
		"name": "X", "username": "xx", "password": "secret123", "role": "chef",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// update name and role; username stays immutable by design
	w = do(r, http.MethodPut, fmt.Sprintf("/api/users/%d", id), adminToken, gin.H{"name": "Johnny", "role": "bar"})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode(t, w)["user"].(map[string]interface{})
	assert.Equal(t, "Johnny", updated["name"])
	assert.Equal(t, "bar", updated["role"])
	assert.Equal(t, "john", updated["username"])

	w = do(r, http.MethodDelete, fmt.Sprintf("/api/users/%d", id), adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = do(r, http.MethodDelete, fmt.Sprintf("/api/users/%d", id), adminToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStaffCanOnlyReadOwnAccount(t *testing.T) {
	r := setupRouter(t)
	waiter, waiterToken := createStaff(t, "maria", models.RoleWaiter)
	other, _ := createStaff(t, "pete", models.RoleKitchen)
	_, managerToken := createStaff(t, "mgr", models.RoleManager)

	w := do(r, http.MethodGet, fmt.Sprintf("/api/users/%d", waiter.ID), waiterToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, fmt.Sprintf("/api/users/%d", other.ID), waiterToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(r, http.MethodGet, fmt.Sprintf("/api/users/%d", other.ID), managerToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// listing users is admin/manager territory
	w = do(r, http.MethodGet, "/api/users", waiterToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

// ── Tables ─────────────────────────────────────────────────────────

func TestTableCRUD(t *testing.T) {
	r := setupRouter(t)
	_, adminToken := createStaff(t, "boss", models.RoleAdmin)
	_, waiterToken := createStaff(t, "maria", models.RoleWaiter)

	w := do(r, http.MethodPost, "/api/tables", adminToken, gin.H{"number": "T1", "is_vip": true})
	require.Equal(t, http.StatusCreated, w.Code)
	table := decode(t, w)["table"].(map[string]interface{})
	assert.Equal(t, "available", table["status"])
	assert.Equal(t, true, table["is_vip"])
	id := uint(table["id"].(float64))

	// duplicate table number
	w = do(r, http.MethodPost, "/api/tables", adminToken, gin.H{"number": "T1"})
	assert.Equal(t, http.StatusConflict, w.Code)

	// waiters can see tables but not manage them
	w = do(r, http.MethodGet, "/api/tables", waiterToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = do(r, http.MethodPost, "/api/tables", waiterToken, gin.H{"number": "T2"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(r, http.MethodPut, fmt.Sprintf("/api/tables/%d", id), adminToken, gin.H{"status": "occupied"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "occupied", decode(t, w)["table"].(map[string]interface{})["status"])

	w = do(r, http.MethodPut, fmt.Sprintf("/api/tables/%d", id), adminToken, gin.H{"status": "reserved"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodDelete, fmt.Sprintf("/api/tables/%d", id), adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

// ── Menu items ─────────────────────────────────────────────────────

func TestMenuItemCRUD(t *testing.T) {
	r := setupRouter(t)
	_, adminToken := createStaff(t, "boss", models.RoleAdmin)
	_, kitchenToken := createStaff(t, "pete", models.RoleKitchen)

	w := do(r, http.MethodPost, "/api/menu-items", adminToken, gin.H{
		"name": "Steak", "category": "raw meat", "price": 10.00,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	item := decode(t, w)["item"].(map[string]interface{})
	assert.Equal(t, true, item["is_available"])
	id := uint(item["id"].(float64))

	// unique name
	w = do(r, http.MethodPost, "/api/menu-items", adminToken, gin.H{
		"name": "Steak", "category": "food", "price": 12.00,
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// unknown category and negative price are invalid input
	w = do(r, http.MethodPost, "/api/menu-items", adminToken, gin.H{
		"name": "Mystery", "category": "dessert", "price": 5.00,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = do(r, http.MethodPost, "/api/menu-items", adminToken, gin.H{
		"name": "Freebie", "category": "food", "price": -1.00,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// every staff role can browse the menu; only admin/manager mutate it
	w = do(r, http.MethodGet, "/api/menu-items?category=raw%20meat", kitchenToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode(t, w)["count"])
	w = do(r, http.MethodDelete, fmt.Sprintf("/api/menu-items/%d", id), kitchenToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(r, http.MethodPut, fmt.Sprintf("/api/menu-items/%d", id), adminToken, gin.H{"is_available": false})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decode(t, w)["item"].(map[string]interface{})["is_available"])

	w = do(r, http.MethodDelete, fmt.Sprintf("/api/menu-items/%d", id), adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMenuCategoryStoredCanonically(t *testing.T) {
	r := setupRouter(t)
	_, adminToken := createStaff(t, "boss", models.RoleAdmin)

	w := do(r, http.MethodPost, "/api/menu-items", adminToken, gin.H{
		"name": "Ribeye", "category": "Raw Meat", "price": 18.00,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	item := decode(t, w)["item"].(map[string]interface{})
	assert.Equal(t, "raw_meat", item["category"])
	id := uint(item["id"].(float64))

	// the canonical filter finds it no matter how the category was spelled
	w = do(r, http.MethodGet, "/api/menu-items?category=raw_meat", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode(t, w)["count"])
	w = do(r, http.MethodGet, "/api/menu-items?category=RAW%20MEAT", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode(t, w)["count"])

	// updates normalize too
	w = do(r, http.MethodPut, fmt.Sprintf("/api/menu-items/%d", id), adminToken, gin.H{"category": "Drinks"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "drinks", decode(t, w)["item"].(map[string]interface{})["category"])
}

func TestNonNumericIDIsNotFound(t *testing.T) {
	r := setupRouter(t)
	_, adminToken := createStaff(t, "boss", models.RoleAdmin)
	_, waiterToken := createStaff(t, "anna", models.RoleWaiter)

	w := do(r, http.MethodGet, "/api/orders/abc", waiterToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = do(r, http.MethodGet, "/api/menu-items/abc", waiterToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = do(r, http.MethodGet, "/api/users/abc", adminToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = do(r, http.MethodPut, "/api/tables/abc", adminToken, gin.H{"status": "occupied"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = do(r, http.MethodPut, "/api/orders/abc/status", waiterToken, gin.H{"status": "closed"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListFailureIsServerError(t *testing.T) {
	r := setupRouter(t)
	_, adminToken := createStaff(t, "boss", models.RoleAdmin)

	require.NoError(t, config.DB.Migrator().DropTable(&models.MenuItem{}))

	w := do(r, http.MethodGet, "/api/menu-items", adminToken, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
