package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookbarn/middleware"
	"bookbarn/models"
	"bookbarn/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

/*
User endpoint test cases:
1) DELETE /users/:id with a valid-but-absent id -> 404, not 500
2) DELETE /users/:id with an existing account removes it; the repeat -> 404
3) GET /me returns the account behind the token
4) GET /me after the account is gone -> 404
5) POST /users drops a negatively-cached role for the registered email
*/

func userRouter(svc *fakeUserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewUserHandler(svc)

	r := gin.New()
	r.POST("/users", h.CreateUserHandler)
	r.DELETE("/users/:id", h.DeleteUserHandler)

	guarded := r.Group("")
	guarded.Use(middleware.JWTAuthMiddleware())
	guarded.GET("/me", h.MeHandler)
	return r
}

func TestDeleteUserEndpoint_UnknownID(t *testing.T) {
	id := primitive.NewObjectID()
	svc := &fakeUserService{users: map[string]*models.User{
		"gone@x.com": {ID: id, Email: "gone@x.com"},
	}}
	r := userRouter(svc)

	w := httptest.NewRecorder()
	path := "/users/" + primitive.NewObjectID().Hex()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, path, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	path = "/users/" + id.Hex()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, path, nil))
	assert.Equal(t, http.StatusOK, w.Code)

	// Double-submitted delete: the account is already gone.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, path, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMeHandler_KnownAccount(t *testing.T) {
	svc := &fakeUserService{users: map[string]*models.User{
		"a@x.com": {Email: "a@x.com", Role: models.RoleSeller, Verified: true},
	}}
	r := userRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", bearerFor(t, "a@x.com"))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "a@x.com", got.Email)
	assert.Equal(t, models.RoleSeller, got.Role)
	assert.True(t, got.Verified)
}

func TestMeHandler_TokenOutlivesAccount(t *testing.T) {
	svc := &fakeUserService{users: map[string]*models.User{}}
	r := userRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", bearerFor(t, "deleted@x.com"))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateUser_DropsNegativeRoleCache(t *testing.T) {
	mr := miniredis.RunT(t)
	utils.RoleCacheClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { utils.RoleCacheClient = nil }()

	cacheKey := utils.RoleCachePrefix + "new@x.com"
	require.NoError(t, mr.Set(cacheKey, ""))

	svc := &fakeUserService{users: map[string]*models.User{}}
	r := userRouter(svc)

	payload, _ := json.Marshal(models.User{Email: "new@x.com", Role: models.RoleSeller})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.False(t, mr.Exists(cacheKey), "stale role entry must be dropped on registration")
}
