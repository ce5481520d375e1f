package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookbarn/config"
	"bookbarn/models"
	"bookbarn/services/user"
	"bookbarn/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

/*
Token endpoint test cases:
1) GET /jwt for an existing user returns a non-empty, decodable accessToken
2) GET /jwt for an unknown email returns 403 with an empty accessToken
3) GET /jwt without an email parameter returns 400
*/

type fakeUserService struct {
	users map[string]*models.User
}

func (f *fakeUserService) SaveUser(u models.User) error { f.users[u.Email] = &u; return nil }
func (f *fakeUserService) GetUserByEmail(email string) (*models.User, error) {
	return f.users[email], nil
}
func (f *fakeUserService) GetAllUsers() ([]models.User, error) { return nil, nil }
func (f *fakeUserService) VerifyUser(id string) error          { return nil }
func (f *fakeUserService) DeleteUser(id string) (string, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return "", err
	}
	for email, u := range f.users {
		if u.ID.Hex() == id {
			delete(f.users, email)
			return email, nil
		}
	}
	return "", user.ErrUserNotFound
}
func (f *fakeUserService) IssueToken(email string) (string, error) {
	usr := f.users[email]
	if usr == nil || usr.Email == "" {
		return "", nil
	}
	return utils.GenerateToken(usr.Email, utils.TokenValidity)
}
func (f *fakeUserService) IsAdmin(email string) (bool, error)    { return false, nil }
func (f *fakeUserService) IsSeller(email string) (bool, error)   { return false, nil }
func (f *fakeUserService) IsVerified(email string) (bool, error) { return false, nil }

func jwtRouter(users ...*models.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := &fakeUserService{users: map[string]*models.User{}}
	for _, u := range users {
		svc.users[u.Email] = u
	}
	h := NewUserHandler(svc)

	r := gin.New()
	r.GET("/jwt", h.JWTHandler)
	return r
}

func TestJWTHandler_ExistingUser(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	r := jwtRouter(&models.User{Email: "a@x.com"})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/jwt?email=a@x.com", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body["accessToken"])

	email, err := utils.ExtractEmailFromToken(body["accessToken"])
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email)
}

func TestJWTHandler_UnknownUser(t *testing.T) {
	r := jwtRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/jwt?email=nouser@x.com", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	token, present := body["accessToken"]
	assert.True(t, present)
	assert.Empty(t, token)
}

func TestJWTHandler_MissingEmail(t *testing.T) {
	r := jwtRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/jwt", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
