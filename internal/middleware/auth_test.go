package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret, rol string, expiresIn time.Duration) string {
	t.Helper()
	claims := JWTClaims{
		UserID:   "9e1c9f3a-0000-1111-2222-333344445555",
		Username: "caja1",
		Rol:      rol,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func protectedRouter(roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := []gin.HandlerFunc{JWTAuth(testSecret)}
	if len(roles) > 0 {
		handlers = append(handlers, RequireRole(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		claims := GetClaims(c)
		c.JSON(http.StatusOK, gin.H{"rol": claims.Rol})
	})
	r.GET("/protegida", handlers...)
	return r
}

func doGet(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthSinToken(t *testing.T) {
	w := doGet(protectedRouter(), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthTokenValido(t *testing.T) {
	token := signToken(t, testSecret, "cajero", time.Hour)
	w := doGet(protectedRouter(), token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "cajero")
}

func TestJWTAuthTokenExpirado(t *testing.T) {
	token := signToken(t, testSecret, "cajero", -time.Hour)
	w := doGet(protectedRouter(), token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthFirmaIncorrecta(t *testing.T) {
	token := signToken(t, "otro-secreto", "cajero", time.Hour)
	w := doGet(protectedRouter(), token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRolePermitido(t *testing.T) {
	token := signToken(t, testSecret, "supervisor", time.Hour)
	w := doGet(protectedRouter("supervisor", "administrador"), token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRoleDenegado(t *testing.T) {
	token := signToken(t, testSecret, "cajero", time.Hour)
	w := doGet(protectedRouter("administrador"), token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
