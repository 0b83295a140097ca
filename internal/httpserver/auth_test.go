package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

var testSecret = []byte("test-secret")

func mintToken(t *testing.T, secret []byte, userID int64, roles []string) string {
	t.Helper()
	claims := identityClaims{
		UserID: userID,
		Roles:  roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func identityTestRouter(capture *principal) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(identityRequired(testSecret))
	router.GET("/probe", func(c *gin.Context) {
		*capture = currentPrincipal(c)
		c.Status(http.StatusOK)
	})
	return router
}

func TestIdentityRequired_MissingHeader(t *testing.T) {
	var p principal
	router := identityTestRouter(&p)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestIdentityRequired_WrongSecret(t *testing.T) {
	var p principal
	router := identityTestRouter(&p)

	token := mintToken(t, []byte("other-secret"), 5, nil)
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestIdentityRequired_Expired(t *testing.T) {
	var p principal
	router := identityTestRouter(&p)

	claims := identityClaims{
		UserID: 5,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestIdentityRequired_SetsPrincipal(t *testing.T) {
	var p principal
	router := identityTestRouter(&p)

	token := mintToken(t, testSecret, 5, []string{"BASIC", "PREMIUM"})
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if p.UserID != 5 || !p.Premium {
		t.Fatalf("unexpected principal %+v", p)
	}
}

func TestIdentityRequired_NonPremiumRoles(t *testing.T) {
	// The role match is exact: lowercase "premium" is not the PREMIUM role.
	for _, roles := range [][]string{{"BASIC"}, {"premium"}, {"Premium", "basic"}} {
		var p principal
		router := identityTestRouter(&p)

		token := mintToken(t, testSecret, 7, roles)
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("roles %v: expected 200, got %d", roles, rec.Code)
		}
		if p.UserID != 7 || p.Premium {
			t.Fatalf("roles %v: unexpected principal %+v", roles, p)
		}
	}
}
