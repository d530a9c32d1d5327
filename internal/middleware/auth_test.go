package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/org-directory-api/internal/config"
	"github.com/kingrain94/org-directory-api/internal/tenancy"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	auth   *AuthMiddleware
	router *gin.Engine

	observedTenant string
	observedOK     bool
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.auth = NewAuthMiddleware(&config.Config{
		JWTSecretKey:       "test-secret",
		JWTExpirationHours: 1,
	})

	s.router = gin.New()
	s.router.GET("/probe", s.auth.JWTAuth(), func(c *gin.Context) {
		s.observedTenant, s.observedOK = tenancy.FromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) probe(token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/probe", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	s.router.ServeHTTP(w, req)
	return w
}

func (s *AuthMiddlewareTestSuite) TestJWTAuth_TenantTokenEstablishesScope() {
	token, err := s.auth.GenerateToken("user1", "tenant1", []string{"user"})
	s.Require().NoError(err)

	w := s.probe(token)

	s.Equal(http.StatusOK, w.Code)
	s.True(s.observedOK)
	s.Equal("tenant1", s.observedTenant)
}

func (s *AuthMiddlewareTestSuite) TestJWTAuth_AdminTokenRunsUnrestricted() {
	token, err := s.auth.GenerateToken("admin1", "", []string{RoleAdmin})
	s.Require().NoError(err)

	w := s.probe(token)

	s.Equal(http.StatusOK, w.Code)
	s.False(s.observedOK)
}

func (s *AuthMiddlewareTestSuite) TestJWTAuth_NonAdminWithoutTenantIsRejected() {
	token, err := s.auth.GenerateToken("user1", "", []string{"user"})
	s.Require().NoError(err)

	w := s.probe(token)

	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *AuthMiddlewareTestSuite) TestJWTAuth_MissingHeaderIsRejected() {
	w := s.probe("")
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *AuthMiddlewareTestSuite) TestJWTAuth_InvalidTokenIsRejected() {
	w := s.probe("not-a-token")
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *AuthMiddlewareTestSuite) TestJWTAuth_ScopesAreIsolatedPerRequest() {
	tenant1Token, err := s.auth.GenerateToken("user1", "tenant1", []string{"user"})
	s.Require().NoError(err)
	tenant2Token, err := s.auth.GenerateToken("user2", "tenant2", []string{"user"})
	s.Require().NoError(err)

	s.probe(tenant1Token)
	s.Equal("tenant1", s.observedTenant)

	s.probe(tenant2Token)
	s.Equal("tenant2", s.observedTenant)
}
