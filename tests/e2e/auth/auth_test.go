//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	resdto "lushquote/internal/handler/dto/response"
	"lushquote/internal/pkg/cookie"
	"lushquote/tests/common/builder"
	"lushquote/tests/common/httptest"
	"lushquote/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	refreshURL  = "/api/auth/refresh"
	logoutURL   = "/api/auth/logout"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) registerOwner(email string) string {
	t := s.T()

	b := builder.NewAuthBuilder()
	b.Email = email
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, b.BuildRegister(), "")
	require.Equal(t, http.StatusCreated, w.Code, "registration failed: %s", w.Body.String())

	var res resdto.TokenResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
	require.NotEmpty(t, res.AccessToken)
	return res.AccessToken
}

func (s *authSuite) TestRegister() {
	s.Run("registration creates a free tier owner", func() {
		t := s.T()
		token := s.registerOwner("new-owner@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)

		var me map[string]any
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &me)
		require.Equal(t, "new-owner@example.com", me["email"])
		require.Equal(t, "free", me["subscription_tier"])
		require.EqualValues(t, 25, me["monthly_submission_limit"])
	})

	s.Run("duplicate email is rejected", func() {
		t := s.T()
		s.registerOwner("dup@example.com")

		b := builder.NewAuthBuilder()
		b.Email = "dup@example.com"
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, b.BuildRegister(), "")
		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("weak password is rejected", func() {
		t := s.T()
		b := builder.NewAuthBuilder()
		b.Password = "short"
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, b.BuildRegister(), "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func (s *authSuite) TestLogin() {
	s.Run("valid credentials succeed and update last_login", func() {
		t := s.T()
		s.registerOwner("login@example.com")

		b := builder.NewAuthBuilder()
		b.Email = "login@example.com"
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, b.BuildLogin(), "")

		var res resdto.TokenResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.NotEmpty(t, res.AccessToken)
		require.NotEmpty(t, res.RefreshToken)

		var lastLogin any
		err := s.DB.QueryRow(t.Context(),
			"SELECT last_login FROM owners WHERE email = $1", "login@example.com").Scan(&lastLogin)
		require.NoError(t, err)
		require.NotNil(t, lastLogin, "last_login was not updated")
	})

	s.Run("wrong password rejected", func() {
		t := s.T()
		s.registerOwner("wrongpw@example.com")

		b := builder.NewAuthBuilder()
		b.Email = "wrongpw@example.com"
		b.Password = "definitely-wrong"
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, b.BuildLogin(), "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("unknown email gets the same error as a bad password", func() {
		t := s.T()
		b := builder.NewAuthBuilder()
		b.Email = "ghost@example.com"
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, b.BuildLogin(), "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("deactivated owner cannot log in", func() {
		t := s.T()
		s.registerOwner("inactive@example.com")

		_, err := s.DB.Exec(t.Context(),
			"UPDATE owners SET is_active = false WHERE email = $1", "inactive@example.com")
		require.NoError(t, err)

		b := builder.NewAuthBuilder()
		b.Email = "inactive@example.com"
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, b.BuildLogin(), "")
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

func (s *authSuite) TestRefresh() {
	s.Run("refresh cookie rotates the token pair", func() {
		t := s.T()
		s.registerOwner("refresh@example.com")

		b := builder.NewAuthBuilder()
		b.Email = "refresh@example.com"
		loginRec := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, b.BuildLogin(), "")
		require.Equal(t, http.StatusOK, loginRec.Code)

		refreshCookie := httptest.ExtractCookie(loginRec, cookie.RefreshTokenCookieName)
		require.NotNil(t, refreshCookie, "login did not set a refresh cookie")

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, refreshURL, nil,
			[]*http.Cookie{refreshCookie})

		var res resdto.TokenResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.NotEmpty(t, res.AccessToken)
	})

	s.Run("missing refresh cookie rejected", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("garbage refresh token rejected", func() {
		t := s.T()
		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, refreshURL, nil,
			[]*http.Cookie{{Name: cookie.RefreshTokenCookieName, Value: "garbage"}})
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestLogout() {
	s.Run("logout clears the session cookies", func() {
		t := s.T()
		token := s.registerOwner("logout@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)

		cleared := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
		require.NotNil(t, cleared)
		require.Empty(t, cleared.Value)
	})
}

func (s *authSuite) TestAuthenticationRequired() {
	s.Run("protected endpoints reject anonymous requests", func() {
		t := s.T()

		endpoints := []struct {
			method string
			path   string
		}{
			{http.MethodGet, meURL},
			{http.MethodGet, "/api/templates"},
			{http.MethodGet, "/api/submissions"},
			{http.MethodGet, "/api/dashboard/stats"},
			{http.MethodPost, "/api/billing/checkout"},
		}

		for _, endpoint := range endpoints {
			w := httptest.PerformRequest(t, s.Router, endpoint.method, endpoint.path, nil, "")
			require.Equal(t, http.StatusUnauthorized, w.Code,
				"%s %s should require auth", endpoint.method, endpoint.path)
		}
	})

	s.Run("tampered token rejected", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "not-a-real-token")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
