package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/kdennisod/cash-stuffing/internal/controllers"
	"github.com/kdennisod/cash-stuffing/internal/httputil"
	"github.com/kdennisod/cash-stuffing/internal/models"
	"github.com/kdennisod/cash-stuffing/internal/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestRegister() {
	tests := []struct {
		name   string
		body   any
		status int
		err    error
	}{
		{"Success", controllers.Credentials{Username: "anna", Password: "correct horse battery"}, http.StatusCreated, nil},
		{"Duplicate", controllers.Credentials{Username: "anna", Password: "another long password"}, http.StatusBadRequest, models.ErrUsernameNotUnique},
		{"Short password", controllers.Credentials{Username: "berta", Password: "short"}, http.StatusBadRequest, models.ErrPasswordTooShort},
		{"No username", controllers.Credentials{Username: "  ", Password: "correct horse battery"}, http.StatusBadRequest, models.ErrUsernameMissing},
		{"Broken body", `{"username": "carla"`, http.StatusBadRequest, httputil.ErrInvalidBody},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request("", http.MethodPost, "/register", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.err != nil {
				var response httputil.Response
				test.DecodeResponse(t, &r, &response)
				assert.False(t, response.Success)
				assert.Equal(t, tt.err.Error(), response.Message)
				return
			}

			var response controllers.UserResponse
			test.DecodeResponse(t, &r, &response)
			assert.True(t, response.Success)
			assert.Equal(t, "anna", response.User.Username)
			assert.NotContains(t, r.Body.String(), "$2a$", "the password hash is never sent")
		})
	}
}

func (suite *TestSuiteStandard) TestRegisterForm() {
	body, headers := form("username=dora&password=correct+horse+battery")
	r := suite.request("", http.MethodPost, "/register", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	body, headers = form("username=dora&password=correct+horse+battery")
	r = suite.request("", http.MethodPost, "/login", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestLogin() {
	_ = suite.login("anna")

	r := suite.request("", http.MethodPost, "/login", controllers.Credentials{Username: "anna", Password: "wrong password"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)

	r = suite.request("", http.MethodPost, "/login", controllers.Credentials{Username: "nobody", Password: "correct horse battery"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)

	var response httputil.Response
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(models.ErrInvalidLogin.Error(), response.Message, "unknown users and wrong passwords are indistinguishable")
}

func (suite *TestSuiteStandard) TestLoginCookie() {
	credentials := controllers.Credentials{Username: "anna", Password: "correct horse battery"}
	r := suite.request("", http.MethodPost, "/register", credentials)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	r = suite.request("", http.MethodPost, "/login", credentials)
	cookies := r.Result().Cookies()
	suite.Require().Len(cookies, 1)
	suite.Assert().Equal(controllers.SessionCookie, cookies[0].Name)
	suite.Assert().True(cookies[0].HttpOnly)
	suite.Assert().Equal(int(suite.controller.SessionTTL.Seconds()), cookies[0].MaxAge)
}

func (suite *TestSuiteStandard) TestLogout() {
	session := suite.login("anna")

	r := suite.request(session, http.MethodGet, "/get_data", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = suite.request(session, http.MethodGet, "/logout", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusFound)
	suite.Assert().Equal("/login", r.Header().Get("Location"))

	r = suite.request(session, http.MethodGet, "/get_data", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestLogoutWithoutSession() {
	r := suite.request("", http.MethodGet, "/logout", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusFound)

	r = suite.request("not-a-uuid", http.MethodGet, "/logout", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusFound)
}

func (suite *TestSuiteStandard) TestRequireSession() {
	tests := []struct {
		name    string
		session string
	}{
		{"No cookie", ""},
		{"Not a UUID", "cookie"},
		{"Unknown session", "0b1ad8ee-4d4a-4cd2-9a8f-0f1b4b2a2d55"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(tt.session, http.MethodGet, "/get_data", "")
			test.AssertHTTPStatus(t, &r, http.StatusUnauthorized)

			var response httputil.Response
			test.DecodeResponse(t, &r, &response)
			assert.False(t, response.Success)
			assert.NotEmpty(t, response.Message)
		})
	}
}

func (suite *TestSuiteStandard) TestExpiredSession() {
	suite.controller.SessionTTL = -time.Minute
	session := suite.login("anna")

	r := suite.request(session, http.MethodGet, "/get_data", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)

	var response httputil.Response
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(models.ErrSessionExpired.Error(), response.Message)
}

func (suite *TestSuiteStandard) TestHealthz() {
	r := suite.request("", http.MethodGet, "/healthz", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	suite.CloseDB()
	r = suite.request("", http.MethodGet, "/healthz", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
