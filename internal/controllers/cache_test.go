package controllers_test

import (
	"context"
	"net/http"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/kdennisod/cash-stuffing/internal/cache"
	"github.com/kdennisod/cash-stuffing/internal/models"
	"github.com/kdennisod/cash-stuffing/internal/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestGetDataCache() {
	server := miniredis.RunT(suite.T())
	redis, err := cache.NewRedis(context.Background(), server.Addr(), time.Minute)
	suite.Require().Nil(err)
	defer redis.Close()
	suite.controller.Cache = redis

	session := suite.login("anna")
	suite.setTotal(session, january, "1000")

	var user models.User
	suite.Require().Nil(models.DB.First(&user, "username = ?", "anna").Error)
	key := cache.Key(user.ID)

	suite.Assert().False(server.Exists(key))
	suite.Assert().Equal("1000", suite.getData(session).Get(january).TotalAmount.String())
	suite.Assert().True(server.Exists(key), "data is cached after reading")

	// Served from the cache, the database is not read
	suite.Require().Nil(models.DB.Model(&models.Period{}).Where("user_id = ?", user.ID).UpdateColumn("total", decimal.NewFromInt(5)).Error)
	suite.Assert().Equal("1000", suite.getData(session).Get(january).TotalAmount.String())

	// Mutations invalidate the cache
	suite.addCategory(session, january, "Miete", "2")
	suite.Assert().False(server.Exists(key))
	b := suite.getData(session).Get(january)
	suite.Assert().Equal("5", b.TotalAmount.String())
	suite.Assert().Equal("2", b.AllocatedAmount.String())

	// A broken cache does not break requests
	server.Close()
	r := suite.request(session, http.MethodGet, "/get_data", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}
