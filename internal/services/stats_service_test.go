package services_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/rxtech-lab/lp-factory/internal/models"
	"github.com/rxtech-lab/lp-factory/internal/services"
)

type StatsServiceTestSuite struct {
	suite.Suite
	db      services.DBService
	service services.StatsService
}

func (suite *StatsServiceTestSuite) SetupTest() {
	db, err := services.NewSqliteDBService(":memory:")
	suite.Require().NoError(err)
	suite.db = db
	suite.service = services.NewStatsService(db.GetDB())
}

func (suite *StatsServiceTestSuite) TearDownTest() {
	suite.db.Close()
}

func (suite *StatsServiceTestSuite) TestEmptyDatabase() {
	stats, err := suite.service.GetStats()
	suite.Require().NoError(err)
	suite.Zero(stats.Builds)
	suite.Zero(stats.Spend)
	suite.Zero(stats.Deployed)
	suite.Zero(stats.Domains)
}

func (suite *StatsServiceTestSuite) TestAggregates() {
	db := suite.db.GetDB()
	siteService := services.NewSiteService(db)
	suite.Require().NoError(siteService.CreateSite(&models.Site{Brand: "A", Cost: 12.5}))
	suite.Require().NoError(siteService.CreateSite(&models.Site{Brand: "B", Cost: 7.5}))

	deployService := services.NewDeployService(db)
	suite.Require().NoError(deployService.CreateDeploy(&models.Deploy{SiteID: "x"}))

	opsService := services.NewOpsService(db)
	suite.Require().NoError(opsService.CreateDomain(&models.Domain{Domain: "a.example"}))

	stats, err := suite.service.GetStats()
	suite.Require().NoError(err)
	suite.Equal(int64(2), stats.Builds)
	suite.Equal(20.0, stats.Spend)
	suite.Equal(int64(1), stats.Deployed)
	suite.Equal(int64(1), stats.Domains)
}

func TestStatsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StatsServiceTestSuite))
}
