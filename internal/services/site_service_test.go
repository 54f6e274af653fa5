package services_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/rxtech-lab/lp-factory/internal/models"
	"github.com/rxtech-lab/lp-factory/internal/services"
)

type SiteServiceTestSuite struct {
	suite.Suite
	db      services.DBService
	service services.SiteService
}

func (suite *SiteServiceTestSuite) SetupTest() {
	db, err := services.NewSqliteDBService(":memory:")
	suite.Require().NoError(err)
	suite.db = db
	suite.service = services.NewSiteService(db.GetDB())
}

func (suite *SiteServiceTestSuite) TearDownTest() {
	suite.db.Close()
}

func (suite *SiteServiceTestSuite) TestCreateSiteAppliesDefaults() {
	site := &models.Site{Brand: "QuickFund"}
	suite.Require().NoError(suite.service.CreateSite(site))

	suite.Len(site.ID, 12)
	suite.Equal("personal", site.LoanType)
	suite.Equal(100, site.AmountMin)
	suite.Equal(5000, site.AmountMax)
	suite.Equal(5.99, site.AprMin)
	suite.Equal(35.99, site.AprMax)
	suite.Equal("ocean", site.ColorID)
	suite.Equal("dm-sans", site.FontID)
	suite.Equal("hero-left", site.Layout)
	suite.Equal("rounded", site.RadiusID)
	suite.Equal("default", site.Sections)
	suite.Equal("standard", site.Compliance)
	suite.Equal("LeadsGate", site.Network)
	suite.Equal("completed", site.Status)
}

func (suite *SiteServiceTestSuite) TestCreateSiteKeepsProvidedValues() {
	site := &models.Site{
		ID:       "site00000001",
		Brand:    "ClearPath",
		LoanType: "auto",
		ColorID:  "plum",
		Status:   "draft",
	}
	suite.Require().NoError(suite.service.CreateSite(site))

	got, err := suite.service.GetSiteByID("site00000001")
	suite.Require().NoError(err)
	suite.Equal("ClearPath", got.Brand)
	suite.Equal("auto", got.LoanType)
	suite.Equal("plum", got.ColorID)
	suite.Equal("draft", got.Status)
}

func (suite *SiteServiceTestSuite) TestGetSiteByIDNotFound() {
	_, err := suite.service.GetSiteByID("missing")
	suite.Error(err)
}

func (suite *SiteServiceTestSuite) TestListSites() {
	suite.Require().NoError(suite.service.CreateSite(&models.Site{Brand: "A"}))
	suite.Require().NoError(suite.service.CreateSite(&models.Site{Brand: "B"}))

	sites, err := suite.service.ListSites()
	suite.Require().NoError(err)
	suite.Len(sites, 2)
}

func (suite *SiteServiceTestSuite) TestDeleteSite() {
	site := &models.Site{Brand: "Gone"}
	suite.Require().NoError(suite.service.CreateSite(site))
	suite.Require().NoError(suite.service.DeleteSite(site.ID))

	sites, err := suite.service.ListSites()
	suite.Require().NoError(err)
	suite.Empty(sites)
}

func TestSiteServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SiteServiceTestSuite))
}
