package services_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/rxtech-lab/lp-factory/internal/models"
	"github.com/rxtech-lab/lp-factory/internal/risk"
	"github.com/rxtech-lab/lp-factory/internal/services"
)

type OpsServiceTestSuite struct {
	suite.Suite
	db      services.DBService
	service services.OpsService
}

func (suite *OpsServiceTestSuite) SetupTest() {
	db, err := services.NewSqliteDBService(":memory:")
	suite.Require().NoError(err)
	suite.db = db
	suite.service = services.NewOpsService(db.GetDB())
}

func (suite *OpsServiceTestSuite) TearDownTest() {
	suite.db.Close()
}

func (suite *OpsServiceTestSuite) TestCreateDomainLogsOnce() {
	suite.Require().NoError(suite.service.CreateDomain(&models.Domain{Domain: "fastloans.example"}))

	logs, err := suite.service.ListLogs()
	suite.Require().NoError(err)
	suite.Require().Len(logs, 1)
	suite.Equal("Added domain: fastloans.example", logs[0].Msg)
}

func (suite *OpsServiceTestSuite) TestDeleteDomainLogsName() {
	domain := &models.Domain{Domain: "togo.example"}
	suite.Require().NoError(suite.service.CreateDomain(domain))
	suite.Require().NoError(suite.service.DeleteDomain(domain.ID))

	logs, err := suite.service.ListLogs()
	suite.Require().NoError(err)
	suite.Require().Len(logs, 2)
	suite.Equal("Deleted domain: togo.example", logs[0].Msg)
}

func (suite *OpsServiceTestSuite) TestDeleteMissingDomainFallsBackToID() {
	suite.Require().NoError(suite.service.DeleteDomain("nosuchid00"))

	logs, err := suite.service.ListLogs()
	suite.Require().NoError(err)
	suite.Require().Len(logs, 1)
	suite.Equal("Deleted domain: nosuchid00", logs[0].Msg)
}

func (suite *OpsServiceTestSuite) TestUpdateAccountWhitelistedFields() {
	account := &models.Account{Label: "Acct A"}
	suite.Require().NoError(suite.service.CreateAccount(account))

	err := suite.service.UpdateAccount(account.ID, map[string]any{
		"label":        "Acct B",
		"cardLast4":    "4242",
		"monthlySpend": 125.5,
	})
	suite.Require().NoError(err)

	accounts, err := suite.service.ListAccounts()
	suite.Require().NoError(err)
	suite.Require().Len(accounts, 1)
	suite.Equal("Acct B", accounts[0].Label)
	suite.Equal("4242", accounts[0].CardLast4)
	suite.Equal(125.5, accounts[0].MonthlySpend)
}

func (suite *OpsServiceTestSuite) TestUpdateAccountDropsUnknownAndImmutableKeys() {
	account := &models.Account{Label: "Locked"}
	suite.Require().NoError(suite.service.CreateAccount(account))
	originalID := account.ID

	err := suite.service.UpdateAccount(account.ID, map[string]any{
		"id":     "hijacked",
		"email":  "new@example.com",
		"bogus":  "x",
		"budget": "500/day",
	})
	suite.Require().NoError(err)

	accounts, err := suite.service.ListAccounts()
	suite.Require().NoError(err)
	suite.Require().Len(accounts, 1)
	suite.Equal(originalID, accounts[0].ID)
	suite.Equal("new@example.com", accounts[0].Email)
	suite.Equal("500/day", accounts[0].Budget)
}

func (suite *OpsServiceTestSuite) TestUpdateAccountNoFields() {
	account := &models.Account{Label: "Untouched"}
	suite.Require().NoError(suite.service.CreateAccount(account))
	logsBefore, _ := suite.service.ListLogs()

	err := suite.service.UpdateAccount(account.ID, map[string]any{
		"id":        "x",
		"createdAt": "2020-01-01",
		"unknown":   "y",
	})
	suite.ErrorIs(err, services.ErrNoFieldsToUpdate)

	// rejected update leaves no audit entry
	logsAfter, err := suite.service.ListLogs()
	suite.Require().NoError(err)
	suite.Len(logsAfter, len(logsBefore))
}

func (suite *OpsServiceTestSuite) TestUpdateProfileRemoteColumns() {
	profile := &models.Profile{Name: "p1", RemoteID: "mlx-1"}
	suite.Require().NoError(suite.service.CreateProfile(profile))

	err := suite.service.UpdateProfile(profile.ID, map[string]any{
		"remoteStatus":  "running",
		"fingerprintOs": "windows",
	})
	suite.Require().NoError(err)

	got, err := suite.service.GetProfileByRemoteID("mlx-1")
	suite.Require().NoError(err)
	suite.Equal("running", got.RemoteStatus)
	suite.Equal("windows", got.FingerprintOS)
}

func (suite *OpsServiceTestSuite) TestDeleteProfilesByRemoteIDs() {
	suite.Require().NoError(suite.service.CreateProfile(&models.Profile{Name: "a", RemoteID: "r1"}))
	suite.Require().NoError(suite.service.CreateProfile(&models.Profile{Name: "b", RemoteID: "r2"}))
	suite.Require().NoError(suite.service.CreateProfile(&models.Profile{Name: "c", RemoteID: "r3"}))

	deleted, err := suite.service.DeleteProfilesByRemoteIDs([]string{"r1", "r3"})
	suite.Require().NoError(err)
	suite.Equal(int64(2), deleted)

	profiles, err := suite.service.ListProfiles()
	suite.Require().NoError(err)
	suite.Require().Len(profiles, 1)
	suite.Equal("b", profiles[0].Name)
}

func (suite *OpsServiceTestSuite) TestListActiveProfiles() {
	suite.Require().NoError(suite.service.CreateProfile(&models.Profile{Name: "running", RemoteID: "r1", RemoteStatus: "running"}))
	suite.Require().NoError(suite.service.CreateProfile(&models.Profile{Name: "stopped", RemoteID: "r2", RemoteStatus: "stopped"}))

	active, err := suite.service.ListActiveProfiles()
	suite.Require().NoError(err)
	suite.Require().Len(active, 1)
	suite.Equal("running", active[0].Name)
}

func (suite *OpsServiceTestSuite) TestUpdatePaymentWhitelist() {
	payment := &models.Payment{Label: "Visa"}
	suite.Require().NoError(suite.service.CreatePayment(payment))

	err := suite.service.UpdatePayment(payment.ID, map[string]any{
		"issuerCardUuid": "uuid-1",
		"cardLimit":      1000.0,
	})
	suite.Require().NoError(err)

	payments, err := suite.service.ListPayments()
	suite.Require().NoError(err)
	suite.Require().Len(payments, 1)
	suite.Equal("uuid-1", payments[0].IssuerCardUUID)
	suite.Equal(1000.0, payments[0].CardLimit)
}

func (suite *OpsServiceTestSuite) TestRisksReflectData() {
	suite.Require().NoError(suite.service.CreateAccount(&models.Account{Label: "a1", PaymentID: "pay1"}))
	suite.Require().NoError(suite.service.CreateAccount(&models.Account{Label: "a2", PaymentID: "pay1"}))
	suite.Require().NoError(suite.service.CreatePayment(&models.Payment{ID: "pay1", Label: "Shared Visa"}))

	findings, err := suite.service.Risks()
	suite.Require().NoError(err)
	suite.Require().Len(findings, 1)
	suite.Equal(risk.LevelCritical, findings[0].Level)
	suite.Contains(findings[0].Msg, "Shared Visa")
}

func (suite *OpsServiceTestSuite) TestProfileParametersRoundTrip() {
	profile := &models.Profile{
		Name:     "mirror",
		RemoteID: "mlx-1",
		Parameters: models.JSON{
			"fingerprint": map[string]any{"os": "windows"},
			"proxy":       map[string]any{"host": "10.0.0.1", "port": "8080"},
		},
	}
	suite.Require().NoError(suite.service.CreateMirroredProfile(profile))

	stored, err := suite.service.GetProfileByRemoteID("mlx-1")
	suite.Require().NoError(err)
	suite.Require().NotNil(stored.Parameters)

	fingerprint, ok := stored.Parameters["fingerprint"].(map[string]any)
	suite.Require().True(ok)
	suite.Equal("windows", fingerprint["os"])
	proxy, ok := stored.Parameters["proxy"].(map[string]any)
	suite.Require().True(ok)
	suite.Equal("8080", proxy["port"])
}

func TestOpsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OpsServiceTestSuite))
}
