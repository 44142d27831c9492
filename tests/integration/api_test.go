package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/LostaMasta45/biolink-sub000/internal/domain"
	"github.com/LostaMasta45/biolink-sub000/internal/handler"
	"github.com/LostaMasta45/biolink-sub000/internal/repository"
	"github.com/LostaMasta45/biolink-sub000/internal/routes"
	"github.com/LostaMasta45/biolink-sub000/internal/service"
	"github.com/LostaMasta45/biolink-sub000/pkg/jwt"
)

// APISuite is an integration test suite running the full router against SQLite
type APISuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
	token  string
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APISuite))
}

func (s *APISuite) SetupSuite() {
	gin.SetMode(gin.TestMode)

	// Use SQLite for tests (no external DB dependency)
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	s.Require().NoError(err)
	s.db = db

	s.Require().NoError(db.AutoMigrate(
		&domain.Package{},
		&domain.Addon{},
		&domain.Posting{},
		&domain.Invoice{},
		&domain.LedgerEntry{},
		&domain.BiolinkPage{},
		&domain.BiolinkLink{},
		&domain.AdminUser{},
	))

	jwtManager := jwt.NewManager("test-secret-key-for-integration-tests", 15, 1440)

	postingRepo := repository.NewPostingRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	ledgerRepo := repository.NewLedgerRepository(db)
	biolinkRepo := repository.NewBiolinkRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	postingService := service.NewPostingService(postingRepo, catalogRepo, nil, nil)
	clientService := service.NewClientService(postingRepo, nil, nil)
	invoiceService := service.NewInvoiceService(invoiceRepo, postingRepo, catalogRepo, ledgerRepo)
	ledgerService := service.NewLedgerService(ledgerRepo)
	biolinkService := service.NewBiolinkService(biolinkRepo, nil)
	authService := service.NewAuthService(adminRepo, jwtManager)

	s.router = gin.New()
	routes.Setup(
		s.router,
		handler.NewAuthHandler(authService),
		handler.NewPostingHandler(postingService),
		handler.NewCatalogHandler(catalogRepo, nil),
		handler.NewClientHandler(clientService),
		handler.NewInvoiceHandler(invoiceService),
		handler.NewLedgerHandler(ledgerService),
		handler.NewBiolinkHandler(biolinkService),
		handler.NewUploadHandler(nil),
		jwtManager,
	)

	s.seedTestData()

	token, err := jwtManager.GenerateToken("admin", "Admin")
	s.Require().NoError(err)
	s.token = token
}

func (s *APISuite) seedTestData() {
	hash, err := service.HashPassword("password123")
	s.Require().NoError(err)
	s.db.Create(&domain.AdminUser{Username: "admin", Password: hash, DisplayName: "Admin"})

	s.db.Create(&domain.Package{ID: 1, Name: "Standard", Price: 50000})
	s.db.Create(&domain.Addon{ID: 1, Name: "Story tambahan", Price: 10000})
	s.db.Create(&domain.Addon{ID: 2, Name: "Repost sore", Price: 5000})

	page := &domain.BiolinkPage{Slug: "lostamasta", Title: "LostaMasta", IsActive: true}
	s.db.Create(page)
	s.db.Create(&domain.BiolinkLink{PageID: page.ID, Label: "WhatsApp", URL: "https://wa.me/6281234567890", IsActive: true})
}

func (s *APISuite) request(method, path string, body interface{}, authed bool) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *APISuite) decode(w *httptest.ResponseRecorder) map[string]interface{} {
	var resp map[string]interface{}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// --- Auth ---

func (s *APISuite) TestLogin_Success() {
	w := s.request(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"username": "admin",
		"password": "password123",
	}, false)

	assert.Equal(s.T(), http.StatusOK, w.Code)
	resp := s.decode(w)
	assert.True(s.T(), resp["success"].(bool))
	data := resp["data"].(map[string]interface{})
	assert.NotEmpty(s.T(), data["access_token"])
}

func (s *APISuite) TestLogin_WrongPassword() {
	w := s.request(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"username": "admin",
		"password": "nope",
	}, false)

	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
}

func (s *APISuite) TestPostings_RequireAuth() {
	w := s.request(http.MethodGet, "/api/v1/postings", nil, false)
	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
}

// --- Postings ---

func (s *APISuite) createPosting(company, number, date string) map[string]interface{} {
	w := s.request(http.MethodPost, "/api/v1/postings", map[string]interface{}{
		"company_name":    company,
		"whatsapp_number": number,
		"scheduled_date":  date,
		"package_id":      1,
		"addon_ids":       []int64{1, 2},
	}, true)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	return s.decode(w)["data"].(map[string]interface{})
}

func (s *APISuite) TestCreatePosting_StartsAsDraftWithSnapshotPrice() {
	data := s.createPosting("PT Maju", "081111111111", "2025-03-10")

	assert.Equal(s.T(), "draft", data["status"])
	assert.Equal(s.T(), float64(65000), data["total_price"])
	assert.Equal(s.T(), "6281111111111", data["whatsapp_number"])
	assert.Equal(s.T(), "10:00", data["scheduled_time"])
	assert.Equal(s.T(), "queued", data["next_status"])
}

func (s *APISuite) TestStatusWorkflow() {
	data := s.createPosting("CV Berkah", "082222222222", "2025-03-11")
	id := int64(data["id"].(float64))

	// quick advance: draft -> queued
	w := s.request(http.MethodPost, fmt.Sprintf("/api/v1/postings/%d/advance", id), nil, true)
	s.Require().Equal(http.StatusOK, w.Code)
	assert.Equal(s.T(), "queued", s.decode(w)["data"].(map[string]interface{})["status"])

	// direct set to posted
	w = s.request(http.MethodPatch, fmt.Sprintf("/api/v1/postings/%d/status", id), map[string]string{"status": "posted"}, true)
	s.Require().Equal(http.StatusOK, w.Code)

	// advancing a terminal posting conflicts
	w = s.request(http.MethodPost, fmt.Sprintf("/api/v1/postings/%d/advance", id), nil, true)
	assert.Equal(s.T(), http.StatusConflict, w.Code)

	// but moving backwards via direct set stays allowed
	w = s.request(http.MethodPatch, fmt.Sprintf("/api/v1/postings/%d/status", id), map[string]string{"status": "draft"}, true)
	assert.Equal(s.T(), http.StatusOK, w.Code)
}

func (s *APISuite) TestSetStatus_Unknown() {
	data := s.createPosting("Toko Jaya", "083333333333", "2025-03-12")
	id := int64(data["id"].(float64))

	w := s.request(http.MethodPatch, fmt.Sprintf("/api/v1/postings/%d/status", id), map[string]string{"status": "archived"}, true)
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
}

// --- Clients ---

func (s *APISuite) TestClients_AggregatedByNumber() {
	s.createPosting("Warung Sari", "084444444444", "2025-03-01")
	s.createPosting("Warung Sari Baru", "084444444444", "2025-03-05")

	w := s.request(http.MethodGet, "/api/v1/clients", nil, true)
	s.Require().Equal(http.StatusOK, w.Code)

	clients := s.decode(w)["data"].([]interface{})
	var found map[string]interface{}
	for _, c := range clients {
		client := c.(map[string]interface{})
		if client["whatsapp_number"] == "6284444444444" {
			found = client
			break
		}
	}
	s.Require().NotNil(found)
	assert.Equal(s.T(), float64(2), found["total_postings"])
	assert.Equal(s.T(), float64(130000), found["total_spent"])
	// company name comes from the latest scheduled posting
	assert.Equal(s.T(), "Warung Sari Baru", found["company_name"])
}

func (s *APISuite) TestClientDetail_NormalizesLookup() {
	s.createPosting("Bengkel Amin", "085555555555", "2025-03-02")

	// local format resolves to the same client
	w := s.request(http.MethodGet, "/api/v1/clients/085555555555", nil, true)
	s.Require().Equal(http.StatusOK, w.Code)

	data := s.decode(w)["data"].(map[string]interface{})
	assert.Equal(s.T(), "6285555555555", data["whatsapp_number"])
	assert.NotEmpty(s.T(), data["posting_history"])
}

// --- Invoices and ledger ---

func (s *APISuite) TestInvoicePaid_RecordsLedgerIncome() {
	w := s.request(http.MethodPost, "/api/v1/invoices", map[string]interface{}{
		"company_name":    "PT Sentosa",
		"whatsapp_number": "086666666666",
		"items": []map[string]interface{}{
			{"description": "Paket Standard", "amount": 50000},
		},
		"issued_date": "2025-03-15",
	}, true)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	inv := s.decode(w)["data"].(map[string]interface{})
	id := int64(inv["id"].(float64))
	assert.Contains(s.T(), inv["invoice_number"], "INV-202503-")

	w = s.request(http.MethodPatch, fmt.Sprintf("/api/v1/invoices/%d/status", id), map[string]string{"status": "paid"}, true)
	s.Require().Equal(http.StatusOK, w.Code)

	w = s.request(http.MethodGet, "/api/v1/ledger?type=income", nil, true)
	s.Require().Equal(http.StatusOK, w.Code)
	entries := s.decode(w)["data"].([]interface{})
	var matched bool
	for _, e := range entries {
		entry := e.(map[string]interface{})
		if entry["invoice_id"] != nil && int64(entry["invoice_id"].(float64)) == id {
			matched = true
			assert.Equal(s.T(), float64(50000), entry["amount"])
		}
	}
	assert.True(s.T(), matched, "expected a ledger income entry for the paid invoice")
}

func (s *APISuite) TestLedgerSummary() {
	w := s.request(http.MethodPost, "/api/v1/ledger", map[string]interface{}{
		"entry_type": "expense",
		"category":   "tools",
		"amount":     25000,
		"entry_date": "2025-04-01",
	}, true)
	s.Require().Equal(http.StatusCreated, w.Code)

	w = s.request(http.MethodGet, "/api/v1/ledger/summary", nil, true)
	s.Require().Equal(http.StatusOK, w.Code)
	data := s.decode(w)["data"].(map[string]interface{})
	assert.NotEmpty(s.T(), data["months"])
}

// --- Bio-link ---

func (s *APISuite) TestPublicBiolinkPage() {
	w := s.request(http.MethodGet, "/bio/lostamasta", nil, false)
	s.Require().Equal(http.StatusOK, w.Code)

	data := s.decode(w)["data"].(map[string]interface{})
	assert.Equal(s.T(), "lostamasta", data["slug"])
	assert.NotEmpty(s.T(), data["links"])
}

func (s *APISuite) TestPublicBiolinkPage_NotFound() {
	w := s.request(http.MethodGet, "/bio/missing", nil, false)
	assert.Equal(s.T(), http.StatusNotFound, w.Code)
}

func (s *APISuite) TestBiolinkClick_Redirects() {
	var link domain.BiolinkLink
	s.Require().NoError(s.db.Where("page_id > 0").First(&link).Error)

	w := s.request(http.MethodPost, fmt.Sprintf("/bio/lostamasta/links/%d/click", link.ID), nil, false)
	assert.Equal(s.T(), http.StatusFound, w.Code)
	assert.Equal(s.T(), link.URL, w.Header().Get("Location"))

	var after domain.BiolinkLink
	s.Require().NoError(s.db.First(&after, link.ID).Error)
	assert.Equal(s.T(), link.ClickCount+1, after.ClickCount)
}

// --- Catalog ---

func (s *APISuite) TestCatalog() {
	w := s.request(http.MethodGet, "/api/v1/catalog/packages", nil, true)
	s.Require().Equal(http.StatusOK, w.Code)
	assert.NotEmpty(s.T(), s.decode(w)["data"])

	w = s.request(http.MethodGet, "/api/v1/catalog/addons", nil, true)
	s.Require().Equal(http.StatusOK, w.Code)
	assert.NotEmpty(s.T(), s.decode(w)["data"])
}
