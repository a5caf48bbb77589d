// Package testutil assembles a complete in-process API server for
// integration tests: an in-memory sqlite database, the full middleware
// stack, and a client SDK wired to an httptest server.
package testutil

import (
	"context"
	"fmt"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	catalogapp "github.com/storehub/backend/internal/application/catalog"
	financeapp "github.com/storehub/backend/internal/application/finance"
	identityapp "github.com/storehub/backend/internal/application/identity"
	repairsapp "github.com/storehub/backend/internal/application/repairs"
	salesapp "github.com/storehub/backend/internal/application/sales"
	"github.com/storehub/backend/internal/client"
	"github.com/storehub/backend/internal/domain/catalog"
	"github.com/storehub/backend/internal/domain/finance"
	"github.com/storehub/backend/internal/domain/identity"
	"github.com/storehub/backend/internal/domain/repairs"
	"github.com/storehub/backend/internal/domain/sales"
	"github.com/storehub/backend/internal/infrastructure/auth"
	"github.com/storehub/backend/internal/infrastructure/config"
	"github.com/storehub/backend/internal/infrastructure/otp"
	"github.com/storehub/backend/internal/infrastructure/persistence"
	"github.com/storehub/backend/internal/interfaces/http/handler"
	"github.com/storehub/backend/internal/interfaces/http/middleware"
	"github.com/storehub/backend/internal/interfaces/http/router"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var dbSequence int
var dbSequenceMu sync.Mutex

// NewDatabase opens a fresh in-memory sqlite database with the full schema
func NewDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	dbSequenceMu.Lock()
	dbSequence++
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", dbSequence)
	dbSequenceMu.Unlock()

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory DB
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&identity.Admin{},
		&catalog.Category{},
		&catalog.Product{},
		&sales.Sale{},
		&sales.SaleItem{},
		&finance.Expense{},
		&repairs.Repair{},
	))

	return db
}

// CapturingSender records every OTP code instead of delivering it
type CapturingSender struct {
	mu    sync.Mutex
	codes []string
}

// SendCode records the code
func (s *CapturingSender) SendCode(_ context.Context, _, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes = append(s.codes, code)
	return nil
}

// LastCode returns the most recently sent code
func (s *CapturingSender) LastCode() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.codes) == 0 {
		return ""
	}
	return s.codes[len(s.codes)-1]
}

// CodesSent returns how many codes have been sent
func (s *CapturingSender) CodesSent() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.codes)
}

// Env is a running API server plus the pieces tests interact with
type Env struct {
	Server  *httptest.Server
	DB      *gorm.DB
	Sender  *CapturingSender
	Storage *client.MemoryStorage
	Session *client.SessionStore
	Client  *client.Client
}

// NewEnv boots the full server and a client SDK pointed at it
func NewEnv(t *testing.T) *Env {
	t.Helper()

	db := NewDatabase(t)
	log := zap.NewNop()

	categoryRepo := persistence.NewGormCategoryRepository(db)
	productRepo := persistence.NewGormProductRepository(db)
	saleRepo := persistence.NewGormSaleRepository(db)
	expenseRepo := persistence.NewGormExpenseRepository(db)
	repairRepo := persistence.NewGormRepairRepository(db)
	adminRepo := persistence.NewGormAdminRepository(db)

	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                "integration-secret-at-least-32-chars!!",
		AccessTokenExpiration: time.Hour,
		Issuer:                "storehub-test",
	})
	blacklist := auth.NewMemoryTokenBlacklist()
	challenges := otp.NewMemoryChallengeStore()
	sender := &CapturingSender{}

	authService := identityapp.NewAuthService(adminRepo, challenges, sender, jwtService, blacklist, log)
	categoryService := catalogapp.NewCategoryService(categoryRepo, productRepo, log)
	productService := catalogapp.NewProductService(productRepo, categoryRepo, log)
	saleService := salesapp.NewSaleService(saleRepo, productRepo, log)
	expenseService := financeapp.NewExpenseService(expenseRepo, log)
	repairService := repairsapp.NewRepairService(repairRepo, log)

	jwtConfig := middleware.DefaultJWTConfig(jwtService)
	jwtConfig.TokenBlacklist = blacklist

	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		middleware.Secure(),
		middleware.BodyLimit(4<<20),
		middleware.JWTAuthMiddlewareWithConfig(jwtConfig),
	)

	router.NewRouter(engine, router.WithAPIVersion("v1")).
		Register(handler.NewAuthHandler(authService)).
		Register(handler.NewCategoryHandler(categoryService)).
		Register(handler.NewProductHandler(productService)).
		Register(handler.NewSaleHandler(saleService)).
		Register(handler.NewExpenseHandler(expenseService)).
		Register(handler.NewRepairHandler(repairService)).
		Setup()

	server := httptest.NewServer(engine)
	t.Cleanup(server.Close)

	storage := client.NewMemoryStorage()
	session := client.NewSessionStore(storage)
	api := client.New(server.URL, session)

	return &Env{
		Server:  server,
		DB:      db,
		Sender:  sender,
		Storage: storage,
		Session: session,
		Client:  api,
	}
}

// SignIn registers an account and walks the two-step login so the
// client is authenticated for subsequent calls
func (e *Env) SignIn(t *testing.T, name, email, password string) {
	t.Helper()
	ctx := context.Background()

	_, err := e.Client.Auth().Register(ctx, name, email, password)
	require.NoError(t, err)

	seq := client.NewLoginSequence(e.Client)
	require.NoError(t, seq.SubmitCredentials(ctx, email, password))
	require.NoError(t, seq.VerifyOTP(ctx, e.Sender.LastCode()))
	require.Equal(t, client.StateAuthenticated, e.Session.State())
}
