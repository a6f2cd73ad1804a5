package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"kshetraku_backend/internals/configs"
)

const testJWTSecret = "route-test-secret"

func newRoutedApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()

	t.Setenv("JWT_SECRET", testJWTSecret)
	configs.LoadEnv()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	app := fiber.New()
	SetupRoutes(app, db)
	return app, mock
}

func signedToken(t *testing.T, role string) string {
	t.Helper()

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   uuid.NewString(),
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := tok.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return signed
}

// A signed-in devotee (role=user) must be able to request a booking quote:
// the /api/u group carries only token auth, never a role gate.
func TestBookingQuote_OpenToSignedInDevotee(t *testing.T) {
	app, mock := newRoutedApp(t)

	mock.ExpectQuery(`SELECT \* FROM "rituals"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"ritual_id", "ritual_name", "ritual_slug", "ritual_unit_price",
			"ritual_is_naal_priced", "ritual_subscription_multiplier", "ritual_is_active",
		}).AddRow(uuid.New(), "Archana", "archana", int64(50), false, 1, true))

	req := httptest.NewRequest(http.MethodPost, "/api/u/bookings/quote",
		strings.NewReader(`{"ritual_slug":"archana","quantity":2}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signedToken(t, "user"))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// The raw occurrence search is counter-staff tooling; a plain devotee token
// is rejected on that route alone.
func TestNaalOccurrenceSearch_RejectsDevoteeRole(t *testing.T) {
	app, _ := newRoutedApp(t)

	req := httptest.NewRequest(http.MethodGet,
		"/api/u/calendar/naal-occurrences?naal=Pooyam&range_mode=this_year", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signedToken(t, "user"))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestNaalOccurrenceSearch_AllowsStaffRole(t *testing.T) {
	app, mock := newRoutedApp(t)

	mock.ExpectQuery(`SELECT "calendar_day_date" FROM "calendar_days"`).
		WillReturnRows(sqlmock.NewRows([]string{"calendar_day_date"}))

	req := httptest.NewRequest(http.MethodGet,
		"/api/u/calendar/naal-occurrences?naal=Pooyam&range_mode=this_year", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signedToken(t, "staff"))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
