package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/soundfolio/artist-portal/internal/config"
	"github.com/soundfolio/artist-portal/internal/models"
	"github.com/soundfolio/artist-portal/internal/services"
)

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}

	return db, mock
}

func protectedApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()

	db, mock := newTestDB(t)
	cfg := &config.Config{DemoPasscode: "DEMO2026", SessionMaxAge: time.Hour}
	auth := services.NewAuthService(db, services.NewSessionService(db, cfg.SessionMaxAge), cfg)

	app := fiber.New()
	app.Use(SessionProtected(auth))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		user, ok := CurrentUser(c)
		if !ok {
			return fiber.NewError(fiber.StatusInternalServerError, "no user in locals")
		}
		return c.JSON(fiber.Map{"id": user.ID, "role": user.Role})
	})

	return app, mock
}

func TestSessionProtectedNoCookie(t *testing.T) {
	app, _ := protectedApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/whoami", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Success {
		t.Error("body.success = true, want false")
	}
}

func TestSessionProtectedUnknownToken(t *testing.T) {
	app, mock := protectedApp(t)

	mock.ExpectQuery(`SELECT (.+) FROM "sessions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "token_hash", "user_id", "expires_at", "created_at"}))

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: services.SessionCookieName, Value: "stale-or-forged"})

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestSessionProtectedValidSession(t *testing.T) {
	app, mock := protectedApp(t)

	mock.ExpectQuery(`SELECT (.+) FROM "sessions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "token_hash", "user_id", "expires_at", "created_at"}).
			AddRow("sess-1", "irrelevant", "user_artist_demo", time.Now().Add(time.Hour), time.Now()))
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "role", "created_at"}).
			AddRow("user_artist_demo", "jordan@example.com", "Jordan Rivers", models.RoleArtist, time.Now()))

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: services.SessionCookieName, Value: "valid-token"})

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body struct {
		ID   string `json:"id"`
		Role string `json:"role"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.ID != "user_artist_demo" || body.Role != models.RoleArtist {
		t.Errorf("resolved user = %+v, want the seeded artist", body)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func adminApp(user *models.User) *fiber.App {
	app := fiber.New()
	if user != nil {
		app.Use(func(c *fiber.Ctx) error {
			c.Locals(userLocalsKey, user)
			return c.Next()
		})
	}
	app.Use(AdminRequired())
	app.Get("/admin-only", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestAdminRequired(t *testing.T) {
	tests := []struct {
		name string
		user *models.User
		want int
	}{
		{"no session user", nil, fiber.StatusUnauthorized},
		{"artist", &models.User{ID: "user_artist_demo", Role: models.RoleArtist}, fiber.StatusForbidden},
		{"admin", &models.User{ID: "user_admin_demo", Role: models.RoleAdmin}, fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := adminApp(tt.user).Test(httptest.NewRequest(http.MethodGet, "/admin-only", nil))
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if resp.StatusCode != tt.want {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.want)
			}
		})
	}
}
