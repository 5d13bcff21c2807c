package services

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/soundfolio/artist-portal/internal/config"
	"github.com/soundfolio/artist-portal/internal/models"
	"gorm.io/gorm"
)

func testAuthService(db *gorm.DB) *AuthService {
	cfg := &config.Config{DemoPasscode: "DEMO2026", SessionMaxAge: time.Hour}
	return NewAuthService(db, NewSessionService(db, cfg.SessionMaxAge), cfg)
}

func TestLoginWrongPasscode(t *testing.T) {
	db, mock := newTestDB(t)
	svc := testAuthService(db)

	_, _, err := svc.Login("user_artist_demo", "WRONG")
	if !errors.Is(err, ErrInvalidPasscode) {
		t.Fatalf("Login = %v, want ErrInvalidPasscode", err)
	}
	// The passcode gate fires before any lookup; no session may exist.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected database traffic: %v", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	db, mock := newTestDB(t)
	svc := testAuthService(db)

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(userRows())

	_, _, err := svc.Login("user_nobody", "DEMO2026")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("Login = %v, want ErrUserNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestLoginOpensSession(t *testing.T) {
	db, mock := newTestDB(t)
	svc := testAuthService(db)

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(userRows().
			AddRow("user_artist_demo", "jordan@example.com", "Jordan Rivers", models.RoleArtist, time.Now()))
	mock.ExpectExec(`INSERT INTO "sessions"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	user, token, err := svc.Login("user_artist_demo", "DEMO2026")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.Name != "Jordan Rivers" {
		t.Errorf("user.Name = %q, want Jordan Rivers", user.Name)
	}
	if token == "" {
		t.Error("Login returned an empty session token")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

// An empty passcode skips the gate entirely; the demo picker logs in
// without one.
func TestLoginEmptyPasscodeAllowed(t *testing.T) {
	db, mock := newTestDB(t)
	svc := testAuthService(db)

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(userRows().
			AddRow("user_admin_demo", "alex@example.com", "Alex Morgan", models.RoleAdmin, time.Now()))
	mock.ExpectExec(`INSERT INTO "sessions"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if _, _, err := svc.Login("user_admin_demo", ""); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCurrentUserAbsentSession(t *testing.T) {
	db, _ := newTestDB(t)
	svc := testAuthService(db)

	user, err := svc.CurrentUser("")
	if err != nil {
		t.Fatalf("CurrentUser: %v", err)
	}
	if user != nil {
		t.Errorf("CurrentUser with no token = %+v, want nil", user)
	}
}

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "email", "name", "role", "created_at"})
}
