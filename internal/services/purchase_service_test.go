package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/datatypes"

	"github.com/soundfolio/artist-portal/internal/models"
)

func TestProvisionAddon(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	desc := "A four-week push across Instagram and TikTok."
	user := &models.User{ID: "user_artist_demo", Role: models.RoleArtist}
	addon := &models.Addon{
		ID:           "addon_social_push",
		Name:         "Social Media Push",
		Description:  &desc,
		Price:        499,
		DeliveryDays: 14,
		Scope: datatypes.NewJSONSlice([]string{
			"Content calendar",
			"12 post designs",
			"Performance report",
		}),
	}

	project, deliverables, purchase := provisionAddon(user, addon, now)

	if project.UserID != user.ID {
		t.Errorf("project.UserID = %q, want %q", project.UserID, user.ID)
	}
	if project.Title != addon.Name {
		t.Errorf("project.Title = %q, want %q", project.Title, addon.Name)
	}
	if project.Type != models.ProjectTypeAddon {
		t.Errorf("project.Type = %q, want addon", project.Type)
	}
	if project.Status != models.ProjectActive {
		t.Errorf("project.Status = %q, want active", project.Status)
	}
	if project.Progress != 0 {
		t.Errorf("project.Progress = %d, want 0", project.Progress)
	}
	wantDue := now.AddDate(0, 0, 14)
	if project.DueDate == nil || !project.DueDate.Equal(wantDue) {
		t.Errorf("project.DueDate = %v, want %v", project.DueDate, wantDue)
	}
	if !strings.Contains(string(project.Meta), `"addonId":"addon_social_push"`) {
		t.Errorf("project.Meta = %s, missing addon reference", project.Meta)
	}

	if len(deliverables) != 3 {
		t.Fatalf("got %d deliverables, want 3", len(deliverables))
	}
	for i, d := range deliverables {
		if d.ProjectID != project.ID {
			t.Errorf("deliverable %d bound to project %q, want %q", i, d.ProjectID, project.ID)
		}
		if d.Title != addon.Scope[i] {
			t.Errorf("deliverable %d title = %q, want %q", i, d.Title, addon.Scope[i])
		}
		if d.Status != models.DeliverableNotStarted {
			t.Errorf("deliverable %d status = %q, want not_started", i, d.Status)
		}
		if d.SortOrder != i {
			t.Errorf("deliverable %d sort order = %d, want %d", i, d.SortOrder, i)
		}
		if d.DueDate == nil || !d.DueDate.Equal(wantDue) {
			t.Errorf("deliverable %d due date = %v, want %v", i, d.DueDate, wantDue)
		}
	}

	if purchase.UserID != user.ID || purchase.AddonID != addon.ID {
		t.Errorf("purchase bound to (%q, %q), want (%q, %q)",
			purchase.UserID, purchase.AddonID, user.ID, addon.ID)
	}
	if purchase.ProjectID == nil || *purchase.ProjectID != project.ID {
		t.Errorf("purchase.ProjectID = %v, want %q", purchase.ProjectID, project.ID)
	}
	if purchase.Amount != addon.Price {
		t.Errorf("purchase.Amount = %v, want %v", purchase.Amount, addon.Price)
	}
	if purchase.Status != models.PurchaseCompleted {
		t.Errorf("purchase.Status = %q, want completed", purchase.Status)
	}
}

func TestProvisionAddonSkipsBlankScopeLines(t *testing.T) {
	user := &models.User{ID: "user_artist_demo"}
	addon := &models.Addon{
		ID:           "addon_epk",
		Name:         "EPK Design",
		DeliveryDays: 7,
		Scope:        datatypes.NewJSONSlice([]string{"Draft", "", "Final files"}),
	}

	_, deliverables, _ := provisionAddon(user, addon, time.Now())

	if len(deliverables) != 2 {
		t.Fatalf("got %d deliverables, want 2", len(deliverables))
	}
	// Sort order keeps the original scope positions even across gaps.
	if deliverables[0].SortOrder != 0 || deliverables[1].SortOrder != 2 {
		t.Errorf("sort orders = [%d, %d], want [0, 2]",
			deliverables[0].SortOrder, deliverables[1].SortOrder)
	}
}

func TestPurchaseUnknownAddon(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewPurchaseService(db, NewActivityService(db))
	user := &models.User{ID: "user_artist_demo", Role: models.RoleArtist}

	mock.ExpectQuery(`SELECT (.+) FROM "addons"`).
		WillReturnRows(addonRows())

	if _, _, err := svc.Purchase(user, "addon_missing"); !errors.Is(err, ErrAddonNotFound) {
		t.Fatalf("Purchase = %v, want ErrAddonNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPurchaseRollsBackOnFailure(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewPurchaseService(db, NewActivityService(db))
	user := &models.User{ID: "user_artist_demo", Role: models.RoleArtist}

	mock.ExpectQuery(`SELECT (.+) FROM "addons"`).
		WillReturnRows(addonRows().
			AddRow("addon_social_push", "Social Media Push", "social-media-push", "social",
				499.0, 14, []byte(`["Content calendar","12 post designs"]`), true))
	// The transaction opens but every insert is unexpected, so the first
	// write fails and the whole provision must roll back.
	mock.ExpectBegin()
	mock.ExpectRollback()

	if _, _, err := svc.Purchase(user, "addon_social_push"); err == nil {
		t.Fatal("Purchase succeeded, want provisioning failure")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("transaction was not rolled back: %v", err)
	}
}

func addonRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "slug", "category", "price", "delivery_days", "scope", "active"})
}
