package services

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/soundfolio/artist-portal/internal/dto"
	"github.com/soundfolio/artist-portal/internal/models"
)

func TestProgressPercent(t *testing.T) {
	tests := []struct {
		name     string
		approved int
		total    int
		want     int
	}{
		{"no deliverables", 0, 0, 0},
		{"none approved", 0, 4, 0},
		{"all approved", 4, 4, 100},
		{"half approved", 2, 4, 50},
		{"one of three rounds up", 1, 3, 33},
		{"two of three rounds up", 2, 3, 67},
		{"one of six", 1, 6, 17},
		{"one of eight rounds to thirteen", 1, 8, 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProgressPercent(tt.approved, tt.total); got != tt.want {
				t.Errorf("ProgressPercent(%d, %d) = %d, want %d", tt.approved, tt.total, got, tt.want)
			}
		})
	}
}

func TestCompletionTimestamp(t *testing.T) {
	now := time.Now()

	got := CompletionTimestamp(models.DeliverableApproved, now)
	if got == nil || !got.Equal(now) {
		t.Errorf("CompletionTimestamp(approved) = %v, want %v", got, now)
	}

	for _, status := range []string{
		models.DeliverableNotStarted,
		models.DeliverableInProgress,
		models.DeliverableReview,
		models.DeliverableRevision,
		models.DeliverableCancelled,
	} {
		if got := CompletionTimestamp(status, now); got != nil {
			t.Errorf("CompletionTimestamp(%q) = %v, want nil", status, got)
		}
	}
}

func TestUpdateRejectsUnknownStatus(t *testing.T) {
	svc := &DeliverableService{}
	user := &models.User{ID: "user_artist_demo", Role: models.RoleArtist}

	status := "done"
	err := svc.Update(user, "deliv-1", &dto.UpdateDeliverableRequest{Status: &status})
	if !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("Update with unknown status = %v, want ErrInvalidStatus", err)
	}
}

func TestUpdateUnknownDeliverable(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewDeliverableService(db, NewActivityService(db))
	user := &models.User{ID: "user_artist_demo", Role: models.RoleArtist}

	mock.ExpectQuery(`SELECT (.+) FROM "deliverables"`).
		WillReturnRows(deliverableRows())

	status := models.DeliverableInProgress
	err := svc.Update(user, "missing", &dto.UpdateDeliverableRequest{Status: &status})
	if !errors.Is(err, ErrDeliverableNotFound) {
		t.Fatalf("Update = %v, want ErrDeliverableNotFound", err)
	}
}

func TestUpdateDeniesForeignProject(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewDeliverableService(db, NewActivityService(db))
	user := &models.User{ID: "user_artist_demo", Role: models.RoleArtist}

	mock.ExpectQuery(`SELECT (.+) FROM "deliverables"`).
		WillReturnRows(deliverableRows().
			AddRow("deliv-1", "proj-1", "Mix master", models.DeliverableReview, "medium", 0))
	mock.ExpectQuery(`SELECT (.+) FROM "projects"`).
		WillReturnRows(projectRows().
			AddRow("proj-1", "someone_else", "EP campaign", models.ProjectTypeAddon, models.ProjectActive, 0))

	status := models.DeliverableApproved
	err := svc.Update(user, "deliv-1", &dto.UpdateDeliverableRequest{Status: &status})
	if !errors.Is(err, ErrAccessDenied) {
		t.Fatalf("Update on foreign project = %v, want ErrAccessDenied", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

// Approving a deliverable bundles three side effects into one transaction:
// the status write with its completion timestamp, the audit row, and the
// recomputed project progress.
func TestUpdateApprovalSideEffects(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewDeliverableService(db, NewActivityService(db))
	user := &models.User{ID: "user_artist_demo", Role: models.RoleArtist}

	mock.ExpectQuery(`SELECT (.+) FROM "deliverables"`).
		WillReturnRows(deliverableRows().
			AddRow("deliv-4", "proj-1", "Performance report", models.DeliverableReview, "medium", 3))
	mock.ExpectQuery(`SELECT (.+) FROM "projects"`).
		WillReturnRows(projectRows().
			AddRow("proj-1", "user_artist_demo", "Social Media Push", models.ProjectTypeAddon, models.ProjectActive, 50))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "deliverables"`).
		WithArgs(sqlmock.AnyArg(), models.DeliverableApproved, "deliv-4").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "activities"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT (.+) FROM "deliverables"`).
		WillReturnRows(deliverableRows().
			AddRow("deliv-1", "proj-1", "Content calendar", models.DeliverableApproved, "medium", 0).
			AddRow("deliv-2", "proj-1", "12 post designs", models.DeliverableApproved, "medium", 1).
			AddRow("deliv-3", "proj-1", "Launch assets", models.DeliverableReview, "medium", 2).
			AddRow("deliv-4", "proj-1", "Performance report", models.DeliverableApproved, "medium", 3))
	mock.ExpectExec(`UPDATE "projects"`).
		WithArgs(75, "proj-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	status := models.DeliverableApproved
	if err := svc.Update(user, "deliv-4", &dto.UpdateDeliverableRequest{Status: &status}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("approval side effects did not run as one transaction: %v", err)
	}
}

func deliverableRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "project_id", "title", "status", "priority", "sort_order"})
}

func projectRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "title", "type", "status", "progress"})
}
