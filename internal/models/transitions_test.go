package models

import "testing"

func TestNominalTransition(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"start work", DeliverableNotStarted, DeliverableInProgress, true},
		{"submit for review", DeliverableInProgress, DeliverableReview, true},
		{"approve from review", DeliverableReview, DeliverableApproved, true},
		{"request revision", DeliverableReview, DeliverableRevision, true},
		{"resubmit after revision", DeliverableRevision, DeliverableReview, true},
		{"cancel from not started", DeliverableNotStarted, DeliverableCancelled, true},
		{"cancel from review", DeliverableReview, DeliverableCancelled, true},
		{"cancel from approved", DeliverableApproved, DeliverableCancelled, true},
		{"skip straight to approved", DeliverableNotStarted, DeliverableApproved, false},
		{"approve without review", DeliverableInProgress, DeliverableApproved, false},
		{"reopen approved", DeliverableApproved, DeliverableInProgress, false},
		{"revision back to in progress", DeliverableRevision, DeliverableInProgress, false},
		{"resurrect cancelled", DeliverableCancelled, DeliverableInProgress, false},
		{"unknown status", "shipped", DeliverableReview, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NominalTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("NominalTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestValidDeliverableStatus(t *testing.T) {
	for _, s := range DeliverableStatuses {
		if !ValidDeliverableStatus(s) {
			t.Errorf("ValidDeliverableStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "done", "APPROVED", "in progress"} {
		if ValidDeliverableStatus(s) {
			t.Errorf("ValidDeliverableStatus(%q) = true, want false", s)
		}
	}
}
