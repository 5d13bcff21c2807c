package models

// nominalNext maps each deliverable status to the statuses the workflow
// normally moves to next. Writes outside this graph are allowed (manual
// corrections happen), but callers log them so they stay visible.
var nominalNext = map[string][]string{
	DeliverableNotStarted: {DeliverableInProgress},
	DeliverableInProgress: {DeliverableReview},
	DeliverableReview:     {DeliverableApproved, DeliverableRevision},
	DeliverableRevision:   {DeliverableReview},
}

// NominalTransition reports whether from -> to follows the regular
// deliverable workflow. Any status may move to cancelled.
func NominalTransition(from, to string) bool {
	if to == DeliverableCancelled {
		return true
	}
	for _, next := range nominalNext[from] {
		if next == to {
			return true
		}
	}
	return false
}
