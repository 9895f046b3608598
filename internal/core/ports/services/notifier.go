package services

import "context"

// Named views whose cached renderings go stale after a successful coach
// create or update.
const (
	ViewCoachList        = "coach-list"
	ViewParticipantsList = "participants-list"
	ViewBatchList        = "batch-list"
	ViewCoachDetail      = "coach-detail"
)

// ViewRevalidator signals downstream renderers that named views are stale.
// The signal is fire-and-forget: no acknowledgment, no retry.
type ViewRevalidator interface {
	RevalidateViews(ctx context.Context, views ...string)
}
