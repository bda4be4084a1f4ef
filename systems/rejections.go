package systems

import (
	"go.uber.org/zap"

	"dicewalk/ecs"
)

// RejectReason says why a move did not happen
type RejectReason string

const (
	RejectBusy         RejectReason = "busy"
	RejectNoPosition   RejectReason = "no-position"
	RejectBadDirection RejectReason = "bad-direction"
	RejectBarrier      RejectReason = "barrier"
	RejectOutOfBounds  RejectReason = "out-of-bounds"
	RejectContested    RejectReason = "contested"
	RejectWrongPhase   RejectReason = "wrong-phase"
	RejectGameOver     RejectReason = "game-over"
	RejectNoPlayer     RejectReason = "no-player"
	RejectNoTurnState  RejectReason = "no-turn-state"
)

// MoveRejection records a dropped move request or intent. Rejections have no
// visible effect on the world; systems keep the ones from their last Update
// so callers can ask why nothing happened.
type MoveRejection struct {
	Entity ecs.Entity
	DI, DJ int
	Reason RejectReason
}

// rejectionLog is embedded by systems that can turn moves down
type rejectionLog struct {
	rejections []MoveRejection
}

func (r *rejectionLog) resetRejections() {
	r.rejections = r.rejections[:0]
}

func (r *rejectionLog) reject(logger *zap.Logger, e ecs.Entity, di, dj int, reason RejectReason) {
	r.rejections = append(r.rejections, MoveRejection{Entity: e, DI: di, DJ: dj, Reason: reason})
	logger.Debug("move rejected",
		zap.Stringer("entity", e),
		zap.Int("di", di),
		zap.Int("dj", dj),
		zap.String("reason", string(reason)))
}

// Rejections returns the moves turned down during the last Update
func (r *rejectionLog) Rejections() []MoveRejection {
	out := make([]MoveRejection, len(r.rejections))
	copy(out, r.rejections)
	return out
}
