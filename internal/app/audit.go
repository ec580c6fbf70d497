package app

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/umairmr377-gif/Play-Zone-sub000/internal/clock"
	"github.com/umairmr377-gif/Play-Zone-sub000/internal/domain"
)

type AuditRepository interface {
	AppendAudit(ctx context.Context, entry domain.AuditEntry) error
	ListAudit(ctx context.Context, limit int) ([]domain.AuditEntry, error)
}

// AuditRecorder is what the services need to leave a trail. Recording is
// best-effort: a failed append must never fail the action it describes.
type AuditRecorder interface {
	Record(ctx context.Context, actor, action, entityType, entityID, detail string)
}

type AuditLog struct {
	repo   AuditRepository
	clock  clock.Clock
	logger *zap.Logger
}

func NewAuditLog(repo AuditRepository, clk clock.Clock, logger *zap.Logger) *AuditLog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuditLog{
		repo:   repo,
		clock:  clk,
		logger: logger,
	}
}

func (l *AuditLog) Record(ctx context.Context, actor, action, entityType, entityID, detail string) {
	if actor == "" {
		actor = "admin"
	}
	entry := domain.AuditEntry{
		ID:         uuid.NewString(),
		Actor:      actor,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Detail:     detail,
		CreatedAt:  l.clock.Now(),
	}
	if err := l.repo.AppendAudit(ctx, entry); err != nil {
		l.logger.Warn("audit append failed",
			zap.String("action", action),
			zap.String("entity_id", entityID),
			zap.Error(err),
		)
	}
}

func (l *AuditLog) Recent(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return l.repo.ListAudit(ctx, limit)
}
