package audit

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-manager/internal/models"
)

// Actions recorded in the audit trail.
const (
	ActionCashboxCreated   = "cashbox_created"
	ActionCashboxUpdated   = "cashbox_updated"
	ActionCashboxDeleted   = "cashbox_deleted"
	ActionSchedulerCreated = "scheduler_created"
	ActionSchedulerUpdated = "scheduler_updated"
	ActionSchedulerDeleted = "scheduler_deleted"
	ActionPasswordChanged  = "password_changed"
)

type Event struct {
	BarbershopID uint
	Action       string
	Entity       string
	EntityID     *uint
	Metadata     any
}

// Recorder writes audit events. Implementations must not fail the caller.
type Recorder interface {
	Record(ctx context.Context, ev Event)
}

type Logger struct {
	db  *gorm.DB
	log *zap.Logger
}

func New(db *gorm.DB, log *zap.Logger) *Logger {
	if log == nil {
		log = zap.NewNop()
	}
	return &Logger{db: db, log: log}
}

// Record stores ev in the same request. A failed write is logged and
// swallowed.
func (l *Logger) Record(ctx context.Context, ev Event) {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	row := models.AuditLog{
		BarbershopID: ev.BarbershopID,
		Action:       ev.Action,
		Entity:       ev.Entity,
		EntityID:     ev.EntityID,
		Metadata:     metaJSON,
	}

	if err := l.db.WithContext(ctx).Create(&row).Error; err != nil {
		l.log.Warn("audit write failed",
			zap.String("action", ev.Action),
			zap.Uint("barbershop_id", ev.BarbershopID),
			zap.Error(err),
		)
	}
}

// Nop discards events.
type Nop struct{}

func (Nop) Record(context.Context, Event) {}
