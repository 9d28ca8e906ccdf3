package alerts

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/printwatch/printer-fleet-mgmt/internal/pkg/infrastructure/storage"
	"github.com/printwatch/printer-fleet-mgmt/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/google/uuid"
)

var ErrAlertNotFound = fmt.Errorf("alert not found")

const (
	// DefaultDedupWindow is how long an unacknowledged alert suppresses new
	// candidates of the same (printer, type).
	DefaultDedupWindow = time.Hour
	// DefaultRetention is how long acknowledged alerts are kept before the
	// cleanup cycle removes them.
	DefaultRetention = 30 * 24 * time.Hour
)

//go:generate moq -rm -out alertservice_mock.go . AlertService
type AlertService interface {
	Query(ctx context.Context, offset, limit int) (types.Collection[types.Alert], error)
	QueryByPrinterID(ctx context.Context, printerID string, offset, limit int) (types.Collection[types.Alert], error)
	GetByID(ctx context.Context, alertID string) (types.Alert, error)
	Add(ctx context.Context, alert types.Alert) (bool, error)
	Acknowledge(ctx context.Context, alertID, acknowledgedBy string) error
	RemoveOldAlerts(ctx context.Context) (int64, error)
}

//go:generate moq -rm -out alertrepository_mock.go . AlertRepository
type AlertRepository interface {
	QueryAlerts(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Alert], error)
	GetAlert(ctx context.Context, conditions ...storage.ConditionFunc) (types.Alert, error)
	AddAlert(ctx context.Context, alert types.Alert) error
	AcknowledgeAlert(ctx context.Context, alertID, acknowledgedBy string, acknowledgedAt time.Time) error
	DeleteAlerts(ctx context.Context, conditions ...storage.ConditionFunc) (int64, error)
}

type Config struct {
	DedupWindowSeconds int `yaml:"dedupwindowseconds"`
	RetentionDays      int `yaml:"retentiondays"`
}

type alertSvc struct {
	storage   AlertRepository
	messenger messaging.MsgContext

	dedupWindow time.Duration
	retention   time.Duration

	mu    sync.Mutex
	locks map[string]*sync.Mutex

	nowFunc func() time.Time
}

func New(storage AlertRepository, messenger messaging.MsgContext, cfg *Config) AlertService {
	svc := &alertSvc{
		storage:     storage,
		messenger:   messenger,
		dedupWindow: DefaultDedupWindow,
		retention:   DefaultRetention,
		locks:       map[string]*sync.Mutex{},
		nowFunc:     func() time.Time { return time.Now().UTC() },
	}

	if cfg != nil {
		if cfg.DedupWindowSeconds > 0 {
			svc.dedupWindow = time.Duration(cfg.DedupWindowSeconds) * time.Second
		}
		if cfg.RetentionDays > 0 {
			svc.retention = time.Duration(cfg.RetentionDays) * 24 * time.Hour
		}
	}

	return svc
}

func (svc *alertSvc) Query(ctx context.Context, offset, limit int) (types.Collection[types.Alert], error) {
	return svc.storage.QueryAlerts(ctx, storage.WithOffset(offset), storage.WithLimit(limit))
}

func (svc *alertSvc) QueryByPrinterID(ctx context.Context, printerID string, offset, limit int) (types.Collection[types.Alert], error) {
	return svc.storage.QueryAlerts(ctx, storage.WithPrinterID(printerID), storage.WithOffset(offset), storage.WithLimit(limit))
}

func (svc *alertSvc) GetByID(ctx context.Context, alertID string) (types.Alert, error) {
	alert, err := svc.storage.GetAlert(ctx, storage.WithAlertID(alertID))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Alert{}, ErrAlertNotFound
		}
		return types.Alert{}, err
	}

	return alert, nil
}

// keyedLock serializes check-then-insert per (printer, alertType) so two
// concurrent pollers of the same printer cannot both insert. Pollers of
// different printers never contend.
func (svc *alertSvc) keyedLock(key string) *sync.Mutex {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	l, ok := svc.locks[key]
	if !ok {
		l = &sync.Mutex{}
		svc.locks[key] = l
	}

	return l
}

// Add persists a candidate alert unless an unacknowledged alert of the same
// (printer, type) already exists within the dedup window. Returns true when
// a new alert was created.
func (svc *alertSvc) Add(ctx context.Context, alert types.Alert) (bool, error) {
	if alert.PrinterID == "" {
		return false, fmt.Errorf("no printerID is set on alert")
	}

	l := svc.keyedLock(alert.PrinterID + "/" + alert.AlertType)
	l.Lock()
	defer l.Unlock()

	now := svc.nowFunc()

	existing, err := svc.storage.QueryAlerts(ctx,
		storage.WithPrinterID(alert.PrinterID),
		storage.WithAlertType(alert.AlertType),
		storage.WithAcknowledged(false),
		storage.WithCreatedAfter(now.Add(-svc.dedupWindow)),
		storage.WithLimit(1),
	)
	if err != nil {
		return false, err
	}

	if existing.Count > 0 {
		return false, nil
	}

	if alert.ID == "" {
		alert.ID = uuid.NewString()
	}
	if alert.CreatedAt.IsZero() {
		alert.CreatedAt = now
	}

	err = svc.storage.AddAlert(ctx, alert)
	if err != nil {
		return false, err
	}

	err = svc.messenger.PublishOnTopic(ctx, &AlertCreated{
		Alert:     alert,
		Timestamp: alert.CreatedAt,
	})
	if err != nil {
		logging.GetFromContext(ctx).Warn("could not publish alert created event", "alert_id", alert.ID, "err", err.Error())
	}

	return true, nil
}

func (svc *alertSvc) Acknowledge(ctx context.Context, alertID, acknowledgedBy string) error {
	now := svc.nowFunc()

	err := svc.storage.AcknowledgeAlert(ctx, alertID, acknowledgedBy, now)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return ErrAlertNotFound
		}
		return err
	}

	err = svc.messenger.PublishOnTopic(ctx, &AlertAcknowledged{
		ID:             alertID,
		AcknowledgedBy: acknowledgedBy,
		Timestamp:      now,
	})
	if err != nil {
		logging.GetFromContext(ctx).Warn("could not publish alert acknowledged event", "alert_id", alertID, "err", err.Error())
	}

	return nil
}

// RemoveOldAlerts deletes acknowledged alerts older than the retention
// period. Unacknowledged alerts are never removed, no matter their age.
func (svc *alertSvc) RemoveOldAlerts(ctx context.Context) (int64, error) {
	return svc.storage.DeleteAlerts(ctx,
		storage.WithAcknowledged(true),
		storage.WithAcknowledgedBefore(svc.nowFunc().Add(-svc.retention)),
	)
}
