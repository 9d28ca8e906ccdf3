package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/printwatch/printer-fleet-mgmt/pkg/types"

	"github.com/jackc/pgx/v5"
)

func alertWhere(c Condition) string {
	where := []string{}

	if c.AlertID != "" {
		where = append(where, "alert_id = @alert_id")
	}
	if c.PrinterID != "" {
		where = append(where, "printer_id = @printer_id")
	}
	if c.AlertType != "" {
		where = append(where, "alert_type = @alert_type")
	}
	if c.Acknowledged != nil {
		where = append(where, "acknowledged = @acknowledged")
	}
	if !c.CreatedAfter.IsZero() {
		where = append(where, "created_on > @created_after")
	}
	if !c.AcknowledgedBefore.IsZero() {
		where = append(where, "acknowledged_on < @acknowledged_before")
	}

	if len(where) == 0 {
		return "TRUE"
	}

	return strings.Join(where, " AND ")
}

func (s *Storage) AddAlert(ctx context.Context, alert types.Alert) error {
	if alert.ID == "" || alert.PrinterID == "" {
		return ErrNoID
	}

	args := pgx.NamedArgs{
		"alert_id":     alert.ID,
		"printer_id":   alert.PrinterID,
		"printer_name": alert.PrinterName,
		"alert_type":   alert.AlertType,
		"severity":     string(alert.Severity),
		"message":      alert.Message,
		"created_on":   alert.CreatedAt.UTC(),
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO alerts (alert_id, printer_id, printer_name, alert_type, severity, message, created_on)
		VALUES (@alert_id, @printer_id, @printer_name, @alert_type, @severity, @message, @created_on)
	`, args)
	if err != nil {
		return err
	}

	return nil
}

func (s *Storage) GetAlert(ctx context.Context, conditions ...ConditionFunc) (types.Alert, error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	args := condition.NamedArgs()
	where := alertWhere(*condition)

	query := fmt.Sprintf(`
		SELECT alert_id, printer_id, printer_name, alert_type, severity, COALESCE(message,''),
			   created_on, acknowledged, COALESCE(acknowledged_by,''), acknowledged_on
		FROM alerts
		WHERE %s
	`, where)

	var a types.Alert

	err := s.pool.QueryRow(ctx, query, args).Scan(
		&a.ID, &a.PrinterID, &a.PrinterName, &a.AlertType, &a.Severity, &a.Message,
		&a.CreatedAt, &a.Acknowledged, &a.AcknowledgedBy, &a.AcknowledgedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Alert{}, ErrNoRows
		}
		return types.Alert{}, err
	}

	return a, nil
}

func (s *Storage) QueryAlerts(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.Alert], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	if condition.sortBy == "" {
		condition.sortBy = "created_on"
		condition.sortOrder = "DESC"
	}

	args := condition.NamedArgs()
	where := alertWhere(*condition)

	query := fmt.Sprintf(`
		SELECT alert_id, printer_id, printer_name, alert_type, severity, COALESCE(message,''),
			   created_on, acknowledged, COALESCE(acknowledged_by,''), acknowledged_on,
			   count(*) OVER () AS count
		FROM alerts
		WHERE %s
		ORDER BY %s %s
		%s
	`, where, condition.SortBy(), condition.SortOrder(), condition.OffsetLimit())

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return types.Collection[types.Alert]{}, err
	}

	var a types.Alert
	var count int64

	alerts := make([]types.Alert, 0)

	_, err = pgx.ForEachRow(rows, []any{
		&a.ID, &a.PrinterID, &a.PrinterName, &a.AlertType, &a.Severity, &a.Message,
		&a.CreatedAt, &a.Acknowledged, &a.AcknowledgedBy, &a.AcknowledgedAt, &count}, func() error {
		alerts = append(alerts, a)
		return nil
	})
	if err != nil {
		return types.Collection[types.Alert]{}, err
	}

	return types.Collection[types.Alert]{
		Data:       alerts,
		Count:      uint64(len(alerts)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(count),
	}, nil
}

func (s *Storage) AcknowledgeAlert(ctx context.Context, alertID, acknowledgedBy string, acknowledgedAt time.Time) error {
	args := pgx.NamedArgs{
		"alert_id":        alertID,
		"acknowledged_by": acknowledgedBy,
		"acknowledged_on": acknowledgedAt.UTC(),
	}

	tag, err := s.pool.Exec(ctx, `
		UPDATE alerts
		SET acknowledged = TRUE, acknowledged_by = @acknowledged_by, acknowledged_on = @acknowledged_on
		WHERE alert_id = @alert_id AND acknowledged = FALSE
	`, args)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

// DeleteAlerts removes alerts matching the given conditions and reports how
// many rows went away. Used by the retention cleanup.
func (s *Storage) DeleteAlerts(ctx context.Context, conditions ...ConditionFunc) (int64, error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	args := condition.NamedArgs()
	where := alertWhere(*condition)

	if where == "TRUE" {
		return 0, fmt.Errorf("refusing to delete alerts without conditions")
	}

	tag, err := s.pool.Exec(ctx, fmt.Sprintf("DELETE FROM alerts WHERE %s", where), args)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}
