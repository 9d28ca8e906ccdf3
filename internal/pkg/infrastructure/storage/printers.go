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

func printerWhere(c Condition) string {
	where := []string{}

	if c.PrinterID != "" {
		where = append(where, "printer_id = @printer_id")
	}
	if c.Active != nil {
		where = append(where, "active = @active")
	}
	if c.Status != "" {
		where = append(where, "status = @status")
	}
	if c.Search != "" {
		where = append(where, "(printer_id ILIKE @search OR name ILIKE @search OR ip_address ILIKE @search OR model ILIKE @search)")
	}
	if !c.IncludeDeleted {
		where = append(where, "deleted = FALSE")
	}

	if len(where) == 0 {
		return "TRUE"
	}

	return strings.Join(where, " AND ")
}

func (s *Storage) AddPrinter(ctx context.Context, printer types.Printer) error {
	if printer.ID == "" {
		return ErrNoID
	}

	existing, err := s.QueryPrinters(ctx, WithPrinterID(printer.ID))
	if err != nil {
		return err
	}
	if existing.Count > 0 {
		return ErrAlreadyExist
	}

	status := printer.Status
	if status == "" {
		status = types.PrinterOffline
	}

	args := pgx.NamedArgs{
		"printer_id":     printer.ID,
		"name":           printer.Name,
		"ip_address":     printer.IPAddress,
		"model":          printer.Model,
		"location":       printer.Location,
		"snmp_community": printer.SNMPCommunity,
		"active":         printer.Active,
		"status":         string(status),
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO printers (printer_id, name, ip_address, model, location, snmp_community, active, status)
		VALUES (@printer_id, @name, @ip_address, @model, @location, @snmp_community, @active, @status)
	`, args)
	if err != nil {
		return err
	}

	return nil
}

func (s *Storage) UpdatePrinter(ctx context.Context, printer types.Printer) error {
	if printer.ID == "" {
		return ErrNoID
	}

	args := pgx.NamedArgs{
		"printer_id":     printer.ID,
		"name":           printer.Name,
		"ip_address":     printer.IPAddress,
		"model":          printer.Model,
		"location":       printer.Location,
		"snmp_community": printer.SNMPCommunity,
		"active":         printer.Active,
	}

	tag, err := s.pool.Exec(ctx, `
		UPDATE printers
		SET name = @name, ip_address = @ip_address, model = @model, location = @location,
			snmp_community = @snmp_community, active = @active, modified_on = CURRENT_TIMESTAMP
		WHERE printer_id = @printer_id AND deleted = FALSE
	`, args)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

// SetPrinterStatus records the outcome of a poll. Only status and last_polled
// are touched, everything else belongs to the management API.
func (s *Storage) SetPrinterStatus(ctx context.Context, printerID string, status types.PrinterStatus, lastPolled time.Time) error {
	args := pgx.NamedArgs{
		"printer_id":  printerID,
		"status":      string(status),
		"last_polled": lastPolled.UTC(),
	}

	tag, err := s.pool.Exec(ctx, `
		UPDATE printers
		SET status = @status, last_polled = @last_polled
		WHERE printer_id = @printer_id AND deleted = FALSE
	`, args)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

func (s *Storage) DeletePrinter(ctx context.Context, printerID string) error {
	args := pgx.NamedArgs{
		"printer_id": printerID,
	}

	tag, err := s.pool.Exec(ctx, `
		UPDATE printers
		SET deleted = TRUE, deleted_on = CURRENT_TIMESTAMP
		WHERE printer_id = @printer_id AND deleted = FALSE
	`, args)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

func (s *Storage) GetPrinter(ctx context.Context, conditions ...ConditionFunc) (types.Printer, error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	args := condition.NamedArgs()
	where := printerWhere(*condition)

	query := fmt.Sprintf(`
		SELECT printer_id, name, ip_address, COALESCE(model,''), COALESCE(location,''), COALESCE(snmp_community,''),
			   active, status, COALESCE(last_polled, '0001-01-01'), created_on, modified_on
		FROM printers
		WHERE %s
	`, where)

	var p types.Printer

	err := s.pool.QueryRow(ctx, query, args).Scan(
		&p.ID, &p.Name, &p.IPAddress, &p.Model, &p.Location, &p.SNMPCommunity,
		&p.Active, &p.Status, &p.LastPolled, &p.CreatedAt, &p.ModifiedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Printer{}, ErrNoRows
		}
		return types.Printer{}, err
	}

	return p, nil
}

func (s *Storage) QueryPrinters(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.Printer], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	if condition.sortBy == "" {
		condition.sortBy = "name"
	}

	args := condition.NamedArgs()
	where := printerWhere(*condition)

	query := fmt.Sprintf(`
		SELECT printer_id, name, ip_address, COALESCE(model,''), COALESCE(location,''), COALESCE(snmp_community,''),
			   active, status, COALESCE(last_polled, '0001-01-01'), created_on, modified_on, count(*) OVER () AS count
		FROM printers
		WHERE %s
		ORDER BY %s %s
		%s
	`, where, condition.SortBy(), condition.SortOrder(), condition.OffsetLimit())

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return types.Collection[types.Printer]{}, err
	}

	var p types.Printer
	var count int64

	printers := make([]types.Printer, 0)

	_, err = pgx.ForEachRow(rows, []any{
		&p.ID, &p.Name, &p.IPAddress, &p.Model, &p.Location, &p.SNMPCommunity,
		&p.Active, &p.Status, &p.LastPolled, &p.CreatedAt, &p.ModifiedAt, &count}, func() error {
		printers = append(printers, p)
		return nil
	})
	if err != nil {
		return types.Collection[types.Printer]{}, err
	}

	return types.Collection[types.Printer]{
		Data:       printers,
		Count:      uint64(len(printers)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(count),
	}, nil
}
