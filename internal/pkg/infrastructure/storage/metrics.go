package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/printwatch/printer-fleet-mgmt/pkg/types"

	"github.com/jackc/pgx/v5"
)

func metricWhere(c Condition) string {
	where := []string{}

	if c.PrinterID != "" {
		where = append(where, "printer_id = @printer_id")
	}
	if !c.Since.IsZero() {
		where = append(where, "time >= @since")
	}
	if !c.Until.IsZero() {
		where = append(where, "time <= @until")
	}

	if len(where) == 0 {
		return "TRUE"
	}

	return strings.Join(where, " AND ")
}

func (s *Storage) AddMetricSample(ctx context.Context, sample types.MetricSample) error {
	if sample.PrinterID == "" {
		return ErrNoID
	}

	args := pgx.NamedArgs{
		"time":              sample.Timestamp.UTC(),
		"printer_id":        sample.PrinterID,
		"cyan_level":        sample.CyanLevel,
		"magenta_level":     sample.MagentaLevel,
		"yellow_level":      sample.YellowLevel,
		"black_level":       sample.BlackLevel,
		"toner_level":       sample.TonerLevel,
		"paper_tray_status": sample.PaperTrayStatus,
		"page_count":        sample.PageCount,
		"device_status":     sample.DeviceStatus,
		"printer_type":      string(sample.PrinterType),
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO printer_metrics (time, printer_id, cyan_level, magenta_level, yellow_level, black_level,
			toner_level, paper_tray_status, page_count, device_status, printer_type)
		VALUES (@time, @printer_id, @cyan_level, @magenta_level, @yellow_level, @black_level,
			@toner_level, @paper_tray_status, @page_count, @device_status, @printer_type)
	`, args)
	if err != nil {
		return err
	}

	return nil
}

func (s *Storage) QueryMetricSamples(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.MetricSample], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	if condition.sortBy == "" {
		condition.sortBy = "time"
		condition.sortOrder = "DESC"
	}

	args := condition.NamedArgs()
	where := metricWhere(*condition)

	query := fmt.Sprintf(`
		SELECT time, printer_id, cyan_level, magenta_level, yellow_level, black_level, toner_level,
			   COALESCE(paper_tray_status,''), page_count, COALESCE(device_status,''), printer_type,
			   count(*) OVER () AS count
		FROM printer_metrics
		WHERE %s
		ORDER BY %s %s
		%s
	`, where, condition.SortBy(), condition.SortOrder(), condition.OffsetLimit())

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return types.Collection[types.MetricSample]{}, err
	}

	var m types.MetricSample
	var count int64

	samples := make([]types.MetricSample, 0)

	_, err = pgx.ForEachRow(rows, []any{
		&m.Timestamp, &m.PrinterID, &m.CyanLevel, &m.MagentaLevel, &m.YellowLevel, &m.BlackLevel,
		&m.TonerLevel, &m.PaperTrayStatus, &m.PageCount, &m.DeviceStatus, &m.PrinterType, &count}, func() error {
		samples = append(samples, m)
		return nil
	})
	if err != nil {
		return types.Collection[types.MetricSample]{}, err
	}

	return types.Collection[types.MetricSample]{
		Data:       samples,
		Count:      uint64(len(samples)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(count),
	}, nil
}
