package printers

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/printwatch/printer-fleet-mgmt/internal/pkg/infrastructure/storage"
	"github.com/printwatch/printer-fleet-mgmt/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/google/uuid"
)

var ErrPrinterNotFound = fmt.Errorf("printer not found")
var ErrPrinterAlreadyExist = fmt.Errorf("printer already exists")

// DefaultFailureThreshold is how many consecutive failed polls it takes
// before a printer is marked offline.
const DefaultFailureThreshold = 1

//go:generate moq -rm -out printermanagement_mock.go . PrinterManagement
type PrinterManagement interface {
	GetByID(ctx context.Context, printerID string) (types.Printer, error)
	Query(ctx context.Context, params map[string][]string) (types.Collection[types.Printer], error)
	ListActive(ctx context.Context) ([]types.Printer, error)

	AddPrinter(ctx context.Context, printer types.Printer) (types.Printer, error)
	UpdatePrinter(ctx context.Context, printer types.Printer) error
	MergePrinter(ctx context.Context, printerID string, fields map[string]any) error
	DeletePrinter(ctx context.Context, printerID string) error

	ReportPollSuccess(ctx context.Context, printerID string, status types.PrinterStatus, polledAt time.Time) error
	ReportPollFailure(ctx context.Context, printerID string, polledAt time.Time) (bool, error)

	AddMetricSample(ctx context.Context, sample types.MetricSample) error
	QueryMetrics(ctx context.Context, printerID string, params map[string][]string) (types.Collection[types.MetricSample], error)
}

//go:generate moq -rm -out printerrepository_mock.go . PrinterRepository
type PrinterRepository interface {
	QueryPrinters(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Printer], error)
	GetPrinter(ctx context.Context, conditions ...storage.ConditionFunc) (types.Printer, error)
	AddPrinter(ctx context.Context, printer types.Printer) error
	UpdatePrinter(ctx context.Context, printer types.Printer) error
	SetPrinterStatus(ctx context.Context, printerID string, status types.PrinterStatus, lastPolled time.Time) error
	DeletePrinter(ctx context.Context, printerID string) error
	AddMetricSample(ctx context.Context, sample types.MetricSample) error
	QueryMetricSamples(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.MetricSample], error)
}

type Config struct {
	// FailureThreshold is the number of consecutive poll failures required
	// before a printer flips to offline.
	FailureThreshold int `yaml:"failurethreshold"`
}

type service struct {
	storage   PrinterRepository
	messenger messaging.MsgContext

	failureThreshold int

	mu       sync.Mutex
	failures map[string]int
}

func New(storage PrinterRepository, messenger messaging.MsgContext, cfg *Config) PrinterManagement {
	s := &service{
		storage:          storage,
		messenger:        messenger,
		failureThreshold: DefaultFailureThreshold,
		failures:         map[string]int{},
	}

	if cfg != nil && cfg.FailureThreshold > 0 {
		s.failureThreshold = cfg.FailureThreshold
	}

	return s
}

func (s *service) GetByID(ctx context.Context, printerID string) (types.Printer, error) {
	printer, err := s.storage.GetPrinter(ctx, storage.WithPrinterID(printerID))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Printer{}, ErrPrinterNotFound
		}
		return types.Printer{}, err
	}

	return printer, nil
}

func (s *service) Query(ctx context.Context, params map[string][]string) (types.Collection[types.Printer], error) {
	conditions := make([]storage.ConditionFunc, 0)

	for k, v := range params {
		switch strings.ToLower(k) {
		case "printer_id":
			conditions = append(conditions, storage.WithPrinterID(v[0]))
		case "active":
			active, _ := strconv.ParseBool(v[0])
			conditions = append(conditions, storage.WithActive(active))
		case "status":
			conditions = append(conditions, storage.WithStatus(v[0]))
		case "search":
			conditions = append(conditions, storage.WithSearch(v[0]))
		case "limit":
			limit, _ := strconv.Atoi(v[0])
			conditions = append(conditions, storage.WithLimit(limit))
		case "offset":
			offset, _ := strconv.Atoi(v[0])
			conditions = append(conditions, storage.WithOffset(offset))
		case "sortby":
			conditions = append(conditions, storage.WithSortBy(v[0]))
		case "sortorder":
			conditions = append(conditions, storage.WithSortDesc(strings.EqualFold(v[0], "desc")))
		}
	}

	return s.storage.QueryPrinters(ctx, conditions...)
}

// ListActive returns every printer enabled for polling, without pagination.
// This is the scheduler's view of the fleet.
func (s *service) ListActive(ctx context.Context) ([]types.Printer, error) {
	result, err := s.storage.QueryPrinters(ctx, storage.WithActive(true), storage.WithLimit(10000))
	if err != nil {
		return nil, err
	}

	return result.Data, nil
}

func (s *service) AddPrinter(ctx context.Context, printer types.Printer) (types.Printer, error) {
	if printer.IPAddress == "" {
		return types.Printer{}, fmt.Errorf("no ip address is set on printer")
	}

	if printer.ID == "" {
		printer.ID = uuid.NewString()
	}
	if printer.Status == "" {
		printer.Status = types.PrinterOffline
	}

	err := s.storage.AddPrinter(ctx, printer)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExist) {
			return types.Printer{}, ErrPrinterAlreadyExist
		}
		return types.Printer{}, err
	}

	return printer, nil
}

func (s *service) UpdatePrinter(ctx context.Context, printer types.Printer) error {
	err := s.storage.UpdatePrinter(ctx, printer)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return ErrPrinterNotFound
		}
		return err
	}

	return nil
}

func (s *service) MergePrinter(ctx context.Context, printerID string, fields map[string]any) error {
	log := logging.GetFromContext(ctx)

	printer, err := s.GetByID(ctx, printerID)
	if err != nil {
		return err
	}

	asString := func(v any, dst *string) error {
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("expected a string value")
		}
		*dst = s
		return nil
	}

	for k, v := range fields {
		switch k {
		case "id":
			continue
		case "name":
			err = asString(v, &printer.Name)
		case "ipAddress":
			err = asString(v, &printer.IPAddress)
		case "model":
			err = asString(v, &printer.Model)
		case "location":
			err = asString(v, &printer.Location)
		case "snmpCommunity":
			err = asString(v, &printer.SNMPCommunity)
		case "active":
			active, ok := v.(bool)
			if !ok {
				err = fmt.Errorf("expected a boolean value")
			}
			printer.Active = active
		default:
			log.Debug("field not mapped for merge", "printer_id", printerID, "name", k)
		}

		if err != nil {
			return fmt.Errorf("invalid value for field %s: %w", k, err)
		}
	}

	return s.UpdatePrinter(ctx, printer)
}

func (s *service) DeletePrinter(ctx context.Context, printerID string) error {
	err := s.storage.DeletePrinter(ctx, printerID)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return ErrPrinterNotFound
		}
		return err
	}

	s.mu.Lock()
	delete(s.failures, printerID)
	s.mu.Unlock()

	return nil
}

// ReportPollSuccess records the outcome of a successful poll, resets the
// failure counter and publishes a status changed event if the stored status
// differs from the observed one.
func (s *service) ReportPollSuccess(ctx context.Context, printerID string, status types.PrinterStatus, polledAt time.Time) error {
	s.mu.Lock()
	delete(s.failures, printerID)
	s.mu.Unlock()

	return s.setStatus(ctx, printerID, status, polledAt)
}

// ReportPollFailure counts a failed poll. The printer flips to offline once
// the configured number of consecutive failures is reached. Returns true on
// that cycle and on every further failed cycle of the outage, so the caller
// keeps surfacing an offline candidate and the alert dedup window decides
// when a new alert is warranted.
func (s *service) ReportPollFailure(ctx context.Context, printerID string, polledAt time.Time) (bool, error) {
	s.mu.Lock()
	s.failures[printerID]++
	n := s.failures[printerID]
	s.mu.Unlock()

	if n < s.failureThreshold {
		return false, nil
	}

	err := s.setStatus(ctx, printerID, types.PrinterOffline, polledAt)
	if err != nil {
		return false, err
	}

	return true, nil
}

func (s *service) setStatus(ctx context.Context, printerID string, status types.PrinterStatus, polledAt time.Time) error {
	printer, err := s.GetByID(ctx, printerID)
	if err != nil {
		return err
	}

	err = s.storage.SetPrinterStatus(ctx, printerID, status, polledAt)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return ErrPrinterNotFound
		}
		return err
	}

	if printer.Status != status {
		err = s.messenger.PublishOnTopic(ctx, &PrinterStatusChanged{
			PrinterID:      printerID,
			PreviousStatus: printer.Status,
			NewStatus:      status,
			Timestamp:      polledAt,
		})
		if err != nil {
			logging.GetFromContext(ctx).Warn("could not publish status changed event", "printer_id", printerID, "err", err.Error())
		}
	}

	return nil
}

func (s *service) AddMetricSample(ctx context.Context, sample types.MetricSample) error {
	if sample.PrinterID == "" {
		return fmt.Errorf("no printerID is set on sample")
	}
	if sample.Timestamp.IsZero() {
		sample.Timestamp = time.Now().UTC()
	}

	return s.storage.AddMetricSample(ctx, sample)
}

func (s *service) QueryMetrics(ctx context.Context, printerID string, params map[string][]string) (types.Collection[types.MetricSample], error) {
	conditions := []storage.ConditionFunc{storage.WithPrinterID(printerID)}

	for k, v := range params {
		switch strings.ToLower(k) {
		case "timerel":
			if strings.EqualFold(v[0], "between") {
				since, until, err := parseTimeInterval(params)
				if err != nil {
					return types.Collection[types.MetricSample]{}, err
				}
				conditions = append(conditions, storage.WithTimeInterval(since, until))
			}
		case "limit":
			limit, _ := strconv.Atoi(v[0])
			conditions = append(conditions, storage.WithLimit(limit))
		case "offset":
			offset, _ := strconv.Atoi(v[0])
			conditions = append(conditions, storage.WithOffset(offset))
		}
	}

	return s.storage.QueryMetricSamples(ctx, conditions...)
}

func parseTimeInterval(params map[string][]string) (time.Time, time.Time, error) {
	getTime := func(key string, defaultTime time.Time) (time.Time, error) {
		v, ok := params[key]
		if !ok || len(v) == 0 {
			return defaultTime, nil
		}
		return time.Parse(time.RFC3339, v[0])
	}

	since, err := getTime("timeat", time.Time{})
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid timeat parameter: %w", err)
	}

	until, err := getTime("endtimeat", time.Now().UTC())
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid endtimeat parameter: %w", err)
	}

	return since, until, nil
}
