package monitor

import (
	"context"
	"sync"
	"time"

	"github.com/printwatch/printer-fleet-mgmt/internal/pkg/application/alerts"
	"github.com/printwatch/printer-fleet-mgmt/internal/pkg/application/printers"
	"github.com/printwatch/printer-fleet-mgmt/internal/pkg/infrastructure/acquisition/hpweb"
	"github.com/printwatch/printer-fleet-mgmt/internal/pkg/infrastructure/acquisition/snmp"
	"github.com/printwatch/printer-fleet-mgmt/pkg/types"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("printer-fleet-mgmt/monitor")

const (
	DefaultPollInterval    = 30 * time.Second
	DefaultCleanupInterval = 24 * time.Hour
	DefaultWorkerCount     = 10
)

//go:generate moq -rm -out primaryreader_mock.go . PrimaryReader
type PrimaryReader interface {
	Read(ctx context.Context, addr, community string) (snmp.RawResult, error)
}

//go:generate moq -rm -out fallbackreader_mock.go . FallbackReader
type FallbackReader interface {
	FetchInkLevels(ctx context.Context, addr string) (hpweb.InkLevels, error)
}

type Config struct {
	IntervalSeconds      int `yaml:"intervalseconds"`
	CleanupIntervalHours int `yaml:"cleanupintervalhours"`
	Workers              int `yaml:"workers"`
}

type Monitor struct {
	registry printers.PrinterManagement
	alerts   alerts.AlertService
	primary  PrimaryReader
	fallback FallbackReader

	interval        time.Duration
	cleanupInterval time.Duration
	workers         int

	mu       sync.Mutex
	inflight map[string]struct{}

	wg   sync.WaitGroup
	stop context.CancelFunc
}

func New(registry printers.PrinterManagement, alertSvc alerts.AlertService, primary PrimaryReader, fallback FallbackReader, cfg *Config) *Monitor {
	m := &Monitor{
		registry:        registry,
		alerts:          alertSvc,
		primary:         primary,
		fallback:        fallback,
		interval:        DefaultPollInterval,
		cleanupInterval: DefaultCleanupInterval,
		workers:         DefaultWorkerCount,
		inflight:        map[string]struct{}{},
	}

	if cfg != nil {
		if cfg.IntervalSeconds > 0 {
			m.interval = time.Duration(cfg.IntervalSeconds) * time.Second
		}
		if cfg.CleanupIntervalHours > 0 {
			m.cleanupInterval = time.Duration(cfg.CleanupIntervalHours) * time.Hour
		}
		if cfg.Workers > 0 {
			m.workers = cfg.Workers
		}
	}

	return m
}

// Start kicks off the poll and cleanup cycles. A fixed pool of workers drains
// the queue, so a fleet of slow devices can never pile up goroutines.
func (m *Monitor) Start(ctx context.Context) {
	ctx, m.stop = context.WithCancel(ctx)

	queue := make(chan types.Printer)

	for i := 0; i < m.workers; i++ {
		m.wg.Add(1)
		go func() {
			defer m.wg.Done()
			for printer := range queue {
				m.pollPrinter(ctx, printer)
				m.release(printer.ID)
			}
		}()
	}

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		defer close(queue)

		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		m.dispatch(ctx, queue)

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.dispatch(ctx, queue)
			}
		}
	}()

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()

		ticker := time.NewTicker(m.cleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.cleanup(ctx)
			}
		}
	}()
}

func (m *Monitor) Stop() {
	if m.stop != nil {
		m.stop()
	}
	m.wg.Wait()
}

// dispatch queues every active printer not already being polled. A device
// that takes longer than the interval is simply skipped until its previous
// poll finishes.
func (m *Monitor) dispatch(ctx context.Context, queue chan<- types.Printer) {
	log := logging.GetFromContext(ctx)

	fleet, err := m.registry.ListActive(ctx)
	if err != nil {
		log.Error("could not list active printers", "err", err.Error())
		return
	}

	for _, printer := range fleet {
		if !m.acquire(printer.ID) {
			log.Debug("previous poll still running, skipping", "printer_id", printer.ID)
			continue
		}

		select {
		case <-ctx.Done():
			m.release(printer.ID)
			return
		case queue <- printer:
		}
	}
}

func (m *Monitor) acquire(printerID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.inflight[printerID]; ok {
		return false
	}

	m.inflight[printerID] = struct{}{}
	return true
}

func (m *Monitor) release(printerID string) {
	m.mu.Lock()
	delete(m.inflight, printerID)
	m.mu.Unlock()
}

func (m *Monitor) cleanup(ctx context.Context) {
	log := logging.GetFromContext(ctx)

	removed, err := m.alerts.RemoveOldAlerts(ctx)
	if err != nil {
		log.Error("alert cleanup failed", "err", err.Error())
		return
	}

	log.Info("alert cleanup done", "removed", removed)
}
