package monitor

import (
	"context"
	"strings"
	"time"

	"github.com/printwatch/printer-fleet-mgmt/internal/pkg/application/alerts"
	"github.com/printwatch/printer-fleet-mgmt/internal/pkg/infrastructure/acquisition/hpweb"
	"github.com/printwatch/printer-fleet-mgmt/pkg/types"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
)

// pollPrinter runs one full acquisition cycle for one device: primary read,
// fallback if the primary came back dead or degenerate, normalization,
// sample storage, alert evaluation and status bookkeeping.
func (m *Monitor) pollPrinter(ctx context.Context, printer types.Printer) {
	var err error

	ctx, span := tracer.Start(ctx, "poll-printer")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
	_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

	log = log.With("printer_id", printer.ID)
	ctx = logging.NewContextWithLogger(ctx, log)

	polledAt := time.Now().UTC()

	sample, ok := m.acquireSample(ctx, printer)
	if !ok {
		m.reportFailure(ctx, printer, polledAt)
		return
	}

	sample.PrinterID = printer.ID
	sample.Timestamp = polledAt

	err = m.registry.AddMetricSample(ctx, sample)
	if err != nil {
		log.Error("could not store metric sample", "err", err.Error())
	}

	candidates := alerts.EvaluateSample(printer, sample)
	for _, candidate := range candidates {
		created, aerr := m.alerts.Add(ctx, candidate)
		if aerr != nil {
			log.Error("could not add alert", "alert_type", candidate.AlertType, "err", aerr.Error())
			continue
		}
		if created {
			log.Info("alert created", "alert_type", candidate.AlertType, "severity", string(candidate.Severity))
		}
	}

	err = m.registry.ReportPollSuccess(ctx, printer.ID, statusForSample(sample, candidates), polledAt)
	if err != nil {
		log.Error("could not update printer status", "err", err.Error())
	}
}

// acquireSample tries the primary protocol first and falls back to the web
// scrape when the primary is unreachable, or populated but degenerate on a
// device known to underreport supply levels. Returns false when neither path
// produced usable data.
func (m *Monitor) acquireSample(ctx context.Context, printer types.Printer) (types.MetricSample, bool) {
	log := logging.GetFromContext(ctx)

	raw, err := m.primary.Read(ctx, printer.IPAddress, printer.SNMPCommunity)
	if err != nil {
		log.Debug("primary read failed, trying fallback", "err", err.Error())

		ink, ferr := m.fallback.FetchInkLevels(ctx, printer.IPAddress)
		if ferr != nil || ink.Empty() {
			return types.MetricSample{}, false
		}

		return sampleFromInkLevels(ink), true
	}

	sample := normalize(raw, printer.Model)

	if raw.Degenerate() && wantsFallback(printer.Model) {
		ink, ferr := m.fallback.FetchInkLevels(ctx, printer.IPAddress)
		if ferr != nil {
			log.Debug("fallback unavailable, keeping primary result", "err", ferr.Error())
			return sample, true
		}

		mergeInkLevels(&sample, ink)
	}

	return sample, true
}

func (m *Monitor) reportFailure(ctx context.Context, printer types.Printer, polledAt time.Time) {
	log := logging.GetFromContext(ctx)

	offline, err := m.registry.ReportPollFailure(ctx, printer.ID, polledAt)
	if err != nil {
		log.Error("could not record poll failure", "err", err.Error())
		return
	}

	if !offline {
		return
	}

	// hand an offline candidate to the alert service on every failed cycle
	// of the outage and leave suppression to its dedup window
	created, err := m.alerts.Add(ctx, alerts.EvaluatePollFailure(printer))
	if err != nil {
		log.Error("could not add offline alert", "err", err.Error())
		return
	}

	if created {
		log.Info("printer went offline")
	}
}

// wantsFallback reports whether a degenerate primary read should route to the
// web scrape. Only HP devices expose the consumable document.
func wantsFallback(model string) bool {
	return strings.Contains(strings.ToLower(model), "hp")
}

func sampleFromInkLevels(ink hpweb.InkLevels) types.MetricSample {
	return types.MetricSample{
		BlackLevel:   ink.Black,
		CyanLevel:    ink.Cyan,
		MagentaLevel: ink.Magenta,
		YellowLevel:  ink.Yellow,
		PrinterType:  types.PrinterTypeInkjet,
	}
}

// mergeInkLevels fills levels the primary read left unknown or zeroed. A
// populated primary value is never overwritten.
func mergeInkLevels(sample *types.MetricSample, ink hpweb.InkLevels) {
	merge := func(dst **int, src *int) {
		if src == nil {
			return
		}
		if *dst == nil || **dst == 0 {
			*dst = src
		}
	}

	merge(&sample.BlackLevel, ink.Black)
	merge(&sample.CyanLevel, ink.Cyan)
	merge(&sample.MagentaLevel, ink.Magenta)
	merge(&sample.YellowLevel, ink.Yellow)
}

// statusForSample derives the registry status from a successful poll.
func statusForSample(sample types.MetricSample, candidates []types.Alert) types.PrinterStatus {
	if strings.Contains(strings.ToLower(sample.DeviceStatus), "error") {
		return types.PrinterError
	}

	if len(candidates) > 0 {
		return types.PrinterWarning
	}

	return types.PrinterOnline
}
