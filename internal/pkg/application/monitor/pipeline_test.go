package monitor

import (
	"context"
	"testing"
	"time"

	"github.com/printwatch/printer-fleet-mgmt/internal/pkg/application/alerts"
	"github.com/printwatch/printer-fleet-mgmt/internal/pkg/application/printers"
	"github.com/printwatch/printer-fleet-mgmt/internal/pkg/infrastructure/acquisition/hpweb"
	"github.com/printwatch/printer-fleet-mgmt/internal/pkg/infrastructure/acquisition/snmp"
	"github.com/printwatch/printer-fleet-mgmt/pkg/types"

	"github.com/matryer/is"
)

func intPtr(n int) *int {
	return &n
}

func rawWith(set func(r *snmp.RawResult)) snmp.RawResult {
	r := snmp.RawResult{}
	set(&r)
	return r
}

func healthyRaw() snmp.RawResult {
	return rawWith(func(r *snmp.RawResult) {
		r.Values[snmp.FieldCyanLevel] = snmp.RawValue{Present: true, IsInt: true, Int: 80, Text: "80"}
		r.Values[snmp.FieldMagentaLevel] = snmp.RawValue{Present: true, IsInt: true, Int: 75, Text: "75"}
		r.Values[snmp.FieldYellowLevel] = snmp.RawValue{Present: true, IsInt: true, Int: 90, Text: "90"}
		r.Values[snmp.FieldBlackLevel] = snmp.RawValue{Present: true, IsInt: true, Int: 65, Text: "65"}
		r.Values[snmp.FieldPageCount] = snmp.RawValue{Present: true, IsInt: true, Int: 12345, Text: "12345"}
		r.Values[snmp.FieldDeviceStatus] = snmp.RawValue{Present: true, Text: "running(2)"}
		r.Values[snmp.FieldDeviceDescription] = snmp.RawValue{Present: true, Text: "HP OfficeJet Pro 9010"}
	})
}

func degenerateRaw() snmp.RawResult {
	return rawWith(func(r *snmp.RawResult) {
		r.Values[snmp.FieldCyanLevel] = snmp.RawValue{Present: true, IsInt: true, Int: 0, Text: "0"}
		r.Values[snmp.FieldMagentaLevel] = snmp.RawValue{Present: true, IsInt: true, Int: 0, Text: "0"}
		r.Values[snmp.FieldYellowLevel] = snmp.RawValue{Present: true, IsInt: true, Int: 0, Text: "0"}
		r.Values[snmp.FieldBlackLevel] = snmp.RawValue{Present: true, IsInt: true, Int: 0, Text: "0"}
		r.Values[snmp.FieldPageCount] = snmp.RawValue{Present: true, IsInt: true, Int: 4321, Text: "4321"}
	})
}

type pipelineMocks struct {
	registry *printers.PrinterManagementMock
	alerts   *alerts.AlertServiceMock
	primary  *PrimaryReaderMock
	fallback *FallbackReaderMock
}

func pipelineSetup(t *testing.T) (*is.I, context.Context, *Monitor, *pipelineMocks) {
	is := is.New(t)

	mocks := &pipelineMocks{
		registry: &printers.PrinterManagementMock{
			AddMetricSampleFunc: func(ctx context.Context, sample types.MetricSample) error {
				return nil
			},
			ReportPollSuccessFunc: func(ctx context.Context, printerID string, status types.PrinterStatus, polledAt time.Time) error {
				return nil
			},
			ReportPollFailureFunc: func(ctx context.Context, printerID string, polledAt time.Time) (bool, error) {
				return true, nil
			},
		},
		alerts: &alerts.AlertServiceMock{
			AddFunc: func(ctx context.Context, alert types.Alert) (bool, error) {
				return true, nil
			},
		},
		primary: &PrimaryReaderMock{
			ReadFunc: func(ctx context.Context, addr, community string) (snmp.RawResult, error) {
				return healthyRaw(), nil
			},
		},
		fallback: &FallbackReaderMock{
			FetchInkLevelsFunc: func(ctx context.Context, addr string) (hpweb.InkLevels, error) {
				return hpweb.InkLevels{}, hpweb.ErrFallbackUnavailable
			},
		},
	}

	m := New(mocks.registry, mocks.alerts, mocks.primary, mocks.fallback, nil)

	return is, context.Background(), m, mocks
}

func hpPrinter() types.Printer {
	return types.Printer{
		ID:        "printer-01",
		Name:      "Front Office",
		IPAddress: "192.168.1.50",
		Model:     "HP OfficeJet Pro 9010",
		Active:    true,
		Status:    types.PrinterOnline,
	}
}

func TestHealthyPollStoresSampleAndReportsOnline(t *testing.T) {
	is, ctx, m, mocks := pipelineSetup(t)

	m.pollPrinter(ctx, hpPrinter())

	is.Equal(len(mocks.registry.AddMetricSampleCalls()), 1)
	is.Equal(len(mocks.fallback.FetchInkLevelsCalls()), 0)
	is.Equal(len(mocks.alerts.AddCalls()), 0)

	success := mocks.registry.ReportPollSuccessCalls()
	is.Equal(len(success), 1)
	is.Equal(success[0].Status, types.PrinterOnline)

	sample := mocks.registry.AddMetricSampleCalls()[0].Sample
	is.Equal(sample.PrinterID, "printer-01")
	is.Equal(*sample.BlackLevel, 65)
	is.Equal(sample.PageCount, 12345)
}

func TestDegenerateReadTriggersFallbackOnce(t *testing.T) {
	is, ctx, m, mocks := pipelineSetup(t)

	mocks.primary.ReadFunc = func(ctx context.Context, addr, community string) (snmp.RawResult, error) {
		return degenerateRaw(), nil
	}
	mocks.fallback.FetchInkLevelsFunc = func(ctx context.Context, addr string) (hpweb.InkLevels, error) {
		return hpweb.InkLevels{Black: intPtr(40), Cyan: intPtr(75), Magenta: intPtr(75), Yellow: intPtr(75)}, nil
	}

	m.pollPrinter(ctx, hpPrinter())

	is.Equal(len(mocks.fallback.FetchInkLevelsCalls()), 1)

	sample := mocks.registry.AddMetricSampleCalls()[0].Sample
	is.Equal(*sample.BlackLevel, 40)
	is.Equal(*sample.CyanLevel, 75)
	// metrics from the primary read survive the merge
	is.Equal(sample.PageCount, 4321)
}

func TestDegenerateReadOnNonHPSkipsFallback(t *testing.T) {
	is, ctx, m, mocks := pipelineSetup(t)

	mocks.primary.ReadFunc = func(ctx context.Context, addr, community string) (snmp.RawResult, error) {
		return degenerateRaw(), nil
	}

	printer := hpPrinter()
	printer.Model = "Brother MFC-L3770CDW"

	m.pollPrinter(ctx, printer)

	is.Equal(len(mocks.fallback.FetchInkLevelsCalls()), 0)
	is.Equal(len(mocks.registry.AddMetricSampleCalls()), 1)
}

func TestPrimaryFailureFallbackSucceeds(t *testing.T) {
	is, ctx, m, mocks := pipelineSetup(t)

	mocks.primary.ReadFunc = func(ctx context.Context, addr, community string) (snmp.RawResult, error) {
		return snmp.RawResult{}, snmp.ErrConnectivity
	}
	mocks.fallback.FetchInkLevelsFunc = func(ctx context.Context, addr string) (hpweb.InkLevels, error) {
		return hpweb.InkLevels{Black: intPtr(55)}, nil
	}

	m.pollPrinter(ctx, hpPrinter())

	is.Equal(len(mocks.registry.ReportPollFailureCalls()), 0)

	success := mocks.registry.ReportPollSuccessCalls()
	is.Equal(len(success), 1)
	is.Equal(success[0].Status, types.PrinterOnline)

	sample := mocks.registry.AddMetricSampleCalls()[0].Sample
	is.Equal(*sample.BlackLevel, 55)
	is.Equal(sample.PrinterType, types.PrinterTypeInkjet)
}

func TestBothPathsFailReportsOffline(t *testing.T) {
	is, ctx, m, mocks := pipelineSetup(t)

	mocks.primary.ReadFunc = func(ctx context.Context, addr, community string) (snmp.RawResult, error) {
		return snmp.RawResult{}, snmp.ErrConnectivity
	}

	m.pollPrinter(ctx, hpPrinter())

	is.Equal(len(mocks.registry.AddMetricSampleCalls()), 0)
	is.Equal(len(mocks.registry.ReportPollFailureCalls()), 1)

	added := mocks.alerts.AddCalls()
	is.Equal(len(added), 1)
	is.Equal(added[0].Alert.AlertType, types.AlertTypeOffline)
	is.Equal(added[0].Alert.Severity, types.AlertSeverityCritical)
}

func TestPersistentOutageHandsOffCandidateEveryCycle(t *testing.T) {
	is, ctx, m, mocks := pipelineSetup(t)

	mocks.primary.ReadFunc = func(ctx context.Context, addr, community string) (snmp.RawResult, error) {
		return snmp.RawResult{}, snmp.ErrConnectivity
	}

	m.pollPrinter(ctx, hpPrinter())
	m.pollPrinter(ctx, hpPrinter())

	// the alert service decides whether a new alert is warranted, so it has
	// to see a candidate for both failed cycles
	added := mocks.alerts.AddCalls()
	is.Equal(len(added), 2)
	is.Equal(added[0].Alert.AlertType, types.AlertTypeOffline)
	is.Equal(added[1].Alert.AlertType, types.AlertTypeOffline)
}

func TestFailureBelowThresholdRaisesNoAlert(t *testing.T) {
	is, ctx, m, mocks := pipelineSetup(t)

	mocks.primary.ReadFunc = func(ctx context.Context, addr, community string) (snmp.RawResult, error) {
		return snmp.RawResult{}, snmp.ErrConnectivity
	}
	mocks.registry.ReportPollFailureFunc = func(ctx context.Context, printerID string, polledAt time.Time) (bool, error) {
		return false, nil
	}

	m.pollPrinter(ctx, hpPrinter())

	is.Equal(len(mocks.alerts.AddCalls()), 0)
}

func TestLowLevelsRaiseAlertsAndWarningStatus(t *testing.T) {
	is, ctx, m, mocks := pipelineSetup(t)

	mocks.primary.ReadFunc = func(ctx context.Context, addr, community string) (snmp.RawResult, error) {
		return rawWith(func(r *snmp.RawResult) {
			r.Values[snmp.FieldBlackLevel] = snmp.RawValue{Present: true, IsInt: true, Int: 15, Text: "15"}
			r.Values[snmp.FieldCyanLevel] = snmp.RawValue{Present: true, IsInt: true, Int: 80, Text: "80"}
		}), nil
	}

	m.pollPrinter(ctx, hpPrinter())

	added := mocks.alerts.AddCalls()
	is.Equal(len(added), 1)
	is.Equal(added[0].Alert.AlertType, types.AlertTypeTonerLow)

	success := mocks.registry.ReportPollSuccessCalls()
	is.Equal(len(success), 1)
	is.Equal(success[0].Status, types.PrinterWarning)
}

func TestDeviceErrorReportsErrorStatus(t *testing.T) {
	is, ctx, m, mocks := pipelineSetup(t)

	mocks.primary.ReadFunc = func(ctx context.Context, addr, community string) (snmp.RawResult, error) {
		return rawWith(func(r *snmp.RawResult) {
			r.Values[snmp.FieldBlackLevel] = snmp.RawValue{Present: true, IsInt: true, Int: 80, Text: "80"}
			r.Values[snmp.FieldDeviceStatus] = snmp.RawValue{Present: true, Text: "error: paper jam"}
		}), nil
	}

	m.pollPrinter(ctx, hpPrinter())

	success := mocks.registry.ReportPollSuccessCalls()
	is.Equal(len(success), 1)
	is.Equal(success[0].Status, types.PrinterError)
}

func TestStartPollsFleetAndStops(t *testing.T) {
	is, ctx, m, mocks := pipelineSetup(t)

	polled := make(chan string, 8)

	mocks.registry.ListActiveFunc = func(ctx context.Context) ([]types.Printer, error) {
		return []types.Printer{hpPrinter()}, nil
	}
	mocks.registry.AddMetricSampleFunc = func(ctx context.Context, sample types.MetricSample) error {
		polled <- sample.PrinterID
		return nil
	}

	m.Start(ctx)
	defer m.Stop()

	select {
	case printerID := <-polled:
		is.Equal(printerID, "printer-01")
	case <-time.After(5 * time.Second):
		t.Fatal("no poll happened before timeout")
	}
}
