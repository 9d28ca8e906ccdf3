package alerts

import (
	"strings"
	"testing"
	"time"

	"github.com/printwatch/printer-fleet-mgmt/pkg/types"

	"github.com/matryer/is"
)

func level(n int) *int {
	return &n
}

func testPrinter() types.Printer {
	return types.Printer{
		ID:   "printer-01",
		Name: "Front Office",
	}
}

func TestLowBlackInkRaisesHighSeverityAlert(t *testing.T) {
	is := is.New(t)

	candidates := EvaluateSample(testPrinter(), types.MetricSample{
		Timestamp:   time.Now(),
		BlackLevel:  level(15),
		PrinterType: types.PrinterTypeInkjet,
	})

	is.Equal(len(candidates), 1)
	is.Equal(candidates[0].AlertType, types.AlertTypeTonerLow)
	is.Equal(candidates[0].Severity, types.AlertSeverityHigh)
	is.True(strings.Contains(candidates[0].Message, "15"))
	is.True(strings.Contains(candidates[0].Message, "Black"))
}

func TestCriticalBelowTenPercent(t *testing.T) {
	is := is.New(t)

	candidates := EvaluateSample(testPrinter(), types.MetricSample{
		TonerLevel:  level(9),
		PrinterType: types.PrinterTypeLaser,
	})

	is.Equal(len(candidates), 1)
	is.Equal(candidates[0].Severity, types.AlertSeverityCritical)
}

func TestOneAlertPerLowColor(t *testing.T) {
	is := is.New(t)

	candidates := EvaluateSample(testPrinter(), types.MetricSample{
		CyanLevel:    level(5),
		MagentaLevel: level(12),
		YellowLevel:  level(80),
		BlackLevel:   level(50),
	})

	is.Equal(len(candidates), 2)
	is.True(strings.Contains(candidates[0].Message, "Cyan"))
	is.Equal(candidates[0].Severity, types.AlertSeverityCritical)
	is.True(strings.Contains(candidates[1].Message, "Magenta"))
	is.Equal(candidates[1].Severity, types.AlertSeverityHigh)
}

func TestUnknownLevelsRaiseNothing(t *testing.T) {
	is := is.New(t)

	candidates := EvaluateSample(testPrinter(), types.MetricSample{
		PrinterType: types.PrinterTypeUnknown,
	})

	is.Equal(len(candidates), 0)
}

func TestZeroIsNotUnknown(t *testing.T) {
	is := is.New(t)

	candidates := EvaluateSample(testPrinter(), types.MetricSample{
		BlackLevel: level(0),
	})

	is.Equal(len(candidates), 1)
	is.Equal(candidates[0].Severity, types.AlertSeverityCritical)
}

func TestEmptyPaperTray(t *testing.T) {
	is := is.New(t)

	candidates := EvaluateSample(testPrinter(), types.MetricSample{
		PaperTrayStatus: "Tray 1 EMPTY",
	})

	is.Equal(len(candidates), 1)
	is.Equal(candidates[0].AlertType, types.AlertTypePaperEmpty)
	is.Equal(candidates[0].Severity, types.AlertSeverityMedium)
}

func TestDeviceErrorStatus(t *testing.T) {
	is := is.New(t)

	candidates := EvaluateSample(testPrinter(), types.MetricSample{
		DeviceStatus: "Error: paper jam",
	})

	is.Equal(len(candidates), 1)
	is.Equal(candidates[0].AlertType, types.AlertTypeError)
	is.Equal(candidates[0].Severity, types.AlertSeverityHigh)
	is.True(strings.Contains(candidates[0].Message, "Error: paper jam"))
}

func TestPollFailure(t *testing.T) {
	is := is.New(t)

	alert := EvaluatePollFailure(testPrinter())

	is.Equal(alert.AlertType, types.AlertTypeOffline)
	is.Equal(alert.Severity, types.AlertSeverityCritical)
	is.Equal(alert.PrinterName, "Front Office")
}
