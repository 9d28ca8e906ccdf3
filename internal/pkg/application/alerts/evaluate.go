package alerts

import (
	"fmt"
	"strings"

	"github.com/printwatch/printer-fleet-mgmt/pkg/types"
)

const (
	// LowLevelThreshold is the percentage below which a consumable raises a
	// high severity alert.
	LowLevelThreshold = 20
	// CriticalLevelThreshold is the percentage below which the alert is
	// escalated to critical.
	CriticalLevelThreshold = 10
)

func severityForLevel(level int) types.AlertSeverity {
	if level < CriticalLevelThreshold {
		return types.AlertSeverityCritical
	}
	return types.AlertSeverityHigh
}

// EvaluateSample applies the threshold rules to one canonical sample and
// returns the candidate alerts. Pure and stateless: dedup happens later.
func EvaluateSample(printer types.Printer, sample types.MetricSample) []types.Alert {
	candidates := make([]types.Alert, 0)

	add := func(alertType string, severity types.AlertSeverity, message string) {
		candidates = append(candidates, types.Alert{
			PrinterID:   printer.ID,
			PrinterName: printer.Name,
			AlertType:   alertType,
			Severity:    severity,
			Message:     message,
		})
	}

	if sample.TonerLevel != nil && *sample.TonerLevel < LowLevelThreshold {
		add(types.AlertTypeTonerLow, severityForLevel(*sample.TonerLevel),
			fmt.Sprintf("Toner level is %d%%", *sample.TonerLevel))
	}

	inks := []struct {
		color string
		level *int
	}{
		{"Black", sample.BlackLevel},
		{"Cyan", sample.CyanLevel},
		{"Magenta", sample.MagentaLevel},
		{"Yellow", sample.YellowLevel},
	}

	for _, ink := range inks {
		if ink.level != nil && *ink.level < LowLevelThreshold {
			add(types.AlertTypeTonerLow, severityForLevel(*ink.level),
				fmt.Sprintf("%s ink level is %d%%", ink.color, *ink.level))
		}
	}

	if strings.Contains(strings.ToLower(sample.PaperTrayStatus), "empty") {
		add(types.AlertTypePaperEmpty, types.AlertSeverityMedium, "Paper tray is empty")
	}

	if strings.Contains(strings.ToLower(sample.DeviceStatus), "error") {
		add(types.AlertTypeError, types.AlertSeverityHigh,
			fmt.Sprintf("Device error: %s", sample.DeviceStatus))
	}

	return candidates
}

// EvaluatePollFailure produces the candidate raised when both acquisition
// paths are exhausted. Independent of any metric content.
func EvaluatePollFailure(printer types.Printer) types.Alert {
	return types.Alert{
		PrinterID:   printer.ID,
		PrinterName: printer.Name,
		AlertType:   types.AlertTypeOffline,
		Severity:    types.AlertSeverityCritical,
		Message:     "Printer is offline",
	}
}
