package monitor

import (
	"math"
	"strconv"
	"strings"

	"github.com/printwatch/printer-fleet-mgmt/internal/pkg/infrastructure/acquisition/snmp"
	"github.com/printwatch/printer-fleet-mgmt/pkg/types"
)

// normalize turns one raw catalog read into the canonical sample shape.
// PrinterID and Timestamp are left for the caller to fill in.
func normalize(raw snmp.RawResult, model string) types.MetricSample {
	sample := types.MetricSample{
		CyanLevel:    parseLevel(raw.Get(snmp.FieldCyanLevel), raw.Get(snmp.FieldCyanCapacity)),
		MagentaLevel: parseLevel(raw.Get(snmp.FieldMagentaLevel), raw.Get(snmp.FieldMagentaCapacity)),
		YellowLevel:  parseLevel(raw.Get(snmp.FieldYellowLevel), raw.Get(snmp.FieldYellowCapacity)),
		BlackLevel:   parseLevel(raw.Get(snmp.FieldBlackLevel), raw.Get(snmp.FieldBlackCapacity)),
		TonerLevel:   parseLevel(raw.Get(snmp.FieldTonerLevel), raw.Get(snmp.FieldTonerCapacity)),

		PaperTrayStatus: raw.Get(snmp.FieldPaperTrayStatus).Text,
		PageCount:       parsePageCount(raw.Get(snmp.FieldPageCount)),
		DeviceStatus:    raw.Get(snmp.FieldDeviceStatus).Text,
	}

	sample.PrinterType = classify(model, raw.Get(snmp.FieldDeviceDescription).Text, sample)

	return sample
}

// parseLevel maps one supply varbind to a percentage. Absent values stay
// nil, since the device reported nothing usable. Textual "unknown",
// "not installed" and "empty" all describe a supply with nothing left in it
// and count as zero. Devices that report absolute units are scaled against
// the reported capacity.
func parseLevel(value, capacity snmp.RawValue) *int {
	if !value.Present {
		return nil
	}

	if !value.IsInt {
		return parseLevelText(value.Text)
	}

	n := value.Int

	// supply table sentinels: -1 other, -2 unknown, -3 "some remaining"
	if n < 0 {
		return nil
	}

	if capacity.Present && capacity.IsInt && capacity.Int > 0 {
		n = int64(math.Round(float64(n) / float64(capacity.Int) * 100))
	}

	return clamp(int(n))
}

func parseLevelText(s string) *int {
	lowered := strings.ToLower(strings.TrimSpace(s))

	if lowered == "" {
		return nil
	}

	if strings.Contains(lowered, "unknown") || strings.Contains(lowered, "not installed") || strings.Contains(lowered, "empty") {
		zero := 0
		return &zero
	}

	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, lowered)

	if digits == "" {
		return nil
	}

	n, err := strconv.Atoi(digits)
	if err != nil {
		return nil
	}

	return clamp(n)
}

func clamp(n int) *int {
	if n < 0 {
		n = 0
	}
	if n > 100 {
		n = 100
	}
	return &n
}

func parsePageCount(v snmp.RawValue) int {
	if !v.Present {
		return 0
	}

	if v.IsInt {
		if v.Int < 0 {
			return 0
		}
		return int(v.Int)
	}

	n, err := strconv.Atoi(strings.TrimSpace(v.Text))
	if err != nil || n < 0 {
		return 0
	}

	return n
}

// classify guesses the printer technology from the model string, the device
// description, and which supplies the device reported.
func classify(model, description string, sample types.MetricSample) types.PrinterType {
	hint := strings.ToLower(model + " " + description)

	if strings.Contains(hint, "laser") {
		return types.PrinterTypeLaser
	}
	if strings.Contains(hint, "ink") || strings.Contains(hint, "deskjet") || strings.Contains(hint, "officejet") {
		return types.PrinterTypeInkjet
	}

	hasColor := sample.CyanLevel != nil || sample.MagentaLevel != nil || sample.YellowLevel != nil

	if sample.TonerLevel != nil && !hasColor {
		return types.PrinterTypeLaser
	}
	if hasColor {
		return types.PrinterTypeInkjet
	}

	return types.PrinterTypeUnknown
}
