package monitor

import (
	"testing"

	"github.com/printwatch/printer-fleet-mgmt/internal/pkg/infrastructure/acquisition/snmp"
	"github.com/printwatch/printer-fleet-mgmt/pkg/types"

	"github.com/matryer/is"
)

func intValue(n int64) snmp.RawValue {
	return snmp.RawValue{Present: true, IsInt: true, Int: n}
}

func textValue(s string) snmp.RawValue {
	return snmp.RawValue{Present: true, Text: s}
}

func TestParseLevelPercentPassthrough(t *testing.T) {
	is := is.New(t)

	level := parseLevel(intValue(42), snmp.RawValue{})
	is.True(level != nil)
	is.Equal(*level, 42)
}

func TestParseLevelScalesAgainstCapacity(t *testing.T) {
	is := is.New(t)

	// 300 of 600 units remaining
	level := parseLevel(intValue(300), intValue(600))
	is.True(level != nil)
	is.Equal(*level, 50)
}

func TestParseLevelSupplySentinelsAreUnknown(t *testing.T) {
	is := is.New(t)

	is.True(parseLevel(intValue(-2), snmp.RawValue{}) == nil)
	is.True(parseLevel(intValue(-3), intValue(600)) == nil)
}

func TestParseLevelAbsentIsUnknown(t *testing.T) {
	is := is.New(t)

	is.True(parseLevel(snmp.RawValue{}, snmp.RawValue{}) == nil)
}

func TestParseLevelTextTokens(t *testing.T) {
	is := is.New(t)

	// a spent or missing cartridge is a known zero, not an unknown level
	for _, token := range []string{"Unknown", "Not Installed", "Empty"} {
		level := parseLevel(textValue(token), snmp.RawValue{})
		is.True(level != nil)
		is.Equal(*level, 0)
	}

	is.True(parseLevel(textValue(""), snmp.RawValue{}) == nil)

	pct := parseLevel(textValue("87%"), snmp.RawValue{})
	is.True(pct != nil)
	is.Equal(*pct, 87)
}

func TestUnknownTokenRaisesCriticalLowLevel(t *testing.T) {
	is := is.New(t)

	raw := snmp.RawResult{}
	raw.Values[snmp.FieldBlackLevel] = textValue("unknown")

	sample := normalize(raw, "")
	is.True(sample.BlackLevel != nil)
	is.Equal(*sample.BlackLevel, 0)
}

func TestParseLevelClampsToPercentRange(t *testing.T) {
	is := is.New(t)

	level := parseLevel(intValue(250), snmp.RawValue{})
	is.True(level != nil)
	is.Equal(*level, 100)
}

func TestParsePageCountGarbageIsZero(t *testing.T) {
	is := is.New(t)

	is.Equal(parsePageCount(textValue("n/a")), 0)
	is.Equal(parsePageCount(intValue(-5)), 0)
	is.Equal(parsePageCount(snmp.RawValue{}), 0)
	is.Equal(parsePageCount(intValue(12345)), 12345)
}

func TestClassifyFromModelHint(t *testing.T) {
	is := is.New(t)

	is.Equal(classify("HP LaserJet Pro M404", "", types.MetricSample{}), types.PrinterTypeLaser)
	is.Equal(classify("HP OfficeJet 9010", "", types.MetricSample{}), types.PrinterTypeInkjet)
}

func TestClassifyFromReportedSupplies(t *testing.T) {
	is := is.New(t)

	toner := 80
	is.Equal(classify("", "", types.MetricSample{TonerLevel: &toner}), types.PrinterTypeLaser)

	cyan := 70
	is.Equal(classify("", "", types.MetricSample{CyanLevel: &cyan}), types.PrinterTypeInkjet)

	is.Equal(classify("", "", types.MetricSample{}), types.PrinterTypeUnknown)
}

func TestNormalizeFullRead(t *testing.T) {
	is := is.New(t)

	raw := snmp.RawResult{}
	raw.Values[snmp.FieldCyanLevel] = intValue(80)
	raw.Values[snmp.FieldMagentaLevel] = intValue(75)
	raw.Values[snmp.FieldYellowLevel] = intValue(90)
	raw.Values[snmp.FieldBlackLevel] = intValue(300)
	raw.Values[snmp.FieldBlackCapacity] = intValue(600)
	raw.Values[snmp.FieldPaperTrayStatus] = textValue("OK")
	raw.Values[snmp.FieldPageCount] = intValue(12345)
	raw.Values[snmp.FieldDeviceStatus] = textValue("running(2)")
	raw.Values[snmp.FieldDeviceDescription] = textValue("HP OfficeJet Pro 9010")

	sample := normalize(raw, "HP OfficeJet Pro 9010")

	is.Equal(*sample.CyanLevel, 80)
	is.Equal(*sample.BlackLevel, 50)
	is.True(sample.TonerLevel == nil)
	is.Equal(sample.PaperTrayStatus, "OK")
	is.Equal(sample.PageCount, 12345)
	is.Equal(sample.PrinterType, types.PrinterTypeInkjet)
}
