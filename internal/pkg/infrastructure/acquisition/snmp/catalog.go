package snmp

// Field names a canonical metric in the printer catalog.
type Field int

const (
	FieldCyanLevel Field = iota
	FieldMagentaLevel
	FieldYellowLevel
	FieldBlackLevel
	FieldTonerLevel
	FieldPaperTrayStatus
	FieldPageCount
	FieldDeviceStatus
	FieldDeviceDescription

	FieldCyanCapacity
	FieldMagentaCapacity
	FieldYellowCapacity
	FieldBlackCapacity
	FieldTonerCapacity

	numFields
)

func (f Field) String() string {
	names := [...]string{
		"cyanLevel", "magentaLevel", "yellowLevel", "blackLevel", "tonerLevel",
		"paperTrayStatus", "pageCount", "deviceStatus", "deviceDescription",
		"cyanCapacity", "magentaCapacity", "yellowCapacity", "blackCapacity", "tonerCapacity",
	}
	if int(f) < len(names) {
		return names[f]
	}
	return "unknown"
}

// catalogEntry binds a canonical field to its Printer-MIB / Host-Resources-MIB
// address. The catalog order defines the varbind order of the batched get.
type catalogEntry struct {
	field Field
	oid   string
}

var catalog = []catalogEntry{
	{FieldCyanLevel, ".1.3.6.1.2.1.43.11.1.1.6.1.1"},
	{FieldMagentaLevel, ".1.3.6.1.2.1.43.11.1.1.6.1.2"},
	{FieldYellowLevel, ".1.3.6.1.2.1.43.11.1.1.6.1.3"},
	{FieldBlackLevel, ".1.3.6.1.2.1.43.11.1.1.6.1.4"},
	{FieldTonerLevel, ".1.3.6.1.2.1.43.11.1.1.9.1.1"},
	{FieldPaperTrayStatus, ".1.3.6.1.2.1.43.8.2.1.10.1.1"},
	{FieldPageCount, ".1.3.6.1.2.1.43.10.2.1.4.1.1"},
	{FieldDeviceStatus, ".1.3.6.1.2.1.25.3.2.1.5.1"},
	{FieldDeviceDescription, ".1.3.6.1.2.1.1.1.0"},

	// prtMarkerSuppliesMaxCapacity, so absolute supply levels can be turned
	// into percentages when a device does not report percent directly.
	{FieldCyanCapacity, ".1.3.6.1.2.1.43.11.1.1.8.1.1"},
	{FieldMagentaCapacity, ".1.3.6.1.2.1.43.11.1.1.8.1.2"},
	{FieldYellowCapacity, ".1.3.6.1.2.1.43.11.1.1.8.1.3"},
	{FieldBlackCapacity, ".1.3.6.1.2.1.43.11.1.1.8.1.4"},
	{FieldTonerCapacity, ".1.3.6.1.2.1.43.11.1.1.8.1.5"},
}

// oidDeviceDescription is read on its own by TestConnection.
const oidDeviceDescription = ".1.3.6.1.2.1.1.1.0"

func catalogOIDs() []string {
	oids := make([]string, 0, len(catalog))
	for _, e := range catalog {
		oids = append(oids, e.oid)
	}
	return oids
}
