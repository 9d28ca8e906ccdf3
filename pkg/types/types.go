package types

import (
	"time"
)

type PrinterStatus string

const (
	PrinterOnline  PrinterStatus = "online"
	PrinterOffline PrinterStatus = "offline"
	PrinterWarning PrinterStatus = "warning"
	PrinterError   PrinterStatus = "error"
)

type Printer struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IPAddress string `json:"ipAddress"`
	Model     string `json:"model,omitempty"`
	Location  string `json:"location,omitempty"`

	// SNMPCommunity is the per-device read community. Empty means "public".
	SNMPCommunity string `json:"snmpCommunity,omitempty"`

	Active     bool          `json:"active"`
	Status     PrinterStatus `json:"status"`
	LastPolled time.Time     `json:"lastPolled,omitzero"`

	CreatedAt  time.Time `json:"createdAt,omitzero"`
	ModifiedAt time.Time `json:"modifiedAt,omitzero"`
}

type PrinterType string

const (
	PrinterTypeInkjet  PrinterType = "inkjet"
	PrinterTypeLaser   PrinterType = "laser"
	PrinterTypeUnknown PrinterType = "unknown"
)

// MetricSample is the canonical, protocol independent representation of one
// successful poll. Level fields are nil when the device did not report a
// usable value, which is distinct from a reported zero.
type MetricSample struct {
	PrinterID string    `json:"printerID"`
	Timestamp time.Time `json:"timestamp"`

	CyanLevel    *int `json:"cyanLevel"`
	MagentaLevel *int `json:"magentaLevel"`
	YellowLevel  *int `json:"yellowLevel"`
	BlackLevel   *int `json:"blackLevel"`
	TonerLevel   *int `json:"tonerLevel"`

	PaperTrayStatus string `json:"paperTrayStatus,omitempty"`
	PageCount       int    `json:"pageCount"`
	DeviceStatus    string `json:"deviceStatus,omitempty"`

	PrinterType PrinterType `json:"printerType"`
}

const (
	AlertTypeTonerLow   string = "toner_low"
	AlertTypePaperEmpty string = "paper_empty"
	AlertTypeError      string = "error"
	AlertTypeOffline    string = "offline"
)

type AlertSeverity string

const (
	AlertSeverityCritical AlertSeverity = "critical"
	AlertSeverityHigh     AlertSeverity = "high"
	AlertSeverityMedium   AlertSeverity = "medium"
	AlertSeverityLow      AlertSeverity = "low"
)

type Alert struct {
	ID        string `json:"id"`
	PrinterID string `json:"printerID"`

	// PrinterName is denormalized so the alert stays presentable even if the
	// printer is renamed or removed.
	PrinterName string `json:"printerName"`

	AlertType string        `json:"alertType"`
	Severity  AlertSeverity `json:"severity"`
	Message   string        `json:"message,omitempty"`

	CreatedAt time.Time `json:"createdAt"`

	Acknowledged   bool       `json:"acknowledged"`
	AcknowledgedBy string     `json:"acknowledgedBy,omitempty"`
	AcknowledgedAt *time.Time `json:"acknowledgedAt,omitempty"`
}

type Collection[T any] struct {
	Data       []T
	Count      uint64
	Offset     uint64
	Limit      uint64
	TotalCount uint64
}
