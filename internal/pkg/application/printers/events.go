package printers

import (
	"encoding/json"
	"time"

	"github.com/printwatch/printer-fleet-mgmt/pkg/types"
)

type PrinterStatusChanged struct {
	PrinterID      string              `json:"printerID"`
	PreviousStatus types.PrinterStatus `json:"previousStatus"`
	NewStatus      types.PrinterStatus `json:"newStatus"`
	Timestamp      time.Time           `json:"timestamp"`
}

func (p *PrinterStatusChanged) ContentType() string {
	return "application/json"
}
func (p *PrinterStatusChanged) TopicName() string {
	return "printers.statusChanged"
}
func (p *PrinterStatusChanged) Body() []byte {
	b, _ := json.Marshal(p)
	return b
}
