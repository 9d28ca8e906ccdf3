package alerts

import (
	"encoding/json"
	"time"

	"github.com/printwatch/printer-fleet-mgmt/pkg/types"
)

type AlertCreated struct {
	Alert     types.Alert `json:"alert"`
	Timestamp time.Time   `json:"timestamp"`
}

func (a *AlertCreated) ContentType() string {
	return "application/json"
}
func (a *AlertCreated) TopicName() string {
	return "alerts.alertCreated"
}
func (a *AlertCreated) Body() []byte {
	b, _ := json.Marshal(a)
	return b
}

type AlertAcknowledged struct {
	ID             string    `json:"id"`
	AcknowledgedBy string    `json:"acknowledgedBy"`
	Timestamp      time.Time `json:"timestamp"`
}

func (a *AlertAcknowledged) ContentType() string {
	return "application/json"
}
func (a *AlertAcknowledged) TopicName() string {
	return "alerts.alertAcknowledged"
}
func (a *AlertAcknowledged) Body() []byte {
	b, _ := json.Marshal(a)
	return b
}
