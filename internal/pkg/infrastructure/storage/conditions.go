package storage

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
)

type ConditionFunc func(*Condition) *Condition

type Condition struct {
	PrinterID string
	AlertID   string
	AlertType string

	Active       *bool
	Acknowledged *bool
	Status       string

	CreatedAfter       time.Time
	AcknowledgedBefore time.Time

	Since time.Time
	Until time.Time

	Search string

	IncludeDeleted bool

	sortBy    string
	sortOrder string

	offset *int
	limit  *int
}

func (c Condition) SortBy() string {
	return c.sortBy
}

func (c Condition) SortOrder() string {
	if c.sortOrder == "" {
		return "ASC"
	}
	return c.sortOrder
}

func (c Condition) Offset() int {
	if c.offset == nil {
		return 0
	}
	return *c.offset
}

func (c Condition) Limit() int {
	if c.limit == nil {
		return 0
	}
	return *c.limit
}

func (c Condition) OffsetLimit() string {
	offsetLimit := ""

	if c.offset != nil {
		offsetLimit += fmt.Sprintf("OFFSET %d ", *c.offset)
	}
	if c.limit != nil {
		offsetLimit += fmt.Sprintf("LIMIT %d ", *c.limit)
	}

	return offsetLimit
}

func (c Condition) NamedArgs() pgx.NamedArgs {
	args := pgx.NamedArgs{}

	if c.PrinterID != "" {
		args["printer_id"] = c.PrinterID
	}
	if c.AlertID != "" {
		args["alert_id"] = c.AlertID
	}
	if c.AlertType != "" {
		args["alert_type"] = c.AlertType
	}
	if c.Active != nil {
		args["active"] = *c.Active
	}
	if c.Acknowledged != nil {
		args["acknowledged"] = *c.Acknowledged
	}
	if c.Status != "" {
		args["status"] = c.Status
	}
	if !c.CreatedAfter.IsZero() {
		args["created_after"] = c.CreatedAfter.UTC()
	}
	if !c.AcknowledgedBefore.IsZero() {
		args["acknowledged_before"] = c.AcknowledgedBefore.UTC()
	}
	if !c.Since.IsZero() {
		args["since"] = c.Since.UTC()
	}
	if !c.Until.IsZero() {
		args["until"] = c.Until.UTC()
	}
	if c.Search != "" {
		args["search"] = "%" + c.Search + "%"
	}

	return args
}

var re = regexp.MustCompile(`[^a-zA-ZåäöÅÄÖ0-9 _,;().:-]+|[%]`)

func WithPrinterID(printerID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.PrinterID = printerID
		return c
	}
}

func WithAlertID(alertID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.AlertID = alertID
		return c
	}
}

func WithAlertType(alertType string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.AlertType = alertType
		return c
	}
}

func WithActive(active bool) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Active = &active
		return c
	}
}

func WithAcknowledged(acknowledged bool) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Acknowledged = &acknowledged
		return c
	}
}

func WithStatus(status string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Status = status
		return c
	}
}

func WithCreatedAfter(t time.Time) ConditionFunc {
	return func(c *Condition) *Condition {
		c.CreatedAfter = t
		return c
	}
}

func WithAcknowledgedBefore(t time.Time) ConditionFunc {
	return func(c *Condition) *Condition {
		c.AcknowledgedBefore = t
		return c
	}
}

func WithTimeInterval(since, until time.Time) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Since = since
		c.Until = until
		return c
	}
}

func WithSearch(s string) ConditionFunc {
	return func(c *Condition) *Condition {
		s = re.ReplaceAllString(s, "")
		c.Search = strings.TrimSpace(s)
		return c
	}
}

func WithDeleted() ConditionFunc {
	return func(c *Condition) *Condition {
		c.IncludeDeleted = true
		return c
	}
}

func WithSortBy(sortBy string) ConditionFunc {
	return func(c *Condition) *Condition {
		switch strings.ToLower(sortBy) {
		case "printer_id":
			c.sortBy = "printer_id"
		case "name":
			c.sortBy = "name"
		case "status":
			c.sortBy = "status"
		case "last_polled":
			c.sortBy = "last_polled"
		case "created_on":
			c.sortBy = "created_on"
		case "severity":
			c.sortBy = "severity"
		}
		return c
	}
}

func WithSortDesc(desc bool) ConditionFunc {
	return func(c *Condition) *Condition {
		if desc {
			c.sortOrder = "DESC"
		} else {
			c.sortOrder = "ASC"
		}
		return c
	}
}

func WithOffset(offset int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.offset = &offset
		return c
	}
}

func WithLimit(limit int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.limit = &limit
		return c
	}
}
