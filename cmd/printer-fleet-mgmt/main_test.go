package main

import (
	"io"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestParseExternalConfigFile(t *testing.T) {
	is := is.New(t)

	cfg, err := parseExternalConfigFile(io.NopCloser(strings.NewReader(configYaml)))
	is.NoErr(err)

	is.Equal(cfg.Monitor.IntervalSeconds, 60)
	is.Equal(cfg.Monitor.Workers, 5)
	is.Equal(cfg.Alerts.DedupWindowSeconds, 3600)
	is.Equal(cfg.Alerts.RetentionDays, 30)
	is.Equal(cfg.Printers.FailureThreshold, 2)
}

func TestParseEmptyConfigFile(t *testing.T) {
	is := is.New(t)

	cfg, err := parseExternalConfigFile(io.NopCloser(strings.NewReader("")))
	is.NoErr(err)
	is.Equal(cfg.Monitor.Workers, 0)
}

const configYaml string = `
monitor:
  intervalseconds: 60
  cleanupintervalhours: 24
  workers: 5
alerts:
  dedupwindowseconds: 3600
  retentiondays: 30
printers:
  failurethreshold: 2
`
