package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/printwatch/printer-fleet-mgmt/pkg/types"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("printer-fleet-client")

// PrinterFleetClient is a typed client for the fleet management api, for use
// by other services that need to resolve printers or close out alerts.
type PrinterFleetClient interface {
	QueryPrinters(ctx context.Context) ([]types.Printer, error)
	GetPrinter(ctx context.Context, printerID string) (types.Printer, error)
	AcknowledgeAlert(ctx context.Context, alertID string) error
}

type fleetClient struct {
	url   string
	token string

	httpClient http.Client
}

func NewPrinterFleetClient(fleetMgmtURL, accessToken string) PrinterFleetClient {
	return &fleetClient{
		url:   fleetMgmtURL,
		token: accessToken,
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

type apiResponse struct {
	Data json.RawMessage `json:"data"`
}

func (c *fleetClient) QueryPrinters(ctx context.Context) ([]types.Printer, error) {
	var err error
	ctx, span := tracer.Start(ctx, "query-printers")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	body, err := c.do(ctx, http.MethodGet, "/api/v0/printers", nil)
	if err != nil {
		return nil, err
	}

	response := apiResponse{}
	err = json.Unmarshal(body, &response)
	if err != nil {
		err = fmt.Errorf("failed to unmarshal response body: %w", err)
		return nil, err
	}

	printers := []types.Printer{}
	err = json.Unmarshal(response.Data, &printers)
	if err != nil {
		err = fmt.Errorf("failed to unmarshal printer list: %w", err)
		return nil, err
	}

	return printers, nil
}

func (c *fleetClient) GetPrinter(ctx context.Context, printerID string) (types.Printer, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-printer")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	body, err := c.do(ctx, http.MethodGet, "/api/v0/printers/"+printerID, nil)
	if err != nil {
		return types.Printer{}, err
	}

	printer := types.Printer{}
	err = json.Unmarshal(body, &printer)
	if err != nil {
		err = fmt.Errorf("failed to unmarshal printer: %w", err)
		return types.Printer{}, err
	}

	return printer, nil
}

func (c *fleetClient) AcknowledgeAlert(ctx context.Context, alertID string) error {
	var err error
	ctx, span := tracer.Start(ctx, "acknowledge-alert")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	_, err = c.do(ctx, http.MethodPatch, "/api/v0/alerts/"+alertID, []byte(`{"acknowledged":true}`))
	return err
}

func (c *fleetClient) do(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.url+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create http request: %w", err)
	}

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if len(body) > 0 {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("not found")
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("request failed with status code %d", resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return respBody, nil
}
