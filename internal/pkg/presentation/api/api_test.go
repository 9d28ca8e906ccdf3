package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/printwatch/printer-fleet-mgmt/internal/pkg/application/alerts"
	"github.com/printwatch/printer-fleet-mgmt/internal/pkg/application/printers"
	"github.com/printwatch/printer-fleet-mgmt/internal/pkg/infrastructure/router"
	"github.com/printwatch/printer-fleet-mgmt/pkg/types"

	"github.com/matryer/is"
)

const policyMock string = `
package printwatch.authz

default allow := false

allow := {"subject": "admin"} if {
	input.token == "goodtoken"
}
`

type connectionTesterFunc func(ctx context.Context, addr, community string) (string, error)

func (f connectionTesterFunc) TestConnection(ctx context.Context, addr, community string) (string, error) {
	return f(ctx, addr, community)
}

func testSetup(t *testing.T, svc printers.PrinterManagement, alertSvc alerts.AlertService, probe ConnectionTester) (*is.I, *httptest.Server) {
	is := is.New(t)

	if probe == nil {
		probe = connectionTesterFunc(func(ctx context.Context, addr, community string) (string, error) {
			return "HP OfficeJet Pro 9010", nil
		})
	}

	mux, err := RegisterHandlers(context.Background(), router.New("testing"), strings.NewReader(policyMock), svc, alertSvc, probe)
	is.NoErr(err)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return is, server
}

func doRequest(is *is.I, server *httptest.Server, method, path, token string, body []byte) *http.Response {
	req, err := http.NewRequest(method, server.URL+path, bytes.NewReader(body))
	is.NoErr(err)

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err)

	return resp
}

func TestHealthEndpointNeedsNoToken(t *testing.T) {
	is, server := testSetup(t, &printers.PrinterManagementMock{}, &alerts.AlertServiceMock{}, nil)

	resp := doRequest(is, server, http.MethodGet, "/health", "", nil)
	is.Equal(resp.StatusCode, http.StatusNoContent)
}

func TestMissingTokenIsUnauthorized(t *testing.T) {
	is, server := testSetup(t, &printers.PrinterManagementMock{}, &alerts.AlertServiceMock{}, nil)

	resp := doRequest(is, server, http.MethodGet, "/api/v0/printers", "", nil)
	is.Equal(resp.StatusCode, http.StatusUnauthorized)
}

func TestBadTokenIsUnauthorized(t *testing.T) {
	is, server := testSetup(t, &printers.PrinterManagementMock{}, &alerts.AlertServiceMock{}, nil)

	resp := doRequest(is, server, http.MethodGet, "/api/v0/printers", "badtoken", nil)
	is.Equal(resp.StatusCode, http.StatusUnauthorized)
}

func TestQueryPrinters(t *testing.T) {
	svc := &printers.PrinterManagementMock{
		QueryFunc: func(ctx context.Context, params map[string][]string) (types.Collection[types.Printer], error) {
			return types.Collection[types.Printer]{
				Data:       []types.Printer{{ID: "printer-01", Name: "Front Office", Status: types.PrinterOnline}},
				Count:      1,
				TotalCount: 1,
			}, nil
		},
	}

	is, server := testSetup(t, svc, &alerts.AlertServiceMock{}, nil)

	resp := doRequest(is, server, http.MethodGet, "/api/v0/printers", "goodtoken", nil)
	is.Equal(resp.StatusCode, http.StatusOK)

	b, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	response := struct {
		Data []types.Printer `json:"data"`
	}{}
	is.NoErr(json.Unmarshal(b, &response))
	is.Equal(len(response.Data), 1)
	is.Equal(response.Data[0].ID, "printer-01")
}

func TestGetPrinterNotFound(t *testing.T) {
	svc := &printers.PrinterManagementMock{
		GetByIDFunc: func(ctx context.Context, printerID string) (types.Printer, error) {
			return types.Printer{}, printers.ErrPrinterNotFound
		},
	}

	is, server := testSetup(t, svc, &alerts.AlertServiceMock{}, nil)

	resp := doRequest(is, server, http.MethodGet, "/api/v0/printers/nope", "goodtoken", nil)
	is.Equal(resp.StatusCode, http.StatusNotFound)
}

func TestCreatePrinter(t *testing.T) {
	svc := &printers.PrinterManagementMock{
		AddPrinterFunc: func(ctx context.Context, printer types.Printer) (types.Printer, error) {
			printer.ID = "printer-02"
			return printer, nil
		},
	}

	is, server := testSetup(t, svc, &alerts.AlertServiceMock{}, nil)

	resp := doRequest(is, server, http.MethodPost, "/api/v0/printers", "goodtoken",
		[]byte(`{"name":"Lab","ipAddress":"10.0.0.9"}`))
	is.Equal(resp.StatusCode, http.StatusCreated)
	is.Equal(len(svc.AddPrinterCalls()), 1)
	is.Equal(svc.AddPrinterCalls()[0].Printer.IPAddress, "10.0.0.9")
}

func TestCreateExistingPrinterConflicts(t *testing.T) {
	svc := &printers.PrinterManagementMock{
		AddPrinterFunc: func(ctx context.Context, printer types.Printer) (types.Printer, error) {
			return types.Printer{}, printers.ErrPrinterAlreadyExist
		},
	}

	is, server := testSetup(t, svc, &alerts.AlertServiceMock{}, nil)

	resp := doRequest(is, server, http.MethodPost, "/api/v0/printers", "goodtoken",
		[]byte(`{"id":"printer-01","ipAddress":"10.0.0.9"}`))
	is.Equal(resp.StatusCode, http.StatusConflict)
}

func TestPatchPrinter(t *testing.T) {
	svc := &printers.PrinterManagementMock{
		MergePrinterFunc: func(ctx context.Context, printerID string, fields map[string]any) error {
			return nil
		},
	}

	is, server := testSetup(t, svc, &alerts.AlertServiceMock{}, nil)

	resp := doRequest(is, server, http.MethodPatch, "/api/v0/printers/printer-01", "goodtoken",
		[]byte(`{"location":"2nd floor"}`))
	is.Equal(resp.StatusCode, http.StatusOK)

	calls := svc.MergePrinterCalls()
	is.Equal(len(calls), 1)
	is.Equal(calls[0].PrinterID, "printer-01")
	is.Equal(calls[0].Fields["location"], "2nd floor")
}

func TestDeletePrinter(t *testing.T) {
	svc := &printers.PrinterManagementMock{
		DeletePrinterFunc: func(ctx context.Context, printerID string) error {
			return nil
		},
	}

	is, server := testSetup(t, svc, &alerts.AlertServiceMock{}, nil)

	resp := doRequest(is, server, http.MethodDelete, "/api/v0/printers/printer-01", "goodtoken", nil)
	is.Equal(resp.StatusCode, http.StatusNoContent)
}

func TestAcknowledgeAlertUsesTokenSubject(t *testing.T) {
	alertSvc := &alerts.AlertServiceMock{
		AcknowledgeFunc: func(ctx context.Context, alertID, acknowledgedBy string) error {
			return nil
		},
	}

	is, server := testSetup(t, &printers.PrinterManagementMock{}, alertSvc, nil)

	resp := doRequest(is, server, http.MethodPatch, "/api/v0/alerts/alert-1", "goodtoken",
		[]byte(`{"acknowledged":true}`))
	is.Equal(resp.StatusCode, http.StatusNoContent)

	calls := alertSvc.AcknowledgeCalls()
	is.Equal(len(calls), 1)
	is.Equal(calls[0].AlertID, "alert-1")
	is.Equal(calls[0].AcknowledgedBy, "admin")
}

func TestAcknowledgeUnknownAlert(t *testing.T) {
	alertSvc := &alerts.AlertServiceMock{
		AcknowledgeFunc: func(ctx context.Context, alertID, acknowledgedBy string) error {
			return alerts.ErrAlertNotFound
		},
	}

	is, server := testSetup(t, &printers.PrinterManagementMock{}, alertSvc, nil)

	resp := doRequest(is, server, http.MethodPatch, "/api/v0/alerts/nope", "goodtoken",
		[]byte(`{"acknowledged":true}`))
	is.Equal(resp.StatusCode, http.StatusNotFound)
}

func TestConnectionTest(t *testing.T) {
	probe := connectionTesterFunc(func(ctx context.Context, addr, community string) (string, error) {
		return "HP LaserJet Pro M404", nil
	})

	is, server := testSetup(t, &printers.PrinterManagementMock{}, &alerts.AlertServiceMock{}, probe)

	resp := doRequest(is, server, http.MethodPost, "/api/v0/printers/test", "goodtoken",
		[]byte(`{"ipAddress":"192.168.1.50"}`))
	is.Equal(resp.StatusCode, http.StatusOK)

	b, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	result := struct {
		Reachable   bool   `json:"reachable"`
		Description string `json:"description"`
	}{}
	is.NoErr(json.Unmarshal(b, &result))
	is.True(result.Reachable)
	is.Equal(result.Description, "HP LaserJet Pro M404")
}
