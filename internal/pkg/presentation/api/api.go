package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"log/slog"

	"github.com/printwatch/printer-fleet-mgmt/internal/pkg/application/alerts"
	"github.com/printwatch/printer-fleet-mgmt/internal/pkg/application/printers"
	"github.com/printwatch/printer-fleet-mgmt/internal/pkg/presentation/api/auth"
	"github.com/printwatch/printer-fleet-mgmt/pkg/types"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("printer-fleet-mgmt/api")

// ConnectionTester probes a device and returns its self reported description.
type ConnectionTester interface {
	TestConnection(ctx context.Context, addr, community string) (string, error)
}

func RegisterHandlers(ctx context.Context, router *chi.Mux, policies io.Reader, svc printers.PrinterManagement, alertSvc alerts.AlertService, probe ConnectionTester) (*chi.Mux, error) {

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	log := logging.GetFromContext(ctx)

	authenticator, err := auth.NewAuthenticator(ctx, policies)
	if err != nil {
		return nil, fmt.Errorf("failed to create api authenticator: %w", err)
	}

	router.Route("/api/v0", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authenticator)

			r.Route("/printers", func(r chi.Router) {
				r.Get("/", queryPrintersHandler(log, svc))
				r.Post("/", createPrinterHandler(log, svc))
				r.Post("/test", testConnectionHandler(log, probe))
				r.Get("/{printerID}", getPrinterDetails(log, svc))
				r.Patch("/{printerID}", patchPrinterHandler(log, svc))
				r.Delete("/{printerID}", deletePrinterHandler(log, svc))
				r.Get("/{printerID}/metrics", getPrinterMetricsHandler(log, svc))
				r.Get("/{printerID}/alerts", getPrinterAlertsHandler(log, alertSvc))
			})

			r.Route("/alerts", func(r chi.Router) {
				r.Get("/", getAlertsHandler(log, alertSvc))
				r.Patch("/{alertID}", patchAlertHandler(log, alertSvc))
			})
		})
	})

	return router, nil
}

func queryPrintersHandler(log *slog.Logger, svc printers.PrinterManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "query-printers")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		collection, err := svc.Query(ctx, r.URL.Query())
		if err != nil {
			requestLogger.Error("unable to query printers", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(newApiResponse(collection, r.URL).Byte())
	}
}

func createPrinterHandler(log *slog.Logger, svc printers.PrinterManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "create-printer")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var p types.Printer
		err = json.Unmarshal(body, &p)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		added, err := svc.AddPrinter(ctx, p)
		if err != nil {
			if errors.Is(err, printers.ErrPrinterAlreadyExist) {
				requestLogger.Debug("printer already exists", "printer_id", p.ID)
				w.WriteHeader(http.StatusConflict)
				return
			}
			requestLogger.Error("unable to create printer", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		b, _ := json.Marshal(added)

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write(b)
	}
}

func getPrinterDetails(log *slog.Logger, svc printers.PrinterManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-printer")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		printerID := chi.URLParam(r, "printerID")
		if printerID != "" {
			requestLogger = requestLogger.With(slog.String("printer_id", printerID))
		}

		printer, err := svc.GetByID(ctx, printerID)
		if err != nil {
			if errors.Is(err, printers.ErrPrinterNotFound) {
				requestLogger.Debug("printer not found")
				w.WriteHeader(http.StatusNotFound)
				return
			}
			requestLogger.Error("could not fetch printer", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		b, err := json.Marshal(printer)
		if err != nil {
			requestLogger.Error("unable to marshal printer to json", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

func patchPrinterHandler(log *slog.Logger, svc printers.PrinterManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "patch-printer")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		printerID := chi.URLParam(r, "printerID")
		if printerID != "" {
			requestLogger = requestLogger.With(slog.String("printer_id", printerID))
		}

		b, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var fields map[string]any
		err = json.Unmarshal(b, &fields)
		if err != nil {
			requestLogger.Error("unable to unmarshal body into map", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		err = svc.MergePrinter(ctx, printerID, fields)
		if err != nil {
			if errors.Is(err, printers.ErrPrinterNotFound) {
				requestLogger.Debug("printer not found")
				w.WriteHeader(http.StatusNotFound)
				return
			}
			requestLogger.Error("unable to update printer", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

func deletePrinterHandler(log *slog.Logger, svc printers.PrinterManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "delete-printer")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		printerID := chi.URLParam(r, "printerID")
		if printerID != "" {
			requestLogger = requestLogger.With(slog.String("printer_id", printerID))
		}

		err = svc.DeletePrinter(ctx, printerID)
		if err != nil {
			if errors.Is(err, printers.ErrPrinterNotFound) {
				requestLogger.Debug("printer not found")
				w.WriteHeader(http.StatusNotFound)
				return
			}
			requestLogger.Error("unable to delete printer", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func getPrinterMetricsHandler(log *slog.Logger, svc printers.PrinterManagement) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-printer-metrics")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		printerID := chi.URLParam(r, "printerID")
		if printerID != "" {
			requestLogger = requestLogger.With(slog.String("printer_id", printerID))
		}

		collection, err := svc.QueryMetrics(ctx, printerID, r.URL.Query())
		if err != nil {
			requestLogger.Error("unable to query metrics", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(newApiResponse(collection, r.URL).Byte())
	}
}

func getPrinterAlertsHandler(log *slog.Logger, svc alerts.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-printer-alerts")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		printerID := chi.URLParam(r, "printerID")

		offset, limit := offsetLimit(r)

		collection, err := svc.QueryByPrinterID(ctx, printerID, offset, limit)
		if err != nil {
			requestLogger.Error("unable to query alerts", "printer_id", printerID, "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(newApiResponse(collection, r.URL).Byte())
	}
}

func getAlertsHandler(log *slog.Logger, svc alerts.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-alerts")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		offset, limit := offsetLimit(r)

		collection, err := svc.Query(ctx, offset, limit)
		if err != nil {
			requestLogger.Error("unable to query alerts", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(newApiResponse(collection, r.URL).Byte())
	}
}

// patchAlertHandler acknowledges an alert on behalf of the authenticated
// caller.
func patchAlertHandler(log *slog.Logger, svc alerts.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "patch-alert")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		alertID := chi.URLParam(r, "alertID")
		if alertID != "" {
			requestLogger = requestLogger.With(slog.String("alert_id", alertID))
		}

		var body struct {
			Acknowledged bool `json:"acknowledged"`
		}

		b, err := io.ReadAll(r.Body)
		if err != nil || json.Unmarshal(b, &body) != nil || !body.Acknowledged {
			requestLogger.Debug("invalid acknowledge request")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		acknowledgedBy := auth.GetSubjectFromContext(r.Context())
		if acknowledgedBy == "" {
			acknowledgedBy = "unknown"
		}

		err = svc.Acknowledge(ctx, alertID, acknowledgedBy)
		if err != nil {
			if errors.Is(err, alerts.ErrAlertNotFound) {
				requestLogger.Debug("alert not found")
				w.WriteHeader(http.StatusNotFound)
				return
			}
			requestLogger.Error("unable to acknowledge alert", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// testConnectionHandler probes a device without registering it.
func testConnectionHandler(log *slog.Logger, probe ConnectionTester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "test-connection")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		var body struct {
			IPAddress     string `json:"ipAddress"`
			SNMPCommunity string `json:"snmpCommunity,omitempty"`
		}

		b, err := io.ReadAll(r.Body)
		if err != nil || json.Unmarshal(b, &body) != nil || body.IPAddress == "" {
			requestLogger.Debug("invalid connection test request")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		response := struct {
			Reachable   bool   `json:"reachable"`
			Description string `json:"description,omitempty"`
		}{}

		description, err := probe.TestConnection(ctx, body.IPAddress, body.SNMPCommunity)
		if err != nil {
			requestLogger.Debug("connection test failed", "addr", body.IPAddress, "err", err.Error())
			err = nil
		} else {
			response.Reachable = true
			response.Description = description
		}

		rb, _ := json.Marshal(response)

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(rb)
	}
}

func offsetLimit(r *http.Request) (int, int) {
	atoi := func(key string, defaultValue int) int {
		v := r.URL.Query().Get(key)
		if v == "" {
			return defaultValue
		}
		n := 0
		_, err := fmt.Sscanf(v, "%d", &n)
		if err != nil || n < 0 {
			return defaultValue
		}
		return n
	}

	return atoi("offset", 0), atoi("limit", 100)
}
