package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/printwatch/printer-fleet-mgmt/internal/pkg/application/alerts"
	"github.com/printwatch/printer-fleet-mgmt/internal/pkg/application/monitor"
	"github.com/printwatch/printer-fleet-mgmt/internal/pkg/application/printers"
	"github.com/printwatch/printer-fleet-mgmt/internal/pkg/application/webevents"
	"github.com/printwatch/printer-fleet-mgmt/internal/pkg/infrastructure/acquisition/hpweb"
	"github.com/printwatch/printer-fleet-mgmt/internal/pkg/infrastructure/acquisition/snmp"
	"github.com/printwatch/printer-fleet-mgmt/internal/pkg/infrastructure/router"
	"github.com/printwatch/printer-fleet-mgmt/internal/pkg/infrastructure/storage"
	"github.com/printwatch/printer-fleet-mgmt/internal/pkg/presentation/api"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"gopkg.in/yaml.v2"
)

const serviceName string = "printer-fleet-mgmt"

type flagType int
type flagMap map[flagType]string

const (
	listenAddress flagType = iota
	servicePort

	policiesFile
	configurationFile

	dbHost
	dbUser
	dbPassword
	dbPort
	dbName
	dbSSLMode
)

type appConfig struct {
	Monitor  monitor.Config  `yaml:"monitor"`
	Alerts   alerts.Config   `yaml:"alerts"`
	Printers printers.Config `yaml:"printers"`
}

func defaultFlags() flagMap {
	return flagMap{
		listenAddress: "0.0.0.0",
		servicePort:   "8080",

		policiesFile:      "/opt/printwatch/config/authz.rego",
		configurationFile: "/opt/printwatch/config/config.yaml",

		dbHost:     "",
		dbUser:     "",
		dbPassword: "",
		dbPort:     "5432",
		dbName:     "printwatch",
		dbSSLMode:  "disable",
	}
}

func main() {
	ctx, flags := parseExternalConfig(context.Background(), defaultFlags())

	serviceVersion := buildinfo.SourceVersion()
	ctx, logger, cleanup := o11y.Init(ctx, serviceName, serviceVersion, "json")
	defer cleanup()

	cfgFile, err := os.Open(flags[configurationFile])
	exitIf(err, logger, "could not open configuration file")

	cfg, err := parseExternalConfigFile(cfgFile)
	exitIf(err, logger, "could not parse configuration file")

	policies, err := os.Open(flags[policiesFile])
	exitIf(err, logger, "unable to open opa policy file")
	defer policies.Close()

	s, err := storage.New(ctx, storage.NewConfig(
		flags[dbHost], flags[dbUser], flags[dbPassword], flags[dbPort], flags[dbName], flags[dbSSLMode],
	))
	exitIf(err, logger, "could not connect to database")
	defer s.Close()

	err = s.Initialize(ctx)
	exitIf(err, logger, "could not initialize database")

	messenger, err := messaging.Initialize(ctx, messaging.LoadConfiguration(ctx, serviceName, logger))
	exitIf(err, logger, "failed to init messenger")
	defer messenger.Close()

	messenger.Start()

	we, err := webevents.New(messenger)
	exitIf(err, logger, "failed to init web events")
	defer we.Shutdown()

	printerSvc := printers.New(s, messenger, &cfg.Printers)
	alertSvc := alerts.New(s, messenger, &cfg.Alerts)

	snmpReader := snmp.NewReader()

	mon := monitor.New(printerSvc, alertSvc, snmpReader, hpweb.NewClient(), &cfg.Monitor)
	mon.Start(ctx)
	defer mon.Stop()

	mux, err := api.RegisterHandlers(ctx, router.New(serviceName), policies, printerSvc, alertSvc, snmpReader)
	exitIf(err, logger, "failed to register handlers")

	mux.Mount("/events", we.Server())

	server := &http.Server{
		Addr:    flags[listenAddress] + ":" + flags[servicePort],
		Handler: mux,
	}

	go func() {
		logger.Info("starting http server", "addr", server.Addr)

		serr := server.ListenAndServe()
		if serr != nil && serr != http.ErrServerClosed {
			exitIf(serr, logger, "failed to start http server")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logger.Error("failed to shutdown http server", "err", err.Error())
	}
}

func parseExternalConfigFile(cfgFile io.ReadCloser) (*appConfig, error) {
	defer cfgFile.Close()

	b, err := io.ReadAll(cfgFile)
	if err != nil {
		return nil, err
	}

	cfg := &appConfig{}
	err = yaml.Unmarshal(b, cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func parseExternalConfig(ctx context.Context, flags flagMap) (context.Context, flagMap) {
	// Allow environment variables to override certain defaults
	envOrDef := env.GetVariableOrDefault

	flags[listenAddress] = envOrDef(ctx, "LISTEN_ADDRESS", flags[listenAddress])
	flags[servicePort] = envOrDef(ctx, "SERVICE_PORT", flags[servicePort])

	flags[policiesFile] = envOrDef(ctx, "POLICIES_FILE", flags[policiesFile])

	flags[dbHost] = envOrDef(ctx, "POSTGRES_HOST", flags[dbHost])
	flags[dbPort] = envOrDef(ctx, "POSTGRES_PORT", flags[dbPort])
	flags[dbName] = envOrDef(ctx, "POSTGRES_DBNAME", flags[dbName])
	flags[dbUser] = envOrDef(ctx, "POSTGRES_USER", flags[dbUser])
	flags[dbPassword] = envOrDef(ctx, "POSTGRES_PASSWORD", flags[dbPassword])
	flags[dbSSLMode] = envOrDef(ctx, "POSTGRES_SSLMODE", flags[dbSSLMode])

	apply := func(f flagType) func(string) error {
		return func(value string) error {
			flags[f] = value
			return nil
		}
	}

	// Allow command line arguments to override defaults and environment variables
	flag.Func("policies", "an authorization policy file", apply(policiesFile))
	flag.Func("config", "service configuration file", apply(configurationFile))
	flag.Parse()

	return ctx, flags
}

func exitIf(err error, logger *slog.Logger, msg string, args ...any) {
	if err != nil {
		logger.With(args...).Error(msg, "err", err.Error())
		time.Sleep(2 * time.Second)
		os.Exit(1)
	}
}
