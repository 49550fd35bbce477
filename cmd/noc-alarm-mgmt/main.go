package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/dotmac-isp/noc-alarm-mgmt/internal/pkg/application/alarms"
	"github.com/dotmac-isp/noc-alarm-mgmt/internal/pkg/application/events"
	"github.com/dotmac-isp/noc-alarm-mgmt/internal/pkg/application/incidents"
	"github.com/dotmac-isp/noc-alarm-mgmt/internal/pkg/application/watchdog"
	"github.com/dotmac-isp/noc-alarm-mgmt/internal/pkg/infrastructure/router"
	"github.com/dotmac-isp/noc-alarm-mgmt/internal/pkg/infrastructure/storage"
	"github.com/dotmac-isp/noc-alarm-mgmt/internal/pkg/presentation/api"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
)

const serviceName string = "noc-alarm-mgmt"

type flagType int
type flagMap map[flagType]string

const (
	listenAddress flagType = iota
	servicePort
	interval

	policiesFile
	correlationFile
	alarmRulesFile

	dbHost
	dbUser
	dbPassword
	dbPort
	dbName
	dbSSLMode

	allowedSeedTenants
)

func defaultFlags() flagMap {
	return flagMap{
		listenAddress: "0.0.0.0",
		servicePort:   "8080",
		interval:      "1m",

		policiesFile:    "/opt/noc/config/authz.rego",
		correlationFile: "/opt/noc/config/correlation.yaml",
		alarmRulesFile:  "/opt/noc/config/alarmrules.csv",

		dbHost:     "",
		dbUser:     "",
		dbPassword: "",
		dbPort:     "5432",
		dbName:     "noc",
		dbSSLMode:  "disable",

		allowedSeedTenants: "default",
	}
}

func main() {
	ctx, flags := parseExternalConfig(context.Background(), defaultFlags())

	serviceVersion := buildinfo.SourceVersion()
	ctx, logger, cleanup := o11y.Init(ctx, serviceName, serviceVersion, "json")
	defer cleanup()

	policies, err := os.Open(flags[policiesFile])
	exitIf(err, logger, "unable to open opa policy file")
	defer policies.Close()

	correlationCfg := loadCorrelationConfig(flags[correlationFile], logger)

	s, err := storage.New(ctx, storage.NewConfig(
		flags[dbHost], flags[dbUser], flags[dbPassword],
		flags[dbPort], flags[dbName], flags[dbSSLMode],
	))
	exitIf(err, logger, "could not connect to database")
	defer s.Close()

	err = s.Initialize(ctx)
	exitIf(err, logger, "could not initialize database")

	seedAlarmRules(ctx, s, flags, logger)

	messenger, err := messaging.Initialize(ctx, messaging.LoadConfiguration(ctx, serviceName, logger))
	exitIf(err, logger, "failed to init messenger")
	defer messenger.Close()

	alarmSvc := alarms.New(s, messenger)
	eventSvc := events.New(s, messenger, correlationCfg)
	incidentSvc := incidents.New(alarmSvc, eventSvc)

	messenger.Start()

	err = alarmSvc.RegisterTopicMessageHandler(ctx)
	exitIf(err, logger, "failed to register metric sample handler")

	err = eventSvc.RegisterTopicMessageHandler(ctx)
	exitIf(err, logger, "failed to register network event handler")

	sweepInterval, err := time.ParseDuration(flags[interval])
	exitIf(err, logger, "suppression sweep interval is invalid")

	wd := watchdog.New(alarmSvc, sweepInterval)
	wd.Start(ctx)
	defer wd.Stop(ctx)

	r := router.New(serviceName)
	_, err = api.RegisterHandlers(ctx, r, policies, alarmSvc, eventSvc, incidentSvc)
	exitIf(err, logger, "failed to register handlers")

	apiPort := flags[servicePort]
	logger.Info("starting to listen for incoming connections", "port", apiPort)

	err = http.ListenAndServe(flags[listenAddress]+":"+apiPort, r)
	exitIf(err, logger, "failed to start request router")
}

func loadCorrelationConfig(path string, logger *slog.Logger) *events.Config {
	f, err := os.Open(path)
	if err != nil {
		logger.Info("no correlation config found, using defaults", "path", path)
		return nil
	}
	defer f.Close()

	cfg, err := events.LoadConfiguration(f)
	exitIf(err, logger, "could not parse correlation config")

	return cfg
}

func seedAlarmRules(ctx context.Context, s *storage.Storage, flags flagMap, logger *slog.Logger) {
	rules, err := os.Open(flags[alarmRulesFile])
	if err != nil {
		logger.Info("no alarm rules file found, skipping seed", "path", flags[alarmRulesFile])
		return
	}

	err = storage.SeedAlarmRules(ctx, s, rules, strings.Split(flags[allowedSeedTenants], ","))
	exitIf(err, logger, "could not seed alarm rules")
}

func parseExternalConfig(ctx context.Context, flags flagMap) (context.Context, flagMap) {
	// Allow environment variables to override certain defaults
	envOrDef := env.GetVariableOrDefault

	flags[listenAddress] = envOrDef(ctx, "LISTEN_ADDRESS", flags[listenAddress])
	flags[servicePort] = envOrDef(ctx, "SERVICE_PORT", flags[servicePort])
	flags[interval] = envOrDef(ctx, "SUPPRESSION_SWEEP_INTERVAL", flags[interval])

	flags[policiesFile] = envOrDef(ctx, "POLICIES_FILE", flags[policiesFile])
	flags[allowedSeedTenants] = envOrDef(ctx, "ALLOWED_SEED_TENANTS", flags[allowedSeedTenants])

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
	flag.Func("correlation", "event correlation configuration file", apply(correlationFile))
	flag.Func("alarmrules", "list of threshold alarm rules to seed", apply(alarmRulesFile))
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
