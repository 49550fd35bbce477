package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"log/slog"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/dotmac-isp/noc-alarm-mgmt/internal/pkg/application/alarms"
	"github.com/dotmac-isp/noc-alarm-mgmt/internal/pkg/application/events"
	"github.com/dotmac-isp/noc-alarm-mgmt/internal/pkg/application/incidents"
	"github.com/dotmac-isp/noc-alarm-mgmt/internal/pkg/infrastructure/storage"
	"github.com/dotmac-isp/noc-alarm-mgmt/internal/pkg/presentation/api/auth"
	"github.com/dotmac-isp/noc-alarm-mgmt/pkg/types"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("noc-alarm-mgmt/api")

func RegisterHandlers(ctx context.Context, router *chi.Mux, policies io.Reader, alarmSvc alarms.AlarmService, eventSvc events.EventService, incidentSvc incidents.IncidentService) (*chi.Mux, error) {

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	log := logging.GetFromContext(ctx)

	// Handle valid / invalid tokens.
	authenticator, err := auth.NewAuthenticator(ctx, log, policies)
	if err != nil {
		return nil, fmt.Errorf("failed to create api authenticator: %w", err)
	}

	router.Route("/api/v0", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authenticator)

			r.Route("/alarms", func(r chi.Router) {
				r.Get("/", queryAlarmsHandler(log, alarmSvc))
				r.Post("/", createAlarmHandler(log, alarmSvc))
				r.Get("/{alarmID}", getAlarmDetails(log, alarmSvc))
				r.Post("/{alarmID}/acknowledge", acknowledgeAlarmHandler(log, alarmSvc))
				r.Post("/{alarmID}/clear", clearAlarmHandler(log, alarmSvc))
				r.Post("/{alarmID}/escalate", escalateAlarmHandler(log, alarmSvc))
				r.Post("/{alarmID}/suppress", suppressAlarmHandler(log, alarmSvc))
			})

			r.Route("/alarmrules", func(r chi.Router) {
				r.Get("/", queryAlarmRulesHandler(log, alarmSvc))
				r.Post("/", createAlarmRuleHandler(log, alarmSvc))
			})

			r.Post("/metrics", evaluateMetricHandler(log, alarmSvc))

			r.Route("/events", func(r chi.Router) {
				r.Get("/", queryEventsHandler(log, eventSvc))
				r.Post("/", createEventHandler(log, eventSvc))
				r.Get("/correlated/{correlationID}", getCorrelatedEventsHandler(log, eventSvc))
				r.Get("/patterns", getPatternsHandler(log, eventSvc))
			})

			r.Route("/eventrules", func(r chi.Router) {
				r.Get("/", queryEventRulesHandler(log, eventSvc))
				r.Post("/", createEventRuleHandler(log, eventSvc))
			})

			r.Post("/incidents", createIncidentHandler(log, incidentSvc))
		})
	})

	return router, nil
}

func writeJson(w http.ResponseWriter, log *slog.Logger, statusCode int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error("unable to marshal response", "err", err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(b)
}

func createAlarmHandler(log *slog.Logger, svc alarms.AlarmService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "create-alarm")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var a types.Alarm
		err = json.Unmarshal(body, &a)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		alarm, created, err := svc.CreateOrMerge(ctx, a)
		if err != nil {
			requestLogger.Error("unable to create alarm", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		statusCode := http.StatusCreated
		if !created {
			statusCode = http.StatusOK
		}

		writeJson(w, requestLogger, statusCode, alarm)
	}
}

func queryAlarmsHandler(log *slog.Logger, svc alarms.AlarmService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		allowedTenants := auth.GetAllowedTenantsFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "query-alarms")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		conditions := storage.ParseConditions(ctx, r.URL.Query())

		collection, err := svc.Query(ctx, allowedTenants, conditions...)
		if err != nil {
			requestLogger.Error("unable to fetch alarms", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJson(w, requestLogger, http.StatusOK, collection)
	}
}

func getAlarmDetails(log *slog.Logger, svc alarms.AlarmService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		allowedTenants := auth.GetAllowedTenantsFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "get-alarm")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		alarmID := chi.URLParam(r, "alarmID")
		if alarmID != "" {
			requestLogger = requestLogger.With(slog.String("alarm_id", alarmID))
		}

		alarm, err := svc.GetByID(ctx, alarmID, allowedTenants)
		if errors.Is(err, alarms.ErrAlarmNotFound) {
			requestLogger.Debug("alarm not found")
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error("could not fetch alarm", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJson(w, requestLogger, http.StatusOK, alarm)
	}
}

func alarmActionHandler(log *slog.Logger, spanName string, action func(ctx context.Context, alarmID string, body []byte, tenants []string) (types.Alarm, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		allowedTenants := auth.GetAllowedTenantsFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), spanName)
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		alarmID := chi.URLParam(r, "alarmID")
		if alarmID != "" {
			requestLogger = requestLogger.With(slog.String("alarm_id", alarmID))
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		alarm, err := action(ctx, alarmID, body, allowedTenants)
		if errors.Is(err, alarms.ErrAlarmNotFound) {
			requestLogger.Debug("alarm not found")
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if errors.Is(err, alarms.ErrInvalidTransition) || errors.Is(err, alarms.ErrInvalidEscalation) {
			requestLogger.Info("rejected alarm state change", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if err != nil {
			requestLogger.Error("unable to update alarm", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJson(w, requestLogger, http.StatusOK, alarm)
	}
}

func acknowledgeAlarmHandler(log *slog.Logger, svc alarms.AlarmService) http.HandlerFunc {
	return alarmActionHandler(log, "acknowledge-alarm", func(ctx context.Context, alarmID string, body []byte, tenants []string) (types.Alarm, error) {
		var req acknowledgeRequest
		if err := json.Unmarshal(body, &req); err != nil {
			return types.Alarm{}, alarms.ErrInvalidTransition
		}

		return svc.Acknowledge(ctx, alarmID, req.By, req.Notes, tenants)
	})
}

func clearAlarmHandler(log *slog.Logger, svc alarms.AlarmService) http.HandlerFunc {
	return alarmActionHandler(log, "clear-alarm", func(ctx context.Context, alarmID string, body []byte, tenants []string) (types.Alarm, error) {
		var req clearRequest
		if err := json.Unmarshal(body, &req); err != nil {
			return types.Alarm{}, alarms.ErrInvalidTransition
		}

		return svc.Clear(ctx, alarmID, req.By, req.Reason, tenants)
	})
}

func escalateAlarmHandler(log *slog.Logger, svc alarms.AlarmService) http.HandlerFunc {
	return alarmActionHandler(log, "escalate-alarm", func(ctx context.Context, alarmID string, body []byte, tenants []string) (types.Alarm, error) {
		var req escalateRequest
		if err := json.Unmarshal(body, &req); err != nil {
			return types.Alarm{}, alarms.ErrInvalidEscalation
		}

		return svc.Escalate(ctx, alarmID, req.Severity, req.By, req.Reason, tenants)
	})
}

func suppressAlarmHandler(log *slog.Logger, svc alarms.AlarmService) http.HandlerFunc {
	return alarmActionHandler(log, "suppress-alarm", func(ctx context.Context, alarmID string, body []byte, tenants []string) (types.Alarm, error) {
		var req suppressRequest
		if err := json.Unmarshal(body, &req); err != nil {
			return types.Alarm{}, alarms.ErrInvalidTransition
		}

		return svc.Suppress(ctx, alarmID, req.By, time.Duration(req.DurationMinutes)*time.Minute, req.Reason, tenants)
	})
}

func evaluateMetricHandler(log *slog.Logger, svc alarms.AlarmService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "evaluate-metric")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var sample types.MetricSample
		err = json.Unmarshal(body, &sample)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		raised, err := svc.EvaluateMetric(ctx, sample)
		if err != nil {
			requestLogger.Error("unable to evaluate metric sample", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		writeJson(w, requestLogger, http.StatusOK, raised)
	}
}

func createAlarmRuleHandler(log *slog.Logger, svc alarms.AlarmService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "create-alarm-rule")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var rule types.AlarmRule
		err = json.Unmarshal(body, &rule)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		rule, err = svc.AddRule(ctx, rule)
		if err != nil {
			requestLogger.Error("unable to create alarm rule", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		writeJson(w, requestLogger, http.StatusCreated, rule)
	}
}

func queryAlarmRulesHandler(log *slog.Logger, svc alarms.AlarmService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		allowedTenants := auth.GetAllowedTenantsFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "query-alarm-rules")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		conditions := storage.ParseConditions(ctx, r.URL.Query())

		collection, err := svc.QueryRules(ctx, allowedTenants, conditions...)
		if err != nil {
			requestLogger.Error("unable to fetch alarm rules", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJson(w, requestLogger, http.StatusOK, collection)
	}
}

func createEventHandler(log *slog.Logger, svc events.EventService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "create-event")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var e types.NetworkEvent
		err = json.Unmarshal(body, &e)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		event, correlation, ruleResults, err := svc.Process(ctx, e)
		if err != nil {
			requestLogger.Error("unable to process event", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		writeJson(w, requestLogger, http.StatusCreated, processedEventResponse{
			Event:       event,
			Correlation: correlation,
			RuleResults: ruleResults,
		})
	}
}

func queryEventsHandler(log *slog.Logger, svc events.EventService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		allowedTenants := auth.GetAllowedTenantsFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "query-events")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		conditions := storage.ParseConditions(ctx, r.URL.Query())

		collection, err := svc.Query(ctx, allowedTenants, conditions...)
		if err != nil {
			requestLogger.Error("unable to fetch events", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJson(w, requestLogger, http.StatusOK, collection)
	}
}

func getCorrelatedEventsHandler(log *slog.Logger, svc events.EventService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		allowedTenants := auth.GetAllowedTenantsFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "get-correlated-events")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		correlationID := chi.URLParam(r, "correlationID")
		if correlationID != "" {
			requestLogger = requestLogger.With(slog.String("correlation_id", correlationID))
		}

		includeChildren := r.URL.Query().Get("includeChildren") == "true"

		group, err := svc.GetCorrelatedEvents(ctx, correlationID, includeChildren, allowedTenants)
		if errors.Is(err, events.ErrCorrelationNotFound) {
			requestLogger.Debug("correlation group not found")
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error("unable to fetch correlated events", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJson(w, requestLogger, http.StatusOK, group)
	}
}

func getPatternsHandler(log *slog.Logger, svc events.EventService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		allowedTenants := auth.GetAllowedTenantsFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "get-event-patterns")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		windowHours := 0
		if v := r.URL.Query().Get("window"); v != "" {
			windowHours, err = strconv.Atoi(v)
			if err != nil {
				requestLogger.Error("window is invalid", "err", err.Error())
				w.WriteHeader(http.StatusBadRequest)
				return
			}
		}

		minEventCount := 0
		if v := r.URL.Query().Get("mincount"); v != "" {
			minEventCount, err = strconv.Atoi(v)
			if err != nil {
				requestLogger.Error("mincount is invalid", "err", err.Error())
				w.WriteHeader(http.StatusBadRequest)
				return
			}
		}

		report, err := svc.AnalyzePatterns(ctx, windowHours, minEventCount, allowedTenants)
		if err != nil {
			requestLogger.Error("unable to analyze event patterns", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJson(w, requestLogger, http.StatusOK, report)
	}
}

func createEventRuleHandler(log *slog.Logger, svc events.EventService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "create-event-rule")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var rule types.EventRule
		err = json.Unmarshal(body, &rule)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		rule, err = svc.AddRule(ctx, rule)
		if err != nil {
			requestLogger.Error("unable to create event rule", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		writeJson(w, requestLogger, http.StatusCreated, rule)
	}
}

func queryEventRulesHandler(log *slog.Logger, svc events.EventService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		allowedTenants := auth.GetAllowedTenantsFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "query-event-rules")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		conditions := storage.ParseConditions(ctx, r.URL.Query())

		collection, err := svc.QueryRules(ctx, allowedTenants, conditions...)
		if err != nil {
			requestLogger.Error("unable to fetch event rules", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJson(w, requestLogger, http.StatusOK, collection)
	}
}

func createIncidentHandler(log *slog.Logger, svc incidents.IncidentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		allowedTenants := auth.GetAllowedTenantsFromContext(r.Context())

		ctx, span := tracer.Start(r.Context(), "create-incident")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var req createIncidentRequest
		err = json.Unmarshal(body, &req)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		ref, err := svc.CreateFromCorrelation(ctx, req.CorrelationID, req.Title, req.Description, req.AssignedTo, allowedTenants)
		if errors.Is(err, events.ErrCorrelationNotFound) {
			requestLogger.Debug("correlation group not found")
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if errors.Is(err, incidents.ErrNoTitle) {
			requestLogger.Info("rejected incident without title")
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if err != nil {
			requestLogger.Error("unable to create incident", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJson(w, requestLogger, http.StatusCreated, ref)
	}
}
