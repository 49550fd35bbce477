package alarms

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/dotmac-isp/noc-alarm-mgmt/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("noc-alarm-mgmt/alarms")

// NewMetricSampleHandler feeds metric samples from the collectors into the
// threshold rule evaluator.
func NewMetricSampleHandler(messenger messaging.MsgContext, svc AlarmService) messaging.TopicMessageHandler {
	return func(ctx context.Context, itm messaging.IncomingTopicMessage, l *slog.Logger) {
		var err error

		ctx, span := tracer.Start(ctx, "device-metric")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, l, ctx)

		sample := types.MetricSample{}

		err = json.Unmarshal(itm.Body(), &sample)
		if err != nil {
			log.Error("failed to unmarshal message", "err", err.Error())
			return
		}

		if sample.Tenant == "" || sample.MetricName == "" {
			log.Warn("discarding metric sample without tenant or metric name")
			return
		}

		raised, err := svc.EvaluateMetric(ctx, sample)
		if err != nil {
			log.Error("could not evaluate metric sample", "metric_name", sample.MetricName, "err", err.Error())
			return
		}

		if len(raised) > 0 {
			log.Debug("metric sample raised alarms", "metric_name", sample.MetricName, "count", len(raised))
		}
	}
}
