package events

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

var tracer = otel.Tracer("noc-alarm-mgmt/events")

// NewNetworkEventHandler feeds raw events from the collectors into the
// correlation pipeline.
func NewNetworkEventHandler(messenger messaging.MsgContext, svc EventService) messaging.TopicMessageHandler {
	return func(ctx context.Context, itm messaging.IncomingTopicMessage, l *slog.Logger) {
		var err error

		ctx, span := tracer.Start(ctx, "network-event")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, l, ctx)

		event := types.NetworkEvent{}

		err = json.Unmarshal(itm.Body(), &event)
		if err != nil {
			log.Error("failed to unmarshal message", "err", err.Error())
			return
		}

		processed, correlation, _, err := svc.Process(ctx, event)
		if err != nil {
			log.Error("could not process event", "event_type", event.EventType, "err", err.Error())
			return
		}

		if correlation.CorrelationID != "" {
			log.Debug("event correlated", "event_id", processed.ID, "correlation_id", correlation.CorrelationID, "strength", correlation.Strength)
		}
	}
}
