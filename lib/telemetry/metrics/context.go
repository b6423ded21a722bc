package metrics

import (
	"context"

	"github.com/artie-labs/anonymize/lib/telemetry/metrics/base"
)

type contextKey struct{}

func InjectMetricsClientIntoCtx(ctx context.Context, metricsClient base.Client) context.Context {
	return context.WithValue(ctx, contextKey{}, metricsClient)
}

// FromContext returns [NullMetricsProvider] if no client was injected.
func FromContext(ctx context.Context) base.Client {
	metricsClient, ok := ctx.Value(contextKey{}).(base.Client)
	if !ok {
		return NullMetricsProvider{}
	}

	return metricsClient
}
