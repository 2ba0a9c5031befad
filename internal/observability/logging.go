package observability

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/resource"

	"valorant-coach-service/internal/config"
)

// InitLogging builds the process logger. Without a collector it is a plain
// JSON slog handler on stdout; with OTel enabled, records are also shipped
// over OTLP via the otelslog bridge.
func InitLogging(ctx context.Context, cfg *config.Config) (*slog.Logger, *sdklog.LoggerProvider, error) {
	stdout := slog.NewJSONHandler(os.Stdout, nil)
	if !cfg.OTELEnabled {
		logger := slog.New(stdout)
		slog.SetDefault(logger)
		return logger, nil, nil
	}

	opts := []otlploggrpc.Option{otlploggrpc.WithEndpoint(cfg.OTELExporterOTLPEndpoint)}
	if cfg.OTELExporterOTLPInsecure {
		opts = append(opts, otlploggrpc.WithInsecure())
	}
	exporter, err := otlploggrpc.New(ctx, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("create otlp log exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", cfg.OTELServiceName),
			attribute.String("deployment.environment", cfg.Environment),
		),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("create log resource: %w", err)
	}

	lp := sdklog.NewLoggerProvider(
		sdklog.WithResource(res),
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
	)
	bridge := otelslog.NewHandler("valorant-coach-service", otelslog.WithLoggerProvider(lp))
	logger := slog.New(fanoutHandler{stdout, bridge})
	slog.SetDefault(logger)
	return logger, lp, nil
}

// fanoutHandler duplicates records to stdout and the OTLP bridge.
type fanoutHandler [2]slog.Handler

func (h fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h[0].Enabled(ctx, level) || h[1].Enabled(ctx, level)
}

func (h fanoutHandler) Handle(ctx context.Context, rec slog.Record) error {
	if err := h[0].Handle(ctx, rec.Clone()); err != nil {
		return err
	}
	return h[1].Handle(ctx, rec)
}

func (h fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return fanoutHandler{h[0].WithAttrs(attrs), h[1].WithAttrs(attrs)}
}

func (h fanoutHandler) WithGroup(name string) slog.Handler {
	return fanoutHandler{h[0].WithGroup(name), h[1].WithGroup(name)}
}
