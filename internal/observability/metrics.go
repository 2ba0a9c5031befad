package observability

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"

	"valorant-coach-service/internal/config"
)

type AppMetrics struct {
	authRegisterCounter metric.Int64Counter
	authLoginCounter    metric.Int64Counter
	authRefreshCounter  metric.Int64Counter
	authLogoutCounter   metric.Int64Counter
}

var (
	metricsMu  sync.RWMutex
	appMetrics *AppMetrics
)

func InitMetrics(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*sdkmetric.MeterProvider, error) {
	if !cfg.OTELEnabled {
		mp := sdkmetric.NewMeterProvider()
		otel.SetMeterProvider(mp)
		logger.Info("otel metrics disabled")
		return mp, nil
	}

	opts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithEndpoint(cfg.OTELExporterOTLPEndpoint)}
	if cfg.OTELExporterOTLPInsecure {
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}
	exporter, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create otlp metric exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", cfg.OTELServiceName),
			attribute.String("deployment.environment", cfg.Environment),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("create metric resource: %w", err)
	}

	reader := sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(cfg.OTELMetricsInterval))
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(reader),
	)
	otel.SetMeterProvider(mp)

	meter := mp.Meter("valorant-coach-service")
	registerCounter, err := meter.Int64Counter("auth.register.attempts")
	if err != nil {
		return nil, err
	}
	loginCounter, err := meter.Int64Counter("auth.login.attempts")
	if err != nil {
		return nil, err
	}
	refreshCounter, err := meter.Int64Counter("auth.refresh.attempts")
	if err != nil {
		return nil, err
	}
	logoutCounter, err := meter.Int64Counter("auth.logout.attempts")
	if err != nil {
		return nil, err
	}

	metricsMu.Lock()
	appMetrics = &AppMetrics{
		authRegisterCounter: registerCounter,
		authLoginCounter:    loginCounter,
		authRefreshCounter:  refreshCounter,
		authLogoutCounter:   logoutCounter,
	}
	metricsMu.Unlock()

	logger.Info("otel metrics initialized", "endpoint", cfg.OTELExporterOTLPEndpoint)
	return mp, nil
}

func RecordAuthRegister(status string) {
	metricsMu.RLock()
	m := appMetrics
	metricsMu.RUnlock()
	if m == nil {
		return
	}
	m.authRegisterCounter.Add(context.Background(), 1, metric.WithAttributes(attribute.String("status", status)))
}

func RecordAuthLogin(status string) {
	metricsMu.RLock()
	m := appMetrics
	metricsMu.RUnlock()
	if m == nil {
		return
	}
	m.authLoginCounter.Add(context.Background(), 1, metric.WithAttributes(attribute.String("status", status)))
}

func RecordAuthRefresh(status string) {
	metricsMu.RLock()
	m := appMetrics
	metricsMu.RUnlock()
	if m == nil {
		return
	}
	m.authRefreshCounter.Add(context.Background(), 1, metric.WithAttributes(attribute.String("status", status)))
}

func RecordAuthLogout(status string) {
	metricsMu.RLock()
	m := appMetrics
	metricsMu.RUnlock()
	if m == nil {
		return
	}
	m.authLogoutCounter.Add(context.Background(), 1, metric.WithAttributes(attribute.String("status", status)))
}

var (
	lazyMetricsOnce  sync.Once
	repoOpCounter    metric.Int64Counter
	tokenCheckGauge  metric.Int64Counter
	blacklistCounter metric.Int64Counter
)

func initLazyCounters() {
	lazyMetricsOnce.Do(func() {
		meter := otel.Meter("valorant-coach-service")
		if c, err := meter.Int64Counter("repository.operations"); err == nil {
			repoOpCounter = c
		}
		if c, err := meter.Int64Counter("auth.access_token.validations"); err == nil {
			tokenCheckGauge = c
		}
		if c, err := meter.Int64Counter("auth.blacklist.degraded"); err == nil {
			blacklistCounter = c
		}
	})
}

func RecordRepositoryOperation(ctx context.Context, entity, operation, outcome string) {
	initLazyCounters()
	if repoOpCounter == nil {
		return
	}
	repoOpCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("entity", entity),
		attribute.String("operation", operation),
		attribute.String("outcome", outcome),
	))
}

func RecordAccessTokenValidation(ctx context.Context, outcome string) {
	initLazyCounters()
	if tokenCheckGauge == nil {
		return
	}
	tokenCheckGauge.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

// RecordBlacklistDegraded counts revocation-store failures that were
// swallowed by the fail-open path.
func RecordBlacklistDegraded(ctx context.Context, operation string) {
	initLazyCounters()
	if blacklistCounter == nil {
		return
	}
	blacklistCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", operation)))
}
