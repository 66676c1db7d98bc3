package telemetry

import (
	"context"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel"

	"go.opentelemetry.io/contrib/detectors/aws/ecs"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/IliaW/cloak-api/config"
	"github.com/google/uuid"
)

var meter metric.Meter

type MetricsProvider struct {
	ApiMetrics *ApiMetrics
	Close      func()
}

type ApiMetrics struct {
	BlackServedCounter   func(count int64)
	WhiteServedCounter   func(count int64)
	BlockedCounter       func(count int64)
	SimulationCounter    func(count int64)
	ErrorResponseCounter func(count int64)
}

func SetupMetrics(ctx context.Context, cfg *config.Config) *MetricsProvider {
	metricsProvider := new(MetricsProvider)
	var meterProvider *sdkmetric.MeterProvider

	if cfg.TelemetrySettings.Enabled {
		r, err := newResource(cfg)
		if err != nil {
			slog.Error("failed to get resource.", slog.String("err", err.Error()))
			os.Exit(1)
		}
		exporter, err := newMetricExporter(ctx, cfg.TelemetrySettings)
		if err != nil {
			slog.Error("failed to get metric exporter.", slog.String("err", err.Error()))
			os.Exit(1)
		}
		meterProvider = newMeterProvider(exporter, *r)
		otel.SetMeterProvider(meterProvider)
	}

	meter = otel.Meter(cfg.ServiceName)
	metricsProvider.Close = func() {
		if meterProvider != nil {
			err := meterProvider.Shutdown(ctx)
			if err != nil {
				slog.Error("failed to shutdown metrics provider.", slog.String("err", err.Error()))
			}
		}
	}

	blackServedCounter, err := meter.Int64Counter("cloak-api.decision.black",
		metric.WithDescription("The number of decisions that served the black page."),
		metric.WithUnit("{decisions}"))
	whiteServedCounter, err := meter.Int64Counter("cloak-api.decision.white",
		metric.WithDescription("The number of decisions that served the white page."),
		metric.WithUnit("{decisions}"))
	blockedCounter, err := meter.Int64Counter("cloak-api.decision.blocked",
		metric.WithDescription("The number of decisions blocked by a filter."),
		metric.WithUnit("{decisions}"))
	simulationCounter, err := meter.Int64Counter("cloak-api.simulation.requests",
		metric.WithDescription("The number of admin simulation runs."),
		metric.WithUnit("{requests}"))
	errorResponseCounter, err := meter.Int64Counter("cloak-api.response.error",
		metric.WithDescription("The number of error responses from the decision endpoints."),
		metric.WithUnit("{responses}"))
	if err != nil {
		slog.Error("failed to create telemetry counters for the cloak api.", slog.String("err", err.Error()))
		os.Exit(1)
	}
	guard := func(counter metric.Int64Counter) func(int64) {
		return func(count int64) {
			if cfg.TelemetrySettings.Enabled {
				counter.Add(ctx, count)
			}
		}
	}
	metricsProvider.ApiMetrics = &ApiMetrics{
		BlackServedCounter:   guard(blackServedCounter),
		WhiteServedCounter:   guard(whiteServedCounter),
		BlockedCounter:       guard(blockedCounter),
		SimulationCounter:    guard(simulationCounter),
		ErrorResponseCounter: guard(errorResponseCounter),
	}

	// initialize metrics in DataDog for setup UI
	if cfg.TelemetrySettings.Enabled {
		metricsProvider.ApiMetrics.BlackServedCounter(0)
		metricsProvider.ApiMetrics.WhiteServedCounter(0)
		metricsProvider.ApiMetrics.BlockedCounter(0)
	}

	return metricsProvider
}

func newResource(cfg *config.Config) (*resource.Resource, error) {
	ecsResourceDetector := ecs.NewResourceDetector()
	ecsResource, err := ecsResourceDetector.Detect(context.Background())
	if err != nil {
		slog.Error("ecs detection failed", slog.String("err", err.Error()))
	}
	mergedResource, err := resource.Merge(ecsResource, resource.Default())
	if err != nil {
		slog.Error("failed to merge resources", slog.String("err", err.Error()))
	}
	keyValue, found := ecsResource.Set().Value("container.id")
	var serviceId string
	if found {
		serviceId = keyValue.AsString()
	} else {
		serviceId = uuid.New().String()
	}
	return resource.Merge(mergedResource,
		resource.NewWithAttributes(semconv.SchemaURL,
			semconv.ServiceName(cfg.ServiceName),
			semconv.DeploymentEnvironment(cfg.Env),
			semconv.ServiceInstanceID(serviceId),
		))
}

func newMetricExporter(ctx context.Context, cfg *config.TelemetryConfig) (sdkmetric.Exporter, error) {
	return otlpmetrichttp.New(ctx,
		otlpmetrichttp.WithEndpoint(cfg.CollectorUrl),
		otlpmetrichttp.WithInsecure())
}

func newMeterProvider(meterExporter sdkmetric.Exporter, resource resource.Resource) *sdkmetric.MeterProvider {
	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(meterExporter)),
		sdkmetric.WithResource(&resource),
	)
	return meterProvider
}
