package health_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/ErlanBelekov/recipes-api/internal/health"
	"github.com/prometheus/client_golang/prometheus"
)

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(_ context.Context) error { return m.err }

func newTestChecker(deps ...health.Dependency) (*health.Checker, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return health.NewChecker(slog.Default(), reg, deps...), reg
}

func TestLiveness_AlwaysUp(t *testing.T) {
	c, _ := newTestChecker(health.Dependency{Name: "postgres", Pinger: &mockPinger{err: errors.New("db down")}})

	result := c.Liveness(context.Background())
	if result.Status != health.StatusUp {
		t.Fatalf("expected status up, got %s", result.Status)
	}
	if result.Checks != nil {
		t.Fatalf("expected no checks, got %v", result.Checks)
	}
}

func TestReadiness_PostgresUp(t *testing.T) {
	c, reg := newTestChecker(health.Dependency{Name: "postgres", Pinger: &mockPinger{}})

	result := c.Readiness(context.Background())
	if result.Status != health.StatusUp {
		t.Fatalf("expected status up, got %s", result.Status)
	}
	pg, ok := result.Checks["postgres"]
	if !ok {
		t.Fatal("missing postgres check")
	}
	if pg.Status != health.StatusUp {
		t.Fatalf("expected postgres up, got %s", pg.Status)
	}

	if got := gaugeValue(t, reg, "postgres"); got != 1 {
		t.Fatalf("expected gauge 1, got %f", got)
	}
}

func TestReadiness_OneDependencyDown(t *testing.T) {
	c, reg := newTestChecker(
		health.Dependency{Name: "postgres", Pinger: &mockPinger{}},
		health.Dependency{Name: "redis", Pinger: health.PingFunc(func(context.Context) error {
			return errors.New("connection refused")
		})},
	)

	result := c.Readiness(context.Background())
	if result.Status != health.StatusDown {
		t.Fatalf("expected status down, got %s", result.Status)
	}
	if result.Checks["postgres"].Status != health.StatusUp {
		t.Fatalf("expected postgres up, got %s", result.Checks["postgres"].Status)
	}
	rd := result.Checks["redis"]
	if rd.Status != health.StatusDown || rd.Error == "" {
		t.Fatalf("expected redis down with error, got %+v", rd)
	}

	if got := gaugeValue(t, reg, "redis"); got != 0 {
		t.Fatalf("expected gauge 0, got %f", got)
	}
}

func gaugeValue(t *testing.T, reg *prometheus.Registry, dep string) float64 {
	t.Helper()
	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}
	for _, mf := range mfs {
		if mf.GetName() != "recipes_health_check_up" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if lp.GetName() == "dependency" && lp.GetValue() == dep {
					return m.GetGauge().GetValue()
				}
			}
		}
	}
	t.Fatalf("metric recipes_health_check_up{dependency=%q} not found", dep)
	return 0
}
