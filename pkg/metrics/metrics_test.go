package metrics

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	pkgerrors "github.com/whiteelite/solana-gateway/pkg/errors"
)

func TestHTTPMetricsExportsCounterAndHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewHTTPMetrics(reg)
	metrics.ObserveRequest("POST", "/send/sol", 200, 40*time.Millisecond)
	metrics.ObserveRequest("POST", "/send/sol", 200, 10*time.Millisecond)
	metrics.ObserveRequest("POST", "/send/sol", 400, 5*time.Millisecond)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got, err := fetchCounterValue(mfs, "http_requests_total", map[string]string{"route": "/send/sol", "status": "200"}); err != nil {
		t.Fatalf("fetch requests: %v", err)
	} else if got != 2 {
		t.Fatalf("expected requests=2, got %f", got)
	}

	if got, err := fetchHistogramSum(mfs, "http_request_duration_seconds", map[string]string{"route": "/send/sol"}); err != nil {
		t.Fatalf("fetch duration: %v", err)
	} else if got <= 0 {
		t.Fatalf("expected duration sum > 0, got %f", got)
	}
}

func TestInstructionMetricsCountsOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewInstructionMetrics(reg)
	metrics.IncSuccess("mint_to")
	metrics.IncRejected("mint_to")
	metrics.IncRejected("mint_to")
	metrics.IncFailed("")

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got, err := fetchCounterValue(mfs, "instruction_builds_total", map[string]string{"operation": "mint_to", "outcome": OutcomeRejected}); err != nil {
		t.Fatalf("fetch rejected: %v", err)
	} else if got != 2 {
		t.Fatalf("expected rejected=2, got %f", got)
	}
	if got, err := fetchCounterValue(mfs, "instruction_builds_total", map[string]string{"operation": "unknown", "outcome": OutcomeFailed}); err != nil {
		t.Fatalf("fetch failed: %v", err)
	} else if got != 1 {
		t.Fatalf("expected failed=1, got %f", got)
	}
}

func TestInstructionMetricsObserveClassifiesErrors(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewInstructionMetrics(reg)
	metrics.Observe("transfer_sol", nil)
	metrics.Observe("transfer_sol", pkgerrors.New(pkgerrors.CodeMalformed, "invalid from"))
	metrics.Observe("transfer_sol", errors.New("boom"))

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}
	for _, outcome := range []string{OutcomeSuccess, OutcomeRejected, OutcomeFailed} {
		got, err := fetchCounterValue(mfs, "instruction_builds_total", map[string]string{"operation": "transfer_sol", "outcome": outcome})
		if err != nil {
			t.Fatalf("fetch %s: %v", outcome, err)
		}
		if got != 1 {
			t.Fatalf("expected %s=1, got %f", outcome, got)
		}
	}
}

func TestNilMetricsAreNoops(t *testing.T) {
	var httpMetrics *HTTPMetrics
	httpMetrics.ObserveRequest("GET", "/health/live", 200, time.Millisecond)

	var instructions *InstructionMetrics
	instructions.IncSuccess("sign_message")

	NewHTTPMetrics(nil).ObserveRequest("GET", "/", 200, time.Millisecond)
	NewInstructionMetrics(nil).IncFailed("transfer_sol")
}

func fetchCounterValue(mfs []*dto.MetricFamily, name string, labels map[string]string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabels(metric.GetLabel(), labels) {
			return metric.GetCounter().GetValue(), nil
		}
	}
	return 0, fmt.Errorf("metric %q missing labels %v", name, labels)
}

func fetchHistogramSum(mfs []*dto.MetricFamily, name string, labels map[string]string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabels(metric.GetLabel(), labels) {
			return metric.GetHistogram().GetSampleSum(), nil
		}
	}
	return 0, fmt.Errorf("histogram %q missing labels %v", name, labels)
}

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func matchesLabels(pairs []*dto.LabelPair, want map[string]string) bool {
	matched := 0
	for _, pair := range pairs {
		if value, ok := want[pair.GetName()]; ok && value == pair.GetValue() {
			matched++
		}
	}
	return matched == len(want)
}
