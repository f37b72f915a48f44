package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestNewRegisters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := New(reg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m.InsertsTotal.Inc()
	m.QueriesTotal.WithLabelValues("RCC_DR").Inc()

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	names := make(map[string]bool)
	for _, f := range families {
		names[f.GetName()] = true
	}
	for _, want := range []string{"srs_inserts_total", "srs_queries_total", "srs_regions"} {
		if !names[want] {
			t.Errorf("metric %q not gathered", want)
		}
	}
}

func TestNewTwiceOnSameRegistryFails(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := New(reg); err != nil {
		t.Fatalf("first New: %v", err)
	}
	if _, err := New(reg); err == nil {
		t.Error("second New on the same registry should fail")
	}
}

func TestNewWithoutRegistry(t *testing.T) {
	m, err := New(nil)
	if err != nil {
		t.Fatalf("New(nil): %v", err)
	}
	if m.Regions == nil {
		t.Fatal("collectors not created")
	}
}
