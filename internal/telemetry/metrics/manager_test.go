package metrics_test

import (
	"testing"

	promcl "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/workoutprogress/internal/telemetry/metrics"
)

func findMetricFamily(families []*promcl.MetricFamily, name string) *promcl.MetricFamily {
	for _, mf := range families {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func TestNewManager(t *testing.T) {
	manager, reg := metrics.NewTestManagerAndRegistry()
	require.NotNil(t, manager)

	manager.CounterUpserts.Inc()
	manager.CounterUpserts.Inc()
	manager.CounterPersistenceErrors.WithLabelValues("delete").Inc()
	manager.GaugeHistoryEntries.Set(7)

	gathered, err := reg.Gather()
	require.NoError(t, err)

	upserts := findMetricFamily(gathered, "workouts_test_server_history_upserts")
	require.NotNil(t, upserts)
	assert.Equal(t, 2.0, upserts.GetMetric()[0].GetCounter().GetValue())

	persistenceErrors := findMetricFamily(gathered, "workouts_test_server_history_persistence_errors")
	require.NotNil(t, persistenceErrors)
	require.Len(t, persistenceErrors.GetMetric(), 1)
	assert.Equal(t, "op", persistenceErrors.GetMetric()[0].GetLabel()[0].GetName())
	assert.Equal(t, "delete", persistenceErrors.GetMetric()[0].GetLabel()[0].GetValue())

	entries := findMetricFamily(gathered, "workouts_test_server_history_entries")
	require.NotNil(t, entries)
	assert.Equal(t, 7.0, entries.GetMetric()[0].GetGauge().GetValue())
}

func TestSetupPrometheus(t *testing.T) {
	reg := metrics.SetupPrometheus()
	gathered, err := reg.Gather()
	require.NoError(t, err)
	assert.NotNil(t, findMetricFamily(gathered, "go_goroutines"))
}
