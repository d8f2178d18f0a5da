package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Operation labels for OperationDuration.
const (
	OperationCreate = "create"
	OperationAdd    = "add"
	OperationGet    = "get"
)

// Metrics provides observability for the user registry.
type Metrics struct {
	UsersCreated      prometheus.Counter
	UsersAdded        prometheus.Counter
	AddConflicts      prometheus.Counter
	LookupMisses      prometheus.Counter
	RegistrySize      prometheus.Gauge
	OperationDuration *prometheus.HistogramVec
}

// New creates the registry metrics and registers them with reg.
// A nil reg creates unregistered collectors.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		UsersCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "bloguser_users_created_total",
			Help: "Total number of user records created (not necessarily added)",
		}),
		UsersAdded: factory.NewCounter(prometheus.CounterOpts{
			Name: "bloguser_users_added_total",
			Help: "Total number of user records added to the registry",
		}),
		AddConflicts: factory.NewCounter(prometheus.CounterOpts{
			Name: "bloguser_add_conflicts_total",
			Help: "Total number of adds rejected because the id was taken",
		}),
		LookupMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "bloguser_lookup_misses_total",
			Help: "Total number of lookups for ids that are not in the registry",
		}),
		RegistrySize: factory.NewGauge(prometheus.GaugeOpts{
			Name: "bloguser_registry_size",
			Help: "Number of user records currently held by the registry",
		}),
		OperationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bloguser_operation_duration_seconds",
			Help:    "Duration of registry operations",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.005, 0.01, 0.05, 0.1},
		}, []string{"operation"}),
	}
}

func (m *Metrics) IncrementUsersCreated() {
	m.UsersCreated.Inc()
}

func (m *Metrics) IncrementUsersAdded() {
	m.UsersAdded.Inc()
}

func (m *Metrics) IncrementAddConflicts() {
	m.AddConflicts.Inc()
}

func (m *Metrics) IncrementLookupMisses() {
	m.LookupMisses.Inc()
}

// SetRegistrySize records the current number of stored users.
func (m *Metrics) SetRegistrySize(n int) {
	m.RegistrySize.Set(float64(n))
}

// ObserveOperation records the duration of op.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveOperation(op string, start time.Time) {
	m.OperationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
