package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	pkgerrors "github.com/whiteelite/solana-gateway/pkg/errors"
)

const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// InstructionMetrics counts instruction and signature builds by outcome.
type InstructionMetrics struct {
	builds *prometheus.CounterVec
}

func NewInstructionMetrics(reg prometheus.Registerer) *InstructionMetrics {
	if reg == nil {
		return &InstructionMetrics{}
	}
	builds := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "instruction_builds_total",
		Help: "Instruction and signature builds, by operation and outcome.",
	}, []string{"operation", "outcome"})
	reg.MustRegister(builds)
	return &InstructionMetrics{builds: builds}
}

func (m *InstructionMetrics) IncSuccess(operation string) {
	m.inc(operation, OutcomeSuccess)
}

// IncRejected counts requests refused because of client input.
func (m *InstructionMetrics) IncRejected(operation string) {
	m.inc(operation, OutcomeRejected)
}

func (m *InstructionMetrics) IncFailed(operation string) {
	m.inc(operation, OutcomeFailed)
}

// Observe counts the outcome of one build from the error it returned.
func (m *InstructionMetrics) Observe(operation string, err error) {
	switch typed := pkgerrors.As(err); {
	case err == nil:
		m.IncSuccess(operation)
	case typed != nil && typed.Code() != pkgerrors.CodeInternal:
		m.IncRejected(operation)
	default:
		m.IncFailed(operation)
	}
}

func (m *InstructionMetrics) inc(operation, outcome string) {
	if m == nil || m.builds == nil {
		return
	}
	m.builds.WithLabelValues(normalizeLabel(operation), outcome).Inc()
}
