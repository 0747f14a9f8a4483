package service

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ScenariosActive = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "simctl_scenarios",
			Help: "Number of live scenario executors by phase",
		},
		[]string{"phase"},
	)

	TasksGenerated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "simctl_tasks_generated_total",
			Help: "Total number of synthetic tasks generated",
		},
		[]string{"scenario", "generator"},
	)

	GeneratorTicks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "simctl_generator_ticks_total",
			Help: "Generator ticks by outcome",
		},
		[]string{"scenario", "generator", "outcome"},
	)

	ActiveTasks = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "simctl_active_tasks",
			Help: "Tasks currently held by the active task registry",
		},
		[]string{"scenario"},
	)

	VMUpdateErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "simctl_vm_update_errors_total",
			Help: "Failed utilization writes to the VM store",
		},
		[]string{"scenario"},
	)

	SweepDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "simctl_sweep_duration_seconds",
			Help:    "Time spent sweeping expired tasks",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func init() {
	prometheus.MustRegister(ScenariosActive)
	prometheus.MustRegister(TasksGenerated)
	prometheus.MustRegister(GeneratorTicks)
	prometheus.MustRegister(ActiveTasks)
	prometheus.MustRegister(VMUpdateErrors)
	prometheus.MustRegister(SweepDuration)
}

const (
	tickOutcomeGenerated = "generated"
	tickOutcomeEmpty     = "empty"
	tickOutcomeSkipped   = "skipped"
	tickOutcomeError     = "error"
)
