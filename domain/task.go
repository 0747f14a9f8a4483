package domain

import "time"

// ActiveTask is a synthetic resource draw on one VM that lasts until EndTime
type ActiveTask struct {
	VMID        string
	CPU         float64
	Memory      float64
	EndTime     time.Time // Wall-clock instant at which the simulated duration elapses
	Description string
}

// Expired reports whether the task has ended at now
func (t ActiveTask) Expired(now time.Time) bool {
	return !t.EndTime.After(now)
}

// Utilization is the clamped aggregate resource draw of a VM
type Utilization struct {
	CPU    float64 `json:"cpu"`
	Memory float64 `json:"memory"`
}
