package domain

import "time"

type Phase string

const (
	PhaseRunning   Phase = "Running"
	PhasePaused    Phase = "Paused"
	PhaseCompleted Phase = "Completed"
	PhaseFailed    Phase = "Failed"
)

// IsTerminal reports whether no further transitions can happen
func (p Phase) IsTerminal() bool {
	return p == PhaseCompleted || p == PhaseFailed
}

// ScenarioStatus is the progress report written back for a scenario
type ScenarioStatus struct {
	Phase                Phase      `json:"phase"`
	CurrentSimulatedTime time.Time  `json:"currentSimulatedTime"`
	ElapsedSimulatedTime string     `json:"elapsedSimulatedTime"`
	ElapsedRealTime      string     `json:"elapsedRealTime"`
	TotalTasksGenerated  int64      `json:"totalTasksGenerated"`
	Message              string     `json:"message"`
	EndTime              *time.Time `json:"endTime,omitempty"` // Only set when Completed
}

// ToUnstructured renders the status in the shape stored on the scenario resource
func (s ScenarioStatus) ToUnstructured() map[string]any {
	status := map[string]any{
		"phase":                string(s.Phase),
		"currentSimulatedTime": s.CurrentSimulatedTime.Format(time.RFC3339),
		"elapsedSimulatedTime": s.ElapsedSimulatedTime,
		"elapsedRealTime":      s.ElapsedRealTime,
		"totalTasksGenerated":  s.TotalTasksGenerated,
		"message":              s.Message,
	}
	if s.EndTime != nil {
		status["endTime"] = s.EndTime.Format(time.RFC3339)
	}
	return status
}

// ScenarioRef identifies one scenario resource
type ScenarioRef struct {
	Namespace string `json:"namespace"`
	Name      string `json:"name"`
}

func (r ScenarioRef) String() string {
	return r.Namespace + "/" + r.Name
}

// ScenarioRunRecord is a status snapshot kept for run history
type ScenarioRunRecord struct {
	Namespace  string         `bson:"namespace"`
	Name       string         `bson:"name"`
	StartTime  int64          `bson:"startTime"` // Unix milliseconds of the executor epoch
	Status     ScenarioStatus `bson:"status"`
	RecordedAt int64          `bson:"recordedAt"`
}
