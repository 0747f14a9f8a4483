package rest

import (
	"net/http"
	"strconv"

	"github.com/Gthulhu/scenario-controller/domain"
)

const defaultRunLimit = 100

type ScenarioResponse struct {
	Namespace string                `json:"namespace"`
	Name      string                `json:"name"`
	Status    domain.ScenarioStatus `json:"status"`
}

type ListScenariosResponse struct {
	Scenarios []ScenarioResponse `json:"scenarios"`
}

type RunRecordResponse struct {
	StartTime  int64                 `json:"startTime"`
	RecordedAt int64                 `json:"recordedAt"`
	Status     domain.ScenarioStatus `json:"status"`
}

type ListRunsResponse struct {
	Runs []RunRecordResponse `json:"runs"`
}

func toScenarioResponse(info domain.ScenarioInfo) ScenarioResponse {
	return ScenarioResponse{
		Namespace: info.Ref.Namespace,
		Name:      info.Ref.Name,
		Status:    info.Status,
	}
}

// ListScenarios godoc
// @Summary List scenarios
// @Description Status snapshot of every live scenario.
// @Tags Scenarios
// @Produce json
// @Success 200 {object} SuccessResponse[ListScenariosResponse]
// @Router /api/v1/scenarios [get]
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	infos := h.Svc.ListScenarios(ctx)
	resp := ListScenariosResponse{Scenarios: make([]ScenarioResponse, 0, len(infos))}
	for _, info := range infos {
		resp.Scenarios = append(resp.Scenarios, toScenarioResponse(info))
	}
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse(resp))
}

// GetScenario godoc
// @Summary Get scenario
// @Tags Scenarios
// @Produce json
// @Param name path string true "Scenario name"
// @Success 200 {object} SuccessResponse[ScenarioResponse]
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/scenarios/{name} [get]
func (h *Handler) GetScenario(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	info, err := h.Svc.GetScenario(ctx, h.GetPathParam(r, "name"))
	if err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse(toScenarioResponse(info)))
}

// PauseScenario godoc
// @Summary Pause scenario
// @Description Stops task generation and sweeping. Simulated time keeps advancing.
// @Tags Scenarios
// @Produce json
// @Param name path string true "Scenario name"
// @Success 200 {object} SuccessResponse[ScenarioResponse]
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/scenarios/{name}/pause [post]
func (h *Handler) PauseScenario(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := h.GetPathParam(r, "name")
	if err := h.Svc.PauseScenario(ctx, name); err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.GetScenario(w, r)
}

// ResumeScenario godoc
// @Summary Resume scenario
// @Tags Scenarios
// @Produce json
// @Param name path string true "Scenario name"
// @Success 200 {object} SuccessResponse[ScenarioResponse]
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/scenarios/{name}/resume [post]
func (h *Handler) ResumeScenario(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := h.GetPathParam(r, "name")
	if err := h.Svc.ResumeScenario(ctx, name); err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	h.GetScenario(w, r)
}

// ListScenarioRuns godoc
// @Summary List scenario runs
// @Description Recorded status snapshots of a scenario, newest first.
// @Tags Scenarios
// @Produce json
// @Param name path string true "Scenario name"
// @Param namespace query string false "Scenario namespace"
// @Param limit query int false "Maximum records" default(100)
// @Success 200 {object} SuccessResponse[ListRunsResponse]
// @Failure 400 {object} ErrorResponse
// @Failure 501 {object} ErrorResponse
// @Router /api/v1/scenarios/{name}/runs [get]
func (h *Handler) ListScenarioRuns(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	limit := int64(defaultRunLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n <= 0 {
			h.ErrorResponse(ctx, w, http.StatusBadRequest, "limit must be a positive integer", err)
			return
		}
		limit = n
	}

	opt := &domain.QueryRunOptions{
		Namespace: r.URL.Query().Get("namespace"),
		Names:     []string{h.GetPathParam(r, "name")},
		Limit:     limit,
	}
	if err := h.Svc.QueryRuns(ctx, opt); err != nil {
		h.HandleError(ctx, w, err)
		return
	}
	resp := ListRunsResponse{Runs: make([]RunRecordResponse, 0, len(opt.Result))}
	for _, rec := range opt.Result {
		resp.Runs = append(resp.Runs, RunRecordResponse{
			StartTime:  rec.StartTime,
			RecordedAt: rec.RecordedAt,
			Status:     rec.Status,
		})
	}
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse(resp))
}
