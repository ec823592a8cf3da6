package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/roster-scorer/backend/internal/config"
	"github.com/sysu-ecnc-dev/roster-scorer/backend/internal/domain"
	"github.com/sysu-ecnc-dev/roster-scorer/backend/internal/repository"
)

type testResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// newTestHandler 创建一个注册了默认排班问题（ID 为 1）的 handler
func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.Registry.MaxProblems = 10

	repo := repository.NewRepository(cfg)
	require.NoError(t, repo.CreateProblem(domain.DefaultProblem(10)))

	h, err := NewHandler(cfg, repo)
	require.NoError(t, err)
	h.RegisterRoutes()

	return h
}

func doRequest(t *testing.T, h *Handler, method, path string, body any) *testResponse {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	h.Mux.ServeHTTP(rec, req)

	resp := &testResponse{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(resp))
	return resp
}

func rosterRequest(size int, values func(i int) int) map[string]any {
	encoded := make([]int, size)
	if values != nil {
		for i := range encoded {
			encoded[i] = values(i)
		}
	}
	return map[string]any{"roster": encoded}
}

func TestResponseEnvelopes(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/problems/1", nil)

	rec := httptest.NewRecorder()
	h.internalServerError(rec, req, errors.New("磁盘已满"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	resp := &testResponse{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "打分服务内部错误", resp.Message)

	rec = httptest.NewRecorder()
	h.successResponse(rec, req, "获取排班问题成功", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	resp = &testResponse{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "获取排班问题成功", resp.Message)
}

func TestGetProblemLength(t *testing.T) {
	h := newTestHandler(t)

	resp := doRequest(t, h, http.MethodGet, "/problems/1/length", nil)
	require.True(t, resp.Success, resp.Message)

	var data struct {
		Length int `json:"length"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, 210, data.Length)
}

func TestEvaluateCostOfAllZeroRoster(t *testing.T) {
	h := newTestHandler(t)

	resp := doRequest(t, h, http.MethodPost, "/problems/1/cost", rosterRequest(210, nil))
	require.True(t, resp.Success, resp.Message)

	var data struct {
		Length int `json:"length"`
		Cost   int `json:"cost"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, 210, data.Length)
	// 全 0 排班只有人数下限的违反: 10 * 7 * (2 + 2 + 1)
	assert.Equal(t, 350, data.Cost)
}

func TestEvaluateCostRejectsWrongSize(t *testing.T) {
	h := newTestHandler(t)

	for _, size := range []int{209, 211} {
		resp := doRequest(t, h, http.MethodPost, "/problems/1/cost", rosterRequest(size, nil))
		assert.False(t, resp.Success)
		assert.Contains(t, resp.Message, "排班编码的长度")
	}
}

func TestEvaluateCostRejectsNonBinaryValues(t *testing.T) {
	h := newTestHandler(t)

	body := rosterRequest(210, nil)
	body["roster"].([]int)[3] = 7

	resp := doRequest(t, h, http.MethodPost, "/problems/1/cost", body)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "非 0/1")
}

func TestEvaluateReport(t *testing.T) {
	h := newTestHandler(t)

	resp := doRequest(t, h, http.MethodPost, "/problems/1/report", rosterRequest(210, func(i int) int { return 1 }))
	require.True(t, resp.Success, resp.Message)

	report := &domain.EvaluationReport{}
	require.NoError(t, json.Unmarshal(resp.Data, report))

	assert.Equal(t, 200, report.ConsecutiveShiftViolations)
	assert.Equal(t, 160, report.ShiftsPerWeekViolations)
	assert.Equal(t, 147, report.WorkersPerShiftViolations)
	assert.Equal(t, 98, report.ShiftPreferenceViolations)
	assert.Equal(t, 35, report.CompetenceViolations)
	assert.Equal(t, 542, report.HardConstraintViolations)
	assert.Equal(t, 98, report.SoftConstraintViolations)
	assert.Equal(t, 5518, report.Cost)
	require.Len(t, report.Schedules, 10)
	assert.Equal(t, "A", report.Schedules[0].Worker)
}

func TestCreateProblemAndEvaluate(t *testing.T) {
	h := newTestHandler(t)

	resp := doRequest(t, h, http.MethodPost, "/problems", map[string]any{
		"name":                  "双人测试问题",
		"workers":               []string{"甲", "乙"},
		"shiftPreferences":      [][]int{{1, 1, 1}, {1, 1, 1}},
		"shiftMin":              []int{0, 0, 0},
		"shiftMax":              []int{2, 2, 2},
		"maxShiftsPerWeek":      5,
		"weeks":                 1,
		"hardConstraintPenalty": 10,
	})
	require.True(t, resp.Success, resp.Message)

	created := &domain.Problem{}
	require.NoError(t, json.Unmarshal(resp.Data, created))
	assert.Equal(t, int64(2), created.ID)

	resp = doRequest(t, h, http.MethodPost, fmt.Sprintf("/problems/%d/cost", created.ID), rosterRequest(42, nil))
	require.True(t, resp.Success, resp.Message)

	var data struct {
		Length int `json:"length"`
		Cost   int `json:"cost"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, 42, data.Length)
	assert.Equal(t, 0, data.Cost)
}

func TestCreateProblemRejectsMismatchedPreferences(t *testing.T) {
	h := newTestHandler(t)

	resp := doRequest(t, h, http.MethodPost, "/problems", map[string]any{
		"name":                  "配置错误的问题",
		"workers":               []string{"甲", "乙"},
		"shiftPreferences":      [][]int{{1, 1, 1}},
		"shiftMin":              []int{0, 0, 0},
		"shiftMax":              []int{2, 2, 2},
		"maxShiftsPerWeek":      5,
		"weeks":                 1,
		"hardConstraintPenalty": 10,
	})
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "偏好")
}

func TestCreateProblemRequiresName(t *testing.T) {
	h := newTestHandler(t)

	resp := doRequest(t, h, http.MethodPost, "/problems", map[string]any{
		"workers":               []string{"甲"},
		"shiftPreferences":      [][]int{{1, 1, 1}},
		"shiftMin":              []int{0, 0, 0},
		"shiftMax":              []int{2, 2, 2},
		"maxShiftsPerWeek":      5,
		"weeks":                 1,
		"hardConstraintPenalty": 10,
	})
	assert.False(t, resp.Success)
}

func TestProblemNotFound(t *testing.T) {
	h := newTestHandler(t)

	resp := doRequest(t, h, http.MethodGet, "/problems/99", nil)
	assert.False(t, resp.Success)
	assert.Equal(t, "排班问题不存在", resp.Message)
}

func TestDeleteProblem(t *testing.T) {
	h := newTestHandler(t)

	resp := doRequest(t, h, http.MethodDelete, "/problems/1", nil)
	require.True(t, resp.Success, resp.Message)

	resp = doRequest(t, h, http.MethodGet, "/problems/1", nil)
	assert.False(t, resp.Success)
}

func TestGetAllProblems(t *testing.T) {
	h := newTestHandler(t)

	resp := doRequest(t, h, http.MethodGet, "/problems", nil)
	require.True(t, resp.Success, resp.Message)

	var problems []*domain.Problem
	require.NoError(t, json.Unmarshal(resp.Data, &problems))
	require.Len(t, problems, 1)
	assert.Equal(t, "默认排班问题", problems[0].Name)
}
