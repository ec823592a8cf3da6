package handler

import (
	"errors"
	"net/http"

	"github.com/sysu-ecnc-dev/roster-scorer/backend/internal/domain"
	"github.com/sysu-ecnc-dev/roster-scorer/backend/internal/roster"
)

func (h *Handler) GetAllProblems(w http.ResponseWriter, r *http.Request) {
	problems, err := h.repository.GetAllProblems()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取所有排班问题成功", problems)
}

func (h *Handler) CreateProblem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name                  string   `json:"name" validate:"required"`
		Description           string   `json:"description"`
		Workers               []string `json:"workers" validate:"required,min=1,unique,dive,required"`
		ShiftPreferences      [][]int  `json:"shiftPreferences" validate:"required,dive,len=3,dive,gte=0,lte=1"`
		ShiftMin              []int    `json:"shiftMin" validate:"required,len=3,dive,gte=0"`
		ShiftMax              []int    `json:"shiftMax" validate:"required,len=3,dive,gte=0"`
		MaxShiftsPerWeek      int      `json:"maxShiftsPerWeek" validate:"required,gte=1"`
		Weeks                 int      `json:"weeks" validate:"required,gte=1"`
		HardConstraintPenalty int      `json:"hardConstraintPenalty" validate:"required,gte=1"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	p := &domain.Problem{
		Name:                  req.Name,
		Description:           req.Description,
		Workers:               req.Workers,
		ShiftPreferences:      req.ShiftPreferences,
		ShiftMin:              req.ShiftMin,
		ShiftMax:              req.ShiftMax,
		MaxShiftsPerWeek:      req.MaxShiftsPerWeek,
		Weeks:                 req.Weeks,
		HardConstraintPenalty: req.HardConstraintPenalty,
	}

	// 结构校验之外还需要让打分器做一遍语义校验
	// 例如偏好数量和员工数量是否匹配
	if _, err := roster.New(p); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.CreateProblem(p); err != nil {
		switch {
		case errors.Is(err, domain.ErrTooManyProblems):
			h.errorResponse(w, r, "排班问题数量已达上限")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "创建排班问题成功", p)
}

func (h *Handler) GetProblem(w http.ResponseWriter, r *http.Request) {
	p := r.Context().Value(ProblemCtx).(*domain.Problem)

	h.successResponse(w, r, "获取排班问题成功", p)
}

func (h *Handler) DeleteProblem(w http.ResponseWriter, r *http.Request) {
	p := r.Context().Value(ProblemCtx).(*domain.Problem)

	if err := h.repository.DeleteProblem(p.ID); err != nil {
		switch {
		case errors.Is(err, domain.ErrProblemNotFound):
			h.errorResponse(w, r, "排班问题不存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "删除排班问题成功", nil)
}

func (h *Handler) GetProblemLength(w http.ResponseWriter, r *http.Request) {
	p := r.Context().Value(ProblemCtx).(*domain.Problem)

	ev, err := roster.New(p)
	if err != nil {
		// 仓库中的问题在创建时都通过了校验，理论上不会出错
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取排班编码长度成功", struct {
		Length int `json:"length"`
	}{Length: ev.Len()})
}

func (h *Handler) EvaluateCost(w http.ResponseWriter, r *http.Request) {
	p := r.Context().Value(ProblemCtx).(*domain.Problem)

	var req struct {
		Roster []int `json:"roster" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	ev, err := roster.New(p)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	cost, err := ev.Cost(req.Roster)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRosterSize), errors.Is(err, domain.ErrInvalidRosterValue):
			h.errorResponse(w, r, err.Error())
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "计算排班成本成功", struct {
		Length int `json:"length"`
		Cost   int `json:"cost"`
	}{Length: ev.Len(), Cost: cost})
}

func (h *Handler) EvaluateReport(w http.ResponseWriter, r *http.Request) {
	p := r.Context().Value(ProblemCtx).(*domain.Problem)

	var req struct {
		Roster []int `json:"roster" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	ev, err := roster.New(p)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	report, err := ev.Describe(req.Roster)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRosterSize), errors.Is(err, domain.ErrInvalidRosterValue):
			h.errorResponse(w, r, err.Error())
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "评估排班成功", report)
}
