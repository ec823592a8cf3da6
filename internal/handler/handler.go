package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
	"github.com/sysu-ecnc-dev/roster-scorer/backend/internal/config"
	"github.com/sysu-ecnc-dev/roster-scorer/backend/internal/repository"
)

type Handler struct {
	validate   *validator.Validate
	config     *config.Config
	repository *repository.Repository
	translator ut.Translator

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	zh := zh.New()
	uni := ut.New(zh, zh)
	trans, _ := uni.GetTranslator("zh")
	if err := zh_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:   validate,
		config:     cfg,
		repository: repo,
		translator: trans,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// 排班问题的注册与查询
	h.Mux.Route("/problems", func(r chi.Router) {
		r.Post("/", h.CreateProblem)
		r.Get("/", h.GetAllProblems)
		r.Route("/{id}", func(r chi.Router) {
			r.Use(h.problem)
			r.Get("/", h.GetProblem)
			r.Delete("/", h.DeleteProblem)
			r.Get("/length", h.GetProblemLength)

			// 排班编码的打分与诊断，候选排班由外部的优化器生成
			r.Post("/cost", h.EvaluateCost)
			r.Post("/report", h.EvaluateReport)
		})
	})
}
