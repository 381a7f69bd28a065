package handler

import (
	"github.com/craftmedia-dev/marketing-ops/backend/internal/config"
	"github.com/craftmedia-dev/marketing-ops/backend/internal/domain"
	"github.com/craftmedia-dev/marketing-ops/backend/internal/repository"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

type Handler struct {
	validate   *validator.Validate
	config     *config.Config
	repository *repository.Repository
	translator ut.Translator
	denylist   Denylist

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, denylist Denylist) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:   validate,
		config:     cfg,
		repository: repo,
		translator: trans,
		denylist:   denylist,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// Authentication
	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Post("/signup", h.Signup)
	})

	// Everything below requires a valid session
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.GetAllUserInfo)
			r.With(h.RequiredRole([]domain.Role{domain.RoleManager})).Post("/", h.CreateUser)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.userInfo)
				r.Get("/", h.GetUserInfo)
			})
		})

		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", h.GetAllTasks)
			r.Post("/", h.CreateTask)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.task)
				r.Get("/", h.GetTask)
				r.Patch("/", h.UpdateTask)
				r.Delete("/", h.DeleteTask)
				r.Post("/transition", h.TransitionTask)
				r.Get("/actions", h.GetTaskActions)
				r.Route("/comments", func(r chi.Router) {
					r.Get("/", h.GetTaskComments)
					r.Post("/", h.CreateTaskComment)
				})
			})
		})

		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", h.GetAllCampaigns)
			r.Post("/", h.CreateCampaign)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.campaign)
				r.Get("/", h.GetCampaign)
				r.Patch("/", h.UpdateCampaign)
				r.Delete("/", h.DeleteCampaign)
			})
		})

		r.Route("/stats", func(r chi.Router) {
			r.Get("/tasks", h.GetTaskStats)
			r.Get("/campaigns", h.GetCampaignStats)
		})
	})
}
