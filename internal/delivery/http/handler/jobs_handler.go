package handler

import (
	"careeriq/internal/delivery/http/middleware"
	"careeriq/internal/pkg/response"
	"careeriq/internal/repository"
	"careeriq/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobsHandler struct {
	uc      *usecase.CareerUsecase
	catalog repository.Catalog
}

type matchJobsRequest struct {
	Skills     string `json:"skills"`
	Experience int    `json:"experience"`
}

func NewJobsHandler(uc *usecase.CareerUsecase, catalog repository.Catalog) *JobsHandler {
	return &JobsHandler{uc: uc, catalog: catalog}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/jobs", h.HandleListJobs)
	r.Post("/jobs/match", h.HandleMatchJobs)
}

func (h *JobsHandler) HandleListJobs(c fiber.Ctx) error {
	jobs, err := h.catalog.Jobs(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, jobs)
}

func (h *JobsHandler) HandleMatchJobs(c fiber.Ctx) error {
	var req matchJobsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	matches, err := h.uc.MatchJobs(c.Context(), req.Skills, req.Experience)
	if err != nil {
		return mapCareerUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, matches)
}
