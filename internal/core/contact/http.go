// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

package contact

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wiwekaitech/wiweka/internal/platform/middleware"
	requestutil "github.com/wiwekaitech/wiweka/internal/platform/request"
	"github.com/wiwekaitech/wiweka/internal/platform/respond"
	"github.com/wiwekaitech/wiweka/internal/platform/sec"
	"github.com/wiwekaitech/wiweka/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the public form endpoint.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/", handler.submit)
}

// AdminRoutes mounts message triage. The router must already authenticate.
func (handler *Handler) AdminRoutes(router chi.Router) {
	router.Group(func(readRoute chi.Router) {
		readRoute.Use(middleware.Authorize(sec.ContentRead))

		readRoute.Get("/", handler.listMessages)
		readRoute.Get("/{id}", handler.getMessage)
	})

	router.Group(func(writeRoute chi.Router) {
		writeRoute.Use(middleware.Authorize(sec.ContentWrite))

		writeRoute.Patch("/{id}/status", handler.updateStatus)
	})
}

func (handler *Handler) submit(writer http.ResponseWriter, request *http.Request) {
	var submission Submission
	if err := requestutil.DecodeJSON(request, &submission); err != nil {
		respond.Error(writer, request, err)
		return
	}

	receipt, err := handler.service.Submit(request.Context(), submission, Origin{
		IPAddress: middleware.RealIP(request),
		UserAgent: request.UserAgent(),
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.CreatedWithMessage(writer, ThankYouMessage, receipt)
}

func (handler *Handler) listMessages(writer http.ResponseWriter, request *http.Request) {
	status := Status(request.URL.Query().Get("status"))

	page, err := handler.service.List(request.Context(), status, pagination.FromRequest(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, page.Items, page.Meta)
}

func (handler *Handler) getMessage(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	view, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, view)
}

type statusInput struct {
	Status Status `json:"status"`
}

func (handler *Handler) updateStatus(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input statusInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	view, err := handler.service.UpdateStatus(request.Context(), id, input.Status)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OKWithMessage(writer, "Status updated successfully", view)
}
