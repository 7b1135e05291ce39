// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

package content

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wiwekaitech/wiweka/internal/platform/middleware"
	requestutil "github.com/wiwekaitech/wiweka/internal/platform/request"
	"github.com/wiwekaitech/wiweka/internal/platform/respond"
	"github.com/wiwekaitech/wiweka/internal/platform/sec"
	"github.com/wiwekaitech/wiweka/pkg/pagination"
)

// FilterFunc turns the query string of a public list request into conditions.
type FilterFunc func(request *http.Request) ([]Condition, error)

// HandlerConfig carries the kind-specific parts of a [Handler].
type HandlerConfig[T Entity] struct {
	// NewPatch allocates the partial update payload.
	NewPatch func() Patch[T]

	// Filters parses public list filters. Optional.
	Filters FilterFunc
}

// Handler serves the public and admin endpoints of one content kind.
type Handler[T Entity] struct {
	service *Service[T]
	config  HandlerConfig[T]
}

// NewHandler creates a handler over service.
func NewHandler[T Entity](service *Service[T], config HandlerConfig[T]) *Handler[T] {
	return &Handler[T]{service: service, config: config}
}

// PublicRoutes mounts the anonymous read endpoints.
func (handler *Handler[T]) PublicRoutes(router chi.Router) {
	router.Get("/", handler.listPublic)
	router.Get("/{slug}", handler.getBySlug)
}

// AdminRoutes mounts the management endpoints.
//
// The router must already run [middleware.Authenticate].
func (handler *Handler[T]) AdminRoutes(router chi.Router) {
	router.Group(func(readRoute chi.Router) {
		readRoute.Use(middleware.Authorize(sec.ContentRead))

		readRoute.Get("/", handler.listAdmin)
		readRoute.Get("/{id}", handler.getByID)
	})

	router.Group(func(writeRoute chi.Router) {
		writeRoute.Use(middleware.Authorize(sec.ContentWrite))

		writeRoute.Post("/", handler.create)
		writeRoute.Put("/{id}", handler.update)
		writeRoute.Patch("/{id}", handler.update)
		writeRoute.Delete("/{id}", handler.delete)
	})
}

func (handler *Handler[T]) listPublic(writer http.ResponseWriter, request *http.Request) {
	lang, err := requestutil.Lang(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var conditions []Condition
	if handler.config.Filters != nil {
		if conditions, err = handler.config.Filters(request); err != nil {
			respond.Error(writer, request, err)
			return
		}
	}

	page, err := handler.service.ListPublic(request.Context(), lang, pagination.FromRequest(request), conditions...)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, page.Items, page.Meta)
}

func (handler *Handler[T]) getBySlug(writer http.ResponseWriter, request *http.Request) {
	lang, err := requestutil.Lang(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	view, err := handler.service.GetBySlug(request.Context(), requestutil.Param(request, "slug"), lang)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, view)
}

func (handler *Handler[T]) listAdmin(writer http.ResponseWriter, request *http.Request) {
	lang, err := requestutil.Lang(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	views, err := handler.service.ListAdmin(request.Context(), lang)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, views)
}

func (handler *Handler[T]) getByID(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	entity, err := handler.service.GetByID(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entity)
}

func (handler *Handler[T]) create(writer http.ResponseWriter, request *http.Request) {
	// New pre-fills defaults; absent keys keep them.
	input := handler.service.Schema().New()
	if err := requestutil.DecodeJSON(request, input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	input.Base().ID = 0

	created, err := handler.service.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.CreatedWithMessage(writer, handler.service.Schema().Resource+" created successfully", created)
}

func (handler *Handler[T]) update(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	patch := handler.config.NewPatch()
	if err := requestutil.DecodeJSON(request, patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.Update(request.Context(), id, patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OKWithMessage(writer, handler.service.Schema().Resource+" updated successfully", updated)
}

func (handler *Handler[T]) delete(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Message(writer, handler.service.Schema().Resource+" deleted successfully")
}
