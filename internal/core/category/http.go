// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

package category

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wiwekaitech/wiweka/internal/platform/middleware"
	requestutil "github.com/wiwekaitech/wiweka/internal/platform/request"
	"github.com/wiwekaitech/wiweka/internal/platform/respond"
	"github.com/wiwekaitech/wiweka/internal/platform/sec"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the public `?type=` listing.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listPublic)
}

// ListOfType returns a handler listing the categories of one fixed type,
// mounted as /tutorials/categories and /blog/categories.
func (handler *Handler) ListOfType(categoryType Type) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		handler.respondType(writer, request, categoryType)
	}
}

// AdminRoutes mounts category management. The router must already authenticate.
func (handler *Handler) AdminRoutes(router chi.Router) {
	router.Group(func(readRoute chi.Router) {
		readRoute.Use(middleware.Authorize(sec.ContentRead))

		readRoute.Get("/", handler.listAdmin)
		readRoute.Get("/{id}", handler.getCategory)
	})

	router.Group(func(writeRoute chi.Router) {
		writeRoute.Use(middleware.Authorize(sec.ContentWrite))

		writeRoute.Post("/", handler.createCategory)
		writeRoute.Put("/{id}", handler.updateCategory)
		writeRoute.Patch("/{id}", handler.updateCategory)
		writeRoute.Delete("/{id}", handler.deleteCategory)
	})
}

func (handler *Handler) listPublic(writer http.ResponseWriter, request *http.Request) {
	handler.respondType(writer, request, Type(request.URL.Query().Get("type")))
}

func (handler *Handler) respondType(writer http.ResponseWriter, request *http.Request, categoryType Type) {
	lang, err := requestutil.Lang(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	refs, err := handler.service.GetByType(request.Context(), categoryType, lang)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, refs)
}

func (handler *Handler) listAdmin(writer http.ResponseWriter, request *http.Request) {
	categories, err := handler.service.List(request.Context(), Type(request.URL.Query().Get("type")))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, categories)
}

func (handler *Handler) getCategory(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	category, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, category)
}

func (handler *Handler) createCategory(writer http.ResponseWriter, request *http.Request) {
	var input Category
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	input.ID = 0

	if err := handler.service.Create(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.CreatedWithMessage(writer, "Category created successfully", input)
}

func (handler *Handler) updateCategory(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var patch Patch
	if err := requestutil.DecodeJSON(request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	category, err := handler.service.Update(request.Context(), id, &patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OKWithMessage(writer, "Category updated successfully", category)
}

func (handler *Handler) deleteCategory(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, "Category deleted successfully")
}
