// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

package upload

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wiwekaitech/wiweka/internal/platform/apperr"
	"github.com/wiwekaitech/wiweka/internal/platform/middleware"
	"github.com/wiwekaitech/wiweka/internal/platform/respond"
	"github.com/wiwekaitech/wiweka/internal/platform/sec"
)

// FormField is the multipart field carrying the image.
const FormField = "file"

// multipartOverhead covers boundaries and part headers around the file.
const multipartOverhead = 1 << 20

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// AdminRoutes mounts the upload endpoints. The router must already authenticate.
func (handler *Handler) AdminRoutes(router chi.Router) {
	router.Group(func(writeRoute chi.Router) {
		writeRoute.Use(middleware.Authorize(sec.ContentWrite))

		writeRoute.Post("/image", handler.uploadImage)
		writeRoute.Post("/blog-image", handler.uploadImage)
	})
}

func (handler *Handler) uploadImage(writer http.ResponseWriter, request *http.Request) {
	request.Body = http.MaxBytesReader(writer, request.Body, MaxImageBytes+multipartOverhead)

	file, header, err := request.FormFile(FormField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respond.Error(writer, request, apperr.FileTooLarge(MaxImageBytes))
			return
		}
		respond.Error(writer, request, apperr.ValidationError("Validation failed", apperr.FieldError{
			Field:   FormField,
			Message: "This field is required",
		}))
		return
	}
	defer file.Close()

	stored, err := handler.service.StoreImage(request.Context(), header.Filename, file)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OKWithMessage(writer, "Image uploaded successfully", stored)
}
