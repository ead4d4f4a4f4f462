package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tompettersson/reparatur-formular/internal/http/middleware"
	"github.com/tompettersson/reparatur-formular/internal/shared/apperr"
	"github.com/tompettersson/reparatur-formular/internal/storage"
)

// UploadsHandler accepts shoe photos during the intake wizard, before the
// order exists. The returned URL is sent back with the order payload.
type UploadsHandler struct {
	Store storage.Storage
}

func NewUploadsHandler(store storage.Storage) *UploadsHandler {
	return &UploadsHandler{Store: store}
}

func (h *UploadsHandler) Create(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		middleware.Fail(c, apperr.InvalidErr("Bitte wählen Sie eine Datei aus.", map[string]string{
			"file": "Keine Datei übermittelt.",
		}))
		return
	}
	if file.Size > storage.MaxPhotoSize {
		middleware.Fail(c, apperr.InvalidErr("Die Datei ist zu groß (max. 10 MB).", nil))
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !storage.AllowedImage(contentType) {
		middleware.Fail(c, apperr.InvalidErr("Nur Bilddateien (PNG, JPEG, WebP, GIF) sind erlaubt.", nil))
		return
	}

	src, err := file.Open()
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	defer src.Close()

	res, err := h.Store.Put(c.Request.Context(), src, storage.PutInput{
		Filename:    file.Filename,
		ContentType: contentType,
		Size:        file.Size,
	})
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"key": res.Key, "url": res.URL})
}
