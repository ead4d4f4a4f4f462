package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tompettersson/reparatur-formular/internal/http/middleware"
	"github.com/tompettersson/reparatur-formular/internal/http/validation"
	"github.com/tompettersson/reparatur-formular/internal/modules/orders"
	"github.com/tompettersson/reparatur-formular/internal/shared/apperr"
	"github.com/tompettersson/reparatur-formular/pkg/view"
)

type OrdersHandler struct {
	Svc  *orders.Service
	Repo *orders.Repo
}

func NewOrdersHandler(svc *orders.Service, repo *orders.Repo) *OrdersHandler {
	return &OrdersHandler{Svc: svc, Repo: repo}
}

type createOrderRequest struct {
	Customer CustomerPayload `json:"customer" binding:"required"`
	Items    []ItemPayload   `json:"items" binding:"required,dive"`
}

func (h *OrdersHandler) Create(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fields := validation.FromBindError(err, &req)
		middleware.Fail(c, apperr.InvalidErr("Bitte überprüfen Sie Ihre Eingaben.", fields))
		return
	}

	in := orders.CreateInput{Customer: req.Customer.Input()}
	for _, it := range req.Items {
		in.Items = append(in.Items, it.Input())
	}

	o, err := h.Svc.Create(c.Request.Context(), in)
	if err != nil {
		var verr *orders.ValidationError
		if errors.As(err, &verr) {
			middleware.Fail(c, apperr.InvalidErr("Bitte überprüfen Sie Ihre Eingaben.", verr.Fields))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	_, items, err := h.Repo.GetWithItems(c.Request.Context(), o.ID)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusCreated, view.Summary(o, items))
}

type draftRequest struct {
	Email     string          `json:"email" binding:"required,email"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Payload   json.RawMessage `json:"payload"`
}

// Draft stores a half-filled wizard so the customer can resume later. Only
// the email address is mandatory.
func (h *OrdersHandler) Draft(c *gin.Context) {
	var req draftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fields := validation.FromBindError(err, &req)
		middleware.Fail(c, apperr.InvalidErr("Bitte überprüfen Sie Ihre Eingaben.", fields))
		return
	}

	o, err := h.Svc.SaveDraft(c.Request.Context(), orders.CustomerInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}, req.Payload)
	if err != nil {
		var verr *orders.ValidationError
		if errors.As(err, &verr) {
			middleware.Fail(c, apperr.InvalidErr("Bitte überprüfen Sie Ihre Eingaben.", verr.Fields))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": o.ID, "status": string(o.Status)})
}

// Get serves the confirmation page: the order as the customer submitted it,
// no internal notes or history.
func (h *OrdersHandler) Get(c *gin.Context) {
	o, items, err := h.Repo.GetWithItems(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, orders.ErrOrderNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Auftrag nicht gefunden."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, view.Summary(o, items))
}
