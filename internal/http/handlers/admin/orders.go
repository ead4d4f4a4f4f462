package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tompettersson/reparatur-formular/internal/http/handlers"
	"github.com/tompettersson/reparatur-formular/internal/http/middleware"
	"github.com/tompettersson/reparatur-formular/internal/http/validation"
	"github.com/tompettersson/reparatur-formular/internal/modules/orders"
	"github.com/tompettersson/reparatur-formular/internal/shared/apperr"
	"github.com/tompettersson/reparatur-formular/pkg/view"
)

const listPageSize = 30

type OrdersHandler struct {
	Repo *orders.Repo
	Svc  *orders.AdminService
}

func NewOrdersHandler(repo *orders.Repo, svc *orders.AdminService) *OrdersHandler {
	return &OrdersHandler{Repo: repo, Svc: svc}
}

func (h *OrdersHandler) List(c *gin.Context) {
	page := 1
	if p, err := strconv.Atoi(c.Query("page")); err == nil && p > 0 {
		page = p
	}

	res, err := h.Repo.AdminList(c.Request.Context(), orders.AdminListParams{
		Q:        c.Query("q"),
		Status:   c.Query("status"),
		Page:     page,
		PageSize: listPageSize,
	})
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, view.AdminList(res, page, listPageSize))
}

func (h *OrdersHandler) Detail(c *gin.Context) {
	d, err := h.Repo.GetDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, orders.ErrOrderNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Auftrag nicht gefunden."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, view.AdminDetail(d))
}

type transitionRequest struct {
	Status          string `json:"status" binding:"required"`
	Comment         string `json:"comment"`
	TrackingCarrier string `json:"trackingCarrier"`
	TrackingNumber  string `json:"trackingNumber"`
}

func (h *OrdersHandler) Transition(c *gin.Context) {
	staff, ok := middleware.CurrentStaff(c)
	if !ok {
		middleware.Fail(c, apperr.UnauthorizedErr("Anmeldung erforderlich."))
		return
	}

	var req transitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fields := validation.FromBindError(err, &req)
		middleware.Fail(c, apperr.InvalidErr("Bitte überprüfen Sie Ihre Eingaben.", fields))
		return
	}

	target, valid := orders.ParseStatus(req.Status)
	if !valid {
		middleware.Fail(c, apperr.InvalidErr("Unbekannter Status.", map[string]string{
			"status": "Unbekannter Status: " + req.Status,
		}))
		return
	}

	o, err := h.Svc.Transition(c.Request.Context(), orders.TransitionInput{
		OrderID:         c.Param("id"),
		Actor:           staff.Email,
		Target:          target,
		Comment:         req.Comment,
		TrackingCarrier: req.TrackingCarrier,
		TrackingNumber:  req.TrackingNumber,
	})
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrOrderNotFound):
			middleware.Fail(c, apperr.NotFoundErr("Auftrag nicht gefunden."))
		case errors.Is(err, orders.ErrInvalidTransition):
			middleware.Fail(c, apperr.ConflictErr("Dieser Statuswechsel ist nicht möglich."))
		default:
			middleware.Fail(c, apperr.Wrap(err))
		}
		return
	}

	next := o.Status.NextStatuses()
	nextStr := make([]string, len(next))
	for i, s := range next {
		nextStr[i] = string(s)
	}
	c.JSON(http.StatusOK, gin.H{
		"id":           o.ID,
		"status":       string(o.Status),
		"statusLabel":  o.Status.Label(),
		"nextStatuses": nextStr,
	})
}

type editItemPayload struct {
	ID string `json:"id" binding:"required"`
	handlers.ItemPayload
}

type updateRequest struct {
	Customer handlers.CustomerPayload `json:"customer" binding:"required"`
	Items    []editItemPayload        `json:"items" binding:"required,dive"`
}

func (h *OrdersHandler) Update(c *gin.Context) {
	staff, ok := middleware.CurrentStaff(c)
	if !ok {
		middleware.Fail(c, apperr.UnauthorizedErr("Anmeldung erforderlich."))
		return
	}

	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fields := validation.FromBindError(err, &req)
		middleware.Fail(c, apperr.InvalidErr("Bitte überprüfen Sie Ihre Eingaben.", fields))
		return
	}

	in := orders.UpdateInput{
		OrderID:  c.Param("id"),
		Actor:    staff.Email,
		Customer: req.Customer.Input(),
	}
	for _, it := range req.Items {
		in.Items = append(in.Items, orders.EditItem{ID: it.ID, ItemInput: it.Input()})
	}

	o, err := h.Svc.Update(c.Request.Context(), in)
	if err != nil {
		var verr *orders.ValidationError
		switch {
		case errors.As(err, &verr):
			middleware.Fail(c, apperr.InvalidErr("Bitte überprüfen Sie Ihre Eingaben.", verr.Fields))
		case errors.Is(err, orders.ErrOrderNotFound):
			middleware.Fail(c, apperr.NotFoundErr("Auftrag nicht gefunden."))
		case errors.Is(err, orders.ErrNotEditable):
			middleware.Fail(c, apperr.ConflictErr("Abgeschlossene Aufträge können nicht bearbeitet werden."))
		default:
			middleware.Fail(c, apperr.Wrap(err))
		}
		return
	}

	d, err := h.Repo.GetDetail(c.Request.Context(), o.ID)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, view.AdminDetail(d))
}

// Print returns the workshop-ticket data, internal notes included.
func (h *OrdersHandler) Print(c *gin.Context) {
	d, err := h.Repo.GetDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, orders.ErrOrderNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Auftrag nicht gefunden."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, view.Print(d))
}
