package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/httpresp"
	ucbarber "github.com/BruksfildServices01/barbershop-api/internal/usecase/barber"
)

type BarberHandler struct {
	svc *ucbarber.Service
}

func NewBarberHandler(svc *ucbarber.Service) *BarberHandler {
	return &BarberHandler{svc: svc}
}

// --------- Requests ---------

type CreateBarberRequest struct {
	Name  string `json:"name" binding:"required,min=2,max=100"`
	Phone string `json:"phone" binding:"max=20"`
}

type UpdateBarberRequest struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// --------- Handlers ---------

func (h *BarberHandler) Create(c *gin.Context) {
	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "invalid_request", "Corpo da requisição inválido.")
		return
	}

	barber, err := h.svc.Create(c.Request.Context(), ucbarber.CreateInput{
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, barber)
}

func (h *BarberHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	barber, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, barber)
}

func (h *BarberHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	barbers, total, err := h.svc.List(c.Request.Context(), offset, limit)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, barbers, total)
}

func (h *BarberHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "invalid_request", "Corpo da requisição inválido.")
		return
	}

	barber, err := h.svc.Update(c.Request.Context(), id, ucbarber.UpdateInput{
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, barber)
}

func (h *BarberHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		httperr.FromError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
