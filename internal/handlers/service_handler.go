package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/httpresp"
	ucservice "github.com/BruksfildServices01/barbershop-api/internal/usecase/service"
)

type ServiceHandler struct {
	svc *ucservice.Service
}

func NewServiceHandler(svc *ucservice.Service) *ServiceHandler {
	return &ServiceHandler{svc: svc}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=100"`
	DurationMin int     `json:"duration_min" binding:"required,min=1"`
	Price       float64 `json:"price" binding:"required,gt=0"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name,omitempty"`
	DurationMin *int     `json:"duration_min,omitempty"`
	Price       *float64 `json:"price,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "invalid_request", "Corpo da requisição inválido.")
		return
	}

	svc, err := h.svc.Create(c.Request.Context(), ucservice.CreateInput{
		Name:        req.Name,
		DurationMin: req.DurationMin,
		Price:       req.Price,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, svc)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	svc, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, svc)
}

func (h *ServiceHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	services, total, err := h.svc.List(c.Request.Context(), offset, limit)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, services, total)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "invalid_request", "Corpo da requisição inválido.")
		return
	}

	svc, err := h.svc.Update(c.Request.Context(), id, ucservice.UpdateInput{
		Name:        req.Name,
		DurationMin: req.DurationMin,
		Price:       req.Price,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, svc)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
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
