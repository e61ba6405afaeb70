package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/barbershop-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC       *ucAppointment.CreateAppointment
	getUC          *ucAppointment.GetAppointment
	listUC         *ucAppointment.ListAppointments
	listByBarberUC *ucAppointment.ListAppointmentsByBarber
	updateUC       *ucAppointment.UpdateAppointment
	deleteUC       *ucAppointment.DeleteAppointment
	cancelUC       *ucAppointment.CancelAppointment
	availabilityUC *ucAppointment.GetAvailability
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	getUC *ucAppointment.GetAppointment,
	listUC *ucAppointment.ListAppointments,
	listByBarberUC *ucAppointment.ListAppointmentsByBarber,
	updateUC *ucAppointment.UpdateAppointment,
	deleteUC *ucAppointment.DeleteAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	availabilityUC *ucAppointment.GetAvailability,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:       createUC,
		getUC:          getUC,
		listUC:         listUC,
		listByBarberUC: listByBarberUC,
		updateUC:       updateUC,
		deleteUC:       deleteUC,
		cancelUC:       cancelUC,
		availabilityUC: availabilityUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientName  string `json:"client_name" binding:"required,min=2,max=100"`
	ClientPhone string `json:"client_phone" binding:"max=20"`
	ClientEmail string `json:"client_email" binding:"omitempty,email"`
	BarberID    uint   `json:"barber_id" binding:"required"`
	ServiceID   uint   `json:"service_id" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Notes       string `json:"notes" binding:"max=255"`
}

type UpdateAppointmentRequest struct {
	ClientName  *string `json:"client_name,omitempty"`
	ClientPhone *string `json:"client_phone,omitempty"`
	ClientEmail *string `json:"client_email,omitempty"`
	BarberID    *uint   `json:"barber_id,omitempty"`
	ServiceID   *uint   `json:"service_id,omitempty"`
	Date        *string `json:"date,omitempty"`
	Time        *string `json:"time,omitempty"`
	Status      *string `json:"status,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "invalid_request", "Corpo da requisição inválido.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		ClientEmail: req.ClientEmail,
		BarberID:    req.BarberID,
		ServiceID:   req.ServiceID,
		Date:        req.Date,
		Time:        req.Time,
		Notes:       req.Notes,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ap, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	in := ucAppointment.ListAppointmentsInput{
		Status: c.Query("status"),
		Date:   c.Query("date"),
		Offset: offset,
		Limit:  limit,
	}

	if raw := c.Query("barber_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			httperr.BadRequest(c, "invalid_barber_id", "barber_id inválido.")
			return
		}
		barberID := uint(parsed)
		in.BarberID = &barberID
	}

	apps, total, err := h.listUC.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, apps, total)
}

func (h *AppointmentHandler) ListByBarber(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	apps, err := h.listByBarberUC.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, apps)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "invalid_request", "Corpo da requisição inválido.")
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), id, ucAppointment.UpdateAppointmentInput{
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		ClientEmail: req.ClientEmail,
		BarberID:    req.BarberID,
		ServiceID:   req.ServiceID,
		Date:        req.Date,
		Time:        req.Time,
		Status:      req.Status,
		Notes:       req.Notes,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		httperr.FromError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Availability(c *gin.Context) {
	slots, err := h.availabilityUC.Execute(c.Request.Context(), c.Param("date"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, slots)
}
