package appointment

import "github.com/BruksfildServices01/barbershop-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func InitialStatus() Status {
	return StatusPending
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Active indica se o agendamento ainda ocupa o horário na agenda.
func (s Status) Active() bool {
	return s.Valid() && s != StatusCancelled
}

// ===============================
// Validations
// ===============================

// transições permitidas: pending → confirmed → completed,
// cancelled a partir de pending ou confirmed
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

func CanTransition(from, to Status) error {
	if !to.Valid() {
		return httperr.ErrValidation("invalid_status", "Status inválido.")
	}
	if from == to {
		return nil
	}
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return httperr.ErrValidation("invalid_status_transition", "Transição de status não permitida.")
}

// CanCancel define se um agendamento pode ser cancelado
func CanCancel(current Status) error {
	return CanTransition(current, StatusCancelled)
}
