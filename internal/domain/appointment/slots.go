package appointment

import (
	"fmt"
	"time"
)

// ===============================
// Slot Grid
// ===============================

// Horário de atendimento: slots de 30 minutos entre 09:00 e 19:30
// inclusive (22 horários por dia).
const (
	OpeningHour  = 9
	ClosingHour  = 20
	SlotInterval = 30 * time.Minute
)

// SlotGrid retorna todos os horários possíveis do dia, em ordem
// crescente, no formato HH:MM.
func SlotGrid() []string {
	grid := make([]string, 0, (ClosingHour-OpeningHour)*2)
	for h := OpeningHour; h < ClosingHour; h++ {
		for _, m := range []int{0, 30} {
			grid = append(grid, fmt.Sprintf("%02d:%02d", h, m))
		}
	}
	return grid
}

// OnSlotGrid valida se um horário cai exatamente em um slot do
// expediente.
func OnSlotGrid(t time.Time) bool {
	if t.Hour() < OpeningHour || t.Hour() >= ClosingHour {
		return false
	}
	if t.Minute() != 0 && t.Minute() != 30 {
		return false
	}
	return t.Second() == 0 && t.Nanosecond() == 0
}

// AvailableSlots subtrai da grade os horários já ocupados, preservando
// a ordem crescente. Cada agendamento ocupa exatamente um slot; a
// duração do serviço não bloqueia slots vizinhos.
func AvailableSlots(booked []time.Time) []string {
	occupied := make(map[string]struct{}, len(booked))
	for _, t := range booked {
		occupied[t.Format("15:04")] = struct{}{}
	}

	available := make([]string, 0, (ClosingHour-OpeningHour)*2)
	for _, slot := range SlotGrid() {
		if _, taken := occupied[slot]; taken {
			continue
		}
		available = append(available, slot)
	}
	return available
}
