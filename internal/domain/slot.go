package domain

import "github.com/m04kA/PGS-QueueService/pkg/types"

// AvailableSlot represents a candidate start time with at least one free groomer
type AvailableSlot struct {
	Time                  types.TimeString
	EndTime               types.TimeString
	AvailableGroomerCount int
}

// HasCapacity возвращает true, если в слоте есть хотя бы один свободный грумер
func (s *AvailableSlot) HasCapacity() bool {
	return s.AvailableGroomerCount > 0
}
