package domain

import "time"

// GroomerSpecialty специализация грумера
type GroomerSpecialty string

const (
	SpecialtyDog  GroomerSpecialty = "dog"
	SpecialtyCat  GroomerSpecialty = "cat"
	SpecialtyBoth GroomerSpecialty = "both"
)

// Groomer represents a staff member performing grooming services
type Groomer struct {
	ID             int64
	Name           string
	Nickname       *string
	Phone          *string
	Specialties    []string // значения GroomerSpecialty
	ExperienceTier *string
	IsActive       bool // неактивные грумеры исключаются из всей логики доступности
	HireDate       *time.Time
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
