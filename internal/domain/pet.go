package domain

import "time"

// PetSpecies вид питомца
type PetSpecies string

const (
	SpeciesDog   PetSpecies = "dog"
	SpeciesCat   PetSpecies = "cat"
	SpeciesOther PetSpecies = "other"
)

// Pet represents a customer's pet
// Данные питомца принадлежат клиенту; запись очереди ссылается на питомца по ID
type Pet struct {
	ID              int64
	OwnerCustomerID int64
	Name            string
	Species         PetSpecies
	Breed           *string
	WeightKg        float64 // обновляется при чек-ине по фактическому взвешиванию
	Color           *string
	BirthDate       *time.Time
	Notes           *string
	IsLongHair      bool // влияет на тарификацию купания кошек
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsCat возвращает true для кошек (для них действует весовая тарификация)
func (p *Pet) IsCat() bool {
	return p.Species == SpeciesCat
}
