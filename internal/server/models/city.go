package models

import "github.com/google/uuid"

// City — посевная запись города, по которой работает geo-гейт.
//
// Идентичность для проверки — пара (latitude, longitude) вместе со страной.
// Записи создаются только сидером, в рантайме не изменяются.
type City struct {
	ID        uuid.UUID
	Name      string
	Country   string
	Latitude  float64
	Longitude float64
}
