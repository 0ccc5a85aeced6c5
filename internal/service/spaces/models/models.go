package models

import (
	"time"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
)

// Request модели

// AmenityRef удобство пространства с количеством
type AmenityRef struct {
	AmenityID int64 `json:"amenityId"`
	Quantity  int   `json:"quantity"`
}

// CreateSpaceRequest запрос на создание пространства
type CreateSpaceRequest struct {
	Name        string       `json:"name"`
	TypeID      int64        `json:"typeId"`
	Floor       *string      `json:"floor,omitempty"`
	Zone        *string      `json:"zone,omitempty"`
	Capacity    int          `json:"capacity"`
	HourlyRate  float64      `json:"hourlyRate"`
	DailyRate   float64      `json:"dailyRate"`
	MonthlyRate float64      `json:"monthlyRate"`
	Description *string      `json:"description,omitempty"`
	Amenities   []AmenityRef `json:"amenities,omitempty"`
}

// UpdateSpaceRequest запрос на обновление пространства
type UpdateSpaceRequest struct {
	Name        string       `json:"name"`
	TypeID      int64        `json:"typeId"`
	Floor       *string      `json:"floor,omitempty"`
	Zone        *string      `json:"zone,omitempty"`
	Capacity    int          `json:"capacity"`
	HourlyRate  float64      `json:"hourlyRate"`
	DailyRate   float64      `json:"dailyRate"`
	MonthlyRate float64      `json:"monthlyRate"`
	Description *string      `json:"description,omitempty"`
	IsActive    bool         `json:"isActive"`
	Amenities   []AmenityRef `json:"amenities,omitempty"`
}

// ToDomainSpace конвертирует запрос в domain модель
func (r *CreateSpaceRequest) ToDomainSpace() *domain.Space {
	return &domain.Space{
		Name:        r.Name,
		TypeID:      r.TypeID,
		Floor:       r.Floor,
		Zone:        r.Zone,
		Capacity:    r.Capacity,
		HourlyRate:  r.HourlyRate,
		DailyRate:   r.DailyRate,
		MonthlyRate: r.MonthlyRate,
		Description: r.Description,
		IsActive:    true,
		Amenities:   toDomainAmenities(r.Amenities),
	}
}

func toDomainAmenities(refs []AmenityRef) []domain.SpaceAmenity {
	amenities := make([]domain.SpaceAmenity, len(refs))
	for i, ref := range refs {
		amenities[i] = domain.SpaceAmenity{
			AmenityID: ref.AmenityID,
			Quantity:  ref.Quantity,
		}
	}
	return amenities
}

// Response модели

// SpaceAmenityResponse удобство пространства в ответе
type SpaceAmenityResponse struct {
	AmenityID int64  `json:"amenityId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
}

// SpaceResponse ответ с данными пространства
type SpaceResponse struct {
	ID          int64                  `json:"id"`
	Name        string                 `json:"name"`
	TypeID      int64                  `json:"typeId"`
	Floor       *string                `json:"floor,omitempty"`
	Zone        *string                `json:"zone,omitempty"`
	Capacity    int                    `json:"capacity"`
	HourlyRate  float64                `json:"hourlyRate"`
	DailyRate   float64                `json:"dailyRate"`
	MonthlyRate float64                `json:"monthlyRate"`
	Description *string                `json:"description,omitempty"`
	IsActive    bool                   `json:"isActive"`
	Amenities   []SpaceAmenityResponse `json:"amenities"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}

// SpaceListResponse ответ со списком пространств
type SpaceListResponse struct {
	Spaces []SpaceResponse `json:"spaces"`
}

// RateSuggestionResponse предложение тарифов для нового часового тарифа
type RateSuggestionResponse struct {
	HourlyRate  float64 `json:"hourlyRate"`
	DailyRate   float64 `json:"dailyRate"`
	MonthlyRate float64 `json:"monthlyRate"`
}

// FromDomainSpace конвертирует domain модель в DTO
func FromDomainSpace(s *domain.Space) *SpaceResponse {
	if s == nil {
		return nil
	}

	amenities := make([]SpaceAmenityResponse, len(s.Amenities))
	for i, amenity := range s.Amenities {
		amenities[i] = SpaceAmenityResponse{
			AmenityID: amenity.AmenityID,
			Name:      amenity.Name,
			Quantity:  amenity.Quantity,
		}
	}

	return &SpaceResponse{
		ID:          s.ID,
		Name:        s.Name,
		TypeID:      s.TypeID,
		Floor:       s.Floor,
		Zone:        s.Zone,
		Capacity:    s.Capacity,
		HourlyRate:  s.HourlyRate,
		DailyRate:   s.DailyRate,
		MonthlyRate: s.MonthlyRate,
		Description: s.Description,
		IsActive:    s.IsActive,
		Amenities:   amenities,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// FromDomainSpaceList конвертирует список domain моделей в DTO
func FromDomainSpaceList(spaces []*domain.Space) *SpaceListResponse {
	resp := &SpaceListResponse{
		Spaces: make([]SpaceResponse, 0, len(spaces)),
	}

	for _, space := range spaces {
		if spaceResp := FromDomainSpace(space); spaceResp != nil {
			resp.Spaces = append(resp.Spaces, *spaceResp)
		}
	}

	return resp
}
