package models

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// CreateGuestRequest запрос на создание гостя
type CreateGuestRequest struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

// GuestResponse ответ с данными гостя
type GuestResponse struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	FullName  string    `json:"fullName"`
	Email     *string   `json:"email,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// GuestListResponse ответ со списком гостей
type GuestListResponse struct {
	Guests []GuestResponse `json:"guests"`
}

// FromDomainGuest конвертирует domain модель в DTO
func FromDomainGuest(g *domain.Guest) *GuestResponse {
	if g == nil {
		return nil
	}
	return &GuestResponse{
		ID:        g.ID,
		FirstName: g.FirstName,
		LastName:  g.LastName,
		FullName:  g.FullName(),
		Email:     g.Email,
		Phone:     g.Phone,
		CreatedAt: g.CreatedAt,
	}
}

// FromDomainGuestList конвертирует список domain моделей в DTO
func FromDomainGuestList(guestList []*domain.Guest) *GuestListResponse {
	resp := &GuestListResponse{
		Guests: make([]GuestResponse, 0, len(guestList)),
	}
	for _, g := range guestList {
		if guestResp := FromDomainGuest(g); guestResp != nil {
			resp.Guests = append(resp.Guests, *guestResp)
		}
	}
	return resp
}
