package models

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// CategoryResponse категория товаров
type CategoryResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	SortOrder int    `json:"sortOrder"`
}

// CategoryListResponse список категорий
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ProductResponse товар в каталоге POS
type ProductResponse struct {
	ID          int64   `json:"id"`
	CategoryID  int64   `json:"categoryId"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description *string `json:"description,omitempty"`
}

// ProductListResponse список товаров
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
}

// GetProductsRequest параметры запроса каталога
type GetProductsRequest struct {
	CategoryID *int64
}

// CartItemResponse строка корзины
type CartItemResponse struct {
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"lineTotal"`
}

// CartResponse корзина с пересчитанными итогами
type CartResponse struct {
	Items    []CartItemResponse `json:"items"`
	Subtotal float64            `json:"subtotal"`
	Tax      float64            `json:"tax"`
	Total    float64            `json:"total"`
}

// ChargeTargetResponse активное бронирование как цель для room charge
type ChargeTargetResponse struct {
	BookingID     int64     `json:"bookingId"`
	BookingNumber string    `json:"bookingNumber"`
	GuestID       int64     `json:"guestId"`
	GuestName     string    `json:"guestName"`
	RoomID        int64     `json:"roomId"`
	RoomNumber    string    `json:"roomNumber"`
	CheckInDate   time.Time `json:"checkInDate"`
	CheckOutDate  time.Time `json:"checkOutDate"`
	Status        string    `json:"status"`
}

// SearchChargeTargetsResponse результат поиска по активным бронированиям.
// TotalActive позволяет отличить "ничего не совпало" от "активных
// бронирований нет вовсе".
type SearchChargeTargetsResponse struct {
	Matches     []ChargeTargetResponse `json:"matches"`
	TotalActive int                    `json:"totalActive"`
}

// FromDomainCategory конвертирует domain модель в DTO
func FromDomainCategory(c *domain.ProductCategory) *CategoryResponse {
	if c == nil {
		return nil
	}
	return &CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		SortOrder: c.SortOrder,
	}
}

// FromDomainProduct конвертирует domain модель в DTO
func FromDomainProduct(p *domain.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		ID:          p.ID,
		CategoryID:  p.CategoryID,
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
	}
}

// FromDomainCart собирает ответ корзины из строк и итогов
func FromDomainCart(items []domain.CartItem, totals domain.CartTotals) *CartResponse {
	resp := &CartResponse{
		Items:    make([]CartItemResponse, 0, len(items)),
		Subtotal: totals.Subtotal,
		Tax:      totals.Tax,
		Total:    totals.Total,
	}
	for _, item := range items {
		resp.Items = append(resp.Items, CartItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			LineTotal: item.UnitPrice * float64(item.Quantity),
		})
	}
	return resp
}
