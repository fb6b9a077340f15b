package checkout

import (
	"time"

	checkoutUseCase "github.com/m04kA/SMC-HotelService/internal/usecase/checkout"
)

// CheckoutRequest HTTP request model
type CheckoutRequest struct {
	PaymentMethod string `json:"paymentMethod"` // cash, card или room_charge
	BookingID     *int64 `json:"bookingId,omitempty"`
}

// ItemResponse строка чека
type ItemResponse struct {
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

// CheckoutResponse HTTP response model
type CheckoutResponse struct {
	TransactionID int64          `json:"transactionId"`
	Subtotal      float64        `json:"subtotal"`
	Tax           float64        `json:"tax"`
	Total         float64        `json:"total"`
	PaymentMethod string         `json:"paymentMethod"`
	Status        string         `json:"status"`
	GuestID       *int64         `json:"guestId,omitempty"`
	BookingID     *int64         `json:"bookingId,omitempty"`
	Items         []ItemResponse `json:"items"`
	CreatedAt     string         `json:"createdAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkoutUseCase.Response) *CheckoutResponse {
	out := &CheckoutResponse{
		TransactionID: resp.TransactionID,
		Subtotal:      resp.Subtotal,
		Tax:           resp.Tax,
		Total:         resp.Total,
		PaymentMethod: resp.PaymentMethod,
		Status:        resp.Status,
		GuestID:       resp.GuestID,
		BookingID:     resp.BookingID,
		Items:         make([]ItemResponse, 0, len(resp.Items)),
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
	for _, item := range resp.Items {
		out.Items = append(out.Items, ItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}
	return out
}
