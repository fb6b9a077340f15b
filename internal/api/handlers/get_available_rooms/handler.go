package get_available_rooms

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/domain"
	getAvailableRooms "github.com/m04kA/SMC-HotelService/internal/usecase/get_available_rooms"
)

const (
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange = "некорректный диапазон дат"
	msgMissingDates = "параметры checkIn и checkOut обязательны"
)

type Handler struct {
	useCase GetAvailableRoomsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableRoomsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/available?checkIn=2025-12-15&checkOut=2025-12-18
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	checkInStr := query.Get("checkIn")
	checkOutStr := query.Get("checkOut")
	if checkInStr == "" || checkOutStr == "" {
		h.logger.Warn("GET /rooms/available - Missing date params")
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	checkIn, err := time.Parse(domain.DateFormat, checkInStr)
	if err != nil {
		h.logger.Warn("GET /rooms/available - Invalid checkIn: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	checkOut, err := time.Parse(domain.DateFormat, checkOutStr)
	if err != nil {
		h.logger.Warn("GET /rooms/available - Invalid checkOut: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableRooms.Request{
		CheckIn:  checkIn,
		CheckOut: checkOut,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableRooms.ErrInvalidRange):
			h.logger.Warn("GET /rooms/available - Invalid range: checkIn=%s, checkOut=%s", checkInStr, checkOutStr)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, getAvailableRooms.ErrInvalidInput):
			h.logger.Warn("GET /rooms/available - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /rooms/available - Failed to get available rooms: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/available - %d rooms available for %s..%s",
		len(result.Rooms), checkInStr, checkOutStr)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
