package create_reservation

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmukh/SPJ-VenueService/internal/api/handlers"
	createReservation "github.com/dmukh/SPJ-VenueService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "invalid request body"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq := req.ToUseCaseRequest()

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrSlotConflict):
			h.logger.Warn("POST /reservations - Slot conflict: venue=%q, date=%s, slot=%q",
				req.Venue, req.Date, req.TimeSlot)
			handlers.RespondConflict(w, reasonFromError(err, createReservation.ErrSlotConflict))

		case errors.Is(err, createReservation.ErrVenueClosed):
			h.logger.Warn("POST /reservations - Venue closed by policy: venue=%q, date=%s",
				req.Venue, req.Date)
			handlers.RespondConflict(w, reasonFromError(err, createReservation.ErrVenueClosed))

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, reasonFromError(err, createReservation.ErrInvalidInput))

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: venue=%q, date=%s, error=%v",
				req.Venue, req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	message := fmt.Sprintf("Confirmed: Slot secured for %s on %s.", result.Venue, result.Date)
	response := FromUseCaseResponse(result, message)

	h.logger.Info("POST /reservations - Reservation created: id=%d, venue=%q, date=%s, slot=%q",
		result.ID, result.Venue, result.Date, result.TimeSlot)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

// reasonFromError извлекает человекочитаемую причину из обернутой ошибки
// Причина конфликта или закрытия формируется резолвером и показывается как есть
func reasonFromError(err error, sentinel error) string {
	msg := err.Error()
	prefix := sentinel.Error() + ": "
	if strings.HasPrefix(msg, prefix) {
		return strings.TrimPrefix(msg, prefix)
	}
	return msg
}
