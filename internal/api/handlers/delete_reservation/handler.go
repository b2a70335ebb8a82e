package delete_reservation

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dmukh/SPJ-VenueService/internal/api/handlers"
	"github.com/dmukh/SPJ-VenueService/internal/service/reservations"
	"github.com/dmukh/SPJ-VenueService/internal/service/reservations/models"
	"github.com/dmukh/SPJ-VenueService/pkg/ptr"
)

const (
	msgInvalidIndex        = "invalid reservation index"
	msgReservationNotFound = "reservation not found"
)

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// DeleteReservationResponse HTTP ответ об удалении
type DeleteReservationResponse struct {
	Message string `json:"message"`
}

// Handle DELETE /api/v1/reservations/{index}
//
// index - позиция с нуля в отображаемом списке, с тем же фильтром category,
// что и при показе списка. Идентификаторы записей клиенту не нужны
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	index, err := strconv.Atoi(vars["index"])
	if err != nil {
		h.logger.Warn("DELETE /reservations/{index} - Invalid index: %v", err)
		handlers.RespondBadRequest(w, msgInvalidIndex)
		return
	}

	req := &models.DeleteRequest{Index: index}
	if category := r.URL.Query().Get("category"); category != "" {
		req.Category = ptr.Ptr(category)
	}

	result, err := h.service.DeleteAt(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("DELETE /reservations/{index} - Invalid input: index=%d", index)
			handlers.RespondBadRequest(w, msgInvalidIndex)

		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("DELETE /reservations/{index} - Not found: index=%d", index)
			handlers.RespondNotFound(w, msgReservationNotFound)

		default:
			h.logger.Error("DELETE /reservations/{index} - Failed to delete: index=%d, error=%v", index, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /reservations/{index} - Removed reservation: index=%d, venue=%q, date=%s",
		index, result.Venue, result.Date)
	handlers.RespondJSON(w, http.StatusOK, &DeleteReservationResponse{
		Message: fmt.Sprintf("Removed booking for %s on %s.", result.Venue, result.Date),
	})
}
