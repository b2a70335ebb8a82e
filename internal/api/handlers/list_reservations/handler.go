package list_reservations

import (
	"net/http"

	"github.com/dmukh/SPJ-VenueService/internal/api/handlers"
	"github.com/dmukh/SPJ-VenueService/internal/service/reservations/models"
	"github.com/dmukh/SPJ-VenueService/pkg/ptr"
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

// Handle GET /api/v1/reservations
// Опциональный query-параметр category фильтрует список
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListRequest{}
	if category := r.URL.Query().Get("category"); category != "" {
		req.Category = ptr.Ptr(category)
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /reservations - Failed to list reservations: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reservations - Listed %d reservations", len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
