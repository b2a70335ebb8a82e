package get_calendar

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/dmukh/SPJ-VenueService/internal/api/handlers"
	getCalendar "github.com/dmukh/SPJ-VenueService/internal/usecase/get_calendar"
	"github.com/dmukh/SPJ-VenueService/pkg/ptr"
)

const (
	msgInvalidYear  = "invalid year"
	msgInvalidMonth = "invalid month, expected 1-12"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar/{year}/{month}
// Опциональный query-параметр category фильтрует бронирования в сетке
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	year, err := strconv.Atoi(vars["year"])
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	month, err := strconv.Atoi(vars["month"])
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	req := &getCalendar.Request{
		Year:  year,
		Month: time.Month(month),
	}
	if category := r.URL.Query().Get("category"); category != "" {
		req.Category = ptr.Ptr(category)
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrInvalidInput):
			h.logger.Warn("GET /calendar - Invalid input: year=%d, month=%d", year, month)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		default:
			h.logger.Error("GET /calendar - Failed to build calendar: year=%d, month=%d, error=%v",
				year, month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar - Built view: year=%d, month=%d, weeks=%d",
		year, month, len(result.View.Weeks))
	handlers.RespondJSON(w, http.StatusOK, FromMonthView(result.View))
}
