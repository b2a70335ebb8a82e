package get_draft

import (
	"net/http"

	"github.com/dmukh/SPJ-VenueService/internal/api/handlers"
	"github.com/dmukh/SPJ-VenueService/pkg/ptr"
)

type Handler struct {
	service DraftsService
	logger  Logger
}

func NewHandler(service DraftsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// GetDraftResponse HTTP ответ с черновиком сообщения
// gmail_url пустой, когда черновик - placeholder или chat-стиль без темы
type GetDraftResponse struct {
	Draft    string `json:"draft"`
	GmailURL string `json:"gmail_url,omitempty"`
}

// Handle GET /api/v1/draft
// Опциональный query-параметр category выбирает последнюю запись категории
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var category *string
	if c := r.URL.Query().Get("category"); c != "" {
		category = ptr.Ptr(c)
	}

	result, err := h.service.Generate(r.Context(), category)
	if err != nil {
		h.logger.Error("GET /draft - Failed to generate draft: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /draft - Draft generated (%d bytes)", len(result.Draft))
	handlers.RespondJSON(w, http.StatusOK, &GetDraftResponse{
		Draft:    result.Draft,
		GmailURL: result.GmailURL,
	})
}
