package get_draft

import (
	"context"

	"github.com/dmukh/SPJ-VenueService/internal/service/drafts"
)

type DraftsService interface {
	Generate(ctx context.Context, category *string) (*drafts.Result, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
