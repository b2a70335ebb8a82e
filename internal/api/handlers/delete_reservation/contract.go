package delete_reservation

import (
	"context"

	"github.com/dmukh/SPJ-VenueService/internal/service/reservations/models"
)

type ReservationsService interface {
	DeleteAt(ctx context.Context, req *models.DeleteRequest) (*models.DeleteResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
