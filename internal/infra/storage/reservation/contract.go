package reservation

import "github.com/dmukh/SPJ-VenueService/pkg/txmanager"

// DBExecutor общий интерфейс для *sql.DB и *sql.Tx,
// переиспользуем определение из txmanager
type DBExecutor = txmanager.DBExecutor
