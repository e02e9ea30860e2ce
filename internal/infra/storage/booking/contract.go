package booking

import (
	"github.com/pawspace/PetCare-BookingService/pkg/dbmetrics"
)

// Reuse the dbmetrics executor interfaces so the repository accepts either
// a plain *sql.DB or the instrumented wrapper.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
