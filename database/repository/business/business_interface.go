package businessRepo

import (
	"context"
	"errors"

	"llcdirectory/models"
)

// ErrSourceUnavailable is returned by a DataSource whose backing data does not exist.
// It is the signal that selects the fallback source, not a failure.
var ErrSourceUnavailable = errors.New("business source unavailable")

// DataSource supplies local business records and the states they cover.
type DataSource interface {
	// Businesses returns every record with a usable state, in source order.
	Businesses(ctx context.Context) ([]models.LocalBusiness, error)
	// States returns the distinct states of the source, sorted ascending.
	States(ctx context.Context) ([]string, error)
}
