package repositories

import (
	"context"

	"github.com/cabindev/sdnfutsal/internal/core/domain"
)

// LocationResolver defines the lookup-or-create contract for locations.
type LocationResolver interface {
	// ResolveLocation atomically finds or creates the location row for the
	// (district, county, province) triple, correcting a drifted region value
	// in place, and returns the resolved row.
	ResolveLocation(ctx context.Context, district, county, province string, region *string) (*domain.Location, error)
}

// LocationReader defines read operations for location data
type LocationReader interface {
	// FindLocationByID retrieves a location by its ID.
	FindLocationByID(ctx context.Context, locationID int64) (*domain.Location, error)
}

// LocationRepositoryFacade combines all location-related repository interfaces
type LocationRepositoryFacade interface {
	LocationResolver
	LocationReader
}
