package domain

// Location is a lookup-or-create row keyed by the (district, county, province)
// triple. At most one row exists per distinct triple; Region is a denormalized
// zone attribute that may be corrected after creation when a later write
// supplies a different value for the same triple.
type Location struct {
	LocationID int64   `json:"locationID"`
	District   string  `json:"district"`
	County     string  `json:"county"`
	Province   string  `json:"province"`
	Region     *string `json:"region,omitempty"`
	AuditFields
}
