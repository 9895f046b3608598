package models

// Location is the persistence shape of a location row. The
// (district, county, province) triple carries a unique index.
type Location struct {
	LocationID int64   `db:"location_id"`
	District   string  `db:"district"`
	County     string  `db:"county"`
	Province   string  `db:"province"`
	Region     *string `db:"region"`
	AuditFields
}
