package models

// Host is the one-to-one host profile of a user; ID equals the owning user's ID.
type Host struct {
	ID         int64   `json:"id" db:"id"`
	AgencyName *string `json:"agencyName" db:"agency_name"`
	Bio        *string `json:"bio" db:"bio"`
	Events     []Event `json:"events" db:"-"`
}

// HostInfo carries the editable host profile fields.
type HostInfo struct {
	AgencyName *string
	Bio        *string
}
