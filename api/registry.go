package api

// Response shapes served by an announcement registry. Kept in their own
// package so wallet and scanner code can depend on the wire types without
// pulling in the HTTP client.

type InfoResponseRegistry struct {
	Network         string `json:"network"`
	LatestID        uint64 `json:"latest_id"`
	ViewTagsEnabled bool   `json:"view_tags_enabled"`
}

type LatestIDResponseRegistry struct {
	LatestID uint64 `json:"latest_id"`
}

// AnnouncementRaw is one published stealth-address announcement as served
// by the registry. The embedded metadata fields are the protocol wire
// format; ID is registry-local and only used for paging.
type AnnouncementRaw struct {
	ID                 uint64 `json:"id"`
	StealthAddress     string `json:"stealthAddress"`
	EphemeralPublicKey string `json:"ephemeralPublicKey"`
	ViewTag            string `json:"viewTag"`
	Network            string `json:"network"`
	CreatedAt          string `json:"createdAt"`
}
