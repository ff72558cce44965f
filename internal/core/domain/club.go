package domain

// Club is a youth football club. Teams belong to clubs.
//
// Mutable fields are pointers: a full-replace update writes every column
// from the request body, and an omitted field becomes NULL in storage.
type Club struct {
	ClubID  int64   `json:"club_id"`
	Name    *string `json:"name"`
	LogoURL *string `json:"logo_url"`
	City    *string `json:"city"`
}
