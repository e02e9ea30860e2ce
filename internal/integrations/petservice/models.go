package petservice

// Pet is the pet profile served by PetService.
type Pet struct {
	ID      int64  `json:"id"`
	OwnerID int64  `json:"owner_id"`
	Name    string `json:"name"`
	Species string `json:"species"` // dog, cat, bird, ...
	Breed   string `json:"breed"`
	Weight  *float64 `json:"weight_kg,omitempty"`
	Notes   string `json:"notes"`
}

// ErrorResponse is PetService's error envelope.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
