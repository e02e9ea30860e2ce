package caregiverservice

// Caregiver is the caregiver profile served by CaregiverService.
type Caregiver struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	IsActive bool     `json:"is_active"`
	Services []string `json:"services"` // service types the caregiver offers
	Timezone string   `json:"timezone"`
}

// Offers reports whether the caregiver provides the given service type.
func (c *Caregiver) Offers(serviceType string) bool {
	for _, s := range c.Services {
		if s == serviceType {
			return true
		}
	}
	return false
}

// ErrorResponse is CaregiverService's error envelope.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
