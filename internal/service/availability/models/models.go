package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pawspace/PetCare-BookingService/internal/domain"
	"github.com/pawspace/PetCare-BookingService/pkg/types"
)

var (
	// ErrUnknownWeekday is returned for a weekday key that is not a day name.
	ErrUnknownWeekday = errors.New("unknown weekday")
)

// weekdayNames maps lowercase day names to time.Weekday. Day names are
// the wire format; numeric weekdays never cross the API boundary.
var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// TimeRangeDTO is one open range on the wire.
type TimeRangeDTO struct {
	Start string `json:"start"` // "09:00"
	End   string `json:"end"`   // "17:00"
}

// WeeklyPatternDTO is the wire form of a weekly pattern, keyed by
// lowercase day name. Days without availability are omitted.
type WeeklyPatternDTO map[string][]TimeRangeDTO

// UpdateAvailabilityRequest replaces a caregiver's weekly pattern.
type UpdateAvailabilityRequest struct {
	UserID      int64            `json:"userId"`
	CaregiverID int64            `json:"caregiverId"`
	Pattern     WeeklyPatternDTO `json:"pattern"`
}

// AvailabilityResponse returns a caregiver's weekly pattern.
type AvailabilityResponse struct {
	CaregiverID int64            `json:"caregiverId"`
	Pattern     WeeklyPatternDTO `json:"pattern"`
}

// ToDomainPattern converts the wire pattern to the domain model.
// Shape errors (unknown day names) are reported here; range validation
// belongs to domain.WeeklyPattern.Validate.
func (p WeeklyPatternDTO) ToDomainPattern() (domain.WeeklyPattern, error) {
	pattern := make(domain.WeeklyPattern, len(p))

	for name, ranges := range p {
		day, ok := weekdayNames[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownWeekday, name)
		}

		converted := make([]domain.TimeRange, len(ranges))
		for i, r := range ranges {
			converted[i] = domain.TimeRange{
				Start: types.TimeString(r.Start),
				End:   types.TimeString(r.End),
			}
		}
		pattern[day] = converted
	}

	return pattern, nil
}

// FromDomainPattern converts a domain pattern to the wire form.
func FromDomainPattern(pattern domain.WeeklyPattern) WeeklyPatternDTO {
	dto := make(WeeklyPatternDTO)

	for name, day := range weekdayNames {
		ranges := pattern[day]
		if len(ranges) == 0 {
			continue
		}

		converted := make([]TimeRangeDTO, len(ranges))
		for i, r := range ranges {
			converted[i] = TimeRangeDTO{
				Start: r.Start.String(),
				End:   r.End.String(),
			}
		}
		dto[name] = converted
	}

	return dto
}
