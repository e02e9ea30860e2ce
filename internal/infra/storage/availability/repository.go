package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/pawspace/PetCare-BookingService/internal/domain"
	"github.com/pawspace/PetCare-BookingService/pkg/dbmetrics"
	"github.com/pawspace/PetCare-BookingService/pkg/psqlbuilder"
	"github.com/pawspace/PetCare-BookingService/pkg/types"
)

type DBExecutor = dbmetrics.DBExecutor

// Repository persists caregiver weekly availability patterns.
// Each row is one open range on one weekday; the pattern is the set of
// rows for a caregiver.
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWeeklyPattern loads a caregiver's pattern. A caregiver with no rows
// gets an empty pattern, not an error.
func (r *Repository) GetWeeklyPattern(ctx context.Context, caregiverID int64) (domain.WeeklyPattern, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"weekday",
		"start_time",
		"end_time",
	).
		From("caregiver_availability").
		Where(squirrel.Eq{"caregiver_id": caregiverID}).
		OrderBy("weekday ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWeeklyPattern - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeeklyPattern - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	pattern := make(domain.WeeklyPattern)
	for rows.Next() {
		var weekday int
		var start, end types.TimeString

		if err := rows.Scan(&weekday, &start, &end); err != nil {
			return nil, fmt.Errorf("%w: GetWeeklyPattern - scan row: %v", ErrScanRow, err)
		}

		day := time.Weekday(weekday)
		pattern[day] = append(pattern[day], domain.TimeRange{Start: start, End: end})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWeeklyPattern - rows error: %v", ErrScanRow, err)
	}

	return pattern, nil
}

// ReplaceWeeklyPattern swaps a caregiver's pattern for a new one.
// Delete plus insert, meant to run inside a transaction so readers never
// observe a half-replaced pattern. The pattern must already be validated.
func (r *Repository) ReplaceWeeklyPattern(ctx context.Context, caregiverID int64, pattern domain.WeeklyPattern) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("caregiver_availability").
		Where(squirrel.Eq{"caregiver_id": caregiverID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceWeeklyPattern - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceWeeklyPattern - execute delete: %v", ErrExecQuery, err)
	}

	if pattern.IsEmpty() {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("caregiver_availability").
		Columns("caregiver_id", "weekday", "start_time", "end_time")

	for day := time.Sunday; day <= time.Saturday; day++ {
		for _, rng := range pattern[day] {
			insertBuilder = insertBuilder.Values(caregiverID, int(day), rng.Start, rng.End)
		}
	}

	query, args, err = insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceWeeklyPattern - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceWeeklyPattern - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
