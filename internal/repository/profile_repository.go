package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Henlorata/FrakHub-sub001/internal/domain"
)

// ProfileRepository defines persistence access for member profiles.
type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	UpdateFields(ctx context.Context, id string, update domain.ProfileUpdate) error
	Delete(ctx context.Context, id string) error
}

// profileColumns whitelists columns UpdateFields may write.
var profileColumns = map[string]struct{}{
	domain.ColumnSystemRole:         {},
	domain.ColumnFactionRank:        {},
	domain.ColumnDivision:           {},
	domain.ColumnDivisionRank:       {},
	domain.ColumnQualifications:     {},
	domain.ColumnIsBureauManager:    {},
	domain.ColumnIsBureauCommander:  {},
	domain.ColumnCommandedDivisions: {},
	domain.ColumnLastPromotionDate:  {},
}

type profileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository returns a Postgres-backed implementation.
func NewProfileRepository(pool *pgxpool.Pool) ProfileRepository {
	return &profileRepository{pool: pool}
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	const query = `
        SELECT id, full_name, system_role, faction_rank, division, division_rank,
               qualifications, is_bureau_manager, is_bureau_commander, commanded_divisions,
               last_promotion_date, avatar_url, created_at, updated_at
        FROM profiles WHERE id=$1`

	var profile domain.Profile
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&profile.ID,
		&profile.FullName,
		&profile.SystemRole,
		&profile.FactionRank,
		&profile.Division,
		&profile.DivisionRank,
		&profile.Qualifications,
		&profile.IsBureauManager,
		&profile.IsBureauCommander,
		&profile.CommandedDivisions,
		&profile.LastPromotionDate,
		&profile.AvatarURL,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	); err != nil {
		return nil, notFoundOnInvalidID(err)
	}
	return &profile, nil
}

func (r *profileRepository) UpdateFields(ctx context.Context, id string, update domain.ProfileUpdate) error {
	if update.IsEmpty() {
		return nil
	}

	args := make([]any, 0, len(update.Fields)+1)
	clauses := make([]string, 0, len(update.Fields)+1)
	for _, field := range update.Fields {
		if _, ok := profileColumns[field.Column]; !ok {
			return fmt.Errorf("unknown profile column %q", field.Column)
		}
		args = append(args, columnValue(field.Value))
		clauses = append(clauses, fmt.Sprintf("%s=$%d", field.Column, len(args)))
	}
	clauses = append(clauses, "updated_at=NOW()")
	args = append(args, id)

	query := "UPDATE profiles SET " + strings.Join(clauses, ", ") + fmt.Sprintf(" WHERE id=$%d", len(args))

	cmd, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return notFoundOnInvalidID(err)
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *profileRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM profiles WHERE id=$1`, id)
	if err != nil {
		return notFoundOnInvalidID(err)
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// invalidTextRepresentation is raised when an id is not a well-formed uuid.
const invalidTextRepresentation = "22P02"

// notFoundOnInvalidID reports a malformed id as a missing row: no profile can
// carry it.
func notFoundOnInvalidID(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == invalidTextRepresentation {
		return pgx.ErrNoRows
	}
	return err
}

// columnValue maps domain values onto types pgx encodes directly. Array
// columns are NOT NULL, so a nil list is written as an empty one.
func columnValue(value any) any {
	switch v := value.(type) {
	case domain.SystemRole:
		return string(v)
	case []string:
		if v == nil {
			return []string{}
		}
		return v
	default:
		return v
	}
}
