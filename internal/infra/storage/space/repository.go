package space

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	"github.com/m04kA/SMC-CoworkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CoworkingService/pkg/psqlbuilder"
)

var selectColumns = []string{
	"id",
	"name",
	"type_id",
	"floor",
	"zone",
	"capacity",
	"hourly_rate",
	"daily_rate",
	"monthly_rate",
	"description",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с пространствами и их типами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пространств
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое пространство
func (r *Repository) Create(ctx context.Context, space *domain.Space) (*domain.Space, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("spaces").
		Columns(
			"name",
			"type_id",
			"floor",
			"zone",
			"capacity",
			"hourly_rate",
			"daily_rate",
			"monthly_rate",
			"description",
			"is_active",
		).
		Values(
			space.Name,
			space.TypeID,
			space.Floor,
			space.Zone,
			space.Capacity,
			space.HourlyRate,
			space.DailyRate,
			space.MonthlyRate,
			space.Description,
			space.IsActive,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&space.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	space.CreatedAt = createdAt.Time
	space.UpdatedAt = updatedAt.Time

	if err := r.replaceAmenities(ctx, space.ID, space.Amenities); err != nil {
		return nil, err
	}

	return space, nil
}

// GetByID получает пространство по ID вместе с удобствами
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Space, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(selectColumns...).
		From("spaces").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var space domain.Space
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&space.ID,
		&space.Name,
		&space.TypeID,
		&space.Floor,
		&space.Zone,
		&space.Capacity,
		&space.HourlyRate,
		&space.DailyRate,
		&space.MonthlyRate,
		&space.Description,
		&space.IsActive,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSpaceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan space: %v", ErrScanRow, err)
	}

	space.CreatedAt = createdAt.Time
	space.UpdatedAt = updatedAt.Time

	amenities, err := r.getAmenities(ctx, id)
	if err != nil {
		return nil, err
	}
	space.Amenities = amenities

	return &space, nil
}

// List получает список пространств
// onlyActive=true исключает деактивированные пространства
func (r *Repository) List(ctx context.Context, onlyActive bool) ([]*domain.Space, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(selectColumns...).
		From("spaces").
		OrderBy("name ASC")

	if onlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	spaces := make([]*domain.Space, 0)
	for rows.Next() {
		var space domain.Space
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&space.ID,
			&space.Name,
			&space.TypeID,
			&space.Floor,
			&space.Zone,
			&space.Capacity,
			&space.HourlyRate,
			&space.DailyRate,
			&space.MonthlyRate,
			&space.Description,
			&space.IsActive,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		space.CreatedAt = createdAt.Time
		space.UpdatedAt = updatedAt.Time

		spaces = append(spaces, &space)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return spaces, nil
}

// Update обновляет пространство и его удобства
func (r *Repository) Update(ctx context.Context, space *domain.Space) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("spaces").
		Set("name", space.Name).
		Set("type_id", space.TypeID).
		Set("floor", space.Floor).
		Set("zone", space.Zone).
		Set("capacity", space.Capacity).
		Set("hourly_rate", space.HourlyRate).
		Set("daily_rate", space.DailyRate).
		Set("monthly_rate", space.MonthlyRate).
		Set("description", space.Description).
		Set("is_active", space.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": space.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrSpaceNotFound
	}

	return r.replaceAmenities(ctx, space.ID, space.Amenities)
}

// SetActive активирует или деактивирует пространство
// Пространства не удаляются физически, у них остаётся история бронирований
func (r *Repository) SetActive(ctx context.Context, id int64, active bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("spaces").
		Set("is_active", active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetActive - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetActive - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetActive - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrSpaceNotFound
	}

	return nil
}

// GetTypeByID получает тип пространства по ID
func (r *Repository) GetTypeByID(ctx context.Context, id int64) (*domain.SpaceType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "code", "description").
		From("space_types").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetTypeByID - build select query: %v", ErrBuildQuery, err)
	}

	var spaceType domain.SpaceType
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&spaceType.ID,
		&spaceType.Name,
		&spaceType.Code,
		&spaceType.Description,
	)

	if err == sql.ErrNoRows {
		return nil, ErrTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetTypeByID - scan space type: %v", ErrScanRow, err)
	}

	return &spaceType, nil
}

// getAmenities получает удобства пространства с количеством
func (r *Repository) getAmenities(ctx context.Context, spaceID int64) ([]domain.SpaceAmenity, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("sa.amenity_id", "a.name", "sa.quantity").
		From("space_amenities sa").
		Join("amenities a ON a.id = sa.amenity_id").
		Where(squirrel.Eq{"sa.space_id": spaceID}).
		OrderBy("a.name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getAmenities - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getAmenities - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	amenities := make([]domain.SpaceAmenity, 0)
	for rows.Next() {
		var amenity domain.SpaceAmenity
		if err := rows.Scan(&amenity.AmenityID, &amenity.Name, &amenity.Quantity); err != nil {
			return nil, fmt.Errorf("%w: getAmenities - scan row: %v", ErrScanRow, err)
		}
		amenities = append(amenities, amenity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getAmenities - rows error: %v", ErrScanRow, err)
	}

	return amenities, nil
}

// replaceAmenities заменяет набор удобств пространства
func (r *Repository) replaceAmenities(ctx context.Context, spaceID int64, amenities []domain.SpaceAmenity) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("space_amenities").
		Where(squirrel.Eq{"space_id": spaceID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: replaceAmenities - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: replaceAmenities - execute delete: %v", ErrExecQuery, err)
	}

	if len(amenities) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("space_amenities").
		Columns("space_id", "amenity_id", "quantity")

	for _, amenity := range amenities {
		quantity := amenity.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		insertBuilder = insertBuilder.Values(spaceID, amenity.AmenityID, quantity)
	}

	query, args, err = insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: replaceAmenities - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: replaceAmenities - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
