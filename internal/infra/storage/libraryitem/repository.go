package libraryitem

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
	"category",
	"condition",
	"total_quantity",
	"available_quantity",
	"status",
	"notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с предметами библиотеки
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория предметов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый предмет
func (r *Repository) Create(ctx context.Context, item *domain.LibraryItem) (*domain.LibraryItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("library_items").
		Columns(
			"name",
			"category",
			"condition",
			"total_quantity",
			"available_quantity",
			"status",
			"notes",
		).
		Values(
			item.Name,
			item.Category,
			item.Condition,
			item.TotalQuantity,
			item.AvailableQuantity,
			item.Status,
			item.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&item.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	item.CreatedAt = createdAt.Time
	item.UpdatedAt = updatedAt.Time

	return item, nil
}

// GetByID получает предмет по ID
//
// Внутри транзакции блокирует строку предмета (FOR UPDATE): выдачи одного
// предмета сериализуются по этой блокировке, и две параллельные выдачи не
// могут одновременно пройти проверку лимита
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.LibraryItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(selectColumns...).
		From("library_items").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var item domain.LibraryItem
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&item.ID,
		&item.Name,
		&item.Category,
		&item.Condition,
		&item.TotalQuantity,
		&item.AvailableQuantity,
		&item.Status,
		&item.Notes,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan item: %v", ErrScanRow, err)
	}

	item.CreatedAt = createdAt.Time
	item.UpdatedAt = updatedAt.Time

	return &item, nil
}

// List получает список предметов, опционально фильтруя по статусу и категории
func (r *Repository) List(ctx context.Context, status *domain.ItemStatus, category *domain.ItemCategory) ([]*domain.LibraryItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(selectColumns...).
		From("library_items").
		OrderBy("name ASC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}
	if category != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category": *category})
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

	items := make([]*domain.LibraryItem, 0)
	for rows.Next() {
		var item domain.LibraryItem
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Category,
			&item.Condition,
			&item.TotalQuantity,
			&item.AvailableQuantity,
			&item.Status,
			&item.Notes,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		item.CreatedAt = createdAt.Time
		item.UpdatedAt = updatedAt.Time

		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return items, nil
}

// Update обновляет редактируемые поля предмета
// Производные available_quantity и status пишутся отдельно через UpdateAvailability
func (r *Repository) Update(ctx context.Context, item *domain.LibraryItem) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("library_items").
		Set("name", item.Name).
		Set("category", item.Category).
		Set("condition", item.Condition).
		Set("total_quantity", item.TotalQuantity).
		Set("notes", item.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": item.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return r.requireRowsAffected(result, "Update")
}

// UpdateAvailability записывает пересчитанные available_quantity и status
// Вызывается в той же транзакции, что и изменение их источников
func (r *Repository) UpdateAvailability(ctx context.Context, id int64, available int, status domain.ItemStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("library_items").
		Set("available_quantity", available).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateAvailability - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateAvailability - execute update: %v", ErrExecQuery, err)
	}

	return r.requireRowsAffected(result, "UpdateAvailability")
}

func (r *Repository) requireRowsAffected(result sql.Result, method string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, method, err)
	}
	if rowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}
