package borrow

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	"github.com/m04kA/SMC-CoworkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CoworkingService/pkg/psqlbuilder"
)

var selectColumns = []string{
	"id",
	"item_id",
	"customer_id",
	"borrowed_at",
	"returned_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с записями о выдаче предметов
// Открытые записи (returned_at IS NULL) - единственный источник правды
// о доступности предмета
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория выдач
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает открытую запись о выдаче
func (r *Repository) Create(ctx context.Context, record *domain.BorrowRecord) (*domain.BorrowRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("borrow_records").
		Columns("item_id", "customer_id", "borrowed_at").
		Values(record.ItemID, record.CustomerID, record.BorrowedAt).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&record.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	record.CreatedAt = createdAt.Time
	record.UpdatedAt = updatedAt.Time

	return record, nil
}

// GetByID получает запись о выдаче по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.BorrowRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(selectColumns...).
		From("borrow_records").
		Where(squirrel.Eq{"id": id})

	// Внутри транзакции блокируем запись на время возврата/удаления
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var record domain.BorrowRecord
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&record.ID,
		&record.ItemID,
		&record.CustomerID,
		&record.BorrowedAt,
		&record.ReturnedAt,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan record: %v", ErrScanRow, err)
	}

	record.CreatedAt = createdAt.Time
	record.UpdatedAt = updatedAt.Time

	return &record, nil
}

// CountOpenByItem подсчитывает открытые выдачи предмета
// Вызывается внутри транзакции после блокировки строки предмета
func (r *Repository) CountOpenByItem(ctx context.Context, itemID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("borrow_records").
		Where(squirrel.Eq{"item_id": itemID}).
		Where("returned_at IS NULL").
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountOpenByItem - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountOpenByItem - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// GetByItem получает историю выдач предмета, новые сверху
// onlyOpen=true оставляет только невозвращённые выдачи
func (r *Repository) GetByItem(ctx context.Context, itemID int64, onlyOpen bool) ([]*domain.BorrowRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(selectColumns...).
		From("borrow_records").
		Where(squirrel.Eq{"item_id": itemID}).
		OrderBy("borrowed_at DESC")

	if onlyOpen {
		selectBuilder = selectBuilder.Where("returned_at IS NULL")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByItem - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByItem - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRecords(rows)
}

// GetByCustomer получает выдачи клиента, новые сверху
func (r *Repository) GetByCustomer(ctx context.Context, customerID int64, onlyOpen bool) ([]*domain.BorrowRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(selectColumns...).
		From("borrow_records").
		Where(squirrel.Eq{"customer_id": customerID}).
		OrderBy("borrowed_at DESC")

	if onlyOpen {
		selectBuilder = selectBuilder.Where("returned_at IS NULL")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomer - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomer - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRecords(rows)
}

// SetReturned закрывает запись о выдаче
// Закрытая запись становится неизменяемой, повторный возврат отклоняется
// на уровне сервиса
func (r *Repository) SetReturned(ctx context.Context, id int64, returnedAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("borrow_records").
		Set("returned_at", returnedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where("returned_at IS NULL").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetReturned - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetReturned - execute update: %v", ErrExecQuery, err)
	}

	return r.requireRowsAffected(result, "SetReturned")
}

// Delete удаляет открытую запись о выдаче
// Закрытые записи не удаляются: returned_at IS NULL входит в условие
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("borrow_records").
		Where(squirrel.Eq{"id": id}).
		Where("returned_at IS NULL").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return r.requireRowsAffected(result, "Delete")
}

// scanRecords сканирует результаты запроса в слайс записей
func (r *Repository) scanRecords(rows *sql.Rows) ([]*domain.BorrowRecord, error) {
	records := make([]*domain.BorrowRecord, 0)

	for rows.Next() {
		var record domain.BorrowRecord
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&record.ID,
			&record.ItemID,
			&record.CustomerID,
			&record.BorrowedAt,
			&record.ReturnedAt,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanRecords - scan row: %v", ErrScanRow, err)
		}

		record.CreatedAt = createdAt.Time
		record.UpdatedAt = updatedAt.Time

		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRecords - rows error: %v", ErrScanRow, err)
	}

	return records, nil
}

func (r *Repository) requireRowsAffected(result sql.Result, method string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, method, err)
	}
	if rowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
