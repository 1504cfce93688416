package postgres

import (
	"database/sql"
	stderrors "errors"

	"github.com/cyprus-transfer/internal/domain"
	"github.com/cyprus-transfer/internal/pkg/pagination"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// Коды ошибок Postgres (SQLSTATE), которые обрабатываются особо
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgUndefinedTable      = "42P01"
	pgUndefinedColumn     = "42703"
	pgUndefinedFunction   = "42883"
)

// pgErrorCode - SQLSTATE ошибки драйвера pgx (прод) или lib/pq (интеграционные тесты)
func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if stderrors.As(err, &pgErr) {
		return pgErr.Code
	}
	var pqErr *pq.Error
	if stderrors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// isRelationError - бэкенд не смог разрешить связанную таблицу/колонку
func isRelationError(err error) bool {
	switch pgErrorCode(err) {
	case pgUndefinedTable, pgUndefinedColumn, pgUndefinedFunction:
		return true
	}
	return false
}

func isUniqueViolation(err error) bool {
	return pgErrorCode(err) == pgUniqueViolation
}

func isForeignKeyViolation(err error) bool {
	return pgErrorCode(err) == pgForeignKeyViolation
}

// expectAffected - ошибка notFound, если запрос не затронул ни одной строки
func expectAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return nil
	}
	if n == 0 {
		return notFound
	}
	return nil
}

func pageOffset(p domain.Page) int {
	return pagination.Offset(p.Number, p.Size)
}
