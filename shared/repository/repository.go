package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"kidstrainer/infras/database"
	"kidstrainer/infras/otel"
	"kidstrainer/shared/constant"
	"kidstrainer/shared/dto"
	"kidstrainer/shared/logger"
	"reflect"
	"strings"

	"github.com/jmoiron/sqlx"
)

type column struct {
	name  string
	table string
}

// Repository implements the statements shared by every table. It holds no
// connection: each call runs against the handle passed in by the caller.
type Repository[T any] struct {
	otel          otel.Otel
	table         string
	entitas       string
	primaryColumn string
	columns       []column
	InsertColumns []string
}

func NewRepository[T any](entitasName, tableName, primaryColumn string, otl otel.Otel) Repository[T] {
	var zero T

	columns, insertColumns := getColumns(tableName, primaryColumn, reflect.TypeOf(zero))

	return Repository[T]{
		otel:          otl,
		table:         tableName,
		entitas:       entitasName,
		primaryColumn: primaryColumn,
		columns:       columns,
		InsertColumns: insertColumns,
	}
}

// Insert writes model and returns the identity the store assigned to it.
func (repo *Repository[T]) Insert(ctx context.Context, handle database.Handle, model T) (int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Insert", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	placeholders := make([]string, 0, len(repo.InsertColumns))
	for _, col := range repo.InsertColumns {
		placeholders = append(placeholders, ":"+col)
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		repo.table,
		strings.Join(repo.InsertColumns, ", "),
		strings.Join(placeholders, ", "),
		repo.primaryColumn,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	bound, args, err := sqlx.Named(query, model)
	if err != nil {
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to bind insert (%s): %w", repo.entitas, err)
	}

	var id int64

	if err = handle.GetContext(ctx, &id, handle.Rebind(bound), args...); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to insert data (%s): %w", repo.entitas, err)
	}

	return id, nil
}

// Get returns the first row matching filter. found is false when nothing
// matched; that is not an error.
func (repo *Repository[T]) Get(ctx context.Context, handle database.Handle, filter dto.FilterGroup) (model T, found bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Get", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	where, args := repo.BuildWhereClause(filter)

	query := fmt.Sprintf("SELECT %s FROM %s %s LIMIT 1", repo.getSelectQuery(), repo.table, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	bound, params, err := sqlx.Named(query, args)
	if err != nil {
		scope.TraceError(err)

		return model, false, fmt.Errorf("failed to bind statement (%s): %w", repo.entitas, err)
	}

	err = handle.GetContext(ctx, &model, handle.Rebind(bound), params...)
	if errors.Is(err, sql.ErrNoRows) {
		return model, false, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model, false, fmt.Errorf("failed to get data (%s): %w", repo.entitas, err)
	}

	return model, true, nil
}

// GetAll returns every row matching filter, in whatever order the store yields.
func (repo *Repository[T]) GetAll(ctx context.Context, handle database.Handle, filter dto.FilterGroup) ([]T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetAll", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	where, args := repo.BuildWhereClause(filter)

	query := fmt.Sprintf("SELECT %s FROM %s %s", repo.getSelectQuery(), repo.table, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	models := []T{}

	bound, params, err := sqlx.Named(query, args)
	if err != nil {
		scope.TraceError(err)

		return models, fmt.Errorf("failed to bind statement (%s): %w", repo.entitas, err)
	}

	if err = handle.SelectContext(ctx, &models, handle.Rebind(bound), params...); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return models, fmt.Errorf("failed to get all data (%s): %w", repo.entitas, err)
	}

	return models, nil
}

func (repo *Repository[T]) getSelectQuery() string {
	columns := make([]string, 0, len(repo.columns))
	for _, col := range repo.columns {
		columns = append(columns, fmt.Sprintf("%s.%s", col.table, col.name))
	}

	return strings.Join(columns, ", ")
}

func (repo *Repository[T]) BuildWhereClause(filter dto.FilterGroup) (string, map[string]any) {
	where, args := filter.GetWhereClause()

	if where == "" {
		return where, map[string]any{}
	}

	return fmt.Sprintf(" WHERE %s ", where), args
}

func getColumns(table, primaryColumn string, reflectType reflect.Type) (columns []column, insertColumns []string) {
	for i := 0; i < reflectType.NumField(); i++ {
		field := reflectType.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			col, insertCol := getColumns(table, primaryColumn, field.Type)
			columns = append(columns, col...)
			insertColumns = append(insertColumns, insertCol...)

			continue
		}

		dbTag := field.Tag.Get("db")
		if dbTag == "" || dbTag == "-" {
			continue
		}

		columns = append(columns, column{name: dbTag, table: table})

		if dbTag != primaryColumn {
			insertColumns = append(insertColumns, dbTag)
		}
	}

	return columns, insertColumns
}
