package repository

import (
	"context"
	"database/sql"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"forest/infras/otel"
	"forest/infras/postgres"
	"forest/shared/constant"
	"forest/shared/dto"
	"forest/shared/logger"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// ErrRequiredFilter guards DELETE and EXISTS against running without a WHERE clause.
var ErrRequiredFilter = errors.New("required filter")

type column struct {
	name  string
	table string
	alias string
}

func (c column) sql() string {
	switch {
	case c.table == "":
		return c.name
	case c.alias != "":
		return c.table + "." + c.name + " AS " + c.alias
	default:
		return c.table + "." + c.name
	}
}

type execer interface {
	NamedExecContext(ctx context.Context, query string, arg any) (sql.Result, error)
}

// preparer is satisfied by both *sqlx.DB and *sqlx.Tx.
type preparer interface {
	PrepareNamedContext(ctx context.Context, query string) (*sqlx.NamedStmt, error)
}

// Repository maps T onto one table through its db tags. Fields tagged with another table
// are read through the join T reports from GetJoinQuery and never written.
// Every method has a Tx variant; a nil transaction falls back to the plain connection.
type Repository[T any] struct {
	db            *postgres.Connection
	otel          otel.Otel
	table         string
	entity        string
	primaryColumn string
	columns       []column
	join          string
	InsertColumns []string
	insertQuery   string
}

type joiner interface {
	GetJoinQuery() string
}

func NewRepository[T any](entityName, tableName, primaryColumn string, dbConnection *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	columns, insertColumns := getColumns(tableName, reflect.TypeOf(zero))

	join := ""
	if j, ok := any(zero).(joiner); ok {
		join = j.GetJoinQuery()
	}

	placeholders := make([]string, len(insertColumns))
	for idx, col := range insertColumns {
		placeholders[idx] = ":" + col
	}

	return Repository[T]{
		db:            dbConnection,
		otel:          otl,
		table:         tableName,
		entity:        entityName,
		primaryColumn: primaryColumn,
		columns:       columns,
		join:          join,
		InsertColumns: insertColumns,
		insertQuery: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
			tableName, strings.Join(insertColumns, ", "), strings.Join(placeholders, ", ")),
	}
}

func (repo *Repository[T]) trace(ctx context.Context, op, query string) (context.Context, otel.Scope) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName,
		constant.OtelRepositoryScopeName+"."+repo.entity+"."+op)

	if query != "" {
		scope.SetAttribute(constant.OtelQueryAttributeKey, query)
	}

	return ctx, scope
}

func (repo *Repository[T]) fail(scope otel.Scope, err error, action string) error {
	logger.ErrorWithStack(err)
	scope.TraceError(err)

	return errors.Wrapf(err, "failed to %s (%s)", action, repo.entity)
}

func (repo *Repository[T]) reader(sqltx *sqlx.Tx) preparer {
	if sqltx != nil {
		return sqltx
	}

	return repo.db.Read
}

func (repo *Repository[T]) writer(sqltx *sqlx.Tx) execer {
	if sqltx != nil {
		return sqltx
	}

	return repo.db.Write
}

func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	return repo.InsertTx(ctx, nil, model)
}

func (repo *Repository[T]) InsertTx(ctx context.Context, sqltx *sqlx.Tx, model T) error {
	ctx, scope := repo.trace(ctx, "Insert", repo.insertQuery)
	defer scope.End()

	if _, err := repo.writer(sqltx).NamedExecContext(ctx, repo.insertQuery, model); err != nil {
		return repo.fail(scope, err, "insert data")
	}

	return nil
}

func (repo *Repository[T]) InsertBulk(ctx context.Context, models []T) error {
	return repo.InsertBulkTx(ctx, nil, models)
}

// InsertBulkTx writes all models in one multi-row statement. An empty slice is a no-op.
func (repo *Repository[T]) InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []T) error {
	if len(models) == 0 {
		return nil
	}

	ctx, scope := repo.trace(ctx, "InsertBulk", repo.insertQuery)
	defer scope.End()

	scope.SetAttribute("rows", len(models))

	if _, err := repo.writer(sqltx).NamedExecContext(ctx, repo.insertQuery, models); err != nil {
		return repo.fail(scope, err, "bulk insert data")
	}

	return nil
}

func (repo *Repository[T]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	return repo.ExistTx(ctx, nil, filter)
}

func (repo *Repository[T]) ExistTx(ctx context.Context, sqltx *sqlx.Tx, filter dto.FilterGroup) (bool, error) {
	where, args := repo.BuildWhereClause(ctx, filter)
	if where == "" {
		return false, ErrRequiredFilter
	}

	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s %s %s)", repo.table, repo.join, where)

	ctx, scope := repo.trace(ctx, "Exist", query)
	defer scope.End()

	exist := false
	if err := namedGet(ctx, repo.reader(sqltx), query, args, &exist); err != nil {
		return false, repo.fail(scope, err, "check exist data")
	}

	return exist, nil
}

func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (T, error) {
	return repo.GetTx(ctx, nil, filter, columns...)
}

// GetTx returns the first matching row, or the zero T when nothing matches.
func (repo *Repository[T]) GetTx(ctx context.Context, sqltx *sqlx.Tx, filter dto.FilterGroup, columns ...string) (T, error) {
	where, args := repo.BuildWhereClause(ctx, filter)
	query := fmt.Sprintf("SELECT %s FROM %s %s %s", repo.selectColumns(columns), repo.table, repo.join, where)

	ctx, scope := repo.trace(ctx, "Get", query)
	defer scope.End()

	var model T

	err := namedGet(ctx, repo.reader(sqltx), query, args, &model)
	if errors.Is(err, sql.ErrNoRows) {
		return model, nil
	}

	if err != nil {
		return model, repo.fail(scope, err, "get data")
	}

	return model, nil
}

func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	return repo.GetAllTx(ctx, nil, params, filter, columns...)
}

// GetAllTx pages and orders by params. An unqualified sort column belongs to the repository's table.
func (repo *Repository[T]) GetAllTx(ctx context.Context, sqltx *sqlx.Tx, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	where, args := repo.BuildWhereClause(ctx, filter)

	clauses := []string{fmt.Sprintf("SELECT %s FROM %s %s %s", repo.selectColumns(columns), repo.table, repo.join, where)}

	if params.SortBy != "" && params.SortDir != "" {
		sortBy := params.SortBy
		if !strings.Contains(sortBy, ".") {
			sortBy = repo.table + "." + sortBy
		}

		clauses = append(clauses, "ORDER BY "+sortBy+" "+params.SortDir)
	}

	if params.Limit > 0 {
		args["limit"] = params.Limit
		args["offset"] = params.Offset()

		clauses = append(clauses, "LIMIT :limit OFFSET :offset")
	}

	query := strings.Join(clauses, " ")

	ctx, scope := repo.trace(ctx, "GetAll", query)
	defer scope.End()

	models := []T{}
	if err := namedSelect(ctx, repo.reader(sqltx), query, args, &models); err != nil {
		return models, repo.fail(scope, err, "get all data")
	}

	return models, nil
}

func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	return repo.CountTx(ctx, nil, filter)
}

func (repo *Repository[T]) CountTx(ctx context.Context, sqltx *sqlx.Tx, filter dto.FilterGroup) (int, error) {
	where, args := repo.BuildWhereClause(ctx, filter)
	query := fmt.Sprintf("SELECT COUNT(%s.%s) FROM %s %s %s", repo.table, repo.primaryColumn, repo.table, repo.join, where)

	ctx, scope := repo.trace(ctx, "Count", query)
	defer scope.End()

	count := 0
	if err := namedGet(ctx, repo.reader(sqltx), query, args, &count); err != nil {
		return 0, repo.fail(scope, err, "count data")
	}

	return count, nil
}

func (repo *Repository[T]) Delete(ctx context.Context, filter dto.FilterGroup) error {
	return repo.DeleteTx(ctx, nil, filter)
}

func (repo *Repository[T]) DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter dto.FilterGroup) error {
	where, args := repo.BuildWhereClause(ctx, filter)
	if where == "" {
		return ErrRequiredFilter
	}

	query := fmt.Sprintf("DELETE FROM %s %s", repo.table, where)

	ctx, scope := repo.trace(ctx, "Delete", query)
	defer scope.End()

	if _, err := repo.writer(sqltx).NamedExecContext(ctx, query, args); err != nil {
		return repo.fail(scope, err, "delete data")
	}

	return nil
}

func (repo *Repository[T]) Update(ctx context.Context, mod map[string]any, filter dto.FilterGroup) error {
	return repo.UpdateTx(ctx, nil, mod, filter)
}

// UpdateTx sets the columns in mod, in name order so the statement text is stable.
// Column values share the argument namespace with the filter, so filters on an updated
// column need their own ArgName.
func (repo *Repository[T]) UpdateTx(ctx context.Context, sqltx *sqlx.Tx, mod map[string]any, filter dto.FilterGroup) error {
	assignments := []string{}
	for _, col := range slices.Sorted(maps.Keys(mod)) {
		assignments = append(assignments, col+" = :"+col)
	}

	where, args := repo.BuildWhereClause(ctx, filter)
	query := fmt.Sprintf("UPDATE %s SET %s %s", repo.table, strings.Join(assignments, ", "), where)

	ctx, scope := repo.trace(ctx, "Update", query)
	defer scope.End()

	maps.Copy(args, mod)

	if _, err := repo.writer(sqltx).NamedExecContext(ctx, query, args); err != nil {
		return repo.fail(scope, err, "update data")
	}

	return nil
}

// selectColumns renders every mapped column, or only those named in only.
func (repo *Repository[T]) selectColumns(only []string) string {
	columns := []string{}

	for _, col := range repo.columns {
		if len(only) > 0 && !slices.Contains(only, col.name) {
			continue
		}

		columns = append(columns, col.sql())
	}

	return strings.Join(columns, ", ")
}

func (repo *Repository[T]) BuildWhereClause(_ context.Context, filter dto.FilterGroup) (string, map[string]any) {
	where, args := filter.GetWhereClause()
	if where == "" {
		return "", map[string]any{}
	}

	return " WHERE " + where + " ", args
}

func namedGet(ctx context.Context, prep preparer, query string, args map[string]any, dest any) error {
	stmt, err := prep.PrepareNamedContext(ctx, query)
	if err != nil {
		return errors.Wrap(err, "prepare statement")
	}
	defer stmt.Close()

	return stmt.GetContext(ctx, dest, args)
}

func namedSelect(ctx context.Context, prep preparer, query string, args map[string]any, dest any) error {
	stmt, err := prep.PrepareNamedContext(ctx, query)
	if err != nil {
		return errors.Wrap(err, "prepare statement")
	}
	defer stmt.Close()

	return stmt.SelectContext(ctx, dest, args)
}

// getColumns walks db tags, flattening embedded structs. A table tag moves a column to a joined
// table and a column tag selects it under a different name.
func getColumns(table string, reflectType reflect.Type) (columns []column, insertColumns []string) {
	for i := range reflectType.NumField() {
		field := reflectType.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			embedded, embeddedInsert := getColumns(table, field.Type)
			columns = append(columns, embedded...)
			insertColumns = append(insertColumns, embeddedInsert...)
		}

		dbTag := field.Tag.Get("db")
		if dbTag == "" {
			continue
		}

		fieldTable := field.Tag.Get("table")
		if fieldTable == "" {
			fieldTable = table
		}

		if fieldTable == table {
			insertColumns = append(insertColumns, dbTag)
		}

		if colTag := field.Tag.Get("column"); colTag != "" {
			columns = append(columns, column{name: colTag, table: fieldTable, alias: dbTag})
		} else {
			columns = append(columns, column{name: dbTag, table: fieldTable})
		}
	}

	return columns, insertColumns
}
