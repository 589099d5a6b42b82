package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"forest/infras/otel/mocks"
	"forest/infras/postgres"
	"forest/shared/dto"
	"forest/shared/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID        string `db:"id"`
	Title     string `db:"title"`
	Price     int    `db:"price"`
	OwnerName string `db:"owner_name" table:"owners" column:"name"`
}

func (item) GetJoinQuery() string {
	return "LEFT JOIN owners ON owners.id = items.owner_id"
}

func newRepository(t *testing.T) (repository.Repository[item], sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	conn := sqlx.NewDb(db, "postgres")

	return repository.NewRepository[item]("item", "items", "id", &postgres.Connection{Read: conn, Write: conn}, mocks.NewOtel()), mock
}

func byID(id string) dto.FilterGroup {
	return dto.FilterGroup{Filters: []any{
		dto.Filter{Field: "id", Value: id, Operator: dto.FilterOperatorEq, Table: "items"},
	}}
}

func TestNewRepository_InsertColumns(t *testing.T) {
	repo, _ := newRepository(t)

	assert.Equal(t, []string{"id", "title", "price"}, repo.InsertColumns)
}

func TestRepository_Get(t *testing.T) {
	query := regexp.QuoteMeta("SELECT items.id, items.title, items.price, owners.name AS owner_name FROM items LEFT JOIN owners ON owners.id = items.owner_id  WHERE (items.id = $1)")

	t.Run("found", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectPrepare(query).
			ExpectQuery().
			WithArgs("i-1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "price", "owner_name"}).AddRow("i-1", "House", 5000, "Forest"))

		got, err := repo.Get(context.Background(), byID("i-1"))

		require.NoError(t, err)
		assert.Equal(t, item{ID: "i-1", Title: "House", Price: 5000, OwnerName: "Forest"}, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row is the zero value", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectPrepare(query).
			ExpectQuery().
			WithArgs("i-2").
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "price", "owner_name"}))

		got, err := repo.Get(context.Background(), byID("i-2"))

		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})

	t.Run("query failure is wrapped", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectPrepare(query).
			ExpectQuery().
			WillReturnError(errors.New("connection reset"))

		_, err := repo.Get(context.Background(), byID("i-3"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get data (item)")
	})
}

func TestRepository_GetAll(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectPrepare(regexp.QuoteMeta("SELECT items.id, items.title FROM items LEFT JOIN owners ON owners.id = items.owner_id  ORDER BY items.title ASC LIMIT $1 OFFSET $2")).
		ExpectQuery().
		WithArgs(10, 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).AddRow("i-1", "Bath").AddRow("i-2", "House"))

	got, err := repo.GetAll(context.Background(), dto.QueryParams{Page: 2, Limit: 10, SortBy: "title", SortDir: dto.SortDirAsc}, dto.FilterGroup{}, "id", "title")

	require.NoError(t, err)
	assert.Equal(t, []item{{ID: "i-1", Title: "Bath"}, {ID: "i-2", Title: "House"}}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Count(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectPrepare(regexp.QuoteMeta("SELECT COUNT(items.id) FROM items")).
		ExpectQuery().
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.Count(context.Background(), dto.FilterGroup{})

	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestRepository_Update(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE items SET price = $1, title = $2  WHERE (items.id = $3)")).
		WithArgs(6000, "Big house", "i-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), map[string]any{"title": "Big house", "price": 6000}, byID("i-1"))

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Insert(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO items (id, title, price) VALUES ($1, $2, $3)")).
		WithArgs("i-1", "House", 5000).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Insert(context.Background(), item{ID: "i-1", Title: "House", Price: 5000, OwnerName: "ignored"})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_InsertBulkEmpty(t *testing.T) {
	repo, mock := newRepository(t)

	assert.NoError(t, repo.InsertBulk(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_RequiresFilter(t *testing.T) {
	repo, _ := newRepository(t)

	assert.ErrorIs(t, repo.Delete(context.Background(), dto.FilterGroup{}), repository.ErrRequiredFilter)

	_, err := repo.Exist(context.Background(), dto.FilterGroup{})
	assert.ErrorIs(t, err, repository.ErrRequiredFilter)
}
