package dto_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"forest/shared/constant"
	"forest/shared/dto"
	"forest/shared/model"
	"forest/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := createdAt.Add(time.Hour)

	metadata := dto.Metadata{}
	metadata.FromModel(model.NewMetadata(createdAt, "admin-1"))
	assert.Equal(t, timezone.Format(createdAt, constant.DateFormat), metadata.CreatedAt)
	assert.Equal(t, "admin-1", metadata.CreatedBy)

	metadata.FromModel(model.Metadata{CreatedAt: createdAt, ModifiedAt: modifiedAt, ModifiedBy: "admin-2"})
	assert.Equal(t, timezone.Format(modifiedAt, constant.DateFormat), metadata.ModifiedAt)
	assert.Equal(t, "admin-2", metadata.ModifiedBy)
	assert.Empty(t, metadata.CreatedBy)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		paginate bool
		expected dto.QueryParams
	}{
		{
			name:     "all parameters",
			query:    "page=2&limit=20&sort_by=title&sort_dir=asc",
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "title", SortDir: dto.SortDirAsc},
		},
		{
			name:     "defaults when paginating",
			paginate: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortBy:  constant.DefaultValueSortBy,
				SortDir: constant.DefaultValueSortDir,
			},
		},
		{
			name:     "nothing without pagination",
			expected: dto.QueryParams{},
		},
		{
			name:     "malformed page and limit fall back",
			query:    "page=-1&limit=ten",
			paginate: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortBy:  constant.DefaultValueSortBy,
				SortDir: constant.DefaultValueSortDir,
			},
		},
		{
			name:     "limit is capped",
			query:    "limit=5000",
			expected: dto.QueryParams{Limit: dto.MaxLimit},
		},
		{
			name:     "qualified sort column",
			query:    "sort_by=order_items.start_datetime&sort_dir=DESC",
			expected: dto.QueryParams{SortBy: "order_items.start_datetime", SortDir: dto.SortDirDesc},
		},
		{
			name:     "sort column with sql is ignored",
			query:    "sort_by=id%3BDROP%20TABLE%20orders&sort_dir=sideways",
			paginate: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortBy:  constant.DefaultValueSortBy,
				SortDir: constant.DefaultValueSortDir,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/v1/products?"+tt.query, nil)

			params := dto.QueryParams{}
			params.FromRequest(request, tt.paginate)

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestQueryParams_Offset(t *testing.T) {
	assert.Equal(t, 0, dto.QueryParams{}.Offset())
	assert.Equal(t, 0, dto.QueryParams{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 20, dto.QueryParams{Page: 3, Limit: 10}.Offset())
}

func TestFilter_GetWhereClause(t *testing.T) {
	start := time.Date(2024, 6, 1, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		filter       dto.Filter
		expected     string
		expectedArgs map[string]any
	}{
		{
			name:         "equality on a table column",
			filter:       dto.Filter{Field: "status", Value: "PENDING", Operator: dto.FilterOperatorEq, Table: "orders"},
			expected:     "orders.status = :status",
			expectedArgs: map[string]any{"status": "PENDING"},
		},
		{
			name:         "explicit argument name",
			filter:       dto.Filter{ArgName: "new_start", Field: "end_datetime", Value: start, Operator: dto.FilterOperatorGreater},
			expected:     "end_datetime > :new_start",
			expectedArgs: map[string]any{"new_start": start},
		},
		{
			name:         "case-insensitive like",
			filter:       dto.Filter{Field: "title", Value: "House", Operator: dto.FilterOperatorLike},
			expected:     "LOWER(title) LIKE LOWER(:title)",
			expectedArgs: map[string]any{"title": "%House%"},
		},
		{
			name:         "in with slice",
			filter:       dto.Filter{Field: "id", Value: []string{"a", "b"}, Operator: dto.FilterOperatorIn},
			expected:     "id IN (:id_0, :id_1)",
			expectedArgs: map[string]any{"id_0": "a", "id_1": "b"},
		},
		{
			name:         "in with empty slice matches nothing",
			filter:       dto.Filter{Field: "id", Value: []string{}, Operator: dto.FilterOperatorIn},
			expected:     "FALSE",
			expectedArgs: map[string]any{},
		},
		{
			name:         "in with a single value",
			filter:       dto.Filter{Field: "id", Value: "a", Operator: dto.FilterOperatorIn},
			expected:     "id IN (:id)",
			expectedArgs: map[string]any{"id": "a"},
		},
		{
			name:         "is null",
			filter:       dto.Filter{Field: "min_hour", Operator: dto.FilterIsNull, Table: "products"},
			expected:     "products.min_hour IS NULL",
			expectedArgs: map[string]any{},
		},
		{
			name:         "unknown operator",
			filter:       dto.Filter{Field: "id", Operator: "between"},
			expected:     "",
			expectedArgs: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.expected, where)
			assert.Equal(t, tt.expectedArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "product_id", Value: "house", Operator: dto.FilterOperatorEq},
			dto.Filter{Field: "id", Operator: "between"},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{Field: "status", Value: "PENDING", Operator: dto.FilterOperatorEq},
					dto.Filter{ArgName: "status_waiting", Field: "status", Value: "WAITING_VERIFICATION", Operator: dto.FilterOperatorEq},
				},
			},
			"ignored",
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(product_id = :product_id AND (status = :status OR status = :status_waiting))", where)
	assert.Equal(t, map[string]any{
		"product_id":     "house",
		"status":         "PENDING",
		"status_waiting": "WAITING_VERIFICATION",
	}, args)

	empty := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}
	where, args = empty.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}
