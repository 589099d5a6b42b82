package shared_test

import (
	"fmt"
	"net/http/httptest"
	"testing"

	"forest/shared"
	"forest/shared/constant"
	"forest/shared/dto"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestConvertStringToBool(t *testing.T) {
	yes, no := true, false

	tests := []struct {
		value    string
		expected *bool
	}{
		{value: "", expected: nil},
		{value: "true", expected: &yes},
		{value: "1", expected: &yes},
		{value: "FALSE", expected: &no},
		{value: "0", expected: &no},
		{value: "maybe", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.ConvertStringToBool(tt.value))
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "empty list has one page", total: 0, limit: 10, expected: 1},
		{name: "exact multiple", total: 20, limit: 10, expected: 2},
		{name: "remainder adds a page", total: 21, limit: 10, expected: 3},
		{name: "fewer rows than limit", total: 3, limit: 10, expected: 1},
		{name: "no limit", total: 50, limit: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID("p-1", "id", "products")

	where, args := filter.GetWhereClause()

	assert.Equal(t, "(products.id = :id)", where)
	assert.Equal(t, map[string]any{"id": "p-1"}, args)
}

func TestFilterByIDs(t *testing.T) {
	filter := shared.FilterByIDs([]string{"a", "b"}, "id", "product_files")

	where, args := filter.GetWhereClause()

	assert.Equal(t, "(product_files.id IN (:id_0, :id_1))", where)
	assert.Equal(t, map[string]any{"id_0": "a", "id_1": "b"}, args)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "product:get:p1", shared.BuildCacheKey("product:get", "p1"))
	assert.Equal(t, "limiter", shared.BuildCacheKey("limiter"))

	params := dto.QueryParams{Page: 1, Limit: 10, SortBy: "created_at", SortDir: dto.SortDirDesc}
	first := shared.BuildCacheKeyWithQuery("product:get_all", params, shared.FilterByID("p1", "id", "products"))
	second := shared.BuildCacheKeyWithQuery("product:get_all", params, shared.FilterByID("p2", "id", "products"))

	assert.NotEqual(t, first, second)
	assert.Equal(t, first, shared.BuildCacheKeyWithQuery("product:get_all", params, shared.FilterByID("p1", "id", "products")))
	assert.Regexp(t, "^product:get_all:1:10:created_at:DESC:", first)
}

func TestIsPqError(t *testing.T) {
	err := fmt.Errorf("failed to delete data (product): %w", &pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeFkViolation)})

	assert.True(t, shared.IsPqError(err, constant.PqErrorCodeFkViolation))
	assert.False(t, shared.IsPqError(err, constant.PqErrorCodeUniqueViolation))
	assert.False(t, shared.IsPqError(fmt.Errorf("plain"), constant.PqErrorCodeFkViolation))
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		forwarded  string
		remoteAddr string
		expected   string
	}{
		{name: "last forwarded hop", forwarded: "10.0.0.1, 172.16.0.2, 203.0.113.7", remoteAddr: "127.0.0.1:5000", expected: "203.0.113.7"},
		{name: "single forwarded hop", forwarded: "203.0.113.7", remoteAddr: "127.0.0.1:5000", expected: "203.0.113.7"},
		{name: "trailing comma falls back", forwarded: "203.0.113.7,", remoteAddr: "192.0.2.10:41000", expected: "192.0.2.10"},
		{name: "remote address without header", remoteAddr: "192.0.2.10:41000", expected: "192.0.2.10"},
		{name: "remote address without port", remoteAddr: "192.0.2.10", expected: "192.0.2.10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/v1/orders", nil)
			r.RemoteAddr = tt.remoteAddr

			if tt.forwarded != "" {
				r.Header.Set(constant.RequestHeaderForwardedFor, tt.forwarded)
			}

			assert.Equal(t, tt.expected, shared.ClientIP(r))
		})
	}
}
