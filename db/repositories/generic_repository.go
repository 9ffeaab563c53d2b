package repositories

import (
	"context"
	"strings"
)

// QueryCondition compares one struct field of a record against Value.
type QueryCondition struct {
	Field    string // struct field name, e.g. "CreatedAt"
	Operator string
	Value    interface{}
}

type ModelType interface{}

// Query selects records of type T. Non-zero fields of Instance act as
// equality conditions on top of Conditions.
type Query[T any] struct {
	Instance   T
	Conditions []QueryCondition
	SortBy     string // comma separated struct fields, "-" prefix sorts descending
	Limit      int
	Offset     int
}

// GenericRepository stores records of type T in a backing store.
type GenericRepository[T ModelType] interface {
	Create(ctx context.Context, data T) (T, error)
	// Find returns the first record matching query, or NotFoundError.
	Find(ctx context.Context, query Query[T]) (T, error)
	// FindAll returns every record matching query, never nil.
	FindAll(ctx context.Context, query Query[T]) ([]T, error)
	Count(ctx context.Context, query Query[T]) (int64, error)
	// DeleteAll removes every record matching query and returns how many were removed.
	DeleteAll(ctx context.Context, query Query[T]) (int64, error)
	GetQuery() Query[T]
}

// SortField is one element of a parsed Query.SortBy expression.
type SortField struct {
	Field string
	Desc  bool
}

// ParseSortBy splits a SortBy expression such as "-CreatedAt,ID" into its fields.
func ParseSortBy(sortBy string) []SortField {
	var fields []SortField
	for _, part := range strings.Split(sortBy, ",") {
		part = strings.TrimSpace(part)
		if part == "" || part == "-" {
			continue
		}
		if part[0] == '-' {
			fields = append(fields, SortField{Field: part[1:], Desc: true})
			continue
		}
		fields = append(fields, SortField{Field: part})
	}
	return fields
}

// EQ matches records whose field equals value.
func EQ(field string, value interface{}) QueryCondition {
	return QueryCondition{Field: field, Operator: "=", Value: value}
}

func NEQ(field string, value interface{}) QueryCondition {
	return QueryCondition{Field: field, Operator: "!=", Value: value}
}

func GT(field string, value interface{}) QueryCondition {
	return QueryCondition{Field: field, Operator: ">", Value: value}
}

func GTE(field string, value interface{}) QueryCondition {
	return QueryCondition{Field: field, Operator: ">=", Value: value}
}

func LT(field string, value interface{}) QueryCondition {
	return QueryCondition{Field: field, Operator: "<", Value: value}
}

func LTE(field string, value interface{}) QueryCondition {
	return QueryCondition{Field: field, Operator: "<=", Value: value}
}

// IN matches records whose field equals any of values.
func IN(field string, values []interface{}) QueryCondition {
	return QueryCondition{Field: field, Operator: "IN", Value: values}
}

// LIKE matches field against an SQL LIKE pattern. Backends without LIKE
// translate "%" and "_" into a regular expression.
func LIKE(field, pattern string) QueryCondition {
	return QueryCondition{Field: field, Operator: "LIKE", Value: pattern}
}
