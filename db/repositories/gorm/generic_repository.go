package repositories_gorm

import (
	"context"
	"fmt"
	"reflect"

	"gorm.io/gorm"

	"gitlab.com/nunet/sample-store/db/repositories"
)

// GenericRepositoryGORM is a generic repository implementation using GORM as an ORM.
// It is intended to be embedded in model repositories to provide basic database operations.
type GenericRepositoryGORM[T repositories.ModelType] struct {
	db *gorm.DB // db is the GORM database instance.
}

// NewGenericRepository creates a new instance of GenericRepositoryGORM.
// It initializes and returns a repository with the provided GORM database.
func NewGenericRepository[T repositories.ModelType](db *gorm.DB) repositories.GenericRepository[T] {
	return &GenericRepositoryGORM[T]{db: db}
}

// GetQuery returns a clean Query instance for building queries.
func (repo *GenericRepositoryGORM[T]) GetQuery() repositories.Query[T] {
	return repositories.Query[T]{}
}

// Create adds a new record to the repository and returns the created data.
func (repo *GenericRepositoryGORM[T]) Create(ctx context.Context, data T) (T, error) {
	err := repo.db.WithContext(ctx).Create(&data).Error
	return data, handleDBError(err)
}

// Find retrieves a single record based on a query.
func (repo *GenericRepositoryGORM[T]) Find(
	ctx context.Context,
	query repositories.Query[T],
) (T, error) {
	var result T
	db := repo.db.WithContext(ctx).Model(new(T))
	db = applyFilters(db, query)
	db = applyPaging(db, query)

	err := db.First(&result).Error
	return result, handleDBError(err)
}

// FindAll retrieves multiple records based on a query.
// The result is never nil, an empty table yields an empty slice.
func (repo *GenericRepositoryGORM[T]) FindAll(
	ctx context.Context,
	query repositories.Query[T],
) ([]T, error) {
	results := []T{}
	db := repo.db.WithContext(ctx).Model(new(T))
	db = applyFilters(db, query)
	db = applyPaging(db, query)

	err := db.Find(&results).Error
	return results, handleDBError(err)
}

// Count returns the number of records matching the query conditions.
func (repo *GenericRepositoryGORM[T]) Count(
	ctx context.Context,
	query repositories.Query[T],
) (int64, error) {
	var count int64
	db := repo.db.WithContext(ctx).Model(new(T))
	db = applyFilters(db, query)

	err := db.Count(&count).Error
	return count, handleDBError(err)
}

// DeleteAll removes every record matching the query conditions. Sorting,
// limit and offset are ignored. A query without conditions clears the table.
func (repo *GenericRepositoryGORM[T]) DeleteAll(
	ctx context.Context,
	query repositories.Query[T],
) (int64, error) {
	db := repo.db.WithContext(ctx)
	if len(query.Conditions) == 0 && repositories.IsEmptyValue(query.Instance) {
		db = db.Session(&gorm.Session{AllowGlobalUpdate: true})
	}
	db = applyFilters(db, query)

	result := db.Delete(new(T))
	if result.Error != nil {
		return 0, handleDBError(result.Error)
	}
	return result.RowsAffected, nil
}

// applyFilters builds the WHERE clause from the query conditions and from the
// non-zero fields of the query instance.
func applyFilters[T any](db *gorm.DB, query repositories.Query[T]) *gorm.DB {
	tableName := tableName[T](db)

	for _, condition := range query.Conditions {
		columnName := db.NamingStrategy.ColumnName(tableName, condition.Field)
		placeholder := "?"
		if condition.Operator == "IN" {
			placeholder = "(?)"
		}
		db = db.Where(
			fmt.Sprintf("%s %s %s", columnName, condition.Operator, placeholder),
			condition.Value,
		)
	}

	if !repositories.IsEmptyValue(query.Instance) {
		exampleType := reflect.TypeOf(query.Instance)
		exampleValue := reflect.ValueOf(query.Instance)
		for i := 0; i < exampleType.NumField(); i++ {
			fieldName := exampleType.Field(i).Name
			fieldValue := exampleValue.Field(i).Interface()
			if !repositories.IsEmptyValue(fieldValue) {
				columnName := db.NamingStrategy.ColumnName(tableName, fieldName)
				db = db.Where(fmt.Sprintf("%s = ?", columnName), fieldValue)
			}
		}
	}

	return db
}

// applyPaging applies sorting, limit and offset.
func applyPaging[T any](db *gorm.DB, query repositories.Query[T]) *gorm.DB {
	tableName := tableName[T](db)

	for _, field := range repositories.ParseSortBy(query.SortBy) {
		order := db.NamingStrategy.ColumnName(tableName, field.Field)
		if field.Desc {
			order += " DESC"
		}
		db = db.Order(order)
	}

	if query.Limit > 0 {
		db = db.Limit(query.Limit)
	}

	if query.Offset > 0 {
		db = db.Offset(query.Offset)
	}

	return db
}

func tableName[T any](db *gorm.DB) string {
	return db.NamingStrategy.TableName(reflect.TypeOf(*new(T)).Name())
}
