package repositories_clover

import (
	"context"
	"reflect"
	"sync"

	clover "github.com/ostafen/clover/v2"
	clover_d "github.com/ostafen/clover/v2/document"
	clover_q "github.com/ostafen/clover/v2/query"

	"gitlab.com/nunet/sample-store/db/repositories"
)

// GenericRepositoryClover is a generic repository implementation using Clover.
// It is intended to be embedded in model repositories to provide basic database operations.
type GenericRepositoryClover[T repositories.ModelType] struct {
	db         *clover.DB // db is the Clover database instance.
	collection string     // collection is the name of the collection in the database.

	// mu serializes writes so that DeleteAll reports exactly what it removed.
	mu sync.Mutex
}

// NewGenericRepository creates a new instance of GenericRepositoryClover.
// It initializes and returns a repository with the provided Clover database.
// The collection must exist, see EnsureCollection.
func NewGenericRepository[T repositories.ModelType](
	db *clover.DB,
) repositories.GenericRepository[T] {
	return &GenericRepositoryClover[T]{db: db, collection: CollectionName[T]()}
}

// GetQuery returns a clean Query instance for building queries.
func (repo *GenericRepositoryClover[T]) GetQuery() repositories.Query[T] {
	return repositories.Query[T]{}
}

func (repo *GenericRepositoryClover[T]) query() *clover_q.Query {
	return clover_q.NewQuery(repo.collection)
}

// Create adds a new record to the repository and returns the created data.
func (repo *GenericRepositoryClover[T]) Create(ctx context.Context, data T) (T, error) {
	if err := ctx.Err(); err != nil {
		return data, err
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	_, err := repo.db.InsertOne(repo.collection, toCloverDoc(data))
	return data, handleDBError(err)
}

// Find retrieves a single record based on a query.
func (repo *GenericRepositoryClover[T]) Find(
	ctx context.Context,
	query repositories.Query[T],
) (T, error) {
	var result T
	if err := ctx.Err(); err != nil {
		return result, err
	}

	q := applyFilters(repo.query(), query)
	q = applyPaging(q, query)

	doc, err := repo.db.FindFirst(q)
	if err != nil {
		return result, handleDBError(err)
	}
	if doc == nil {
		return result, handleDBError(clover.ErrDocumentNotExist)
	}

	return toModel[T](doc)
}

// FindAll retrieves multiple records based on a query.
func (repo *GenericRepositoryClover[T]) FindAll(
	ctx context.Context,
	query repositories.Query[T],
) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	q := applyFilters(repo.query(), query)
	q = applyPaging(q, query)

	results := []T{}
	var convErr error
	err := repo.db.ForEach(q, func(doc *clover_d.Document) bool {
		var model T
		model, convErr = toModel[T](doc)
		if convErr != nil {
			return false
		}
		results = append(results, model)
		return true
	})
	if err != nil {
		return results, handleDBError(err)
	}
	return results, convErr
}

// Count returns the number of records matching the query conditions.
func (repo *GenericRepositoryClover[T]) Count(
	ctx context.Context,
	query repositories.Query[T],
) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	n, err := repo.db.Count(applyFilters(repo.query(), query))
	return int64(n), handleDBError(err)
}

// DeleteAll removes every record matching the query conditions and returns how many were removed.
func (repo *GenericRepositoryClover[T]) DeleteAll(
	ctx context.Context,
	query repositories.Query[T],
) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	q := applyFilters(repo.query(), query)
	n, err := repo.db.Count(q)
	if err != nil {
		return 0, handleDBError(err)
	}
	if n == 0 {
		return 0, nil
	}

	if err := repo.db.Delete(q); err != nil {
		return 0, handleDBError(err)
	}
	return int64(n), nil
}

// applyFilters turns the query conditions and the non-zero fields of the
// query instance into a single Clover criteria.
func applyFilters[T repositories.ModelType](
	q *clover_q.Query,
	query repositories.Query[T],
) *clover_q.Query {
	var criteria clover_q.Criteria
	and := func(c clover_q.Criteria) {
		if criteria == nil {
			criteria = c
			return
		}
		criteria = criteria.And(c)
	}

	for _, condition := range query.Conditions {
		field := clover_q.Field(repositories.FieldJSONTag[T](condition.Field))
		switch condition.Operator {
		case "=":
			and(field.Eq(condition.Value))
		case "!=":
			and(field.Neq(condition.Value))
		case ">":
			and(field.Gt(condition.Value))
		case ">=":
			and(field.GtEq(condition.Value))
		case "<":
			and(field.Lt(condition.Value))
		case "<=":
			and(field.LtEq(condition.Value))
		case "IN":
			if values, ok := condition.Value.([]interface{}); ok {
				and(field.In(values...))
			}
		case "LIKE":
			if value, ok := condition.Value.(string); ok {
				and(field.Like(likeToRegexp(value)))
			}
		}
	}

	if !repositories.IsEmptyValue(query.Instance) {
		exampleType := reflect.TypeOf(query.Instance)
		exampleValue := reflect.ValueOf(query.Instance)
		for i := 0; i < exampleType.NumField(); i++ {
			fieldValue := exampleValue.Field(i).Interface()
			if !repositories.IsEmptyValue(fieldValue) {
				fieldName := repositories.FieldJSONTag[T](exampleType.Field(i).Name)
				and(clover_q.Field(fieldName).Eq(fieldValue))
			}
		}
	}

	if criteria != nil {
		q = q.Where(criteria)
	}
	return q
}

// applyPaging applies sorting, limit and offset to a Clover query.
func applyPaging[T repositories.ModelType](
	q *clover_q.Query,
	query repositories.Query[T],
) *clover_q.Query {
	var opts []clover_q.SortOption
	for _, field := range repositories.ParseSortBy(query.SortBy) {
		dir := 1
		if field.Desc {
			dir = -1
		}
		opts = append(opts, clover_q.SortOption{
			Field:     repositories.FieldJSONTag[T](field.Field),
			Direction: dir,
		})
	}
	if len(opts) > 0 {
		q = q.Sort(opts...)
	}

	if query.Limit > 0 {
		q = q.Limit(query.Limit)
	}

	if query.Offset > 0 {
		q = q.Skip(query.Offset)
	}

	return q
}
