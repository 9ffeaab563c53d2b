package repositories_clover

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/iancoleman/strcase"
	clover "github.com/ostafen/clover/v2"
	clover_d "github.com/ostafen/clover/v2/document"

	"gitlab.com/nunet/sample-store/db/repositories"
)

func handleDBError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, clover.ErrDocumentNotExist):
		return repositories.WrapError(repositories.NotFoundError, err)
	case errors.Is(err, clover.ErrDuplicateKey):
		return repositories.WrapError(repositories.DuplicateKeyError, err)
	default:
		return repositories.WrapError(repositories.DatabaseError, err)
	}
}

// CollectionName is the snake_case name of T, used as its collection name.
func CollectionName[T repositories.ModelType]() string {
	return strcase.ToSnake(reflect.TypeOf(*new(T)).Name())
}

// EnsureCollection creates the collection for T unless it already exists.
func EnsureCollection[T repositories.ModelType](db *clover.DB) error {
	name := CollectionName[T]()
	exists, err := db.HasCollection(name)
	if err != nil {
		return handleDBError(err)
	}
	if exists {
		return nil
	}
	return handleDBError(db.CreateCollection(name))
}

// toCloverDoc maps the exported fields of data onto a document keyed by their json names.
// Values keep their Go types so that times compare as times.
func toCloverDoc[T repositories.ModelType](data T) *clover_d.Document {
	fields := make(map[string]interface{})

	val := reflect.ValueOf(data)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return clover_d.NewDocument()
	}

	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		name := repositories.FieldJSONTag[T](field.Name)
		if name == "-" {
			continue
		}
		fields[name] = val.Field(i).Interface()
	}

	return clover_d.NewDocumentOf(fields)
}

func toModel[T repositories.ModelType](doc *clover_d.Document) (T, error) {
	var model T
	if err := doc.Unmarshal(&model); err != nil {
		return model, repositories.WrapError(repositories.InvalidDataError, err)
	}
	return model, nil
}

// likeToRegexp turns an SQL LIKE pattern into the anchored regular expression
// Clover's Like criteria expects.
func likeToRegexp(pattern string) string {
	var b strings.Builder
	b.WriteString("^")
	for _, r := range pattern {
		switch r {
		case '%':
			b.WriteString(".*")
		case '_':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString("$")
	return b.String()
}
