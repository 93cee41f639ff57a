package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// InsertModel inserts every exported field of model that carries a db tag.
func InsertModel(table string, model any) (string, []any, error) {
	columns, values, err := dbFields(model)
	if err != nil {
		return "", nil, err
	}
	return InsertInto(table).Columns(columns...).Values(values...).ToSQL()
}

func dbFields(model any) ([]string, []any, error) {
	v := reflect.ValueOf(model)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, nil, fmt.Errorf("model cannot be nil")
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("model must be a struct, got %s", v.Kind())
	}

	t := v.Type()
	var (
		columns []string
		values  []any
	)
	for i := range t.NumField() {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(field.Tag.Get("db"), ",")
		name = strings.TrimSpace(name)
		if name == "" || name == "-" {
			continue
		}
		columns = append(columns, name)
		values = append(values, v.Field(i).Interface())
	}

	if len(columns) == 0 {
		return nil, nil, fmt.Errorf("model %s has no db columns", t.Name())
	}
	return columns, values, nil
}
