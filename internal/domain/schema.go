package domain

import (
	"reflect"
	"strings"
)

// FieldNames lists the JSON field names of a record struct in declaration order.
func FieldNames(v any) []string {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	out := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = f.Name
		}
		out = append(out, name)
	}
	return out
}

type CollectionSchema struct {
	Name   string   `json:"name"`
	Fields []string `json:"fields"`
}

// Schemas describes the known collections from the record definitions.
func Schemas() []CollectionSchema {
	return []CollectionSchema{
		{Name: ProductCollection, Fields: FieldNames(Product{})},
		{Name: InquiryCollection, Fields: FieldNames(Inquiry{})},
	}
}
