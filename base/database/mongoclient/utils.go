package mongoclient

import (
	"reflect"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
)

// MakeBsonM turns a filter struct into a query document using its bson tags.
// Nil pointers and zero values are dropped, set pointers are dereferenced.
func MakeBsonM(filter interface{}) (bson.M, error) {
	val := reflect.ValueOf(filter)
	if val.Kind() == reflect.Ptr && val.Elem().Kind() == reflect.Struct {
		val = val.Elem()
	}

	m := bson.M{}
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		if !field.CanInterface() || field.IsZero() {
			continue
		}

		tag, err := bsoncodec.DefaultStructTagParser(val.Type().Field(i))
		if err != nil {
			return nil, err
		}
		if tag.Skip {
			continue
		}

		if field.Kind() == reflect.Ptr {
			m[tag.Name] = field.Elem().Interface()
		} else {
			m[tag.Name] = field.Interface()
		}
	}
	return m, nil
}
