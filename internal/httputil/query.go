package httputil

import (
	"net/url"
	"reflect"
)

// GetURLFields returns the names of all filter struct fields whose query
// parameter is present in the URL, including parameters set to an empty
// value.
//
// This makes it possible to distinguish an unset parameter from one that is
// deliberately set to a zero value without declaring every filter field as a
// pointer.
func GetURLFields(url *url.URL, filter any) []string {
	var setFields []string

	val := reflect.ValueOf(filter)
	for i := 0; i < val.Type().NumField(); i++ {
		field := val.Type().Field(i).Name
		form := val.Type().Field(i).Tag.Get("form")

		if url.Query().Has(form) {
			setFields = append(setFields, field)
		}
	}

	return setFields
}
