// Package ptr builds pointers to literals, for optional filter fields.
package ptr

func String(value string) *string {
	return &value
}

func Bool(value bool) *bool {
	return &value
}
