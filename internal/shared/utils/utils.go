// Утилитарные функции общего назначения (указатели для optional-полей)
package utils

func Ptr[T any](v T) *T {
	return &v
}

func StrPtr(s string) *string {
	return &s
}
