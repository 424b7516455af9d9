package service

import "errors"

// Ошибки административных операций. Единственные ошибки подсистемы,
// которые доходят до вызывающей стороны: конфликты и not-found
// отдаются оператору явно, всё остальное гасится fallback-значениями.
var (
	ErrWorkoutTypeExists    = errors.New("workout type with this key already exists")
	ErrWorkoutTypeNotFound  = errors.New("workout type not found")
	ErrDefaultTypeProtected = errors.New("default workout type cannot be deleted")
	ErrResultNotFound       = errors.New("macro result not found")
)
