package observability

import "go.uber.org/zap"

// Field is a structured logging field.
type Field = zap.Field

// String constructs a field with the given key and value.
func String(key, val string) Field { return zap.String(key, val) }

// Int constructs a field with the given key and value.
func Int(key string, val int) Field { return zap.Int(key, val) }

// Int64 constructs a field with the given key and value.
func Int64(key string, val int64) Field { return zap.Int64(key, val) }

// Error constructs a field that carries an error.
func Error(err error) Field { return zap.Error(err) }

// Any takes a key and an arbitrary value and chooses the best way to represent them.
func Any(key string, val interface{}) Field { return zap.Any(key, val) }
