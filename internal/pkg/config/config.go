package config

import (
	"io"
	"time"
)

// Config defines the methods for retrieving configuration values of the types
// this service actually consumes. Implementations handle missing keys by
// returning the zero value.
type Config interface {
	io.Closer

	// GetBool retrieves the value for key as a bool.
	GetBool(key string) bool

	// GetString retrieves the value for key as a string.
	GetString(key string) string

	// GetInt retrieves the value for key as an int.
	GetInt(key string) int

	// GetInt32 retrieves the value for key as an int32.
	GetInt32(key string) int32

	// GetFloat64 retrieves the value for key as a float64.
	GetFloat64(key string) float64

	// GetSecond retrieves the value for key as a duration in seconds.
	GetSecond(key string) time.Duration

	// GetMinute retrieves the value for key as a duration in minutes.
	GetMinute(key string) time.Duration

	// GetArray retrieves the value for key as a slice of strings. The value is
	// stored with format <element1>,<element2>,... or as a native list.
	GetArray(key string) []string
}
