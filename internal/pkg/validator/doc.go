// Package validator wraps go-playground/validator v10 behind a small
// interface with translated, snake_cased field errors.
package validator
