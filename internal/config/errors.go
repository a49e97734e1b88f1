package config

import "errors"

var (
	// ErrInvalidStorageConfigs is returned when the merged configuration
	// lacks a database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configs: database DSN is required")

	// ErrInvalidServerConfigs is returned when the merged configuration lacks
	// a listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configs: listen address is required")
)
