package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidBotConfigs indicates missing bot credentials or an
	// unsupported parse mode.
	ErrInvalidBotConfigs = errors.New("invalid bot configuration")
	// ErrInvalidAppConfigs indicates an inconsistent field set, for example
	// a required key that is not rendered.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates invalid upload directory or file limits.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWorkerConfigs indicates a zero janitor interval or stale age.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
