package model

// Scope carries the identity of the user triggering an operation.
type Scope struct {
	UserID   string
	Username string
}

// Environment names.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
