package model

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope carries per-request user context through the pipeline.
type Scope struct {
	UserID   string
	Username string
}
