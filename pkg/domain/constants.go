package domain

// Domain names understood by the registry and the CLI.
const (
	DomainGrid      = "grid"
	DomainTireworld = "tireworld"
)
