package application

// DefaultPageSize is the service's maximum page size
const DefaultPageSize = 100
