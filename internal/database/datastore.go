package database

// DataStore defines the unified interface for all data operations.
// Consumers can depend on the smaller LaunchReader/LaunchWriter interfaces
// for better testability.
type DataStore interface {
	LaunchRepository
}

// Compile-time verification that *Repository implements DataStore
var _ DataStore = (*Repository)(nil)
