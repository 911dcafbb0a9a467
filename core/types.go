// This file declares the Roster type, its sentinel errors, and the
// NewRoster constructor.
//
// Errors:
//
//	ErrEmptyAgentID   - agent ID is the empty string.
//	ErrNegativeCost   - agent cost is below zero.
//	ErrDuplicateAgent - agent ID was already registered.
//	ErrAgentNotFound  - requested agent does not exist.
//	ErrEmptyBatch     - batch cost requested for an empty batch.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core roster operations.
var (
	// ErrEmptyAgentID indicates that the provided agent ID is empty.
	ErrEmptyAgentID = errors.New("core: agent ID is empty")

	// ErrNegativeCost indicates that a negative cost was provided for an agent.
	ErrNegativeCost = errors.New("core: agent cost is negative")

	// ErrDuplicateAgent indicates an attempt to register the same agent ID twice.
	ErrDuplicateAgent = errors.New("core: agent already registered")

	// ErrAgentNotFound indicates an operation referenced a non-existent agent.
	ErrAgentNotFound = errors.New("core: agent not found")

	// ErrEmptyBatch indicates that a batch cost was requested for zero agents.
	ErrEmptyBatch = errors.New("core: batch is empty")
)

// Roster is a registry of agents and their individual transfer costs.
//
// All methods are safe for concurrent use: reads take a shared lock,
// AddAgent takes an exclusive lock. Once registered, an agent's cost
// never changes.
type Roster struct {
	// mu guards costs for concurrent access.
	mu sync.RWMutex

	// costs maps agent ID → individual transfer cost (≥ 0).
	costs map[string]int64
}

// NewRoster constructs an empty Roster ready for AddAgent calls.
func NewRoster() *Roster {
	return &Roster{
		costs: make(map[string]int64),
	}
}
