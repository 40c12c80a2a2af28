package services

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/srgjo27/transit_ledger/internal/core/domain"
	"github.com/srgjo27/transit_ledger/internal/core/ports"
)

const (
	IDStrategyExternal   = "external"
	IDStrategySequential = "sequential"

	DefaultFirstVehicleID = 101
)

// ExternalIDs keeps the id supplied by the caller exactly as given; only
// blank ids are rejected.
type ExternalIDs struct{}

func (ExternalIDs) NextVehicleID(requested string) (string, error) {
	if strings.TrimSpace(requested) == "" {
		return "", fmt.Errorf("vehicle id is required: %w", domain.ErrInvalidVehicle)
	}

	return requested, nil
}

// SequentialIDs ignores the requested id and hands out increasing numbers.
type SequentialIDs struct {
	mu   sync.Mutex
	next int
}

func NewSequentialIDs(start int) *SequentialIDs {
	if start <= 0 {
		start = DefaultFirstVehicleID
	}

	return &SequentialIDs{next: start}
}

func (g *SequentialIDs) NextVehicleID(string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := strconv.Itoa(g.next)
	g.next++

	return id, nil
}

func NewVehicleIDGenerator(strategy string, start int) (ports.VehicleIDGenerator, error) {
	switch strings.ToLower(strategy) {
	case "", IDStrategyExternal:
		return ExternalIDs{}, nil
	case IDStrategySequential:
		return NewSequentialIDs(start), nil
	default:
		return nil, fmt.Errorf("unknown id strategy %q", strategy)
	}
}
