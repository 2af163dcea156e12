package mocks

import (
	"github.com/mcoot/cardtally-go/internal/dependencies/random"
)

// MockRandom is a mock implementation of Random for testing
type MockRandom struct {
	// IntnResults is a queue of results to return from Intn
	IntnResults []int
	intnIndex   int

	// PickResults is a queue of results to return from Pick
	PickResults []string
	pickIndex   int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Intn returns the next queued result, or 0 if none remaining
func (r *MockRandom) Intn(n int) int {
	if r.intnIndex >= len(r.IntnResults) {
		return 0
	}
	result := r.IntnResults[r.intnIndex]
	r.intnIndex++
	return result
}

// Pick returns the next queued result. With no queued results it falls
// back to the first option, which keeps avatar assignment deterministic
// in tests that don't care about it.
func (r *MockRandom) Pick(options []string) string {
	if r.pickIndex >= len(r.PickResults) {
		if len(options) == 0 {
			return ""
		}
		return options[0]
	}
	result := r.PickResults[r.pickIndex]
	r.pickIndex++
	return result
}

// QueueIntn adds values to the Intn result queue
func (r *MockRandom) QueueIntn(values ...int) {
	r.IntnResults = append(r.IntnResults, values...)
}

// QueuePick adds values to the Pick result queue
func (r *MockRandom) QueuePick(values ...string) {
	r.PickResults = append(r.PickResults, values...)
}

// Reset clears all queued results
func (r *MockRandom) Reset() {
	r.IntnResults = nil
	r.intnIndex = 0
	r.PickResults = nil
	r.pickIndex = 0
}
