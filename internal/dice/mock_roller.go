package dice

import (
	"fmt"
	"sync"
)

// CheckCall records the fraction one Check call received
type CheckCall struct {
	Num int
	Den int
}

// MockRoller implements Roller for testing with predetermined results
type MockRoller struct {
	mu         sync.Mutex
	checks     []bool
	checkIndex int
	checkCalls []CheckCall
	ranges     []int
	rangeIndex int
}

// NewMockRoller creates a new mock roller
func NewMockRoller() *MockRoller {
	return &MockRoller{}
}

// SetChecks sets the sequence of Check outcomes
func (m *MockRoller) SetChecks(outcomes ...bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.checks = outcomes
	m.checkIndex = 0
}

// SetRanges sets the sequence of Range results
func (m *MockRoller) SetRanges(values ...int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ranges = values
	m.rangeIndex = 0
}

// Reset clears all queued results
func (m *MockRoller) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.checks = nil
	m.checkIndex = 0
	m.checkCalls = nil
	m.ranges = nil
	m.rangeIndex = 0
}

// CheckCalls returns the fractions Check has received, in call order
func (m *MockRoller) CheckCalls() []CheckCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	calls := make([]CheckCall, len(m.checkCalls))
	copy(calls, m.checkCalls)
	return calls
}

// Check implements Roller.Check
func (m *MockRoller) Check(num, den int) (bool, error) {
	if den <= 0 {
		return false, fmt.Errorf("chance denominator must be positive, got %d", den)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.checkCalls = append(m.checkCalls, CheckCall{Num: num, Den: den})
	if m.checkIndex >= len(m.checks) {
		return false, fmt.Errorf("no more predetermined checks available (used %d of %d)", m.checkIndex, len(m.checks))
	}

	outcome := m.checks[m.checkIndex]
	m.checkIndex++
	return outcome, nil
}

// Range implements Roller.Range
func (m *MockRoller) Range(n int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.rangeIndex >= len(m.ranges) {
		return 0, fmt.Errorf("no more predetermined range values available (used %d of %d)", m.rangeIndex, len(m.ranges))
	}

	value := m.ranges[m.rangeIndex]
	m.rangeIndex++
	if value < 0 || value >= n {
		return 0, fmt.Errorf("predetermined value %d outside range [0,%d)", value, n)
	}
	return value, nil
}
