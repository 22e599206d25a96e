package engine

import (
	"time"
)

// TimeProvider supplies wall-clock readings to the frame loop
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// MockTimeProvider provides a controllable time source for testing
// Like the frame loop it drives, it is not safe for concurrent use
type MockTimeProvider struct {
	currentTime time.Time
}

// NewMockTimeProvider creates a new mock time provider with the given start time
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{currentTime: startTime}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	return m.currentTime
}

// Advance advances the current time by the given duration
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.currentTime = m.currentTime.Add(d)
}

// FrameClock turns successive wall-clock readings into clamped frame deltas
type FrameClock struct {
	provider TimeProvider
	maxDelta time.Duration
	last     time.Time
}

// NewFrameClock starts measuring from the provider's current time
func NewFrameClock(provider TimeProvider, maxDelta time.Duration) *FrameClock {
	return &FrameClock{
		provider: provider,
		maxDelta: maxDelta,
		last:     provider.Now(),
	}
}

// Delta returns the time since the previous call, clamped to the max delta
func (fc *FrameClock) Delta() time.Duration {
	now := fc.provider.Now()
	dt := now.Sub(fc.last)
	fc.last = now
	return ClampDelta(dt, fc.maxDelta)
}

// ClampDelta bounds a frame delta to [0, max]
// A non-positive max disables the upper bound
func ClampDelta(dt, max time.Duration) time.Duration {
	if dt < 0 {
		return 0
	}
	if max > 0 && dt > max {
		return max
	}
	return dt
}
