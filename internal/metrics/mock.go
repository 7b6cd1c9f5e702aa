package metrics

import "sync"

// MockMetrics is a no-op Metrics implementation that records call counts.
type MockMetrics struct {
	mu sync.Mutex

	BackendRequestsCalls    int
	BackendErrorsCalls      int
	ViewDurations           []float64
	ValidationFailuresCalls int
	SlackNotifSentCalls     int
	SlackNotifFailedCalls   int
	StartupTimes            []float64
}

var _ Metrics = (*MockMetrics)(nil)

// NewMock creates a new mock instance.
func NewMock() *MockMetrics {
	return &MockMetrics{}
}

func (m *MockMetrics) IncBackendRequests() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.BackendRequestsCalls++
}

func (m *MockMetrics) IncBackendErrors() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.BackendErrorsCalls++
}

func (m *MockMetrics) ObserveViewDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ViewDurations = append(m.ViewDurations, duration)
}

func (m *MockMetrics) IncValidationFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ValidationFailuresCalls++
}

func (m *MockMetrics) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SlackNotifSentCalls++
}

func (m *MockMetrics) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SlackNotifFailedCalls++
}

func (m *MockMetrics) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StartupTimes = append(m.StartupTimes, duration)
}
