package notifier

import (
	"sync"

	"github.com/sicksfc/peladeiro/internal/pelada"
	"github.com/sicksfc/peladeiro/internal/ranking"
)

// MockNotifier is a mock implementation of the Notifier interface for testing.
type MockNotifier struct {
	mu sync.Mutex

	SendMatchRecordedFunc         func(match *pelada.Match, dryRun bool) error
	SendLeaderboardFunc           func(entries []ranking.Entry, stat pelada.Statistic, dryRun bool) error
	FormatLeaderboardResponseFunc func(entries []ranking.Entry, stat pelada.Statistic) (any, error)

	SendMatchRecordedCalls []*pelada.Match
	SendLeaderboardCalls   []pelada.Statistic
}

var _ Notifier = (*MockNotifier)(nil)

// NewMock creates a new mock instance.
func NewMock() *MockNotifier {
	return &MockNotifier{}
}

func (m *MockNotifier) SendMatchRecorded(match *pelada.Match, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendMatchRecordedCalls = append(m.SendMatchRecordedCalls, match)
	if m.SendMatchRecordedFunc != nil {
		return m.SendMatchRecordedFunc(match, dryRun)
	}
	return nil
}

func (m *MockNotifier) SendLeaderboard(entries []ranking.Entry, stat pelada.Statistic, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendLeaderboardCalls = append(m.SendLeaderboardCalls, stat)
	if m.SendLeaderboardFunc != nil {
		return m.SendLeaderboardFunc(entries, stat, dryRun)
	}
	return nil
}

func (m *MockNotifier) FormatLeaderboardResponse(entries []ranking.Entry, stat pelada.Statistic) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FormatLeaderboardResponseFunc != nil {
		return m.FormatLeaderboardResponseFunc(entries, stat)
	}
	return nil, nil
}
