package api

import "sync"

// MockClient is a mock implementation of the Client interface for testing.
// It is safe for concurrent use.
type MockClient struct {
	mu sync.Mutex

	// Spies for method calls
	LoginFunc          func(email, password string) (string, error)
	MeFunc             func() error
	LogoutFunc         func() error
	ListPeladasFunc    func() ([]Pelada, error)
	CreatePeladaFunc   func(payload PeladaPayload) (Pelada, error)
	UpdatePeladaFunc   func(id int64, payload PeladaPayload) error
	DeletePeladaFunc   func(id int64) error
	ListJogadoresFunc  func() ([]Jogador, error)
	CreateJogadorFunc  func(payload JogadorPayload) (Jogador, error)
	UpdateJogadorFunc  func(id int64, payload JogadorPayload) (Jogador, error)
	ScoutsByPeladaFunc func(peladaID int64) ([]PeladaScout, error)

	// Call records
	CreatePeladaCalls []PeladaPayload
	UpdatePeladaCalls []struct {
		ID      int64
		Payload PeladaPayload
	}
	DeletePeladaCalls   []int64
	ScoutsByPeladaCalls []int64
}

// NewMock creates a new mock instance.
func NewMock() *MockClient {
	return &MockClient{}
}

func (m *MockClient) Login(email, password string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoginFunc != nil {
		return m.LoginFunc(email, password)
	}
	return "", nil
}

func (m *MockClient) Me() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.MeFunc != nil {
		return m.MeFunc()
	}
	return nil
}

func (m *MockClient) Logout() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LogoutFunc != nil {
		return m.LogoutFunc()
	}
	return nil
}

func (m *MockClient) ListPeladas() ([]Pelada, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListPeladasFunc != nil {
		return m.ListPeladasFunc()
	}
	return nil, nil
}

func (m *MockClient) CreatePelada(payload PeladaPayload) (Pelada, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreatePeladaCalls = append(m.CreatePeladaCalls, payload)
	if m.CreatePeladaFunc != nil {
		return m.CreatePeladaFunc(payload)
	}
	return Pelada{}, nil
}

func (m *MockClient) UpdatePelada(id int64, payload PeladaPayload) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdatePeladaCalls = append(m.UpdatePeladaCalls, struct {
		ID      int64
		Payload PeladaPayload
	}{id, payload})
	if m.UpdatePeladaFunc != nil {
		return m.UpdatePeladaFunc(id, payload)
	}
	return nil
}

func (m *MockClient) DeletePelada(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeletePeladaCalls = append(m.DeletePeladaCalls, id)
	if m.DeletePeladaFunc != nil {
		return m.DeletePeladaFunc(id)
	}
	return nil
}

func (m *MockClient) ListJogadores() ([]Jogador, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListJogadoresFunc != nil {
		return m.ListJogadoresFunc()
	}
	return nil, nil
}

func (m *MockClient) CreateJogador(payload JogadorPayload) (Jogador, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateJogadorFunc != nil {
		return m.CreateJogadorFunc(payload)
	}
	return Jogador{}, nil
}

func (m *MockClient) UpdateJogador(id int64, payload JogadorPayload) (Jogador, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdateJogadorFunc != nil {
		return m.UpdateJogadorFunc(id, payload)
	}
	return Jogador{}, nil
}

func (m *MockClient) ScoutsByPelada(peladaID int64) ([]PeladaScout, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ScoutsByPeladaCalls = append(m.ScoutsByPeladaCalls, peladaID)
	if m.ScoutsByPeladaFunc != nil {
		return m.ScoutsByPeladaFunc(peladaID)
	}
	return nil, nil
}
