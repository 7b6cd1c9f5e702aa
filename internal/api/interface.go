package api

// Client defines the interface for talking to the pelada backend.
// This allows for mock implementations to be used in tests.
type Client interface {
	Login(email, password string) (string, error)
	Me() error
	Logout() error

	ListPeladas() ([]Pelada, error)
	CreatePelada(payload PeladaPayload) (Pelada, error)
	UpdatePelada(id int64, payload PeladaPayload) error
	DeletePelada(id int64) error

	ListJogadores() ([]Jogador, error)
	CreateJogador(payload JogadorPayload) (Jogador, error)
	UpdateJogador(id int64, payload JogadorPayload) (Jogador, error)

	ScoutsByPelada(peladaID int64) ([]PeladaScout, error)
}
