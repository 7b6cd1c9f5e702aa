package api

// Pelada is a match record as the backend returns it. List responses carry the
// combined "horario" string; some deployments return the split fields instead.
type Pelada struct {
	ID             int64   `json:"id"`
	Data           string  `json:"data"`
	Horario        string  `json:"horario,omitempty"`
	HorarioInicio  string  `json:"horario_inicio,omitempty"`
	HorarioFim     string  `json:"horario_fim,omitempty"`
	Local          string  `json:"local"`
	TeveArbitro    bool    `json:"teve_arbitro"`
	CustoDoCampo   float64 `json:"custo_do_campo"`
	CustoDoArbitro float64 `json:"custo_do_arbitro"`
	CustoAdicional float64 `json:"custo_adicional"`
	CustoTotal     float64 `json:"custo_total"`
	Comentarios    string  `json:"comentarios"`
}

// PeladaPayload is the write shape for POST /peladas/ and PUT /peladas/{id}.
// Optional clock times and comments are sent as null when empty, which is what
// the backend expects.
type PeladaPayload struct {
	Data           string         `json:"data"`
	HorarioInicio  *string        `json:"horario_inicio"`
	HorarioFim     *string        `json:"horario_fim"`
	Local          string         `json:"local"`
	TeveArbitro    bool           `json:"teve_arbitro"`
	Comentarios    *string        `json:"comentarios"`
	CustoDoCampo   float64        `json:"custo_do_campo"`
	CustoDoArbitro float64        `json:"custo_do_arbitro"`
	CustoAdicional float64        `json:"custo_adicional"`
	Jogadores      []ScoutPayload `json:"jogadores"`
}

// ScoutPayload is one player's performance line inside a PeladaPayload.
type ScoutPayload struct {
	JogadorID       int64 `json:"jogador_id"`
	Gols            int   `json:"gols"`
	Assistencias    int   `json:"assistencias"`
	Desarmes        int   `json:"desarmes"`
	DefesasDificeis int   `json:"defesas_dificeis"`
	Faltas          int   `json:"faltas"`
}

// Jogador is a catalog entry with the cumulative career totals the backend
// maintains. The gateway never recomputes these.
type Jogador struct {
	ID                   int64  `json:"id"`
	Nome                 string `json:"nome"`
	TotalGols            int    `json:"total_gols"`
	TotalAssistencias    int    `json:"total_assistencias"`
	TotalDesarmes        int    `json:"total_desarmes"`
	TotalDefesasDificeis int    `json:"total_defesas_dificeis"`
	TotalFaltas          int    `json:"total_faltas"`
	TotalPartidas        int    `json:"total_partidas"`
}

// JogadorPayload is the whole-record write shape for player create/update.
type JogadorPayload struct {
	Nome                 string `json:"nome"`
	TotalGols            int    `json:"total_gols"`
	TotalAssistencias    int    `json:"total_assistencias"`
	TotalDesarmes        int    `json:"total_desarmes"`
	TotalDefesasDificeis int    `json:"total_defesas_dificeis"`
	TotalFaltas          int    `json:"total_faltas"`
	TotalPartidas        int    `json:"total_partidas"`
}

// PeladaScout is one row of GET /pelada-scouts/by-pelada/{id}.
type PeladaScout struct {
	JogadorID       int64 `json:"jogador_id"`
	Gols            int   `json:"gols"`
	Assistencias    int   `json:"assistencias"`
	Desarmes        int   `json:"desarmes"`
	DefesasDificeis int   `json:"defesas_dificeis"`
	Faltas          int   `json:"faltas"`
}

type loginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

// errorBody is the optional JSON body of a non-2xx response.
type errorBody struct {
	Detail string `json:"detail"`
}
