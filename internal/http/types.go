package http

import (
	"net/http"

	"github.com/jonboulle/clockwork"
	"github.com/sicksfc/peladeiro/internal/api"
	"github.com/sicksfc/peladeiro/internal/config"
	"github.com/sicksfc/peladeiro/internal/metrics"
	"github.com/sicksfc/peladeiro/internal/notifier"
	"github.com/sicksfc/peladeiro/internal/pelada"
	"github.com/sicksfc/peladeiro/internal/ranking"
)

type Server struct {
	Backend        api.Client
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	Clock          clockwork.Clock
	Router         *http.ServeMux
}

// rankingsResponse is the leaderboard view: the full ordered sequence plus
// the top-3 podium slice layered on top of it.
type rankingsResponse struct {
	Statistic pelada.Statistic `json:"statistic"`
	Search    string           `json:"search,omitempty"`
	Entries   []ranking.Entry  `json:"entries"`
	Podium    []ranking.Entry  `json:"podium"`
}

// scoutsResponse is one match's scout view after sorting/filtering.
type scoutsResponse struct {
	MatchID     string               `json:"match_id"`
	Statistic   pelada.Statistic     `json:"statistic"`
	OnlyNonZero bool                 `json:"only_non_zero"`
	Scouts      []pelada.PlayerScout `json:"scouts"`
}

// detailResponse mirrors the backend's error body shape.
type detailResponse struct {
	Detail string `json:"detail"`
}
