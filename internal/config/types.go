package config

// Config holds all configuration for the application.
type Config struct {
	Port       string
	BackendURL string
	TokenFile  string
	Slack      SlackConfig
}

// SlackConfig configures the optional club announcer. Leaving the token empty
// disables Slack entirely.
type SlackConfig struct {
	Token     string
	ChannelID string
}

// Enabled reports whether the announcer should be wired up.
func (s SlackConfig) Enabled() bool {
	return s.Token != "" && s.ChannelID != ""
}
