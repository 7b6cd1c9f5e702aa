package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/sicksfc/peladeiro/internal/api"
	"github.com/sicksfc/peladeiro/internal/session"
	"github.com/spf13/cobra"
)

var (
	backendURL string
	tokenFile  string
)

var rootCmd = &cobra.Command{
	Use:   "peladeiro",
	Short: "A CLI to manage the club's peladas",
	Long: `A command-line interface for recording peladas, browsing the match
history and checking the player rankings against the club backend.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&backendURL, "backend", "http://localhost:8000", "The base URL of the pelada backend")
	rootCmd.PersistentFlags().StringVar(&tokenFile, "token-file", defaultTokenFile(), "Where the auth token is stored between runs")
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".peladeiro-token"
	}
	return filepath.Join(home, ".peladeiro-token")
}

// newClient builds a backend client with the session loaded from disk.
func newClient() (api.Client, *session.Session) {
	sess := session.New(tokenFile)
	if err := sess.Load(); err != nil {
		log.Warn("Failed to load stored session", "error", err)
	}
	return api.NewClient(backendURL, sess), sess
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your command '%s'", err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
