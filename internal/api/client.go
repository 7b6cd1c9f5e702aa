package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/sicksfc/peladeiro/internal/session"
)

// HTTPClient is the real backend client. All authenticated requests carry the
// session token as a bearer credential, read from the session at request time.
type HTTPClient struct {
	httpClient *http.Client
	BaseURL    string
	Session    *session.Session
}

// NewClient creates a new backend client bound to an explicit session.
func NewClient(baseURL string, sess *session.Session) Client {
	return &HTTPClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		BaseURL:    baseURL,
		Session:    sess,
	}
}

// Ensure HTTPClient implements the Client interface.
var _ Client = (*HTTPClient)(nil)

// do executes a request and decodes the JSON body into out (skipped when out
// is nil). Non-2xx responses become errors carrying the backend's "detail"
// message when the body provides one. A failed call is reported as-is; there
// are no retries.
func (c *HTTPClient) do(method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	log.Debug("Requesting backend", "method", method, "path", path)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var detail errorBody
		data, _ := io.ReadAll(resp.Body)
		if err := json.Unmarshal(data, &detail); err == nil && detail.Detail != "" {
			log.Error("Backend rejected request", "method", method, "path", path, "status", resp.StatusCode, "detail", detail.Detail)
			return &Error{StatusCode: resp.StatusCode, Detail: detail.Detail}
		}
		log.Error("Received non-OK HTTP status from backend", "method", method, "path", path, "status", resp.StatusCode)
		return &Error{StatusCode: resp.StatusCode, Detail: fmt.Sprintf("received non-OK HTTP status: %d", resp.StatusCode)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Login exchanges credentials for a token and stores it in the session.
func (c *HTTPClient) Login(email, password string) (string, error) {
	var resp loginResponse
	if err := c.do(http.MethodPost, "/auth/login", loginRequest{Email: email, Senha: password}, &resp); err != nil {
		return "", err
	}
	c.Session.SetToken(resp.AccessToken)
	log.Info("Logged in to backend", "email", email)
	return resp.AccessToken, nil
}

// Me validates the current token against the backend.
func (c *HTTPClient) Me() error {
	return c.do(http.MethodGet, "/auth/me", nil, nil)
}

// Logout invalidates the token server-side and clears the session slot.
func (c *HTTPClient) Logout() error {
	err := c.do(http.MethodPost, "/auth/logout", struct{}{}, nil)
	c.Session.Clear()
	return err
}

func (c *HTTPClient) ListPeladas() ([]Pelada, error) {
	var peladas []Pelada
	if err := c.do(http.MethodGet, "/peladas/", nil, &peladas); err != nil {
		return nil, err
	}
	log.Debug("Fetched peladas", "count", len(peladas))
	return peladas, nil
}

func (c *HTTPClient) CreatePelada(payload PeladaPayload) (Pelada, error) {
	var created Pelada
	if err := c.do(http.MethodPost, "/peladas/", payload, &created); err != nil {
		return Pelada{}, err
	}
	log.Info("Created pelada", "id", created.ID, "date", payload.Data)
	return created, nil
}

func (c *HTTPClient) UpdatePelada(id int64, payload PeladaPayload) error {
	return c.do(http.MethodPut, fmt.Sprintf("/peladas/%d", id), payload, nil)
}

func (c *HTTPClient) DeletePelada(id int64) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/peladas/%d", id), nil, nil)
}

func (c *HTTPClient) ListJogadores() ([]Jogador, error) {
	var jogadores []Jogador
	if err := c.do(http.MethodGet, "/jogadores/", nil, &jogadores); err != nil {
		return nil, err
	}
	log.Debug("Fetched jogadores", "count", len(jogadores))
	return jogadores, nil
}

func (c *HTTPClient) CreateJogador(payload JogadorPayload) (Jogador, error) {
	var created Jogador
	if err := c.do(http.MethodPost, "/jogadores/", payload, &created); err != nil {
		return Jogador{}, err
	}
	return created, nil
}

func (c *HTTPClient) UpdateJogador(id int64, payload JogadorPayload) (Jogador, error) {
	var updated Jogador
	if err := c.do(http.MethodPut, fmt.Sprintf("/jogadores/%d", id), payload, &updated); err != nil {
		return Jogador{}, err
	}
	return updated, nil
}

func (c *HTTPClient) ScoutsByPelada(peladaID int64) ([]PeladaScout, error) {
	var scouts []PeladaScout
	if err := c.do(http.MethodGet, fmt.Sprintf("/pelada-scouts/by-pelada/%d", peladaID), nil, &scouts); err != nil {
		return nil, err
	}
	return scouts, nil
}
