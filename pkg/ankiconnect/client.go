package ankiconnect

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/exp/slog"
)

const protocolVersion = 6

// Request represents the request body for AnkiConnect.
type Request struct {
	Action  string `json:"action"`
	Version int    `json:"version"`
	Key     string `json:"key,omitempty"`
	Params  any    `json:"params,omitempty"`
}

// Response represents the response body from AnkiConnect. Errors are
// signalled solely by a non-null error field, never by HTTP status.
type Response struct {
	Result json.RawMessage `json:"result"`
	Error  string          `json:"error"`
}

// Note is the payload for the addNote action.
type Note struct {
	DeckName  string            `json:"deckName"`
	ModelName string            `json:"modelName"`
	Fields    map[string]string `json:"fields"`
	Tags      []string          `json:"tags"`
	Options   NoteOptions       `json:"options"`
}

// NoteOptions controls store-side behavior for addNote. Duplicate
// prevention stays disabled; the NoteExists check is authoritative.
type NoteOptions struct {
	AllowDuplicate bool `json:"allowDuplicate"`
}

// Client talks to a single AnkiConnect endpoint. Calls are
// single-shot request/response with no retry; the http.Client timeout
// bounds every call so a hung Anki cannot wedge a workflow forever.
type Client struct {
	url        string
	apiKey     string
	httpClient *http.Client
}

func NewClient(url, apiKey string, timeout time.Duration) *Client {
	if !strings.Contains(url, "://") {
		url = "http://" + url
	}
	return &Client{
		url:        url,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// CheckPermission performs the requestPermission handshake. It must
// succeed before any other action is attempted. The store is treated
// as denied when it reports denial, when it requires an API key and
// none is configured, or on any protocol error.
func (c *Client) CheckPermission(ctx context.Context) (bool, error) {
	raw, err := c.do(ctx, "requestPermission", nil)
	if err != nil {
		return false, err
	}
	var result struct {
		Permission    string `json:"permission"`
		RequireAPIKey bool   `json:"requireApiKey"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return false, fmt.Errorf("unmarshal requestPermission result: %w", err)
	}
	if result.Permission != "granted" {
		return false, nil
	}
	if result.RequireAPIKey && c.apiKey == "" {
		return false, nil
	}
	return true, nil
}

// DeckNames lists the decks of the collection. Any failure degrades
// to an empty list so callers render nothing selectable instead of
// crashing.
func (c *Client) DeckNames(ctx context.Context) []string {
	return c.names(ctx, "deckNames", nil)
}

// ModelNames lists the note types of the collection.
func (c *Client) ModelNames(ctx context.Context) []string {
	return c.names(ctx, "modelNames", nil)
}

// ModelFieldNames lists the fields of a note type, in model order.
func (c *Client) ModelFieldNames(ctx context.Context, modelName string) []string {
	return c.names(ctx, "modelFieldNames", map[string]string{"modelName": modelName})
}

func (c *Client) names(ctx context.Context, action string, params any) []string {
	raw, err := c.do(ctx, action, params)
	if err != nil {
		slog.Warn("list names", "action", action, "error", err)
		return nil
	}
	var names []string
	if err := json.Unmarshal(raw, &names); err != nil {
		slog.Warn("unmarshal names", "action", action, "error", err)
		return nil
	}
	return names
}

// NoteExists reports whether a note carrying the entry id already
// exists within the deck. A transport or protocol error is treated as
// "not found": a flaky connection may lead to a redundant note rather
// than blocking the user.
func (c *Client) NoteExists(ctx context.Context, deck, entryID string) bool {
	params := map[string]string{
		"query": fmt.Sprintf(`"deck:%s" notes:%s`, deck, entryID),
	}
	raw, err := c.do(ctx, "findCards", params)
	if err != nil {
		slog.Warn("find cards", "deck", deck, "id", entryID, "error", err)
		return false
	}
	var cardIDs []int64
	if err := json.Unmarshal(raw, &cardIDs); err != nil {
		slog.Warn("unmarshal findCards result", "error", err)
		return false
	}
	return len(cardIDs) > 0
}

// AddNote submits a new note. Failures are returned to the caller,
// never swallowed.
func (c *Client) AddNote(ctx context.Context, note Note) error {
	if _, err := c.do(ctx, "addNote", map[string]Note{"note": note}); err != nil {
		return fmt.Errorf("add note to deck %s: %w", note.DeckName, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, action string, params any) (json.RawMessage, error) {
	body, err := json.Marshal(Request{
		Action:  action,
		Version: protocolVersion,
		Key:     c.apiKey,
		Params:  params,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal %s request: %w", action, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", action, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send %s request: %w", action, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", action, err)
	}

	var response Response
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", action, err)
	}
	if response.Error != "" {
		return nil, fmt.Errorf("anki-connect %s: %s", action, response.Error)
	}
	return response.Result, nil
}
