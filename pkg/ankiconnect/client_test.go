package ankiconnect

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Action  string          `json:"action"`
	Version int             `json:"version"`
	Key     string          `json:"key"`
	Params  json.RawMessage `json:"params"`
}

// fakeAnki answers every request with the configured response and
// records what it received.
func fakeAnki(t *testing.T, result any, errMsg string) (*Client, *[]recordedRequest) {
	t.Helper()
	var requests []recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req recordedRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		requests = append(requests, req)

		resp := map[string]any{"result": result, "error": nil}
		if errMsg != "" {
			resp["error"] = errMsg
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "", 2*time.Second), &requests
}

func TestCheckPermission(t *testing.T) {
	tests := []struct {
		name    string
		result  any
		errMsg  string
		apiKey  string
		granted bool
		wantErr bool
	}{
		{
			name:    "granted",
			result:  map[string]any{"permission": "granted", "requireApiKey": false},
			granted: true,
		},
		{
			name:   "denied",
			result: map[string]any{"permission": "denied"},
		},
		{
			name:   "granted but api key required and none configured",
			result: map[string]any{"permission": "granted", "requireApiKey": true},
		},
		{
			name:    "granted with required api key configured",
			result:  map[string]any{"permission": "granted", "requireApiKey": true},
			apiKey:  "secret",
			granted: true,
		},
		{
			name:    "protocol error",
			result:  nil,
			errMsg:  "collection is not available",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, requests := fakeAnki(t, tt.result, tt.errMsg)
			client.apiKey = tt.apiKey

			granted, err := client.CheckPermission(context.Background())
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.granted, granted)

			require.Len(t, *requests, 1)
			assert.Equal(t, "requestPermission", (*requests)[0].Action)
			assert.Equal(t, 6, (*requests)[0].Version)
		})
	}
}

func TestCheckPermissionUnreachable(t *testing.T) {
	client := NewClient("localhost:1", "", time.Second)
	granted, err := client.CheckPermission(context.Background())
	require.Error(t, err)
	assert.False(t, granted)
}

func TestNames(t *testing.T) {
	client, requests := fakeAnki(t, []string{"Japanese", "Default"}, "")
	decks := client.DeckNames(context.Background())
	assert.Equal(t, []string{"Japanese", "Default"}, decks)
	assert.Equal(t, "deckNames", (*requests)[0].Action)

	models := client.ModelNames(context.Background())
	assert.Equal(t, []string{"Japanese", "Default"}, models)
	assert.Equal(t, "modelNames", (*requests)[1].Action)

	fields := client.ModelFieldNames(context.Background(), "Basic")
	assert.Equal(t, []string{"Japanese", "Default"}, fields)
	assert.Equal(t, "modelFieldNames", (*requests)[2].Action)
	assert.JSONEq(t, `{"modelName":"Basic"}`, string((*requests)[2].Params))
}

func TestNamesDegradeToEmpty(t *testing.T) {
	client, _ := fakeAnki(t, nil, "something broke")
	assert.Empty(t, client.DeckNames(context.Background()))
	assert.Empty(t, client.ModelNames(context.Background()))
	assert.Empty(t, client.ModelFieldNames(context.Background(), "Basic"))

	unreachable := NewClient("localhost:1", "", time.Second)
	assert.Empty(t, unreachable.DeckNames(context.Background()))
}

func TestNoteExists(t *testing.T) {
	t.Run("one matching card", func(t *testing.T) {
		client, requests := fakeAnki(t, []int64{1496898109203}, "")
		exists := client.NoteExists(context.Background(), "Japanese", "12345")
		assert.True(t, exists)

		require.Len(t, *requests, 1)
		assert.Equal(t, "findCards", (*requests)[0].Action)
		assert.JSONEq(t, `{"query":"\"deck:Japanese\" notes:12345"}`, string((*requests)[0].Params))
	})

	t.Run("zero matches", func(t *testing.T) {
		client, _ := fakeAnki(t, []int64{}, "")
		assert.False(t, client.NoteExists(context.Background(), "Japanese", "12345"))
	})

	t.Run("protocol error treated as not found", func(t *testing.T) {
		client, _ := fakeAnki(t, nil, "deck was not found")
		assert.False(t, client.NoteExists(context.Background(), "Japanese", "12345"))
	})

	t.Run("transport error treated as not found", func(t *testing.T) {
		client := NewClient("localhost:1", "", time.Second)
		assert.False(t, client.NoteExists(context.Background(), "Japanese", "12345"))
	})
}

func TestAddNote(t *testing.T) {
	n := Note{
		DeckName:  "Japanese",
		ModelName: "Basic",
		Fields:    map[string]string{"Front": "食べる", "Notes": "12345"},
		Tags:      []string{"jisho2anki"},
	}

	t.Run("success", func(t *testing.T) {
		client, requests := fakeAnki(t, int64(1496198395707), "")
		require.NoError(t, client.AddNote(context.Background(), n))

		require.Len(t, *requests, 1)
		assert.Equal(t, "addNote", (*requests)[0].Action)

		var params struct {
			Note struct {
				DeckName string            `json:"deckName"`
				Fields   map[string]string `json:"fields"`
				Options  struct {
					AllowDuplicate bool `json:"allowDuplicate"`
				} `json:"options"`
			} `json:"note"`
		}
		require.NoError(t, json.Unmarshal((*requests)[0].Params, &params))
		assert.Equal(t, "Japanese", params.Note.DeckName)
		assert.Equal(t, "12345", params.Note.Fields["Notes"])
		assert.False(t, params.Note.Options.AllowDuplicate)
	})

	t.Run("failure is surfaced", func(t *testing.T) {
		client, _ := fakeAnki(t, nil, "cannot create note because it is a duplicate")
		err := client.AddNote(context.Background(), n)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate")
	})
}

func TestAPIKeyAttached(t *testing.T) {
	client, requests := fakeAnki(t, []string{}, "")
	client.apiKey = "secret"
	client.DeckNames(context.Background())
	require.Len(t, *requests, 1)
	assert.Equal(t, "secret", (*requests)[0].Key)
}

func TestURLSchemePrepended(t *testing.T) {
	client := NewClient("localhost:8765", "", time.Second)
	assert.Equal(t, "http://localhost:8765", client.url)

	client = NewClient("https://anki.example.com", "", time.Second)
	assert.Equal(t, "https://anki.example.com", client.url)
}
