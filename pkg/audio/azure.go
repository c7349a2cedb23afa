package audio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strings"
)

// speed
const rate = "0.9"

type AzureClient struct {
	endpoint string
	apiKey   string
}

func NewAzureClient(apiKey string) *AzureClient {
	return &AzureClient{
		endpoint: "https://germanywestcentral.tts.speech.microsoft.com/cognitiveservices/v1",
		apiKey:   apiKey,
	}
}

var azureVoices = []string{
	"ja-JP-KeitaNeural",
	"ja-JP-NanamiNeural",
	"ja-JP-DaichiNeural",
	"ja-JP-ShioriNeural",
}

// Fetch synthesizes the sentence via the azure text-to-speech api
// with a random Japanese voice.
func (c *AzureClient) Fetch(ctx context.Context, text string) ([]byte, error) {
	query := `<speak version="1.0" xmlns="http://www.w3.org/2001/10/synthesis" xml:lang="ja-JP">%s</speak>`
	query = fmt.Sprintf(query, c.prepareQuery(text, azureVoices[rand.Intn(len(azureVoices))]))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBufferString(query))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", c.apiKey)
	req.Header.Set("Content-Type", "application/ssml+xml")
	req.Header.Set("X-Microsoft-OutputFormat", "audio-16khz-128kbitrate-mono-mp3")
	req.Header.Set("User-Agent", "curl")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request to azure text-to-speech api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("azure text-to-speech api status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func (c *AzureClient) prepareQuery(text, speaker string) string {
	queryFmt := `
    <voice name="%s">
        <prosody rate="%s">
		    %s
        </prosody>
    </voice>`
	return fmt.Sprintf(queryFmt, speaker, rate, strings.TrimSpace(text))
}
