package audio

import (
	"context"
	"math/rand"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
)

type GCPClient struct{}

// we support 4 different voices only
var voices = []*texttospeechpb.VoiceSelectionParams{
	{
		LanguageCode: "ja-JP",
		Name:         "ja-JP-Wavenet-C",
		SsmlGender:   texttospeechpb.SsmlVoiceGender_MALE,
	},
	{
		LanguageCode: "ja-JP",
		Name:         "ja-JP-Wavenet-A",
		SsmlGender:   texttospeechpb.SsmlVoiceGender_FEMALE,
	},
	{
		LanguageCode: "ja-JP",
		Name:         "ja-JP-Wavenet-D",
		SsmlGender:   texttospeechpb.SsmlVoiceGender_MALE,
	},
	{
		LanguageCode: "ja-JP",
		Name:         "ja-JP-Wavenet-B",
		SsmlGender:   texttospeechpb.SsmlVoiceGender_FEMALE,
	},
}

// Fetch synthesizes the sentence with a random Japanese voice.
func (g *GCPClient) Fetch(ctx context.Context, text string) ([]byte, error) {
	client, err := texttospeech.NewClient(ctx)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	req := texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: voices[rand.Intn(len(voices))],
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
			SpeakingRate:  1,
		},
	}
	resp, err := client.SynthesizeSpeech(ctx, &req)
	if err != nil {
		return nil, err
	}
	return resp.AudioContent, nil
}
