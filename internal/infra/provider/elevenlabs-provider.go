package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"

	"car-advisor/internal/config"
	"car-advisor/internal/domain/apperrors"
	"car-advisor/internal/infra/logger"
)

// Bella - warm, friendly voice
const defaultVoiceID = "EXAVITQu4vr4xnSDxMaL"

type ElevenLabsProvider struct {
	Logger     *logger.Logger
	HttpClient *http.Client
	apiKey     string
	voiceID    string
	baseURL    string
}

func NewElevenLabsProvider(logger *logger.Logger, httpClient *http.Client) *ElevenLabsProvider {
	apiKey := config.GetEnvOrDefault("ELEVEN_LABS_KEY", "")
	if apiKey == "" {
		logger.Warn("ELEVEN_LABS_KEY not set; speech synthesis will degrade to silent turns")
	}
	return &ElevenLabsProvider{
		Logger:     logger,
		HttpClient: httpClient,
		apiKey:     apiKey,
		voiceID:    config.GetEnvOrDefault("ELEVEN_LABS_VOICE_ID", defaultVoiceID),
		baseURL:    config.GetEnvOrDefault("ELEVEN_LABS_URL", "https://api.elevenlabs.io"),
	}
}

// Synthesize renders text to audio bytes. Any failure is reported as
// ErrProviderDegraded so callers treat it as a silent miss, never a turn
// failure.
func (p *ElevenLabsProvider) Synthesize(ctx context.Context, text string, emphasis []string) ([]byte, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("%w: no API key configured", apperrors.ErrProviderDegraded)
	}

	payloadData := struct {
		Text          string `json:"text"`
		ModelID       string `json:"model_id"`
		VoiceSettings struct {
			Stability       float64 `json:"stability"`
			SimilarityBoost float64 `json:"similarity_boost"`
			Style           float64 `json:"style"`
			UseSpeakerBoost bool    `json:"use_speaker_boost"`
		} `json:"voice_settings"`
	}{
		Text:    emphasize(text, emphasis),
		ModelID: "eleven_multilingual_v2",
	}
	payloadData.VoiceSettings.Stability = 0.5
	payloadData.VoiceSettings.SimilarityBoost = 0.75
	payloadData.VoiceSettings.Style = 0.4
	payloadData.VoiceSettings.UseSpeakerBoost = true

	payload, err := json.Marshal(payloadData)
	if err != nil {
		p.Logger.Error(fmt.Sprintf("Failed to marshal synthesis payload %v", err))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrProviderDegraded, err)
	}

	url := fmt.Sprintf("%s/v1/text-to-speech/%s", p.baseURL, p.voiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		p.Logger.Error(fmt.Sprintf("Failed to create HTTP request %v", err))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrProviderDegraded, err)
	}
	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", p.apiKey)

	res, err := p.HttpClient.Do(req)
	if err != nil {
		p.Logger.Error(fmt.Sprintf("Speech synthesis request failed %v", err))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrProviderDegraded, err)
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(res.Body)
		p.Logger.Error(fmt.Sprintf("Unexpected HTTP status %s response_body %s", res.Status, string(body)))
		return nil, fmt.Errorf("%w: unexpected status %s", apperrors.ErrProviderDegraded, res.Status)
	}

	audio, err := io.ReadAll(res.Body)
	if err != nil {
		p.Logger.Error(fmt.Sprintf("Failed to read synthesis response body %v", err))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrProviderDegraded, err)
	}
	return audio, nil
}

// emphasize wraps each emphasis phrase in commas so the voice pauses
// around it.
func emphasize(text string, emphasis []string) string {
	enhanced := text
	for _, phrase := range emphasis {
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(phrase) + `\b`)
		if err != nil {
			continue
		}
		enhanced = re.ReplaceAllString(enhanced, ", "+phrase+",")
	}
	return enhanced
}
