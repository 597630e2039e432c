// services/generator.go
package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const completionsURL = "https://api.openai.com/v1/chat/completions"

var httpClient = &http.Client{Timeout: 30 * time.Second}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// GenerateBlogContent asks the OpenAI completions endpoint for blog prose
// based on a title. One-shot call, no retry, no streaming.
func GenerateBlogContent(title string) (string, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return "", errors.New("OPENAI_API_KEY not set")
	}

	payload := chatRequest{
		Model: "gpt-3.5-turbo",
		Messages: []chatMessage{
			{Role: "user", Content: fmt.Sprintf("Genera un contenido de blog basado en el siguiente título: %q", title)},
		},
		MaxTokens: 350,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, completionsURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil {
			return "", errors.New(parsed.Error.Message)
		}
		return "", fmt.Errorf("content generation failed with status %d", resp.StatusCode)
	}

	if len(parsed.Choices) == 0 {
		return "", errors.New("content generation returned no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}
