package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

// apiURL is a var so tests can point the client at a local server.
var apiURL = "https://api.openai.com/v1/chat/completions"

const systemPrompt = "You are a friendly and helpful financial assistant for an app called Finance Tracker. Provide concise and helpful answers."

type OpenAIRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Choice struct {
	Message Message `json:"message"`
}

type OpenAIResponse struct {
	Choices []Choice `json:"choices"`
}

// Configured reports whether the assistant has an API key to work with.
func Configured() bool {
	return os.Getenv("OPENAI_API_KEY") != ""
}

// GenerateReply asks the assistant to answer one user message.
func GenerateReply(ctx context.Context, userMessage string) (string, error) {
	reqBody := OpenAIRequest{
		Model:       "gpt-3.5-turbo",
		MaxTokens:   400,
		Temperature: 0.7,
		Messages: []Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userMessage},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+os.Getenv("OPENAI_API_KEY"))

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("assistant service returned status %d", resp.StatusCode)
	}

	var openaiResp OpenAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&openaiResp); err != nil {
		return "", err
	}

	if len(openaiResp.Choices) == 0 {
		return "", fmt.Errorf("assistant service returned no choices")
	}
	return openaiResp.Choices[0].Message.Content, nil
}
