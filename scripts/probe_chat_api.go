//go:build ignore

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:3000"

// Pretty print JSON helper
func prettyPrint(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(b))
}

// Request helper
func sendRequest(method, url, apiKey string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}

	client := &http.Client{} // No timeout, generation can take a while
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func main() {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		color.Red("OPENAI_API_KEY is not set")
		os.Exit(1)
	}

	color.Cyan("🚀 Starting Chat API Probe\n")

	// 1. Health check
	color.Yellow("\n1. Health Check")
	resp, body, err := sendRequest("GET", "/health", "", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var healthResp map[string]interface{}
	json.Unmarshal(body, &healthResp)
	prettyPrint(healthResp)

	// 2. Missing credential must come back 401 without touching the pipeline
	color.Yellow("\n2. Chat Without Credential (expect 401)")
	resp, body, err = sendRequest("POST", "/chat", "", map[string]interface{}{
		"question": "What happened to AMD stock?",
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var authResp map[string]interface{}
	json.Unmarshal(body, &authResp)
	prettyPrint(authResp)

	// 3. First turn of a conversation
	color.Yellow("\n3. Chat: First Turn")
	resp, body, err = sendRequest("POST", "/chat", apiKey, map[string]interface{}{
		"question": "What happened to AMD stock recently?",
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var chatResp map[string]interface{}
	json.Unmarshal(body, &chatResp)
	fmt.Printf("Answer: %s\n", chatResp["answer"])

	conversationID, _ := chatResp["conversation_id"].(string)
	if conversationID != "" {
		fmt.Printf("Conversation ID: %s\n", conversationID)
	}

	// 4. Follow-up on the same thread, relying on history for the pronoun
	color.Yellow("\n4. Chat: Follow-Up Turn (same conversation)")
	if conversationID == "" {
		color.Red("Skipping follow-up: no conversation_id returned")
	} else {
		resp, body, err = sendRequest("POST", "/chat", apiKey, map[string]interface{}{
			"question":        "Why did it move?",
			"conversation_id": conversationID,
		})
		if err != nil {
			color.Red("Failed: %v", err)
		} else {
			color.Green("Status: %s", resp.Status)
			var followResp map[string]interface{}
			json.Unmarshal(body, &followResp)
			fmt.Printf("Answer: %s\n", followResp["answer"])
		}
	}

	// 5. Off-corpus question should hit the fallback answer
	color.Yellow("\n5. Chat: Off-Topic Question (expect fallback)")
	resp, body, err = sendRequest("POST", "/chat", apiKey, map[string]interface{}{
		"question": "What is the best recipe for banana bread?",
	})
	if err != nil {
		color.Red("Failed: %v", err)
	} else {
		color.Green("Status: %s", resp.Status)
		var fallbackResp map[string]interface{}
		json.Unmarshal(body, &fallbackResp)
		fmt.Printf("Answer: %s\n", fallbackResp["answer"])
	}

	color.Cyan("\n✅ Probe Complete")
}
