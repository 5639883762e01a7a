// Command cli_chat is a terminal client for the question-answer endpoint. It
// keeps the session id returned by the service so the conversation threads
// across turns.
package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "service base URL")
	language := flag.String("lang", "fr", "question language")
	flag.Parse()

	client := &http.Client{Timeout: 90 * time.Second}
	reader := bufio.NewReader(os.Stdin)

	var sessionID string

	fmt.Println("persona-qa chat. Empty line or Ctrl-D to quit.")
	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println()
			return
		}
		question := strings.TrimSpace(line)
		if question == "" {
			return
		}

		answer, newSessionID, err := ask(client, *baseURL, question, *language, sessionID)
		if err != nil {
			log.Printf("ask failed: %v", err)
			continue
		}
		sessionID = newSessionID
		fmt.Println(answer)
	}
}

func ask(client *http.Client, baseURL, question, language, sessionID string) (string, string, error) {
	reqBody, err := json.Marshal(map[string]string{
		"question":   question,
		"language":   language,
		"session_id": sessionID,
	})
	if err != nil {
		return "", "", err
	}

	resp, err := client.Post(strings.TrimRight(baseURL, "/")+"/ask", "application/json", bytes.NewReader(reqBody))
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out struct {
		Answer    string `json:"answer"`
		SessionID string `json:"session_id"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return "", "", err
	}
	return out.Answer, out.SessionID, nil
}
