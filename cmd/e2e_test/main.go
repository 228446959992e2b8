package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

var baseURL = "http://localhost:8080"

const sampleText = `Acme Mutual Fund 1,000.00 1,100.00
Beta MF 3,000.00 2,900.00
Acme Mutual Fund
01-Jan-2023 Purchase 1,000.00 10.000 100.00 10.000
Beta MF
02-Feb-2023 Redemption (500.00) (5.000) 100.00 25.000`

func main() {
	if v := os.Getenv("BASE_URL"); v != "" {
		baseURL = v
	}
	// Wait for server to start
	time.Sleep(2 * time.Second)

	// 1. Health Check
	checkEndpoint("GET", "/health", nil, 200)

	// 2. Parse statement text
	id := createStatement(sampleText)
	fmt.Printf("Created Statement ID: %s\n", id)

	// 3. Same text is served from cache
	if again := createStatement(sampleText); again != id {
		log.Fatalf("Expected cached statement %s, got %s", id, again)
	}

	// 4. Get Statement
	checkEndpoint("GET", "/statements/"+id, nil, 200)

	// 5. Get Allocation
	checkEndpoint("GET", "/statements/"+id+"/allocation", nil, 200)

	// 6. Unknown statement
	checkEndpoint("GET", "/statements/does-not-exist", nil, 404)

	// 7. Text without a portfolio summary
	checkEndpoint("POST", "/statements/text", map[string]string{"text": "nothing to see"}, 422)

	fmt.Println("ALL TESTS PASSED")
}

func checkEndpoint(method, path string, body interface{}, expectedStatus int) {
	fmt.Printf("Testing %s %s...\n", method, path)
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, _ := http.NewRequest(method, baseURL+path, bodyReader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != expectedStatus {
		log.Fatalf("Expected status %d, got %d. Body: %s", expectedStatus, resp.StatusCode, string(respBody))
	}
	fmt.Printf("Response: %s\n", string(respBody))
}

func createStatement(text string) string {
	fmt.Println("Parsing statement text...")
	jsonBody, _ := json.Marshal(map[string]string{"text": text})
	resp, err := http.Post(baseURL+"/statements/text", "application/json", bytes.NewBuffer(jsonBody))
	if err != nil {
		log.Fatalf("Parse statement failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 201 {
		body, _ := io.ReadAll(resp.Body)
		log.Fatalf("Parse statement failed with status %d: %s", resp.StatusCode, string(body))
	}

	var res struct {
		ID           string            `json:"id"`
		Transactions []json.RawMessage `json:"transactions"`
	}
	json.NewDecoder(resp.Body).Decode(&res)
	if len(res.Transactions) != 2 {
		log.Fatalf("Expected 2 transactions, got %d", len(res.Transactions))
	}
	return res.ID
}
