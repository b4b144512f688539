package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// Client calls a notation service over HTTP.
type Client struct {
	serverURL string
	http      *http.Client
}

func NewClient(serverURL string) *Client {
	return &Client{
		serverURL: serverURL,
		http:      http.DefaultClient,
	}
}

func (c *Client) post(path string, req, resp any) error {
	data, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}
	httpResp, err := c.http.Post(c.serverURL+path, "application/json", bytes.NewBuffer(data))
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		var errResp ErrorResponse
		if err := json.NewDecoder(httpResp.Body).Decode(&errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("%s rejected (%s): %s", path, errResp.Kind, errResp.Error)
		}
		return fmt.Errorf("%s returned status %d", path, httpResp.StatusCode)
	}
	if err := json.NewDecoder(httpResp.Body).Decode(resp); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}

// Parse decodes a flat token sequence on the server.
func (c *Client) Parse(tokens []string) (MoveJSON, error) {
	var resp MoveJSON
	err := c.post("/parse", ParseRequest{Tokens: tokens}, &resp)
	return resp, err
}

// Validate checks a token sequence without decoding it fully.
func (c *Client) Validate(tokens []string) (bool, error) {
	var resp ValidateResponse
	err := c.post("/validate", ParseRequest{Tokens: tokens}, &resp)
	return resp.Valid, err
}

// Load parses a wire string into decoded moves.
func (c *Client) Load(text string) ([]MoveJSON, error) {
	var resp LoadResponse
	err := c.post("/load", LoadRequest{Text: text}, &resp)
	return resp.Moves, err
}

// Dump serializes flat token sequences to the wire string.
func (c *Client) Dump(moves [][]string) (string, error) {
	var resp DumpResponse
	err := c.post("/dump", DumpRequest{Moves: moves}, &resp)
	return resp.Text, err
}
