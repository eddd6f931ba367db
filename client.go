package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const blocksEndpoint = "blocks"

var ErrPayloadInvalid = errors.New("payload is not valid JSON")

// Default headers sent with each request to the document service.
var defaultHeaders = map[string]string{
	"Accept":       "application/json",
	"Content-Type": "application/json",
}

// APIError is a completed request the service rejected. The raw
// response body is kept for display.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("request failed with status %d", e.Status)
	}
	return fmt.Sprintf("request failed with status %d: %s", e.Status, e.Body)
}

// Client posts note blocks to the document service. One synchronous
// attempt per call, no retries: a failed send loses nothing but the
// current invocation.
type Client struct {
	httpClient *http.Client
	creds      Credentials
	log        *Logger
}

// NewClient returns a client for the given credentials. Passing a nil
// httpClient selects http.DefaultClient.
func NewClient(httpClient *http.Client, creds Credentials, log *Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		creds:      creds,
		log:        log,
	}
}

// CreateBlocks sends the payload to {apiURL}/blocks with bearer auth.
// The payload is rechecked for JSON validity before anything goes on
// the wire. Any 2xx status is success; everything else returns an
// APIError carrying the status and response body.
func (c *Client) CreateBlocks(payload []byte) error {
	if !json.Valid(payload) {
		return ErrPayloadInvalid
	}
	addr := fmt.Sprintf("%s/%s", strings.TrimRight(c.creds.APIURL, "/"), blocksEndpoint)
	req, err := http.NewRequest(http.MethodPost, addr, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	for name, val := range defaultHeaders {
		req.Header.Set(name, val)
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.creds.APIKey))
	req.Header.Set("User-Agent", UserAgent())
	c.log.Debugf("POST %s (%d bytes)", addr, len(payload))
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &APIError{Status: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	c.log.Debugf("response %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	return nil
}
