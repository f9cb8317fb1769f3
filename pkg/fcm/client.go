// Package fcm provides a minimal client for the Firebase Cloud Messaging HTTP v1 API.
//
// It sends a single message to a single registration token and reports
// tokens that FCM no longer recognises through ErrUnregistered.
package fcm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Scope is the OAuth2 scope required by the messages:send API.
const Scope = "https://www.googleapis.com/auth/firebase.messaging"

// ErrUnregistered is returned when FCM reports the registration token as no longer valid.
var ErrUnregistered = errors.New("fcm: registration token not registered")

// unregisteredCode is the FcmError code for dead tokens.
const unregisteredCode = "UNREGISTERED"

// Message is a push addressed to one device token.
// A message with empty Title and Body is sent as data-only.
type Message struct {
	Token string
	Title string
	Body  string
	Data  map[string]string
}

// Error is a non-success response from FCM.
type Error struct {
	HTTPStatus int    // HTTP status code of the response
	Status     string // canonical status, e.g. "INVALID_ARGUMENT"
	ErrorCode  string // FCM specific code, e.g. "QUOTA_EXCEEDED"
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("fcm: %d %s %s: %s", e.HTTPStatus, e.Status, e.ErrorCode, e.Message)
}

// Client represents an FCM client bound to one firebase project.
type Client struct {
	endpoint  string       // API base URL
	projectID string       // firebase project id
	client    *http.Client // authorizes every request with a fresh token from the source
}

// NewClient creates a new FCM Client that authenticates with tokens from ts.
func NewClient(endpoint, projectID string, ts oauth2.TokenSource, timeout time.Duration) *Client {
	hc := oauth2.NewClient(context.Background(), oauth2.ReuseTokenSource(nil, ts))
	hc.Timeout = timeout

	return &Client{
		endpoint:  endpoint,
		projectID: projectID,
		client:    hc,
	}
}

// TokenSource returns a refreshing token source for the messaging scope.
//
// With an empty credentialsFile it falls back to Application Default Credentials
// (GOOGLE_APPLICATION_CREDENTIALS, gcloud, metadata server).
func TokenSource(ctx context.Context, credentialsFile string) (oauth2.TokenSource, error) {
	if credentialsFile == "" {
		ts, err := google.DefaultTokenSource(ctx, Scope)
		if err != nil {
			return nil, fmt.Errorf("default credentials: %w", err)
		}
		return ts, nil
	}

	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}

	creds, err := google.CredentialsFromJSON(ctx, data, Scope)
	if err != nil {
		return nil, fmt.Errorf("parse credentials: %w", err)
	}

	return creds.TokenSource, nil
}

type notification struct {
	Title string `json:"title,omitempty"`
	Body  string `json:"body,omitempty"`
}

type message struct {
	Token        string            `json:"token"`
	Notification *notification     `json:"notification,omitempty"`
	Data         map[string]string `json:"data,omitempty"`
}

// sendRequest represents the payload for the messages:send API.
type sendRequest struct {
	Message message `json:"message"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
		Details []struct {
			Type      string `json:"@type"`
			ErrorCode string `json:"errorCode"`
		} `json:"details"`
	} `json:"error"`
}

// Send delivers msg to its token.
//
// It returns ErrUnregistered (wrapped) when the token is dead and *Error for any
// other API failure.
func (c *Client) Send(ctx context.Context, msg Message) error {
	url := fmt.Sprintf("%s/v1/projects/%s/messages:send", c.endpoint, c.projectID)

	reqBody := sendRequest{Message: message{Token: msg.Token, Data: msg.Data}}
	if msg.Title != "" || msg.Body != "" {
		reqBody.Message.Notification = &notification{Title: msg.Title, Body: msg.Body}
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	return decodeError(resp)
}

func decodeError(resp *http.Response) error {
	apiErr := &Error{HTTPStatus: resp.StatusCode, Message: resp.Status}

	var er errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&er); err == nil {
		apiErr.Status = er.Error.Status
		apiErr.Message = er.Error.Message
		for _, d := range er.Error.Details {
			if d.ErrorCode != "" {
				apiErr.ErrorCode = d.ErrorCode
				break
			}
		}
	}

	if apiErr.ErrorCode == unregisteredCode {
		return fmt.Errorf("%w: %s", ErrUnregistered, apiErr.Message)
	}

	return apiErr
}
