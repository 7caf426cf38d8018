package authsdk

import (
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the orgrole service.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new client with a 10 second request timeout.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Session makes requests on behalf of the holder of an identity token.
// It is safe for concurrent use.
type Session struct {
	client *SDKClient
	token  string
}

// NewSession binds an identity token issued by the identity provider.
func (c *SDKClient) NewSession(identityToken string) *Session {
	return &Session{client: c, token: identityToken}
}
