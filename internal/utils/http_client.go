package utils

import (
	"github.com/go-resty/resty/v2"
	jsoniter "github.com/json-iterator/go"
)

// JSON is the codec shared by the HTTP client and response decoders. It is
// configured to behave exactly like encoding/json.
var JSON = jsoniter.ConfigCompatibleWithStandardLibrary

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a resty.Client that encodes and decodes JSON bodies with [JSON].
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().
//	    SetHeader("Accept", "application/json").
//	    Get("https://api.example.com/get-deals")
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetJSONMarshaler(JSON.Marshal).
		SetJSONUnmarshaler(JSON.Unmarshal)

	return &HTTPClient{Client: client}
}
