// Package provider implements the client for the external text-generation
// service. The service is consumed as an opaque capability: given a list of
// role-tagged messages, a model identifier, and a sampling temperature, it
// returns a text completion that should contain JSON.
package provider

import "context"

// Client is the interface the planning and chat pipelines generate through.
// Implementations must treat network failures, rate limiting, and malformed
// responses as ordinary errors; callers decide whether to retry on another
// model or fall back locally.
type Client interface {
	// Generate sends the request and returns the complete response.
	Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error)
}
