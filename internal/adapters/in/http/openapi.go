package http

import (
	"context"
	"fmt"

	"dispatch/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
)

// LoadDocument returns the API description the server was generated from, validated.
// Servers are cleared so that request validation matches on path alone, whatever host
// the service runs behind.
func LoadDocument(ctx context.Context) (*openapi3.T, error) {
	doc, err := servers.GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err = doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid openapi document: %w", err)
	}

	doc.Servers = nil
	return doc, nil
}
