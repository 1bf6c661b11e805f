package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bayurmdn/garuda-saham-insight/internal/common"
)

// PortalProxy connects MCP tool calls to the portal's REST API.
type PortalProxy struct {
	portalURL  string
	httpClient *http.Client
	logger     *common.Logger
}

// NewPortalProxy creates a new proxy targeting the given portal URL.
func NewPortalProxy(portalURL string, logger *common.Logger) *PortalProxy {
	return &PortalProxy{
		portalURL: portalURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// get performs a GET request and returns the response body.
func (p *PortalProxy) get(path string) ([]byte, error) {
	return p.do(http.MethodGet, path)
}

// put performs a PUT request and returns the response body.
func (p *PortalProxy) put(path string) ([]byte, error) {
	return p.do(http.MethodPut, path)
}

// delete performs a DELETE request and returns the response body.
func (p *PortalProxy) delete(path string) ([]byte, error) {
	return p.do(http.MethodDelete, path)
}

func (p *PortalProxy) do(method, path string) ([]byte, error) {
	p.logger.Debug().
		Str("method", method).
		Str("path", path).
		Msg("MCP Proxy Request")

	req, err := http.NewRequest(method, p.portalURL+path, nil)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := p.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		p.logger.Error().Err(err).Str("path", path).Dur("duration", duration).Msg("MCP Proxy Request Failed")
		return nil, fmt.Errorf("portal request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	p.logger.Debug().
		Str("status", resp.Status).
		Int("status_code", resp.StatusCode).
		Dur("duration", duration).
		Msg("MCP Proxy Response")

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &errResp) == nil && errResp.Error != "" {
			return nil, fmt.Errorf("%s", errResp.Error)
		}
		return nil, fmt.Errorf("portal returned %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}
