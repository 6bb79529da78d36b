package config

import (
	"fmt"
	"os"

	"github.com/attest-io/attest/pkg/formatting"
	"github.com/attest-io/attest/pkg/middleware"
	"github.com/attest-io/attest/pkg/openapi"
	"github.com/attest-io/attest/pkg/pagination"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "ATTEST_CORS_ENABLED",
	Origins:          "ATTEST_CORS_ORIGINS",
	AllowedMethods:   "ATTEST_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "ATTEST_CORS_ALLOWED_HEADERS",
	AllowCredentials: "ATTEST_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "ATTEST_CORS_MAX_AGE",
}

var paginationEnv = &pagination.ConfigEnv{
	DefaultPageSize: "ATTEST_PAGINATION_DEFAULT_PAGE_SIZE",
	MaxPageSize:     "ATTEST_PAGINATION_MAX_PAGE_SIZE",
}

var openapiEnv = &openapi.ConfigEnv{
	Title:       "ATTEST_OPENAPI_TITLE",
	Description: "ATTEST_OPENAPI_DESCRIPTION",
}

// APIConfig holds API routing, capture size, CORS, pagination, and OpenAPI settings.
type APIConfig struct {
	BasePath       string                `toml:"base_path"`
	MaxCaptureSize string                `toml:"max_capture_size"`
	CORS           middleware.CORSConfig `toml:"cors"`
	Pagination     pagination.Config     `toml:"pagination"`
	OpenAPI        openapi.Config        `toml:"openapi"`
}

// MaxCaptureSizeBytes returns the capture payload cap as a byte count.
func (c *APIConfig) MaxCaptureSizeBytes() int64 {
	size, err := formatting.ParseBytes(c.MaxCaptureSize)
	if err != nil {
		return 10 * 1024 * 1024 // 10MB fallback
	}
	return size
}

// Finalize applies defaults, environment variable overrides, and validation
// for the API config and its nested CORS, pagination, and OpenAPI configs.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if _, err := formatting.ParseBytes(c.MaxCaptureSize); err != nil {
		return fmt.Errorf("max_capture_size: %w", err)
	}
	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.Pagination.Finalize(paginationEnv); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}
	if err := c.OpenAPI.Finalize(openapiEnv); err != nil {
		return fmt.Errorf("openapi: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxCaptureSize != "" {
		c.MaxCaptureSize = overlay.MaxCaptureSize
	}

	c.CORS.Merge(&overlay.CORS)
	c.Pagination.Merge(&overlay.Pagination)
	c.OpenAPI.Merge(&overlay.OpenAPI)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.MaxCaptureSize == "" {
		c.MaxCaptureSize = "10MB"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv("ATTEST_API_BASE_PATH"); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv("ATTEST_API_MAX_CAPTURE_SIZE"); v != "" {
		c.MaxCaptureSize = v
	}
}
