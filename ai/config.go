// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package ai

import (
	"errors"
	"strings"
)

// Config holds configuration for AI service providers.
type Config struct {
	// RankerHost is the base URL for the ranking service API.
	// Example: "http://localhost:11434/v1" for local OpenAI-compatible server
	RankerHost string

	// RankerModel is the model identifier to use for plausibility ranking.
	// Example: "qwen2.5:3b", "gpt-4o-mini"
	RankerModel string

	// BlendWeight controls how much a plausibility point moves the final
	// ranking. The blended score is heuristic + BlendWeight * plausibility.
	// Default: 0.5
	BlendWeight float64
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithRankerHost sets the ranking service host URL.
func WithRankerHost(host string) ConfigOption {
	return func(c *Config) {
		c.RankerHost = host
	}
}

// WithRankerModel sets the ranking model identifier.
func WithRankerModel(model string) ConfigOption {
	return func(c *Config) {
		c.RankerModel = model
	}
}

// WithBlendWeight sets the plausibility blend weight.
func WithBlendWeight(weight float64) ConfigOption {
	return func(c *Config) {
		c.BlendWeight = weight
	}
}

// DefaultConfig returns a Config with sensible defaults for local
// OpenAI-compatible services.
func DefaultConfig() *Config {
	return &Config{
		RankerHost:  "http://localhost:11434/v1",
		RankerModel: "qwen2.5:3b",
		BlendWeight: 0.5,
	}
}

// NewConfig creates a Config with the default values and applies the provided
// options. This is the recommended way to create a Config with custom settings.
//
// Example:
//   cfg := NewConfig(
//       WithRankerHost("http://localhost:11434/v1"),
//       WithRankerModel("gpt-4o-mini"),
//   )
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form.
// It automatically adds the /v1 suffix to the host if missing, which is
// required by most OpenAI-compatible APIs (Ollama, LocalAI, vLLM, etc).
func (c *Config) Normalize() {
	if c.RankerHost != "" && !strings.HasSuffix(c.RankerHost, "/v1") {
		c.RankerHost = strings.TrimSuffix(c.RankerHost, "/")
		c.RankerHost = c.RankerHost + "/v1"
	}
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.RankerHost == "" {
		return errors.New("ai config: RankerHost is required")
	}
	if c.RankerModel == "" {
		return errors.New("ai config: RankerModel is required")
	}
	if c.BlendWeight < 0 {
		return errors.New("ai config: BlendWeight must not be negative")
	}
	return nil
}
