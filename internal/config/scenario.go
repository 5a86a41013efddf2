package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/davidbz/terra/internal/domain"
)

// LoadScenario reads a YAML estimate scenario. Environment references such as
// ${USERS} are expanded before parsing, omitted usage fields take defaults and
// a scenario without weights gets an equal split.
func LoadScenario(path string, defaults domain.UsageParameters) (*domain.EstimateRequest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}

	return ParseScenario(raw, defaults)
}

// scenarioFile is the YAML layout of a scenario.
type scenarioFile struct {
	Models  []domain.ModelID         `yaml:"models"`
	Weights domain.AllocationWeights `yaml:"weights"`
	Usage   domain.UsageOverrides    `yaml:"usage"`
}

// ParseScenario decodes scenario YAML with the same rules as LoadScenario.
// Usage values written explicitly, zeros included, must pass validation.
func ParseScenario(raw []byte, defaults domain.UsageParameters) (*domain.EstimateRequest, error) {
	var file scenarioFile
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(raw))), &file); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}

	if len(file.Models) == 0 {
		return nil, errors.New("scenario must list at least one model")
	}

	req := &domain.EstimateRequest{
		Models:  file.Models,
		Weights: file.Weights,
		Usage:   file.Usage.Resolve(defaults),
	}

	if err := req.Usage.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario usage: %w", err)
	}

	if len(req.Weights) == 0 {
		req.Weights = domain.EqualSplit(req.Models)
	}

	return req, nil
}
