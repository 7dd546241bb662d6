package repositories

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// externalRef is an identifier as it appears in seed and batch input files.
// Upstream systems emit both strings and bare numbers for the same field, so
// both decode to the number's text form.
type externalRef string

func (r *externalRef) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*r = externalRef(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("identifier must be a string or number, got %s", string(b))
	}
	*r = externalRef(n.String())
	return nil
}

func (r *externalRef) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("identifier must be a scalar, got %s node", value.Tag)
	}
	*r = externalRef(value.Value)
	return nil
}

// OrderSeed is one order record as written in the orders seed file and in
// the batch planning input.
type OrderSeed struct {
	ID            externalRef `json:"id"`
	DeliveryX     float64     `json:"delivery_x"`
	DeliveryY     float64     `json:"delivery_y"`
	Deadline      float64     `json:"deadline"`
	PackageWeight float64     `json:"package_weight"`
}

// DroneSeed is one fleet record as written in the fleet seed file and in
// the batch planning input.
type DroneSeed struct {
	ID          externalRef `json:"id" yaml:"id"`
	MaxPayload  float64     `json:"max_payload" yaml:"max_payload"`
	MaxDistance float64     `json:"max_distance" yaml:"max_distance"`
	Speed       float64     `json:"speed" yaml:"speed"`
	Available   bool        `json:"available" yaml:"available"`
}

// LoadOrderSeeds reads and validates the JSON orders seed file.
func LoadOrderSeeds(jsonPath string) ([]OrderSeed, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("load order seeds: read %q: %w", jsonPath, err)
	}

	var seeds []OrderSeed
	if err := json.Unmarshal(bytes, &seeds); err != nil {
		return nil, fmt.Errorf("load order seeds: parse json: %w", err)
	}

	for i, s := range seeds {
		if err := validateOrderSeed(i, s); err != nil {
			return nil, fmt.Errorf("load order seeds: %w", err)
		}
	}

	return seeds, nil
}

// The fleet seed file is an operator-maintained YAML document with a single
// top-level fleet list.
type fleetDocument struct {
	Fleet []DroneSeed `yaml:"fleet"`
}

// LoadFleetSeeds reads and validates the YAML fleet seed file.
func LoadFleetSeeds(yamlPath string) ([]DroneSeed, error) {
	bytes, err := os.ReadFile(yamlPath)
	if err != nil {
		return nil, fmt.Errorf("load fleet seeds: read %q: %w", yamlPath, err)
	}

	var doc fleetDocument
	if err := yaml.Unmarshal(bytes, &doc); err != nil {
		return nil, fmt.Errorf("load fleet seeds: parse yaml: %w", err)
	}

	for i, s := range doc.Fleet {
		if err := validateDroneSeed(i, s); err != nil {
			return nil, fmt.Errorf("load fleet seeds: %w", err)
		}
	}

	return doc.Fleet, nil
}

func validateOrderSeed(i int, s OrderSeed) error {
	if s.ID == "" {
		return fmt.Errorf("order at index %d: id must not be empty", i+1)
	}
	if s.Deadline < 0 {
		return fmt.Errorf("order %q at index %d: deadline must not be negative, got %g", s.ID, i+1, s.Deadline)
	}
	if s.PackageWeight < 0 {
		return fmt.Errorf("order %q at index %d: package_weight must not be negative, got %g", s.ID, i+1, s.PackageWeight)
	}
	return nil
}

// A zero speed is allowed here: the feasibility rules already treat a drone
// that cannot move as unable to meet any deadline.
func validateDroneSeed(i int, s DroneSeed) error {
	if s.ID == "" {
		return fmt.Errorf("drone at index %d: id must not be empty", i+1)
	}
	if s.MaxPayload < 0 {
		return fmt.Errorf("drone %q at index %d: max_payload must not be negative, got %g", s.ID, i+1, s.MaxPayload)
	}
	if s.MaxDistance < 0 {
		return fmt.Errorf("drone %q at index %d: max_distance must not be negative, got %g", s.ID, i+1, s.MaxDistance)
	}
	if s.Speed < 0 {
		return fmt.Errorf("drone %q at index %d: speed must not be negative, got %g", s.ID, i+1, s.Speed)
	}
	return nil
}
