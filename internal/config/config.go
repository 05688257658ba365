// Package config parses the HCL table configuration cmd/holdem-sim uses to
// seed a hand: seats, starting stacks, blinds and the dealer position.
package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// SeatConfig is one labeled seat block in the table file.
type SeatConfig struct {
	Name  string `hcl:"name,label"`
	Chips int    `hcl:"chips"`
}

// TableConfig is the parsed contents of a table's HCL file: seats,
// starting stacks, blinds and dealer seat.
type TableConfig struct {
	SmallBlind int          `hcl:"small_blind"`
	BigBlind   int          `hcl:"big_blind"`
	Dealer     int          `hcl:"dealer,optional"`
	Seats      []SeatConfig `hcl:"seat,block"`
}

// Load parses an HCL table configuration from path.
func Load(path string) (*TableConfig, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: parse %s: %w", path, diags)
	}

	var cfg TableConfig
	if diags := gohcl.DecodeBody(f.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("config: decode %s: %w", path, diags)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *TableConfig) validate() error {
	if len(c.Seats) < 2 {
		return fmt.Errorf("config: at least two seats are required, got %d", len(c.Seats))
	}
	if c.SmallBlind <= 0 || c.BigBlind <= 0 {
		return fmt.Errorf("config: blinds must be positive")
	}
	if c.Dealer < 0 || c.Dealer >= len(c.Seats) {
		return fmt.Errorf("config: dealer seat %d out of range for %d seats", c.Dealer, len(c.Seats))
	}
	return nil
}

// Names returns the configured seat names in order.
func (c *TableConfig) Names() []string {
	names := make([]string, len(c.Seats))
	for i, s := range c.Seats {
		names[i] = s.Name
	}
	return names
}

// Stacks returns the configured seat starting stacks in order.
func (c *TableConfig) Stacks() []int {
	stacks := make([]int, len(c.Seats))
	for i, s := range c.Seats {
		stacks[i] = s.Chips
	}
	return stacks
}
