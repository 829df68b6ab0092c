package main

import (
	"fmt"

	"github.com/kbukum/peoplequery/config"
	"github.com/kbukum/peoplequery/record"
	"github.com/kbukum/peoplequery/validation"
)

const serviceName = "peopleq"

// Config is the peopleq configuration file.
type Config struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
	People               []PersonConfig `yaml:"people" mapstructure:"people" validate:"unique=ID,dive"`
}

// PersonConfig is one seeded record.
type PersonConfig struct {
	ID        int    `yaml:"id" mapstructure:"id" validate:"required,gt=0"`
	FirstName string `yaml:"first_name" mapstructure:"first_name" validate:"required"`
	LastName  string `yaml:"last_name" mapstructure:"last_name"`
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = serviceName
	}
	c.ServiceConfig.ApplyDefaults()
}

// Validate checks the service fields and the people list.
func (c *Config) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	if err := validation.Validate(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Records returns the configured people, or the sample records when the list
// is empty.
func (c *Config) Records() []record.Record {
	if len(c.People) == 0 {
		return record.Sample()
	}
	records := make([]record.Record, len(c.People))
	for i, p := range c.People {
		records[i] = record.Record{ID: p.ID, FirstName: p.FirstName, LastName: p.LastName}
	}
	return records
}
