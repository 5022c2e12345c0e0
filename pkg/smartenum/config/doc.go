/*
Package config loads smartenum process settings from YAML or JSON files.

# Overview

Settings hold the process-wide defaults applied to enum registries created
after they are configured:

	seal_on_lookup: true   # first lookup seals the registry
	log_level: debug       # slog level name, or "off"
	metrics: true          # OTel metrics on the global meter provider
	tracing: false         # OTel spans around explicit Define steps

Missing keys keep their Default() values.

# File Loading

	s, err := config.Load("smartenum.yaml")
	if err != nil {
	    log.Fatal(err)
	}
	smartenum.ConfigureFromSettings(s)

	// Or from bytes
	s, err = config.FromYAML(yamlBytes)
	s, err = config.FromJSON(jsonBytes)
*/
package config
