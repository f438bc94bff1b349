// Package config provides configuration loading and defaults for wellwatch.
package config

// DefaultConfigDir is the default location for wellwatch configuration.
const DefaultConfigDir = "~/.config/wellwatch"

// DefaultDBName is the filename for the SQLite database.
const DefaultDBName = "wellwatch.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultUser is the profile name used when none is configured. The cache
// key and snapshots are scoped by it.
const DefaultUser = "default"

// DefaultTrackingMode enables meal logging only; glucose insights stay off
// until the user switches modes.
const DefaultTrackingMode = "meals_only"

// DefaultExperienceVariant is the legacy ordering path.
const DefaultExperienceVariant = "legacy"

// DefaultReadinessLevel assumes a middle readiness tier until the user
// reports one.
const DefaultReadinessLevel = "medium"

// DefaultBarrier is the COM-B barrier used when the user has not picked one.
const DefaultBarrier = "unsure"

// DefaultCacheTTLHours is how long a generated insight list stays fresh.
const DefaultCacheTTLHours = 12

// DefaultScoringTimeoutSeconds bounds calls to the remote scoring service.
const DefaultScoringTimeoutSeconds = 10

// DefaultGlucoseZone is the target range in mmol/L used by the aggregator
// to classify readings. Never surfaced in insight copy.
var DefaultGlucoseZone = GlucoseZone{Low: 3.9, High: 7.8}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{Color: true, Width: 80}
