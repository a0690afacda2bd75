package protocol

import (
	"encoding/json"
	"time"

	"github.com/spertscheduler/engine/scenario"
)

// ExportFormat is the literal format tag every export envelope carries.
// Importers must verify it exactly and reject anything else (§6).
const ExportFormat = "spert-scheduler-export"

// ENGINE_VERSION-equivalent constants.
const (
	// EngineVersion is an informational string identifying this build.
	EngineVersion = "1.0.0"
	// SchemaVersion is the current persisted envelope schema, used for
	// migration dispatch.
	SchemaVersion = 1
)

// Envelope is the persisted export format (§6): a format tag, versioning
// metadata, and the exported projects.
type Envelope struct {
	Format        string              `json:"format"`
	AppVersion    string              `json:"appVersion"`
	ExportedAt    time.Time           `json:"exportedAt"`
	SchemaVersion int                 `json:"schemaVersion"`
	Projects      []*scenario.Project `json:"projects"`
}

// NewEnvelope builds an Envelope with the literal format tag and current
// schema/engine version set.
func NewEnvelope(projects []*scenario.Project, exportedAt time.Time) Envelope {
	return Envelope{
		Format:        ExportFormat,
		AppVersion:    EngineVersion,
		ExportedAt:    exportedAt,
		SchemaVersion: SchemaVersion,
		Projects:      projects,
	}
}

// ParseEnvelope decodes raw as an Envelope and rejects it unless its
// format tag matches ExportFormat exactly (§6).
func ParseEnvelope(raw []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, newDomainError("protocol: malformed export envelope: %v", err)
	}
	if env.Format != ExportFormat {
		return nil, newDomainError("protocol: unrecognized export format %q", env.Format)
	}
	return &env, nil
}

// Migrate dispatches raw (already schema-version-tagged data) to the
// migration path for schemaVersion. It recognizes only the current
// SchemaVersion; migration of older versions is out of scope, but the
// dispatch point itself is not — any other version is rejected.
func Migrate(schemaVersion int, raw []byte) ([]byte, error) {
	if schemaVersion == SchemaVersion {
		return raw, nil
	}
	return nil, newDomainError("protocol: no migration path from schema version %d to %d", schemaVersion, SchemaVersion)
}
