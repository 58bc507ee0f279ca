// Package lineage defines the shared data model for lineage graphs:
// nodes, edges, and the closed enumerations used by the graph engine.
package lineage

// RelationshipType describes how a target asset is derived from a source asset.
type RelationshipType string

// Relationship type constants.
const (
	RelTableToTable   RelationshipType = "table-to-table"
	RelColumnToColumn RelationshipType = "column-to-column"
	RelTransformation RelationshipType = "transformation"
	RelAggregation    RelationshipType = "aggregation"
	RelJoin           RelationshipType = "join"
	RelFilter         RelationshipType = "filter"
	RelComputed       RelationshipType = "computed"
	RelDerived        RelationshipType = "derived"
	RelCopy           RelationshipType = "copy"
	RelETLProcess     RelationshipType = "etl-process"
)

// Criticality is the ordinal business criticality of an asset.
type Criticality string

// Criticality levels, ordered from least to most critical.
const (
	CriticalityLow             Criticality = "low"
	CriticalityMedium          Criticality = "medium"
	CriticalityHigh            Criticality = "high"
	CriticalityMissionCritical Criticality = "mission-critical"
)

// Rank returns the ordinal position of the criticality level.
// Unknown values rank below CriticalityLow.
func (c Criticality) Rank() int {
	switch c {
	case CriticalityLow:
		return 1
	case CriticalityMedium:
		return 2
	case CriticalityHigh:
		return 3
	case CriticalityMissionCritical:
		return 4
	default:
		return 0
	}
}

// AtLeast reports whether c is at least as critical as other.
func (c Criticality) AtLeast(other Criticality) bool {
	return c.Rank() >= other.Rank()
}

// ChangeType classifies a change applied to an asset for impact analysis.
type ChangeType string

// Change type constants.
const (
	ChangeSchema  ChangeType = "schema"
	ChangeData    ChangeType = "data"
	ChangeLogic   ChangeType = "logic"
	ChangeRemoval ChangeType = "removal"
)

// ParseChangeType converts a string to a ChangeType.
// Returns the change type and true if valid, or ChangeData and false if invalid.
func ParseChangeType(s string) (ChangeType, bool) {
	switch ChangeType(s) {
	case ChangeSchema, ChangeData, ChangeLogic, ChangeRemoval:
		return ChangeType(s), true
	default:
		return ChangeData, false
	}
}

// Node represents a data asset (table, column, pipeline stage) in a lineage graph.
// Nodes are immutable once placed in a graph snapshot; a lineage refresh builds
// a new graph rather than mutating nodes in place.
type Node struct {
	// ID uniquely identifies the node within a graph.
	ID string `json:"id" yaml:"id"`
	// AssetID is the identifier of the underlying asset in the catalog.
	AssetID string `json:"assetId" yaml:"asset_id"`
	// AssetName is the human-readable asset name.
	AssetName string `json:"assetName" yaml:"asset_name"`
	// AssetType is a free-form classification (e.g. "table", "column", "pipeline").
	AssetType string `json:"assetType" yaml:"asset_type"`
	// Criticality is the business criticality of the asset.
	Criticality Criticality `json:"criticality,omitempty" yaml:"criticality"`
	// Environment the asset lives in (e.g. "production").
	Environment string `json:"environment,omitempty" yaml:"environment"`
	// Tags are metadata labels for filtering/organizing assets.
	Tags []string `json:"tags,omitempty" yaml:"tags"`
}

// HasTag reports whether the node carries the given tag.
func (n Node) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Edge represents a directed dependency between two nodes.
// Source -> target means the target is derived from the source:
// the target is downstream of the source, the source upstream of the target.
type Edge struct {
	// ID uniquely identifies the edge.
	ID string `json:"id" yaml:"id"`
	// SourceID references the node the data flows from.
	SourceID string `json:"sourceId" yaml:"source_id"`
	// TargetID references the node the data flows to.
	TargetID string `json:"targetId" yaml:"target_id"`
	// Relationship describes the kind of derivation.
	Relationship RelationshipType `json:"relationshipType" yaml:"relationship"`
	// Weight is the relative strength of the dependency (>= 0).
	Weight float64 `json:"weight,omitempty" yaml:"weight"`
	// Metadata carries free-form transformation details.
	Metadata map[string]any `json:"metadata,omitempty" yaml:"metadata"`
}
