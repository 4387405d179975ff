package catalog

import (
	"github.com/jonwraymond/tooldiscovery/index"
	"github.com/jonwraymond/toolfoundation/model"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jonwraymond/dbroute/backend"
)

// namespace maps a tool's affinity to its discovery namespace.
func namespace(kind backend.Kind) string {
	if kind == backend.KindUnknown {
		return "database"
	}
	return kind.String()
}

// ModelTool converts the spec to the tool model used by the discovery
// index, namespaced by affinity.
func (s Spec) ModelTool() model.Tool {
	return model.Tool{
		Tool: mcp.Tool{
			Name:        s.Name,
			Description: s.Description,
			InputSchema: s.InputSchema(),
		},
		Namespace: namespace(s.Affinity),
	}
}

// RegisterIndex loads every spec in the catalogue into the discovery index,
// each backed by a local handler named after the tool. Registration stops
// at the first failure.
func RegisterIndex(c *Catalog, idx index.Index) error {
	for _, spec := range c.List() {
		if err := idx.RegisterTool(spec.ModelTool(), model.NewLocalBackend(spec.Name)); err != nil {
			return err
		}
	}
	return nil
}
