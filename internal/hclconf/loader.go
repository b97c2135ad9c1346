// Package hclconf is the HCL implementation of the config.Loader
// interface. Plugin groups are expressed as labelled blocks whose
// attributes map alias names to reference strings:
//
//	plugins "codegen" {
//	  sqlite = "db.sqlite:Driver"
//	}
package hclconf

import (
	"context"
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/jgrey4296/dejavu/internal/ctxlog"
	"github.com/jgrey4296/dejavu/internal/plugins"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "plugins", LabelNames: []string{"group"}},
	},
}

// Load parses the given HCL files into a plugin table. Block order and
// attribute source order are preserved so that first-match alias lookups
// behave the way the file reads.
func (l *Loader) Load(ctx context.Context, paths ...string) (plugins.Table, error) {
	logger := ctxlog.FromContext(ctx)
	table := plugins.Table{}
	parser := hclparse.NewParser()

	for _, path := range paths {
		file, diags := parser.ParseHCLFile(path)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
		}

		content, diags := file.Body.Content(fileSchema)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
		}

		for _, block := range content.Blocks {
			group := block.Labels[0]
			attrs, diags := block.Body.JustAttributes()
			if diags.HasErrors() {
				return nil, fmt.Errorf("failed to read plugins block %q in %s: %w", group, path, diags)
			}

			for _, attr := range sortBySource(attrs) {
				val, diags := attr.Expr.Value(nil)
				if diags.HasErrors() {
					return nil, fmt.Errorf("failed to evaluate plugin %q in group %q: %w", attr.Name, group, diags)
				}
				if !val.Type().Equals(cty.String) {
					return nil, fmt.Errorf("plugin %q in group %q must be a string, got %s", attr.Name, group, val.Type().FriendlyName())
				}
				table.Add(group, plugins.Record{Name: attr.Name, Value: val.AsString()})
			}
		}
		logger.Debug("Loaded plugin definitions from HCL file.", "file", path)
	}

	return table, nil
}

// sortBySource restores declaration order, which JustAttributes loses.
func sortBySource(attrs hcl.Attributes) []*hcl.Attribute {
	out := make([]*hcl.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		out = append(out, attr)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Range.Start.Byte < out[j].Range.Start.Byte
	})
	return out
}
