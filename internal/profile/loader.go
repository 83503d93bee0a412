package profile

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/fortcfg/internal/ctxlog"
	"github.com/vk/fortcfg/internal/fsutil"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// fileRoot is the top-level structure of a profile override file.
type fileRoot struct {
	Profiles []*profileBlock `hcl:"profile,block"`
	Remain   hcl.Body        `hcl:",remain"`
}

// profileBlock is one `profile "<name>" { ... }` block. The flag attributes
// are kept as expressions so absent and explicitly-set values can be told
// apart during translation.
type profileBlock struct {
	Name         string         `hcl:"name,label"`
	FortranFlags hcl.Expression `hcl:"fortran_flags,optional"`
	CFlags       hcl.Expression `hcl:"c_flags,optional"`
}

// LoadOverrides parses profile overrides from the given path, either a
// single .hcl file or a directory of them. Overrides accumulate across
// files in lexical order, later files winning. A missing path is not an
// error; users are not required to supply one.
func LoadOverrides(ctx context.Context, path string) ([]Override, error) {
	logger := ctxlog.FromContext(ctx)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Debug("No profile override file found.", "path", path)
		return nil, nil
	}

	files, err := fsutil.FindFilesByExtension(path, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("failed to discover profile override files under %s: %w", path, err)
	}

	var overrides []Override
	parser := hclparse.NewParser()
	for _, file := range files {
		fileOverrides, err := loadOverrideFile(parser, file)
		if err != nil {
			return nil, err
		}
		overrides = append(overrides, fileOverrides...)
	}

	logger.Debug("Profile overrides loaded.", "path", path, "files", len(files), "count", len(overrides))
	return overrides, nil
}

// loadOverrideFile parses one override file into its Override list.
func loadOverrideFile(parser *hclparse.Parser, path string) ([]Override, error) {
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse profile override file %s: %w", path, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode profile override file %s: %w", path, diags)
	}

	var overrides []Override
	for _, block := range root.Profiles {
		o := Override{Profile: Name(block.Name)}

		fortran, err := evalFlagString(block.FortranFlags)
		if err != nil {
			return nil, fmt.Errorf("profile %q: %w", block.Name, err)
		}
		o.Fortran = fortran

		c, err := evalFlagString(block.CFlags)
		if err != nil {
			return nil, fmt.Errorf("profile %q: %w", block.Name, err)
		}
		o.C = c

		overrides = append(overrides, o)
	}
	return overrides, nil
}

// evalFlagString evaluates an optional flag expression to a string. A nil
// result means the attribute was absent or null.
func evalFlagString(expr hcl.Expression) (*string, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, nil
	}
	converted, err := convert.Convert(val, cty.String)
	if err != nil {
		return nil, fmt.Errorf("flag value must be a string: %w", err)
	}
	s := converted.AsString()
	return &s, nil
}
