package tools

import (
	"fmt"
	"os"
	"path/filepath"

	z "github.com/Oudwins/zog"
	zi "github.com/Oudwins/zog/internals"
	"github.com/mark3labs/mcp-go/mcp"
	"gopkg.in/yaml.v3"

	excel "github.com/mz462/office-mcp/internal/excel"
	imcp "github.com/mz462/office-mcp/internal/mcp"
)

// AbsolutePathTest validates that a string argument is an absolute file path.
func AbsolutePathTest() z.Test[*string] {
	t := z.Test[*string]{}
	zi.TestFuncFromBool(func(val *string, ctx z.Ctx) bool {
		return filepath.IsAbs(*val)
	}, (*zi.Test[*string])(&t))
	return t
}

// checkWritable rejects writes to existing files the process cannot open for
// writing. A missing file passes: the backend creates it on save. Returns nil
// when the write may proceed.
func checkWritable(absolutePath string) *mcp.CallToolResult {
	if _, err := os.Stat(absolutePath); err != nil {
		return nil
	}
	if excel.FileIsNotWritable(absolutePath) {
		return imcp.NewToolResultInvalidArgumentError(fmt.Sprintf("file is not writable: %s", absolutePath))
	}
	return nil
}

// renderYAML renders a value as a fenced YAML block for tool results.
func renderYAML(v any) (string, error) {
	raw, err := yaml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to render result: %w", err)
	}
	return fmt.Sprintf("```yaml\n%s```\n", raw), nil
}
