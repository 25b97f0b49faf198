package tool_test

import (
	"context"
	"encoding/json"
	"testing"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	tool "github.com/mutablelogic/go-nws/pkg/tool"
	assert "github.com/stretchr/testify/assert"
)

type stubTool struct {
	name   string
	schema *jsonschema.Schema
	last   json.RawMessage
}

func (s *stubTool) Name() string                        { return s.name }
func (s *stubTool) Description() string                 { return "stub" }
func (s *stubTool) Schema() (*jsonschema.Schema, error) { return s.schema, nil }
func (s *stubTool) Run(_ context.Context, input json.RawMessage) (any, error) {
	s.last = input
	return "ok", nil
}

func Test_toolkit_001(t *testing.T) {
	assert := assert.New(t)

	tk, err := tool.NewToolkit(&stubTool{name: "my_tool"})
	assert.NoError(err)
	assert.NotNil(tk)
	assert.Len(tk.Tools(), 1)
	assert.NotNil(tk.Lookup("my_tool"))
	assert.Nil(tk.Lookup("other_tool"))
}

func Test_toolkit_002(t *testing.T) {
	assert := assert.New(t)

	// Invalid name
	_, err := tool.NewToolkit(&stubTool{name: "not a name"})
	assert.Error(err)

	// Duplicate name
	_, err = tool.NewToolkit(&stubTool{name: "my_tool"}, &stubTool{name: "my_tool"})
	assert.Error(err)
}

func Test_toolkit_003(t *testing.T) {
	assert := assert.New(t)

	stub := &stubTool{name: "my_tool"}
	tk, err := tool.NewToolkit(stub)
	assert.NoError(err)

	// Tool not found
	_, err = tk.Run(context.Background(), "other_tool", nil)
	assert.Error(err)

	// Run with nil input
	result, err := tk.Run(context.Background(), "my_tool", nil)
	assert.NoError(err)
	assert.Equal("ok", result)

	// Run with raw JSON input
	result, err = tk.Run(context.Background(), "my_tool", json.RawMessage(`{"a":1}`))
	assert.NoError(err)
	assert.Equal("ok", result)
	assert.JSONEq(`{"a":1}`, string(stub.last))

	// Run with a value which is marshalled to JSON
	result, err = tk.Run(context.Background(), "my_tool", map[string]any{"b": 2})
	assert.NoError(err)
	assert.Equal("ok", result)
	assert.JSONEq(`{"b":2}`, string(stub.last))
}

func Test_toolkit_004(t *testing.T) {
	assert := assert.New(t)

	type input struct {
		State string `json:"state"`
	}
	schema, err := jsonschema.For[input](nil)
	assert.NoError(err)

	tk, err := tool.NewToolkit(&stubTool{name: "my_tool", schema: schema})
	assert.NoError(err)

	// Input which does not match the schema
	_, err = tk.Run(context.Background(), "my_tool", json.RawMessage(`{"state":42}`))
	assert.Error(err)

	// Input which matches the schema
	result, err := tk.Run(context.Background(), "my_tool", json.RawMessage(`{"state":"CA"}`))
	assert.NoError(err)
	assert.Equal("ok", result)
}
