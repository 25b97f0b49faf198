package nwsapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	// Packages
	opts "github.com/mutablelogic/go-client"
	nwsapi "github.com/mutablelogic/go-nws/pkg/nwsapi"
	assert "github.com/stretchr/testify/assert"
)

func Test_tools_001(t *testing.T) {
	assert := assert.New(t)

	tools, err := nwsapi.NewTools()
	assert.NoError(err)
	assert.Len(tools, 2)

	names := make([]string, 0, len(tools))
	for _, tool := range tools {
		names = append(names, tool.Name())
	}
	assert.Contains(names, "get_alerts")
	assert.Contains(names, "get_forecast")
}

func Test_tools_002(t *testing.T) {
	assert := assert.New(t)

	tools, err := nwsapi.NewTools()
	assert.NoError(err)

	tool := tools[0]
	assert.Equal("get_alerts", tool.Name())
	assert.NotEmpty(tool.Description())

	// Test schema
	schema, err := tool.Schema()
	assert.NoError(err)
	assert.NotNil(schema)
	assert.Contains(schema.Properties, "state")

	// Missing state is rejected before any fetch
	_, err = tool.Run(context.Background(), json.RawMessage(`{}`))
	assert.Error(err)

	// Undecodable input is rejected
	_, err = tool.Run(context.Background(), json.RawMessage(`nope`))
	assert.Error(err)
}

func Test_tools_003(t *testing.T) {
	assert := assert.New(t)

	tools, err := nwsapi.NewTools()
	assert.NoError(err)

	tool := tools[1]
	assert.Equal("get_forecast", tool.Name())
	assert.NotEmpty(tool.Description())

	// Test schema
	schema, err := tool.Schema()
	assert.NoError(err)
	assert.NotNil(schema)
	assert.Contains(schema.Properties, "latitude")
	assert.Contains(schema.Properties, "longitude")
}

func Test_tools_004(t *testing.T) {
	assert := assert.New(t)

	// End to end: alerts tool against a stub upstream
	_, srv := newTestClient(t, jsonHandler(http.StatusOK, `{"features": []}`))

	tools, err := nwsapi.NewTools(opts.OptEndpoint(srv.URL))
	assert.NoError(err)

	result, err := tools[0].Run(context.Background(), json.RawMessage(`{"state": "NY"}`))
	assert.NoError(err)
	assert.Equal("No active alerts for this state.", result)
}
