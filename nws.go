/*
go-nws exposes the US National Weather Service API
(https://api.weather.gov) as a set of callable tools, served over the
Model Context Protocol on standard input and output.

The root package defines the error codes shared across the module. The
upstream client and the tools live in pkg/nwsapi, the tool registry in
pkg/tool, and the MCP transport in pkg/mcp.
*/
package nws
