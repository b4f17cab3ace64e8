//go:build integration

package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os/exec"
	"testing"
	"time"

	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/internal/tools"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MCPRequest represents a JSON-RPC 2.0 request
type MCPRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      any    `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
}

// MCPResponse represents a JSON-RPC 2.0 response
type MCPResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      any             `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *MCPError       `json:"error,omitempty"`
}

// MCPError represents a JSON-RPC 2.0 error
type MCPError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// MCPServerProcess manages the MCP server process for testing
type MCPServerProcess struct {
	cmd     *exec.Cmd
	stdin   io.WriteCloser
	scanner *bufio.Scanner
	nextID  int
}

func startMCPServer(t *testing.T) *MCPServerProcess {
	cmd := exec.Command("go", "run", ".", "serve", "--log-level", "debug")

	stdin, err := cmd.StdinPipe()
	require.NoError(t, err, "Failed to create stdin pipe")

	stdout, err := cmd.StdoutPipe()
	require.NoError(t, err, "Failed to create stdout pipe")

	stderr, err := cmd.StderrPipe()
	require.NoError(t, err, "Failed to create stderr pipe")

	require.NoError(t, cmd.Start(), "Failed to start MCP server")

	go func() {
		stderrScanner := bufio.NewScanner(stderr)
		for stderrScanner.Scan() {
			t.Logf("Server stderr: %s", stderrScanner.Text())
		}
	}()

	return &MCPServerProcess{
		cmd:     cmd,
		stdin:   stdin,
		scanner: bufio.NewScanner(stdout),
		nextID:  1,
	}
}

func (s *MCPServerProcess) stop() {
	s.stdin.Close()
	_ = s.cmd.Process.Kill()
}

func (s *MCPServerProcess) sendRequest(t *testing.T, method string, params any) MCPResponse {
	t.Helper()

	req := MCPRequest{JSONRPC: "2.0", ID: s.nextID, Method: method, Params: params}
	s.nextID++

	reqJSON, err := json.Marshal(req)
	require.NoError(t, err, "Failed to marshal request")

	_, err = s.stdin.Write(append(reqJSON, '\n'))
	require.NoError(t, err, "Failed to write request")

	// The first request waits for go run to compile the binary
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	done := make(chan MCPResponse, 1)
	errChan := make(chan error, 1)

	go func() {
		if !s.scanner.Scan() {
			errChan <- fmt.Errorf("server closed stdout: %v", s.scanner.Err())
			return
		}
		var resp MCPResponse
		if err := json.Unmarshal(s.scanner.Bytes(), &resp); err != nil {
			errChan <- fmt.Errorf("failed to unmarshal response: %v", err)
			return
		}
		done <- resp
	}()

	select {
	case resp := <-done:
		return resp
	case err := <-errChan:
		require.FailNow(t, "Error reading response", err.Error())
	case <-ctx.Done():
		require.FailNow(t, "Timeout waiting for response")
	}

	return MCPResponse{}
}

func (s *MCPServerProcess) callTool(t *testing.T, name string, arguments map[string]any) results.StateResult {
	t.Helper()

	resp := s.sendRequest(t, "tools/call", map[string]any{"name": name, "arguments": arguments})
	require.Nil(t, resp.Error, "Tool call %s should not return an error", name)

	var result struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
		IsError bool `json:"isError"`
	}
	require.NoError(t, json.Unmarshal(resp.Result, &result))
	require.False(t, result.IsError)
	require.NotEmpty(t, result.Content)

	var state results.StateResult
	require.NoError(t, json.Unmarshal([]byte(result.Content[0].Text), &state))
	return state
}

func TestMCPServerIntegration(t *testing.T) {
	server := startMCPServer(t)
	defer server.stop()

	resp := server.sendRequest(t, "initialize", map[string]any{
		"protocolVersion": "2024-11-05",
		"capabilities":    map[string]any{"tools": map[string]any{}},
		"clientInfo":      map[string]any{"name": "integration-test", "version": "1.0.0"},
	})
	require.Nil(t, resp.Error, "MCP initialize should not return an error")

	t.Run("ListTools", func(t *testing.T) {
		resp := server.sendRequest(t, "tools/list", map[string]any{})
		require.Nil(t, resp.Error)

		var result struct {
			Tools []struct {
				Name string `json:"name"`
			} `json:"tools"`
		}
		require.NoError(t, json.Unmarshal(resp.Result, &result))
		assert.Len(t, result.Tools, len(tools.All(nil)))
	})

	t.Run("RepeatedEquals", func(t *testing.T) {
		state := server.callTool(t, tools.ToolPressKeys, map[string]any{"keys": "5+2=="})
		assert.Equal(t, "9", state.Display)
		assert.Equal(t, "+ 2", state.Expression)
	})

	t.Run("History", func(t *testing.T) {
		resp := server.sendRequest(t, "tools/call", map[string]any{"name": tools.ToolGetHistory, "arguments": map[string]any{}})
		require.Nil(t, resp.Error)

		var result struct {
			Content []struct {
				Text string `json:"text"`
			} `json:"content"`
		}
		require.NoError(t, json.Unmarshal(resp.Result, &result))

		var history results.HistoryResult
		require.NoError(t, json.Unmarshal([]byte(result.Content[0].Text), &history))
		assert.Equal(t, 2, history.Count)
		assert.Equal(t, "7 + 2", history.Entries[0].Expression)
		assert.Equal(t, "9", history.Entries[0].Result)
	})

	t.Run("DivisionByZero", func(t *testing.T) {
		state := server.callTool(t, tools.ToolPressKeys, map[string]any{"keys": "c8/0="})
		assert.Equal(t, "Error", state.Display)
		assert.True(t, state.Error)

		state = server.callTool(t, tools.ToolInputDigit, map[string]any{"digit": "4"})
		assert.Equal(t, "4", state.Display)
		assert.False(t, state.Error)
	})
}
