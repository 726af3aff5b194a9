package planner

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planflow/planflow/internal/conversation"
	"github.com/planflow/planflow/internal/log"
	"github.com/planflow/planflow/internal/provider"
)

const validPlanJSON = `{
	"projectName": "Fitness App Build",
	"executiveSummary": "An eight week build of a fitness tracking app.",
	"keyMilestones": ["Design complete", "MVP launched"],
	"technologyStack": [
		{"component": "Frontend", "technology": "React Native", "rationale": "Cross-platform"}
	],
	"resourceSuggestions": ["1x Mobile Developer"],
	"ganttData": {
		"data": [
			{"id": 1, "text": "Design", "start_date": "2026-09-01", "duration": 5, "progress": 0, "owner": "Designer"},
			{"id": 2, "text": "Build", "start_date": "2026-09-08", "duration": 10, "progress": 0, "owner": "Developer"}
		],
		"links": [
			{"id": 1, "source": 1, "target": 2, "type": "0"}
		]
	}
}`

// scriptedClient returns one canned response per call, in order.
type scriptedClient struct {
	responses []scriptedResponse
	requests  []*provider.GenerateRequest
}

type scriptedResponse struct {
	content string
	err     error
}

func (c *scriptedClient) Generate(_ context.Context, req *provider.GenerateRequest) (*provider.GenerateResponse, error) {
	c.requests = append(c.requests, req)
	if len(c.requests) > len(c.responses) {
		return nil, fmt.Errorf("unexpected call %d", len(c.requests))
	}
	r := c.responses[len(c.requests)-1]
	if r.err != nil {
		return nil, r.err
	}
	return &provider.GenerateResponse{Content: r.content, Model: req.Model}, nil
}

func quietLogger() *log.Logger {
	return log.New(log.Config{Level: log.LevelError, Format: log.FormatJSON, Output: io.Discard})
}

func testHistory() conversation.History {
	return conversation.History{Messages: []conversation.Turn{
		{Role: conversation.RoleUser, Content: "Build a fitness app in 2 months"},
	}}
}

func TestChain_FirstModelWins(t *testing.T) {
	client := &scriptedClient{responses: []scriptedResponse{
		{content: validPlanJSON},
	}}
	chain := NewChain(client, nil, 0, quietLogger())

	p, results := chain.Generate(context.Background(), testHistory(), time.Now())

	require.NotNil(t, p)
	assert.Equal(t, "Fitness App Build", p.ProjectName)
	require.Len(t, results, 1)
	assert.Equal(t, "llama-3.3-70b-versatile", results[0].Model)
	assert.NoError(t, results[0].Err)
	require.Len(t, client.requests, 1)
	assert.InDelta(t, 0.3, client.requests[0].Temperature, 1e-9)
	assert.True(t, client.requests[0].JSONObject)
}

func TestChain_FallsThroughToThirdModel(t *testing.T) {
	client := &scriptedClient{responses: []scriptedResponse{
		{err: fmt.Errorf("model overloaded")},
		{content: "this is not json"},
		{content: validPlanJSON},
	}}
	chain := NewChain(client, nil, 0, quietLogger())

	p, results := chain.Generate(context.Background(), testHistory(), time.Now())

	require.NotNil(t, p)
	require.Len(t, results, 3)
	assert.Error(t, results[0].Err)
	assert.Error(t, results[1].Err)
	assert.NoError(t, results[2].Err)
	assert.Equal(t, "gemma2-9b-it", results[2].Model)
	require.Len(t, client.requests, 3)
	assert.Equal(t, "gemma2-9b-it", client.requests[2].Model)
}

func TestChain_AllModelsFail(t *testing.T) {
	client := &scriptedClient{responses: []scriptedResponse{
		{err: fmt.Errorf("boom")},
		{content: `{"error": "Invalid input"}`},
		{content: "garbage"},
	}}
	chain := NewChain(client, nil, 0, quietLogger())

	p, results := chain.Generate(context.Background(), testHistory(), time.Now())

	assert.Nil(t, p)
	require.Len(t, results, 3)
	for _, r := range results {
		assert.Error(t, r.Err, "model %s", r.Model)
	}
}

func TestChain_StopsAfterSuccess(t *testing.T) {
	client := &scriptedClient{responses: []scriptedResponse{
		{err: fmt.Errorf("down")},
		{content: validPlanJSON},
	}}
	chain := NewChain(client, nil, 0, quietLogger())

	p, results := chain.Generate(context.Background(), testHistory(), time.Now())

	require.NotNil(t, p)
	assert.Len(t, results, 2)
	assert.Len(t, client.requests, 2, "third model must not be called")
}

func TestChain_SystemPromptCarriesDate(t *testing.T) {
	client := &scriptedClient{responses: []scriptedResponse{
		{content: validPlanJSON},
	}}
	chain := NewChain(client, nil, 0, quietLogger())
	now := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)

	_, _ = chain.Generate(context.Background(), testHistory(), now)

	require.Len(t, client.requests, 1)
	messages := client.requests[0].Messages
	require.NotEmpty(t, messages)
	assert.Equal(t, "system", messages[0].Role)
	assert.Contains(t, messages[0].Content, "August 31, 2026")
	require.Len(t, messages, 2)
	assert.Equal(t, "user", messages[1].Role)
}

func TestChain_CustomAttempts(t *testing.T) {
	client := &scriptedClient{responses: []scriptedResponse{
		{content: validPlanJSON},
	}}
	attempts := []Attempt{{Model: "custom-model", Temperature: 0.5}}
	chain := NewChain(client, attempts, time.Second, quietLogger())

	p, results := chain.Generate(context.Background(), testHistory(), time.Now())

	require.NotNil(t, p)
	require.Len(t, results, 1)
	assert.Equal(t, "custom-model", results[0].Model)
	assert.InDelta(t, 0.5, client.requests[0].Temperature, 1e-9)
}
