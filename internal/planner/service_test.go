package planner

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planflow/planflow/internal/conversation"
	"github.com/planflow/planflow/internal/errors"
	"github.com/planflow/planflow/internal/gate"
)

func fixedNow() time.Time {
	return time.Date(2026, time.August, 31, 9, 0, 0, 0, time.UTC)
}

func TestPlanner_GateRejectionShortCircuits(t *testing.T) {
	client := &scriptedClient{}
	chain := NewChain(client, nil, 0, quietLogger())
	planner := New(gate.NewRuleGate(), chain, quietLogger(), fixedNow)

	history := conversation.History{Messages: []conversation.Turn{
		{Role: conversation.RoleUser, Content: "hi"},
	}}
	p, err := planner.GeneratePlan(context.Background(), history)

	assert.Nil(t, p)
	require.Error(t, err)
	var pfErr *errors.PlanFlowError
	require.ErrorAs(t, err, &pfErr)
	assert.True(t, pfErr.IsCategory("GATE"))
	assert.Empty(t, client.requests, "models must not be called for gated input")
}

func TestPlanner_ModelPlanReturned(t *testing.T) {
	client := &scriptedClient{responses: []scriptedResponse{
		{content: validPlanJSON},
	}}
	chain := NewChain(client, nil, 0, quietLogger())
	planner := New(gate.NewRuleGate(), chain, quietLogger(), fixedNow)

	p, err := planner.GeneratePlan(context.Background(), testHistory())

	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Fitness App Build", p.ProjectName)
}

func TestPlanner_ExhaustionFallsBackToBuilder(t *testing.T) {
	client := &scriptedClient{responses: []scriptedResponse{
		{err: fmt.Errorf("down")},
		{err: fmt.Errorf("down")},
		{err: fmt.Errorf("down")},
	}}
	chain := NewChain(client, nil, 0, quietLogger())
	planner := New(gate.NewRuleGate(), chain, quietLogger(), fixedNow)

	p, err := planner.GeneratePlan(context.Background(), testHistory())

	require.NoError(t, err, "exhaustion must not surface as an error")
	require.NotNil(t, p)
	assert.NoError(t, p.Validate())
	assert.Contains(t, p.ProjectName, "Fitness")
	require.NotEmpty(t, p.Schedule.Tasks)
	assert.Equal(t, "2026-08-31", p.Schedule.Tasks[0].StartDate)
}

func TestPlanner_FallbackPlanIsDeterministic(t *testing.T) {
	makePlanner := func() *Planner {
		client := &scriptedClient{responses: []scriptedResponse{
			{err: fmt.Errorf("down")},
			{err: fmt.Errorf("down")},
			{err: fmt.Errorf("down")},
		}}
		return New(gate.NewRuleGate(), NewChain(client, nil, 0, quietLogger()), quietLogger(), fixedNow)
	}

	first, err := makePlanner().GeneratePlan(context.Background(), testHistory())
	require.NoError(t, err)
	second, err := makePlanner().GeneratePlan(context.Background(), testHistory())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
