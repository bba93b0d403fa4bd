package approval

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultChain(t *testing.T) {
	tests := []struct {
		request      string
		wantApprover string
		wantDecision string
	}{
		{"изменить материалы", ApproverInstructor, DecisionInstructor},
		{"изменить структура", ApproverMethodology, DecisionMethodology},
		{"поменять расписание", ApproverManagement, DecisionManagement},
		{"", ApproverManagement, DecisionManagement},
		{"структура и материалы", ApproverInstructor, DecisionInstructor},
		{"Материалы", ApproverManagement, DecisionManagement},
	}

	chain := DefaultChain()
	for _, tt := range tests {
		t.Run(tt.request, func(t *testing.T) {
			req := NewRequest(tt.request)
			res, ok := chain.Handle(req)
			require.True(t, ok)
			assert.Equal(t, tt.wantApprover, res.Approver)
			assert.Equal(t, tt.wantDecision, res.Decision)
			assert.Equal(t, req.ID, res.RequestID)
		})
	}
}

func TestChain_WithoutFallback(t *testing.T) {
	chain := NewChain([]Rule{
		{Approver: ApproverInstructor, Decision: DecisionInstructor, Match: Contains(KeywordMaterials)},
	}, nil)

	res, ok := chain.HandleText("изменить структура")
	assert.False(t, ok)
	assert.Empty(t, res.Approver)
	assert.Empty(t, res.Decision)

	res, ok = chain.HandleText("новые материалы")
	assert.True(t, ok)
	assert.Equal(t, DecisionInstructor, res.Decision)
}

func TestChain_OrderMatters(t *testing.T) {
	chain := NewChain([]Rule{
		{Approver: ApproverMethodology, Decision: DecisionMethodology, Match: Contains(KeywordStructure)},
		{Approver: ApproverInstructor, Decision: DecisionInstructor, Match: Contains(KeywordMaterials)},
	}, nil)

	res, ok := chain.HandleText("материалы и структура")
	require.True(t, ok)
	assert.Equal(t, ApproverMethodology, res.Approver)
}

func TestChain_NilMatchAcceptsAll(t *testing.T) {
	chain := NewChain([]Rule{{Approver: "anyone", Decision: "ok"}}, nil)
	res, ok := chain.HandleText("что угодно")
	require.True(t, ok)
	assert.Equal(t, "anyone", res.Approver)
}

func TestNewChain_CopiesRules(t *testing.T) {
	rules := []Rule{{Approver: ApproverInstructor, Decision: DecisionInstructor, Match: Contains(KeywordMaterials)}}
	chain := NewChain(rules, nil)
	rules[0].Decision = "changed"

	res, _ := chain.HandleText("материалы")
	assert.Equal(t, DecisionInstructor, res.Decision)
}

func TestNewRequest_UniqueIDs(t *testing.T) {
	a, b := NewRequest("x"), NewRequest("x")
	assert.NotEqual(t, uuid.Nil, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestChain_HandleAll(t *testing.T) {
	var requests []Request
	for i := 0; i < 20; i++ {
		switch i % 3 {
		case 0:
			requests = append(requests, NewRequest(fmt.Sprintf("материалы %d", i)))
		case 1:
			requests = append(requests, NewRequest(fmt.Sprintf("структура %d", i)))
		default:
			requests = append(requests, NewRequest(fmt.Sprintf("другое %d", i)))
		}
	}

	results, err := DefaultChain().HandleAll(context.Background(), requests, 4)
	require.NoError(t, err)
	require.Len(t, results, len(requests))

	want := []string{ApproverInstructor, ApproverMethodology, ApproverManagement}
	for i, res := range results {
		assert.Equal(t, requests[i].ID, res.RequestID)
		assert.Equal(t, want[i%3], res.Approver)
	}
}

func TestChain_HandleAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := DefaultChain().HandleAll(ctx, []Request{NewRequest("a")}, 0)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestChain_HandleAllEmpty(t *testing.T) {
	results, err := DefaultChain().HandleAll(context.Background(), nil, 2)
	require.NoError(t, err)
	assert.Empty(t, results)
}
