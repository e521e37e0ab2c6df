package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"car-advisor/internal/domain/apperrors"
	"car-advisor/internal/domain/entities"
)

func terminalNode(id string) *entities.QuestionNode {
	return &entities.QuestionNode{ID: id, Route: entities.Route{Next: id}}
}

func TestInterviewGraphValidates(t *testing.T) {
	g := NewInterviewGraph()

	require.NoError(t, g.Validate(nil))
	assert.Equal(t, StartNodeID, g.Start().ID)
	assert.Equal(t, TerminalNodeID, g.TerminalID())
	assert.Equal(t, CompletionTriggerID, g.CompletionTrigger())
	assert.Equal(t, TotalQuestions, g.TotalQuestions())
}

func TestInterviewGraphDepthMatchesTotal(t *testing.T) {
	g := NewInterviewGraph()

	assert.Equal(t, TotalQuestions, g.longestPath())
}

func TestNodeLookup(t *testing.T) {
	g := NewInterviewGraph()

	node, err := g.Node("credit_conversation")
	require.NoError(t, err)
	assert.Equal(t, entities.CategoryFinancial, node.Category)

	_, err = g.Node("does_not_exist")
	assert.ErrorIs(t, err, apperrors.ErrNodeNotFound)
}

func TestResolveNextConstantRule(t *testing.T) {
	g := NewInterviewGraph()

	node, err := g.Node("priorities_tradeoffs")
	require.NoError(t, err)
	assert.Equal(t, CompletionTriggerID, g.ResolveNext(node, "anything", &entities.UserProfile{}))
}

func TestLifestyleRouteTieBreak(t *testing.T) {
	g := NewInterviewGraph()
	node, err := g.Node("lifestyle_mission")
	require.NoError(t, err)

	cases := []struct {
		name     string
		mentions entities.LifestyleMentions
		want     string
	}{
		{"family beats work and commute", entities.LifestyleMentions{Family: true, Work: true, Commute: true}, "family_reality"},
		{"work beats commute", entities.LifestyleMentions{Work: true, Commute: true}, "work_needs"},
		{"business counts as work", entities.LifestyleMentions{Business: true}, "work_needs"},
		{"commute alone", entities.LifestyleMentions{Commute: true}, "commute_reality"},
		{"nothing matched", entities.LifestyleMentions{}, "space_needs"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			profile := &entities.UserProfile{Lifestyle: &entities.Lifestyle{Mentions: tc.mentions}}
			assert.Equal(t, tc.want, g.ResolveNext(node, "whatever", profile))
		})
	}

	// No lifestyle facts at all goes to the generic space question.
	assert.Equal(t, "space_needs", g.ResolveNext(node, "whatever", &entities.UserProfile{}))
}

func TestStartRouteByBuyerType(t *testing.T) {
	g := NewInterviewGraph()
	node, err := g.Node(StartNodeID)
	require.NoError(t, err)

	assert.Equal(t, "lease_experience", g.ResolveNext(node, "", &entities.UserProfile{BuyerType: "lease_end"}))
	assert.Equal(t, "current_situation", g.ResolveNext(node, "", &entities.UserProfile{BuyerType: "upgrading"}))
	assert.Equal(t, "financial_comfort", g.ResolveNext(node, "", &entities.UserProfile{BuyerType: "first_time"}))
	assert.Equal(t, "financial_comfort", g.ResolveNext(node, "", &entities.UserProfile{}))
}

func TestResolveNextDeterministic(t *testing.T) {
	g := NewInterviewGraph()
	node, err := g.Node("down_payment_reality")
	require.NoError(t, err)

	profile := &entities.UserProfile{}
	for i := 0; i < 20; i++ {
		assert.Equal(t, "trade_in_context", g.ResolveNext(node, "I have a trade-in", profile))
		assert.Equal(t, "credit_conversation", g.ResolveNext(node, "nothing down", profile))
	}
}

func TestValidateRejectsDanglingConstantTarget(t *testing.T) {
	g := New([]*entities.QuestionNode{
		{ID: "a", Route: entities.Route{Next: "ghost"}},
		terminalNode("end"),
	}, "a", "a", 2)

	err := g.Validate(nil)
	assert.ErrorIs(t, err, apperrors.ErrGraphConfiguration)
	assert.Contains(t, err.Error(), "ghost")
}

func TestValidateRejectsComputedRuleWithoutTargets(t *testing.T) {
	g := New([]*entities.QuestionNode{
		{ID: "a", Route: entities.Route{
			Resolve: func(string, *entities.UserProfile) string { return "end" },
		}},
		terminalNode("end"),
	}, "a", "a", 2)

	assert.ErrorIs(t, g.Validate(nil), apperrors.ErrGraphConfiguration)
}

func TestValidateRejectsUnknownComputedTarget(t *testing.T) {
	g := New([]*entities.QuestionNode{
		{ID: "a", Route: entities.Route{
			Resolve: func(string, *entities.UserProfile) string { return "end" },
			Targets: []string{"end", "ghost"},
		}},
		terminalNode("end"),
	}, "a", "a", 2)

	assert.ErrorIs(t, g.Validate(nil), apperrors.ErrGraphConfiguration)
}

func TestValidateRequiresStartAndTrigger(t *testing.T) {
	nodes := []*entities.QuestionNode{terminalNode("end")}

	assert.ErrorIs(t, New(nodes, "missing", "end", 1).Validate(nil), apperrors.ErrGraphConfiguration)
	assert.ErrorIs(t, New(nodes, "end", "missing", 1).Validate(nil), apperrors.ErrGraphConfiguration)
}

func TestValidateRequiresSingleTerminal(t *testing.T) {
	g := New([]*entities.QuestionNode{
		{ID: "a", Route: entities.Route{Next: "b"}},
		{ID: "b", Route: entities.Route{Next: "a"}},
	}, "a", "a", 2)

	assert.ErrorIs(t, g.Validate(nil), apperrors.ErrGraphConfiguration)
}

func TestNodesPreservesDeclarationOrder(t *testing.T) {
	g := NewInterviewGraph()

	nodes := g.Nodes()
	require.NotEmpty(t, nodes)
	assert.Equal(t, StartNodeID, nodes[0].ID)
	assert.Equal(t, TerminalNodeID, nodes[len(nodes)-1].ID)
}
