package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuyerIntent(t *testing.T) {
	interpreter := NewInterpreter()

	assert.Equal(t, "first_time", interpreter.BuyerIntent("I'm buying my first car"))
	assert.Equal(t, "lease_end", interpreter.BuyerIntent("My lease is ending soon"))
	assert.Equal(t, "upgrading", interpreter.BuyerIntent("Looking to upgrade"))
	assert.Equal(t, "exploring", interpreter.BuyerIntent("Just browsing around here"))
}

func TestBudgetAmount(t *testing.T) {
	interpreter := NewInterpreter()

	assert.Equal(t, 350.0, interpreter.BudgetAmount("around $350 a month"))
	assert.Equal(t, 400.0, interpreter.BudgetAmount("$300-500 range"))
	assert.Equal(t, 0.0, interpreter.BudgetAmount("no idea"))
	assert.Equal(t, 2000.0, interpreter.BudgetAmount("$2,000"))
	assert.Equal(t, 450.0, interpreter.BudgetAmount("maybe 450"))
}

func TestCreditTier(t *testing.T) {
	interpreter := NewInterpreter()

	good := interpreter.CreditTier("Around 700, pretty good")
	assert.Equal(t, "good", good.Level)
	assert.Equal(t, "high", good.Confidence)

	building := interpreter.CreditTier("I'm rebuilding it")
	assert.Equal(t, "building", building.Level)
	assert.True(t, building.NeedsReassurance)

	unsure := interpreter.CreditTier("honestly not sure")
	assert.Equal(t, "unsure", unsure.Level)

	fallback := interpreter.CreditTier("it's whatever")
	assert.Equal(t, "fair", fallback.Level)
	assert.Equal(t, "medium", fallback.Confidence)
}

func TestTradeInMention(t *testing.T) {
	interpreter := NewInterpreter()

	tradeIn := interpreter.TradeInMention("I'd trade my 2016 Civic, maybe $8k")
	assert.True(t, tradeIn.HasTradeIn)
	assert.Equal(t, "2016 Civic", tradeIn.Vehicle)
	assert.Equal(t, 8000.0, tradeIn.EstimatedValue)

	none := interpreter.TradeInMention("nothing down right now")
	assert.False(t, none.HasTradeIn)
}

func TestLifestylePrecedence(t *testing.T) {
	interpreter := NewInterpreter()

	// Matches both family and commute; family wins the precedence order.
	result := interpreter.LifestyleIntent("school carpool and my daily commute")
	assert.True(t, result.Mentions.Family)
	assert.True(t, result.Mentions.Commute)
	assert.Equal(t, "family", result.PrimaryUse)

	// Adventure overrides everything it co-occurs with.
	result = interpreter.LifestyleIntent("camping trips with the kids")
	assert.Equal(t, "adventure", result.PrimaryUse)

	// Same input, same output, every time.
	for i := 0; i < 10; i++ {
		again := interpreter.LifestyleIntent("school carpool and my daily commute")
		assert.Equal(t, "family", again.PrimaryUse)
	}
}

func TestLifestyleKeywords(t *testing.T) {
	interpreter := NewInterpreter()

	result := interpreter.LifestyleIntent("my daily Highway commute")
	assert.Contains(t, result.Keywords, "highway")
	assert.Contains(t, result.Keywords, "commute")
	assert.NotContains(t, result.Keywords, "my")
}

func TestPriorityIntent(t *testing.T) {
	interpreter := NewInterpreter()

	result := interpreter.PriorityIntent("fuel economy and safety are must haves")
	assert.Equal(t, "fuel", result.TopPriority)
	assert.Equal(t, []string{"safety"}, result.SecondaryPriorities)
	assert.Equal(t, "must_have", result.Intensity)

	result = interpreter.PriorityIntent("I would prefer something sporty")
	assert.Equal(t, "style", result.TopPriority)
	assert.Equal(t, "nice_to_have", result.Intensity)

	fallback := interpreter.PriorityIntent("hmm")
	assert.Equal(t, "reliability", fallback.TopPriority)
	assert.Empty(t, fallback.SecondaryPriorities)
	assert.Equal(t, "important", fallback.Intensity)
}
