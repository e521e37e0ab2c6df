package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserProfileCloneIsDeep(t *testing.T) {
	original := UserProfile{
		BuyerType: "first_time",
		Budget:    &Budget{Monthly: 350},
		TradeIn:   &TradeIn{HasTradeIn: true, Vehicle: "2016 Civic"},
		Lifestyle: &Lifestyle{PrimaryUse: "family", Keywords: []string{"kids"}},
		Priorities: &Priorities{
			TopPriority:         "fuel",
			SecondaryPriorities: []string{"safety"},
		},
	}

	clone := original.Clone()
	clone.Budget.Monthly = 999
	clone.TradeIn.Vehicle = "changed"
	clone.Lifestyle.Keywords[0] = "changed"
	clone.Priorities.SecondaryPriorities[0] = "changed"

	assert.Equal(t, 350.0, original.Budget.Monthly)
	assert.Equal(t, "2016 Civic", original.TradeIn.Vehicle)
	assert.Equal(t, []string{"kids"}, original.Lifestyle.Keywords)
	assert.Equal(t, []string{"safety"}, original.Priorities.SecondaryPriorities)
}

func TestSessionCloneDetachesHistory(t *testing.T) {
	session := Session{
		UserID:  "u1",
		History: []AnswerRecord{{QuestionID: "start", Answer: "hi"}},
	}

	clone := session.Clone()
	clone.History[0].Answer = "changed"
	clone.History = append(clone.History, AnswerRecord{QuestionID: "next"})

	assert.Len(t, session.History, 1)
	assert.Equal(t, "hi", session.History[0].Answer)
}
