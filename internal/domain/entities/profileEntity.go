package entities

// UserProfile accumulates the structured facts extracted from free-text
// answers over an interview. Every field is optional: consumers must
// tolerate any of them being absent.
type UserProfile struct {
	BuyerType        string      `json:"buyerType,omitempty"`
	Budget           *Budget     `json:"budget,omitempty"`
	CreditScore      string      `json:"creditScore,omitempty"`
	CreditConfidence string      `json:"creditConfidence,omitempty"`
	TradeIn          *TradeIn    `json:"tradeIn,omitempty"`
	Lifestyle        *Lifestyle  `json:"lifestyle,omitempty"`
	Priorities       *Priorities `json:"priorities,omitempty"`
}

type Budget struct {
	Monthly     float64 `json:"monthly,omitempty"`
	DownPayment float64 `json:"downPayment,omitempty"`
	Total       float64 `json:"total,omitempty"`
}

type TradeIn struct {
	HasTradeIn     bool    `json:"hasTradeIn"`
	Vehicle        string  `json:"vehicle,omitempty"`
	EstimatedValue float64 `json:"estimatedValue,omitempty"`
}

type LifestyleMentions struct {
	Family    bool `json:"family"`
	Kids      bool `json:"kids"`
	Work      bool `json:"work"`
	Business  bool `json:"business"`
	Commute   bool `json:"commute"`
	Adventure bool `json:"adventure"`
	City      bool `json:"city"`
}

type Lifestyle struct {
	PrimaryUse string            `json:"primaryUse"`
	Mentions   LifestyleMentions `json:"mentions"`
	Keywords   []string          `json:"keywords"`
}

type Priorities struct {
	TopPriority         string   `json:"topPriority"`
	SecondaryPriorities []string `json:"secondaryPriorities"`
	Intensity           string   `json:"intensity"`
}

// CreditAssessment is the interpreter's read of a credit answer.
type CreditAssessment struct {
	Level            string `json:"level"`
	Confidence       string `json:"confidence"`
	NeedsReassurance bool   `json:"needsReassurance"`
}

// Clone returns a deep copy so a mutation can be prepared without touching
// the stored profile until it is committed.
func (p *UserProfile) Clone() UserProfile {
	out := *p
	if p.Budget != nil {
		b := *p.Budget
		out.Budget = &b
	}
	if p.TradeIn != nil {
		t := *p.TradeIn
		out.TradeIn = &t
	}
	if p.Lifestyle != nil {
		l := *p.Lifestyle
		l.Keywords = append([]string(nil), p.Lifestyle.Keywords...)
		out.Lifestyle = &l
	}
	if p.Priorities != nil {
		pr := *p.Priorities
		pr.SecondaryPriorities = append([]string(nil), p.Priorities.SecondaryPriorities...)
		out.Priorities = &pr
	}
	return out
}
