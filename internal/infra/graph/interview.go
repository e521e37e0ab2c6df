package graph

import (
	"math/rand"
	"strings"

	"car-advisor/internal/domain/entities"
)

// TotalQuestions is shared with every client; the progress display desyncs
// if the two sides disagree.
const TotalQuestions = 12

const (
	StartNodeID         = "start"
	CompletionTriggerID = "toyota_connection"
	TerminalNodeID      = "complete"
)

// Filler message pools shown between questions, keyed by mood.
var celestialMessages = map[string][]string{
	"general": {
		"Reading your chart...",
		"Aligning the stars...",
		"Your future is looking bright...",
		"Consulting the cosmic map...",
		"The universe is listening...",
		"Charting your course...",
		"Calculating your destiny...",
		"The planets are aligning...",
		"Mapping your journey...",
		"Your path is becoming clear...",
	},
	"financial": {
		"Calculating your financial constellation...",
		"Aligning your budget with the stars...",
		"Charting your financial journey...",
		"The cosmos is crunching the numbers...",
		"Your financial future is aligning...",
	},
	"lifestyle": {
		"Exploring your lifestyle galaxy...",
		"Mapping your daily adventures...",
		"The stars reveal your path...",
		"Charting your cosmic course...",
		"Your journey is taking shape...",
	},
	"matching": {
		"The stars are aligning your perfect match...",
		"Cosmic forces at work...",
		"Your destiny is unfolding...",
		"Almost there, space explorer...",
		"The universe has spoken...",
	},
}

// randomMessages samples count filler messages from a pool. Sampled once at
// graph construction; nodes are immutable afterwards.
func randomMessages(category string, count int) []string {
	pool := celestialMessages[category]
	shuffled := append([]string(nil), pool...)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if count > len(shuffled) {
		count = len(shuffled)
	}
	return shuffled[:count]
}

// NewInterviewGraph builds the Toyota matching interview.
func NewInterviewGraph() *Graph {
	nodes := []*entities.QuestionNode{
		{
			ID:          StartNodeID,
			Text:        "Let's find your perfect Toyota. What brings you here today?",
			Subtext:     "This helps us understand where you are in your journey",
			Category:    entities.CategoryIntro,
			Placeholder: "Type your answer here...",
			Examples:    []string{"I'm buying my first car", "Looking to upgrade"},
			Speech: &entities.Speech{
				Enabled:      true,
				VoicePrompt:  "Let's find your perfect Toyota. What brings you here today?",
				Emphasis:     []string{"perfect Toyota"},
				PauseAfterMS: 500,
			},
			Route: entities.Route{
				Resolve: func(answer string, profile *entities.UserProfile) string {
					switch profile.BuyerType {
					case "lease_end":
						return "lease_experience"
					case "upgrading":
						return "current_situation"
					default:
						return "financial_comfort"
					}
				},
				Targets: []string{"financial_comfort", "lease_experience", "current_situation"},
			},
		},
		{
			ID:          "current_situation",
			Text:        "Tell me about your current ride. What's working and what's not?",
			Subtext:     "Understanding your experience helps us find your perfect upgrade",
			Category:    entities.CategoryIntro,
			Placeholder: "e.g., '2015 Honda Civic, need more space'",
			Examples:    []string{"2018 sedan, too small now", "Old truck, expensive repairs"},
			Loading: &entities.LoadingTransition{
				Messages:  randomMessages("general", 3),
				Duration:  2000,
				Animation: "stars",
			},
			Speech: &entities.Speech{
				Enabled:      true,
				VoicePrompt:  "Tell me about your current ride. What's working for you, and what's not?",
				Emphasis:     []string{"current ride", "working"},
				PauseAfterMS: 500,
			},
			Route: entities.Route{Next: "financial_comfort"},
		},
		{
			ID:          "lease_experience",
			Text:        "How's leasing been for you? Thinking of leasing again or ready to own?",
			Subtext:     "No judgment either way, both have great benefits!",
			Category:    entities.CategoryIntro,
			Placeholder: "Share your thoughts...",
			Examples:    []string{"Loved the low payments", "Ready to own this time"},
			Loading: &entities.LoadingTransition{
				Messages:  randomMessages("general", 3),
				Duration:  2000,
				Animation: "constellation",
			},
			Speech: &entities.Speech{
				Enabled:      true,
				VoicePrompt:  "How's leasing been for you? Thinking of leasing again or ready to own?",
				Emphasis:     []string{"leasing", "own"},
				PauseAfterMS: 500,
			},
			Route: entities.Route{Next: "financial_comfort"},
		},
		{
			ID:          "financial_comfort",
			Text:        "Let's talk budget in a way that feels real. What monthly payment feels comfortable for you?",
			Subtext:     "Think about your lifestyle--what works without stress?",
			Category:    entities.CategoryFinancial,
			Placeholder: "e.g., 'around $350 a month'",
			Examples:    []string{"Around $300 per month", "$400-500 range"},
			Tooltip:     "Include insurance (~$100-150/mo) in your calculation",
			Loading: &entities.LoadingTransition{
				Messages:  randomMessages("financial", 3),
				Duration:  2500,
				Animation: "orbit",
			},
			Speech: &entities.Speech{
				Enabled:      true,
				VoicePrompt:  "Let's talk budget in a way that feels real. What monthly payment feels comfortable for you?",
				Emphasis:     []string{"comfortable"},
				PauseAfterMS: 800,
			},
			Route: entities.Route{
				Resolve: func(answer string, profile *entities.UserProfile) string {
					if profile.Budget == nil || profile.Budget.Monthly < 300 {
						return "financial_goals"
					}
					return "down_payment_reality"
				},
				Targets: []string{"financial_goals", "down_payment_reality"},
			},
		},
		{
			ID:          "financial_goals",
			Text:        "What matters most to you financially with this car?",
			Subtext:     "There's no wrong answer. We want to help you reach YOUR goals",
			Category:    entities.CategoryFinancial,
			Placeholder: "What's your priority?",
			Examples:    []string{"Keeping payments low", "Building my credit"},
			Loading: &entities.LoadingTransition{
				Messages:  randomMessages("financial", 3),
				Duration:  2000,
				Animation: "sparkles",
			},
			Speech: &entities.Speech{
				Enabled:      true,
				VoicePrompt:  "What matters most to you financially with this car? There's no wrong answer.",
				Emphasis:     []string{"matters most", "YOUR goals"},
				PauseAfterMS: 500,
			},
			Route: entities.Route{Next: "down_payment_reality"},
		},
		{
			ID:          "down_payment_reality",
			Text:        "How much can you comfortably put down without stressing your savings?",
			Subtext:     "Honest answer = better recommendations. Even $0 down is okay!",
			Category:    entities.CategoryFinancial,
			Placeholder: "e.g., '$2,000' or 'nothing right now'",
			Examples:    []string{"$0 - nothing down", "Around $2,000"},
			Tooltip:     "Bigger down payment = lower monthly payment",
			Loading: &entities.LoadingTransition{
				Messages:  randomMessages("financial", 3),
				Duration:  2000,
				Animation: "stars",
			},
			Speech: &entities.Speech{
				Enabled:      true,
				VoicePrompt:  "How much can you comfortably put down without stressing your savings?",
				Emphasis:     []string{"comfortably"},
				PauseAfterMS: 500,
			},
			Route: entities.Route{
				Resolve: func(answer string, profile *entities.UserProfile) string {
					if strings.Contains(strings.ToLower(answer), "trade") {
						return "trade_in_context"
					}
					return "credit_conversation"
				},
				Targets: []string{"trade_in_context", "credit_conversation"},
			},
		},
		{
			ID:          "trade_in_context",
			Text:        "Tell me about your trade-in. What's the vehicle and roughly what's it worth?",
			Subtext:     "Just ballpark. We'll get you a real estimate later",
			Category:    entities.CategoryFinancial,
			Placeholder: "e.g., '2016 Civic, maybe $8,000'",
			Examples:    []string{"2017 Accord, around $12k", "2010 truck, maybe $6k"},
			Loading: &entities.LoadingTransition{
				Messages:  randomMessages("financial", 3),
				Duration:  2000,
				Animation: "constellation",
			},
			Speech: &entities.Speech{
				Enabled:      true,
				VoicePrompt:  "Tell me about your trade-in. What's the vehicle and roughly what's it worth?",
				Emphasis:     []string{"trade-in"},
				PauseAfterMS: 500,
			},
			Route: entities.Route{Next: "credit_conversation"},
		},
		{
			ID:          "credit_conversation",
			Text:        "Let's talk credit. How would you describe your credit situation?",
			Subtext:     "We work with ALL credit levels. This helps us find the best path for YOU",
			Category:    entities.CategoryFinancial,
			Placeholder: "Be honest, we're here to help...",
			Examples:    []string{"Pretty good, around 700", "I'm rebuilding it"},
			Tooltip:     "Don't know your score? No problem!",
			Loading: &entities.LoadingTransition{
				Messages: []string{
					"Creating a safe space...",
					"No judgment here...",
					"Your honesty helps us help you...",
				},
				Duration:  2500,
				Animation: "sparkles",
			},
			Speech: &entities.Speech{
				Enabled:      true,
				VoicePrompt:  "Let's talk credit. How would you describe your credit situation?",
				Emphasis:     []string{"honest"},
				PauseAfterMS: 800,
			},
			Route: entities.Route{
				Resolve: func(answer string, profile *entities.UserProfile) string {
					switch profile.CreditScore {
					case "building", "unsure":
						return "credit_reassurance"
					default:
						return "lifestyle_mission"
					}
				},
				Targets: []string{"credit_reassurance", "lifestyle_mission"},
			},
		},
		{
			ID:          "credit_reassurance",
			Text:        "That's totally okay! Toyota has programs for your situation. What's your main concern?",
			Subtext:     "Getting approved? Monthly payments? Building credit?",
			Category:    entities.CategoryFinancial,
			Placeholder: "What worries you most?",
			Examples:    []string{"Worried about approval", "Concerned about rates"},
			Loading: &entities.LoadingTransition{
				Messages: []string{
					"You're not alone...",
					"We've got your back...",
					"Toyota welcomes everyone...",
				},
				Duration:  2000,
				Animation: "sparkles",
			},
			Speech: &entities.Speech{
				Enabled:      true,
				VoicePrompt:  "That's totally okay! Toyota has programs for your situation. What's your main concern?",
				Emphasis:     []string{"totally okay", "your situation"},
				PauseAfterMS: 500,
			},
			Route: entities.Route{Next: "lifestyle_mission"},
		},
		{
			ID:          "lifestyle_mission",
			Text:        "What's this car's mission in your life?",
			Subtext:     "Your real life matters. Let's find a car that fits YOUR world",
			Category:    entities.CategoryLifestyle,
			Placeholder: "How will you use it day-to-day?",
			Examples:    []string{"Daily commute to work", "Family trips on weekends"},
			Loading: &entities.LoadingTransition{
				Messages:  randomMessages("lifestyle", 3),
				Duration:  2500,
				Animation: "orbit",
			},
			Speech: &entities.Speech{
				Enabled:      true,
				VoicePrompt:  "What's this car's mission in your life?",
				Emphasis:     []string{"mission"},
				PauseAfterMS: 500,
			},
			Route: entities.Route{
				// Tie-break order is fixed: family beats work beats commute.
				Resolve: func(answer string, profile *entities.UserProfile) string {
					if profile.Lifestyle == nil {
						return "space_needs"
					}
					mentions := profile.Lifestyle.Mentions
					if mentions.Family {
						return "family_reality"
					}
					if mentions.Work || mentions.Business {
						return "work_needs"
					}
					if mentions.Commute {
						return "commute_reality"
					}
					return "space_needs"
				},
				Targets: []string{"family_reality", "work_needs", "commute_reality", "space_needs"},
			},
		},
		{
			ID:          "family_reality",
			Text:        "How many people regularly ride with you, and what's the vibe?",
			Subtext:     "Car seats? Teenagers? Sports equipment? Give me the real picture",
			Category:    entities.CategoryLifestyle,
			Placeholder: "Describe your passengers...",
			Examples:    []string{"2 kids in car seats", "3 teenagers with gear"},
			Loading: &entities.LoadingTransition{
				Messages:  randomMessages("lifestyle", 3),
				Duration:  2000,
				Animation: "constellation",
			},
			Speech: &entities.Speech{
				Enabled:      true,
				VoicePrompt:  "How many people regularly ride with you, and what's the vibe?",
				Emphasis:     []string{"crew"},
				PauseAfterMS: 500,
			},
			Route: entities.Route{Next: "priorities_tradeoffs"},
		},
		{
			ID:          "work_needs",
			Text:        "What do you need to haul for work?",
			Subtext:     "Tools, equipment, samples? Be specific",
			Category:    entities.CategoryLifestyle,
			Placeholder: "What goes in the vehicle?",
			Examples:    []string{"Ladders and tools", "Just laptop and briefcase"},
			Loading: &entities.LoadingTransition{
				Messages:  randomMessages("lifestyle", 3),
				Duration:  2000,
				Animation: "stars",
			},
			Speech: &entities.Speech{
				Enabled:      true,
				VoicePrompt:  "What do you need to haul for work?",
				Emphasis:     []string{"haul for work"},
				PauseAfterMS: 500,
			},
			Route: entities.Route{Next: "priorities_tradeoffs"},
		},
		{
			ID:          "commute_reality",
			Text:        "Tell me about your commute. Distance? City or highway?",
			Subtext:     "Your daily drive matters - let's make it comfortable",
			Category:    entities.CategoryLifestyle,
			Placeholder: "Describe your typical drive...",
			Examples:    []string{"25 miles, mostly highway", "5 miles, city traffic"},
			Loading: &entities.LoadingTransition{
				Messages:  randomMessages("lifestyle", 3),
				Duration:  2000,
				Animation: "orbit",
			},
			Speech: &entities.Speech{
				Enabled:      true,
				VoicePrompt:  "Tell me about your commute. Distance? City or highway?",
				Emphasis:     []string{"commute"},
				PauseAfterMS: 500,
			},
			Route: entities.Route{Next: "priorities_tradeoffs"},
		},
		{
			ID:          "space_needs",
			Text:        "How much space do you realistically need?",
			Subtext:     "People, gear, groceries - be honest!",
			Category:    entities.CategoryLifestyle,
			Placeholder: "What's your typical load?",
			Examples:    []string{"Just me and camping gear", "Weekly Costco runs"},
			Loading: &entities.LoadingTransition{
				Messages:  randomMessages("lifestyle", 3),
				Duration:  2000,
				Animation: "sparkles",
			},
			Speech: &entities.Speech{
				Enabled:      true,
				VoicePrompt:  "How much space do you realistically need? Think about people, gear, and groceries.",
				Emphasis:     []string{"realistically need"},
				PauseAfterMS: 500,
			},
			Route: entities.Route{Next: "priorities_tradeoffs"},
		},
		{
			ID:          "priorities_tradeoffs",
			Text:        "What matters MOST to you? Lower payments, fuel savings, tech, or something else?",
			Subtext:     "You can't maximize everything, what's your #1 priority?",
			Category:    entities.CategoryGoals,
			Placeholder: "What's non-negotiable?",
			Examples:    []string{"Payments under $400", "Best fuel economy"},
			Loading: &entities.LoadingTransition{
				Messages: []string{
					"Almost there, space explorer...",
					"The finish line is near...",
					"Your destiny awaits...",
				},
				Duration:  2500,
				Animation: "constellation",
			},
			Speech: &entities.Speech{
				Enabled:      true,
				VoicePrompt:  "What matters MOST to you? Lower payments, fuel savings, tech, or something else?",
				Emphasis:     []string{"matters most"},
				PauseAfterMS: 800,
			},
			Route: entities.Route{Next: CompletionTriggerID},
		},
		{
			ID:          CompletionTriggerID,
			Text:        "Last question! Any Toyota models on your radar?",
			Subtext:     "We'll match you either way - just curious!",
			Category:    entities.CategoryGoals,
			Placeholder: "Any favorites in mind?",
			Examples:    []string{"Love the RAV4", "Totally open"},
			Loading: &entities.LoadingTransition{
				Messages: []string{
					"Final checkpoint...",
					"One last question...",
					"Your matches are almost ready...",
				},
				Duration:  2000,
				Animation: "sparkles",
			},
			Speech: &entities.Speech{
				Enabled:      true,
				VoicePrompt:  "Last question! Any Toyota models on your radar?",
				Emphasis:     []string{"last question"},
				PauseAfterMS: 500,
			},
			Route: entities.Route{Next: TerminalNodeID},
		},
		{
			ID:       TerminalNodeID,
			Text:     "Amazing! The stars are aligning your perfect matches...",
			Category: entities.CategoryGoals,
			Examples: []string{},
			Loading: &entities.LoadingTransition{
				Messages:  randomMessages("matching", 3),
				Duration:  3000,
				Animation: "orbit",
			},
			Speech: &entities.Speech{
				Enabled:      true,
				VoicePrompt:  "The stars are aligning your perfect matches. Get ready for the race results!",
				Emphasis:     []string{"Amazing", "perfect matches"},
				PauseAfterMS: 1000,
			},
			Route: entities.Route{Next: TerminalNodeID},
		},
	}

	return New(nodes, StartNodeID, CompletionTriggerID, TotalQuestions)
}
