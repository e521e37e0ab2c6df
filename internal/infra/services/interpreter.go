package services

import (
	"regexp"
	"strconv"
	"strings"

	"car-advisor/internal/domain/entities"
)

// Interpreter turns free-text answers into typed facts. Every extractor is
// total: unmatched text falls back to a best-effort default, never an error.
// All matching is case-insensitive and looks only at the raw answer.
type Interpreter struct{}

func NewInterpreter() *Interpreter {
	return &Interpreter{}
}

var (
	reFirstTime = regexp.MustCompile(`(?i)first|never|new to|first car|never owned`)
	reLeaseEnd  = regexp.MustCompile(`(?i)lease|leasing`)
	reUpgrading = regexp.MustCompile(`(?i)upgrade|replace|trade|selling`)

	// Ordered: a range wins over "around N" wins over a bare number.
	reBudgetRange  = regexp.MustCompile(`\$?\s*(\d+)\s*-\s*\$?\s*(\d+)`)
	reBudgetAround = regexp.MustCompile(`(?i)around\s+\$?\s*(\d+)`)
	reBudgetMaybe  = regexp.MustCompile(`(?i)maybe\s+\$?\s*(\d+)`)
	reBudgetBare   = regexp.MustCompile(`\$?\s*(\d+)`)

	reCreditExcellent = regexp.MustCompile(`(?i)excellent|great|800|780|750`)
	reCreditGood      = regexp.MustCompile(`(?i)good|decent|700|720`)
	reCreditFair      = regexp.MustCompile(`(?i)fair|average|650|660`)
	reCreditBuilding  = regexp.MustCompile(`(?i)building|rebuilding|working on|bad|poor`)
	reCreditUnsure    = regexp.MustCompile(`(?i)don't know|not sure|unsure`)

	reTradeIn        = regexp.MustCompile(`(?i)trade|trade-in|current car|old car|my car`)
	reTradeVehicle   = regexp.MustCompile(`((?:19|20)\d{2})\s+([A-Za-z][A-Za-z0-9-]*)`)
	reTradeThousands = regexp.MustCompile(`(?i)\$?\s*(\d+)\s*k\b`)

	reMentionFamily    = regexp.MustCompile(`(?i)family|kids|children|carpool|school`)
	reMentionKids      = regexp.MustCompile(`(?i)kids|children|toddler|baby|car seat`)
	reMentionWork      = regexp.MustCompile(`(?i)work|job|office|business|contractor`)
	reMentionBusiness  = regexp.MustCompile(`(?i)business|contractor|self-employed`)
	reMentionCommute   = regexp.MustCompile(`(?i)commute|drive to work|daily`)
	reMentionAdventure = regexp.MustCompile(`(?i)adventure|camping|outdoors|road trip`)
	reMentionCity      = regexp.MustCompile(`(?i)city|urban|downtown|parking`)

	reIntensityMust = regexp.MustCompile(`(?i)must|have to|need to|#1|most important`)
	reIntensityNice = regexp.MustCompile(`(?i)would like|prefer|hope`)
)

// priorityPatterns is ordered; the first matching category becomes the top
// priority and the remainder become secondary.
var priorityPatterns = []struct {
	key string
	re  *regexp.Regexp
}{
	{"payment", regexp.MustCompile(`(?i)payment|monthly|afford|budget`)},
	{"fuel", regexp.MustCompile(`(?i)fuel|gas|mpg|economy|efficient`)},
	{"safety", regexp.MustCompile(`(?i)safety|safe|protect`)},
	{"tech", regexp.MustCompile(`(?i)tech|technology|carplay|android`)},
	{"reliability", regexp.MustCompile(`(?i)reliable|dependable|last|durable`)},
	{"space", regexp.MustCompile(`(?i)space|room|cargo|seats`)},
	{"style", regexp.MustCompile(`(?i)look|style|cool|fun|sporty`)},
}

// BuyerIntent classifies why the user is shopping. First match wins.
func (i *Interpreter) BuyerIntent(answer string) string {
	switch {
	case reFirstTime.MatchString(answer):
		return "first_time"
	case reLeaseEnd.MatchString(answer):
		return "lease_end"
	case reUpgrading.MatchString(answer):
		return "upgrading"
	default:
		return "exploring"
	}
}

// BudgetAmount extracts a dollar figure. A range averages its two bounds;
// commas and currency symbols are tolerated; no match yields 0.
func (i *Interpreter) BudgetAmount(answer string) float64 {
	cleaned := strings.ReplaceAll(answer, ",", "")

	if m := reBudgetRange.FindStringSubmatch(cleaned); m != nil {
		low, _ := strconv.ParseFloat(m[1], 64)
		high, _ := strconv.ParseFloat(m[2], 64)
		return (low + high) / 2
	}
	for _, re := range []*regexp.Regexp{reBudgetAround, reBudgetMaybe, reBudgetBare} {
		if m := re.FindStringSubmatch(cleaned); m != nil {
			value, _ := strconv.ParseFloat(m[1], 64)
			return value
		}
	}
	return 0
}

// CreditTier maps score bands and sentiment words to a tier.
func (i *Interpreter) CreditTier(answer string) entities.CreditAssessment {
	switch {
	case reCreditExcellent.MatchString(answer):
		return entities.CreditAssessment{Level: "excellent", Confidence: "high"}
	case reCreditGood.MatchString(answer):
		return entities.CreditAssessment{Level: "good", Confidence: "high"}
	case reCreditFair.MatchString(answer):
		return entities.CreditAssessment{Level: "fair", Confidence: "medium"}
	case reCreditBuilding.MatchString(answer):
		return entities.CreditAssessment{Level: "building", Confidence: "low", NeedsReassurance: true}
	case reCreditUnsure.MatchString(answer):
		return entities.CreditAssessment{Level: "unsure", Confidence: "unsure", NeedsReassurance: true}
	default:
		return entities.CreditAssessment{Level: "fair", Confidence: "medium"}
	}
}

// TradeInMention detects whether a trade-in came up; vehicle and value
// extraction are best-effort.
func (i *Interpreter) TradeInMention(answer string) entities.TradeIn {
	result := entities.TradeIn{HasTradeIn: reTradeIn.MatchString(answer)}
	if !result.HasTradeIn {
		return result
	}
	if m := reTradeVehicle.FindStringSubmatch(answer); m != nil {
		result.Vehicle = m[1] + " " + m[2]
	}
	cleaned := strings.ReplaceAll(answer, ",", "")
	if m := reTradeThousands.FindStringSubmatch(cleaned); m != nil {
		value, _ := strconv.ParseFloat(m[1], 64)
		result.EstimatedValue = value * 1000
	} else if m := reBudgetBare.FindStringSubmatch(cleaned); m != nil {
		result.EstimatedValue, _ = strconv.ParseFloat(m[1], 64)
	}
	return result
}

// LifestyleIntent runs the independent category detectors and derives a
// single primary use. The precedence is fixed: commute < family <
// work/business < adventure, later overrides earlier.
func (i *Interpreter) LifestyleIntent(answer string) entities.Lifestyle {
	mentions := entities.LifestyleMentions{
		Family:    reMentionFamily.MatchString(answer),
		Kids:      reMentionKids.MatchString(answer),
		Work:      reMentionWork.MatchString(answer),
		Business:  reMentionBusiness.MatchString(answer),
		Commute:   reMentionCommute.MatchString(answer),
		Adventure: reMentionAdventure.MatchString(answer),
		City:      reMentionCity.MatchString(answer),
	}

	primaryUse := "general"
	if mentions.Commute {
		primaryUse = "commute"
	}
	if mentions.Family {
		primaryUse = "family"
	}
	if mentions.Work || mentions.Business {
		primaryUse = "work"
	}
	if mentions.Adventure {
		primaryUse = "adventure"
	}

	var keywords []string
	for _, word := range strings.Fields(strings.ToLower(answer)) {
		if len(word) > 3 {
			keywords = append(keywords, word)
		}
	}

	return entities.Lifestyle{PrimaryUse: primaryUse, Mentions: mentions, Keywords: keywords}
}

// PriorityIntent ranks the fixed priority categories mentioned in the
// answer and classifies how urgently they were stated.
func (i *Interpreter) PriorityIntent(answer string) entities.Priorities {
	var matched []string
	for _, p := range priorityPatterns {
		if p.re.MatchString(answer) {
			matched = append(matched, p.key)
		}
	}

	intensity := "important"
	if reIntensityMust.MatchString(answer) {
		intensity = "must_have"
	} else if reIntensityNice.MatchString(answer) {
		intensity = "nice_to_have"
	}

	top := "reliability"
	var secondary []string
	if len(matched) > 0 {
		top = matched[0]
		secondary = matched[1:]
	}

	return entities.Priorities{TopPriority: top, SecondaryPriorities: secondary, Intensity: intensity}
}
