package services

import (
	"fmt"
	"math"
	"time"

	"car-advisor/internal/domain/dto"
	"car-advisor/internal/domain/entities"
)

const (
	monthlyInsuranceEstimate   = 125.0
	monthlyMaintenanceEstimate = 50.0
	leaseMileageLimit          = 12000
	leaseExcessMileageFee      = 0.25
)

// FinanceCalculator is the pure pricing collaborator: every method is a
// function of its arguments, no state, no I/O.
type FinanceCalculator struct{}

func NewFinanceCalculator() *FinanceCalculator {
	return &FinanceCalculator{}
}

var financeAPRByTier = map[string]float64{
	"excellent": 4.9,
	"good":      6.4,
	"fair":      8.9,
	"building":  12.5,
	"unsure":    9.9,
}

// APRForCreditTier maps a credit tier to a representative APR. Lease money
// factors run about two points cheaper.
func (fc *FinanceCalculator) APRForCreditTier(tier string, lease bool) float64 {
	apr, ok := financeAPRByTier[tier]
	if !ok {
		apr = financeAPRByTier["fair"]
	}
	if lease {
		apr -= 2.0
		if apr < 1.0 {
			apr = 1.0
		}
	}
	return apr
}

// ComputeFinancing amortizes a standard loan.
func (fc *FinanceCalculator) ComputeFinancing(msrp, down, tradeIn float64, termMonths int, apr float64) dto.FinancingOption {
	amountFinanced := msrp - down - tradeIn
	if amountFinanced < 0 {
		amountFinanced = 0
	}

	monthly := amortizedPayment(amountFinanced, apr, termMonths)
	totalInterest := monthly*float64(termMonths) - amountFinanced
	if totalInterest < 0 {
		totalInterest = 0
	}

	return dto.FinancingOption{
		Type:               "finance",
		VehiclePrice:       msrp,
		DownPayment:        down,
		TradeInValue:       tradeIn,
		AmountFinanced:     round2(amountFinanced),
		TermMonths:         termMonths,
		APR:                apr,
		MonthlyPayment:     round2(monthly),
		MonthlyInsurance:   monthlyInsuranceEstimate,
		MonthlyMaintenance: monthlyMaintenanceEstimate,
		TotalMonthly:       round2(monthly + monthlyInsuranceEstimate + monthlyMaintenanceEstimate),
		TotalInterest:      round2(totalInterest),
		TotalCost:          round2(down + monthly*float64(termMonths)),
	}
}

// ComputeLeasing uses the standard depreciation-plus-rent-charge lease
// formula with a residual value percentage of MSRP.
func (fc *FinanceCalculator) ComputeLeasing(msrp, down float64, termMonths int, apr, residualPct float64) dto.FinancingOption {
	residual := msrp * residualPct
	capitalizedCost := msrp - down
	depreciation := (capitalizedCost - residual) / float64(termMonths)
	if depreciation < 0 {
		depreciation = 0
	}
	moneyFactor := apr / 2400
	rentCharge := (capitalizedCost + residual) * moneyFactor
	monthly := depreciation + rentCharge

	return dto.FinancingOption{
		Type:               "lease",
		VehiclePrice:       msrp,
		DownPayment:        down,
		AmountFinanced:     round2(capitalizedCost),
		TermMonths:         termMonths,
		APR:                apr,
		MonthlyPayment:     round2(monthly),
		MonthlyInsurance:   monthlyInsuranceEstimate,
		MonthlyMaintenance: monthlyMaintenanceEstimate,
		TotalMonthly:       round2(monthly + monthlyInsuranceEstimate + monthlyMaintenanceEstimate),
		TotalInterest:      round2(rentCharge * float64(termMonths)),
		TotalCost:          round2(down + monthly*float64(termMonths)),
		ResidualValue:      round2(residual),
		MileageLimit:       leaseMileageLimit,
		ExcessMileageFee:   leaseExcessMileageFee,
	}
}

// AffordabilityScore grades a total monthly cost against the user's stated
// budget on a 0-100 scale. With no budget to compare against it returns a
// neutral 50.
func (fc *FinanceCalculator) AffordabilityScore(totalMonthly, profileBudget, requestBudget float64) int {
	target := profileBudget
	if target == 0 {
		target = requestBudget
	}
	if target == 0 {
		return 50
	}

	ratio := totalMonthly / target
	score := 100 - (ratio-0.7)*125
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return int(math.Round(score))
}

// PaymentSchedule produces the amortization table for a financed amount.
func (fc *FinanceCalculator) PaymentSchedule(amount, apr float64, termMonths int, start time.Time) []dto.PaymentScheduleItem {
	monthlyRate := apr / 100 / 12
	payment := amortizedPayment(amount, apr, termMonths)

	schedule := make([]dto.PaymentScheduleItem, 0, termMonths)
	balance := amount
	for i := 1; i <= termMonths; i++ {
		interest := balance * monthlyRate
		principal := payment - interest
		if principal > balance {
			principal = balance
		}
		balance -= principal
		schedule = append(schedule, dto.PaymentScheduleItem{
			PaymentNumber:    i,
			Date:             start.AddDate(0, i, 0).Format("2006-01-02"),
			Principal:        round2(principal),
			Interest:         round2(interest),
			TotalPayment:     round2(payment),
			RemainingBalance: round2(balance),
		})
	}
	return schedule
}

// FinancialTips derives coaching tips from the profile and both computed
// options.
func (fc *FinanceCalculator) FinancialTips(profile *entities.UserProfile, finance, lease dto.FinancingOption) []dto.FinancialTip {
	var tips []dto.FinancialTip

	if finance.DownPayment < finance.VehiclePrice*0.1 {
		tips = append(tips, dto.FinancialTip{
			Category:    "savings",
			Title:       "Consider a bigger down payment",
			Description: fmt.Sprintf("Putting 10%% down (~$%.0f) lowers your monthly payment and total interest.", finance.VehiclePrice*0.1),
			Impact:      "high",
			Actionable:  true,
			Action:      "Increase your down payment",
		})
	}

	if profile != nil {
		switch profile.CreditScore {
		case "building", "unsure":
			tips = append(tips, dto.FinancialTip{
				Category:    "credit",
				Title:       "Your rate can improve",
				Description: "A few months of on-time payments can move you into a better APR band before you buy.",
				Impact:      "high",
				Actionable:  true,
				Action:      "Check your score and dispute errors",
			})
		}
		if profile.TradeIn != nil && profile.TradeIn.HasTradeIn && finance.TradeInValue == 0 {
			tips = append(tips, dto.FinancialTip{
				Category:    "budget",
				Title:       "Get your trade-in appraised",
				Description: "Your trade-in was not counted here; a real appraisal could cut the amount financed.",
				Impact:      "medium",
				Actionable:  true,
				Action:      "Request a trade-in estimate",
			})
		}
	}

	if lease.MonthlyPayment < finance.MonthlyPayment-50 {
		tips = append(tips, dto.FinancialTip{
			Category:    "budget",
			Title:       "Leasing runs cheaper monthly",
			Description: fmt.Sprintf("The lease saves about $%.0f per month, at the cost of ownership.", finance.MonthlyPayment-lease.MonthlyPayment),
			Impact:      "medium",
			Actionable:  false,
		})
	}

	if len(tips) == 0 {
		tips = append(tips, dto.FinancialTip{
			Category:    "timing",
			Title:       "Your plan looks solid",
			Description: "Down payment, rate, and term are balanced. Watch for seasonal incentives before signing.",
			Impact:      "low",
			Actionable:  false,
		})
	}
	return tips
}

func amortizedPayment(amount, apr float64, termMonths int) float64 {
	if termMonths <= 0 || amount <= 0 {
		return 0
	}
	monthlyRate := apr / 100 / 12
	if monthlyRate == 0 {
		return amount / float64(termMonths)
	}
	factor := math.Pow(1+monthlyRate, float64(termMonths))
	return amount * monthlyRate * factor / (factor - 1)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
