package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"car-advisor/internal/domain/dto"
	"car-advisor/internal/domain/entities"
)

func TestAPRForCreditTier(t *testing.T) {
	fc := NewFinanceCalculator()

	assert.Equal(t, 4.9, fc.APRForCreditTier("excellent", false))
	assert.Equal(t, 6.4, fc.APRForCreditTier("good", false))
	assert.Equal(t, 12.5, fc.APRForCreditTier("building", false))
	// Unknown tiers fall back to fair.
	assert.Equal(t, 8.9, fc.APRForCreditTier("platinum", false))
	// Leasing runs two points cheaper with a floor.
	assert.Equal(t, 2.9, fc.APRForCreditTier("excellent", true))
	assert.InDelta(t, 4.4, fc.APRForCreditTier("good", true), 0.0001)
}

func TestComputeFinancing(t *testing.T) {
	fc := NewFinanceCalculator()

	option := fc.ComputeFinancing(30000, 3000, 2000, 60, 6.0)
	assert.Equal(t, "finance", option.Type)
	assert.Equal(t, 25000.0, option.AmountFinanced)
	assert.Equal(t, 60, option.TermMonths)
	// Standard amortization of $25,000 at 6% over 60 months.
	assert.InDelta(t, 483.32, option.MonthlyPayment, 0.01)
	assert.InDelta(t, option.MonthlyPayment+125+50, option.TotalMonthly, 0.01)
	assert.InDelta(t, option.MonthlyPayment*60-25000, option.TotalInterest, 0.5)
	assert.Greater(t, option.TotalInterest, 0.0)
}

func TestComputeFinancingZeroAPR(t *testing.T) {
	fc := NewFinanceCalculator()

	option := fc.ComputeFinancing(24000, 0, 0, 48, 0)
	assert.Equal(t, 500.0, option.MonthlyPayment)
	assert.Equal(t, 0.0, option.TotalInterest)
}

func TestComputeFinancingOverpaidDown(t *testing.T) {
	fc := NewFinanceCalculator()

	option := fc.ComputeFinancing(20000, 15000, 10000, 60, 6.0)
	assert.Equal(t, 0.0, option.AmountFinanced)
	assert.Equal(t, 0.0, option.MonthlyPayment)
}

func TestComputeLeasing(t *testing.T) {
	fc := NewFinanceCalculator()

	option := fc.ComputeLeasing(30000, 2000, 36, 4.4, 0.55)
	assert.Equal(t, "lease", option.Type)
	assert.Equal(t, 16500.0, option.ResidualValue)
	assert.Equal(t, 28000.0, option.AmountFinanced)

	// Depreciation (28000-16500)/36 plus rent charge (28000+16500)*4.4/2400.
	wantMonthly := (28000.0-16500.0)/36 + (28000.0+16500.0)*4.4/2400
	assert.InDelta(t, wantMonthly, option.MonthlyPayment, 0.01)
	assert.Equal(t, leaseMileageLimit, option.MileageLimit)
	assert.Equal(t, leaseExcessMileageFee, option.ExcessMileageFee)
}

func TestAffordabilityScore(t *testing.T) {
	fc := NewFinanceCalculator()

	// No budget anywhere is neutral.
	assert.Equal(t, 50, fc.AffordabilityScore(500, 0, 0))
	// Spending 70% of budget scores a perfect 100.
	assert.Equal(t, 100, fc.AffordabilityScore(350, 500, 0))
	// Spending the whole budget still scores well.
	assert.Equal(t, 63, fc.AffordabilityScore(500, 500, 0))
	// Wildly over budget bottoms out at 0.
	assert.Equal(t, 0, fc.AffordabilityScore(2000, 500, 0))
	// The request budget is the fallback when the profile has none.
	assert.Equal(t, 100, fc.AffordabilityScore(280, 0, 400))
}

func TestPaymentSchedule(t *testing.T) {
	fc := NewFinanceCalculator()
	start := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	schedule := fc.PaymentSchedule(12000, 6.0, 24, start)
	require.Len(t, schedule, 24)

	assert.Equal(t, 1, schedule[0].PaymentNumber)
	assert.Equal(t, "2026-02-15", schedule[0].Date)
	// First month's interest on $12,000 at 0.5% monthly.
	assert.InDelta(t, 60.0, schedule[0].Interest, 0.01)

	// Principal share grows while interest shrinks.
	assert.Greater(t, schedule[23].Principal, schedule[0].Principal)
	assert.Less(t, schedule[23].Interest, schedule[0].Interest)
	// The loan fully amortizes.
	assert.InDelta(t, 0.0, schedule[23].RemainingBalance, 0.01)
}

func TestFinancialTipsDownPayment(t *testing.T) {
	fc := NewFinanceCalculator()

	finance := fc.ComputeFinancing(30000, 500, 0, 60, 6.4)
	lease := fc.ComputeLeasing(30000, 500, 36, 4.4, 0.55)
	tips := fc.FinancialTips(&entities.UserProfile{CreditScore: "good"}, finance, lease)

	categories := make([]string, 0, len(tips))
	for _, tip := range tips {
		categories = append(categories, tip.Category)
	}
	assert.Contains(t, categories, "savings")
}

func TestFinancialTipsCreditBuilding(t *testing.T) {
	fc := NewFinanceCalculator()

	finance := fc.ComputeFinancing(30000, 5000, 0, 60, 12.5)
	lease := fc.ComputeLeasing(30000, 5000, 36, 10.5, 0.55)
	tips := fc.FinancialTips(&entities.UserProfile{CreditScore: "building"}, finance, lease)

	found := false
	for _, tip := range tips {
		if tip.Category == "credit" {
			found = true
			assert.True(t, tip.Actionable)
		}
	}
	assert.True(t, found)
}

func TestFinancialTipsUncountedTradeIn(t *testing.T) {
	fc := NewFinanceCalculator()

	profile := &entities.UserProfile{
		CreditScore: "good",
		TradeIn:     &entities.TradeIn{HasTradeIn: true, Vehicle: "2016 Civic"},
	}
	finance := fc.ComputeFinancing(30000, 5000, 0, 60, 6.4)
	lease := fc.ComputeLeasing(30000, 5000, 36, 4.4, 0.55)
	tips := fc.FinancialTips(profile, finance, lease)

	found := false
	for _, tip := range tips {
		if tip.Title == "Get your trade-in appraised" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestFinancialTipsFallback(t *testing.T) {
	fc := NewFinanceCalculator()

	// Healthy plan: big down payment, good credit, lease not much cheaper.
	finance := dto.FinancingOption{VehiclePrice: 30000, DownPayment: 6000, MonthlyPayment: 400}
	lease := dto.FinancingOption{MonthlyPayment: 390}
	tips := fc.FinancialTips(&entities.UserProfile{CreditScore: "excellent"}, finance, lease)

	require.Len(t, tips, 1)
	assert.Equal(t, "timing", tips[0].Category)
}
