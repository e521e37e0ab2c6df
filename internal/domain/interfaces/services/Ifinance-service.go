package services

import (
	"time"

	"car-advisor/internal/domain/dto"
	"car-advisor/internal/domain/entities"
)

// IFinanceService is the pure pricing collaborator: no state, no I/O.
type IFinanceService interface {
	APRForCreditTier(tier string, lease bool) float64
	ComputeFinancing(msrp, down, tradeIn float64, termMonths int, apr float64) dto.FinancingOption
	ComputeLeasing(msrp, down float64, termMonths int, apr, residualPct float64) dto.FinancingOption
	AffordabilityScore(totalMonthly, profileBudget, requestBudget float64) int
	PaymentSchedule(amount, apr float64, termMonths int, start time.Time) []dto.PaymentScheduleItem
	FinancialTips(profile *entities.UserProfile, finance, lease dto.FinancingOption) []dto.FinancialTip
}
