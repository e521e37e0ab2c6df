package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"car-advisor/internal/domain/apperrors"
	"car-advisor/internal/domain/dto"
	Iservices "car-advisor/internal/domain/interfaces/services"
	"car-advisor/internal/infra/logger"

	"github.com/go-playground/validator/v10"
)

const (
	financeTermMonths = 60
	leaseTermMonths   = 36
	leaseResidualPct  = 0.50
	defaultDownPaymnt = 2000.0
	scheduleMonths    = 12
)

type FinanceHandlers struct {
	Logger      *logger.Logger
	FlowService Iservices.IFlowService
	Calculator  Iservices.IFinanceService
	validate    *validator.Validate
}

func NewFinanceHandlers(logger *logger.Logger, flowService Iservices.IFlowService, calculator Iservices.IFinanceService) *FinanceHandlers {
	return &FinanceHandlers{
		Logger:      logger,
		FlowService: flowService,
		Calculator:  calculator,
		validate:    validator.New(),
	}
}

// PaymentSimulation compares financing and leasing a vehicle using the
// financial facts gathered during the interview.
func (fh *FinanceHandlers) PaymentSimulation(w http.ResponseWriter, r *http.Request) {
	var req dto.PaymentSimulationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Error to process JSON")
		return
	}
	defer r.Body.Close()

	if err := fh.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	profile, err := fh.FlowService.Profile(req.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrSessionNotFound) {
			writeError(w, http.StatusNotFound, "Session not found")
			return
		}
		fh.Logger.Error(fmt.Sprintf("Error simulating payment: %v", err))
		writeError(w, http.StatusInternalServerError, "Failed to simulate payment")
		return
	}

	downPayment := defaultDownPaymnt
	var monthlyBudget, tradeInValue float64
	if profile.Budget != nil {
		if profile.Budget.DownPayment > 0 {
			downPayment = profile.Budget.DownPayment
		}
		monthlyBudget = profile.Budget.Monthly
	}
	creditScore := profile.CreditScore
	if creditScore == "" {
		creditScore = "good"
	}
	if profile.TradeIn != nil {
		tradeInValue = profile.TradeIn.EstimatedValue
	}

	financeAPR := fh.Calculator.APRForCreditTier(creditScore, false)
	financeOption := fh.Calculator.ComputeFinancing(req.MSRP, downPayment, tradeInValue, financeTermMonths, financeAPR)
	financeOption.AffordabilityScore = fh.Calculator.AffordabilityScore(financeOption.TotalMonthly, monthlyBudget, req.MonthlyBudget)

	leaseAPR := fh.Calculator.APRForCreditTier(creditScore, true)
	leaseOption := fh.Calculator.ComputeLeasing(req.MSRP, downPayment, leaseTermMonths, leaseAPR, leaseResidualPct)
	leaseOption.AffordabilityScore = fh.Calculator.AffordabilityScore(leaseOption.TotalMonthly, monthlyBudget, req.MonthlyBudget)

	recommendation := "finance"
	if leaseOption.MonthlyPayment < financeOption.MonthlyPayment-50 {
		recommendation = "lease"
	}

	schedule := fh.Calculator.PaymentSchedule(financeOption.AmountFinanced, financeAPR, financeTermMonths, time.Now())
	if len(schedule) > scheduleMonths {
		schedule = schedule[:scheduleMonths]
	}

	writeJSON(w, http.StatusOK, dto.PaymentSimulationResponse{
		Success:         true,
		VehicleName:     req.VehicleName,
		MSRP:            req.MSRP,
		FinanceOption:   financeOption,
		LeaseOption:     leaseOption,
		Recommendation:  recommendation,
		Tips:            fh.Calculator.FinancialTips(profile, financeOption, leaseOption),
		PaymentSchedule: schedule,
		UserProfile: dto.SimulationProfileView{
			MonthlyBudget: monthlyBudget,
			DownPayment:   downPayment,
			CreditScore:   creditScore,
			TradeInValue:  tradeInValue,
		},
	})
}

// Advise turns a candidate purchase plan into canned coaching copy.
func (fh *FinanceHandlers) Advise(w http.ResponseWriter, r *http.Request) {
	var req dto.AdviseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Error to process JSON")
		return
	}
	defer r.Body.Close()

	if err := fh.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "plan required")
		return
	}
	plan := req.Plan

	tips := []string{}
	if plan.APR > 4 {
		tips = append(tips, "Lowering APR by 0.5% saves noticeable interest.")
	} else {
		tips = append(tips, "APR already looks solid.")
	}
	if plan.Down < plan.Price*0.1 {
		tips = append(tips, "Aim for ~10% down to reduce monthly payment.")
	} else {
		tips = append(tips, "Down payment is strong.")
	}
	if plan.Term < 48 {
		tips = append(tips, "Extending term reduces monthly but raises total cost.")
	} else {
		tips = append(tips, "Term length balances payment and cost.")
	}

	standing := "close to cash price"
	if plan.Price-plan.Down > 0 {
		standing = "financing comfortably"
	}
	summary := fmt.Sprintf(
		"%s matches your profile. With %d months and $%.0f down, you're %s. Target $%.0f/mo: adjust APR/down to get there.",
		plan.ModelName, plan.Term, plan.Down, standing, plan.Target,
	)

	writeJSON(w, http.StatusOK, dto.AdviseResponse{Tips: tips, Summary: summary})
}
