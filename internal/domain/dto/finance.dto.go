package dto

type PaymentSimulationRequest struct {
	UserID        string  `json:"userId" validate:"required"`
	VehicleName   string  `json:"vehicleName" validate:"required"`
	MSRP          float64 `json:"msrp" validate:"required,gt=0"`
	MonthlyBudget float64 `json:"monthlyBudget"`
}

type FinancingOption struct {
	Type string `json:"type"`

	VehiclePrice   float64 `json:"vehiclePrice"`
	DownPayment    float64 `json:"downPayment"`
	TradeInValue   float64 `json:"tradeInValue,omitempty"`
	AmountFinanced float64 `json:"amountFinanced"`

	TermMonths int     `json:"termMonths"`
	APR        float64 `json:"apr"`

	MonthlyPayment     float64 `json:"monthlyPayment"`
	MonthlyInsurance   float64 `json:"monthlyInsurance"`
	MonthlyMaintenance float64 `json:"monthlyMaintenance"`
	TotalMonthly       float64 `json:"totalMonthly"`

	TotalInterest float64 `json:"totalInterest"`
	TotalCost     float64 `json:"totalCost"`

	ResidualValue    float64 `json:"residualValue,omitempty"`
	MileageLimit     int     `json:"mileageLimit,omitempty"`
	ExcessMileageFee float64 `json:"excessMileageFee,omitempty"`

	AffordabilityScore int `json:"affordabilityScore"`
}

type PaymentScheduleItem struct {
	PaymentNumber    int     `json:"paymentNumber"`
	Date             string  `json:"date"`
	Principal        float64 `json:"principal"`
	Interest         float64 `json:"interest"`
	TotalPayment     float64 `json:"totalPayment"`
	RemainingBalance float64 `json:"remainingBalance"`
}

type FinancialTip struct {
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
	Actionable  bool   `json:"actionable"`
	Action      string `json:"action,omitempty"`
}

type PaymentSimulationResponse struct {
	Success         bool                  `json:"success"`
	VehicleName     string                `json:"vehicleName"`
	MSRP            float64               `json:"msrp"`
	FinanceOption   FinancingOption       `json:"financeOption"`
	LeaseOption     FinancingOption       `json:"leaseOption"`
	Recommendation  string                `json:"recommendation"`
	Tips            []FinancialTip        `json:"tips"`
	PaymentSchedule []PaymentScheduleItem `json:"paymentSchedule"`
	UserProfile     SimulationProfileView `json:"userProfile"`
}

type SimulationProfileView struct {
	MonthlyBudget float64 `json:"monthlyBudget,omitempty"`
	DownPayment   float64 `json:"downPayment"`
	CreditScore   string  `json:"creditScore"`
	TradeInValue  float64 `json:"tradeInValue"`
}

type AdvisePlan struct {
	ModelName string  `json:"modelName" validate:"required"`
	Price     float64 `json:"price" validate:"required,gt=0"`
	APR       float64 `json:"apr"`
	Term      int     `json:"term"`
	Down      float64 `json:"down"`
	Target    float64 `json:"target"`
}

type AdviseRequest struct {
	Plan *AdvisePlan `json:"plan" validate:"required"`
}

type AdviseResponse struct {
	Tips    []string `json:"tips"`
	Summary string   `json:"summary"`
}
