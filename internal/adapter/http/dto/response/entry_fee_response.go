package response

import (
	"time"

	"github.com/grupo95-symposium/registration-service/internal/usecase"
)

type EntryFeeStatusEntry struct {
	Email   string     `json:"email"`
	HasPaid bool       `json:"hasPaid"`
	PaidAt  *time.Time `json:"paidAt,omitempty"`
}

type EntryFeeStatusResponse struct {
	Success bool                  `json:"success"`
	Entries []EntryFeeStatusEntry `json:"entries"`
}

func FromEntryFeeStatuses(statuses []usecase.EntryFeeStatus) EntryFeeStatusResponse {
	res := EntryFeeStatusResponse{Success: true, Entries: make([]EntryFeeStatusEntry, 0, len(statuses))}
	for _, st := range statuses {
		res.Entries = append(res.Entries, EntryFeeStatusEntry{Email: st.Email, HasPaid: st.HasPaid, PaidAt: st.PaidAt})
	}
	return res
}

// HeadAmountsResponse reports one fee split in display currency.
type HeadAmountsResponse struct {
	Base       float64 `json:"base"`
	GatewayFee float64 `json:"gatewayFee"`
	Tax        float64 `json:"tax"`
	Total      float64 `json:"total"`
}

type FeeBreakdownResponse struct {
	People  int                 `json:"people"`
	PerHead HeadAmountsResponse `json:"perHead"`
	Totals  HeadAmountsResponse `json:"totals"`
}

func FromFeeBreakdown(b usecase.FeeBreakdown) FeeBreakdownResponse {
	return FeeBreakdownResponse{
		People:  b.Count,
		PerHead: headAmounts(b.PerHead),
		Totals:  headAmounts(b.Totals),
	}
}

func headAmounts(h usecase.HeadAmounts) HeadAmountsResponse {
	return HeadAmountsResponse{
		Base:       usecase.FromPaise(h.BasePaise),
		GatewayFee: usecase.FromPaise(h.GatewayFeePaise),
		Tax:        usecase.FromPaise(h.TaxPaise),
		Total:      usecase.FromPaise(h.TotalPaise),
	}
}

type EntryFeeOrderBlock struct {
	NeedsPayment   bool    `json:"needsPayment"`
	GatewayOrderID string  `json:"gatewayOrderId,omitempty"`
	Amount         float64 `json:"amount,omitempty"`
	Currency       string  `json:"currency,omitempty"`
	KeyID          string  `json:"keyId,omitempty"`
}

type EntryFeeOrderResponse struct {
	Success   bool                  `json:"success"`
	Message   string                `json:"message,omitempty"`
	Payment   EntryFeeOrderBlock    `json:"payment"`
	Covered   []string              `json:"covered,omitempty"`
	Breakdown *FeeBreakdownResponse `json:"breakdown,omitempty"`
}

func FromEntryFeeOrder(order usecase.EntryFeeOrder, gatewayKeyID string) EntryFeeOrderResponse {
	res := EntryFeeOrderResponse{
		Success: true,
		Payment: EntryFeeOrderBlock{
			NeedsPayment:   order.NeedsPayment,
			GatewayOrderID: order.GatewayOrderID,
			Currency:       order.Currency,
		},
		Covered: order.CoveredEmails,
	}
	if !order.NeedsPayment {
		res.Message = "Everyone already paid"
		return res
	}
	res.Payment.Amount = usecase.FromPaise(order.AmountPaise)
	res.Payment.KeyID = gatewayKeyID
	if order.Breakdown != nil {
		b := FromFeeBreakdown(*order.Breakdown)
		res.Breakdown = &b
	}
	return res
}

// VerifyPaymentResponse reports the converged state after a client verify.
type VerifyPaymentResponse struct {
	Success      bool                  `json:"success"`
	Message      string                `json:"message,omitempty"`
	Covered      []string              `json:"covered"`
	Registration *RegistrationResponse `json:"registration,omitempty"`
}

func FromReconcileResult(result usecase.ReconcileResult) VerifyPaymentResponse {
	res := VerifyPaymentResponse{Success: true, Covered: result.CoveredEmails}
	if result.AlreadyPaid {
		res.Message = "Already verified"
	}
	if result.Registration != nil {
		reg := FromRegistration(*result.Registration)
		res.Registration = &reg
	}
	return res
}
