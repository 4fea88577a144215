package transfer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ekuzmina/fundgo/internal/domain"
	"github.com/ekuzmina/fundgo/internal/dto"
	"github.com/ekuzmina/fundgo/pkg/auth"
	"github.com/ekuzmina/fundgo/pkg/utils"
)

type Service interface {
	Donate(ctx context.Context, userID, fundID int, amount float64) (*domain.Bill, error)
	Withdraw(ctx context.Context, userID, fundID int, reason string) (*domain.Bill, error)
}

type AuditService interface {
	GetBills(ctx context.Context, userID int) ([]domain.Bill, error)
	GetWithdrawals(ctx context.Context, userID int) ([]domain.WithdrawalEntry, error)
}

type TransferHandler struct {
	transferService Service
	auditService    AuditService
}

func New(transferService Service, auditService AuditService) *TransferHandler {
	return &TransferHandler{
		transferService: transferService,
		auditService:    auditService,
	}
}

// Donate godoc
//
//	@Summary		Donate to a fund
//	@Description	Move cash from the authenticated user into the fund.
//	@Tags			Transfers
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Fund id"
//	@Param			request	body		dto.DonateRequestDTO	true	"Donation payload"
//	@Success		200		{object}	dto.BillResponseDTO		"Donation bill"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		402		{object}	utils.Response			"Insufficient funds"
//	@Failure		404		{object}	utils.Response			"Fund or user not found"
//	@Failure		422		{object}	utils.Response			"Amount must be positive"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/funds/{id}/donate [post]
func (h *TransferHandler) Donate(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	fundID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid fund id")
		return
	}

	var req dto.DonateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	bill, err := h.transferService.Donate(r.Context(), userID, fundID, req.Amount)
	if err != nil {
		respondTransferError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toBillDTO(bill))
}

// Withdraw godoc
//
//	@Summary		Withdraw a fund
//	@Description	Pay the raised total out to the fund owner once the goal is reached.
//	@Tags			Transfers
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Fund id"
//	@Param			request	body		dto.WithdrawRequestDTO	true	"Withdrawal payload"
//	@Success		200		{object}	dto.BillResponseDTO		"Withdrawal bill"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		403		{object}	utils.Response			"Fund belongs to another user"
//	@Failure		404		{object}	utils.Response			"Fund or user not found"
//	@Failure		409		{object}	utils.Response			"Goal not reached or already withdrawn"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/funds/{id}/withdraw [post]
func (h *TransferHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	fundID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid fund id")
		return
	}

	var req dto.WithdrawRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	bill, err := h.transferService.Withdraw(r.Context(), userID, fundID, req.Reason)
	if err != nil {
		respondTransferError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toBillDTO(bill))
}

// GetBills godoc
//
//	@Summary		Get bill history
//	@Description	Audit trail of the authenticated user's transfers, newest first.
//	@Tags			Transfers
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.BillResponseDTO	"Bill history"
//	@Success		204	{object}	utils.Response		"No bills"
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/user/bills [get]
func (h *TransferHandler) GetBills(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	bills, err := h.auditService.GetBills(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch bills")
		return
	}

	if len(bills) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Bills not found")
		return
	}

	response := make([]dto.BillResponseDTO, len(bills))
	for i, bill := range bills {
		response[i] = toBillDTO(&bill)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetWithdrawals godoc
//
//	@Summary		Get withdrawals history
//	@Description	Withdrawals of the authenticated user, newest first.
//	@Tags			Transfers
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WithdrawalHistoryDTO	"Withdrawals history"
//	@Success		204	{object}	utils.Response				"No withdrawals"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/user/withdrawals [get]
func (h *TransferHandler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	withdrawals, err := h.auditService.GetWithdrawals(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch withdrawals")
		return
	}

	if len(withdrawals) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Withdrawals not found")
		return
	}

	response := make([]dto.WithdrawalHistoryDTO, len(withdrawals))
	for i, wd := range withdrawals {
		response[i] = dto.WithdrawalHistoryDTO{
			FundID:      wd.FundID,
			Amount:      wd.Amount,
			Reason:      wd.Reason,
			ProcessedAt: wd.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// respondTransferError keeps rule rejections distinguishable from
// infrastructure trouble: every typed cause gets its own status, only
// unknown errors fall through to 500.
func respondTransferError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrFundNotFound), errors.Is(err, domain.ErrUserNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrNotOwner):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrInsufficientFunds):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, domain.ErrInvalidAmount):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrGoalNotReached), errors.Is(err, domain.ErrAlreadyWithdrawn):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toBillDTO(bill *domain.Bill) dto.BillResponseDTO {
	return dto.BillResponseDTO{
		ID:         bill.ID,
		Amount:     bill.Amount,
		Kind:       bill.Kind,
		Reason:     bill.Reason,
		MoneyAfter: bill.MoneyAfter,
		CreatedAt:  bill.CreatedAt,
	}
}
