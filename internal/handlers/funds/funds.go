package funds

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ekuzmina/fundgo/internal/domain"
	"github.com/ekuzmina/fundgo/internal/dto"
	"github.com/ekuzmina/fundgo/pkg/auth"
	"github.com/ekuzmina/fundgo/pkg/utils"
)

type Service interface {
	CreateFund(ctx context.Context, userID int, title, description string, target float64, deadline time.Time) (*domain.Fund, error)
	ListOpen(ctx context.Context) ([]domain.Fund, error)
	GetFund(ctx context.Context, id int) (*domain.Fund, []domain.DonationEntry, error)
}

type FundHandler struct {
	fundService Service
}

func New(fundService Service) *FundHandler {
	return &FundHandler{
		fundService: fundService,
	}
}

// CreateFund godoc
//
//	@Summary		Create a fund
//	@Description	Open a new crowdfunding campaign owned by the authenticated user.
//	@Tags			Funds
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateFundRequestDTO	true	"Fund payload"
//	@Success		200		{object}	dto.FundResponseDTO			"Created fund"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		422		{object}	utils.Response				"Target must be positive"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/funds [post]
func (h *FundHandler) CreateFund(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateFundRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "title is required")
		return
	}

	fund, err := h.fundService.CreateFund(r.Context(), userID, req.Title, req.Description, req.Target, req.Deadline)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidAmount) {
			utils.RespondWithError(w, http.StatusUnprocessableEntity, "target must be positive")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toFundDTO(fund))
}

// ListFunds godoc
//
//	@Summary		List open funds
//	@Description	List campaigns that have not been withdrawn yet, newest first.
//	@Tags			Funds
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.FundResponseDTO	"Open funds"
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/funds [get]
func (h *FundHandler) ListFunds(w http.ResponseWriter, r *http.Request) {
	funds, err := h.fundService.ListOpen(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.FundResponseDTO, len(funds))
	for i, fund := range funds {
		response[i] = toFundDTO(&fund)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetFund godoc
//
//	@Summary		Get fund details
//	@Description	Fund record together with its donation history.
//	@Tags			Funds
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int							true	"Fund id"
//	@Success		200	{object}	dto.FundDetailResponseDTO	"Fund with donations"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		404	{object}	utils.Response				"Fund not found"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/funds/{id} [get]
func (h *FundHandler) GetFund(w http.ResponseWriter, r *http.Request) {
	fundID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid fund id")
		return
	}

	fund, donations, err := h.fundService.GetFund(r.Context(), fundID)
	if err != nil {
		if errors.Is(err, domain.ErrFundNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.FundDetailResponseDTO{
		FundResponseDTO: toFundDTO(fund),
		Donations:       make([]dto.FundDonationDTO, len(donations)),
	}
	for i, d := range donations {
		response.Donations[i] = dto.FundDonationDTO{
			UserID:    d.UserID,
			Amount:    d.Amount,
			DonatedAt: d.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toFundDTO(fund *domain.Fund) dto.FundResponseDTO {
	return dto.FundResponseDTO{
		ID:          fund.ID,
		OwnerID:     fund.UserID,
		Title:       fund.Title,
		Description: fund.Description,
		Target:      fund.TargetMoney,
		Current:     fund.CurrentMoney,
		Done:        fund.Done,
		CreatedAt:   fund.CreatedAt,
		Deadline:    fund.Deadline,
	}
}
