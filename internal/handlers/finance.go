package handlers

import (
	"facilita/internal/services/finance"
	"facilita/internal/utils"
	"facilita/internal/utils/pagination"

	"github.com/gofiber/fiber/v2"
)

type FinanceHandler struct {
	financeService finance.Service
}

func NewFinanceHandler(financeService finance.Service) *FinanceHandler {
	return &FinanceHandler{financeService: financeService}
}

// RequestDeposit files a pending top-up.
func (h *FinanceHandler) RequestDeposit(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "Invalid claims")
	}

	var input struct {
		Amount   float64 `json:"amount"`
		Method   string  `json:"method"`
		ProofURL string  `json:"proof_url"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	tx, err := h.financeService.RequestDeposit(claims.UserID, input.Amount, input.Method, input.ProofURL)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}
	return utils.Created(c, tx)
}

// RequestWithdrawal files a payout of wallet earnings.
func (h *FinanceHandler) RequestWithdrawal(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "Invalid claims")
	}

	var input struct {
		Amount float64 `json:"amount"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	req, err := h.financeService.RequestWithdrawal(claims.UserID, input.Amount)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}
	return utils.Created(c, req)
}

// GetMyTransactions lists the caller's ledger, newest first.
func (h *FinanceHandler) GetMyTransactions(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "Invalid claims")
	}

	p := pagination.ParseFromRequest(c)
	transactions, total, err := h.financeService.ListTransactions(claims.UserID, p.Offset, p.Limit)
	if err != nil {
		return utils.InternalError(c, "Failed to load transactions")
	}
	p.Total = total
	return utils.Success(c, pagination.Response(p, transactions))
}

// GetMyWithdrawals lists the caller's withdrawal requests.
func (h *FinanceHandler) GetMyWithdrawals(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "Invalid claims")
	}

	withdrawals, err := h.financeService.ListWithdrawals(claims.UserID)
	if err != nil {
		return utils.InternalError(c, "Failed to load withdrawals")
	}
	return utils.Success(c, withdrawals)
}

// SettleSale lets a seller approve or reject a pending sale of theirs.
func (h *FinanceHandler) SettleSale(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "Invalid claims")
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.BadRequest(c, "Invalid transaction ID")
	}

	var input struct {
		Approve bool `json:"approve"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	tx, err := h.financeService.SettleSellerSale(claims.UserID, uint(id), input.Approve)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}
	return utils.Success(c, tx)
}
