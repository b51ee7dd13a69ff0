package handlers

import (
	"strconv"

	"facilita/internal/models"
	"facilita/internal/repositories"
	"facilita/internal/services/dashboard"
	"facilita/internal/services/finance"
	"facilita/internal/services/messaging"
	"facilita/internal/services/plan"
	"facilita/internal/services/user"
	"facilita/internal/utils"
	"facilita/internal/utils/pagination"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler serves the moderation and platform configuration
// surface.
type AdminHandler struct {
	userService      user.Service
	financeService   finance.Service
	planService      plan.Service
	dashboardService dashboard.Service
	messagingService messaging.Service
	platformRepo     repositories.PlatformRepository
}

func NewAdminHandler(
	userService user.Service,
	financeService finance.Service,
	planService plan.Service,
	dashboardService dashboard.Service,
	messagingService messaging.Service,
	platformRepo repositories.PlatformRepository,
) *AdminHandler {
	return &AdminHandler{
		userService:      userService,
		financeService:   financeService,
		planService:      planService,
		dashboardService: dashboardService,
		messagingService: messagingService,
		platformRepo:     platformRepo,
	}
}

// GetOverview returns the aggregate dashboard counters.
func (h *AdminHandler) GetOverview(c *fiber.Ctx) error {
	stats, err := h.dashboardService.AdminOverview()
	if err != nil {
		return utils.InternalError(c, "Failed to load dashboard")
	}
	return utils.Success(c, stats)
}

// ListUsers returns the paginated user directory.
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	p := pagination.ParseFromRequest(c)
	users, total, err := h.userService.List(p.Offset, p.Limit)
	if err != nil {
		return utils.InternalError(c, "Failed to load users")
	}
	p.Total = total
	return utils.Success(c, pagination.Response(p, users))
}

// SetUserStatus blocks or reinstates an account.
func (h *AdminHandler) SetUserStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid user ID")
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	if err := h.userService.SetAccountStatus(uint(id), input.Status); err != nil {
		return utils.BadRequest(c, err.Error())
	}
	return utils.Success(c, fiber.Map{"message": "Account status updated"})
}

// ListTransactions returns the full ledger, newest first.
func (h *AdminHandler) ListTransactions(c *fiber.Ctx) error {
	p := pagination.ParseFromRequest(c)
	transactions, total, err := h.financeService.ListAllTransactions(p.Offset, p.Limit)
	if err != nil {
		return utils.InternalError(c, "Failed to load transactions")
	}
	p.Total = total
	return utils.Success(c, pagination.Response(p, transactions))
}

// SettleTransaction approves or rejects a pending ledger entry.
func (h *AdminHandler) SettleTransaction(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid transaction ID")
	}

	var input struct {
		Approve bool `json:"approve"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	tx, err := h.financeService.SettleTransaction(uint(id), input.Approve)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}
	return utils.Success(c, tx)
}

// ListWithdrawals returns every withdrawal request.
func (h *AdminHandler) ListWithdrawals(c *fiber.Ctx) error {
	p := pagination.ParseFromRequest(c)
	withdrawals, total, err := h.financeService.ListAllWithdrawals(p.Offset, p.Limit)
	if err != nil {
		return utils.InternalError(c, "Failed to load withdrawals")
	}
	p.Total = total
	return utils.Success(c, pagination.Response(p, withdrawals))
}

// SettleWithdrawal approves or rejects a withdrawal; approval debits
// the requester's wallet, clamped at zero.
func (h *AdminHandler) SettleWithdrawal(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid withdrawal ID")
	}

	var input struct {
		Approve bool `json:"approve"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	req, err := h.financeService.SettleWithdrawal(uint(id), input.Approve)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}
	return utils.Success(c, req)
}

// Plan catalog management.

func (h *AdminHandler) CreatePlan(c *fiber.Ctx) error {
	var p models.Plan
	if err := c.BodyParser(&p); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if err := h.planService.CreatePlan(&p); err != nil {
		return utils.BadRequest(c, err.Error())
	}
	return utils.Created(c, p)
}

func (h *AdminHandler) UpdatePlan(c *fiber.Ctx) error {
	var p models.Plan
	if err := c.BodyParser(&p); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	p.Type = c.Params("type")
	if err := h.planService.UpdatePlan(&p); err != nil {
		return utils.BadRequest(c, err.Error())
	}
	return utils.Success(c, p)
}

func (h *AdminHandler) DeletePlan(c *fiber.Ctx) error {
	if err := h.planService.DeletePlan(c.Params("type")); err != nil {
		return utils.BadRequest(c, err.Error())
	}
	return utils.Success(c, fiber.Map{"message": "Plan removed"})
}

// Platform bank accounts.

func (h *AdminHandler) ListBankAccounts(c *fiber.Ctx) error {
	accounts, err := h.platformRepo.ListBankAccounts(false)
	if err != nil {
		return utils.InternalError(c, "Failed to load bank accounts")
	}
	return utils.Success(c, accounts)
}

func (h *AdminHandler) CreateBankAccount(c *fiber.Ctx) error {
	var acc models.PlatformBankAccount
	if err := c.BodyParser(&acc); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if err := h.platformRepo.CreateBankAccount(&acc); err != nil {
		return utils.InternalError(c, "Failed to save bank account")
	}
	return utils.Created(c, acc)
}

func (h *AdminHandler) UpdateBankAccount(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid account ID")
	}

	var acc models.PlatformBankAccount
	if err := c.BodyParser(&acc); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	acc.ID = uint(id)
	if err := h.platformRepo.UpdateBankAccount(&acc); err != nil {
		return utils.InternalError(c, "Failed to save bank account")
	}
	return utils.Success(c, acc)
}

func (h *AdminHandler) DeleteBankAccount(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid account ID")
	}
	if err := h.platformRepo.DeleteBankAccount(uint(id)); err != nil {
		return utils.NotFound(c, "Bank account not found")
	}
	return utils.Success(c, fiber.Map{"message": "Bank account removed"})
}

// Payment gateway configuration.

func (h *AdminHandler) ListGateways(c *fiber.Ctx) error {
	gateways, err := h.platformRepo.ListGateways(false)
	if err != nil {
		return utils.InternalError(c, "Failed to load gateway configs")
	}
	return utils.Success(c, gateways)
}

func (h *AdminHandler) CreateGateway(c *fiber.Ctx) error {
	var gw models.PaymentGatewayConfig
	if err := c.BodyParser(&gw); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if err := h.platformRepo.CreateGateway(&gw); err != nil {
		return utils.InternalError(c, "Failed to save gateway config")
	}
	return utils.Created(c, gw)
}

func (h *AdminHandler) UpdateGateway(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid gateway ID")
	}

	var gw models.PaymentGatewayConfig
	if err := c.BodyParser(&gw); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	gw.ID = uint(id)
	if err := h.platformRepo.UpdateGateway(&gw); err != nil {
		return utils.InternalError(c, "Failed to save gateway config")
	}
	return utils.Success(c, gw)
}

func (h *AdminHandler) DeleteGateway(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid gateway ID")
	}
	if err := h.platformRepo.DeleteGateway(uint(id)); err != nil {
		return utils.NotFound(c, "Gateway config not found")
	}
	return utils.Success(c, fiber.Map{"message": "Gateway config removed"})
}

// Broadcast publishes a global notification.
func (h *AdminHandler) Broadcast(c *fiber.Ctx) error {
	var input struct {
		Title string `json:"title"`
		Body  string `json:"body"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if input.Title == "" {
		return utils.BadRequest(c, "Title is required")
	}

	n, err := h.messagingService.Broadcast(input.Title, input.Body)
	if err != nil {
		return utils.InternalError(c, "Failed to publish notification")
	}
	return utils.Created(c, n)
}
