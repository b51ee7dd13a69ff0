package handlers

import (
	"strconv"

	"facilita/internal/models"
	"facilita/internal/services/company"
	"facilita/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type CompanyHandler struct {
	companyService company.Service
}

func NewCompanyHandler(companyService company.Service) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// ListCompanies returns HQ profiles; ?banks=true filters to banks.
func (h *CompanyHandler) ListCompanies(c *fiber.Ctx) error {
	var isBank *bool
	switch c.Query("banks") {
	case "true":
		v := true
		isBank = &v
	case "false":
		v := false
		isBank = &v
	}

	companies, err := h.companyService.List(isBank)
	if err != nil {
		return utils.InternalError(c, "Failed to load companies")
	}
	return utils.Success(c, companies)
}

func (h *CompanyHandler) GetCompany(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid company ID")
	}

	comp, err := h.companyService.Get(uint(id))
	if err != nil {
		return utils.NotFound(c, "Company not found")
	}
	return utils.Success(c, comp)
}

// GetMyCompany returns the caller's headquarters profile.
func (h *CompanyHandler) GetMyCompany(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "Invalid claims")
	}

	comp, err := h.companyService.GetMine(claims.UserID)
	if err != nil {
		return utils.NotFound(c, "Company not found")
	}
	return utils.Success(c, comp)
}

func (h *CompanyHandler) CreateCompany(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "Invalid claims")
	}

	var comp models.Company
	if err := c.BodyParser(&comp); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	created, err := h.companyService.Create(claims.UserID, &comp)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}
	return utils.Created(c, created)
}

func (h *CompanyHandler) UpdateCompany(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "Invalid claims")
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid company ID")
	}

	var comp models.Company
	if err := c.BodyParser(&comp); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	comp.ID = uint(id)

	updated, err := h.companyService.Update(claims.UserID, &comp)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}
	return utils.Success(c, updated)
}

func (h *CompanyHandler) DeleteCompany(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "Invalid claims")
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid company ID")
	}

	if err := h.companyService.Delete(claims.UserID, uint(id), claims.Role == models.RoleAdmin); err != nil {
		return utils.BadRequest(c, err.Error())
	}
	return utils.Success(c, fiber.Map{"message": "Company deleted"})
}

// CreateBranch adds a branch under the caller's headquarters.
func (h *CompanyHandler) CreateBranch(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "Invalid claims")
	}

	parentID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid company ID")
	}

	var branch models.Company
	if err := c.BodyParser(&branch); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	created, err := h.companyService.CreateBranch(claims.UserID, uint(parentID), &branch)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}
	return utils.Created(c, created)
}

func (h *CompanyHandler) ListBranches(c *fiber.Ctx) error {
	parentID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid company ID")
	}

	branches, err := h.companyService.ListBranches(uint(parentID))
	if err != nil {
		return utils.InternalError(c, "Failed to load branches")
	}
	return utils.Success(c, branches)
}

// FollowCompany toggles the caller's follow on a company.
func (h *CompanyHandler) FollowCompany(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "Invalid claims")
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid company ID")
	}

	following, err := h.companyService.Follow(claims.UserID, uint(id))
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}
	return utils.Success(c, fiber.Map{"following": following})
}

// RateCompany registers one review.
func (h *CompanyHandler) RateCompany(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid company ID")
	}

	if err := h.companyService.Rate(uint(id)); err != nil {
		return utils.BadRequest(c, err.Error())
	}
	return utils.Success(c, fiber.Map{"message": "Review recorded"})
}
