package handlers

import (
	"errors"
	"strconv"

	domainerrors "facilita/internal/errors"
	"facilita/internal/models"
	"facilita/internal/repositories"
	"facilita/internal/services/product"
	"facilita/internal/utils"
	"facilita/internal/utils/pagination"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	productService product.Service
}

func NewProductHandler(productService product.Service) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// ListProducts returns the paginated public listing.
func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	p := pagination.ParseFromRequest(c)

	products, total, err := h.productService.List(p.Offset, p.Limit)
	if err != nil {
		return utils.InternalError(c, "Failed to load products")
	}
	p.Total = total
	return utils.Success(c, pagination.Response(p, products))
}

// GetProduct returns one listing with its gallery.
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid product ID")
	}

	p, err := h.productService.Get(uint(id))
	if err != nil {
		return utils.NotFound(c, "Product not found")
	}
	return utils.Success(c, p)
}

// ListByCompany returns a company's (or branch's) listings.
func (h *ProductHandler) ListByCompany(c *fiber.Ctx) error {
	ownerID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid company ID")
	}

	products, err := h.productService.ListByOwner(uint(ownerID))
	if err != nil {
		return utils.InternalError(c, "Failed to load products")
	}
	return utils.Success(c, products)
}

// CreateProduct publishes a listing, enforcing the plan quota.
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "Invalid claims")
	}

	var p models.Product
	if err := c.BodyParser(&p); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	created, err := h.productService.Create(claims.UserID, &p)
	if err != nil {
		return productError(c, err)
	}
	return utils.Created(c, created)
}

// UpdateProduct edits a listing owned by the caller.
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "Invalid claims")
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid product ID")
	}

	var p models.Product
	if err := c.BodyParser(&p); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	p.ID = uint(id)

	updated, err := h.productService.Update(claims.UserID, &p)
	if err != nil {
		return productError(c, err)
	}
	return utils.Success(c, updated)
}

// DeleteProduct removes a listing.
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "Invalid claims")
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid product ID")
	}

	if err := h.productService.Delete(claims.UserID, uint(id), claims.Role == models.RoleAdmin); err != nil {
		return productError(c, err)
	}
	return utils.Success(c, fiber.Map{"message": "Product deleted"})
}

// PromoteProduct toggles the highlight flag, enforcing the highlight
// quota.
func (h *ProductHandler) PromoteProduct(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "Invalid claims")
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid product ID")
	}

	var input struct {
		Promoted bool `json:"promoted"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	updated, err := h.productService.SetPromoted(claims.UserID, uint(id), input.Promoted)
	if err != nil {
		return productError(c, err)
	}
	return utils.Success(c, updated)
}

// GetQuota reports limits and usage for a company or branch.
func (h *ProductHandler) GetQuota(c *fiber.Ctx) error {
	ownerID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid company ID")
	}

	limits, usage, err := h.productService.QuotaFor(uint(ownerID))
	if err != nil {
		return utils.NotFound(c, "Company not found")
	}
	return utils.Success(c, fiber.Map{
		"limits": limits,
		"usage":  usage,
	})
}

func productError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, repositories.ErrProductNotFound):
		return utils.NotFound(c, "Product not found")
	case errors.Is(err, domainerrors.ErrProductQuotaExceeded),
		errors.Is(err, domainerrors.ErrHighlightQuotaExceeded):
		return utils.Forbidden(c, err.Error())
	default:
		return utils.BadRequest(c, err.Error())
	}
}
