package checkout

import (
	"context"
	"errors"
	"log"

	domainerrors "facilita/internal/errors"
	"facilita/internal/models"
	"facilita/internal/repositories"
	"facilita/internal/services/payment"
	"facilita/internal/services/plan"
	"facilita/internal/utils"
)

// CartLine is one item of a checkout request.
type CartLine struct {
	ProductID uint `json:"productId"`
	Quantity  int  `json:"quantity"`
}

type Service interface {
	// Checkout charges the cart and writes the ledger entries. Each
	// line produces a PURCHASE for the buyer and, when the listing's
	// owner resolves to a user, a pending SALE for the seller.
	Checkout(ctx context.Context, buyerID uint, lines []CartLine, method, proofURL string) ([]models.Transaction, error)

	// PurchasePlan charges a subscription plan. The quota carry-over
	// is applied as soon as the payment settles.
	PurchasePlan(ctx context.Context, userID uint, planType, method, proofURL string) (*models.Transaction, error)
}

type service struct {
	products     repositories.ProductRepository
	companies    repositories.CompanyRepository
	users        repositories.UserRepository
	transactions repositories.TransactionRepository
	plans        plan.Service
	gateway      payment.Gateway
}

func NewService(
	products repositories.ProductRepository,
	companies repositories.CompanyRepository,
	users repositories.UserRepository,
	transactions repositories.TransactionRepository,
	plans plan.Service,
	gateway payment.Gateway,
) Service {
	return &service{
		products:     products,
		companies:    companies,
		users:        users,
		transactions: transactions,
		plans:        plans,
		gateway:      gateway,
	}
}

func (s *service) Checkout(ctx context.Context, buyerID uint, lines []CartLine, method, proofURL string) ([]models.Transaction, error) {
	if len(lines) == 0 {
		return nil, errors.New("cart is empty")
	}

	buyer, err := s.users.GetByID(buyerID)
	if err != nil {
		return nil, err
	}
	if buyer.AccountStatus == models.AccountStatusBlocked {
		return nil, domainerrors.ErrAccountBlocked
	}

	type pricedLine struct {
		product *models.Product
		amount  float64
	}
	var (
		priced []pricedLine
		total  float64
	)
	for _, line := range lines {
		p, err := s.products.GetByID(line.ProductID)
		if err != nil {
			return nil, err
		}
		qty := line.Quantity
		if qty < 1 {
			qty = 1
		}
		amount := p.Price * float64(qty)
		priced = append(priced, pricedLine{product: p, amount: amount})
		total += amount
	}

	result, err := s.gateway.Charge(ctx, method, total)
	if err != nil {
		return nil, err
	}
	purchaseStatus := result.Outcome.TransactionStatus()

	// The ledger writes per line are independent; a failure mid-cart
	// leaves the earlier entries in place.
	var written []models.Transaction
	for _, line := range priced {
		purchase := models.Transaction{
			UserID:         buyerID,
			Amount:         line.amount,
			Category:       models.TransactionCategoryPurchase,
			Status:         purchaseStatus,
			Method:         method,
			Reference:      utils.GenerateReference("BUY"),
			ProductName:    line.product.Title,
			OtherPartyName: line.product.CompanyName,
			ProofURL:       proofURL,
		}
		if err := s.transactions.Create(&purchase); err != nil {
			return written, err
		}
		written = append(written, purchase)

		sellerID, ok := s.resolveSeller(line.product.OwnerID)
		if !ok {
			continue
		}
		sale := models.Transaction{
			UserID:         sellerID,
			Amount:         line.amount,
			Category:       models.TransactionCategorySale,
			Status:         models.TransactionStatusPending,
			Method:         method,
			Reference:      utils.GenerateReference("SALE"),
			ProductName:    line.product.Title,
			OtherPartyName: buyer.Name,
		}
		if err := s.transactions.Create(&sale); err != nil {
			return written, err
		}
		written = append(written, sale)
	}

	return written, nil
}

func (s *service) PurchasePlan(ctx context.Context, userID uint, planType, method, proofURL string) (*models.Transaction, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user.AccountStatus == models.AccountStatusBlocked {
		return nil, domainerrors.ErrAccountBlocked
	}

	target, err := s.plans.GetByType(planType)
	if err != nil {
		return nil, err
	}

	result, err := s.gateway.Charge(ctx, method, target.Price)
	if err != nil {
		return nil, err
	}
	status := result.Outcome.TransactionStatus()

	tx := models.Transaction{
		UserID:      userID,
		Amount:      target.Price,
		Category:    models.TransactionCategoryPlanPayment,
		Status:      status,
		Method:      method,
		Reference:   utils.GenerateReference("PLAN"),
		ProductName: "Plano " + target.Type,
		ProofURL:    proofURL,
		Metadata:    models.JSON{"planType": target.Type},
	}
	if err := s.transactions.Create(&tx); err != nil {
		return nil, err
	}

	if status == models.TransactionStatusApproved {
		if _, err := s.plans.ChangePlan(userID, target.Type); err != nil {
			log.Printf("plan activation after payment %s failed: %v", tx.Reference, err)
			return &tx, err
		}
	}
	return &tx, nil
}

// resolveSeller walks a listing's owning company (or branch parent) to
// the user who receives the sale.
func (s *service) resolveSeller(ownerID uint) (uint, bool) {
	company, err := s.companies.GetByID(ownerID)
	if err != nil {
		return 0, false
	}
	if company.IsBranch() && company.ParentID != nil {
		parent, err := s.companies.GetByID(*company.ParentID)
		if err != nil {
			return 0, false
		}
		company = parent
	}
	return company.UserID, true
}
