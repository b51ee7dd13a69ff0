package checkout

import (
	"context"
	"testing"

	domainerrors "facilita/internal/errors"
	"facilita/internal/models"
	"facilita/internal/repositories"
	"facilita/internal/repositories/mocks"
	"facilita/internal/services/payment"
	"facilita/internal/services/plan"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockPlanService struct {
	mock.Mock
}

func (m *mockPlanService) Catalog() ([]models.Plan, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Plan), args.Error(1)
}

func (m *mockPlanService) GetByType(planType string) (*models.Plan, error) {
	args := m.Called(planType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Plan), args.Error(1)
}

func (m *mockPlanService) CreatePlan(p *models.Plan) error  { return m.Called(p).Error(0) }
func (m *mockPlanService) UpdatePlan(p *models.Plan) error  { return m.Called(p).Error(0) }
func (m *mockPlanService) DeletePlan(planType string) error { return m.Called(planType).Error(0) }

func (m *mockPlanService) EffectiveLimits(user *models.User) (plan.Limits, error) {
	args := m.Called(user)
	return args.Get(0).(plan.Limits), args.Error(1)
}

func (m *mockPlanService) UsageFor(ownerID uint) (plan.Usage, error) {
	args := m.Called(ownerID)
	return args.Get(0).(plan.Usage), args.Error(1)
}

func (m *mockPlanService) ChangePlan(userID uint, newPlanType string) (*models.User, error) {
	args := m.Called(userID, newPlanType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) Name() string { return "mock" }

func (m *mockGateway) Charge(ctx context.Context, method string, amount float64) (payment.Result, error) {
	args := m.Called(ctx, method, amount)
	return args.Get(0).(payment.Result), args.Error(1)
}

func newTestService(gw payment.Gateway) (*service, *mocks.ProductRepository, *mocks.CompanyRepository, *mocks.UserRepository, *mocks.TransactionRepository, *mockPlanService) {
	products := new(mocks.ProductRepository)
	companies := new(mocks.CompanyRepository)
	users := new(mocks.UserRepository)
	transactions := new(mocks.TransactionRepository)
	plans := new(mockPlanService)
	s := NewService(products, companies, users, transactions, plans, gw).(*service)
	return s, products, companies, users, transactions, plans
}

func TestCheckout(t *testing.T) {
	buyer := &models.User{Name: "Pedro Santos"}
	buyer.ID = 1

	mkProduct := func(id, owner uint, price float64) *models.Product {
		p := &models.Product{Title: "Cabaz", Price: price, OwnerID: owner, CompanyName: "Frutaria MD"}
		p.ID = id
		return p
	}

	t.Run("writes a purchase and a pending sale per line", func(t *testing.T) {
		gw := payment.NewSimulatedGateway()
		s, products, companies, users, transactions, _ := newTestService(gw)

		users.On("GetByID", uint(1)).Return(buyer, nil)
		products.On("GetByID", uint(10)).Return(mkProduct(10, 5, 4000), nil)
		hq := &models.Company{UserID: 7, Name: "Frutaria MD"}
		hq.ID = 5
		companies.On("GetByID", uint(5)).Return(hq, nil)
		transactions.On("Create", mock.AnythingOfType("*models.Transaction")).Return(nil)

		written, err := s.Checkout(context.Background(), 1, []CartLine{{ProductID: 10, Quantity: 2}}, models.PaymentMethodMulticaixa, "")
		assert.NoError(t, err)
		assert.Len(t, written, 2)

		purchase, sale := written[0], written[1]
		assert.Equal(t, models.TransactionCategoryPurchase, purchase.Category)
		assert.Equal(t, uint(1), purchase.UserID)
		assert.Equal(t, float64(8000), purchase.Amount)
		assert.Equal(t, models.TransactionStatusApproved, purchase.Status)

		assert.Equal(t, models.TransactionCategorySale, sale.Category)
		assert.Equal(t, uint(7), sale.UserID)
		assert.Equal(t, float64(8000), sale.Amount)
		assert.Equal(t, models.TransactionStatusPending, sale.Status)
		assert.Equal(t, "Pedro Santos", sale.OtherPartyName)
	})

	t.Run("bank transfer purchases stay pending", func(t *testing.T) {
		gw := payment.NewSimulatedGateway()
		s, products, companies, users, transactions, _ := newTestService(gw)

		users.On("GetByID", uint(1)).Return(buyer, nil)
		products.On("GetByID", uint(10)).Return(mkProduct(10, 5, 4000), nil)
		companies.On("GetByID", uint(5)).Return(nil, repositories.ErrCompanyNotFound)
		transactions.On("Create", mock.AnythingOfType("*models.Transaction")).Return(nil)

		written, err := s.Checkout(context.Background(), 1, []CartLine{{ProductID: 10, Quantity: 1}}, models.PaymentMethodTransfer, "https://cdn.example/proof.jpg")
		assert.NoError(t, err)
		assert.Len(t, written, 1, "no sale when the owner cannot be resolved")
		assert.Equal(t, models.TransactionStatusPending, written[0].Status)
		assert.Equal(t, "https://cdn.example/proof.jpg", written[0].ProofURL)
	})

	t.Run("branch sales credit the headquarters owner", func(t *testing.T) {
		gw := payment.NewSimulatedGateway()
		s, products, companies, users, transactions, _ := newTestService(gw)

		users.On("GetByID", uint(1)).Return(buyer, nil)
		products.On("GetByID", uint(11)).Return(mkProduct(11, 6, 1500), nil)

		parentID := uint(5)
		branch := &models.Company{UserID: 7, Type: models.CompanyTypeBranch, ParentID: &parentID}
		branch.ID = 6
		hq := &models.Company{UserID: 7, Type: models.CompanyTypeHQ}
		hq.ID = 5
		companies.On("GetByID", uint(6)).Return(branch, nil)
		companies.On("GetByID", uint(5)).Return(hq, nil)
		transactions.On("Create", mock.AnythingOfType("*models.Transaction")).Return(nil)

		written, err := s.Checkout(context.Background(), 1, []CartLine{{ProductID: 11}}, models.PaymentMethodVisa, "")
		assert.NoError(t, err)
		assert.Len(t, written, 2)
		assert.Equal(t, uint(7), written[1].UserID)
	})

	t.Run("blocked buyers cannot check out", func(t *testing.T) {
		gw := new(mockGateway)
		s, _, _, users, transactions, _ := newTestService(gw)

		blocked := &models.User{AccountStatus: models.AccountStatusBlocked}
		blocked.ID = 1
		users.On("GetByID", uint(1)).Return(blocked, nil)

		_, err := s.Checkout(context.Background(), 1, []CartLine{{ProductID: 10}}, models.PaymentMethodVisa, "")
		assert.ErrorIs(t, err, domainerrors.ErrAccountBlocked)
		gw.AssertNotCalled(t, "Charge")
		transactions.AssertNotCalled(t, "Create")
	})

	t.Run("empty cart is rejected", func(t *testing.T) {
		s, _, _, _, _, _ := newTestService(payment.NewSimulatedGateway())
		_, err := s.Checkout(context.Background(), 1, nil, models.PaymentMethodVisa, "")
		assert.Error(t, err)
	})
}

func TestPurchasePlan(t *testing.T) {
	user := &models.User{}
	user.ID = 4

	t.Run("instant payment activates the plan", func(t *testing.T) {
		s, _, _, users, transactions, plans := newTestService(payment.NewSimulatedGateway())

		users.On("GetByID", uint(4)).Return(user, nil)
		plans.On("GetByType", models.PlanBasic).Return(&models.Plan{Type: models.PlanBasic, Price: 2000}, nil)
		transactions.On("Create", mock.AnythingOfType("*models.Transaction")).Return(nil)
		plans.On("ChangePlan", uint(4), models.PlanBasic).Return(&models.User{Plan: models.PlanBasic}, nil)

		tx, err := s.PurchasePlan(context.Background(), 4, models.PlanBasic, models.PaymentMethodMulticaixa, "")
		assert.NoError(t, err)
		assert.Equal(t, models.TransactionCategoryPlanPayment, tx.Category)
		assert.Equal(t, models.TransactionStatusApproved, tx.Status)
		assert.Equal(t, models.PlanBasic, tx.Metadata["planType"])
		plans.AssertExpectations(t)
	})

	t.Run("bank transfer defers activation to settlement", func(t *testing.T) {
		s, _, _, users, transactions, plans := newTestService(payment.NewSimulatedGateway())

		users.On("GetByID", uint(4)).Return(user, nil)
		plans.On("GetByType", models.PlanPremium).Return(&models.Plan{Type: models.PlanPremium, Price: 25000}, nil)
		transactions.On("Create", mock.AnythingOfType("*models.Transaction")).Return(nil)

		tx, err := s.PurchasePlan(context.Background(), 4, models.PlanPremium, models.PaymentMethodTransfer, "https://cdn.example/proof.jpg")
		assert.NoError(t, err)
		assert.Equal(t, models.TransactionStatusPending, tx.Status)
		plans.AssertNotCalled(t, "ChangePlan")
	})
}
