// Package mocks provides testify mocks for the repository interfaces.
package mocks

import (
	"facilita/internal/models"

	"github.com/stretchr/testify/mock"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(user *models.User) error {
	return m.Called(user).Error(0)
}

func (m *UserRepository) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserRepository) GetByPhone(phone string) (*models.User, error) {
	args := m.Called(phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserRepository) Update(user *models.User) error {
	return m.Called(user).Error(0)
}

func (m *UserRepository) IncrementTokenVersion(userID uint) error {
	return m.Called(userID).Error(0)
}

func (m *UserRepository) List(offset, limit int) ([]models.User, int64, error) {
	args := m.Called(offset, limit)
	return args.Get(0).([]models.User), args.Get(1).(int64), args.Error(2)
}

func (m *UserRepository) UpdateStatus(userID uint, status string) error {
	return m.Called(userID, status).Error(0)
}

func (m *UserRepository) AdjustWallet(userID uint, delta float64) (*models.User, error) {
	args := m.Called(userID, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserRepository) AdjustTopUp(userID uint, delta float64) (*models.User, error) {
	args := m.Called(userID, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserRepository) ToggleFavorite(userID, productID uint) (bool, error) {
	args := m.Called(userID, productID)
	return args.Bool(0), args.Error(1)
}

func (m *UserRepository) ListFavorites(userID uint) ([]uint, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

func (m *UserRepository) IsFollowing(userID, companyID uint) (bool, error) {
	args := m.Called(userID, companyID)
	return args.Bool(0), args.Error(1)
}

func (m *UserRepository) SetFollowing(userID, companyID uint, follow bool) error {
	return m.Called(userID, companyID, follow).Error(0)
}

func (m *UserRepository) ListFollowing(userID uint) ([]uint, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

type CompanyRepository struct {
	mock.Mock
}

func (m *CompanyRepository) Create(company *models.Company) error {
	return m.Called(company).Error(0)
}

func (m *CompanyRepository) GetByID(id uint) (*models.Company, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

func (m *CompanyRepository) GetHQByUserID(userID uint) (*models.Company, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

func (m *CompanyRepository) Update(company *models.Company) error {
	return m.Called(company).Error(0)
}

func (m *CompanyRepository) Delete(id uint) error {
	return m.Called(id).Error(0)
}

func (m *CompanyRepository) ListTopLevel(isBank *bool) ([]models.Company, error) {
	args := m.Called(isBank)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Company), args.Error(1)
}

func (m *CompanyRepository) ListBranches(parentID uint) ([]models.Company, error) {
	args := m.Called(parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Company), args.Error(1)
}

func (m *CompanyRepository) AdjustFollowers(id uint, delta int) error {
	return m.Called(id, delta).Error(0)
}

func (m *CompanyRepository) IncrementReviews(id uint) error {
	return m.Called(id).Error(0)
}

type ProductRepository struct {
	mock.Mock
}

func (m *ProductRepository) Create(product *models.Product) error {
	return m.Called(product).Error(0)
}

func (m *ProductRepository) GetByID(id uint) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *ProductRepository) Update(product *models.Product) error {
	return m.Called(product).Error(0)
}

func (m *ProductRepository) ReplaceGallery(productID uint, urls []string) error {
	return m.Called(productID, urls).Error(0)
}

func (m *ProductRepository) Delete(id uint) error {
	return m.Called(id).Error(0)
}

func (m *ProductRepository) List() ([]models.Product, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *ProductRepository) ListByOwner(ownerID uint) ([]models.Product, error) {
	args := m.Called(ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *ProductRepository) CountByOwner(ownerID uint) (int, error) {
	args := m.Called(ownerID)
	return args.Int(0), args.Error(1)
}

func (m *ProductRepository) CountPromotedByOwner(ownerID uint) (int, error) {
	args := m.Called(ownerID)
	return args.Int(0), args.Error(1)
}

func (m *ProductRepository) SetPromoted(id uint, promoted bool) error {
	return m.Called(id, promoted).Error(0)
}

type PlanRepository struct {
	mock.Mock
}

func (m *PlanRepository) GetByType(planType string) (*models.Plan, error) {
	args := m.Called(planType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Plan), args.Error(1)
}

func (m *PlanRepository) List() ([]models.Plan, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Plan), args.Error(1)
}

func (m *PlanRepository) Create(plan *models.Plan) error {
	return m.Called(plan).Error(0)
}

func (m *PlanRepository) Update(plan *models.Plan) error {
	return m.Called(plan).Error(0)
}

func (m *PlanRepository) Delete(planType string) error {
	return m.Called(planType).Error(0)
}

type TransactionRepository struct {
	mock.Mock
}

func (m *TransactionRepository) Create(tx *models.Transaction) error {
	return m.Called(tx).Error(0)
}

func (m *TransactionRepository) GetByID(id uint) (*models.Transaction, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *TransactionRepository) UpdateStatus(id uint, status string) (*models.Transaction, error) {
	args := m.Called(id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *TransactionRepository) List(limit, offset int) ([]models.Transaction, int64, error) {
	args := m.Called(limit, offset)
	return args.Get(0).([]models.Transaction), args.Get(1).(int64), args.Error(2)
}

func (m *TransactionRepository) ListByUser(userID uint, limit, offset int) ([]models.Transaction, int64, error) {
	args := m.Called(userID, limit, offset)
	return args.Get(0).([]models.Transaction), args.Get(1).(int64), args.Error(2)
}

func (m *TransactionRepository) VolumeByStatus() (map[string]float64, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]float64), args.Error(1)
}

type WithdrawalRepository struct {
	mock.Mock
}

func (m *WithdrawalRepository) Create(req *models.WithdrawalRequest) error {
	return m.Called(req).Error(0)
}

func (m *WithdrawalRepository) GetByID(id uint) (*models.WithdrawalRequest, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WithdrawalRequest), args.Error(1)
}

func (m *WithdrawalRepository) UpdateStatus(id uint, status string) (*models.WithdrawalRequest, error) {
	args := m.Called(id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WithdrawalRequest), args.Error(1)
}

func (m *WithdrawalRepository) List(limit, offset int) ([]models.WithdrawalRequest, int64, error) {
	args := m.Called(limit, offset)
	return args.Get(0).([]models.WithdrawalRequest), args.Get(1).(int64), args.Error(2)
}

func (m *WithdrawalRepository) ListByUser(userID uint) ([]models.WithdrawalRequest, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WithdrawalRequest), args.Error(1)
}

type ATMRepository struct {
	mock.Mock
}

func (m *ATMRepository) List() ([]models.ATM, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ATM), args.Error(1)
}

func (m *ATMRepository) GetByID(id uint) (*models.ATM, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ATM), args.Error(1)
}

func (m *ATMRepository) Create(atm *models.ATM) error {
	return m.Called(atm).Error(0)
}

func (m *ATMRepository) Update(atm *models.ATM) error {
	return m.Called(atm).Error(0)
}

func (m *ATMRepository) Delete(id uint) error {
	return m.Called(id).Error(0)
}

func (m *ATMRepository) ToggleVote(atmID, userID uint) (bool, error) {
	args := m.Called(atmID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *ATMRepository) HasVoted(atmID, userID uint) (bool, error) {
	args := m.Called(atmID, userID)
	return args.Bool(0), args.Error(1)
}

type MessageRepository struct {
	mock.Mock
}

func (m *MessageRepository) Create(msg *models.Message) error {
	return m.Called(msg).Error(0)
}

func (m *MessageRepository) GetByID(id uint) (*models.Message, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Message), args.Error(1)
}

func (m *MessageRepository) ListForUser(userID uint) ([]models.Message, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Message), args.Error(1)
}

func (m *MessageRepository) ListConversation(userID, otherID uint) ([]models.Message, error) {
	args := m.Called(userID, otherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Message), args.Error(1)
}

func (m *MessageRepository) MarkConversationRead(userID, otherID uint) error {
	return m.Called(userID, otherID).Error(0)
}

func (m *MessageRepository) CreateNotification(n *models.Notification) error {
	return m.Called(n).Error(0)
}

func (m *MessageRepository) ListNotifications(userID uint) ([]models.Notification, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Notification), args.Error(1)
}

func (m *MessageRepository) MarkNotificationsRead(userID uint) error {
	return m.Called(userID).Error(0)
}

func (m *MessageRepository) DeleteNotification(id uint) error {
	return m.Called(id).Error(0)
}
