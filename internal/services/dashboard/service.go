package dashboard

import (
	"facilita/internal/models"
	"facilita/internal/repositories"

	"gorm.io/gorm"
)

// AdminStats is the aggregate snapshot shown on the moderation panel.
type AdminStats struct {
	TotalUsers         int64              `json:"total_users"`
	BusinessUsers      int64              `json:"business_users"`
	BlockedUsers       int64              `json:"blocked_users"`
	TotalCompanies     int64              `json:"total_companies"`
	TotalProducts      int64              `json:"total_products"`
	PromotedProducts   int64              `json:"promoted_products"`
	PendingDeposits    int64              `json:"pending_deposits"`
	PendingWithdrawals int64              `json:"pending_withdrawals"`
	VolumeByStatus     map[string]float64 `json:"volume_by_status"`
}

type Service interface {
	AdminOverview() (*AdminStats, error)
}

type service struct {
	transactionRepo repositories.TransactionRepository
	db              *gorm.DB
}

func NewService(transactionRepo repositories.TransactionRepository, db *gorm.DB) Service {
	return &service{transactionRepo: transactionRepo, db: db}
}

func (s *service) AdminOverview() (*AdminStats, error) {
	stats := &AdminStats{}

	counts := []struct {
		dest  *int64
		model interface{}
		query string
		args  []interface{}
	}{
		{&stats.TotalUsers, &models.User{}, "", nil},
		{&stats.BusinessUsers, &models.User{}, "is_business = ?", []interface{}{true}},
		{&stats.BlockedUsers, &models.User{}, "account_status = ?", []interface{}{models.AccountStatusBlocked}},
		{&stats.TotalCompanies, &models.Company{}, "", nil},
		{&stats.TotalProducts, &models.Product{}, "", nil},
		{&stats.PromotedProducts, &models.Product{}, "promoted = ?", []interface{}{true}},
		{&stats.PendingDeposits, &models.Transaction{}, "category = ? AND status = ?", []interface{}{models.TransactionCategoryDeposit, models.TransactionStatusPending}},
		{&stats.PendingWithdrawals, &models.WithdrawalRequest{}, "status = ?", []interface{}{models.WithdrawalStatusPending}},
	}
	for _, c := range counts {
		q := s.db.Model(c.model)
		if c.query != "" {
			q = q.Where(c.query, c.args...)
		}
		if err := q.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	volumes, err := s.transactionRepo.VolumeByStatus()
	if err != nil {
		return nil, err
	}
	stats.VolumeByStatus = volumes

	return stats, nil
}
