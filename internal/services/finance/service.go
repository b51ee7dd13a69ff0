package finance

import (
	"errors"
	"log"

	domainerrors "facilita/internal/errors"
	"facilita/internal/models"
	"facilita/internal/repositories"
	"facilita/internal/services/plan"
	"facilita/internal/utils"
	"facilita/internal/validation"
)

type Service interface {
	// RequestDeposit records a pending DEPOSIT; the top-up balance is
	// credited when an admin confirms the payment proof.
	RequestDeposit(userID uint, amount float64, method, proofURL string) (*models.Transaction, error)

	// RequestWithdrawal files a withdrawal of wallet earnings.
	RequestWithdrawal(userID uint, amount float64) (*models.WithdrawalRequest, error)

	// SettleWithdrawal approves or rejects a withdrawal. Approval
	// debits the wallet, clamped at zero.
	SettleWithdrawal(id uint, approve bool) (*models.WithdrawalRequest, error)

	// SettleSellerSale lets the seller approve or reject one of their
	// own pending sales. Approval credits the wallet.
	SettleSellerSale(sellerID, txID uint, approve bool) (*models.Transaction, error)

	// SettleTransaction approves or rejects a pending ledger entry.
	// Approved sales credit the seller wallet, approved deposits
	// credit the top-up balance, approved plan payments activate the
	// plan with quota carry-over.
	SettleTransaction(id uint, approve bool) (*models.Transaction, error)

	ListTransactions(userID uint, offset, limit int) ([]models.Transaction, int64, error)
	ListAllTransactions(offset, limit int) ([]models.Transaction, int64, error)
	ListWithdrawals(userID uint) ([]models.WithdrawalRequest, error)
	ListAllWithdrawals(offset, limit int) ([]models.WithdrawalRequest, int64, error)
}

type service struct {
	users        repositories.UserRepository
	transactions repositories.TransactionRepository
	withdrawals  repositories.WithdrawalRepository
	companies    repositories.CompanyRepository
	plans        plan.Service
}

func NewService(
	users repositories.UserRepository,
	transactions repositories.TransactionRepository,
	withdrawals repositories.WithdrawalRepository,
	companies repositories.CompanyRepository,
	plans plan.Service,
) Service {
	return &service{
		users:        users,
		transactions: transactions,
		withdrawals:  withdrawals,
		companies:    companies,
		plans:        plans,
	}
}

func (s *service) RequestDeposit(userID uint, amount float64, method, proofURL string) (*models.Transaction, error) {
	if amount < validation.MinTransactionAmount {
		return nil, domainerrors.ErrInvalidAmount
	}
	if _, err := s.users.GetByID(userID); err != nil {
		return nil, err
	}

	tx := models.Transaction{
		UserID:    userID,
		Amount:    amount,
		Category:  models.TransactionCategoryDeposit,
		Status:    models.TransactionStatusPending,
		Method:    method,
		Reference: utils.GenerateReference("DEP"),
		ProofURL:  proofURL,
	}
	if err := s.transactions.Create(&tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

func (s *service) RequestWithdrawal(userID uint, amount float64) (*models.WithdrawalRequest, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}

	v := validation.New()
	v.Withdrawal(amount, user.WalletBalance)
	if !v.Valid() {
		return nil, domainerrors.ErrInsufficientBalance
	}

	companyName := user.Name
	if hq, err := s.companies.GetHQByUserID(userID); err == nil {
		companyName = hq.Name
	}

	req := models.WithdrawalRequest{
		UserID:      userID,
		CompanyName: companyName,
		Amount:      amount,
		Status:      models.WithdrawalStatusPending,
		BankDetails: user.BankDetails,
	}
	if err := s.withdrawals.Create(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

func (s *service) SettleWithdrawal(id uint, approve bool) (*models.WithdrawalRequest, error) {
	req, err := s.withdrawals.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req.Status != models.WithdrawalStatusPending {
		return nil, domainerrors.ErrAlreadyProcessed
	}

	if !approve {
		return s.withdrawals.UpdateStatus(id, models.WithdrawalStatusRejected)
	}

	// Wallet debit clamps at zero; the balance may have shrunk since
	// the request was filed.
	if _, err := s.users.AdjustWallet(req.UserID, -req.Amount); err != nil {
		return nil, err
	}
	return s.withdrawals.UpdateStatus(id, models.WithdrawalStatusProcessed)
}

func (s *service) SettleSellerSale(sellerID, txID uint, approve bool) (*models.Transaction, error) {
	tx, err := s.transactions.GetByID(txID)
	if err != nil {
		return nil, err
	}
	if tx.UserID != sellerID {
		return nil, errors.New("transaction does not belong to user")
	}
	if tx.Category != models.TransactionCategorySale {
		return nil, errors.New("only sales can be settled by the seller")
	}
	return s.SettleTransaction(txID, approve)
}

func (s *service) SettleTransaction(id uint, approve bool) (*models.Transaction, error) {
	tx, err := s.transactions.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tx.Status != models.TransactionStatusPending {
		return nil, domainerrors.ErrAlreadyProcessed
	}

	if !approve {
		return s.transactions.UpdateStatus(id, models.TransactionStatusRejected)
	}

	switch tx.Category {
	case models.TransactionCategorySale:
		if _, err := s.users.AdjustWallet(tx.UserID, tx.Amount); err != nil {
			return nil, err
		}
	case models.TransactionCategoryDeposit:
		if _, err := s.users.AdjustTopUp(tx.UserID, tx.Amount); err != nil {
			return nil, err
		}
	case models.TransactionCategoryPlanPayment:
		planType := tx.Metadata.GetString("planType")
		if planType == "" {
			return nil, errors.New("plan payment has no plan type on record")
		}
		if _, err := s.plans.ChangePlan(tx.UserID, planType); err != nil {
			return nil, err
		}
	}

	updated, err := s.transactions.UpdateStatus(id, models.TransactionStatusApproved)
	if err != nil {
		return nil, err
	}
	log.Printf("transaction %s settled as %s", updated.Reference, updated.Status)
	return updated, nil
}

func (s *service) ListTransactions(userID uint, offset, limit int) ([]models.Transaction, int64, error) {
	return s.transactions.ListByUser(userID, limit, offset)
}

func (s *service) ListAllTransactions(offset, limit int) ([]models.Transaction, int64, error) {
	return s.transactions.List(limit, offset)
}

func (s *service) ListWithdrawals(userID uint) ([]models.WithdrawalRequest, error) {
	return s.withdrawals.ListByUser(userID)
}

func (s *service) ListAllWithdrawals(offset, limit int) ([]models.WithdrawalRequest, int64, error) {
	return s.withdrawals.List(limit, offset)
}
