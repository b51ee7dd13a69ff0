package atm

import (
	domainerrors "facilita/internal/errors"
	"facilita/internal/models"
	"facilita/internal/repositories"
	"facilita/internal/validation"
)

type Service interface {
	List() ([]models.ATM, error)
	Get(id uint) (*models.ATM, error)
	Create(atm *models.ATM) (*models.ATM, error)
	Update(atm *models.ATM) (*models.ATM, error)
	Delete(id uint) error

	// Vote toggles the caller's availability vote and returns the new
	// vote count together with whether the caller now has a vote.
	Vote(userID, atmID uint) (int, bool, error)
	SetStatus(id uint, status string) (*models.ATM, error)
}

type service struct {
	atms repositories.ATMRepository
}

func NewService(atms repositories.ATMRepository) Service {
	return &service{atms: atms}
}

func (s *service) List() ([]models.ATM, error) {
	return s.atms.List()
}

func (s *service) Get(id uint) (*models.ATM, error) {
	return s.atms.GetByID(id)
}

func (s *service) Create(atm *models.ATM) (*models.ATM, error) {
	v := validation.New()
	v.Required("name", atm.Name)
	v.Required("bank", atm.Bank)
	if !v.Valid() {
		return nil, domainerrors.NewDomainError("VALIDATION_FAILED", "atm name and bank are required")
	}
	if !validStatus(atm.Status) {
		atm.Status = models.ATMStatusHasMoney
	}
	if err := s.atms.Create(atm); err != nil {
		return nil, err
	}
	return atm, nil
}

func (s *service) Update(atm *models.ATM) (*models.ATM, error) {
	existing, err := s.atms.GetByID(atm.ID)
	if err != nil {
		return nil, err
	}
	if !validStatus(atm.Status) {
		atm.Status = existing.Status
	}
	atm.Votes = existing.Votes
	if err := s.atms.Update(atm); err != nil {
		return nil, err
	}
	return atm, nil
}

func (s *service) Delete(id uint) error {
	return s.atms.Delete(id)
}

func (s *service) Vote(userID, atmID uint) (int, bool, error) {
	voted, err := s.atms.ToggleVote(atmID, userID)
	if err != nil {
		return 0, false, err
	}
	atm, err := s.atms.GetByID(atmID)
	if err != nil {
		return 0, voted, err
	}
	return atm.Votes, voted, nil
}

func (s *service) SetStatus(id uint, status string) (*models.ATM, error) {
	if !validStatus(status) {
		return nil, domainerrors.NewDomainError("VALIDATION_FAILED", "unknown atm status %q", status)
	}
	atm, err := s.atms.GetByID(id)
	if err != nil {
		return nil, err
	}
	atm.Status = status
	if err := s.atms.Update(atm); err != nil {
		return nil, err
	}
	return atm, nil
}

func validStatus(status string) bool {
	switch status {
	case models.ATMStatusHasMoney, models.ATMStatusNoMoney, models.ATMStatusOffline:
		return true
	}
	return false
}
