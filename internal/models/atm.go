package models

import (
	"gorm.io/gorm"
)

// ATM availability statuses as voted by the community.
const (
	ATMStatusHasMoney = "HAS_MONEY"
	ATMStatusNoMoney  = "NO_MONEY"
	ATMStatusOffline  = "OFFLINE"
)

type ATM struct {
	gorm.Model
	Name    string `gorm:"not null"`
	Bank    string `gorm:"not null"`
	Address string
	Status  string  `gorm:"default:'HAS_MONEY'"`
	Lat     float64
	Lng     float64
	Votes   int `gorm:"default:0"`
}

// ATMVote records that a user confirmed an ATM's reported status.
// Voting is a toggle; removing the row removes the confirmation.
type ATMVote struct {
	gorm.Model
	ATMID  uint `gorm:"index:idx_atm_vote,unique;not null"`
	UserID uint `gorm:"index:idx_atm_vote,unique;not null"`
}

// DefaultATMs is the fallback dataset used when the registry is empty,
// mirroring the launch set of Luanda machines.
func DefaultATMs() []ATM {
	return []ATM{
		{Name: "ATM Vila Alice", Bank: "BAI", Address: "Rua Aníbal de Melo, Vila Alice", Status: ATMStatusHasMoney, Lat: 40, Lng: 40, Votes: 124},
		{Name: "ATM Largo da Família", Bank: "BFA", Address: "Largo da Família, Luanda", Status: ATMStatusOffline, Lat: 60, Lng: 20, Votes: 5},
		{Name: "ATM Mutamba", Bank: "BIC", Address: "Rua da Missão", Status: ATMStatusHasMoney, Lat: 20, Lng: 70, Votes: 450},
		{Name: "ATM Atlantico Shopping", Bank: "ATL", Address: "Belas Shopping", Status: ATMStatusNoMoney, Lat: 80, Lng: 80, Votes: 12},
		{Name: "ATM Banco Sol", Bank: "SOL", Address: "Av. Ho Chi Minh", Status: ATMStatusHasMoney, Lat: 50, Lng: 50, Votes: 89},
	}
}
