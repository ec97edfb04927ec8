package testutil

import (
	"neonbank/domain/entities"
)

// CreateTestAccount builds an unsaved account with default values
func CreateTestAccount(accountNumber, characterName string) *entities.Account {
	return &entities.Account{
		AccountNumber: accountNumber,
		CharacterName: characterName,
		PasswordHash:  "$2a$04$testtesttesttesttesttestesttesttesttesttesttesttesttes",
		Balance:       100_000,
	}
}

// CreateTestAccountWithBalance builds an unsaved account with a specific balance
func CreateTestAccountWithBalance(accountNumber, characterName string, balance int64) *entities.Account {
	account := CreateTestAccount(accountNumber, characterName)
	account.Balance = balance
	return account
}
