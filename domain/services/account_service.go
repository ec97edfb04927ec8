package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"neonbank/domain/entities"
	"neonbank/domain/interfaces"

	"golang.org/x/crypto/bcrypt"
)

// accountNumberAttempts bounds the retry loop for the vanishingly rare
// case of a generated account number colliding with an existing one.
const accountNumberAttempts = 5

type accountService struct {
	uowFactory      interfaces.UnitOfWorkFactory
	startingBalance int64
}

// NewAccountService creates the account service. New accounts open with
// startingBalance cents.
func NewAccountService(uowFactory interfaces.UnitOfWorkFactory, startingBalance int64) interfaces.AccountService {
	return &accountService{
		uowFactory:      uowFactory,
		startingBalance: startingBalance,
	}
}

func (s *accountService) Register(ctx context.Context, characterName, password string) (*entities.Account, error) {
	if characterName == "" || password == "" {
		return nil, fmt.Errorf("character name and password are required: %w", entities.ErrInvalidCredentials)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	accounts := uow.AccountRepository()

	existing, err := accounts.GetByCharacterName(ctx, characterName)
	if err != nil {
		return nil, fmt.Errorf("failed to check character name: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("character name %q: %w", characterName, entities.ErrNameTaken)
	}

	accountNumber, err := s.freshAccountNumber(ctx, accounts)
	if err != nil {
		return nil, err
	}

	account := &entities.Account{
		AccountNumber: accountNumber,
		CharacterName: characterName,
		PasswordHash:  string(hash),
		Balance:       s.startingBalance,
	}
	if err := accounts.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit registration: %w", err)
	}
	return account, nil
}

func (s *accountService) Authenticate(ctx context.Context, characterName, password string) (*entities.Account, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	account, err := uow.AccountRepository().GetByCharacterName(ctx, characterName)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if account == nil {
		return nil, entities.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, entities.ErrInvalidCredentials
	}
	return account, nil
}

func (s *accountService) GetByAccountNumber(ctx context.Context, accountNumber string) (*entities.Account, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	account, err := uow.AccountRepository().GetByAccountNumber(ctx, accountNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if account == nil {
		return nil, fmt.Errorf("account %s: %w", accountNumber, entities.ErrAccountNotFound)
	}
	return account, nil
}

// freshAccountNumber generates an unused NC-XXXX-XXXX account number
// within the given unit of work.
func (s *accountService) freshAccountNumber(ctx context.Context, accounts interfaces.AccountRepository) (string, error) {
	for attempt := 0; attempt < accountNumberAttempts; attempt++ {
		number, err := generateAccountNumber()
		if err != nil {
			return "", err
		}
		existing, err := accounts.GetByAccountNumber(ctx, number)
		if err != nil {
			return "", fmt.Errorf("failed to check account number: %w", err)
		}
		if existing == nil {
			return number, nil
		}
	}
	return "", fmt.Errorf("failed to generate an unused account number after %d attempts", accountNumberAttempts)
}

// generateAccountNumber produces a random account number of the form
// NC-1234-5678 using a CSPRNG.
func generateAccountNumber() (string, error) {
	digits := make([]byte, 8)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to draw account number digit: %w", err)
		}
		digits[i] = byte('0' + n.Int64())
	}
	return fmt.Sprintf("NC-%s-%s", digits[:4], digits[4:]), nil
}
