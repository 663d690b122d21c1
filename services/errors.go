package services

import (
	"errors"
	"fmt"
)

// Общие ошибки, используемые в сервисах и маппинге HTTP.
var (
	ErrDuplicateIdentifier   = errors.New("athlete cpf already registered")
	ErrAthleteCreationFailed = errors.New("failed to create athlete")
	ErrAthleteListFailed     = errors.New("failed to list athletes")
	ErrExportUnavailable     = errors.New("athlete export storage is not configured")
	ErrExportFailed          = errors.New("failed to export athletes")
)

// DuplicateIdentifierError is returned when a CPF is already registered.
// It matches ErrDuplicateIdentifier with errors.Is.
type DuplicateIdentifierError struct {
	CPF string
}

func (e *DuplicateIdentifierError) Error() string {
	return fmt.Sprintf("Já existe um atleta cadastrado com o cpf: %s", e.CPF)
}

func (e *DuplicateIdentifierError) Is(target error) bool {
	return target == ErrDuplicateIdentifier
}
