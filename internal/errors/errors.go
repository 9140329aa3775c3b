package errors

import (
	"errors"
	"fmt"
)

// Códigos de saída sugeridos para a camada de apresentação (CLI).
const (
	ExitInternal   = 1
	ExitValidation = 2
	ExitReference  = 3
	ExitState      = 4
)

// AppError é a interface central para todos os erros customizados do labstock.
// Ela permite que o código externo (console) acesse a Categoria e a Mensagem do erro.
type AppError interface {
	Error() string    // Implementa a interface error padrão do Go
	Category() string // Categoria do erro (e.g., "VALIDATION_ERROR", "REFERENCE_ERROR", "INTERNAL_ERROR")
	ExitCode() int    // Código de saída sugerido para o processo
	Unwrap() error    // Permite encapsular erros subjacentes (original error)
}

// --- Tipos de Erro Específicos (Erros de Domínio) ---

// ReferenceError indica que a operação endereçou um item inexistente.
type ReferenceError struct {
	Msg string
}

func (e *ReferenceError) Error() string    { return fmt.Sprintf("Referência inválida: %s", e.Msg) }
func (e *ReferenceError) Category() string { return "REFERENCE_ERROR" }
func (e *ReferenceError) ExitCode() int    { return ExitReference }
func (e *ReferenceError) Unwrap() error    { return nil }

// NewReferenceError cria um novo erro de referência.
func NewReferenceError(msg string) AppError {
	return &ReferenceError{Msg: msg}
}

// ValidationError representa falhas de validação de dados de entrada.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string    { return fmt.Sprintf("Erro de Validação: %s", e.Msg) }
func (e *ValidationError) Category() string { return "VALIDATION_ERROR" }
func (e *ValidationError) ExitCode() int    { return ExitValidation }
func (e *ValidationError) Unwrap() error    { return nil } // Não encapsula erro subjacente

// NewValidationError cria um novo erro de validação.
func NewValidationError(msg string) AppError {
	return &ValidationError{Msg: msg}
}

// StateError indica que o estado agregado do Store não atende à pré-condição da operação.
type StateError struct {
	Msg string
}

func (e *StateError) Error() string    { return fmt.Sprintf("Estado inválido: %s", e.Msg) }
func (e *StateError) Category() string { return "STATE_ERROR" }
func (e *StateError) ExitCode() int    { return ExitState }
func (e *StateError) Unwrap() error    { return nil }

// NewStateError cria um novo erro de estado.
func NewStateError(msg string) AppError {
	return &StateError{Msg: msg}
}

// --- Tipos de Erro de Infraestrutura (Encapsulamento) ---

// InternalError representa falhas inesperadas fora do núcleo (I/O do console, métricas).
type InternalError struct {
	Msg string
	Err error // Erro original subjacente
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("Erro Interno: %s", e.Msg)
	}
	return fmt.Sprintf("Erro Interno: %s: %s", e.Msg, e.Err.Error())
}
func (e *InternalError) Category() string { return "INTERNAL_ERROR" }
func (e *InternalError) ExitCode() int    { return ExitInternal }
func (e *InternalError) Unwrap() error    { return e.Err }

// NewInternalError cria um erro interno encapsulando a causa.
func NewInternalError(msg string, err error) AppError {
	return &InternalError{Msg: msg, Err: err}
}

// --- Helper para o Console (Tradução Final) ---

// MapToExitCode recebe um erro e o traduz para código de saída, categoria e mensagem.
func MapToExitCode(err error) (int, string, string) {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.ExitCode(), appErr.Category(), appErr.Error()
	}

	// Erro não tipado: tratar como erro interno genérico.
	return ExitInternal, "UNKNOWN_ERROR", "Ocorreu um erro inesperado."
}

// IsReference informa se err (ou algum erro encapsulado) é um ReferenceError.
func IsReference(err error) bool {
	var target *ReferenceError
	return errors.As(err, &target)
}

// IsValidation informa se err (ou algum erro encapsulado) é um ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsState informa se err (ou algum erro encapsulado) é um StateError.
func IsState(err error) bool {
	var target *StateError
	return errors.As(err, &target)
}
