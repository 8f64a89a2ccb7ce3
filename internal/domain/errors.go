package domain

import (
	"errors"
	"fmt"
)

type NotFoundError struct {
	Resource string
	ID       string
	Err      error
}

func (e NotFoundError) Error() string {
	switch {
	case e.Resource != "" && e.ID != "":
		return fmt.Sprintf("%s %q não encontrado", e.Resource, e.ID)
	case e.Resource != "":
		return fmt.Sprintf("%s não encontrado", e.Resource)
	default:
		return "não encontrado"
	}
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("%s inválido", e.Field)
	}
	return "erro de validação"
}

func (e ValidationError) Unwrap() error { return e.Err }

// UnavailableError marks a record source that could not be read. The request
// can be retried unchanged.
type UnavailableError struct {
	Source string
	Err    error
}

func (e UnavailableError) Error() string {
	if e.Source == "" {
		return "fonte de dados indisponível"
	}
	return fmt.Sprintf("fonte de dados %s indisponível", e.Source)
}

func (e UnavailableError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "erro interno"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsUnavailable(err error) bool {
	var target UnavailableError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}
