package source

import "errors"

var (
	ErrFetchFailed = errors.New("falha ao buscar documento")
	ErrBadStatus   = errors.New("status HTTP inesperado")
	ErrEmptySource = errors.New("fonte de dados não configurada")
)
