package domain

import "context"

// UnitOfWork define a interface para gerenciamento de transações.
// WithTransaction executa fn dentro de uma transação: todos os writes
// feitos através do contexto retornado são commitados ou desfeitos juntos.
type UnitOfWork interface {
	WithTransaction(ctx context.Context, fn func(context.Context) error) error
}
