package repository

import "context"

// TxRunner ejecuta fn dentro de una transacción; los repositorios obtenidos de ctx la comparten.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
