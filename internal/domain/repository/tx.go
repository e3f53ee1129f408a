package repository

import "context"

// TxManager runs a function inside one database transaction. The transaction
// travels in the context, so every repository call made with the derived
// context joins the same transaction and all of it commits or rolls back as
// a unit. Returning an error from fn rolls everything back.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
