package mongodb

import (
	"context"

	"github.com/K227-arch/home-solutions/internal/repositories"
	"go.mongodb.org/mongo-driver/mongo"
)

// Compile-time check to ensure TxRunner implements the interface
var _ repositories.TransactionRunner = (*TxRunner)(nil)

// TxRunner executes a function inside a MongoDB transaction. Requires the
// server to run as a replica set; standalone servers reject transactions.
type TxRunner struct {
	client *mongo.Client
}

// NewTxRunner creates a new TxRunner
func NewTxRunner(client *mongo.Client) *TxRunner {
	return &TxRunner{client: client}
}

// WithTransaction runs fn within a single transaction, committing on success
// and aborting on error.
func (t *TxRunner) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := t.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
