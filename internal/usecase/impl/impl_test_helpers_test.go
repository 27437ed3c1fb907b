package impl

import (
	"context"
	"io"
	"log/slog"

	"medifind/internal/domain/repository"
	mockRepo "medifind/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

// newDiscardLogger returns a logger that drops everything, keeping test
// output clean.
func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// passthroughTx wires a MockTransactionManager so Execute simply runs
// the given function against the supplied factory, as the real manager
// would inside a committed transaction.
func passthroughTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
