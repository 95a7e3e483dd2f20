package service

import (
	"github.com/launcherlock/answer-relay/internal/adapter"
	"github.com/launcherlock/answer-relay/internal/crypto"
	"github.com/launcherlock/answer-relay/internal/identity"
	"github.com/launcherlock/answer-relay/internal/logger"
	"github.com/launcherlock/answer-relay/internal/store"
)

type ClientServices struct {
	SubmissionService ClientSubmissionService
	FlushJob          ClientFlushJob
	Identity          *identity.Provider
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, signer crypto.Signer, identityProvider *identity.Provider, flushBatchSize int, logger *logger.Logger) *ClientServices {
	submissionSvc := NewClientSubmissionService(storages.Queue, serverAdapter, signer, identityProvider, flushBatchSize, logger)

	return &ClientServices{
		SubmissionService: submissionSvc,
		FlushJob:          NewClientFlushJob(submissionSvc),
		Identity:          identityProvider,
	}
}
