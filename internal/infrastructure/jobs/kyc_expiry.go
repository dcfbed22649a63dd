package jobs

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"

	"creator-kita.backend/internal/domain/entities"
	domainrepos "creator-kita.backend/internal/domain/repositories"
	"creator-kita.backend/pkg/logger"
)

const expiryBatchSize = 100

// KYCExpiryJob periodically demotes verified documents whose validity
// window has passed back to pending, so holders must re-submit.
type KYCExpiryJob struct {
	repo     domainrepos.KYCDocumentRepository
	interval time.Duration
	stop     chan struct{}
}

func NewKYCExpiryJob(repo domainrepos.KYCDocumentRepository, interval time.Duration) *KYCExpiryJob {
	return &KYCExpiryJob{
		repo:     repo,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

func (j *KYCExpiryJob) Start(ctx context.Context) {
	logger.Info(ctx, "starting kyc document expiry job", zap.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "kyc document expiry job stopped")
			return
		case <-j.stop:
			logger.Info(ctx, "kyc document expiry job stopped")
			return
		case <-ticker.C:
			j.processExpiredDocuments(ctx)
		}
	}
}

func (j *KYCExpiryJob) Stop() {
	close(j.stop)
}

func (j *KYCExpiryJob) processExpiredDocuments(ctx context.Context) {
	now := time.Now()
	expired, err := j.repo.ListVerifiedExpired(ctx, now, expiryBatchSize)
	if err != nil {
		logger.Error(ctx, "fetching expired kyc documents failed", zap.Error(err))
		return
	}
	if len(expired) == 0 {
		return
	}

	remarks := null.StringFrom("Document expired")
	demoted := 0
	for _, doc := range expired {
		// uuid.Nil marks a system decision rather than an admin's.
		if err := j.repo.UpdateVerification(ctx, doc.ID, entities.DocumentStatusPending, remarks, uuid.Nil, now); err != nil {
			logger.Error(ctx, "demoting expired kyc document failed",
				zap.String("document_id", doc.ID.String()),
				zap.Error(err))
			continue
		}
		demoted++
	}

	logger.Info(ctx, "expired kyc documents demoted to pending",
		zap.Int("count", demoted),
		zap.Int("candidates", len(expired)))
}
