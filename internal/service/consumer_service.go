package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"plan-migration-be/internal/dto"
	"plan-migration-be/internal/engine"
	"plan-migration-be/internal/repository/specification"
	"plan-migration-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub                *gochannel.GoChannel
	topicName             string
	uowFactory            unitofwork.RepositoryFactory
	recommendationService IRecommendationService
	batchService          IBatchService
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	recommendationService IRecommendationService,
	batchService IBatchService,
) IConsumerService {
	return &consumerService{
		pubSub:                pubSub,
		topicName:             topicName,
		uowFactory:            uowFactory,
		recommendationService: recommendationService,
		batchService:          batchService,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishRecomputeMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	if payload.All {
		log.Printf("[INFO] Processing full recompute (reason: %s)", payload.Reason)
		report, err := cs.batchService.RecomputeAll(ctx)
		if err != nil {
			if errors.Is(err, engine.ErrNoCandidate) {
				log.Printf("[WARN] Full recompute skipped: no catalog installed")
				msg.Ack()
				return
			}
			log.Printf("[ERROR] Full recompute failed: %v", err)
			msg.Nack()
			return
		}
		log.Printf("[SUCCESS] Full recompute done: %d processed, %d succeeded, %d failed", report.Processed, report.Succeeded, report.Failed)
		msg.Ack()
		return
	}

	if payload.AccountId == uuid.Nil {
		log.Printf("[ERROR] Recompute message without account id (reason: %s)", payload.Reason)
		msg.Ack()
		return
	}

	log.Printf("[INFO] Processing recompute for AccountId: %s (reason: %s)", payload.AccountId, payload.Reason)

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	account, err := uow.AccountRepository().FindOne(ctx, specification.ByID{ID: payload.AccountId})
	if err != nil {
		log.Printf("[ERROR] Failed to load account %s: %v", payload.AccountId, err)
		msg.Nack() // Nack for retriable errors
		return
	}
	if account == nil {
		log.Printf("[ERROR] Account not found: %s", payload.AccountId)
		msg.Ack() // Account deleted? Ack.
		return
	}

	if _, err := cs.recommendationService.Recompute(ctx, payload.AccountId); err != nil {
		if errors.Is(err, engine.ErrNoCandidate) {
			log.Printf("[WARN] No candidate plan for account %s", payload.AccountId)
			msg.Ack()
			return
		}
		if engine.IsInputError(err) {
			log.Printf("[ERROR] Rejected account %s: %v", payload.AccountId, err)
			msg.Ack() // Malformed input never becomes valid on retry.
			return
		}
		log.Printf("[ERROR] Recompute failed for account %s: %v", payload.AccountId, err)
		msg.Nack()
		return
	}

	log.Printf("[SUCCESS] Recommendation recomputed for AccountId: %s", payload.AccountId)
	msg.Ack()
}
