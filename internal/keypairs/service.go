package keypairs

import (
	"context"

	"github.com/whiteelite/solana-gateway/internal/domain/entities"
	"github.com/whiteelite/solana-gateway/internal/events"
	pkgerrors "github.com/whiteelite/solana-gateway/pkg/errors"
	"github.com/whiteelite/solana-gateway/pkg/metrics"
)

type AccountCreator interface {
	CreateAccount() entities.Account
}

type ServiceParams struct {
	Creator   AccountCreator
	Publisher events.Publisher
	Metrics   *metrics.InstructionMetrics
}

// KeypairDTO carries a freshly generated keypair, both halves base58.
type KeypairDTO struct {
	Pubkey string `json:"pubkey"`
	Secret string `json:"secret"`
}

type Service interface {
	Generate(ctx context.Context) (KeypairDTO, error)
}

type service struct {
	creator   AccountCreator
	publisher events.Publisher
	metrics   *metrics.InstructionMetrics
}

func NewService(params ServiceParams) (Service, error) {
	if params.Creator == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "account creator is required")
	}
	if params.Publisher == nil {
		params.Publisher = events.Noop{}
	}
	return &service{
		creator:   params.Creator,
		publisher: params.Publisher,
		metrics:   params.Metrics,
	}, nil
}

func (s *service) Generate(ctx context.Context) (KeypairDTO, error) {
	account := s.creator.CreateAccount()
	if account.PublicKey == "" || account.PrivateKey == "" {
		err := pkgerrors.New(pkgerrors.CodeInternal, "keypair generation failed")
		s.metrics.Observe(string(entities.OperationCreateKeypair), err)
		return KeypairDTO{}, err
	}
	s.metrics.Observe(string(entities.OperationCreateKeypair), nil)

	event := entities.NewAuditEvent(entities.OperationCreateKeypair, "")
	event.Accounts = []entities.PublicKey{account.PublicKey}
	s.publisher.Publish(ctx, event)

	return KeypairDTO{
		Pubkey: string(account.PublicKey),
		Secret: string(account.PrivateKey),
	}, nil
}
