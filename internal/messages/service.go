package messages

import (
	"context"
	"encoding/base64"

	"github.com/whiteelite/solana-gateway/internal/domain/entities"
	"github.com/whiteelite/solana-gateway/internal/events"
	"github.com/whiteelite/solana-gateway/internal/infrastructure/blockchain/solana/models"
	"github.com/whiteelite/solana-gateway/internal/validation"
	pkgerrors "github.com/whiteelite/solana-gateway/pkg/errors"
	"github.com/whiteelite/solana-gateway/pkg/metrics"
)

type Signer interface {
	SignMessage(req models.SignMessageRequest) (entities.SignedMessage, error)
	VerifyMessage(req models.VerifyMessageRequest) (bool, error)
}

type ServiceParams struct {
	Signer    Signer
	Publisher events.Publisher
	Metrics   *metrics.InstructionMetrics
}

// Service signs and verifies off-chain messages with ed25519 keys.
type Service interface {
	Sign(ctx context.Context, input SignInput) (SignatureDTO, error)
	Verify(ctx context.Context, input VerifyInput) (VerificationDTO, error)
}

type service struct {
	signer    Signer
	publisher events.Publisher
	metrics   *metrics.InstructionMetrics
}

func NewService(params ServiceParams) (Service, error) {
	if params.Signer == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "signer is required")
	}
	if params.Publisher == nil {
		params.Publisher = events.Noop{}
	}
	return &service{
		signer:    params.Signer,
		publisher: params.Publisher,
		metrics:   params.Metrics,
	}, nil
}

func (s *service) Sign(ctx context.Context, input SignInput) (dto SignatureDTO, err error) {
	defer func() { s.metrics.Observe(string(entities.OperationSignMessage), err) }()

	if err := validation.Struct(&input); err != nil {
		return SignatureDTO{}, err
	}

	signed, err := s.signer.SignMessage(models.SignMessageRequest{
		Secret:  input.Secret,
		Message: input.Message,
	})
	if err != nil {
		return SignatureDTO{}, validation.BuildError(err)
	}

	event := entities.NewAuditEvent(entities.OperationSignMessage, "")
	event.Signer = signed.PublicKey
	s.publisher.Publish(ctx, event)

	return SignatureDTO{
		Signature: base64.StdEncoding.EncodeToString(signed.Signature),
		PublicKey: string(signed.PublicKey),
		Message:   signed.Message,
	}, nil
}

// Verify reports an invalid signature as Valid=false; only malformed
// encodings return an error.
func (s *service) Verify(ctx context.Context, input VerifyInput) (dto VerificationDTO, err error) {
	defer func() { s.metrics.Observe(string(entities.OperationVerifyMessage), err) }()

	if err := validation.Struct(&input); err != nil {
		return VerificationDTO{}, err
	}

	valid, err := s.signer.VerifyMessage(models.VerifyMessageRequest{
		PublicKey: input.Pubkey,
		Signature: input.Signature,
		Message:   input.Message,
	})
	if err != nil {
		return VerificationDTO{}, validation.BuildError(err)
	}

	return VerificationDTO{
		Valid:   valid,
		Message: input.Message,
		Pubkey:  input.Pubkey,
	}, nil
}
