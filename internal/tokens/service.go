package tokens

import (
	"context"

	"github.com/whiteelite/solana-gateway/internal/domain/entities"
	"github.com/whiteelite/solana-gateway/internal/events"
	"github.com/whiteelite/solana-gateway/internal/infrastructure/blockchain/solana/models"
	"github.com/whiteelite/solana-gateway/internal/validation"
	pkgerrors "github.com/whiteelite/solana-gateway/pkg/errors"
	"github.com/whiteelite/solana-gateway/pkg/metrics"
)

// InstructionBuilder is the subset of the Solana client used for SPL token instructions.
type InstructionBuilder interface {
	InitializeMint(req models.InitializeMintRequest) (entities.Instruction, error)
	MintTo(req models.MintToRequest) (entities.Instruction, error)
	CreateAssociatedTokenAccount(req models.CreateATARequest) (entities.TokenAccount, error)
}

// ServiceParams groups dependencies for the token service.
type ServiceParams struct {
	Builder   InstructionBuilder
	Publisher events.Publisher
	Metrics   *metrics.InstructionMetrics
}

// Service builds SPL token program instructions.
type Service interface {
	CreateToken(ctx context.Context, input CreateTokenInput) (InstructionDTO, error)
	MintToken(ctx context.Context, input MintTokenInput) (InstructionDTO, error)
	CreateTokenAccount(ctx context.Context, input CreateTokenAccountInput) (TokenAccountDTO, error)
}

type service struct {
	builder   InstructionBuilder
	publisher events.Publisher
	metrics   *metrics.InstructionMetrics
}

// NewService builds a token service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Builder == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "instruction builder is required")
	}
	if params.Publisher == nil {
		params.Publisher = events.Noop{}
	}
	return &service{
		builder:   params.Builder,
		publisher: params.Publisher,
		metrics:   params.Metrics,
	}, nil
}

// CreateToken builds InitializeMint with the mint authority also set as freeze authority.
func (s *service) CreateToken(ctx context.Context, input CreateTokenInput) (dto InstructionDTO, err error) {
	defer func() { s.metrics.Observe(string(entities.OperationInitializeMint), err) }()

	if err := validation.Struct(&input); err != nil {
		return InstructionDTO{}, err
	}

	inst, err := s.builder.InitializeMint(models.InitializeMintRequest{
		MintAuthority: input.MintAuthority,
		Mint:          input.Mint,
		Decimals:      input.Decimals,
	})
	if err != nil {
		return InstructionDTO{}, validation.BuildError(err)
	}

	s.publisher.Publish(ctx, entities.NewAuditEvent(entities.OperationInitializeMint, "").WithInstruction(inst))
	return NewInstructionDTO(inst), nil
}

// MintToken builds MintTo signed by the mint authority.
func (s *service) MintToken(ctx context.Context, input MintTokenInput) (dto InstructionDTO, err error) {
	defer func() { s.metrics.Observe(string(entities.OperationMintTo), err) }()

	if err := validation.Struct(&input); err != nil {
		return InstructionDTO{}, err
	}

	inst, err := s.builder.MintTo(models.MintToRequest{
		Mint:        input.Mint,
		Destination: input.Destination,
		Authority:   input.Authority,
		Amount:      input.Amount,
	})
	if err != nil {
		return InstructionDTO{}, validation.BuildError(err)
	}

	s.publisher.Publish(ctx, entities.NewAuditEvent(entities.OperationMintTo, "").
		WithInstruction(inst).
		WithAmount(input.Amount))
	return NewInstructionDTO(inst), nil
}

// CreateTokenAccount builds the associated token account create instruction for (owner, mint).
func (s *service) CreateTokenAccount(ctx context.Context, input CreateTokenAccountInput) (dto TokenAccountDTO, err error) {
	defer func() { s.metrics.Observe(string(entities.OperationCreateTokenAccount), err) }()

	if err := validation.Struct(&input); err != nil {
		return TokenAccountDTO{}, err
	}

	account, err := s.builder.CreateAssociatedTokenAccount(models.CreateATARequest{
		Funder: input.Funder,
		Owner:  input.Owner,
		Mint:   input.Mint,
	})
	if err != nil {
		return TokenAccountDTO{}, validation.BuildError(err)
	}

	s.publisher.Publish(ctx, entities.NewAuditEvent(entities.OperationCreateTokenAccount, "").WithInstruction(account.Instruction))
	return TokenAccountDTO{
		InstructionDTO:         NewInstructionDTO(account.Instruction),
		AssociatedTokenAddress: string(account.AssociatedTokenAddress),
	}, nil
}
