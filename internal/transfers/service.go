package transfers

import (
	"context"
	"encoding/base64"
	"math/big"

	"github.com/shopspring/decimal"
	"github.com/whiteelite/solana-gateway/internal/domain/entities"
	"github.com/whiteelite/solana-gateway/internal/events"
	"github.com/whiteelite/solana-gateway/internal/infrastructure/blockchain/solana/models"
	"github.com/whiteelite/solana-gateway/internal/validation"
	pkgerrors "github.com/whiteelite/solana-gateway/pkg/errors"
	"github.com/whiteelite/solana-gateway/pkg/metrics"
)

// lamportsExponent scales lamports to SOL (1 SOL = 10^9 lamports).
const lamportsExponent = -9

type InstructionBuilder interface {
	TransferSOL(req models.TransferSOLRequest) (entities.Instruction, error)
	TransferToken(req models.TransferTokenRequest) (entities.TokenTransfer, error)
}

type ServiceParams struct {
	Builder   InstructionBuilder
	Publisher events.Publisher
	Metrics   *metrics.InstructionMetrics
}

// Service builds system and SPL token transfer instructions.
type Service interface {
	SendSOL(ctx context.Context, input SendSOLInput) (SOLTransferDTO, error)
	SendToken(ctx context.Context, input SendTokenInput) (TokenTransferDTO, error)
}

type service struct {
	builder   InstructionBuilder
	publisher events.Publisher
	metrics   *metrics.InstructionMetrics
}

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

func (s *service) SendSOL(ctx context.Context, input SendSOLInput) (dto SOLTransferDTO, err error) {
	defer func() { s.metrics.Observe(string(entities.OperationTransferSOL), err) }()

	if err := validation.Struct(&input); err != nil {
		return SOLTransferDTO{}, err
	}

	inst, err := s.builder.TransferSOL(models.TransferSOLRequest{
		From:     input.From,
		To:       input.To,
		Lamports: input.Lamports,
	})
	if err != nil {
		return SOLTransferDTO{}, validation.BuildError(err)
	}

	accounts := make([]string, 0, len(inst.Accounts))
	for _, meta := range inst.Accounts {
		accounts = append(accounts, string(meta.PubKey))
	}

	s.publisher.Publish(ctx, entities.NewAuditEvent(entities.OperationTransferSOL, "").
		WithInstruction(inst).
		WithAmount(input.Lamports))
	return SOLTransferDTO{
		ProgramID:       string(inst.ProgramID),
		Accounts:        accounts,
		InstructionData: base64.StdEncoding.EncodeToString(inst.Data),
		Lamports:        input.Lamports,
		AmountSOL:       LamportsToSOL(input.Lamports).String(),
	}, nil
}

// SendToken transfers between the associated token accounts of owner and
// destination. The amount is checked before any address is parsed.
func (s *service) SendToken(ctx context.Context, input SendTokenInput) (dto TokenTransferDTO, err error) {
	defer func() { s.metrics.Observe(string(entities.OperationTransferToken), err) }()

	if err := validation.Struct(&input); err != nil {
		return TokenTransferDTO{}, err
	}

	transfer, err := s.builder.TransferToken(models.TransferTokenRequest{
		Mint:        input.Mint,
		Owner:       input.Owner,
		Destination: input.Destination,
		Amount:      input.Amount,
	})
	if err != nil {
		return TokenTransferDTO{}, validation.BuildError(err)
	}

	inst := transfer.Instruction
	accounts := make([]TokenTransferAccountDTO, 0, len(inst.Accounts))
	for _, meta := range inst.Accounts {
		accounts = append(accounts, TokenTransferAccountDTO{
			Pubkey:   string(meta.PubKey),
			IsSigner: meta.IsSigner,
		})
	}

	s.publisher.Publish(ctx, entities.NewAuditEvent(entities.OperationTransferToken, "").
		WithInstruction(inst).
		WithAmount(input.Amount))
	return TokenTransferDTO{
		ProgramID:       string(inst.ProgramID),
		Accounts:        accounts,
		InstructionData: base64.StdEncoding.EncodeToString(inst.Data),
	}, nil
}

func LamportsToSOL(lamports uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(lamports), lamportsExponent)
}
