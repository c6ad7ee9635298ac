package entities

import (
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/whiteelite/solana-gateway/pkg/shared/domain/entities"
)

type (
	PrivateKey string
	PublicKey  string
)

type Account struct {
	entities.Entity

	PrivateKey PrivateKey
	PublicKey  PublicKey
}

type AccountMeta struct {
	PubKey     PublicKey
	IsSigner   bool
	IsWritable bool
}

type Instruction struct {
	entities.Entity

	ProgramID PublicKey
	Accounts  []AccountMeta
	Data      []byte
}

// Signers lists the accounts that must sign the instruction, in order.
func (i Instruction) Signers() []PublicKey {
	var signers []PublicKey
	for _, meta := range i.Accounts {
		if meta.IsSigner {
			signers = append(signers, meta.PubKey)
		}
	}
	return signers
}

type SignedMessage struct {
	entities.Entity

	Signature []byte
	PublicKey PublicKey
	Message   string
}

type TokenTransfer struct {
	entities.Entity

	Instruction    Instruction
	SourceATA      PublicKey
	DestinationATA PublicKey
}

type TokenAccount struct {
	entities.Entity

	Instruction            Instruction
	AssociatedTokenAddress PublicKey
}

type Operation string

const (
	OperationCreateKeypair      Operation = "create_keypair"
	OperationSignMessage        Operation = "sign_message"
	OperationVerifyMessage      Operation = "verify_message"
	OperationInitializeMint     Operation = "initialize_mint"
	OperationMintTo             Operation = "mint_to"
	OperationCreateTokenAccount Operation = "create_token_account"
	OperationTransferSOL        Operation = "transfer_sol"
	OperationTransferToken      Operation = "transfer_token"
)

// AuditEvent describes a successful build. It never carries secret material.
type AuditEvent struct {
	entities.Entity `json:"-"`

	ID        uuid.UUID        `json:"id"`
	Operation Operation        `json:"operation"`
	ProgramID PublicKey        `json:"program_id,omitempty"`
	Accounts  []PublicKey      `json:"accounts,omitempty"`
	Signer    PublicKey        `json:"signer,omitempty"`
	Amount    *decimal.Decimal `json:"amount,omitempty"`
	RequestID string           `json:"request_id,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

func NewAuditEvent(operation Operation, requestID string) AuditEvent {
	return AuditEvent{
		ID:        uuid.New(),
		Operation: operation,
		RequestID: requestID,
		CreatedAt: time.Now().UTC(),
	}
}

// WithInstruction copies the program and account addresses of inst.
func (e AuditEvent) WithInstruction(inst Instruction) AuditEvent {
	e.ProgramID = inst.ProgramID
	e.Accounts = make([]PublicKey, 0, len(inst.Accounts))
	for _, meta := range inst.Accounts {
		e.Accounts = append(e.Accounts, meta.PubKey)
	}
	if signers := inst.Signers(); len(signers) > 0 {
		e.Signer = signers[0]
	}
	return e
}

func (e AuditEvent) WithAmount(amount uint64) AuditEvent {
	value := decimal.NewFromBigInt(new(big.Int).SetUint64(amount), 0)
	e.Amount = &value
	return e
}
