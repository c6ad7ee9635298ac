package tokens

import (
	"encoding/base64"

	"github.com/whiteelite/solana-gateway/internal/domain/entities"
)

type CreateTokenInput struct {
	MintAuthority string `json:"mint_authority" validate:"required"`
	Mint          string `json:"mint" validate:"required"`
	Decimals      uint8  `json:"decimals"`
}

type MintTokenInput struct {
	Mint        string `json:"mint" validate:"required"`
	Destination string `json:"destination" validate:"required"`
	Authority   string `json:"authority" validate:"required"`
	Amount      uint64 `json:"amount" validate:"gt=0"`
}

type CreateTokenAccountInput struct {
	Funder string `json:"funder" validate:"required"`
	Owner  string `json:"owner" validate:"required"`
	Mint   string `json:"mint" validate:"required"`
}

type AccountMetaDTO struct {
	Pubkey     string `json:"pubkey"`
	IsSigner   bool   `json:"is_signer"`
	IsWritable bool   `json:"is_writable"`
}

type InstructionDTO struct {
	ProgramID       string           `json:"program_id"`
	Accounts        []AccountMetaDTO `json:"accounts"`
	InstructionData string           `json:"instruction_data"`
}

type TokenAccountDTO struct {
	InstructionDTO
	AssociatedTokenAddress string `json:"associated_token_address"`
}

// NewInstructionDTO projects inst with its payload base64 encoded.
func NewInstructionDTO(inst entities.Instruction) InstructionDTO {
	accounts := make([]AccountMetaDTO, 0, len(inst.Accounts))
	for _, meta := range inst.Accounts {
		accounts = append(accounts, AccountMetaDTO{
			Pubkey:     string(meta.PubKey),
			IsSigner:   meta.IsSigner,
			IsWritable: meta.IsWritable,
		})
	}
	return InstructionDTO{
		ProgramID:       string(inst.ProgramID),
		Accounts:        accounts,
		InstructionData: base64.StdEncoding.EncodeToString(inst.Data),
	}
}
