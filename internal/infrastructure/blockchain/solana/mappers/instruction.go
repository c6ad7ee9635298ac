package mappers

import (
	"github.com/blocto/solana-go-sdk/types"
	entities "github.com/whiteelite/solana-gateway/internal/domain/entities"
	"github.com/whiteelite/solana-gateway/internal/infrastructure/blockchain/solana/models"
)

func FromInstruction(inst types.Instruction) entities.Instruction {
	accounts := make([]entities.AccountMeta, 0, len(inst.Accounts))
	for _, meta := range inst.Accounts {
		accounts = append(accounts, entities.AccountMeta{
			PubKey:     entities.PublicKey(meta.PubKey.ToBase58()),
			IsSigner:   meta.IsSigner,
			IsWritable: meta.IsWritable,
		})
	}

	data := make([]byte, len(inst.Data))
	copy(data, inst.Data)

	return entities.Instruction{
		ProgramID: entities.PublicKey(inst.ProgramID.ToBase58()),
		Accounts:  accounts,
		Data:      data,
	}
}

func FromTransfer(model models.Transfer) entities.TokenTransfer {
	return entities.TokenTransfer{
		Instruction:    FromInstruction(model.Instruction),
		SourceATA:      entities.PublicKey(model.SourceATA.ToBase58()),
		DestinationATA: entities.PublicKey(model.DestinationATA.ToBase58()),
	}
}
