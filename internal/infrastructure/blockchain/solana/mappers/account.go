package mappers

import (
	entities "github.com/whiteelite/solana-gateway/internal/domain/entities"
	"github.com/whiteelite/solana-gateway/internal/infrastructure/blockchain/solana/models"
)

func FromAccount(model models.Account) entities.Account {
	return entities.Account{
		PublicKey:  entities.PublicKey(model.PublicKey),
		PrivateKey: entities.PrivateKey(model.PrivateKey),
	}
}
