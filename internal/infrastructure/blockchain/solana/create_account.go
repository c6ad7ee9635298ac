package sdk

import (
	"github.com/blocto/solana-go-sdk/types"
	"github.com/mr-tron/base58"
	entities "github.com/whiteelite/solana-gateway/internal/domain/entities"
	"github.com/whiteelite/solana-gateway/internal/infrastructure/blockchain/solana/mappers"
	"github.com/whiteelite/solana-gateway/internal/infrastructure/blockchain/solana/models"
)

// CreateAccount generates a fresh keypair. PrivateKey is the base58 64-byte
// secret accepted by AccountFromSecret.
func (c *Client) CreateAccount() entities.Account {
	account := types.NewAccount()

	return mappers.FromAccount(models.Account{
		PrivateKey: base58.Encode(account.PrivateKey),
		PublicKey:  account.PublicKey.ToBase58(),
	})
}
