package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whiteelite/solana-gateway/internal/domain/entities"
	"github.com/whiteelite/solana-gateway/internal/infrastructure/messaging/kafka/repositories/models"
)

func TestToMessageHashIsStableForContent(t *testing.T) {
	event := entities.NewAuditEvent(entities.OperationTransferSOL, "req-1").WithAmount(5000)

	first, err := ToMessage(&event)
	require.NoError(t, err)
	second, err := ToMessage(&event)
	require.NoError(t, err)

	assert.Equal(t, first.Hash, second.Hash)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, first.Hash, 64)
	assert.Contains(t, first.Content, `"operation":"transfer_sol"`)
	assert.NotContains(t, first.Content, "Entity")
	assert.False(t, first.ProducedAt.IsZero())
}

func TestFromMessageDecodesAuditEvent(t *testing.T) {
	event := entities.NewAuditEvent(entities.OperationMintTo, "req-2").
		WithInstruction(entities.Instruction{
			ProgramID: "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA",
			Accounts: []entities.AccountMeta{
				{PubKey: "mint", IsWritable: true},
				{PubKey: "authority", IsSigner: true},
			},
		})

	message, err := ToMessage(&event)
	require.NoError(t, err)

	decoded, err := FromMessage[entities.AuditEvent](message)
	require.NoError(t, err)
	assert.Equal(t, event.ID, decoded.ID)
	assert.Equal(t, entities.PublicKey("authority"), decoded.Signer)
	assert.Equal(t, []entities.PublicKey{"mint", "authority"}, decoded.Accounts)
}

func TestFromMessageRejectsEmptyContent(t *testing.T) {
	_, err := FromMessage[entities.AuditEvent](&models.Message{})
	assert.ErrorIs(t, err, ErrEmptyMessage)

	_, err = FromMessage[entities.AuditEvent](&models.Message{Content: "{"})
	assert.Error(t, err)
}
