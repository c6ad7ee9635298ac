package mapper

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	json "github.com/goccy/go-json"

	"github.com/google/uuid"
	"github.com/whiteelite/solana-gateway/internal/infrastructure/messaging/kafka/repositories/models"
	shared "github.com/whiteelite/solana-gateway/pkg/shared/domain/entities"
)

var ErrEmptyMessage = errors.New("message has no content")

func ToMessage[T shared.Entity](entity *T) (*models.Message, error) {
	serialized, err := json.Marshal(entity)
	if err != nil {
		return nil, err
	}

	sum := sha256.Sum256(serialized)

	return &models.Message{
		ID:         uuid.New(),
		Content:    string(serialized),
		Hash:       hex.EncodeToString(sum[:]),
		ProducedAt: time.Now().UTC(),
	}, nil
}

func FromMessage[T shared.Entity](message *models.Message) (*T, error) {
	if message == nil || message.Content == "" {
		return nil, ErrEmptyMessage
	}

	entity := new(T)
	if err := json.Unmarshal([]byte(message.Content), entity); err != nil {
		return nil, err
	}

	return entity, nil
}
