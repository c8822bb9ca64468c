package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// KeyService accepts static API keys whose bcrypt hashes are configured.
type KeyService struct {
	hashes []string
}

func NewKeyService(hashes []string) *KeyService {
	return &KeyService{hashes: hashes}
}

func (k *KeyService) HashKey(key string) (string, error) {
	if key == "" {
		return "", errors.New("key cannot be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (k *KeyService) CompareKey(hashedKey, key string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedKey), []byte(key))
	return err == nil
}

func (k *KeyService) Validate(_ context.Context, token string) bool {
	for _, hash := range k.hashes {
		if k.CompareKey(hash, token) {
			return true
		}
	}
	return false
}
