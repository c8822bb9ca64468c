package auth

import (
	"context"
	"net/http"
	"net/url"

	"github.com/GlebRadaev/clientes/pkg/clients"
	"go.uber.org/zap"
)

// RemoteService delegates validation to an external endpoint: the token is
// sent as the "token" query parameter and only a 200 answer accepts it.
type RemoteService struct {
	url    string
	client clients.HTTPClientI
}

func NewRemoteService(address string, client clients.HTTPClientI) *RemoteService {
	return &RemoteService{
		url:    address,
		client: client,
	}
}

func (s *RemoteService) Validate(ctx context.Context, token string) bool {
	u, err := url.Parse(s.url)
	if err != nil {
		zap.L().Error("invalid token validator address", zap.String("address", s.url), zap.Error(err))
		return false
	}
	q := u.Query()
	q.Set(TokenParam, token)
	u.RawQuery = q.Encode()

	headers := http.Header{}
	headers.Set("Accept", "application/json")
	statusCode, _, _, err := s.client.Get(ctx, u.String(), headers)
	if err != nil {
		zap.L().Error("token validator request failed", zap.Error(err))
		return false
	}
	if statusCode != http.StatusOK {
		zap.L().Debug("token rejected by validator", zap.Int("status", statusCode))
		return false
	}
	return true
}
