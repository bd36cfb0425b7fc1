package sessions

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/rueidis"
)

// RedisStore keeps sessions in Redis under "<prefix>:<token>" with a TTL.
// The value encodes the identity as "<user id>:<is guest>".
type RedisStore struct {
	client rueidis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisStore(client rueidis.Client, prefix string, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (s *RedisStore) Create(ctx context.Context, identity Identity) (string, error) {
	token := uuid.NewString()
	value := fmt.Sprintf("%d:%t", identity.UserID, identity.IsGuest)

	cmd := s.client.B().Set().
		Key(s.key(token)).
		Value(value).
		ExSeconds(int64(s.ttl.Seconds())).
		Build()

	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return "", err
	}

	return token, nil
}

func (s *RedisStore) Get(ctx context.Context, token string) (Identity, error) {
	cmd := s.client.B().Get().Key(s.key(token)).Build()
	result := s.client.Do(ctx, cmd)

	if err := result.Error(); err != nil {
		if rueidis.IsRedisNil(err) {
			return Identity{}, ErrSessionNotFound
		}
		return Identity{}, err
	}

	value, err := result.ToString()
	if err != nil {
		return Identity{}, err
	}

	return parseIdentity(value)
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	cmd := s.client.B().Del().Key(s.key(token)).Build()
	return s.client.Do(ctx, cmd).Error()
}

func (s *RedisStore) key(token string) string {
	return s.prefix + ":" + token
}

func parseIdentity(value string) (Identity, error) {
	idPart, guestPart, ok := strings.Cut(value, ":")
	if !ok {
		return Identity{}, fmt.Errorf("malformed session value %q", value)
	}

	userID, err := strconv.ParseUint(idPart, 10, 32)
	if err != nil {
		return Identity{}, fmt.Errorf("malformed session user id %q", idPart)
	}

	isGuest, err := strconv.ParseBool(guestPart)
	if err != nil {
		return Identity{}, fmt.Errorf("malformed session guest flag %q", guestPart)
	}

	return Identity{UserID: uint(userID), IsGuest: isGuest}, nil
}
