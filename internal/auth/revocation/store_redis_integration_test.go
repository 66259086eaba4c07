//go:build integration

package revocation_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"zoo/internal/auth/revocation"
	"zoo/pkg/testutil/containers"
)

type RedisTRLSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	trl   *revocation.RedisTRL
}

func TestRedisTRLSuite(t *testing.T) {
	suite.Run(t, new(RedisTRLSuite))
}

func (s *RedisTRLSuite) SetupSuite() {
	s.redis = containers.GetManager().GetRedis(s.T())
	s.trl = revocation.NewRedisTRL(s.redis.Client)
}

func (s *RedisTRLSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisTRLSuite) TestRevokeAndCheck() {
	ctx := context.Background()
	s.Require().NoError(s.trl.RevokeToken(ctx, "jti-1", time.Minute))

	revoked, err := s.trl.IsRevoked(ctx, "jti-1")
	s.Require().NoError(err)
	s.True(revoked)

	revoked, err = s.trl.IsRevoked(ctx, "jti-2")
	s.Require().NoError(err)
	s.False(revoked)

	ttl, err := s.redis.Client.TTL(ctx, "trl:jti:jti-1").Result()
	s.Require().NoError(err)
	s.Greater(ttl, time.Duration(0))
	s.LessOrEqual(ttl, time.Minute)
}

func (s *RedisTRLSuite) TestRevocationExpires() {
	ctx := context.Background()
	s.Require().NoError(s.trl.RevokeToken(ctx, "jti-short", 1100*time.Millisecond))

	s.Eventually(func() bool {
		revoked, err := s.trl.IsRevoked(ctx, "jti-short")
		return err == nil && !revoked
	}, 5*time.Second, 200*time.Millisecond)
}
