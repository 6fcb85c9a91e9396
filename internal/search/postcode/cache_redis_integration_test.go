//go:build integration

package postcode_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"courtfinder/internal/search/postcode"
	"courtfinder/pkg/platform/sentinel"
	"courtfinder/pkg/testutil/containers"
)

type RedisCacheSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	cache *postcode.RedisCache
}

func TestRedisCacheSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisCacheSuite))
}

func (s *RedisCacheSuite) SetupSuite() {
	s.redis = containers.NewRedisContainer(s.T())
	s.cache = postcode.NewRedisCache(s.redis.Client, time.Minute)
}

func (s *RedisCacheSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisCacheSuite) TestMissReturnsNotFound() {
	_, err := s.cache.Get(context.Background(), "SE15 4UH")

	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *RedisCacheSuite) TestRoundTrip() {
	ctx := context.Background()
	resolved := &postcode.Resolved{
		Postcode: "SE15 4UH",
		Lat:      51.5570372347208,
		Lon:      -0.0696983642,
	}

	s.Require().NoError(s.cache.Set(ctx, resolved.Postcode, resolved))

	got, err := s.cache.Get(ctx, "SE15 4UH")
	s.Require().NoError(err)
	s.Equal(resolved.Postcode, got.Postcode)
	s.InDelta(resolved.Lat, got.Lat, 1e-9)
	s.InDelta(resolved.Lon, got.Lon, 1e-9)
}

func (s *RedisCacheSuite) TestExpiry() {
	ctx := context.Background()
	shortLived := postcode.NewRedisCache(s.redis.Client, 50*time.Millisecond)
	resolved := &postcode.Resolved{Postcode: "G1 1AA", Lat: 55.86, Lon: -4.25, Scotland: true}

	s.Require().NoError(shortLived.Set(ctx, resolved.Postcode, resolved))
	time.Sleep(100 * time.Millisecond)

	_, err := shortLived.Get(ctx, "G1 1AA")
	s.ErrorIs(err, sentinel.ErrNotFound)
}
