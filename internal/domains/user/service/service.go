package service

import (
	"context"
	"fmt"
	"time"

	"choreboard/config"
	"choreboard/infras/otel"
	"choreboard/internal/domains/user/model"
	"choreboard/internal/domains/user/model/dto"
	"choreboard/internal/domains/user/repository"
	"choreboard/shared"
	"choreboard/shared/cache"
	"choreboard/shared/constant"
	"choreboard/shared/failure"
	"choreboard/shared/timezone"

	"github.com/rs/zerolog/log"
)

// minRevocationTTL keeps a revocation entry alive for tokens that are about to expire anyway.
const minRevocationTTL = time.Second

type User interface {
	Me(ctx context.Context) (dto.UserResponse, error)
	Logout(ctx context.Context) error
}

type serviceImpl struct {
	repo  repository.User
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.User, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) User {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Me returns the profile of the session user.
func (s *serviceImpl) Me(ctx context.Context) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Me")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	user, err := s.repo.Get(ctx, shared.FilterByID(userID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == "" {
		return res, failure.NotFound("user not found")
	}

	res.FromModel(user)

	return res, nil
}

// Logout revokes the presented access token until it would have expired.
func (s *serviceImpl) Logout(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Logout")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tokenID, _ := ctx.Value(constant.ContextKeyTokenID).(string)
	if tokenID == "" {
		return failure.Unauthorized("missing session")
	}

	ttl := time.Duration(s.cfg.JWT.AccessExpireMin) * time.Minute
	if expiresAt, ok := ctx.Value(constant.ContextKeyTokenExp).(time.Time); ok {
		ttl = expiresAt.Sub(timezone.Now())
	}

	ttl = max(ttl, minRevocationTTL)

	if err = s.cache.Save(ctx, shared.BuildCacheKey(constant.CacheKeyRevokedToken, tokenID), "1", ttl); err != nil {
		log.Error().Err(err).Str("token_id", tokenID).Msg("failed to revoke session")

		return fmt.Errorf("failed to revoke session: %w", err)
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	log.Info().Str("user_id", userID).Msg("user logged out")

	return nil
}
