//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"github.com/google/wire"
	"go.uber.org/zap"

	"playbook-backend/application/commands/bus"
	"playbook-backend/application/ports"
	querybus "playbook-backend/application/queries/bus"
	"playbook-backend/infrastructure/config"
	"playbook-backend/pkg/auth"
)

// Container holds all application dependencies
type Container struct {
	Config         *config.Config
	Logger         *zap.Logger
	PlaybookRepo   ports.PlaybookRepository
	EventPublisher ports.EventPublisher
	JWTValidator   *auth.JWTValidator
	CommandBus     *bus.CommandBus
	QueryBus       *querybus.QueryBus
}

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideAWSConfig,
	ProvideDynamoDBClient,
	ProvideEventBridgeClient,
	ProvidePlaybookRepository,
	ProvideEventPublisher,
	ProvideJWTValidator,
	ProvideCommandBus,
	ProvideQueryBus,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
