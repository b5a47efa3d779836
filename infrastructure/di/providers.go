package di

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"go.uber.org/zap"

	"playbook-backend/application/commands"
	"playbook-backend/application/commands/bus"
	commandhandlers "playbook-backend/application/commands/handlers"
	"playbook-backend/application/ports"
	"playbook-backend/application/queries"
	querybus "playbook-backend/application/queries/bus"
	queryhandlers "playbook-backend/application/queries/handlers"
	"playbook-backend/infrastructure/config"
	"playbook-backend/infrastructure/messaging/eventbridge"
	"playbook-backend/infrastructure/persistence/dynamodb"
	"playbook-backend/pkg/auth"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideEventBridgeClient creates an EventBridge client
func ProvideEventBridgeClient(awsCfg aws.Config) *awseventbridge.Client {
	return awseventbridge.NewFromConfig(awsCfg)
}

// ProvidePlaybookRepository creates the DynamoDB-backed repository
func ProvidePlaybookRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.PlaybookRepository {
	return dynamodb.NewPlaybookRepository(
		client,
		cfg.DynamoDBTable,
		cfg.IndexName,
		logger,
	)
}

// ProvideEventPublisher creates the EventBridge publisher
func ProvideEventPublisher(client *awseventbridge.Client, cfg *config.Config, logger *zap.Logger) ports.EventPublisher {
	return eventbridge.NewPublisher(
		client,
		cfg.EventBusName,
		logger,
	)
}

// ProvideJWTValidator creates the token validator. Development falls
// back to a fixed secret; production refuses to start without one via
// config validation.
func ProvideJWTValidator(cfg *config.Config) (*auth.JWTValidator, error) {
	secret := cfg.JWTSecret
	if secret == "" {
		secret = "development-secret-change-in-production"
	}
	return auth.NewJWTValidator(auth.JWTConfig{
		SecretKey: secret,
		Issuer:    cfg.JWTIssuer,
	})
}

// ProvideCommandBus creates a command bus with registered handlers
func ProvideCommandBus(
	repo ports.PlaybookRepository,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) *bus.CommandBus {
	commandBus := bus.NewCommandBus()
	logged := bus.LoggingMiddleware(logger)

	createHandler := commandhandlers.NewCreatePlaybookHandler(repo, publisher, logger)
	commandBus.Register(commands.CreatePlaybookCommand{}, logged(bus.CommandHandlerFunc(
		func(ctx context.Context, cmd bus.Command) error {
			createCmd, ok := cmd.(commands.CreatePlaybookCommand)
			if !ok {
				return fmt.Errorf("invalid command type %T", cmd)
			}
			return createHandler.Handle(ctx, createCmd)
		},
	)))

	updateHandler := commandhandlers.NewUpdatePlaybookGraphHandler(repo, publisher, logger)
	commandBus.Register(commands.UpdatePlaybookGraphCommand{}, logged(bus.CommandHandlerFunc(
		func(ctx context.Context, cmd bus.Command) error {
			updateCmd, ok := cmd.(commands.UpdatePlaybookGraphCommand)
			if !ok {
				return fmt.Errorf("invalid command type %T", cmd)
			}
			return updateHandler.Handle(ctx, updateCmd)
		},
	)))

	deleteHandler := commandhandlers.NewDeletePlaybookHandler(repo, publisher, logger)
	commandBus.Register(commands.DeletePlaybookCommand{}, logged(bus.CommandHandlerFunc(
		func(ctx context.Context, cmd bus.Command) error {
			deleteCmd, ok := cmd.(commands.DeletePlaybookCommand)
			if !ok {
				return fmt.Errorf("invalid command type %T", cmd)
			}
			return deleteHandler.Handle(ctx, deleteCmd)
		},
	)))

	return commandBus
}

// ProvideQueryBus creates a query bus with registered handlers
func ProvideQueryBus(repo ports.PlaybookRepository) *querybus.QueryBus {
	queryBus := querybus.NewQueryBus()

	validateHandler := queryhandlers.NewValidateGraphHandler()
	queryBus.Register(queries.ValidateGraphQuery{}, querybus.QueryHandlerFunc(
		func(ctx context.Context, query querybus.Query) (interface{}, error) {
			validateQuery, ok := query.(queries.ValidateGraphQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type %T", query)
			}
			return validateHandler.Handle(ctx, validateQuery)
		},
	))

	getHandler := queryhandlers.NewGetPlaybookHandler(repo)
	queryBus.Register(queries.GetPlaybookQuery{}, querybus.QueryHandlerFunc(
		func(ctx context.Context, query querybus.Query) (interface{}, error) {
			getQuery, ok := query.(queries.GetPlaybookQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type %T", query)
			}
			return getHandler.Handle(ctx, getQuery)
		},
	))

	listHandler := queryhandlers.NewListPlaybooksHandler(repo)
	queryBus.Register(queries.ListPlaybooksQuery{}, querybus.QueryHandlerFunc(
		func(ctx context.Context, query querybus.Query) (interface{}, error) {
			listQuery, ok := query.(queries.ListPlaybooksQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type %T", query)
			}
			return listHandler.Handle(ctx, listQuery)
		},
	))

	return queryBus
}
