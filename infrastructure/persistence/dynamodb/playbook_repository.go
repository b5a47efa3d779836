// Package dynamodb implements the playbook repository on a DynamoDB
// single-table layout. Items are keyed by owner, with a GSI keyed by
// playbook ID for direct lookups.
package dynamodb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"playbook-backend/application/ports"
	"playbook-backend/domain/playbook"
	"playbook-backend/pkg/errors"
)

// PlaybookRepository implements ports.PlaybookRepository using DynamoDB
type PlaybookRepository struct {
	client    *dynamodb.Client
	tableName string
	indexName string
	logger    *zap.Logger
}

// NewPlaybookRepository creates a new PlaybookRepository
func NewPlaybookRepository(client *dynamodb.Client, tableName, indexName string, logger *zap.Logger) ports.PlaybookRepository {
	return &PlaybookRepository{
		client:    client,
		tableName: tableName,
		indexName: indexName,
		logger:    logger,
	}
}

// playbookItem represents the DynamoDB item structure for a playbook
type playbookItem struct {
	PK         string `dynamodbav:"PK"`
	SK         string `dynamodbav:"SK"`
	GSI1PK     string `dynamodbav:"GSI1PK"`
	GSI1SK     string `dynamodbav:"GSI1SK"`
	EntityType string `dynamodbav:"EntityType"`
	PlaybookID string `dynamodbav:"PlaybookID"`
	UserID     string `dynamodbav:"UserID"`
	Name       string `dynamodbav:"Name"`
	Graph      string `dynamodbav:"Graph"`
	NodeCount  int    `dynamodbav:"NodeCount"`
	EdgeCount  int    `dynamodbav:"EdgeCount"`
	CreatedAt  string `dynamodbav:"CreatedAt"`
	UpdatedAt  string `dynamodbav:"UpdatedAt"`
	Version    int    `dynamodbav:"Version"`
}

func userPK(userID string) string {
	return fmt.Sprintf("USER#%s", userID)
}

func playbookSK(id playbook.ID) string {
	return fmt.Sprintf("PLAYBOOK#%s", id.String())
}

// Save persists a playbook. Writes are full replacements; the
// aggregate's version field tracks graph revisions, not row state.
func (r *PlaybookRepository) Save(ctx context.Context, p *playbook.Playbook) error {
	graphJSON, err := json.Marshal(p.Graph())
	if err != nil {
		return fmt.Errorf("failed to marshal graph: %w", err)
	}

	item := playbookItem{
		PK:         userPK(p.UserID()),
		SK:         playbookSK(p.ID()),
		GSI1PK:     playbookSK(p.ID()),
		GSI1SK:     "METADATA",
		EntityType: "PLAYBOOK",
		PlaybookID: p.ID().String(),
		UserID:     p.UserID(),
		Name:       p.Name(),
		Graph:      string(graphJSON),
		NodeCount:  p.Graph().NodeCount(),
		EdgeCount:  p.Graph().EdgeCount(),
		CreatedAt:  p.CreatedAt().Format(time.RFC3339Nano),
		UpdatedAt:  p.UpdatedAt().Format(time.RFC3339Nano),
		Version:    p.Version(),
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal playbook: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		r.logger.Error("Failed to save playbook to DynamoDB",
			zap.Error(err),
			zap.String("playbookID", p.ID().String()),
		)
		return fmt.Errorf("failed to save playbook: %w", err)
	}

	return nil
}

// GetByID loads a playbook through the ID index.
func (r *PlaybookRepository) GetByID(ctx context.Context, id playbook.ID) (*playbook.Playbook, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(r.indexName),
		KeyConditionExpression: aws.String("GSI1PK = :pk AND GSI1SK = :sk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: playbookSK(id)},
			":sk": &types.AttributeValueMemberS{Value: "METADATA"},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		r.logger.Error("Failed to query playbook",
			zap.Error(err),
			zap.String("playbookID", id.String()),
		)
		return nil, fmt.Errorf("failed to query playbook: %w", err)
	}
	if len(out.Items) == 0 {
		return nil, errors.ErrPlaybookNotFound.WithDetail("playbookID", id.String())
	}

	var item playbookItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal playbook: %w", err)
	}

	return reconstructPlaybook(item)
}

// ListByUser returns all playbooks owned by a user, following
// pagination until the partition is exhausted.
func (r *PlaybookRepository) ListByUser(ctx context.Context, userID string) ([]*playbook.Playbook, error) {
	playbooks := make([]*playbook.Playbook, 0)

	var lastKey map[string]types.AttributeValue
	for {
		out, err := r.client.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			KeyConditionExpression: aws.String("PK = :pk AND begins_with(SK, :prefix)"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pk":     &types.AttributeValueMemberS{Value: userPK(userID)},
				":prefix": &types.AttributeValueMemberS{Value: "PLAYBOOK#"},
			},
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			r.logger.Error("Failed to list playbooks",
				zap.Error(err),
				zap.String("userID", userID),
			)
			return nil, fmt.Errorf("failed to list playbooks: %w", err)
		}

		for _, raw := range out.Items {
			var item playbookItem
			if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
				return nil, fmt.Errorf("failed to unmarshal playbook: %w", err)
			}
			p, err := reconstructPlaybook(item)
			if err != nil {
				return nil, err
			}
			playbooks = append(playbooks, p)
		}

		lastKey = out.LastEvaluatedKey
		if len(lastKey) == 0 {
			break
		}
	}

	return playbooks, nil
}

// Delete removes a playbook. The owner partition key is resolved via
// GetByID first, since the table is keyed by user.
func (r *PlaybookRepository) Delete(ctx context.Context, id playbook.ID) error {
	p, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	_, err = r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: userPK(p.UserID())},
			"SK": &types.AttributeValueMemberS{Value: playbookSK(id)},
		},
	})
	if err != nil {
		r.logger.Error("Failed to delete playbook",
			zap.Error(err),
			zap.String("playbookID", id.String()),
		)
		return fmt.Errorf("failed to delete playbook: %w", err)
	}

	return nil
}

func reconstructPlaybook(item playbookItem) (*playbook.Playbook, error) {
	var graph playbook.Graph
	if err := json.Unmarshal([]byte(item.Graph), &graph); err != nil {
		return nil, fmt.Errorf("failed to unmarshal graph: %w", err)
	}

	createdAt, err := time.Parse(time.RFC3339Nano, item.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid CreatedAt on playbook %s: %w", item.PlaybookID, err)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, item.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid UpdatedAt on playbook %s: %w", item.PlaybookID, err)
	}

	return playbook.Reconstruct(
		item.PlaybookID,
		item.UserID,
		item.Name,
		graph,
		createdAt,
		updatedAt,
		item.Version,
	)
}
