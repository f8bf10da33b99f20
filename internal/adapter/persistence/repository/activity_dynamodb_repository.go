package repository

import (
	"context"
	"strings"
	"time"

	"pipecrm/internal/domain/entities"
	"pipecrm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultActivitiesTableName = "activities"

type activityItem struct {
	ID          string `dynamodbav:"id"`
	DealID      string `dynamodbav:"deal_id"`
	Type        string `dynamodbav:"type"`
	Subject     string `dynamodbav:"subject,omitempty"`
	DueDate     string `dynamodbav:"due_date"`
	Completed   bool   `dynamodbav:"completed"`
	CompletedAt string `dynamodbav:"completed_at,omitempty"`
	OwnerID     string `dynamodbav:"owner_id,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
}

type ActivityDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IActivityRepository = (*ActivityDynamoRepository)(nil)

func NewActivityDynamoRepository(ddb *dynamodb.Client) *ActivityDynamoRepository {
	return &ActivityDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ACTIVITIES_TABLE", defaultActivitiesTableName),
	}
}

func (r *ActivityDynamoRepository) List(ctx context.Context, filter interfaces.ActivityFilter) ([]entities.Activity, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}

	var (
		exprs  []string
		names  = map[string]string{}
		values = map[string]types.AttributeValue{}
	)
	if filter.DealID != "" {
		exprs = append(exprs, "#deal_id = :deal_id")
		names["#deal_id"] = "deal_id"
		values[":deal_id"] = &types.AttributeValueMemberS{Value: filter.DealID}
	}
	if filter.OwnerID != "" {
		exprs = append(exprs, "#owner_id = :owner_id")
		names["#owner_id"] = "owner_id"
		values[":owner_id"] = &types.AttributeValueMemberS{Value: filter.OwnerID}
	}
	if len(exprs) > 0 {
		input.FilterExpression = aws.String(strings.Join(exprs, " AND "))
		input.ExpressionAttributeNames = names
		input.ExpressionAttributeValues = values
	}

	items := []entities.Activity{}
	paginator := dynamodb.NewScanPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it activityItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromActivityItem(it))
		}
	}
	return items, nil
}

func fromActivityItem(it activityItem) entities.Activity {
	dueDate, _ := time.Parse(time.RFC3339Nano, it.DueDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)

	var completedAt *time.Time
	if it.CompletedAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.CompletedAt); err == nil {
			completedAt = &t
		}
	}
	return entities.Activity{
		ID:          it.ID,
		DealID:      it.DealID,
		Type:        entities.ActivityType(it.Type),
		Subject:     it.Subject,
		DueDate:     dueDate,
		Completed:   it.Completed,
		CompletedAt: completedAt,
		OwnerID:     it.OwnerID,
		CreatedAt:   createdAt,
	}
}
