package repository

import (
	"context"
	"sort"
	"time"

	"pipecrm/internal/domain/entities"
	"pipecrm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultTransitionsTableName = "stage_transitions"
	transitionsDealIDIndex      = "deal_id-index"
)

type stageTransitionItem struct {
	ID        string `dynamodbav:"id"`
	DealID    string `dynamodbav:"deal_id"`
	FromStage string `dynamodbav:"from_stage"`
	ToStage   string `dynamodbav:"to_stage"`
	ChangedBy string `dynamodbav:"changed_by,omitempty"`
	ChangedAt string `dynamodbav:"changed_at"`
	Notes     string `dynamodbav:"notes,omitempty"`
}

// StageTransitionDynamoRepository persists the pipeline history log in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: deal_id-index (PK: deal_id, SK: changed_at)

type StageTransitionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IStageTransitionRepository = (*StageTransitionDynamoRepository)(nil)

func NewStageTransitionDynamoRepository(ddb *dynamodb.Client) *StageTransitionDynamoRepository {
	return &StageTransitionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TRANSITIONS_TABLE", defaultTransitionsTableName),
	}
}

func (r *StageTransitionDynamoRepository) Create(ctx context.Context, tr entities.StageTransition) (entities.StageTransition, error) {
	av, err := attributevalue.MarshalMap(toStageTransitionItem(tr))
	if err != nil {
		return entities.StageTransition{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.StageTransition{}, err
	}
	return tr, nil
}

func (r *StageTransitionDynamoRepository) ListByDealID(ctx context.Context, dealID string) ([]entities.StageTransition, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(transitionsDealIDIndex),
		KeyConditionExpression: aws.String("deal_id = :deal_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":deal_id": &types.AttributeValueMemberS{Value: dealID},
		},
		ScanIndexForward: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.StageTransition, 0, len(out.Items))
	for _, raw := range out.Items {
		var it stageTransitionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromStageTransitionItem(it))
	}
	return items, nil
}

func (r *StageTransitionDynamoRepository) List(ctx context.Context, since *time.Time) ([]entities.StageTransition, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if since != nil {
		input.FilterExpression = aws.String("#changed_at >= :changed_at")
		input.ExpressionAttributeNames = map[string]string{"#changed_at": "changed_at"}
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":changed_at": &types.AttributeValueMemberS{Value: since.UTC().Format(time.RFC3339Nano)},
		}
	}

	items := []entities.StageTransition{}
	paginator := dynamodb.NewScanPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it stageTransitionItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromStageTransitionItem(it))
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].ChangedAt.Before(items[j].ChangedAt)
	})
	return items, nil
}

func toStageTransitionItem(tr entities.StageTransition) stageTransitionItem {
	return stageTransitionItem{
		ID:        tr.ID,
		DealID:    tr.DealID,
		FromStage: string(tr.FromStage),
		ToStage:   string(tr.ToStage),
		ChangedBy: tr.ChangedBy,
		ChangedAt: tr.ChangedAt.UTC().Format(time.RFC3339Nano),
		Notes:     tr.Notes,
	}
}

func fromStageTransitionItem(it stageTransitionItem) entities.StageTransition {
	changedAt, _ := time.Parse(time.RFC3339Nano, it.ChangedAt)
	return entities.StageTransition{
		ID:        it.ID,
		DealID:    it.DealID,
		FromStage: entities.Stage(it.FromStage),
		ToStage:   entities.Stage(it.ToStage),
		ChangedBy: it.ChangedBy,
		ChangedAt: changedAt,
		Notes:     it.Notes,
	}
}
