package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"pipecrm/internal/domain/entities"
	"pipecrm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const defaultDealsTableName = "deals"

type dealItem struct {
	ID            string `dynamodbav:"id"`
	CustomerID    string `dynamodbav:"customer_id"`
	OwnerID       string `dynamodbav:"owner_id,omitempty"`
	Title         string `dynamodbav:"title"`
	Value         string `dynamodbav:"value"`
	Stage         string `dynamodbav:"stage"`
	Probability   int    `dynamodbav:"probability"`
	Status        string `dynamodbav:"status"`
	ExpectedClose string `dynamodbav:"expected_close,omitempty"`
	ClosedAt      string `dynamodbav:"closed_at,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
	Version       int64  `dynamodbav:"version"`
	Notes         string `dynamodbav:"notes,omitempty"`
}

// DealDynamoRepository persists Deal entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Monetary values are stored as decimal strings, never as floats.
// Stage updates are conditional on the stored version, which is how the
// single-writer-per-deal guarantee is enforced on this backend.

type DealDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDealRepository = (*DealDynamoRepository)(nil)

func NewDealDynamoRepository(ddb *dynamodb.Client) *DealDynamoRepository {
	return &DealDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DEALS_TABLE", defaultDealsTableName),
	}
}

func (r *DealDynamoRepository) Create(ctx context.Context, d entities.Deal) (entities.Deal, error) {
	av, err := attributevalue.MarshalMap(toDealItem(d))
	if err != nil {
		return entities.Deal{}, err
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
		return entities.Deal{}, err
	}
	return d, nil
}

func (r *DealDynamoRepository) GetByID(ctx context.Context, id string) (entities.Deal, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Deal{}, err
	}
	if len(out.Item) == 0 {
		return entities.Deal{}, nil
	}

	var it dealItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Deal{}, err
	}
	return fromDealItem(it), nil
}

func (r *DealDynamoRepository) List(ctx context.Context, filter interfaces.DealFilter) ([]entities.Deal, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}

	expr := ""
	names := map[string]string{}
	values := map[string]types.AttributeValue{}
	and := func(clause string) {
		if expr != "" {
			expr += " AND "
		}
		expr += clause
	}

	if filter.Status != nil {
		and("#status = :status")
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: string(*filter.Status)}
	}
	if filter.Stage != nil {
		and("#stage = :stage")
		names["#stage"] = "stage"
		values[":stage"] = &types.AttributeValueMemberS{Value: string(*filter.Stage)}
	}
	if filter.OwnerID != "" {
		and("#owner_id = :owner_id")
		names["#owner_id"] = "owner_id"
		values[":owner_id"] = &types.AttributeValueMemberS{Value: filter.OwnerID}
	}
	if filter.CreatedAfter != nil {
		and("#created_at >= :created_at")
		names["#created_at"] = "created_at"
		values[":created_at"] = &types.AttributeValueMemberS{Value: filter.CreatedAfter.UTC().Format(time.RFC3339Nano)}
	}
	if expr != "" {
		input.FilterExpression = aws.String(expr)
		input.ExpressionAttributeNames = names
		input.ExpressionAttributeValues = values
	}

	deals := []entities.Deal{}
	paginator := dynamodb.NewScanPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it dealItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			deals = append(deals, fromDealItem(it))
		}
	}
	return deals, nil
}

// UpdateStage writes the already-mutated deal, conditional on the stored
// version still matching expectedVersion. A failed condition returns a zero
// Deal with a nil error so the usecase can surface the conflict.
func (r *DealDynamoRepository) UpdateStage(ctx context.Context, d entities.Deal, expectedVersion int64) (entities.Deal, error) {
	expr := "SET #stage = :stage, #status = :status, #probability = :probability, #version = :version, #updated_at = :updated_at"
	names := map[string]string{
		"#stage":       "stage",
		"#status":      "status",
		"#probability": "probability",
		"#version":     "version",
		"#updated_at":  "updated_at",
		"#closed_at":   "closed_at",
	}
	values := map[string]types.AttributeValue{
		":stage":            &types.AttributeValueMemberS{Value: string(d.Stage)},
		":status":           &types.AttributeValueMemberS{Value: string(d.Status)},
		":probability":      &types.AttributeValueMemberN{Value: strconv.Itoa(d.Probability)},
		":version":          &types.AttributeValueMemberN{Value: strconv.FormatInt(d.Version, 10)},
		":updated_at":       &types.AttributeValueMemberS{Value: d.UpdatedAt.UTC().Format(time.RFC3339Nano)},
		":expected_version": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
	}
	if d.ClosedAt != nil {
		expr += ", #closed_at = :closed_at"
		values[":closed_at"] = &types.AttributeValueMemberS{Value: d.ClosedAt.UTC().Format(time.RFC3339Nano)}
	} else {
		expr += " REMOVE #closed_at"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: d.ID},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #version = :expected_version"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Deal{}, nil
		}
		return entities.Deal{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Deal{}, nil
	}

	var it dealItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Deal{}, err
	}
	return fromDealItem(it), nil
}

func toDealItem(d entities.Deal) dealItem {
	it := dealItem{
		ID:          d.ID,
		CustomerID:  d.CustomerID,
		OwnerID:     d.OwnerID,
		Title:       d.Title,
		Value:       d.Value.String(),
		Stage:       string(d.Stage),
		Probability: d.Probability,
		Status:      string(d.Status),
		CreatedAt:   d.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   d.UpdatedAt.UTC().Format(time.RFC3339Nano),
		Version:     d.Version,
		Notes:       d.Notes,
	}
	if d.ExpectedClose != nil {
		it.ExpectedClose = d.ExpectedClose.UTC().Format(time.RFC3339Nano)
	}
	if d.ClosedAt != nil {
		it.ClosedAt = d.ClosedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromDealItem(it dealItem) entities.Deal {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	value, err := decimal.NewFromString(it.Value)
	if err != nil {
		value = decimal.Zero
	}

	d := entities.Deal{
		ID:          it.ID,
		CustomerID:  it.CustomerID,
		OwnerID:     it.OwnerID,
		Title:       it.Title,
		Value:       value,
		Stage:       entities.Stage(it.Stage),
		Probability: it.Probability,
		Status:      entities.DealStatus(it.Status),
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
		Version:     it.Version,
		Notes:       it.Notes,
	}
	if it.ExpectedClose != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.ExpectedClose); err == nil {
			d.ExpectedClose = &t
		}
	}
	if it.ClosedAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.ClosedAt); err == nil {
			d.ClosedAt = &t
		}
	}
	return d
}
