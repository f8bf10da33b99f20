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
	"github.com/shopspring/decimal"
)

const defaultForecastsTableName = "forecast_snapshots"

type forecastItem struct {
	// Composite key "<type>#<period>" so upserts replace in place.
	Key              string `dynamodbav:"key"`
	ID               string `dynamodbav:"id"`
	Period           string `dynamodbav:"period"`
	Type             string `dynamodbav:"type"`
	TotalPipeline    string `dynamodbav:"total_pipeline"`
	WeightedPipeline string `dynamodbav:"weighted_pipeline"`
	ExpectedRevenue  string `dynamodbav:"expected_revenue"`
	ActualRevenue    string `dynamodbav:"actual_revenue,omitempty"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

type ForecastDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IForecastRepository = (*ForecastDynamoRepository)(nil)

func NewForecastDynamoRepository(ddb *dynamodb.Client) *ForecastDynamoRepository {
	return &ForecastDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("FORECASTS_TABLE", defaultForecastsTableName),
	}
}

func (r *ForecastDynamoRepository) Upsert(ctx context.Context, fs entities.ForecastSnapshot) (entities.ForecastSnapshot, error) {
	av, err := attributevalue.MarshalMap(toForecastItem(fs))
	if err != nil {
		return entities.ForecastSnapshot{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.ForecastSnapshot{}, err
	}
	return fs, nil
}

func (r *ForecastDynamoRepository) ListByType(ctx context.Context, ft entities.ForecastType) ([]entities.ForecastSnapshot, error) {
	input := &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#type = :type"),
		ExpressionAttributeNames: map[string]string{
			"#type": "type",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":type": &types.AttributeValueMemberS{Value: string(ft)},
		},
	}

	items := []entities.ForecastSnapshot{}
	paginator := dynamodb.NewScanPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it forecastItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			fs, err := fromForecastItem(it)
			if err != nil {
				return nil, err
			}
			items = append(items, fs)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Period < items[j].Period })
	return items, nil
}

func toForecastItem(fs entities.ForecastSnapshot) forecastItem {
	it := forecastItem{
		Key:              string(fs.Type) + "#" + fs.Period,
		ID:               fs.ID,
		Period:           fs.Period,
		Type:             string(fs.Type),
		TotalPipeline:    fs.TotalPipeline.String(),
		WeightedPipeline: fs.WeightedPipeline.String(),
		ExpectedRevenue:  fs.ExpectedRevenue.String(),
		CreatedAt:        fs.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        fs.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if fs.ActualRevenue != nil {
		it.ActualRevenue = fs.ActualRevenue.String()
	}
	return it
}

func fromForecastItem(it forecastItem) (entities.ForecastSnapshot, error) {
	total, err := decimal.NewFromString(it.TotalPipeline)
	if err != nil {
		return entities.ForecastSnapshot{}, err
	}
	weighted, err := decimal.NewFromString(it.WeightedPipeline)
	if err != nil {
		return entities.ForecastSnapshot{}, err
	}
	expected, err := decimal.NewFromString(it.ExpectedRevenue)
	if err != nil {
		return entities.ForecastSnapshot{}, err
	}

	var actual *decimal.Decimal
	if it.ActualRevenue != "" {
		a, err := decimal.NewFromString(it.ActualRevenue)
		if err != nil {
			return entities.ForecastSnapshot{}, err
		}
		actual = &a
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	return entities.ForecastSnapshot{
		ID:               it.ID,
		Period:           it.Period,
		Type:             entities.ForecastType(it.Type),
		TotalPipeline:    total,
		WeightedPipeline: weighted,
		ExpectedRevenue:  expected,
		ActualRevenue:    actual,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}, nil
}
