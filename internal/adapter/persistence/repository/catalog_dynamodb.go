package repository

import (
	"context"

	"repair_orders/internal/domain/entities"
	"repair_orders/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type catalogItem struct {
	ID           string  `dynamodbav:"id"`
	Name         string  `dynamodbav:"name"`
	Spec         string  `dynamodbav:"spec"`
	Unit         string  `dynamodbav:"unit"`
	MaterialCost float64 `dynamodbav:"material_cost"`
	LaborCost    float64 `dynamodbav:"labor_cost"`
	ExpenseCost  float64 `dynamodbav:"expense_cost"`
	TotalCost    float64 `dynamodbav:"total_cost"`
}

// CatalogDynamo reads catalog items maintained by another service.
//
// Table requirements:
//   - PK: id (string)
type CatalogDynamo struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.ICatalog = (*CatalogDynamo)(nil)

func NewCatalogDynamo(ddb dynamoAPI, tableName string) *CatalogDynamo {
	return &CatalogDynamo{ddb: ddb, tableName: tableName}
}

func (c *CatalogDynamo) GetItem(ctx context.Context, id string) (entities.CatalogItem, error) {
	out, err := c.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(c.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.CatalogItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.CatalogItem{}, nil
	}
	var it catalogItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CatalogItem{}, err
	}
	return entities.CatalogItem(it), nil
}
