package repository

import (
	"context"
	"fmt"
	"slices"

	"repair_orders/internal/domain/entities"
	"repair_orders/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const paymentsInstructionIDIndex = "instruction_id-index"

type paymentItem struct {
	ID            string                 `dynamodbav:"id"`
	InstructionID string                 `dynamodbav:"instruction_id"`
	Amount        float64                `dynamodbav:"amount"`
	Date          string                 `dynamodbav:"date"`
	Status        string                 `dynamodbav:"status"`
	MPPayload     map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw  string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: instruction_id-index (PK: instruction_id)

type PaymentDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb dynamoAPI, tableName string) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
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
		if isConditionFailure(err) {
			return entities.Payment{}, fmt.Errorf("payment %s: %w", p.ID, ErrPaymentExists)
		}
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

// ListByInstructionID reads the GSI, which is eventually consistent: a payment
// created a moment ago may be missing.
func (r *PaymentDynamoRepository) ListByInstructionID(ctx context.Context, instructionID string) ([]entities.Payment, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsInstructionIDIndex),
		KeyConditionExpression: aws.String("instruction_id = :iid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":iid": &types.AttributeValueMemberS{Value: instructionID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Payment, 0, len(raw))
	for _, av := range raw {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentItem(it))
	}
	slices.SortStableFunc(items, func(a, b entities.Payment) int { return byCreation(a.Date, b.Date, a.ID, b.ID) })
	return items, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:            p.ID,
		InstructionID: p.InstructionID,
		Amount:        p.Amount,
		Date:          formatTime(p.Date),
		Status:        string(p.Status),
		MPPayload:     p.MPPayload,
		MPPayloadRaw:  string(p.MPPayloadRaw),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	return entities.Payment{
		ID:            it.ID,
		InstructionID: it.InstructionID,
		Amount:        it.Amount,
		Date:          parseTime(it.Date),
		Status:        entities.PaymentStatus(it.Status),
		MPPayload:     it.MPPayload,
		MPPayloadRaw:  []byte(it.MPPayloadRaw),
	}
}
