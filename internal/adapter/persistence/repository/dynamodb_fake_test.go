package repository

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is a single-table stand-in for the handful of DynamoDB calls the
// repositories make. Key expressions are matched by placeholder name, not parsed.
type fakeDynamo struct {
	mu    sync.Mutex
	items map[string]map[string]types.AttributeValue

	transactCalls int
	batchCalls    int
	// batchErr, when set, fails every BatchWriteItem call.
	batchErr error
}

var _ dynamoAPI = (*fakeDynamo)(nil)

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: make(map[string]map[string]types.AttributeValue)}
}

func sval(av types.AttributeValue) string {
	if s, ok := av.(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func keyOf(m map[string]types.AttributeValue) string {
	if pk, ok := m["pk"]; ok {
		return sval(pk) + "|" + sval(m["sk"])
	}
	return sval(m["id"])
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &dynamodb.GetItemOutput{Item: f.items[keyOf(in.Key)]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	k := keyOf(in.Item)
	if in.ConditionExpression != nil && f.items[k] != nil {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("exists")}
	}
	f.items[k] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	k := keyOf(in.Key)
	if in.ConditionExpression != nil && f.items[k] == nil {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("missing")}
	}
	delete(f.items, k)
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []map[string]types.AttributeValue
	if in.IndexName != nil {
		iid := sval(in.ExpressionAttributeValues[":iid"])
		for _, it := range f.items {
			if sval(it["instruction_id"]) == iid {
				out = append(out, it)
			}
		}
		return &dynamodb.QueryOutput{Items: out}, nil
	}
	pk := sval(in.ExpressionAttributeValues[":pk"])
	prefix := sval(in.ExpressionAttributeValues[":prefix"])
	for _, it := range f.items {
		if sval(it["pk"]) == pk && strings.HasPrefix(sval(it["sk"]), prefix) {
			out = append(out, it)
		}
	}
	return &dynamodb.QueryOutput{Items: out}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	sk := sval(in.ExpressionAttributeValues[":sk"])
	var out []map[string]types.AttributeValue
	for _, it := range f.items {
		if sval(it["sk"]) == sk {
			out = append(out, it)
		}
	}
	return &dynamodb.ScanOutput{Items: out}, nil
}

func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.transactCalls++
	if len(in.TransactItems) > maxTransactItems {
		return nil, errors.New("ValidationException: too many items")
	}
	for _, ti := range in.TransactItems {
		missingCheck := ti.ConditionCheck != nil && f.items[keyOf(ti.ConditionCheck.Key)] == nil
		missingDelete := ti.Delete != nil && ti.Delete.ConditionExpression != nil && f.items[keyOf(ti.Delete.Key)] == nil
		if missingCheck || missingDelete {
			return nil, &types.TransactionCanceledException{
				Message:             aws.String("Transaction cancelled"),
				CancellationReasons: []types.CancellationReason{{Code: aws.String("ConditionalCheckFailed")}},
			}
		}
	}
	for _, ti := range in.TransactItems {
		switch {
		case ti.Delete != nil:
			delete(f.items, keyOf(ti.Delete.Key))
		case ti.Put != nil:
			f.items[keyOf(ti.Put.Item)] = ti.Put.Item
		}
	}
	return &dynamodb.TransactWriteItemsOutput{}, nil
}

func (f *fakeDynamo) BatchWriteItem(_ context.Context, in *dynamodb.BatchWriteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.batchCalls++
	if f.batchErr != nil {
		return nil, f.batchErr
	}
	for _, reqs := range in.RequestItems {
		for _, r := range reqs {
			if r.DeleteRequest != nil {
				delete(f.items, keyOf(r.DeleteRequest.Key))
			}
		}
	}
	return &dynamodb.BatchWriteItemOutput{}, nil
}

func (f *fakeDynamo) len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.items)
}
