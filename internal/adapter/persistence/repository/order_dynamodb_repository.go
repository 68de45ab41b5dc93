package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"repair_orders/internal/domain/entities"
	"repair_orders/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog/log"
)

const (
	skInstruction = "INSTRUCTION"
	skProcessPfx  = "PROCESS#"
	skTaskPfx     = "TASK#"
	pkRefPfx      = "REF#"
	skRef         = "REF"

	maxTransactItems = 100
	maxBatchWrite    = 25
)

// ErrChangeSetTooLarge is returned when a change set does not fit in one
// DynamoDB transaction.
var ErrChangeSetTooLarge = errors.New("change set exceeds the transaction item limit")

type instructionItem struct {
	PK            string `dynamodbav:"pk"`
	SK            string `dynamodbav:"sk"`
	ID            string `dynamodbav:"id"`
	OrderNumber   string `dynamodbav:"order_number"`
	OrderDate     string `dynamodbav:"order_date,omitempty"`
	Name          string `dynamodbav:"name"`
	Manager       string `dynamodbav:"manager"`
	Delegator     string `dynamodbav:"delegator"`
	District      string `dynamodbav:"district"`
	Dong          string `dynamodbav:"dong"`
	LotNumber     string `dynamodbav:"lot_number"`
	DetailAddress string `dynamodbav:"detail_address"`
	Structure     string `dynamodbav:"structure"`
	Memo          string `dynamodbav:"memo"`
	Status        string `dynamodbav:"status"`
	Confirmed     bool   `dynamodbav:"confirmed"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

type processItem struct {
	PK            string `dynamodbav:"pk"`
	SK            string `dynamodbav:"sk"`
	ID            string `dynamodbav:"id"`
	InstructionID string `dynamodbav:"instruction_id"`
	Name          string `dynamodbav:"name"`
	Worker        string `dynamodbav:"worker"`
	EndDate       string `dynamodbav:"end_date,omitempty"`
	Status        string `dynamodbav:"status"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

type taskItem struct {
	PK            string  `dynamodbav:"pk"`
	SK            string  `dynamodbav:"sk"`
	ID            string  `dynamodbav:"id"`
	ProcessID     string  `dynamodbav:"process_id"`
	CatalogItemID string  `dynamodbav:"catalog_item_id,omitempty"`
	Name          string  `dynamodbav:"name"`
	Spec          string  `dynamodbav:"spec"`
	Unit          string  `dynamodbav:"unit"`
	Count         float64 `dynamodbav:"count"`
	TotalCost     float64 `dynamodbav:"total_cost"`
	MaterialCost  float64 `dynamodbav:"material_cost"`
	LaborCost     float64 `dynamodbav:"labor_cost"`
	ExpenseCost   float64 `dynamodbav:"expense_cost"`
	Notes         string  `dynamodbav:"notes"`
	TotalPrice    float64 `dynamodbav:"total_price"`
	CreatedAt     string  `dynamodbav:"created_at"`
	UpdatedAt     string  `dynamodbav:"updated_at"`
}

// refItem points a bare process or task id at its row in the instruction
// partition. It is written and deleted in the same transaction as the row.
type refItem struct {
	PK            string `dynamodbav:"pk"`
	SK            string `dynamodbav:"sk"`
	InstructionID string `dynamodbav:"instruction_id"`
	EntitySK      string `dynamodbav:"entity_sk"`
}

// OrderDynamoRepository persists the order tree in a single DynamoDB table.
//
// Table requirements:
//   - PK: pk (string), SK: sk (string)
//
// Layout:
//   - pk=<instruction id>, sk=INSTRUCTION | PROCESS#<id> | TASK#<id>
//   - pk=REF#<process or task id>, sk=REF -> owning instruction and sort key
//
// A whole subtree is one strongly consistent Query, and every id lookup is a
// pair of consistent GetItems, so reads after a Commit see the commit.
type OrderDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb dynamoAPI, tableName string) *OrderDynamoRepository {
	return &OrderDynamoRepository{ddb: ddb, tableName: tableName}
}

func orderKey(pk, sk string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"pk": &types.AttributeValueMemberS{Value: pk},
		"sk": &types.AttributeValueMemberS{Value: sk},
	}
}

func refKey(id string) map[string]types.AttributeValue {
	return orderKey(pkRefPfx+id, skRef)
}

func (r *OrderDynamoRepository) getItem(ctx context.Context, key map[string]types.AttributeValue, out any) (bool, error) {
	res, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            key,
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	if len(res.Item) == 0 {
		return false, nil
	}
	if err := attributevalue.UnmarshalMap(res.Item, out); err != nil {
		return false, err
	}
	return true, nil
}

func (r *OrderDynamoRepository) GetInstruction(ctx context.Context, id string) (entities.Instruction, error) {
	var it instructionItem
	found, err := r.getItem(ctx, orderKey(id, skInstruction), &it)
	if err != nil || !found {
		return entities.Instruction{}, err
	}
	return fromInstructionItem(it), nil
}

// resolve follows the reference item of id. It reports a miss unless the
// referenced sort key carries the expected prefix.
func (r *OrderDynamoRepository) resolve(ctx context.Context, id, skPrefix string) (refItem, bool, error) {
	var ref refItem
	found, err := r.getItem(ctx, refKey(id), &ref)
	if err != nil || !found {
		return refItem{}, false, err
	}
	if !strings.HasPrefix(ref.EntitySK, skPrefix) {
		return refItem{}, false, nil
	}
	return ref, true, nil
}

func (r *OrderDynamoRepository) GetProcess(ctx context.Context, id string) (entities.Process, error) {
	ref, ok, err := r.resolve(ctx, id, skProcessPfx)
	if err != nil || !ok {
		return entities.Process{}, err
	}
	var it processItem
	found, err := r.getItem(ctx, orderKey(ref.InstructionID, ref.EntitySK), &it)
	if err != nil || !found {
		return entities.Process{}, err
	}
	return fromProcessItem(it), nil
}

// GetTask returns the task only while its process row exists. Tasks of a
// process deleted by deleteLargeProcesses read as missing until swept.
func (r *OrderDynamoRepository) GetTask(ctx context.Context, id string) (entities.Task, error) {
	ref, ok, err := r.resolve(ctx, id, skTaskPfx)
	if err != nil || !ok {
		return entities.Task{}, err
	}
	var it taskItem
	found, err := r.getItem(ctx, orderKey(ref.InstructionID, ref.EntitySK), &it)
	if err != nil || !found {
		return entities.Task{}, err
	}
	var parent processItem
	found, err = r.getItem(ctx, orderKey(ref.InstructionID, skProcessPfx+it.ProcessID), &parent)
	if err != nil || !found {
		return entities.Task{}, err
	}
	return fromTaskItem(it), nil
}

func (r *OrderDynamoRepository) ListInstructions(ctx context.Context) ([]entities.Instruction, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName:                 aws.String(r.tableName),
		FilterExpression:          aws.String("sk = :sk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{":sk": &types.AttributeValueMemberS{Value: skInstruction}},
		ConsistentRead:            aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	out := make([]entities.Instruction, 0, len(raw))
	for _, av := range raw {
		var it instructionItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		out = append(out, fromInstructionItem(it))
	}
	slices.SortStableFunc(out, func(a, b entities.Instruction) int { return byCreation(a.CreatedAt, b.CreatedAt, a.ID, b.ID) })
	return out, nil
}

func (r *OrderDynamoRepository) queryPartition(ctx context.Context, instructionID, skPrefix string) ([]map[string]types.AttributeValue, error) {
	return queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("pk = :pk AND begins_with(sk, :prefix)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk":     &types.AttributeValueMemberS{Value: instructionID},
			":prefix": &types.AttributeValueMemberS{Value: skPrefix},
		},
		ConsistentRead: aws.Bool(true),
	})
}

func (r *OrderDynamoRepository) ListProcesses(ctx context.Context, instructionID string) ([]entities.Process, error) {
	raw, err := r.queryPartition(ctx, instructionID, skProcessPfx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Process, 0, len(raw))
	for _, av := range raw {
		var it processItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		out = append(out, fromProcessItem(it))
	}
	slices.SortStableFunc(out, func(a, b entities.Process) int { return byCreation(a.CreatedAt, b.CreatedAt, a.ID, b.ID) })
	return out, nil
}

// ListTasks skips tasks whose process row is gone.
func (r *OrderDynamoRepository) ListTasks(ctx context.Context, instructionID string) ([]entities.Task, error) {
	processes, err := r.ListProcesses(ctx, instructionID)
	if err != nil {
		return nil, err
	}
	live := make(map[string]bool, len(processes))
	for _, p := range processes {
		live[p.ID] = true
	}
	raw, err := r.queryPartition(ctx, instructionID, skTaskPfx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Task, 0, len(raw))
	for _, av := range raw {
		var it taskItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		if live[it.ProcessID] {
			out = append(out, fromTaskItem(it))
		}
	}
	slices.SortStableFunc(out, func(a, b entities.Task) int { return byCreation(a.CreatedAt, b.CreatedAt, a.ID, b.ID) })
	return out, nil
}

// Commit writes cs in one TransactWriteItems call.
//
// Two kinds of delete may not fit in one transaction. An instruction delete
// first removes the instruction row alone, and a process delete first removes
// the process rows and their references. Either way the rest of the subtree is
// unreachable through the engine before it is swept in batches.
func (r *OrderDynamoRepository) Commit(ctx context.Context, cs entities.ChangeSet) error {
	if cs.IsEmpty() {
		return nil
	}
	items, err := r.transactItems(cs)
	if err != nil {
		return err
	}
	if len(items) > maxTransactItems {
		switch {
		case cs.DeleteInstruction:
			return r.deleteLargeInstruction(ctx, cs)
		case onlyDeletesProcesses(cs):
			return r.deleteLargeProcesses(ctx, cs)
		}
		return fmt.Errorf("%w: %d items", ErrChangeSetTooLarge, len(items))
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		if isConditionFailure(err) {
			return fmt.Errorf("%w: %v", ErrDanglingReference, err)
		}
		return err
	}
	return nil
}

func (r *OrderDynamoRepository) put(item any) (types.TransactWriteItem, error) {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return types.TransactWriteItem{}, err
	}
	return types.TransactWriteItem{Put: &types.Put{TableName: aws.String(r.tableName), Item: av}}, nil
}

func (r *OrderDynamoRepository) del(key map[string]types.AttributeValue) types.TransactWriteItem {
	return types.TransactWriteItem{Delete: &types.Delete{TableName: aws.String(r.tableName), Key: key}}
}

func (r *OrderDynamoRepository) delExisting(key map[string]types.AttributeValue) types.TransactWriteItem {
	return types.TransactWriteItem{Delete: &types.Delete{
		TableName:           aws.String(r.tableName),
		Key:                 key,
		ConditionExpression: aws.String("attribute_exists(pk)"),
	}}
}

func (r *OrderDynamoRepository) mustExist(key map[string]types.AttributeValue) types.TransactWriteItem {
	return types.TransactWriteItem{ConditionCheck: &types.ConditionCheck{
		TableName:           aws.String(r.tableName),
		Key:                 key,
		ConditionExpression: aws.String("attribute_exists(pk)"),
	}}
}

// transactItems translates cs into transaction items. DynamoDB rejects two
// operations on one item, so parent existence is only checked for parents the
// change set does not itself write.
func (r *OrderDynamoRepository) transactItems(cs entities.ChangeSet) ([]types.TransactWriteItem, error) {
	pk := cs.InstructionID
	var items []types.TransactWriteItem

	deletedProcesses := make(map[string]bool, len(cs.DeletedProcessIDs))
	for _, id := range cs.DeletedProcessIDs {
		deletedProcesses[id] = true
		items = append(items, r.del(orderKey(pk, skProcessPfx+id)), r.del(refKey(id)))
	}
	for _, id := range cs.DeletedTaskIDs {
		items = append(items, r.del(orderKey(pk, skTaskPfx+id)), r.del(refKey(id)))
	}
	if cs.DeleteInstruction {
		if len(cs.Processes) > 0 || len(cs.Tasks) > 0 || cs.Instruction != nil {
			return nil, fmt.Errorf("%w: instruction %s is deleted and written in one change set", ErrDanglingReference, pk)
		}
		items = append(items, r.del(orderKey(pk, skInstruction)))
		return items, nil
	}

	if cs.Instruction != nil {
		it, err := r.put(toInstructionItem(*cs.Instruction))
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	} else if len(cs.Processes) > 0 || len(cs.Tasks) > 0 {
		items = append(items, r.mustExist(orderKey(pk, skInstruction)))
	}

	written := make(map[string]bool, len(cs.Processes))
	for _, p := range cs.Processes {
		if p.InstructionID != pk {
			return nil, fmt.Errorf("%w: process %s belongs to %s, not %s", ErrDanglingReference, p.ID, p.InstructionID, pk)
		}
		written[p.ID] = true
		row, err := r.put(toProcessItem(p))
		if err != nil {
			return nil, err
		}
		ref, err := r.put(refItem{PK: pkRefPfx + p.ID, SK: skRef, InstructionID: pk, EntitySK: skProcessPfx + p.ID})
		if err != nil {
			return nil, err
		}
		items = append(items, row, ref)
	}

	checked := make(map[string]bool)
	for _, t := range cs.Tasks {
		if deletedProcesses[t.ProcessID] {
			return nil, fmt.Errorf("%w: task %s under deleted process %s", ErrDanglingReference, t.ID, t.ProcessID)
		}
		row, err := r.put(toTaskItem(pk, t))
		if err != nil {
			return nil, err
		}
		ref, err := r.put(refItem{PK: pkRefPfx + t.ID, SK: skRef, InstructionID: pk, EntitySK: skTaskPfx + t.ID})
		if err != nil {
			return nil, err
		}
		items = append(items, row, ref)
		if !written[t.ProcessID] && !checked[t.ProcessID] {
			checked[t.ProcessID] = true
			items = append(items, r.mustExist(orderKey(pk, skProcessPfx+t.ProcessID)))
		}
	}
	return items, nil
}

func (r *OrderDynamoRepository) deleteLargeInstruction(ctx context.Context, cs entities.ChangeSet) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 orderKey(cs.InstructionID, skInstruction),
		ConditionExpression: aws.String("attribute_exists(pk)"),
	})
	if err != nil {
		if isConditionFailure(err) {
			return fmt.Errorf("%w: instruction %s", ErrDanglingReference, cs.InstructionID)
		}
		return err
	}

	var keys []map[string]types.AttributeValue
	for _, id := range cs.DeletedProcessIDs {
		keys = append(keys, orderKey(cs.InstructionID, skProcessPfx+id), refKey(id))
	}
	for _, id := range cs.DeletedTaskIDs {
		keys = append(keys, orderKey(cs.InstructionID, skTaskPfx+id), refKey(id))
	}
	if err := r.batchDelete(ctx, keys); err != nil {
		// The engine treats rows under a missing instruction as not found.
		log.Warn().Err(err).Str("instruction_id", cs.InstructionID).Int("rows", len(keys)).Msg("[order][dynamodb] subtree sweep incomplete")
	}
	return nil
}

// onlyDeletesProcesses reports whether cs removes processes and writes
// nothing. Its task ids are taken to be the children of those processes.
func onlyDeletesProcesses(cs entities.ChangeSet) bool {
	return len(cs.DeletedProcessIDs) > 0 && cs.Instruction == nil && len(cs.Processes) == 0 && len(cs.Tasks) == 0
}

func (r *OrderDynamoRepository) deleteLargeProcesses(ctx context.Context, cs entities.ChangeSet) error {
	pk := cs.InstructionID
	items := []types.TransactWriteItem{r.mustExist(orderKey(pk, skInstruction))}
	for _, id := range cs.DeletedProcessIDs {
		items = append(items, r.delExisting(orderKey(pk, skProcessPfx+id)), r.del(refKey(id)))
	}
	if len(items) > maxTransactItems {
		return fmt.Errorf("%w: %d process items", ErrChangeSetTooLarge, len(items))
	}
	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items}); err != nil {
		if isConditionFailure(err) {
			return fmt.Errorf("%w: %v", ErrDanglingReference, err)
		}
		return err
	}

	keys := make([]map[string]types.AttributeValue, 0, 2*len(cs.DeletedTaskIDs))
	for _, id := range cs.DeletedTaskIDs {
		keys = append(keys, orderKey(pk, skTaskPfx+id), refKey(id))
	}
	if err := r.batchDelete(ctx, keys); err != nil {
		log.Warn().Err(err).Str("instruction_id", pk).Int("rows", len(keys)).Msg("[order][dynamodb] task sweep incomplete")
	}
	return nil
}

func (r *OrderDynamoRepository) batchDelete(ctx context.Context, keys []map[string]types.AttributeValue) error {
	for start := 0; start < len(keys); start += maxBatchWrite {
		end := min(start+maxBatchWrite, len(keys))
		reqs := make([]types.WriteRequest, 0, end-start)
		for _, k := range keys[start:end] {
			reqs = append(reqs, types.WriteRequest{DeleteRequest: &types.DeleteRequest{Key: k}})
		}
		pending := map[string][]types.WriteRequest{r.tableName: reqs}
		for attempt := 0; len(pending) > 0; attempt++ {
			if attempt == 5 {
				return fmt.Errorf("batch delete: %d requests left unprocessed", len(pending[r.tableName]))
			}
			out, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{RequestItems: pending})
			if err != nil {
				return err
			}
			pending = out.UnprocessedItems
			if len(pending) > 0 {
				time.Sleep(time.Duration(attempt+1) * 50 * time.Millisecond)
			}
		}
	}
	return nil
}

func byCreation(ta, tb time.Time, ida, idb string) int {
	if c := ta.Compare(tb); c != 0 {
		return c
	}
	return strings.Compare(ida, idb)
}

func toInstructionItem(i entities.Instruction) instructionItem {
	return instructionItem{
		PK:            i.ID,
		SK:            skInstruction,
		ID:            i.ID,
		OrderNumber:   i.OrderNumber,
		OrderDate:     formatTime(i.OrderDate),
		Name:          i.Name,
		Manager:       i.Manager,
		Delegator:     i.Delegator,
		District:      i.District,
		Dong:          i.Dong,
		LotNumber:     i.LotNumber,
		DetailAddress: i.DetailAddress,
		Structure:     i.Structure,
		Memo:          i.Memo,
		Status:        string(i.Status),
		Confirmed:     i.Confirmed,
		CreatedAt:     formatTime(i.CreatedAt),
		UpdatedAt:     formatTime(i.UpdatedAt),
	}
}

func fromInstructionItem(it instructionItem) entities.Instruction {
	return entities.Instruction{
		ID:            it.ID,
		OrderNumber:   it.OrderNumber,
		OrderDate:     parseTime(it.OrderDate),
		Name:          it.Name,
		Manager:       it.Manager,
		Delegator:     it.Delegator,
		District:      it.District,
		Dong:          it.Dong,
		LotNumber:     it.LotNumber,
		DetailAddress: it.DetailAddress,
		Structure:     it.Structure,
		Memo:          it.Memo,
		Status:        entities.InstructionStatus(it.Status),
		Confirmed:     it.Confirmed,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}

func toProcessItem(p entities.Process) processItem {
	return processItem{
		PK:            p.InstructionID,
		SK:            skProcessPfx + p.ID,
		ID:            p.ID,
		InstructionID: p.InstructionID,
		Name:          p.Name,
		Worker:        p.Worker,
		EndDate:       formatTimePtr(p.EndDate),
		Status:        string(p.Status),
		CreatedAt:     formatTime(p.CreatedAt),
		UpdatedAt:     formatTime(p.UpdatedAt),
	}
}

func fromProcessItem(it processItem) entities.Process {
	return entities.Process{
		ID:            it.ID,
		InstructionID: it.InstructionID,
		Name:          it.Name,
		Worker:        it.Worker,
		EndDate:       parseTimePtr(it.EndDate),
		Status:        entities.ProcessStatus(it.Status),
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}

func toTaskItem(instructionID string, t entities.Task) taskItem {
	return taskItem{
		PK:            instructionID,
		SK:            skTaskPfx + t.ID,
		ID:            t.ID,
		ProcessID:     t.ProcessID,
		CatalogItemID: t.CatalogItemID,
		Name:          t.Name,
		Spec:          t.Spec,
		Unit:          t.Unit,
		Count:         t.Count,
		TotalCost:     t.TotalCost,
		MaterialCost:  t.MaterialCost,
		LaborCost:     t.LaborCost,
		ExpenseCost:   t.ExpenseCost,
		Notes:         t.Notes,
		TotalPrice:    t.TotalPrice,
		CreatedAt:     formatTime(t.CreatedAt),
		UpdatedAt:     formatTime(t.UpdatedAt),
	}
}

func fromTaskItem(it taskItem) entities.Task {
	return entities.Task{
		ID:            it.ID,
		ProcessID:     it.ProcessID,
		CatalogItemID: it.CatalogItemID,
		Name:          it.Name,
		Spec:          it.Spec,
		Unit:          it.Unit,
		Count:         it.Count,
		TotalCost:     it.TotalCost,
		MaterialCost:  it.MaterialCost,
		LaborCost:     it.LaborCost,
		ExpenseCost:   it.ExpenseCost,
		Notes:         it.Notes,
		TotalPrice:    it.TotalPrice,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
