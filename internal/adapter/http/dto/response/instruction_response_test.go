package response

import (
	"encoding/json"
	"testing"
	"time"

	"repair_orders/internal/domain/entities"
	"repair_orders/internal/usecase"
)

func TestFromInstructionWithAggregate(t *testing.T) {
	v := entities.InstructionWithAggregate{
		Instruction: entities.Instruction{
			ID:        "ins-1",
			Name:      "Roof",
			OrderDate: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
			Status:    entities.InstructionStatusCompleted,
			Confirmed: true,
		},
		Aggregate: entities.Aggregate{TotalAmount: 150, TaskCount: 2},
	}

	res := FromInstructionWithAggregate(v)
	if res.OrderDate != "2024-05-02" {
		t.Fatalf("unexpected order date: %q", res.OrderDate)
	}
	if res.Editable {
		t.Fatalf("confirmed instruction must not be reported editable")
	}
	if res.Aggregate == nil || res.Aggregate.TotalAmount != 150 {
		t.Fatalf("unexpected aggregate: %+v", res.Aggregate)
	}

	b, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var body map[string]any
	_ = json.Unmarshal(b, &body)
	agg := body["aggregate"].(map[string]any)
	if ids, ok := agg["inconsistentTaskIds"].([]any); !ok || len(ids) != 0 {
		t.Fatalf("expected empty inconsistentTaskIds array, got %v", agg["inconsistentTaskIds"])
	}
}

func TestFromInstruction_NoAggregate(t *testing.T) {
	res := FromInstruction(entities.Instruction{ID: "ins-1", Status: entities.InstructionStatusReceived})
	if res.Aggregate != nil || res.OrderDate != "" || !res.Editable {
		t.Fatalf("unexpected response: %+v", res)
	}
}

func TestFromIngestResult(t *testing.T) {
	res := FromIngestResult(usecase.IngestResult{
		Succeeded: 2,
		Errors:    []usecase.RowError{{RowIndex: 1, Message: "name: required"}},
	})
	if res.Succeeded != 2 || res.Failed != 1 || res.Errors[0].RowIndex != 1 {
		t.Fatalf("unexpected ingest response: %+v", res)
	}

	empty := FromIngestResult(usecase.IngestResult{})
	if empty.Errors == nil {
		t.Fatalf("expected non-nil errors slice")
	}
}

func TestFromProcess_EndDate(t *testing.T) {
	end := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	if got := FromProcess(entities.Process{ID: "p1", EndDate: &end}).EndDate; got != "2024-06-01" {
		t.Fatalf("unexpected end date: %q", got)
	}
	if got := FromProcess(entities.Process{ID: "p1"}).EndDate; got != "" {
		t.Fatalf("expected empty end date, got %q", got)
	}
}
