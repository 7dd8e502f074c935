package domain

import (
	"testing"
	"time"
)

func TestTaskValidate(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)

	valid := Task{
		Name:     "Fix bug",
		Priority: PriorityHigh,
		Status:   StatusTodo,
	}

	tests := []struct {
		name    string
		mutate  func(*Task)
		wantErr bool
		field   string
	}{
		{name: "valid", mutate: func(*Task) {}},
		{name: "name too short", mutate: func(task *Task) { task.Name = "ab" }, wantErr: true, field: "name"},
		{name: "name too long", mutate: func(task *Task) { task.Name = string(make([]rune, 101)) }, wantErr: true, field: "name"},
		{name: "description too long", mutate: func(task *Task) {
			long := make([]rune, 501)
			for i := range long {
				long[i] = 'x'
			}
			task.Description = string(long)
		}, wantErr: true, field: "description"},
		{name: "unknown priority", mutate: func(task *Task) { task.Priority = "URGENT" }, wantErr: true, field: "priority"},
		{name: "unknown status", mutate: func(task *Task) { task.Status = "OPEN" }, wantErr: true, field: "status"},
		{name: "due date in the past", mutate: func(task *Task) { task.DueDate = &yesterday }, wantErr: true, field: "dueDate"},
		{name: "due date today", mutate: func(task *Task) {
			today := now
			task.DueDate = &today
		}},
		{name: "due date tomorrow", mutate: func(task *Task) { task.DueDate = &tomorrow }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := valid
			tt.mutate(&task)
			err := task.Validate(now)

			if !tt.wantErr {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}

			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !IsDomainError(err, ErrCodeValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			dErr := err.(*Error)
			found := false
			for _, f := range dErr.Fields {
				if f.Field == tt.field {
					found = true
				}
			}
			if !found {
				t.Errorf("expected field %q in %v", tt.field, dErr.Fields)
			}
		})
	}
}

func TestTaskValidate_CollectsAllFields(t *testing.T) {
	past := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	task := Task{Name: "ab", Priority: "NOPE", Status: "NOPE", DueDate: &past}

	err := task.Validate(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))
	if err == nil {
		t.Fatal("expected error")
	}
	dErr := err.(*Error)
	if len(dErr.Fields) != 4 {
		t.Fatalf("expected 4 field errors, got %d: %v", len(dErr.Fields), dErr.Fields)
	}
}

func TestTaskAssignedTo(t *testing.T) {
	projectID := "p1"
	task := &Task{ID: "t1", ProjectID: &projectID}

	if !task.AssignedTo("p1") {
		t.Error("expected task assigned to p1")
	}
	if task.AssignedTo("p2") {
		t.Error("did not expect task assigned to p2")
	}
	task.ProjectID = nil
	if task.AssignedTo("p1") {
		t.Error("did not expect unassigned task to match")
	}
}

func TestProjectValidate(t *testing.T) {
	project := Project{Name: "Alpha"}
	if err := project.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}

	project.Name = "ab"
	if err := project.Validate(); !IsDomainError(err, ErrCodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestParseEnums(t *testing.T) {
	if _, ok := ParsePriority("CRITICAL"); !ok {
		t.Error("CRITICAL should parse")
	}
	if _, ok := ParsePriority("critical"); ok {
		t.Error("lowercase should not parse")
	}
	if _, ok := ParseStatus("IN_PROGRESS"); !ok {
		t.Error("IN_PROGRESS should parse")
	}
	if _, ok := ParseStatus(""); ok {
		t.Error("empty should not parse")
	}
}
