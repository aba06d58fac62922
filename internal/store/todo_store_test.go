package store_test

import (
	"context"
	"database/sql"
	"errors"
	"reflect"
	"testing"

	"github.com/example/todowbs/internal/model"
	"github.com/example/todowbs/internal/store"
	"github.com/example/todowbs/tests/testutil"
)

func TestCreateDailyTodo_StartsIncomplete(t *testing.T) {
	ctx := context.Background()
	s, _ := testutil.NewStore(t)

	todo, err := s.CreateDailyTodo(ctx, model.DailyTodo{
		Title:     "water the plants",
		Date:      "2024-01-01",
		Memo:      strptr("back garden too"),
		Completed: true, // must be ignored; new todos start incomplete
	})
	if err != nil {
		t.Fatalf("creating todo: %v", err)
	}
	if todo.ID == "" {
		t.Error("expected a generated id")
	}
	if todo.Completed {
		t.Error("new todo should start incomplete")
	}

	todos, err := s.ListTodosByDate(ctx, "2024-01-01")
	if err != nil {
		t.Fatalf("listing todos: %v", err)
	}
	if len(todos) != 1 {
		t.Fatalf("expected 1 todo, got %d", len(todos))
	}
	got := todos[0]
	if got.Title != "water the plants" || got.Memo == nil || *got.Memo != "back garden too" {
		t.Errorf("stored todo differs: %+v", got)
	}
	if got.TaskID != nil || got.TaskTitle != nil || got.ProjectName != nil {
		t.Errorf("freestanding todo should have no task enrichment: %+v", got)
	}
}

// Incomplete todos come first, completed last, each group ordered by
// creation time ascending. With A(incomplete, 09:00), B(complete, 08:00),
// C(incomplete, 10:00) the expected order is [A, C, B].
func TestListTodosByDate_IncompleteFirstThenOldest(t *testing.T) {
	ctx := context.Background()
	s, dbPath := testutil.NewStore(t)
	db := testutil.OpenRawDB(t, dbPath)

	const date = "2024-01-01"
	a, err := s.CreateDailyTodo(ctx, model.DailyTodo{Title: "A", Date: date})
	if err != nil {
		t.Fatalf("creating A: %v", err)
	}
	b, err := s.CreateDailyTodo(ctx, model.DailyTodo{Title: "B", Date: date})
	if err != nil {
		t.Fatalf("creating B: %v", err)
	}
	c, err := s.CreateDailyTodo(ctx, model.DailyTodo{Title: "C", Date: date})
	if err != nil {
		t.Fatalf("creating C: %v", err)
	}
	testutil.SetCreatedAt(t, db, "daily_todos", a.ID, "2024-01-01 09:00:00")
	testutil.SetCreatedAt(t, db, "daily_todos", b.ID, "2024-01-01 08:00:00")
	testutil.SetCreatedAt(t, db, "daily_todos", c.ID, "2024-01-01 10:00:00")

	if _, err := s.ToggleTodo(ctx, b.ID); err != nil {
		t.Fatalf("completing B: %v", err)
	}

	// A todo on a different day must not appear.
	if _, err := s.CreateDailyTodo(ctx, model.DailyTodo{Title: "elsewhere", Date: "2024-01-02"}); err != nil {
		t.Fatalf("creating other-day todo: %v", err)
	}

	todos, err := s.ListTodosByDate(ctx, date)
	if err != nil {
		t.Fatalf("listing todos: %v", err)
	}
	want := []string{a.ID, c.ID, b.ID}
	if len(todos) != len(want) {
		t.Fatalf("expected %d todos, got %d", len(want), len(todos))
	}
	for i, todo := range todos {
		if todo.ID != want[i] {
			t.Errorf("position %d: got %s (%q), want %s", i, todo.ID, todo.Title, want[i])
		}
	}
}

func TestListTodosByDate_EnrichesTaskBackedTodos(t *testing.T) {
	ctx := context.Background()
	s, _ := testutil.NewStore(t)

	p := mustProject(t, s, "Alpha")
	task := mustTask(t, s, p.ID, nil, "Write spec")

	if _, err := s.AddTaskToTodo(ctx, task.ID, "2024-01-01"); err != nil {
		t.Fatalf("adding task to todo: %v", err)
	}

	todos, err := s.ListTodosByDate(ctx, "2024-01-01")
	if err != nil {
		t.Fatalf("listing todos: %v", err)
	}
	if len(todos) != 1 {
		t.Fatalf("expected 1 todo, got %d", len(todos))
	}
	got := todos[0]
	if got.TaskID == nil || *got.TaskID != task.ID {
		t.Errorf("task link = %v, want %s", got.TaskID, task.ID)
	}
	if got.TaskTitle == nil || *got.TaskTitle != "Write spec" {
		t.Errorf("task title = %v, want Write spec", got.TaskTitle)
	}
	if got.ProjectName == nil || *got.ProjectName != "Alpha" {
		t.Errorf("project name = %v, want Alpha", got.ProjectName)
	}
}

// Toggling twice returns the todo to its original state, and each call's
// return value matches the stored state.
func TestToggleTodo_Involution(t *testing.T) {
	ctx := context.Background()
	s, _ := testutil.NewStore(t)

	todo, err := s.CreateDailyTodo(ctx, model.DailyTodo{Title: "flip me", Date: "2024-01-01"})
	if err != nil {
		t.Fatalf("creating todo: %v", err)
	}

	first, err := s.ToggleTodo(ctx, todo.ID)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !first {
		t.Error("first toggle should report completed")
	}
	todos, _ := s.ListTodosByDate(ctx, "2024-01-01")
	if len(todos) != 1 || !todos[0].Completed {
		t.Error("stored state does not match first toggle's return value")
	}

	second, err := s.ToggleTodo(ctx, todo.ID)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if second {
		t.Error("second toggle should report incomplete")
	}
	todos, _ = s.ListTodosByDate(ctx, "2024-01-01")
	if len(todos) != 1 || todos[0].Completed {
		t.Error("stored state does not match second toggle's return value")
	}
}

func TestToggleTodo_UnknownIDFails(t *testing.T) {
	ctx := context.Background()
	s, _ := testutil.NewStore(t)

	_, err := s.ToggleTodo(ctx, "no-such-id")
	if err == nil {
		t.Fatal("expected an error toggling an unknown todo")
	}
	var storageErr *store.StorageError
	if !errors.As(err, &storageErr) {
		t.Errorf("expected a StorageError, got %T: %v", err, err)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("expected the missing-row cause to be preserved, got %v", err)
	}
}

func TestUpdateTodoMemo(t *testing.T) {
	ctx := context.Background()
	s, _ := testutil.NewStore(t)

	todo, err := s.CreateDailyTodo(ctx, model.DailyTodo{Title: "note me", Date: "2024-01-01"})
	if err != nil {
		t.Fatalf("creating todo: %v", err)
	}

	if err := s.UpdateTodoMemo(ctx, todo.ID, strptr("took longer than planned")); err != nil {
		t.Fatalf("setting memo: %v", err)
	}
	todos, _ := s.ListTodosByDate(ctx, "2024-01-01")
	if todos[0].Memo == nil || *todos[0].Memo != "took longer than planned" {
		t.Errorf("memo = %v, want %q", todos[0].Memo, "took longer than planned")
	}

	if err := s.UpdateTodoMemo(ctx, todo.ID, nil); err != nil {
		t.Fatalf("clearing memo: %v", err)
	}
	todos, _ = s.ListTodosByDate(ctx, "2024-01-01")
	if todos[0].Memo != nil {
		t.Errorf("memo should be cleared, got %q", *todos[0].Memo)
	}
}

func TestUpdateTodoMemo_UnknownIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	s, _ := testutil.NewStore(t)

	if _, err := s.CreateDailyTodo(ctx, model.DailyTodo{Title: "keeper", Date: "2024-01-01"}); err != nil {
		t.Fatalf("creating todo: %v", err)
	}
	before, err := s.ListTodosByDate(ctx, "2024-01-01")
	if err != nil {
		t.Fatalf("listing todos: %v", err)
	}

	if err := s.UpdateTodoMemo(ctx, "no-such-id", strptr("ghost")); err != nil {
		t.Fatalf("expected no error for an unknown todo, got %v", err)
	}

	after, err := s.ListTodosByDate(ctx, "2024-01-01")
	if err != nil {
		t.Fatalf("listing todos: %v", err)
	}
	if !reflect.DeepEqual(before, after) {
		t.Errorf("store changed by a no-op memo update")
	}
}

func TestDeleteTodo(t *testing.T) {
	ctx := context.Background()
	s, _ := testutil.NewStore(t)

	todo, err := s.CreateDailyTodo(ctx, model.DailyTodo{Title: "gone soon", Date: "2024-01-01"})
	if err != nil {
		t.Fatalf("creating todo: %v", err)
	}
	if err := s.DeleteTodo(ctx, todo.ID); err != nil {
		t.Fatalf("deleting todo: %v", err)
	}

	todos, err := s.ListTodosByDate(ctx, "2024-01-01")
	if err != nil {
		t.Fatalf("listing todos: %v", err)
	}
	if len(todos) != 0 {
		t.Errorf("expected no todos, got %d", len(todos))
	}
}

// Adding the same task to the same date twice creates two distinct todos,
// each carrying the task's title as of the call.
func TestAddTaskToTodo_RepeatedCallsCreateDistinctTodos(t *testing.T) {
	ctx := context.Background()
	s, _ := testutil.NewStore(t)

	p := mustProject(t, s, "repeat")
	task := mustTask(t, s, p.ID, nil, "original title")

	first, err := s.AddTaskToTodo(ctx, task.ID, "2024-01-01")
	if err != nil {
		t.Fatalf("first add: %v", err)
	}

	err = s.UpdateTask(ctx, model.Task{
		ID: task.ID, Title: "renamed title", Status: task.Status, Priority: task.Priority,
	})
	if err != nil {
		t.Fatalf("renaming task: %v", err)
	}

	second, err := s.AddTaskToTodo(ctx, task.ID, "2024-01-01")
	if err != nil {
		t.Fatalf("second add: %v", err)
	}

	if first.ID == second.ID {
		t.Error("repeated adds must create distinct todos")
	}
	if first.Title != "original title" {
		t.Errorf("first todo title = %q, want the title at call time", first.Title)
	}
	if second.Title != "renamed title" {
		t.Errorf("second todo title = %q, want the renamed title", second.Title)
	}

	todos, err := s.ListTodosByDate(ctx, "2024-01-01")
	if err != nil {
		t.Fatalf("listing todos: %v", err)
	}
	if len(todos) != 2 {
		t.Errorf("expected 2 todo rows, got %d", len(todos))
	}
}

func TestAddTaskToTodo_UnknownTaskFails(t *testing.T) {
	ctx := context.Background()
	s, _ := testutil.NewStore(t)

	_, err := s.AddTaskToTodo(ctx, "no-such-task", "2024-01-01")
	if err == nil {
		t.Fatal("expected an error for an unknown task")
	}
	var storageErr *store.StorageError
	if !errors.As(err, &storageErr) {
		t.Errorf("expected a StorageError, got %T: %v", err, err)
	}
}
