// Package report renders a day's todos and a free-form memo into a
// markdown daily report.
package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/todowbs/internal/model"
)

// TodoSource supplies the enriched todo list for a given day. The storage
// engine's ListTodosByDate satisfies it.
type TodoSource interface {
	ListTodosByDate(ctx context.Context, date string) ([]model.DailyTodoWithTask, error)
}

// Generator builds daily reports. Beyond the single date fetch it performs,
// it is a pure function of its inputs and never persists anything.
type Generator struct {
	source TodoSource
}

// NewGenerator creates a Generator reading from source.
func NewGenerator(source TodoSource) *Generator {
	return &Generator{source: source}
}

// DailyReport fetches the todos for date, partitions them into completed
// and incomplete (keeping the fetch order within each partition), and
// renders the report. Completed items carry their memo on an indented
// follow-up line; incomplete items do not. An empty day still produces a
// document, with placeholder text in both sections. A non-empty memo
// argument is appended verbatim as a final section.
//
// Any error from the date fetch is returned unchanged.
func (g *Generator) DailyReport(ctx context.Context, date, memo string) (string, error) {
	todos, err := g.source.ListTodosByDate(ctx, date)
	if err != nil {
		return "", err
	}

	var completed, incomplete []model.DailyTodoWithTask
	for _, t := range todos {
		if t.Completed {
			completed = append(completed, t)
		} else {
			incomplete = append(incomplete, t)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# 日報 - %s\n\n", date)

	b.WriteString("## 完了したタスク\n")
	if len(completed) == 0 {
		b.WriteString("なし\n")
	} else {
		for _, todo := range completed {
			fmt.Fprintf(&b, "- [x] %s%s\n", projectPrefix(todo), todo.Title)
			if todo.Memo != nil && *todo.Memo != "" {
				fmt.Fprintf(&b, "  - %s\n", *todo.Memo)
			}
		}
	}

	b.WriteString("\n## 未完了のタスク\n")
	if len(incomplete) == 0 {
		b.WriteString("なし\n")
	} else {
		for _, todo := range incomplete {
			fmt.Fprintf(&b, "- [ ] %s%s\n", projectPrefix(todo), todo.Title)
		}
	}

	if memo != "" {
		fmt.Fprintf(&b, "\n## メモ\n%s\n", memo)
	}

	return b.String(), nil
}

// projectPrefix is "<project name>: " for task-backed todos with an intact
// link, empty otherwise.
func projectPrefix(todo model.DailyTodoWithTask) string {
	if todo.ProjectName == nil {
		return ""
	}
	return *todo.ProjectName + ": "
}
