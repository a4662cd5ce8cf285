// Package session drives task execution for the dashboard and the command line.
package session

import (
	"context"
	"strconv"

	"go.trai.ch/ecfg/internal/core/domain"
	"go.trai.ch/ecfg/internal/core/ports"
	"go.trai.ch/zerr"
)

// Visit is called after each task a Dispatcher runs.
type Visit func(task *domain.Task, log domain.Log, err error)

// Dispatcher resolves tasks by name or position and hands them to an executor.
// Task names are assumed unique.
type Dispatcher struct {
	tasks    []domain.Task
	executor ports.TaskExecutor
	visit    Visit
}

// NewDispatcher creates a Dispatcher over tasks.
func NewDispatcher(tasks []domain.Task, executor ports.TaskExecutor) *Dispatcher {
	return &Dispatcher{tasks: tasks, executor: executor}
}

// Observe registers fn to be called after every executed task.
func (d *Dispatcher) Observe(fn Visit) {
	d.visit = fn
}

// Tasks returns the current task list.
func (d *Dispatcher) Tasks() []domain.Task {
	return d.tasks
}

// Replace swaps the task list.
func (d *Dispatcher) Replace(tasks []domain.Task) {
	d.tasks = tasks
}

// ExecuteByName runs the task called name.
func (d *Dispatcher) ExecuteByName(ctx context.Context, name string) (domain.Log, error) {
	i, err := d.indexOf(name)
	if err != nil {
		return nil, err
	}
	return d.execute(ctx, &d.tasks[i])
}

// ExecuteByIndex runs the task at position i.
func (d *Dispatcher) ExecuteByIndex(ctx context.Context, i int) (domain.Log, error) {
	if i < 0 || i >= len(d.tasks) {
		return nil, zerr.With(zerr.Wrap(domain.ErrTaskNotFound, "index out of range"), "index", strconv.Itoa(i))
	}
	return d.execute(ctx, &d.tasks[i])
}

// ExecuteAll runs every task in declared order and stops at the first
// failing task. The returned log covers every task run, the failing one
// included.
func (d *Dispatcher) ExecuteAll(ctx context.Context) (domain.Log, error) {
	indices := make([]int, len(d.tasks))
	for i := range indices {
		indices[i] = i
	}
	return d.sequence(ctx, indices)
}

// ExecuteNames runs the named tasks in the given order with the same
// stopping rule as ExecuteAll. Every name is resolved before anything runs.
func (d *Dispatcher) ExecuteNames(ctx context.Context, names []string) (domain.Log, error) {
	indices := make([]int, 0, len(names))
	for _, name := range names {
		i, err := d.indexOf(name)
		if err != nil {
			return nil, err
		}
		indices = append(indices, i)
	}
	return d.sequence(ctx, indices)
}

func (d *Dispatcher) sequence(ctx context.Context, indices []int) (domain.Log, error) {
	var all domain.Log
	for _, i := range indices {
		if err := ctx.Err(); err != nil {
			return all, zerr.Wrap(err, "execution cancelled")
		}

		log, err := d.execute(ctx, &d.tasks[i])
		all = append(all, log...)
		if err != nil {
			return all, err
		}
	}
	return all, nil
}

func (d *Dispatcher) execute(ctx context.Context, task *domain.Task) (domain.Log, error) {
	log, err := d.executor.Execute(ctx, task)
	if d.visit != nil {
		d.visit(task, log, err)
	}
	return log, err
}

func (d *Dispatcher) indexOf(name string) (int, error) {
	for i := range d.tasks {
		if d.tasks[i].Name == name {
			return i, nil
		}
	}
	return -1, zerr.With(zerr.Wrap(domain.ErrTaskNotFound, "no such task"), "task", name)
}
