// Package ai implements the minimal task-mutex scheduling SPEC_FULL.md
// §C's "AI tasks" entry calls for: a Task interface with a mutex-bit mask
// and a TaskList that runs every tick-compatible (disjoint-mask) subset
// concurrently, grounded on the priority/mutex model of Mojang's
// EntityAITasks and expressed in this codebase's closure-based dynamic
// dispatch convention (spec.md §9).
package ai

// MutexBits classifies which of an entity's control surfaces a Task
// claims while running — movement, look, jump, or some combination —
// so the scheduler can tell which tasks may run in the same tick without
// fighting over the same limb.
type MutexBits uint8

const (
	MutexMove MutexBits = 1 << iota
	MutexLook
	MutexJump
)

// Task is one behavior an entity's AI may run. Priority is lower-runs-
// first. ShouldStart/ShouldContinue let the scheduler gate entry and
// exit independently, matching the start/continue split of the
// reference AI task model.
type Task interface {
	Priority() int
	MutexBits() MutexBits
	ShouldStart() bool
	ShouldContinue() bool
	Start()
	Tick()
	Stop()
}

// taskState tracks whether a registered task is currently running.
type taskState struct {
	task    Task
	running bool
}

// TaskList holds an entity's registered tasks and drives one tick of
// them, running every pair of tasks whose MutexBits do not overlap
// concurrently (here: in the same pass, in priority order). When idle
// tasks with overlapping bits could start in the same pass, the
// higher-priority one starts; a task that is already running is not
// preempted by a higher-priority one.
type TaskList struct {
	tasks []*taskState
}

// NewTaskList returns an empty list.
func NewTaskList() *TaskList { return &TaskList{} }

// Add registers a task. Tasks are kept in Priority order, lowest first.
func (l *TaskList) Add(t Task) {
	l.tasks = append(l.tasks, &taskState{task: t})
	for i := len(l.tasks) - 1; i > 0 && l.tasks[i].task.Priority() < l.tasks[i-1].task.Priority(); i-- {
		l.tasks[i], l.tasks[i-1] = l.tasks[i-1], l.tasks[i]
	}
}

// Tick runs one scheduling pass: for each task in priority order, stop it
// if already running and ShouldContinue is now false; otherwise, if not
// running, start it provided its mutex bits don't overlap the bits of
// any task still running (of any priority) or started earlier in this
// pass, and ShouldStart is true.
// Every still-running task then receives Tick.
func (l *TaskList) Tick() {
	var claimed MutexBits

	for _, ts := range l.tasks {
		if ts.running {
			if !ts.task.ShouldContinue() {
				ts.task.Stop()
				ts.running = false
				continue
			}
			claimed |= ts.task.MutexBits()
		}
	}

	for _, ts := range l.tasks {
		if ts.running {
			continue
		}
		bits := ts.task.MutexBits()
		if bits&claimed != 0 {
			continue
		}
		if !ts.task.ShouldStart() {
			continue
		}
		ts.task.Start()
		ts.running = true
		claimed |= bits
	}

	for _, ts := range l.tasks {
		if ts.running {
			ts.task.Tick()
		}
	}
}

// Running reports whether any task with the given mutex bit currently
// holds it.
func (l *TaskList) Running(bit MutexBits) bool {
	for _, ts := range l.tasks {
		if ts.running && ts.task.MutexBits()&bit != 0 {
			return true
		}
	}
	return false
}
