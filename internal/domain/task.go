package domain

// Task is a single entry in the ordered task list.
type Task struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// TaskList is an ordered snapshot of tasks. Order is display order.
type TaskList []Task

// Clone returns a copy backed by a new array.
func (l TaskList) Clone() TaskList {
	out := make(TaskList, len(l))
	copy(out, l)
	return out
}

// IndexOf returns the position of the task with the given id, or -1.
func (l TaskList) IndexOf(id string) int {
	for i, task := range l {
		if task.ID == id {
			return i
		}
	}
	return -1
}

// CompletedCount returns the number of completed tasks.
func (l TaskList) CompletedCount() int {
	count := 0
	for _, task := range l {
		if task.Completed {
			count++
		}
	}
	return count
}

// AllCompleted reports whether the list is non-empty and every task is completed.
func (l TaskList) AllCompleted() bool {
	return len(l) > 0 && l.CompletedCount() == len(l)
}
