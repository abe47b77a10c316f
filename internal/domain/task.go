package domain

type TaskType string

const (
	TaskTypeSubscriptionTG TaskType = "SUBSCRIPTION_TG"
	TaskTypeRegexString    TaskType = "REGEX_STRING"
	TaskTypeConnectWallet  TaskType = "CONNECT_WALLET"
	TaskTypeInviteFriends  TaskType = "INVITE_FRIENDS"
	TaskTypeBoostTG        TaskType = "BOOST_TG"
)

type Task struct {
	UUID          string
	Name          string
	Type          TaskType
	Link          string
	IsCompleted   bool
	SecondsAmount int64
}

type TaskTypeSet map[TaskType]struct{}

func NewTaskTypeSet(types ...TaskType) TaskTypeSet {
	set := make(TaskTypeSet, len(types))
	for _, t := range types {
		if t == "" {
			continue
		}
		set[t] = struct{}{}
	}
	return set
}

func (s TaskTypeSet) Contains(t TaskType) bool {
	_, ok := s[t]
	return ok
}

// PendingTasks drops completed tasks and tasks whose type is disabled, preserving order.
func PendingTasks(tasks []Task, disabled TaskTypeSet) []Task {
	pending := make([]Task, 0, len(tasks))
	for _, task := range tasks {
		if task.IsCompleted || disabled.Contains(task.Type) {
			continue
		}
		pending = append(pending, task)
	}
	return pending
}
