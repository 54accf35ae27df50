package enum

// CommunicationType classifies a logged interaction with a lead
type CommunicationType string

const (
	CommunicationTypeCall     CommunicationType = "call"
	CommunicationTypeEmail    CommunicationType = "email"
	CommunicationTypeMeeting  CommunicationType = "meeting"
	CommunicationTypeTraining CommunicationType = "training"
	CommunicationTypeOther    CommunicationType = "other"
)

// IsValid checks if the communication type is a known value
func (t CommunicationType) IsValid() bool {
	switch t {
	case CommunicationTypeCall, CommunicationTypeEmail, CommunicationTypeMeeting,
		CommunicationTypeTraining, CommunicationTypeOther:
		return true
	}
	return false
}

// TaskType classifies a follow-up task. Unlike communications there is no
// "other" bucket; tasks are always one of the four scheduled actions.
type TaskType string

const (
	TaskTypeCall     TaskType = "call"
	TaskTypeEmail    TaskType = "email"
	TaskTypeMeeting  TaskType = "meeting"
	TaskTypeTraining TaskType = "training"
)

// IsValid checks if the task type is a known value
func (t TaskType) IsValid() bool {
	switch t {
	case TaskTypeCall, TaskTypeEmail, TaskTypeMeeting, TaskTypeTraining:
		return true
	}
	return false
}
