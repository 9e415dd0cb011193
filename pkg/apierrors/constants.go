package apierrors

const (
	MsgInvalidTaskID      = "invalidTaskID"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgTaskNotFound       = "taskNotFound"
	MsgTaskAlreadyDone    = "taskAlreadyCompleted"
	MsgTaskClosed         = "taskClosed"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailListTask       = "errorListTask"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailCompleteTask   = "failCompleteTask"
	MsgFailDashboard      = "failDashboard"
	MsgInvalidAudio       = "invalidAudioUpload"
	MsgFailIntake         = "failAudioIntake"
)
