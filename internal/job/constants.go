package job

// Log messages
const (
	LogMsgJobsListed  = "Jobs listed"
	LogMsgJobFetched  = "Job fetched"
	LogMsgJobCreated  = "Job created"
	LogMsgListFailed  = "Failed to list jobs"
	LogMsgGetFailed   = "Failed to get job"
	LogMsgCreateError = "Failed to create job"
)

// Validation error messages
const (
	ErrMsgTitleRequired = "title is required"
	ErrMsgDeptRequired  = "dept is required"
	ErrMsgEmptyJobID    = "job id is required"
)
