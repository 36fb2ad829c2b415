package reference

// Reference record kinds, used as metric labels and log fields.
const (
	KindDistrict      = "district"
	KindQualification = "qualification"
	KindCategory      = "category"
)

// Log messages
const (
	LogMsgCreated     = "Reference record created"
	LogMsgCreateError = "Failed to create reference record"
	LogMsgListError   = "Failed to list reference records"
	LogMsgSeeded      = "Sample data seeded"
	LogMsgSeedError   = "Failed to seed sample data"
)

// Validation error messages
const (
	ErrMsgNameRequired = "name_en is required"
)
