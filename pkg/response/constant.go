package response

const (
	MessageSuccess = "Success"

	// DateTimeFormat matches the ISO timestamps the item backend emits.
	DateTimeFormat = "2006-01-02T15:04:05Z07:00"
)
