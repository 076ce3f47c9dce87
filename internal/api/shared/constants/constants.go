package constants

const (
	MAX_EMOJI_INPUT_LENGTH = 400
	DEFAULT_HISTORY_LIMIT  = 20
	MAX_HISTORY_LIMIT      = 100
	MAX_MEMBER_ROLES       = 250
)
