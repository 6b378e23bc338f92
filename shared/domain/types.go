package domain

type (
	Email          = string
	BoardTitle     = string
	BoardUniqueKey = string
	BoardSlug      = string
	StatusKey      = string

	// TimeLimit is a calendar date in YYYY-MM-DD form.
	TimeLimit = string
)
