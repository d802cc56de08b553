package domain

const (
	CollectionUser = "animatch_users"
)
