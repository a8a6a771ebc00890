package application

type ListAgentFilters struct {
	BoardID   string
	NameQuery string
}
