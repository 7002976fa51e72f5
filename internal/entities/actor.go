package entities

// Actor - проверенная пара (subject id, роль) от сервиса аутентификации.
// Ядро доверяет этой паре на время запроса и само токены не разбирает.
type Actor struct {
	SubjectID string
	Role      ActorRole
}

type ActorRole string

const (
	RoleClient     ActorRole = "client"
	RoleOperator   ActorRole = "operator"
	RoleSupervisor ActorRole = "supervisor"
)

func (r ActorRole) String() string {
	return string(r)
}
