package verify_post

type TokenStore interface {
	Resolve(token string) (subjectID, role string, ok bool)
}
