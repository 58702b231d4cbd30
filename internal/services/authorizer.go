package services

type ownerAuthorizer struct {
	ownerID string
}

func NewOwnerAuthorizer(ownerID string) Authorizer {
	return ownerAuthorizer{ownerID: ownerID}
}

func (a ownerAuthorizer) IsAuthorized(principalID string) bool {
	return principalID != "" && principalID == a.ownerID
}
