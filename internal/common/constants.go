package common

const (
	AppPosService = "pos-terminal-service"
	AppAuthorizer = "auth-service"

	AudienceSeller = "audience-seller"
)
