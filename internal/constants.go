package internal

const (
	COOKIE_ACCESS_TOKEN_NAME = "lp_access_token"
)
