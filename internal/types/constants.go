package types

// ContextUserKey is the gin context key holding the authenticated user.
const ContextUserKey = "user"

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "token"
