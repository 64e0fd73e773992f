package constants

// ContextKeyUser is the gin context key under which the authenticated
// user is stored by the auth middleware.
const ContextKeyUser = "user"

// MaxUploadSize is the maximum accepted size of a project image (5 MB).
const MaxUploadSize = 5 << 20
