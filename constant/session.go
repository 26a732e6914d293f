package constant

type SessionState string

const (
	SessionUninitialized SessionState = "uninitialized"
	SessionLoading       SessionState = "loading"
	SessionAuthenticated SessionState = "authenticated"
	SessionAnonymous     SessionState = "anonymous"
)

const UserRole = "user"

// Demo account seeded into an empty registry.
const (
	DemoUserFirstName = "Demo"
	DemoUserLastName  = "User"
	DemoUserEmail     = "demo@sunyani.com"
	DemoUserPhone     = "+233 24 123 4567"
	DemoUserPassword  = "demo123"
)
