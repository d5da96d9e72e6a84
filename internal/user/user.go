// Package user identifies who triggered a launch for the history log.
package user

import (
	"os"
	"os/user"
	"strings"
)

// Unknown is recorded when no username can be determined
const Unknown = "unknown"

// GetCurrentUsername returns the current system username.
// It tries multiple methods with fallbacks:
// 1. user.Current() - gets username from OS
// 2. USER / USERNAME environment variables - for restricted environments
// 3. "unknown" - final fallback to ensure a non-empty value
//
// Windows account names are reported without their DOMAIN\ prefix.
func GetCurrentUsername() string {
	if currentUser, err := user.Current(); err == nil && currentUser.Username != "" {
		return stripDomain(currentUser.Username)
	}
	return fromEnv(os.Getenv)
}

func fromEnv(getenv func(string) string) string {
	for _, key := range []string{"USER", "USERNAME"} {
		if name := getenv(key); name != "" {
			return stripDomain(name)
		}
	}
	return Unknown
}

func stripDomain(name string) string {
	if i := strings.LastIndex(name, `\`); i >= 0 && i < len(name)-1 {
		return name[i+1:]
	}
	return name
}
