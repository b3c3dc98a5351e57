package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/mssola/useragent"
)

type clientInfoKey struct{}

// ClientInfo derives a human-readable caller description from the User-Agent
// header and attaches it to the request context. Journey calls arrive from
// the orchestration engine with a distinctive agent string, which makes the
// request log useful when correlating journeys with directory lookups.
func ClientInfo(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), clientInfoKey{}, describeUserAgent(r.UserAgent()))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetClientInfo retrieves the caller description from the context.
func GetClientInfo(ctx context.Context) string {
	if info, ok := ctx.Value(clientInfoKey{}).(string); ok {
		return info
	}
	return ""
}

func describeUserAgent(userAgentString string) string {
	if userAgentString == "" {
		return "unknown"
	}

	ua := useragent.New(userAgentString)
	browser, _ := ua.Browser()
	browser = strings.TrimSpace(browser)
	os := strings.TrimSpace(ua.OS())

	switch {
	case browser != "" && os != "":
		return browser + " on " + os
	case browser != "":
		return browser
	case os != "":
		return os
	default:
		// Non-browser callers (the orchestration engine, curl) keep their raw agent.
		return userAgentString
	}
}
