package cache

import (
	"regexp"
	"time"

	"github.com/MKhiriev/go-config-resolver/internal/utils"
	"github.com/MKhiriev/go-config-resolver/models"
)

// DefaultRelevancePatterns returns the patterns selecting the environment
// variables whose change invalidates env-sensitive layers. prefix is the
// generic configuration prefix, e.g. "CONFIG". extra adds the patterns of
// any other source cached in an env-sensitive layer, such as the direct
// process environment allow-list.
func DefaultRelevancePatterns(prefix string, extra ...*regexp.Regexp) []*regexp.Regexp {
	patterns := []*regexp.Regexp{
		regexp.MustCompile(`_URL$`),
		regexp.MustCompile(`_KEY$`),
		regexp.MustCompile(`_SECRET$`),
		regexp.MustCompile(`_TOKEN$`),
		regexp.MustCompile(`^OKTA_`),
		regexp.MustCompile(`^DATABASE_`),
		regexp.MustCompile(`^NEXTAUTH_`),
		regexp.MustCompile(`^API_`),
	}
	if prefix != "" {
		patterns = append([]*regexp.Regexp{regexp.MustCompile("^" + regexp.QuoteMeta(prefix) + "_")}, patterns...)
	}
	return append(patterns, extra...)
}

// takeSnapshot filters env by patterns and hashes the result.
func takeSnapshot(env utils.Environment, patterns []*regexp.Regexp, now time.Time) models.EnvironmentSnapshot {
	relevant := make(map[string]string)
	for k, v := range env.Environ() {
		for _, re := range patterns {
			if re.MatchString(k) {
				relevant[k] = v
				break
			}
		}
	}
	return models.EnvironmentSnapshot{
		Hash:      utils.HashVariables(relevant),
		Timestamp: now,
		Variables: relevant,
	}
}
